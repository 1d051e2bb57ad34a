package documentshandler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"rhcore/internal/domain/audit"
	"rhcore/internal/domain/documents"
	"rhcore/internal/transport/http/api"
	"rhcore/internal/transport/http/middleware"
	"rhcore/internal/transport/http/shared"
)

const maxUploadMemory = 10 << 20

type Handler struct {
	Service *documents.Service
	Files   *documents.DiskStorage
	Certs   *documents.DiskStorage
	Audit   *audit.Service
}

func NewHandler(service *documents.Service, files, certs *documents.DiskStorage, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Files: files, Certs: certs, Audit: auditSvc}
}

// RegisterEmployeeRoutes mounts under /employees/{employeeID}.
func (h *Handler) RegisterEmployeeRoutes(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", h.handleListDocuments)
		r.Post("/", h.handleCreateDocument)
	})
	r.Route("/trainings", func(r chi.Router) {
		r.Get("/", h.handleListTrainings)
		r.Post("/", h.handleCreateTraining)
	})
}

// RegisterRoutes mounts resources that are not employee-scoped.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/files/{fileID}", h.handleDownloadFile)
}

// handleCreateDocument takes a multipart form with a description field and one
// or more parts named "files". Each part is stored on disk and registered
// before the document row ties them together.
func (h *Handler) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "expected multipart form data", middleware.GetRequestID(r.Context()))
		return
	}

	description := strings.TrimSpace(r.FormValue("description"))
	v := shared.NewValidator()
	v.Required("description", description, "description is required")
	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		v.Add("files", "at least one file is required")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	var fileIDs []string
	for _, header := range r.MultipartForm.File["files"] {
		part, err := header.Open()
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "failed to read uploaded file", middleware.GetRequestID(r.Context()))
			return
		}
		storedName, err := h.Files.Save(header.Filename, part)
		part.Close()
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "file_save_failed", "failed to store uploaded file", middleware.GetRequestID(r.Context()))
			return
		}

		fileID, err := h.Service.RegisterFile(r.Context(), documents.UploadedFile{
			FilePath: storedName,
			Name:     header.Filename,
		})
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "file_register_failed", "failed to register uploaded file", middleware.GetRequestID(r.Context()))
			return
		}
		fileIDs = append(fileIDs, fileID)
	}

	doc := documents.Document{
		EmployeeID:  employeeID,
		Description: description,
		FileIDs:     fileIDs,
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), doc, user.UserID, "Uploaded document", func(ctx context.Context) error {
		id, err := h.Service.CreateDocument(ctx, doc)
		if err != nil {
			return err
		}
		doc.ID = id
		return nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "document_create_failed", "failed to create document", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]any{"id": doc.ID, "fileIds": fileIDs}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Service.ListDocuments(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "document_list_failed", "failed to list documents", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, docs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateTraining(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "expected multipart form data", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	trainingName := strings.TrimSpace(r.FormValue("trainingName"))
	provider := strings.TrimSpace(r.FormValue("provider"))
	v.Required("trainingName", trainingName, "trainingName is required")
	v.Required("provider", provider, "provider is required")
	startDate, _ := v.Date("startDate", r.FormValue("startDate"))
	endDate, _ := v.Date("endDate", r.FormValue("endDate"))
	v.DateOrder("startDate", startDate, "endDate", endDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	certificatePath := ""
	if part, header, err := r.FormFile("certificate"); err == nil {
		storedName, saveErr := h.Certs.Save(header.Filename, part)
		part.Close()
		if saveErr != nil {
			api.Fail(w, http.StatusInternalServerError, "file_save_failed", "failed to store certificate", middleware.GetRequestID(r.Context()))
			return
		}
		certificatePath = storedName
	}

	training := documents.Training{
		EmployeeID:      employeeID,
		TrainingName:    trainingName,
		Provider:        provider,
		StartDate:       startDate,
		EndDate:         endDate,
		CertificatePath: certificatePath,
	}

	user, _ := middleware.GetUser(r.Context())
	err := h.Audit.PersistWithLog(r.Context(), training, user.UserID, "Registered training", func(ctx context.Context) error {
		id, err := h.Service.CreateTraining(ctx, training)
		if err != nil {
			return err
		}
		training.ID = id
		return nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "training_create_failed", "failed to register training", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": training.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListTrainings(w http.ResponseWriter, r *http.Request) {
	trainings, err := h.Service.ListTrainings(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "training_list_failed", "failed to list trainings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, trainings, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownloadFile(w http.ResponseWriter, r *http.Request) {
	file, err := h.Service.GetFile(r.Context(), chi.URLParam(r, "fileID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "file_not_found", "file not found", middleware.GetRequestID(r.Context()))
		return
	}

	reader, err := h.Files.Open(file.FilePath)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "file_not_found", "file not found", middleware.GetRequestID(r.Context()))
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	if _, err := io.Copy(w, reader); err != nil {
		return
	}
}
