package documents

import "time"

type UploadedFile struct {
	ID         string    `json:"id"`
	FilePath   string    `json:"filePath"`
	Name       string    `json:"name,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func (UploadedFile) Kind() string { return "UploadedFile" }

type Document struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Description string    `json:"description"`
	UploadedAt  time.Time `json:"uploadedAt"`
	FileIDs     []string  `json:"fileIds,omitempty"`
}

func (Document) Kind() string { return "Document" }

func (d Document) EmployeeRef() string { return d.EmployeeID }

type Training struct {
	ID              string    `json:"id"`
	EmployeeID      string    `json:"employeeId"`
	TrainingName    string    `json:"trainingName"`
	Provider        string    `json:"provider"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	CertificatePath string    `json:"certificatePath,omitempty"`
}

func (Training) Kind() string { return "Training" }

func (t Training) EmployeeRef() string { return t.EmployeeID }
