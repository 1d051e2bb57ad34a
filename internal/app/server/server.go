package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rhcore/internal/domain/audit"
	"rhcore/internal/domain/core"
	"rhcore/internal/domain/documents"
	"rhcore/internal/domain/leave"
	"rhcore/internal/domain/payroll"
	"rhcore/internal/domain/performance"
	"rhcore/internal/platform/config"
	"rhcore/internal/platform/db"
	"rhcore/internal/platform/metrics"
	"rhcore/internal/transport/http/api"
	audithandler "rhcore/internal/transport/http/handlers/audit"
	corehandler "rhcore/internal/transport/http/handlers/core"
	documentshandler "rhcore/internal/transport/http/handlers/documents"
	leavehandler "rhcore/internal/transport/http/handlers/leave"
	pageshandler "rhcore/internal/transport/http/handlers/pages"
	payrollhandler "rhcore/internal/transport/http/handlers/payroll"
	performancehandler "rhcore/internal/transport/http/handlers/performance"
	"rhcore/internal/transport/http/middleware"
)

// Run wires the stores, seeds the baseline data and serves HTTP until the
// process exits.
func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	coreStore := core.NewStore(pool)

	if cfg.RunSeed {
		if err := db.EnsureDefaultAdmin(ctx, coreStore, cfg); err != nil {
			log.Fatalf("admin seed failed: %v", err)
		}
		if err := db.EnsureCatalogSeeded(ctx, coreStore); err != nil {
			log.Fatalf("catalog seed failed: %v", err)
		}
	}

	router := NewRouter(cfg, pool, coreStore)

	log.Printf("rhcore server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// NewRouter assembles the middleware chain, page routes and the JSON API.
func NewRouter(cfg config.Config, pool *pgxpool.Pool, coreStore *core.Store) http.Handler {
	collector := metrics.New()

	auditSvc := audit.New(audit.NewStore(pool))
	payrollSvc := payroll.NewService(payroll.NewStore(pool))
	leaveStore := leave.NewStore(pool)
	documentsSvc := documents.NewService(documents.NewStore(pool))
	performanceStore := performance.NewStore(pool)

	fileStorage := documents.NewDiskStorage(cfg.UploadsDir)
	certStorage := documents.NewDiskStorage(cfg.TrainingCertsDir)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
	})

	// Stored achievement image paths resolve as /static/<imagePath>.
	router.Handle("/static/achievements/*", http.StripPrefix("/static/achievements/",
		http.FileServer(http.Dir(cfg.AchievementImagesDir))))

	pagesHandler := pageshandler.NewHandler(coreStore, cfg.JWTSecret)
	router.Get("/", pagesHandler.HandleIndex)
	router.Get("/login/", pagesHandler.HandleLoginPage)
	router.Post("/login/", pagesHandler.HandleLoginSubmit)
	router.Post("/logout/", pagesHandler.HandleLogout)
	router.Get("/suporte/", pagesHandler.HandleSupportPage)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		payrollHandler := payrollhandler.NewHandler(payrollSvc, coreStore, auditSvc)
		leaveHandler := leavehandler.NewHandler(leaveStore, auditSvc)
		documentsHandler := documentshandler.NewHandler(documentsSvc, fileStorage, certStorage, auditSvc)
		performanceHandler := performancehandler.NewHandler(performanceStore, auditSvc)

		coreHandler := corehandler.NewHandler(coreStore, auditSvc)
		coreHandler.RegisterRoutes(r,
			payrollHandler.RegisterEmployeeRoutes,
			leaveHandler.RegisterEmployeeRoutes,
			documentsHandler.RegisterEmployeeRoutes,
			performanceHandler.RegisterEmployeeRoutes,
		)

		documentsHandler.RegisterRoutes(r)

		auditHandler := audithandler.NewHandler(auditSvc, coreStore)
		auditHandler.RegisterRoutes(r)
	})

	return router
}
