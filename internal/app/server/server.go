package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"pmreport/internal/domain/report"
	"pmreport/internal/platform/config"
	"pmreport/internal/platform/db"
	"pmreport/internal/platform/metrics"
	"pmreport/internal/render/pdf"
	"pmreport/internal/storage/postgres"
	"pmreport/internal/storage/sqlite"
	reportshandler "pmreport/internal/transport/http/handlers/reports"
	"pmreport/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Router  http.Handler
	Metrics *metrics.Collector

	ready func(ctx context.Context) error
	close func()
}

func (a *App) Close() {
	if a.close != nil {
		a.close()
	}
}

// New builds the full application: storage provider, renderer, service,
// router. Exactly one of DATABASE_URL and SQLITE_PATH selects the provider.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Metrics: metrics.New()}

	var provider report.Provider
	if cfg.SQLitePath != "" {
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		provider = store
		app.ready = func(context.Context) error { return nil }
		app.close = func() { store.Close() }
	} else {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		provider = postgres.NewStore(pool)
		app.ready = pool.Ping
		app.close = pool.Close
	}

	renderer := pdf.New(pdf.Config{
		Orientation: cfg.PDFOrientation,
		PageSize:    cfg.PDFPageSize,
		FontFamily:  cfg.PDFFontFamily,
	})
	service := report.NewService(provider, renderer, cfg.OutputDir)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(chimiddleware.Recoverer)
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(app.Metrics))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := app.ready(ctx); err != nil {
			http.Error(w, "storage not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(app.Metrics.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		handler := reportshandler.NewHandler(service, provider, app.Metrics)
		handler.RegisterRoutes(r)
	})

	app.Router = router
	return app, nil
}

func Run() {
	cfg := config.Load()

	ctx := context.Background()
	app, err := New(ctx, cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("report server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
