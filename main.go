package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"wattplan-cloud/internal/audit"
	"wattplan-cloud/internal/auth"
	"wattplan-cloud/internal/calc"
	"wattplan-cloud/internal/observability/metrics"
	"wattplan-cloud/internal/progress"
	proposalapp "wattplan-cloud/internal/proposal/application"
	proposalrepo "wattplan-cloud/internal/proposal/infrastructure/postgres"
	proposalhttp "wattplan-cloud/internal/proposal/interfaces/http"
	"wattplan-cloud/internal/refdata"
	"wattplan-cloud/internal/render"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("db ping error: %v", err)
	}

	m := metrics.New()
	auditRepo := audit.NewRepository(db)

	catalog, err := refdata.Load(cfg.RefdataPath)
	if err != nil {
		logger.Fatalf("refdata load error: %v", err)
	}
	logger.Printf("refdata loaded: providers=%d rebates=%d", len(catalog.Providers), len(catalog.Rebates))

	orchestrator, err := calc.NewOrchestrator(catalog, calc.SystemClock{})
	if err != nil {
		logger.Fatalf("orchestrator error: %v", err)
	}

	progressStore := progress.NewMemoryStore()
	repo := proposalrepo.NewRepository(db)
	service, err := proposalapp.NewService(repo, orchestrator, progressStore, render.SlideHTML, m, logger, calc.SystemClock{})
	if err != nil {
		logger.Fatalf("proposal service error: %v", err)
	}
	handler, err := proposalhttp.NewHandler(service, auditRepo)
	if err != nil {
		logger.Fatalf("proposal handler error: %v", err)
	}

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			m.ActiveProgress.Set(float64(progressStore.Active()))
		}
	}()

	policy := auth.NewDefaultPolicy([]string{"/healthz", "/metrics"}, nil)
	authMiddleware := auth.NewMiddleware([]byte(cfg.JWTSecret), policy)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/proposals", handler)
	mux.Handle("/api/v1/proposals/", handler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: loggingMiddleware(authMiddleware.Wrap(mux), logger)}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	DatabaseURL string
	HTTPAddr    string
	RefdataPath string
	JWTSecret   string
}

func loadConfig() config {
	cfg := config{
		DatabaseURL: getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")),
		HTTPAddr:    getenvDefault("HTTP_ADDR", ":8080"),
		RefdataPath: getenvDefault("REFDATA_CONFIG", ""),
		JWTSecret:   getenvDefault("AUTH_JWT_SECRET", getenvDefault("JWT_SECRET", "")),
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL or PG_DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}
	return cfg
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
