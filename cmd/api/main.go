package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pgRepo "empleo-search/internal/infra/adapter/persistence/postgres"
	"empleo-search/internal/infra/db"
	"empleo-search/internal/resilience/circuitbreaker"
	"empleo-search/pkg/config"

	searchUC "empleo-search/internal/usecase/search"

	hhttp "empleo-search/internal/handler/http"
	"empleo-search/internal/handler/http/requestid"
	hsearch "empleo-search/internal/handler/http/search"
)

// @title           Empleo Search API
// @version         1.0
// @description     API de búsqueda global: empleos, empresas, perfiles, cursos e instituciones.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := initLogger()

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, version)

	runServer(logger, handler, version)
}

// initLogger configures the process-wide structured JSON logger.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, the search service and all routes.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	// All search reads go through the circuit breaker so a degraded
	// database fails fast instead of stacking fan-out goroutines.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	svc := &searchUC.Service{
		Jobs:          pgRepo.NewJobPostingRepo(breaker),
		Organizations: pgRepo.NewOrganizationRepo(breaker),
		Candidates:    pgRepo.NewCandidateRepo(breaker),
		Courses:       pgRepo.NewCourseRepo(breaker),
		Institutions:  pgRepo.NewInstitutionRepo(breaker),
	}

	rps := config.GetEnvFloat("SEARCH_RATE_LIMIT_RPS", 5)
	burst := config.GetEnvInt("SEARCH_RATE_LIMIT_BURST", 10)
	limiter := hhttp.NewRateLimiter(rps, burst)
	logger.Info("search rate limiting configured",
		slog.Float64("rps", rps),
		slog.Int("burst", burst))

	mux := http.NewServeMux()
	hsearch.Register(mux, svc, limiter)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Breaker: breaker, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware builds the chain Recover → RequestID → Logging →
// Metrics → routes. Rate limiting is applied per search route at
// registration.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.Recover(logger)(chain)
	return chain
}

// runServer starts the HTTP server and blocks until SIGINT/SIGTERM, then
// drains in-flight requests.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	addr := config.GetEnvString("LISTEN_ADDR", ":8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
