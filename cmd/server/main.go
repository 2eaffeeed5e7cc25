package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/remaimber-it/quiz-backend/internal/api"
	"github.com/remaimber-it/quiz-backend/internal/infrastructure/config"
	"github.com/remaimber-it/quiz-backend/internal/infrastructure/logging"
	"github.com/remaimber-it/quiz-backend/internal/metrics"
	"github.com/remaimber-it/quiz-backend/internal/quizapi"
	"github.com/remaimber-it/quiz-backend/internal/service"
	"github.com/remaimber-it/quiz-backend/internal/store"

	_ "github.com/remaimber-it/quiz-backend/docs" // generated swagger docs
)

// @title           Quiz API
// @version         1.0
// @description     Pick a category and difficulty, answer ten questions from the question bank, get your score.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFile)

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var clientOpts []quizapi.Option
	if cfg.QuizAPIRPS > 0 {
		clientOpts = append(clientOpts, quizapi.WithRateLimit(rate.NewLimiter(rate.Limit(cfg.QuizAPIRPS), cfg.QuizAPIBurst)))
	}
	bank := quizapi.NewClient(cfg.QuizAPIURL, cfg.QuizAPIKey, clientOpts...)

	quizSvc := service.NewQuizService(db, bank, cfg.BatchSize, cfg.FetchWorkers, logger)
	defer quizSvc.Close()

	handler := api.NewHandler(quizSvc, logger)

	metrics.Register(prometheus.DefaultRegisterer)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → Metrics → CORS → mux ────────────
	logged := api.Logging(logger)(metrics.Middleware(api.CORS(cfg.CORSOrigin)(mux)))

	// ── Server ──────────────────────────────────────────────────────
	// WriteTimeout leaves room for GET /sessions/{id}?wait=true.
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Closed once Shutdown has drained the handlers; the deferred Close
	// calls must not run before that.
	shutdownDone := make(chan struct{})

	go func() {
		defer close(shutdownDone)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}

	<-shutdownDone
	logger.Info("server stopped")
}
