package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/catalog"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/config"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/httpapi"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/llm"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/logger"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/matcher"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/service"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/triage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "healthcase-api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting healthcase-api service",
		zap.String("version", config.Version),
	)

	cat, err := loadCatalog(cfg, log)
	if err != nil {
		log.Fatal("Failed to load disease catalog", zap.Error(err))
	}
	log.Info("Disease catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("profiles", cat.Len()),
	)

	checker := triage.NewChecker(triage.DefaultRules(), log)
	scorer := matcher.NewScorer(cat, log)

	analysisService := buildAnalysisService(cfg, log)
	analyzer := service.NewAnalyzer(checker, scorer, analysisService, log)

	limiter := buildLimiter(cfg, log)

	router := httpapi.NewRouter(log)
	router.RegisterRoutes(httpapi.NewAnalyzeHandler(analyzer, limiter, log))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errChan:
		log.Error("Server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down server", zap.Error(err))
	}

	log.Info("Service stopped")
}

// loadCatalog selects the catalog source: built-in table, YAML file, or the
// disease_profiles table in PostgreSQL.
func loadCatalog(cfg *config.Config, log *zap.Logger) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case "", "builtin":
		return catalog.Builtin(), nil
	case "file":
		return catalog.LoadFile(cfg.Catalog.File)
	case "postgres":
		db, err := sql.Open("postgres", cfg.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return catalog.NewProfileRepository(db, log).LoadCatalog()
	}
	return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
}

// buildAnalysisService wires the configured primary analysis backend with the
// mock backend as fallback.
func buildAnalysisService(cfg *config.Config, log *zap.Logger) *llm.Service {
	mock := llm.NewMockBackend()
	if cfg.LLM.Backend == "mock" {
		return llm.NewService(mock, mock, log)
	}

	openrouter := llm.NewOpenRouterBackend(llm.OpenRouterConfig{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, log)
	return llm.NewService(openrouter, mock, log)
}

// buildLimiter prefers Redis when configured so multiple API instances share
// one window; otherwise the in-memory limiter is used.
func buildLimiter(cfg *config.Config, log *zap.Logger) httpapi.Limiter {
	window := time.Duration(cfg.RateLimit.Window) * time.Second

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Info("Using Redis rate limiter", zap.String("addr", cfg.Redis.Addr))
		return httpapi.NewRedisLimiter(client, cfg.RateLimit.Requests, window, log)
	}

	return httpapi.NewMemoryLimiter(cfg.RateLimit.Requests, window, nil)
}
