package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/leotech/cardapio-service/config"
	catH "github.com/leotech/cardapio-service/internal/catalog/handler"
	catRepoPkg "github.com/leotech/cardapio-service/internal/catalog/repository"
	catUCPkg "github.com/leotech/cardapio-service/internal/catalog/usecase"
	ordH "github.com/leotech/cardapio-service/internal/order/handler"
	ordUCPkg "github.com/leotech/cardapio-service/internal/order/usecase"
	"github.com/leotech/cardapio-service/pkg/logger"
)

func main() {
	// 1. Load configuration
	_ = godotenv.Load() // .env is optional
	cfg := config.LoadEnv()

	// 2. Logger
	zapLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	if cfg.Sheets.URL == "" {
		zapLogger.Fatal("SHEETS_JSON_URL is not set")
	}

	// 3. Data source
	repo := catRepoPkg.NewSheetsRepository(
		cfg.Sheets.URL,
		cfg.Sheets.FetchTimeout,
		catRepoPkg.ParseActivePolicy(cfg.Catalog.ActivePolicy),
		zapLogger,
	)

	// 4. Use cases
	catalogUC := catUCPkg.NewCatalogUseCase(repo, zapLogger, cfg.Catalog.PageSize, cfg.Catalog.Locale)
	orderUC := ordUCPkg.NewOrderUseCase(zapLogger)

	// 5. Handlers
	catalogHandler := catH.NewCatalogHandler(catalogUC, zapLogger)
	orderHandler := ordH.NewOrderHandler(catalogUC, orderUC, zapLogger)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logger.RequestLogger(zapLogger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Route("/api", func(api chi.Router) {
		catalogHandler.Register(api)
		orderHandler.Register(api)
	})

	server := &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		zapLogger.Info("starting HTTP server",
			zap.String("addr", server.Addr),
			zap.String("env", cfg.Server.AppEnv),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		zapLogger.Fatal("server error", zap.Error(err))
	case <-ctx.Done():
		zapLogger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
