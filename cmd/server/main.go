package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/api"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/config"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/upstream"

	_ "github.com/mehdi-chebbi/potal-oss-fr/docs" // swagger docs
)

// @title OSS Opportunities Portal API
// @version 1.0
// @description Portal gateway for the Sahara and Sahel Observatory recruitment and tender portal: localized page view-models, offer/application filtering, and proxied writes against the upstream opportunities API.

// @contact.name API Support
// @contact.email support@oss-online.org

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the upstream-issued JWT with the `Bearer ` prefix, e.g. "Bearer eyJhbGci..."

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	client := upstream.NewClient(cfg.Upstream)
	handler := api.NewHandler(client, logger)
	router := api.NewRouter(handler, cfg, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("upstream", cfg.Upstream.BaseURL),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
