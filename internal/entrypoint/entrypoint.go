// Package entrypoint wires the store, the query engine and the HTTP server
// together and runs them until shutdown.
package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/okozlova/bookshelf/internal/config"
	"github.com/okozlova/bookshelf/internal/database"
	http_controllers "github.com/okozlova/bookshelf/internal/http"
	"github.com/okozlova/bookshelf/internal/logging"
	"github.com/okozlova/bookshelf/internal/search"
)

func Run(cfg *config.Config, version string) {
	logger, err := logging.New(cfg.Global.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Global.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting bookshelf", zap.String("version", version))

	// The store is constructed once here and injected everywhere; there is
	// no package-level handle. A failed initialize is not fatal: the server
	// keeps serving and every store call degrades to a no-op until a
	// restart succeeds.
	store := database.New(cfg.Database.Path, logger)
	if !store.Initialize() {
		logger.Warn("book store unavailable, serving degraded",
			zap.String("path", cfg.Database.Path))
	}

	engine := search.New(search.Options{
		Threshold:     cfg.Search.Threshold,
		MinTermLength: cfg.Search.MinTermLength,
	})

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Store:          store,
		Engine:         engine,
		Logger:         logger,
		UploadsDir:     cfg.Uploads.Dir,
		UploadsMaxSize: cfg.Uploads.MaxSizeBytes,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
