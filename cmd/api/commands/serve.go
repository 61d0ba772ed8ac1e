package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"region-directory/internal/cache"
	"region-directory/internal/directory"
	"region-directory/internal/handler"
	"region-directory/internal/metrics"
	"region-directory/internal/store"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	backend, err := store.Open(ctx, storeConfig(cfg))
	if err != nil {
		log.Error("failed to open store", zap.String("driver", cfg.DatabaseDriver), zap.Error(err))
		return err
	}
	defer backend.Close()

	m := metrics.New()

	regionCache, closeCache, err := cache.New(ctx, cache.Config{
		Backend:       cfg.CacheBackend,
		TTL:           cfg.CacheTTL,
		MaxCost:       cfg.CacheMaxCost,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	}, log)
	if err != nil {
		log.Error("failed to create cache", zap.String("backend", cfg.CacheBackend), zap.Error(err))
		return err
	}
	defer func() {
		if err := closeCache(); err != nil {
			log.Warn("failed to close cache", zap.Error(err))
		}
	}()

	service := directory.NewService(backend, cache.NewInstrumented(regionCache, m), log.Named("directory"))
	router := handler.NewRouter(handler.RouterConfig{
		AllowedOrigins:    cfg.CORSAllowedOrigins,
		LegacyRouteStatus: cfg.LegacyRouteStatus,
	}, service, backend, m, log.Named("http"))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting region directory",
			zap.String("addr", srv.Addr),
			zap.String("driver", cfg.DatabaseDriver),
			zap.String("cache", cfg.CacheBackend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
