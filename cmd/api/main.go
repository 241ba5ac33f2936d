package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nowshad-islam-dev/skipq-api/internal/audit"
	"github.com/nowshad-islam-dev/skipq-api/internal/auth"
	"github.com/nowshad-islam-dev/skipq-api/internal/config"
	dbpkg "github.com/nowshad-islam-dev/skipq-api/internal/db"
	"github.com/nowshad-islam-dev/skipq-api/internal/domain/media"
	domainUser "github.com/nowshad-islam-dev/skipq-api/internal/domain/user"
	"github.com/nowshad-islam-dev/skipq-api/internal/infra/ratelimit"
	infraRepo "github.com/nowshad-islam-dev/skipq-api/internal/infra/repository"
	"github.com/nowshad-islam-dev/skipq-api/internal/infra/storage"
	"github.com/nowshad-islam-dev/skipq-api/internal/logger"
	"github.com/nowshad-islam-dev/skipq-api/internal/routes"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Error("database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	uploader, err := newUploader(ctx, cfg)
	if err != nil {
		cancel()
		log.Error("media storage", "error", err)
		os.Exit(1)
	}
	limiter := newLimiter(ctx, cfg, log)
	cancel()

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = cfg.Media.MaxUploadBytes

	routes.RegisterRoutes(r, cfg, routes.Dependencies{
		Users:    infraRepo.NewUserGormRepository(db),
		Services: infraRepo.NewServiceGormRepository(db),
		Uploader: uploader,
		Limiter:  limiter,
		Audit:    dispatcher,
		Hasher:   auth.NewBcryptHasher(cfg.BcryptCost),
		Tokens:   auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL),
		Logger:   log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", cfg.Addr(), "env", cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Warn("audit drain incomplete", "error", err)
	}
	log.Info("shutdown complete")
}

func newUploader(ctx context.Context, cfg *config.Config) (media.Uploader, error) {
	var up media.Uploader

	switch cfg.Media.Driver {
	case "minio":
		m, err := storage.NewMinioUploader(ctx, cfg.Media)
		if err != nil {
			return nil, err
		}
		up = m
	default:
		up = storage.NewS3Uploader(cfg.Media)
	}

	if cfg.Media.ConvertWebP {
		up = storage.NewWebPUploader(up, cfg.Media.MaxDimension)
	}
	return up, nil
}

// newLimiter falls back to no lockout when redis is not configured or not
// reachable at startup.
func newLimiter(ctx context.Context, cfg *config.Config, log *slog.Logger) domainUser.LoginLimiter {
	if cfg.RedisURL == "" {
		return ratelimit.Noop{}
	}

	client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn("redis unavailable, login lockout disabled", "error", err)
		return ratelimit.Noop{}
	}
	return ratelimit.NewRedisLimiter(client, cfg.LoginMaxAttempts, cfg.LoginLockoutWindow)
}
