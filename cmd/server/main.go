package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kmin1231/2xai-sub000/internal/assessment"
	"github.com/kmin1231/2xai-sub000/internal/generation"
	"github.com/kmin1231/2xai-sub000/internal/httpapi"
	"github.com/kmin1231/2xai-sub000/internal/moderation"
	"github.com/kmin1231/2xai-sub000/internal/platform/cache"
	"github.com/kmin1231/2xai-sub000/internal/platform/config"
	"github.com/kmin1231/2xai-sub000/internal/platform/database"
	"github.com/kmin1231/2xai-sub000/internal/telemetry"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	// Graceful shutdown on SIGTERM/SIGINT.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Keyword moderation fails closed: without its wordlists the server
	// refuses to start rather than admit every keyword.
	moderator, err := moderation.LoadModerator(cfg.Moderation.ForbiddenPath, cfg.Moderation.AllowedPath)
	if err != nil {
		slog.Error("failed to load moderation wordlists", "error", err)
		os.Exit(1)
	}

	var (
		recorder    telemetry.Recorder    = telemetry.NewMemoryRecorder()
		levels      assessment.LevelStore = assessment.NewMemoryLevelStore()
		readyChecks []func(context.Context) error
	)
	if cfg.Database.URL != "" {
		db, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			slog.Error("failed to ensure database schema", "error", err)
			os.Exit(1)
		}

		recorder = telemetry.NewPostgresRecorder(db.Pool)
		levels = assessment.NewPostgresLevelStore(db.Pool)
		readyChecks = append(readyChecks, db.HealthCheck)
	} else {
		slog.Warn("no database configured, telemetry and reading levels are in-memory")
	}

	var contentCache *generation.ContentCache
	if cfg.Cache.URL != "" {
		c, err := cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			slog.Error("failed to connect to cache", "error", err)
			os.Exit(1)
		}
		defer c.Close()

		contentCache = generation.NewContentCache(c.Client, time.Duration(cfg.Cache.ContentTTLMin)*time.Minute)
		readyChecks = append(readyChecks, c.HealthCheck)
	}

	signer := generation.NewTokenSigner(cfg.Generation.JWTSecret,
		time.Duration(cfg.Generation.TokenTTLMin)*time.Minute)
	client := generation.NewClient(cfg.Generation.BaseURL, signer)

	api := httpapi.New(httpapi.Config{
		Moderator:   moderator,
		Generator:   client,
		Adjuster:    assessment.NewAdjuster(levels),
		Recorder:    recorder,
		Cache:       contentCache,
		ReadyChecks: readyChecks,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     api.Routes(),
		ReadTimeout: 10 * time.Second,
		// Content generation holds the response open for up to the
		// upstream timeout, so the write timeout must exceed it.
		WriteTimeout: 16 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
