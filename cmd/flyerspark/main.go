// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the FlyerSpark API server.
// It loads configuration, connects to the state backend, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flyerspark/internal/ai"
	"flyerspark/internal/config"
	"flyerspark/internal/database"
	"flyerspark/internal/generate"
	"flyerspark/internal/handlers"
	"flyerspark/internal/router"
	"flyerspark/internal/storage"
	"flyerspark/internal/workspace"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"state_backend", cfg.StateBackend,
	)

	// Pick the workspace state backend. Valkey is the default; Postgres
	// suits deployments that already run a database and nothing else;
	// memory is for local development only.
	var kv workspace.KV
	switch cfg.StateBackend {
	case "valkey":
		valkeyClient, err := workspace.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		kv = workspace.NewValkeyKV(valkeyClient, 0)

	case "postgres":
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		kv = workspace.NewPostgresKV(db)

	case "memory":
		slog.Warn("using in-memory state backend — workspace data will not survive restarts")
		kv = workspace.NewMemoryKV()
	}

	store := workspace.NewStore(kv, cfg.DailyLimit)

	// Connect to S3-compatible object storage (optional — generated
	// images are returned inline when storage is not configured).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — generated images served inline")
	}

	// Initialize the AI provider registry.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"gemini": {
			APIKey:     cfg.GeminiKey,
			Model:      cfg.GeminiModel,
			ModelImage: cfg.GeminiModelImage,
			BaseURL:    cfg.GeminiBaseURL,
		},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	service := generate.NewService(aiRegistry, store, storageClient)
	api := handlers.NewAPI(service, store)

	// Workspace cookies are Secure (HTTPS-only) outside development.
	r := router.New(api, router.Options{SecureCookies: !cfg.IsDev()})

	// Create the HTTP server with sensible timeouts. WriteTimeout must
	// accommodate endpoints that wait on LLM responses (typically 10-30s,
	// up to 60s for image generation).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
