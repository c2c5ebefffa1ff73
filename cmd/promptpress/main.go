// Package main is the entry point for the PromptPress server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promptpress/internal/ai"
	"promptpress/internal/cache"
	"promptpress/internal/config"
	"promptpress/internal/database"
	"promptpress/internal/handlers"
	"promptpress/internal/router"
	"promptpress/internal/session"
	"promptpress/internal/store"
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
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible session store + result cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	promptStore := store.NewPromptStore(db)

	// Cache successful remote enhancements so repeated ideas skip the
	// provider round-trip.
	resultCache := cache.NewResultCache(valkeyClient, cache.DefaultResultTTL)

	// Initialize the OpenRouter provider. An empty API key is allowed in
	// development; the connection self-test fails and every generation
	// uses the offline template engine instead.
	provider := ai.NewOpenRouter(ai.Config{
		APIKey:   cfg.OpenRouterAPIKey,
		Model:    cfg.OpenRouterModel,
		BaseURL:  cfg.OpenRouterBaseURL,
		SiteURL:  cfg.SiteURL,
		SiteName: cfg.SiteName,
	})

	slog.Info("ai provider initialized",
		"provider", provider.Name(),
		"model", cfg.OpenRouterModel,
		"has_key", cfg.OpenRouterAPIKey != "",
	)

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(sessionStore, userStore)
	generateHandlers := handlers.NewGenerate(provider, resultCache)
	promptHandlers := handlers.NewPrompts(promptStore)
	adminHandlers := handlers.NewAdmin(userStore)

	// Set up the Chi router with all middleware and routes.
	limiter := router.DefaultGenerateLimiter()
	defer limiter.Stop()

	r := router.New(sessionStore, authHandlers, generateHandlers, promptHandlers, adminHandlers, router.Options{
		SecureCookies:   secureCookies,
		GenerateLimiter: limiter,
	})

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate the generation endpoint, which waits on
	// LLM responses (typically 10-30s, up to 60s for complex prompts).
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
