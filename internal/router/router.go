// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// PromptPress API. It organizes routes into public and authenticated
// groups with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"promptpress/internal/handlers"
	"promptpress/internal/middleware"
	"promptpress/internal/session"
)

// Options carries the route-level knobs that differ between environments.
type Options struct {
	// SecureCookies controls the Secure flag on the CSRF cookie.
	SecureCookies bool
	// GenerateLimiter throttles the enhancement endpoint. Nil disables
	// rate limiting (tests).
	GenerateLimiter *middleware.RateLimiter
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, auth *handlers.Auth, generate *handlers.Generate, prompts *handlers.Prompts, admin *handlers.Admin, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NewCSRF(opts.SecureCookies))

		// Auth endpoints — register and login create sessions, so they
		// sit outside the authenticated group.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", auth.Register)
			r.Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)

			// 2FA — requires a session but NOT completed verification,
			// since verify is what completes it.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/me", auth.Me)
				r.Post("/2fa/setup", auth.TwoFASetup)
				r.Post("/2fa/verify", auth.TwoFAVerify)
			})
		})

		// Authenticated + 2FA-verified area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			// Prompt enhancement.
			r.Group(func(r chi.Router) {
				if opts.GenerateLimiter != nil {
					r.Use(opts.GenerateLimiter.Middleware)
				}
				r.Post("/generate", generate.Enhance)
				r.Post("/generate/test", generate.TestAPI)
			})

			// Saved prompt library.
			r.Route("/prompts", func(r chi.Router) {
				r.Get("/", prompts.List)
				r.Post("/", prompts.Create)
				r.Get("/{id}", prompts.Get)
				r.Put("/{id}", prompts.Update)
				r.Delete("/{id}", prompts.Delete)
			})

			// User management — admin only.
			r.Route("/admin/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", admin.Users)
				r.Post("/{id}/reset-2fa", admin.ResetTwoFA)
			})
		})
	})

	return r
}

// DefaultGenerateLimiter returns the production rate limiter for the
// enhancement endpoint: 30 requests per minute per client IP.
func DefaultGenerateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(30, time.Minute)
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
