// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain for the
// FlyerSpark API. Every /api route runs behind the workspace middleware,
// which resolves or assigns the caller's workspace cookie.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"flyerspark/internal/handlers"
	"flyerspark/internal/middleware"
)

// Options tunes router behavior per environment.
type Options struct {
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(api *handlers.API, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Per-IP rate limit, generous enough for normal editor usage. The
	// real generation budget is the per-workspace daily quota.
	limiter := middleware.NewRateLimiter(120, time.Minute)
	r.Use(limiter.Middleware)

	// Health check sits outside the workspace scope.
	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Workspace(opts.SecureCookies))

		r.Route("/generate", func(r chi.Router) {
			r.Post("/ideas", api.GenerateIdeas)
			r.Post("/structure", api.GenerateStructure)
			r.Post("/regenerate", api.GenerateRegenerate)
			r.Post("/image", api.GenerateImage)
		})

		r.Post("/search", api.Search)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", api.HistoryList)
			r.Delete("/", api.HistoryClear)
			r.Get("/{id}", api.HistoryItem)
		})

		r.Route("/draft", func(r chi.Router) {
			r.Get("/", api.DraftGet)
			r.Put("/", api.DraftPut)
			r.Delete("/", api.DraftDelete)
		})

		r.Route("/theme", func(r chi.Router) {
			r.Get("/", api.ThemeGet)
			r.Put("/", api.ThemePut)
		})

		r.Get("/usage", api.UsageGet)
	})

	return r
}
