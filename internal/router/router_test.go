// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the routing configuration, the middleware
// chain, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flyerspark/internal/ai"
	"flyerspark/internal/generate"
	"flyerspark/internal/handlers"
	"flyerspark/internal/workspace"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	reg := ai.NewRegistry("", nil)
	store := workspace.NewStore(workspace.NewMemoryKV(), workspace.DefaultDailyLimit)
	api := handlers.NewAPI(generate.NewService(reg, store, nil), store)
	return New(api, Options{})
}

func TestHealthEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	newTestRouter(t).ServeHTTP(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestAPIAssignsWorkspaceCookie(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/usage", nil)

	newTestRouter(t).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "fs_workspace" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected a workspace cookie on API responses")
	}
}

func TestSecureHeadersApplied(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	newTestRouter(t).ServeHTTP(w, r)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q, want %q", got, "nosniff")
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/admin/dashboard", nil)

	newTestRouter(t).ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}
