// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// api_test.go provides shared test infrastructure for the API handlers.
// Tests run against an in-memory workspace store and a fake AI provider,
// routed through the real workspace middleware so every request carries a
// workspace ID the way production traffic does.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"flyerspark/internal/ai"
	"flyerspark/internal/generate"
	"flyerspark/internal/middleware"
	"flyerspark/internal/models"
	"flyerspark/internal/prompt"
	"flyerspark/internal/workspace"
)

// fakeProvider implements ai.Provider plus the optional capabilities.
type fakeProvider struct {
	response    string
	err         error
	calls       int
	searchReply *models.SearchResult
	imageData   []byte
	imageType   string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) GenerateJSON(_ context.Context, _ []prompt.Part, _ any) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) GenerateImage(_ context.Context, _ string) ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.imageData, f.imageType, nil
}

func (f *fakeProvider) Search(_ context.Context, _ string) (*models.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.searchReply, nil
}

// testAPI wires the full handler stack over an in-memory store.
func testAPI(t *testing.T, fake *fakeProvider) http.Handler {
	t.Helper()

	reg := ai.NewRegistry("fake", nil)
	reg.Register("fake", fake)
	store := workspace.NewStore(workspace.NewMemoryKV(), workspace.DefaultDailyLimit)
	api := NewAPI(generate.NewService(reg, store, nil), store)

	r := chi.NewRouter()
	r.Use(middleware.Workspace(false))
	r.Post("/api/generate/ideas", api.GenerateIdeas)
	r.Post("/api/generate/structure", api.GenerateStructure)
	r.Post("/api/generate/regenerate", api.GenerateRegenerate)
	r.Post("/api/generate/image", api.GenerateImage)
	r.Post("/api/search", api.Search)
	r.Get("/api/history", api.HistoryList)
	r.Get("/api/history/{id}", api.HistoryItem)
	r.Delete("/api/history", api.HistoryClear)
	r.Get("/api/draft", api.DraftGet)
	r.Put("/api/draft", api.DraftPut)
	r.Delete("/api/draft", api.DraftDelete)
	r.Get("/api/theme", api.ThemeGet)
	r.Put("/api/theme", api.ThemePut)
	r.Get("/api/usage", api.UsageGet)
	return r
}

// client issues requests against the handler stack, carrying the workspace
// cookie between calls like a browser would.
type client struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newClient(t *testing.T, handler http.Handler) *client {
	return &client{t: t, handler: handler}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// ideaBody builds a well-formed model reply for the idea tool.
func ideaBody(t *testing.T) string {
	t.Helper()
	resp := models.IdeaResponse{
		ToolName: "FlyerSpark AI",
		DesignIdea: models.DesignIdea{
			Concept:          "Bold grand-opening theme.",
			TitleSuggestions: []string{"Grand Opening!"},
			SuggestedContent: "Join us for opening day.",
			CTAs:             []string{"Visit us"},
			Visuals: models.VisualElements{
				IconStyle:        "Minimalist line art",
				Background:       "Soft gradient",
				ImageSuggestions: []string{"A steaming cup of coffee"},
			},
			ColorPalette:        []models.Color{{Name: "Primary", Hex: "#0808F5"}},
			ModeSpecificContent: "A detailed flyer layout.",
		},
	}
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal idea body: %v", err)
	}
	return string(b)
}
