// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"flyerspark/internal/models"
	"flyerspark/internal/prompt"
)

// mockProvider is a test double implementing the Provider interface.
// It records calls and returns configurable responses.
type mockProvider struct {
	name       string
	response   string
	err        error
	callCount  int
	lastParts  []prompt.Part
	lastSchema any
	mu         sync.Mutex
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) GenerateJSON(ctx context.Context, parts []prompt.Part, responseSchema any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.lastParts = parts
	m.lastSchema = responseSchema
	return m.response, m.err
}

// textParts is shorthand for a single-text-part payload.
func textParts(text string) []prompt.Part {
	return []prompt.Part{{Text: text}}
}

// ---------- Registry.GenerateJSON ----------

func TestRegistryGenerateJSON(t *testing.T) {
	t.Run("delegates to active provider", func(t *testing.T) {
		mock := &mockProvider{name: "test", response: `{"ok":true}`}

		reg := &Registry{
			providers: map[string]Provider{"test": mock},
			active:    "test",
		}

		result, err := reg.GenerateJSON(context.Background(), textParts("hello"), nil)
		if err != nil {
			t.Fatalf("GenerateJSON: unexpected error: %v", err)
		}
		if result != `{"ok":true}` {
			t.Errorf("result: got %q, want %q", result, `{"ok":true}`)
		}

		mock.mu.Lock()
		defer mock.mu.Unlock()
		if mock.callCount != 1 {
			t.Errorf("callCount: got %d, want 1", mock.callCount)
		}
		if len(mock.lastParts) != 1 || mock.lastParts[0].Text != "hello" {
			t.Errorf("parts: got %+v, want single text part %q", mock.lastParts, "hello")
		}
	})

	t.Run("propagates provider error", func(t *testing.T) {
		mock := &mockProvider{name: "test", err: fmt.Errorf("api failure")}

		reg := &Registry{
			providers: map[string]Provider{"test": mock},
			active:    "test",
		}

		_, err := reg.GenerateJSON(context.Background(), textParts("x"), nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "api failure" {
			t.Errorf("error: got %q, want %q", err.Error(), "api failure")
		}
	})

	t.Run("error when active name does not match any registered provider", func(t *testing.T) {
		reg := &Registry{
			providers: map[string]Provider{},
			active:    "gemini",
		}

		_, err := reg.GenerateJSON(context.Background(), textParts("x"), nil)
		if err == nil {
			t.Fatal("expected error when no provider is active, got nil")
		}
	})
}

// ---------- Optional capabilities ----------

// textOnlyProvider implements Provider but not ImageGenerator or Searcher.
type textOnlyProvider struct{ mockProvider }

func TestRegistryGenerateImageUnsupported(t *testing.T) {
	reg := &Registry{
		providers: map[string]Provider{"plain": &textOnlyProvider{mockProvider{name: "plain"}}},
		active:    "plain",
	}

	_, _, err := reg.GenerateImage(context.Background(), "a cup of coffee")
	if err == nil {
		t.Fatal("expected error for provider without image support, got nil")
	}
}

func TestRegistrySearchUnsupported(t *testing.T) {
	reg := &Registry{
		providers: map[string]Provider{"plain": &textOnlyProvider{mockProvider{name: "plain"}}},
		active:    "plain",
	}

	_, err := reg.Search(context.Background(), "local coffee shops")
	if err == nil {
		t.Fatal("expected error for provider without search support, got nil")
	}
}

// searchingProvider adds Searcher on top of the mock.
type searchingProvider struct {
	mockProvider
	result *models.SearchResult
}

func (s *searchingProvider) Search(ctx context.Context, promptText string) (*models.SearchResult, error) {
	return s.result, nil
}

func TestRegistrySearchDelegates(t *testing.T) {
	want := &models.SearchResult{
		Summary: "A summary.",
		Sources: []models.SearchSource{{URI: "https://example.com", Title: "Example"}},
	}
	reg := &Registry{
		providers: map[string]Provider{"s": &searchingProvider{mockProvider: mockProvider{name: "s"}, result: want}},
		active:    "s",
	}

	got, err := reg.Search(context.Background(), "query")
	if err != nil {
		t.Fatalf("Search: unexpected error: %v", err)
	}
	if got.Summary != want.Summary {
		t.Errorf("summary: got %q, want %q", got.Summary, want.Summary)
	}
	if len(got.Sources) != 1 || got.Sources[0].URI != "https://example.com" {
		t.Errorf("sources: got %+v", got.Sources)
	}
}

// ---------- Registry.SetActive ----------

func TestRegistrySetActive(t *testing.T) {
	t.Run("switches to valid provider", func(t *testing.T) {
		mockA := &mockProvider{name: "a", response: "from a"}
		mockB := &mockProvider{name: "b", response: "from b"}

		reg := &Registry{
			providers: map[string]Provider{"a": mockA, "b": mockB},
			active:    "a",
		}

		if err := reg.SetActive("b"); err != nil {
			t.Fatalf("SetActive(b): unexpected error: %v", err)
		}
		if reg.ActiveName() != "b" {
			t.Errorf("ActiveName: got %q, want %q", reg.ActiveName(), "b")
		}

		result, err := reg.GenerateJSON(context.Background(), textParts("x"), nil)
		if err != nil {
			t.Fatalf("GenerateJSON: unexpected error: %v", err)
		}
		if result != "from b" {
			t.Errorf("result: got %q, want %q", result, "from b")
		}
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		reg := &Registry{
			providers: map[string]Provider{"a": &mockProvider{name: "a"}},
			active:    "a",
		}

		if err := reg.SetActive("nope"); err == nil {
			t.Fatal("expected error for unknown provider, got nil")
		}
		if reg.ActiveName() != "a" {
			t.Errorf("active should be unchanged, got %q", reg.ActiveName())
		}
	})
}

// ---------- NewRegistry / Register ----------

func TestNewRegistrySkipsEmptyKeys(t *testing.T) {
	reg := NewRegistry("gemini", map[string]ProviderConfig{
		"gemini": {APIKey: ""},
	})

	if reg.HasProvider("gemini") {
		t.Error("provider with empty API key should be skipped")
	}
}

func TestNewRegistryConfiguresGemini(t *testing.T) {
	reg := NewRegistry("gemini", map[string]ProviderConfig{
		"gemini": {APIKey: "test-key", Model: "gemini-2.5-flash"},
	})

	if !reg.HasProvider("gemini") {
		t.Fatal("gemini provider should be configured")
	}
	if reg.ActiveName() != "gemini" {
		t.Errorf("ActiveName: got %q, want %q", reg.ActiveName(), "gemini")
	}
}

func TestRegistryRegisterAndAvailable(t *testing.T) {
	reg := NewRegistry("custom", map[string]ProviderConfig{})
	reg.Register("custom", &mockProvider{name: "custom", response: "ok"})
	reg.Register("other", &mockProvider{name: "other"})

	names := reg.Available()
	sort.Strings(names)
	want := []string{"custom", "other"}
	if len(names) != len(want) {
		t.Fatalf("Available: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Available[%d]: got %q, want %q", i, names[i], want[i])
		}
	}

	result, err := reg.GenerateJSON(context.Background(), textParts("x"), nil)
	if err != nil {
		t.Fatalf("GenerateJSON: unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("result: got %q, want %q", result, "ok")
	}
}
