// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides the interface to the generative model backends.
// Each provider handles its own HTTP communication and response parsing;
// the Registry selects the active one by name and allows injecting
// custom providers at runtime.
package ai

import (
	"context"
	"fmt"
	"sync"

	"flyerspark/internal/models"
	"flyerspark/internal/prompt"
)

// Provider defines the core capability every AI backend must implement:
// schema-constrained JSON generation from an ordered list of parts.
type Provider interface {
	// GenerateJSON sends the parts to the model together with a response
	// schema and returns the raw JSON text the model produced. The schema
	// is marshalled as-is into the provider's request format.
	GenerateJSON(ctx context.Context, parts []prompt.Part, responseSchema any) (string, error)

	// Name returns the provider identifier (e.g., "gemini").
	Name() string
}

// ImageGenerator is an optional interface for providers that can create
// images from a text prompt.
type ImageGenerator interface {
	// GenerateImage returns the raw image bytes and the MIME content type.
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}

// Searcher is an optional interface for providers that can answer with
// real-time web grounding.
type Searcher interface {
	// Search returns a grounded summary plus the web sources it cites.
	Search(ctx context.Context, prompt string) (*models.SearchResult, error)
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey     string
	Model      string
	ModelImage string
	BaseURL    string
}

// Registry manages available AI providers and selects the active one.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
}

// NewRegistry creates a registry and initialises providers for every
// config that has a non-empty API key. Providers without keys are
// silently skipped.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "gemini":
			r.providers[name] = newGemini(cfg)
		}
	}

	return r
}

// GenerateJSON calls the active provider's GenerateJSON method.
func (r *Registry) GenerateJSON(ctx context.Context, parts []prompt.Part, responseSchema any) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.GenerateJSON(ctx, parts, responseSchema)
}

// GenerateImage calls the active provider's image generation if supported.
func (r *Registry) GenerateImage(ctx context.Context, promptText string) ([]byte, string, error) {
	p, err := r.Active()
	if err != nil {
		return nil, "", err
	}

	ig, ok := p.(ImageGenerator)
	if !ok {
		return nil, "", fmt.Errorf("ai: provider %q does not support image generation", p.Name())
	}
	return ig.GenerateImage(ctx, promptText)
}

// Search calls the active provider's grounded search if supported.
func (r *Registry) Search(ctx context.Context, promptText string) (*models.SearchResult, error) {
	p, err := r.Active()
	if err != nil {
		return nil, err
	}

	s, ok := p.(Searcher)
	if !ok {
		return nil, fmt.Errorf("ai: provider %q does not support grounded search", p.Name())
	}
	return s.Search(ctx, promptText)
}

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p, nil
}

// SetActive switches the active provider at runtime. Returns an error if
// the named provider has no API key configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	r.active = name
	return nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the names of all providers that have valid API keys.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Register adds or replaces a provider in the registry. This allows
// injecting custom providers at runtime (e.g. for testing).
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}
