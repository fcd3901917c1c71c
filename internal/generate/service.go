// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generate orchestrates the content-generation flows: quota
// check, prompt building, the model call, shallow response validation,
// and history recording. Persistence problems never fail a generation
// that already succeeded; they are logged and the result still returned.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"flyerspark/internal/ai"
	"flyerspark/internal/imaging"
	"flyerspark/internal/models"
	"flyerspark/internal/prompt"
	"flyerspark/internal/schema"
	"flyerspark/internal/storage"
	"flyerspark/internal/workspace"
)

// Service wires the AI registry, the workspace store, and optional
// object storage into the generation operations.
type Service struct {
	providers *ai.Registry
	store     *workspace.Store
	objects   *storage.Client // nil when object storage is not configured
}

// NewService creates the generation service. objects may be nil.
func NewService(providers *ai.Registry, store *workspace.Store, objects *storage.Client) *Service {
	return &Service{
		providers: providers,
		store:     store,
		objects:   objects,
	}
}

// Store exposes the underlying workspace store for handlers that manage
// history, drafts, themes and usage directly.
func (s *Service) Store() *workspace.Store {
	return s.store
}

// IdeaInput holds the form fields for idea generation.
type IdeaInput struct {
	Context    string
	Caption    string
	Mode       models.DesignMode
	Logo       string // data URI, empty when none
	BrandColor string
}

// Ideas runs the idea-generation flow for one workspace. On success the
// result has already been prepended to the workspace history.
func (s *Service) Ideas(ctx context.Context, workspaceID string, in IdeaInput) (*models.IdeaResponse, *models.HistoryItem, error) {
	if in.Context == "" {
		return nil, nil, fmt.Errorf("%w: context is required", ErrInvalidInput)
	}
	if !in.Mode.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown design mode %q", ErrInvalidInput, in.Mode)
	}

	// A logo that cannot be decoded is an input error, so it is checked
	// with the rest of the validation, ahead of the quota gate.
	if in.Logo != "" {
		if _, err := prompt.ParseDataURI(in.Logo); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if err := s.consumeQuota(ctx, workspaceID); err != nil {
		return nil, nil, err
	}

	parts, err := prompt.BuildIdea(prompt.IdeaRequest{
		Context:    in.Context,
		Caption:    in.Caption,
		Mode:       in.Mode,
		Logo:       in.Logo,
		BrandColor: in.BrandColor,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	raw, err := s.providers.GenerateJSON(ctx, parts, schema.Idea)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	payload, err := checkResponse(raw, schema.Idea.Required)
	if err != nil {
		return nil, nil, err
	}

	var resp models.IdeaResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	item := s.record(ctx, workspaceID,
		models.HistoryPrompt{
			ToolMode:   models.ToolIdeaGenerator,
			Context:    in.Context,
			Caption:    in.Caption,
			Mode:       in.Mode,
			Logo:       optional(in.Logo),
			BrandColor: in.BrandColor,
		},
		models.HistoryResult{DesignIdea: &resp.DesignIdea},
	)

	return &resp, item, nil
}

// StructureInput holds the form fields for content structuring.
type StructureInput struct {
	RawContent   string
	OutputFormat models.OutputFormat
	Logo         string // recorded in history, not sent to the model
	BrandColor   string
}

// Structure runs the content-structuring flow for one workspace. The
// format is validated before the quota is consumed, so an unknown
// format never burns a generation.
func (s *Service) Structure(ctx context.Context, workspaceID string, in StructureInput) (models.StructuredContent, *models.HistoryItem, error) {
	if in.RawContent == "" {
		return nil, nil, fmt.Errorf("%w: rawContent is required", ErrInvalidInput)
	}

	respSchema, err := schema.ForFormat(in.OutputFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.consumeQuota(ctx, workspaceID); err != nil {
		return nil, nil, err
	}

	parts, err := prompt.BuildStructure(in.RawContent, in.OutputFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	raw, err := s.providers.GenerateJSON(ctx, parts, respSchema)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	payload, err := checkResponse(raw, respSchema.Required)
	if err != nil {
		return nil, nil, err
	}

	item := s.record(ctx, workspaceID,
		models.HistoryPrompt{
			ToolMode:     models.ToolContentStructurer,
			RawContent:   in.RawContent,
			OutputFormat: in.OutputFormat,
			Logo:         optional(in.Logo),
			BrandColor:   in.BrandColor,
		},
		models.HistoryResult{StructuredContent: payload},
	)

	return payload, item, nil
}

// Regenerate produces an alternative set of visuals and suggested
// content for an existing idea. It is not quota-gated and leaves the
// history untouched; the client merges the result into its current idea.
func (s *Service) Regenerate(ctx context.Context, flyerContext string) (*models.Regeneration, error) {
	if flyerContext == "" {
		return nil, fmt.Errorf("%w: context is required", ErrInvalidInput)
	}

	raw, err := s.providers.GenerateJSON(ctx, prompt.BuildRegenerate(flyerContext), schema.Regenerate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	payload, err := checkResponse(raw, schema.Regenerate.Required)
	if err != nil {
		return nil, err
	}

	var regen models.Regeneration
	if err := json.Unmarshal(payload, &regen); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &regen, nil
}

// GeneratedImage is the result of a placeholder-image generation.
type GeneratedImage struct {
	Data        []byte
	ContentType string
	URL         string // set only when object storage is configured
	ThumbURL    string
}

// Image generates a placeholder image for the given description. When
// object storage is configured the image and a thumbnail are uploaded
// and served by URL; an upload failure degrades to inline bytes only.
func (s *Service) Image(ctx context.Context, description string) (*GeneratedImage, error) {
	if description == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}

	data, contentType, err := s.providers.GenerateImage(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	img := &GeneratedImage{Data: data, ContentType: contentType}

	if s.objects != nil {
		name := uuid.New().String() + imaging.Extension(contentType)
		key := "generated/" + name

		if err := s.objects.Upload(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
			slog.Warn("generated image upload failed", "key", key, "error", err)
			return img, nil
		}
		img.URL = s.objects.FileURL(key)

		if thumb, err := imaging.Thumbnail(data, imaging.DefaultThumbWidth); err != nil {
			slog.Warn("thumbnail generation failed", "key", key, "error", err)
		} else {
			thumbKey := "generated/thumbs/" + name
			if err := s.objects.Upload(ctx, thumbKey, "image/jpeg", bytes.NewReader(thumb), int64(len(thumb))); err != nil {
				slog.Warn("thumbnail upload failed", "key", thumbKey, "error", err)
			} else {
				img.ThumbURL = s.objects.FileURL(thumbKey)
			}
		}
	}

	return img, nil
}

// Search answers a query with real-time web grounding.
func (s *Service) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	result, err := s.providers.Search(ctx, prompt.BuildSearch(query))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return result, nil
}

// consumeQuota enforces the daily limit before any network call. A
// storage failure while bumping the counter is logged and ignored so a
// flaky backend cannot block generation.
func (s *Service) consumeQuota(ctx context.Context, workspaceID string) error {
	allowed, _, err := s.store.CheckAndIncrement(ctx, workspaceID)
	if err != nil {
		// A broken counter must not block generation.
		slog.Warn("usage counter update failed", "workspace", workspaceID, "error", err)
		return nil
	}
	if !allowed {
		return ErrLimitExceeded
	}
	return nil
}

// record appends to the workspace history, tolerating persistence
// failures: the generation already succeeded and its result is returned
// to the user either way.
func (s *Service) record(ctx context.Context, workspaceID string, p models.HistoryPrompt, r models.HistoryResult) *models.HistoryItem {
	item, err := s.store.RecordHistory(ctx, workspaceID, p, r)
	if err != nil {
		slog.Warn("history persistence failed", "workspace", workspaceID, "error", err)
	}
	return item
}

// optional converts an empty string to a nil pointer for JSON fields
// that distinguish "absent" from "empty".
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
