// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"flyerspark/internal/generate"
	"flyerspark/internal/models"
)

// ideaRequest is the JSON body for POST /api/generate/ideas.
type ideaRequest struct {
	Context    string `json:"context"`
	Caption    string `json:"caption"`
	Mode       string `json:"mode"`
	Logo       string `json:"logo,omitempty"`
	BrandColor string `json:"brandColor,omitempty"`
}

// ideaReply wraps the model output together with the history entry it
// produced, so the client can update its local history without refetching.
type ideaReply struct {
	Result  *models.IdeaResponse `json:"result"`
	History *models.HistoryItem  `json:"history,omitempty"`
}

// GenerateIdeas handles POST /api/generate/ideas.
func (a *API) GenerateIdeas(w http.ResponseWriter, r *http.Request) {
	var req ideaRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body."})
		return
	}

	result, item, err := a.service.Ideas(r.Context(), workspaceID(r), generate.IdeaInput{
		Context:    strings.TrimSpace(req.Context),
		Caption:    strings.TrimSpace(req.Caption),
		Mode:       models.DesignMode(req.Mode),
		Logo:       req.Logo,
		BrandColor: req.BrandColor,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ideaReply{Result: result, History: item})
}

// structureRequest is the JSON body for POST /api/generate/structure.
type structureRequest struct {
	RawContent   string `json:"rawContent"`
	OutputFormat string `json:"outputFormat"`
	Logo         string `json:"logo,omitempty"`
	BrandColor   string `json:"brandColor,omitempty"`
}

type structureReply struct {
	Result  models.StructuredContent `json:"result"`
	History *models.HistoryItem      `json:"history,omitempty"`
}

// GenerateStructure handles POST /api/generate/structure.
func (a *API) GenerateStructure(w http.ResponseWriter, r *http.Request) {
	var req structureRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body."})
		return
	}

	result, item, err := a.service.Structure(r.Context(), workspaceID(r), generate.StructureInput{
		RawContent:   strings.TrimSpace(req.RawContent),
		OutputFormat: models.OutputFormat(req.OutputFormat),
		Logo:         req.Logo,
		BrandColor:   req.BrandColor,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, structureReply{Result: result, History: item})
}

// regenerateRequest is the JSON body for POST /api/generate/regenerate.
type regenerateRequest struct {
	Context string `json:"context"`
}

// GenerateRegenerate handles POST /api/generate/regenerate. Regeneration
// refreshes the visual suggestions of an existing idea; it is not counted
// against the daily quota and leaves history untouched.
func (a *API) GenerateRegenerate(w http.ResponseWriter, r *http.Request) {
	var req regenerateRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body."})
		return
	}

	result, err := a.service.Regenerate(r.Context(), strings.TrimSpace(req.Context))
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// imageRequest is the JSON body for POST /api/generate/image.
type imageRequest struct {
	Prompt string `json:"prompt"`
}

// imageReply carries either hosted URLs or the raw image inline, depending
// on whether object storage is configured.
type imageReply struct {
	URL         string `json:"url,omitempty"`
	ThumbURL    string `json:"thumbUrl,omitempty"`
	Data        string `json:"data,omitempty"` // base64, set when no storage
	ContentType string `json:"contentType"`
}

// GenerateImage handles POST /api/generate/image.
func (a *API) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req imageRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body."})
		return
	}

	img, err := a.service.Image(r.Context(), strings.TrimSpace(req.Prompt))
	if err != nil {
		a.writeError(w, err)
		return
	}

	reply := imageReply{
		URL:         img.URL,
		ThumbURL:    img.ThumbURL,
		ContentType: img.ContentType,
	}
	if img.URL == "" {
		reply.Data = base64.StdEncoding.EncodeToString(img.Data)
	}
	writeJSON(w, http.StatusOK, reply)
}

// searchRequest is the JSON body for POST /api/search.
type searchRequest struct {
	Query string `json:"query"`
}

// Search handles POST /api/search. Grounded search is a lookup aid, not a
// generation, so it is not counted against the daily quota.
func (a *API) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body."})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "A search query is required."})
		return
	}

	result, err := a.service.Search(r.Context(), query)
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
