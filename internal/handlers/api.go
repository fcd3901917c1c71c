// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON API handlers for the FlyerSpark
// backend. Every endpoint is scoped to the caller's workspace, which the
// workspace middleware resolves from a browser cookie.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"flyerspark/internal/generate"
	"flyerspark/internal/middleware"
	"flyerspark/internal/workspace"
)

// API serves the flyer generation and workspace endpoints.
type API struct {
	service *generate.Service
	store   *workspace.Store
}

// NewAPI creates the API handler set.
func NewAPI(service *generate.Service, store *workspace.Store) *API {
	return &API{service: service, store: store}
}

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps a service error to an HTTP status and a human-readable
// message. Limit errors get a dedicated message so the UI can surface it
// verbatim.
func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, generate.ErrLimitExceeded):
		msg := fmt.Sprintf(
			"You have reached the daily usage limit of %d generations. Please try again tomorrow.",
			a.store.DailyLimit(),
		)
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: msg})
	case errors.Is(err, generate.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, generate.ErrMalformedResponse),
		errors.Is(err, generate.ErrIncompleteResponse):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: "The model returned an unusable response. Please try again.",
		})
	case errors.Is(err, generate.ErrTransport):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: "The AI service could not be reached. Please try again.",
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "Something went wrong. Please try again.",
		})
	}
}

// decodeBody unmarshals a JSON request body into dst, rejecting unknown
// fields so typos in the client payload surface immediately.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func workspaceID(r *http.Request) string {
	return middleware.WorkspaceFromCtx(r.Context())
}

// Health reports service liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
