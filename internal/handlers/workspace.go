// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"flyerspark/internal/models"
)

// HistoryList handles GET /api/history. A workspace with no saved
// generations gets an empty list, never an error.
func (a *API) HistoryList(w http.ResponseWriter, r *http.Request) {
	items, err := a.store.History(r.Context(), workspaceID(r))
	if err != nil {
		slog.Error("history load failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not load history."})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// HistoryItem handles GET /api/history/{id}.
func (a *API) HistoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid history id."})
		return
	}

	item, err := a.store.HistoryItem(r.Context(), workspaceID(r), id)
	if err != nil {
		slog.Error("history item load failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not load history."})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "History item not found."})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// HistoryClear handles DELETE /api/history. Clearing is irreversible.
func (a *API) HistoryClear(w http.ResponseWriter, r *http.Request) {
	if err := a.store.ClearHistory(r.Context(), workspaceID(r)); err != nil {
		slog.Error("history clear failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not clear history."})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DraftGet handles GET /api/draft. When no draft exists the defaults for a
// fresh session are returned, so the client always has a usable form state.
func (a *API) DraftGet(w http.ResponseWriter, r *http.Request) {
	draft, err := a.store.Draft(r.Context(), workspaceID(r))
	if err != nil {
		slog.Error("draft load failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not load draft."})
		return
	}
	if draft == nil {
		draft = &models.Draft{}
		draft.ApplyDefaults()
	}
	writeJSON(w, http.StatusOK, draft)
}

// DraftPut handles PUT /api/draft.
func (a *API) DraftPut(w http.ResponseWriter, r *http.Request) {
	var draft models.Draft
	if err := decodeBody(r, &draft); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body."})
		return
	}

	if err := a.store.SaveDraft(r.Context(), workspaceID(r), &draft); err != nil {
		slog.Error("draft save failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not save draft."})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DraftDelete handles DELETE /api/draft.
func (a *API) DraftDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteDraft(r.Context(), workspaceID(r)); err != nil {
		slog.Error("draft delete failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not delete draft."})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type themeBody struct {
	Theme string `json:"theme"`
}

// ThemeGet handles GET /api/theme.
func (a *API) ThemeGet(w http.ResponseWriter, r *http.Request) {
	theme, err := a.store.Theme(r.Context(), workspaceID(r))
	if err != nil {
		slog.Error("theme load failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not load theme."})
		return
	}
	writeJSON(w, http.StatusOK, themeBody{Theme: theme})
}

// ThemePut handles PUT /api/theme. Only "light" and "dark" are accepted.
func (a *API) ThemePut(w http.ResponseWriter, r *http.Request) {
	var body themeBody
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body."})
		return
	}

	if body.Theme != "light" && body.Theme != "dark" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Theme must be \"light\" or \"dark\"."})
		return
	}
	if err := a.store.SaveTheme(r.Context(), workspaceID(r), body.Theme); err != nil {
		slog.Error("theme save failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not save theme."})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// usageReply reports the current quota position for a workspace.
type usageReply struct {
	Count         int    `json:"count"`
	Limit         int    `json:"limit"`
	Remaining     int    `json:"remaining"`
	LimitExceeded bool   `json:"limitExceeded"`
	ResetDate     string `json:"resetDate"`
}

// UsageGet handles GET /api/usage.
func (a *API) UsageGet(w http.ResponseWriter, r *http.Request) {
	state, err := a.store.Usage(r.Context(), workspaceID(r))
	if err != nil {
		slog.Error("usage load failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not load usage."})
		return
	}

	limit := a.store.DailyLimit()
	remaining := limit - state.Count
	if remaining < 0 {
		remaining = 0
	}
	writeJSON(w, http.StatusOK, usageReply{
		Count:         state.Count,
		Limit:         limit,
		Remaining:     remaining,
		LimitExceeded: state.Count >= limit,
		ResetDate:     state.LastResetDate,
	})
}
