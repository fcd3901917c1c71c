// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"regexp"
)

const (
	// WorkspaceCookieName identifies the anonymous per-browser workspace.
	WorkspaceCookieName = "fs_workspace"

	// workspaceIDLength is the byte length of the random workspace ID
	// (32 bytes = 64 hex chars).
	workspaceIDLength = 32

	// workspaceCookieMaxAge keeps the workspace alive for a year of
	// inactivity; every response refreshes it.
	workspaceCookieMaxAge = 365 * 24 * 60 * 60
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// workspaceKey is the context key for the workspace ID.
const workspaceKey contextKey = "workspace"

// validWorkspaceID guards against forged cookie values being used as
// storage key fragments.
var validWorkspaceID = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Workspace ensures every request carries an anonymous workspace ID.
// There are no accounts: the cookie alone scopes all persisted state
// (theme, draft, history, usage) to one browser. A missing or malformed
// cookie gets a fresh random ID, which starts an empty workspace.
func Workspace(secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cookie, err := r.Cookie(WorkspaceCookieName); err == nil && validWorkspaceID.MatchString(cookie.Value) {
				id = cookie.Value
			}

			if id == "" {
				fresh, err := generateWorkspaceID()
				if err != nil {
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				id = fresh
			}

			http.SetCookie(w, &http.Cookie{
				Name:     WorkspaceCookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   secureCookies,
				SameSite: http.SameSiteLaxMode,
				MaxAge:   workspaceCookieMaxAge,
			})

			ctx := context.WithValue(r.Context(), workspaceKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WorkspaceFromCtx returns the workspace ID set by the Workspace
// middleware, or "" when the middleware did not run.
func WorkspaceFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(workspaceKey).(string)
	return id
}

// generateWorkspaceID creates a cryptographically random workspace identifier.
func generateWorkspaceID() (string, error) {
	b := make([]byte, workspaceIDLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
