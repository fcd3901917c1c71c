// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"flyerspark/internal/models"
)

const (
	// MaxHistoryItems bounds the generation history per workspace.
	MaxHistoryItems = 20

	// DefaultDailyLimit is the number of generations allowed per day.
	DefaultDailyLimit = 5

	// DefaultTheme is applied when no theme preference was saved.
	DefaultTheme = "dark"
)

// Record key suffixes within a workspace namespace.
const (
	recHistory = "history"
	recDraft   = "draft"
	recTheme   = "theme"
	recUsage   = "usage"
)

// Store provides typed access to one KV backend, scoped per workspace.
// All reads treat corrupt records as absent: the record is deleted and
// a zero value returned, so a bad blob can never wedge a session.
type Store struct {
	kv         KV
	dailyLimit int
	now        func() time.Time
}

// NewStore creates a workspace store. A non-positive dailyLimit applies
// DefaultDailyLimit.
func NewStore(kv KV, dailyLimit int) *Store {
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyLimit
	}
	return &Store{
		kv:         kv,
		dailyLimit: dailyLimit,
		now:        time.Now,
	}
}

// DailyLimit returns the configured number of generations per day.
func (s *Store) DailyLimit() int {
	return s.dailyLimit
}

// key builds the storage key for one record of one workspace.
func key(workspaceID, record string) string {
	return fmt.Sprintf("workspace:%s:%s", workspaceID, record)
}

// load reads and decodes a record into dst. Returns (false, nil) when
// the record is absent. A record that fails to decode is removed and
// reported as absent.
func (s *Store) load(ctx context.Context, workspaceID, record string, dst any) (bool, error) {
	k := key(workspaceID, record)

	raw, err := s.kv.Get(ctx, k)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("discarding corrupt workspace record", "key", k, "error", err)
		if delErr := s.kv.Delete(ctx, k); delErr != nil {
			slog.Warn("failed to remove corrupt workspace record", "key", k, "error", delErr)
		}
		return false, nil
	}

	return true, nil
}

// save encodes and writes a record.
func (s *Store) save(ctx context.Context, workspaceID, record string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("workspace marshal %s: %w", record, err)
	}
	return s.kv.Set(ctx, key(workspaceID, record), payload)
}

// --- History ---

// History returns the workspace's generation history, newest first.
func (s *Store) History(ctx context.Context, workspaceID string) ([]models.HistoryItem, error) {
	var items []models.HistoryItem
	ok, err := s.load(ctx, workspaceID, recHistory, &items)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.HistoryItem{}, nil
	}
	return items, nil
}

// HistoryItem returns one history entry by ID, or nil when absent.
func (s *Store) HistoryItem(ctx context.Context, workspaceID string, id int64) (*models.HistoryItem, error) {
	items, err := s.History(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// RecordHistory prepends a new entry, truncates the list to
// MaxHistoryItems, and persists it as one unit. The entry's ID is
// creation-time based and strictly greater than the previous head's,
// so ordering survives rapid consecutive generations. A persistence
// failure is returned alongside the created item: the caller logs it
// and keeps the generation result, the entry is simply not durable.
func (s *Store) RecordHistory(ctx context.Context, workspaceID string, prompt models.HistoryPrompt, result models.HistoryResult) (*models.HistoryItem, error) {
	items, err := s.History(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	id := now.UnixMilli()
	if len(items) > 0 && id <= items[0].ID {
		id = items[0].ID + 1
	}

	item := models.HistoryItem{
		ID:     id,
		Date:   now.Format(time.RFC3339),
		Prompt: prompt,
		Result: result,
	}

	items = append([]models.HistoryItem{item}, items...)
	if len(items) > MaxHistoryItems {
		items = items[:MaxHistoryItems]
	}

	if err := s.save(ctx, workspaceID, recHistory, items); err != nil {
		return &item, err
	}
	return &item, nil
}

// ClearHistory removes the whole history. Irreversible.
func (s *Store) ClearHistory(ctx context.Context, workspaceID string) error {
	return s.kv.Delete(ctx, key(workspaceID, recHistory))
}

// --- Draft ---

// Draft returns the saved form snapshot, or nil when none exists. Absent
// enum fields are filled with their defaults.
func (s *Store) Draft(ctx context.Context, workspaceID string) (*models.Draft, error) {
	var draft models.Draft
	ok, err := s.load(ctx, workspaceID, recDraft, &draft)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	draft.ApplyDefaults()
	return &draft, nil
}

// SaveDraft overwrites the single draft slot.
func (s *Store) SaveDraft(ctx context.Context, workspaceID string, draft *models.Draft) error {
	return s.save(ctx, workspaceID, recDraft, draft)
}

// DeleteDraft removes the draft.
func (s *Store) DeleteDraft(ctx context.Context, workspaceID string) error {
	return s.kv.Delete(ctx, key(workspaceID, recDraft))
}

// --- Theme ---

// themeRecord wraps the theme string so the stored blob stays JSON.
type themeRecord struct {
	Theme string `json:"theme"`
}

// Theme returns the saved theme preference, defaulting to DefaultTheme.
func (s *Store) Theme(ctx context.Context, workspaceID string) (string, error) {
	var rec themeRecord
	ok, err := s.load(ctx, workspaceID, recTheme, &rec)
	if err != nil {
		return "", err
	}
	if !ok || (rec.Theme != "light" && rec.Theme != "dark") {
		return DefaultTheme, nil
	}
	return rec.Theme, nil
}

// SaveTheme persists the theme preference ("light" or "dark").
func (s *Store) SaveTheme(ctx context.Context, workspaceID, theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("workspace: invalid theme %q", theme)
	}
	return s.save(ctx, workspaceID, recTheme, themeRecord{Theme: theme})
}

// --- Usage ---

// isoDate formats a time as a calendar date (YYYY-MM-DD) in UTC. The
// daily quota rolls over at UTC midnight.
func isoDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Usage returns the current usage state, normalised for date rollover.
// The normalised state is not persisted; CheckAndIncrement does that.
func (s *Store) Usage(ctx context.Context, workspaceID string) (models.UsageState, error) {
	today := isoDate(s.now())

	var state models.UsageState
	ok, err := s.load(ctx, workspaceID, recUsage, &state)
	if err != nil {
		return models.UsageState{}, err
	}
	if !ok || state.LastResetDate != today {
		return models.UsageState{Count: 0, LastResetDate: today}, nil
	}
	return state, nil
}

// CheckAndIncrement enforces the daily quota. When the stored date is
// older than today the count resets first. If the count is below the
// limit it is incremented and persisted and true is returned; at the
// limit it returns false without incrementing. The returned state
// reflects what was (or would have been) persisted.
func (s *Store) CheckAndIncrement(ctx context.Context, workspaceID string) (bool, models.UsageState, error) {
	state, err := s.Usage(ctx, workspaceID)
	if err != nil {
		return false, models.UsageState{}, err
	}

	if state.Count >= s.dailyLimit {
		return false, state, nil
	}

	state.Count++
	if err := s.save(ctx, workspaceID, recUsage, state); err != nil {
		return true, state, err
	}
	return true, state, nil
}
