// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// DefaultBrandColor is applied when a draft or request omits the brand color.
const DefaultBrandColor = "#0808F5"

// HistoryPrompt records the exact inputs of a past generation. ToolMode
// selects which of the remaining fields are meaningful: Context, Caption
// and Mode belong to the idea generator; RawContent and OutputFormat to
// the content structurer. Logo holds the original data URI, or nil when
// none was supplied.
type HistoryPrompt struct {
	ToolMode     ToolMode     `json:"toolMode"`
	Context      string       `json:"context,omitempty"`
	Caption      string       `json:"caption,omitempty"`
	Mode         DesignMode   `json:"mode,omitempty"`
	RawContent   string       `json:"rawContent,omitempty"`
	OutputFormat OutputFormat `json:"outputFormat,omitempty"`
	Logo         *string      `json:"logo"`
	BrandColor   string       `json:"brandColor"`
}

// HistoryResult holds whichever outcome the generation produced.
type HistoryResult struct {
	DesignIdea        *DesignIdea       `json:"designIdea,omitempty"`
	StructuredContent StructuredContent `json:"structuredContent,omitempty"`
}

// HistoryItem is one completed generation. IDs are creation-time based
// and strictly increasing, so sorting by ID descending yields
// newest-first order.
type HistoryItem struct {
	ID     int64         `json:"id"`
	Date   string        `json:"date"`
	Prompt HistoryPrompt `json:"prompt"`
	Result HistoryResult `json:"result"`
}

// Draft is a single snapshot of every form field, saved and restored as
// one unit. At most one draft exists per workspace.
type Draft struct {
	ToolMode     ToolMode     `json:"toolMode"`
	Context      string       `json:"context"`
	Caption      string       `json:"caption"`
	Mode         DesignMode   `json:"mode"`
	RawContent   string       `json:"rawContent"`
	OutputFormat OutputFormat `json:"outputFormat"`
	Logo         *string      `json:"logo"`
	BrandColor   string       `json:"brandColor"`
}

// ApplyDefaults fills absent enum and color fields with their initial
// form values, mirroring what a fresh session starts with.
func (d *Draft) ApplyDefaults() {
	if d.ToolMode == "" {
		d.ToolMode = ToolIdeaGenerator
	}
	if d.Mode == "" {
		d.Mode = ModeStandardFlyer
	}
	if d.OutputFormat == "" {
		d.OutputFormat = FormatFlyerPoster
	}
	if d.BrandColor == "" {
		d.BrandColor = DefaultBrandColor
	}
}

// UsageState tracks how many generations happened on a given day.
// LastResetDate is a calendar date in ISO form (YYYY-MM-DD); when the
// current date differs, the count starts over.
type UsageState struct {
	Count         int    `json:"count"`
	LastResetDate string `json:"lastResetDate"`
}

// SearchSource is one web source that grounded a search summary.
type SearchSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// SearchResult is a grounded real-time lookup: a short summary plus the
// sources it was drawn from. An empty source list is valid.
type SearchResult struct {
	Summary string         `json:"summary"`
	Sources []SearchSource `json:"sources"`
}
