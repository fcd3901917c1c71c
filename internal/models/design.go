// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// DesignMode selects the creative direction for idea generation.
type DesignMode string

const (
	ModeStandardFlyer DesignMode = "Standard Flyer"
	ModeCarousel      DesignMode = "Carousel"
	ModeQuiz          DesignMode = "Quiz"
	ModeVideo         DesignMode = "Video/Animation"
	ModeReel          DesignMode = "Reel"
	ModeInfographic   DesignMode = "Infographic"
)

// DesignModes lists every supported design mode in display order.
var DesignModes = []DesignMode{
	ModeStandardFlyer, ModeCarousel, ModeQuiz, ModeVideo, ModeReel, ModeInfographic,
}

// Valid reports whether the mode is one of the supported design modes.
func (m DesignMode) Valid() bool {
	for _, known := range DesignModes {
		if m == known {
			return true
		}
	}
	return false
}

// ToolMode distinguishes the two generation tools the app offers.
type ToolMode string

const (
	ToolIdeaGenerator     ToolMode = "ideaGenerator"
	ToolContentStructurer ToolMode = "contentStructurer"
)

// OutputFormat selects the target shape for content structuring.
type OutputFormat string

const (
	FormatFlyerPoster OutputFormat = "Flyer / Poster"
	FormatBrochure    OutputFormat = "Brochure"
	FormatSocialPost  OutputFormat = "Social Media Post"
	FormatArticle     OutputFormat = "Article / Blog Post"
)

// OutputFormats lists every supported output format in display order.
var OutputFormats = []OutputFormat{
	FormatFlyerPoster, FormatBrochure, FormatSocialPost, FormatArticle,
}

// Valid reports whether the format is one of the supported output formats.
func (f OutputFormat) Valid() bool {
	for _, known := range OutputFormats {
		if f == known {
			return true
		}
	}
	return false
}

// Color is a single named entry in a suggested palette.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// VisualElements holds the visual direction of a design idea. It is the
// only part of a DesignIdea (together with SuggestedContent) that a
// regenerate call replaces.
type VisualElements struct {
	IconStyle        string   `json:"iconStyle"`
	Background       string   `json:"background"`
	ImageSuggestions []string `json:"imageSuggestions"`
}

// DesignIdea is the complete result of one idea-generation call.
type DesignIdea struct {
	Concept             string         `json:"concept"`
	TitleSuggestions    []string       `json:"titleSuggestions"`
	SuggestedContent    string         `json:"suggestedContent"`
	CTAs                []string       `json:"ctas"`
	Visuals             VisualElements `json:"visuals"`
	ColorPalette        []Color        `json:"colorPalette"`
	ModeSpecificContent string         `json:"modeSpecificContent"`
}

// IdeaResponse is the full AI payload for idea generation: a creative
// name for the assistant plus the design idea itself.
type IdeaResponse struct {
	ToolName   string     `json:"toolName"`
	DesignIdea DesignIdea `json:"designIdea"`
}

// Regeneration carries the partial result of a regenerate call. It
// replaces Visuals and SuggestedContent on an existing DesignIdea and
// leaves everything else untouched.
type Regeneration struct {
	Visuals          VisualElements `json:"visuals"`
	SuggestedContent string         `json:"suggestedContent"`
}

// Apply merges the regeneration into an existing idea.
func (r *Regeneration) Apply(idea *DesignIdea) {
	idea.Visuals = r.Visuals
	idea.SuggestedContent = r.SuggestedContent
}
