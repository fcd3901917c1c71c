// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "encoding/json"

// StructuredContent is the result of one content-structuring call. Its
// shape depends on the requested OutputFormat, so it is carried as raw
// JSON end to end: the server checks required top-level fields against
// the response schema and otherwise passes the payload through untouched.
type StructuredContent = json.RawMessage

// FlyerPosterContent is the structured shape for the "Flyer / Poster" format.
type FlyerPosterContent struct {
	Headlines   []string `json:"headlines"`
	Body        string   `json:"body"`
	KeyFeatures []string `json:"keyFeatures"`
	CTAs        []string `json:"ctas"`
}

// BrochurePanel is one titled section of a brochure.
type BrochurePanel struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BrochureContent is the structured shape for the "Brochure" format,
// laid out as the three faces of a tri-fold.
type BrochureContent struct {
	FrontPanel struct {
		Headline string `json:"headline"`
		Tagline  string `json:"tagline"`
	} `json:"frontPanel"`
	InnerPanels []BrochurePanel `json:"innerPanels"`
	BackPanel   struct {
		CTA         string `json:"cta"`
		ContactInfo string `json:"contactInfo"`
	} `json:"backPanel"`
}

// SocialMediaPostContent is the structured shape for the "Social Media Post" format.
type SocialMediaPostContent struct {
	Hook     string   `json:"hook"`
	Body     string   `json:"body"`
	Hashtags []string `json:"hashtags"`
	CTA      string   `json:"cta"`
}

// ArticleSection is one titled section of an article body.
type ArticleSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ArticleContent is the structured shape for the "Article / Blog Post" format.
type ArticleContent struct {
	TitleSuggestions []string         `json:"titleSuggestions"`
	Introduction     string           `json:"introduction"`
	Sections         []ArticleSection `json:"sections"`
	Conclusion       string           `json:"conclusion"`
}
