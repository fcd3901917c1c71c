// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package schema declares the response schemas sent to the model with
// every structured generation request. The field descriptions are part
// of the product contract: they steer what the model produces, so the
// wording here is deliberate and should not be edited casually.
package schema

import (
	"fmt"

	"flyerspark/internal/models"
)

// Schema is a declarative response schema in the shape the Gemini API
// expects under generationConfig.responseSchema.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Schema type names, matching the Gemini API's OpenAPI subset.
const (
	TypeObject = "OBJECT"
	TypeString = "STRING"
	TypeArray  = "ARRAY"
)

func str(desc string) *Schema { return &Schema{Type: TypeString, Description: desc} }

func strList(desc string) *Schema {
	return &Schema{Type: TypeArray, Items: &Schema{Type: TypeString}, Description: desc}
}

// visualsSchema describes the visual-direction block shared by the idea
// and regenerate schemas (with different steering text).
func visualsSchema(desc, iconDesc, bgDesc, imgDesc string) *Schema {
	return &Schema{
		Type:        TypeObject,
		Description: desc,
		Properties: map[string]*Schema{
			"iconStyle":        str(iconDesc),
			"background":       str(bgDesc),
			"imageSuggestions": strList(imgDesc),
		},
		Required: []string{"iconStyle", "background", "imageSuggestions"},
	}
}

// Idea is the response schema for idea generation. The model must return
// a creative tool name plus a complete design idea.
var Idea = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"toolName": str("A creative and short name for this AI flyer design assistant tool. It should be catchy and memorable."),
		"designIdea": {
			Type: TypeObject,
			Properties: map[string]*Schema{
				"concept":          str("A brief, one-sentence summary of the overall design concept or theme, inspired by the user's context. It should also include a brief note on why the chosen color palette is effective for contrast and readability."),
				"titleSuggestions": strList("A list of 3-4 catchy title or headline suggestions for the flyer."),
				"suggestedContent": str("A short paragraph (2-3 sentences) of suggested body content/copy for the flyer based on the provided context and caption."),
				"ctas":             strList("A list of 2-3 compelling call-to-action (CTA) phrases."),
				"visuals": visualsSchema(
					"A set of specific suggestions for visual elements, broken down into icon style, background, and image placeholders.",
					`A suggested style for icons, e.g., "Minimalist line art" or "Colorful flat icons".`,
					`A suggestion for the flyer's background, e.g., "Abstract geometric pattern" or "Soft gradient from blue to purple".`,
					`A list of 2-3 specific placeholder image descriptions, e.g., "A high-quality photo of a steaming cup of coffee" or "An illustration of diverse people collaborating".`,
				),
				"colorPalette": {
					Type:        TypeArray,
					Description: "A suggested color palette with 4 complementary, high-contrast colors suitable for accessibility (WCAG AA). If a logo or brand color was provided, these colors should be inspired by or complementary to them while maintaining high contrast.",
					Items: &Schema{
						Type: TypeObject,
						Properties: map[string]*Schema{
							"name": str("e.g., Primary, Secondary, Accent, Background"),
							"hex":  str("The hex color code, e.g., #FFFFFF"),
						},
						Required: []string{"name", "hex"},
					},
				},
				"modeSpecificContent": str("Detailed, structured content suggestion based on the selected design mode. If 'Carousel', provide formatted content for 3-4 slides (e.g., using Slide 1:, Slide 2:). If 'Quiz', provide 2-3 questions with options and answers. If 'Video/Animation' or 'Reel', suggest a brief script or storyboard. If 'Infographic', suggest key data points and sections. For 'Standard Flyer', this can be a more detailed version of the main content."),
			},
			Required: []string{"concept", "titleSuggestions", "suggestedContent", "ctas", "visuals", "colorPalette", "modeSpecificContent"},
		},
	},
	Required: []string{"toolName", "designIdea"},
}

// Regenerate is the response schema for the partial regenerate call,
// which replaces only the visuals and suggested content of an idea.
var Regenerate = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"visuals": visualsSchema(
			"A new set of specific suggestions for visual elements, distinct from previous ideas.",
			"A new and creative suggested style for icons, different from any previous suggestion.",
			"A new and creative suggestion for the flyer's background.",
			"A list of 2-3 new and specific placeholder image descriptions.",
		),
		"suggestedContent": str("A new, alternative short paragraph (2-3 sentences) of suggested body content/copy for the flyer. It should be creative and distinct from any previous suggestion."),
	},
	Required: []string{"visuals", "suggestedContent"},
}

// structurer maps each output format to its response schema.
var structurer = map[models.OutputFormat]*Schema{
	models.FormatFlyerPoster: {
		Type: TypeObject,
		Properties: map[string]*Schema{
			"headlines":   strList("A list of 3-4 catchy headline suggestions."),
			"body":        str("A concise and persuasive body text, rewritten from the source content."),
			"keyFeatures": strList("A bulleted list of 3-5 key features or benefits."),
			"ctas":        strList("A list of 2-3 clear and compelling call-to-action phrases."),
		},
		Required: []string{"headlines", "body", "keyFeatures", "ctas"},
	},
	models.FormatBrochure: {
		Type: TypeObject,
		Properties: map[string]*Schema{
			"frontPanel": {
				Type: TypeObject,
				Properties: map[string]*Schema{
					"headline": str("A powerful headline for the front panel."),
					"tagline":  str("An engaging tagline or sub-headline."),
				},
				Required: []string{"headline", "tagline"},
			},
			"innerPanels": {
				Type:        TypeArray,
				Description: "Content for 2-3 inner panels, detailing different aspects.",
				Items: &Schema{
					Type: TypeObject,
					Properties: map[string]*Schema{
						"title":   str("A title for an inner panel section."),
						"content": str("Detailed content for that section, broken down into a paragraph."),
					},
					Required: []string{"title", "content"},
				},
			},
			"backPanel": {
				Type: TypeObject,
				Properties: map[string]*Schema{
					"cta":         str("A final call-to-action on the back panel."),
					"contactInfo": str("Contact information (e.g., website, phone, address)."),
				},
				Required: []string{"cta", "contactInfo"},
			},
		},
		Required: []string{"frontPanel", "innerPanels", "backPanel"},
	},
	models.FormatSocialPost: {
		Type: TypeObject,
		Properties: map[string]*Schema{
			"hook":     str("An attention-grabbing first sentence or question to stop the scroll."),
			"body":     str("The main content of the post, written in a conversational tone."),
			"hashtags": strList("A list of 5-7 relevant hashtags."),
			"cta":      str(`A clear call-to-action for the post (e.g., "Link in bio!", "Comment below!").`),
		},
		Required: []string{"hook", "body", "hashtags", "cta"},
	},
	models.FormatArticle: {
		Type: TypeObject,
		Properties: map[string]*Schema{
			"titleSuggestions": strList("A list of 3-4 engaging title ideas for the article."),
			"introduction":     str("A compelling introductory paragraph that hooks the reader."),
			"sections": {
				Type:        TypeArray,
				Description: "The main body of the article, broken down into 2-4 logical sections.",
				Items: &Schema{
					Type: TypeObject,
					Properties: map[string]*Schema{
						"title":   str("A clear and descriptive title for a section of the article."),
						"content": str("The body content for that section, organized into paragraphs."),
					},
					Required: []string{"title", "content"},
				},
			},
			"conclusion": str("A concluding paragraph that summarizes the key points and provides a final takeaway."),
		},
		Required: []string{"titleSuggestions", "introduction", "sections", "conclusion"},
	},
}

// ForFormat returns the response schema for a content-structuring format.
// Unknown formats fail immediately, before any network call is made.
func ForFormat(format models.OutputFormat) (*Schema, error) {
	s, ok := structurer[format]
	if !ok {
		return nil, fmt.Errorf("schema: unsupported format for content structuring: %q", format)
	}
	return s, nil
}
