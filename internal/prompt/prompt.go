// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package prompt builds the multimodal request payloads sent to the
// model. A payload is an ordered list of parts: when the user attaches
// a logo it travels as an inline image part placed before the text, so
// the model sees the brand identity before reading the brief.
package prompt

import (
	"encoding/base64"
	"fmt"
	"strings"

	"flyerspark/internal/models"
)

// InlineData is a raw media attachment for one request part.
type InlineData struct {
	MIMEType string
	Data     []byte
}

// Part is one element of a generation request. Exactly one of Text or
// InlineData is set.
type Part struct {
	Text       string
	InlineData *InlineData
}

// ParseDataURI decodes a "data:<mime>;base64,<payload>" URI into its
// media type and raw bytes. A missing or unrecognizable media type
// falls back to image/png.
func ParseDataURI(uri string) (*InlineData, error) {
	header, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, fmt.Errorf("prompt: malformed data URI")
	}

	mimeType := "image/png"
	if start := strings.IndexByte(header, ':'); start != -1 {
		meta := header[start+1:]
		if end := strings.IndexByte(meta, ';'); end != -1 {
			meta = meta[:end]
		}
		if meta != "" {
			mimeType = meta
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("prompt: decode data URI payload: %w", err)
	}

	return &InlineData{MIMEType: mimeType, Data: data}, nil
}

// IdeaRequest holds the inputs for building an idea-generation payload.
type IdeaRequest struct {
	Context    string
	Caption    string
	Mode       models.DesignMode
	Logo       string // data URI, empty when no logo was attached
	BrandColor string
}

// BuildIdea assembles the ordered parts for an idea-generation call.
// The logo, when present, becomes the first part.
func BuildIdea(req IdeaRequest) ([]Part, error) {
	var b strings.Builder
	b.WriteString("Based on the following flyer details, generate a cohesive set of design suggestions.\n")
	b.WriteString("The output must be a JSON object matching the provided schema.\n")
	b.WriteString("Ensure the tool name you create is short and catchy.\n")
	b.WriteString("The design ideas should be creative, modern, and relevant to the context.\n\n")
	b.WriteString("**Accessibility is critical**: When generating the `colorPalette`, you must ensure the colors have sufficient contrast ratios for readability, especially between background colors and potential text colors (like primary or secondary). Aim for combinations that would meet WCAG AA standards. In the `designIdea.concept`, you must briefly mention how the chosen color palette ensures good readability and visual clarity due to its high contrast.\n")

	if req.Logo != "" {
		b.WriteString("\nA user has provided their logo. Analyze the logo for its style, colors, and overall brand identity. The color palette, typography, and visual suggestions should be strongly inspired by or complementary to the provided logo to ensure brand consistency.\n")
	}
	if req.BrandColor != "" {
		fmt.Fprintf(&b, "\nA user has also provided their primary brand color: %s. This color MUST be featured prominently in the suggested color palette (e.g., as the 'Primary' or 'Accent' color). The rest of the palette should be complementary to this color, while still maintaining high contrast for accessibility.\n", req.BrandColor)
	}

	fmt.Fprintf(&b, "\n**Flyer Context:** %s\n", req.Context)
	fmt.Fprintf(&b, "**Flyer Caption:** %s\n", req.Caption)
	fmt.Fprintf(&b, "**Design Mode:** %s\n", req.Mode)

	parts := []Part{{Text: b.String()}}

	if req.Logo != "" {
		inline, err := ParseDataURI(req.Logo)
		if err != nil {
			return nil, err
		}
		parts = append([]Part{{InlineData: inline}}, parts...)
	}

	return parts, nil
}

// structurerInstructions holds the persona instruction for each output
// format. The wording frames the model's role before the source content.
var structurerInstructions = map[models.OutputFormat]string{
	models.FormatFlyerPoster: `You are an expert copywriter tasked with turning raw text into compelling content for a flyer or poster. Analyze the original content and restructure it into the following components:
- **Headlines**: Generate 3-4 catchy, attention-grabbing headlines.
- **Body**: Rewrite the core message into a concise and persuasive body text. It should be easy to read at a glance.
- **Key Features**: Extract and list 3-5 of the most important features, benefits, or selling points as a bulleted list.
- **Calls to Action (CTAs)**: Create 2-3 clear, strong calls to action that tell the reader what to do next.`,
	models.FormatBrochure: `You are a marketing specialist designing a tri-fold brochure. Structure the provided content to fit a standard brochure layout. Break it down as follows:
- **Front Panel**: Create a powerful headline and an engaging tagline. This is the first thing people see, so it must be compelling.
- **Inner Panels**: Divide the main information into 2-3 logical sections. Each section should have a clear title and detailed content. This is where you elaborate on the product, service, or event.
- **Back Panel**: Write a final, strong call to action and extract or create placeholder contact information (e.g., website, phone number, address).`,
	models.FormatSocialPost: `You are a social media manager creating an engaging post. Convert the provided content into a format optimized for social platforms like Instagram or Facebook. Follow this structure:
- **Hook**: Write an attention-grabbing first sentence or a question to stop users from scrolling.
- **Body**: Rewrite the main content in a conversational and easy-to-read tone. Use short paragraphs and emojis where appropriate.
- **Call to Action (CTA)**: Provide a clear and direct call to action (e.g., "Click the link in bio!", "Comment your thoughts below!").
- **Hashtags**: Generate a list of 5-7 relevant and trending hashtags to increase reach.`,
	models.FormatArticle: `You are a skilled editor structuring raw text into a well-organized article or blog post. Your task is to organize the content for maximum readability and engagement. Use the following structure:
- **Title Suggestions**: Provide 3-4 engaging and SEO-friendly title ideas.
- **Introduction**: Write a compelling introductory paragraph that hooks the reader and briefly explains what the article is about.
- **Sections**: Break down the main body of the content into 2-4 logical sections. Each section must have a clear, descriptive title. The content within each section should be well-written and informative.
- **Conclusion**: Write a concluding paragraph that summarizes the key points and provides a final takeaway or call to action for the reader.`,
}

// BuildStructure assembles the single text part for a content-structuring
// call. The format must be one of the supported output formats.
func BuildStructure(rawContent string, format models.OutputFormat) ([]Part, error) {
	instruction, ok := structurerInstructions[format]
	if !ok {
		return nil, fmt.Errorf("prompt: unsupported format for content structuring: %q", format)
	}

	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\nThe output must be a JSON object matching the provided schema. Do not deviate from the schema structure. Base your output entirely on the original content provided below.\n\n")
	b.WriteString("**Original Content:**\n")
	b.WriteString(rawContent)

	return []Part{{Text: b.String()}}, nil
}

// BuildRegenerate assembles the text part for a partial-regenerate call.
func BuildRegenerate(context string) []Part {
	var b strings.Builder
	b.WriteString("Based on the following flyer context, generate a new, alternative set of visual element ideas and a new paragraph of suggested content.\n")
	b.WriteString("The output must be a JSON object matching the provided schema.\n")
	b.WriteString("The ideas should be creative and distinct from any previous suggestions.\n\n")
	fmt.Fprintf(&b, "**Flyer Context:** %s\n", context)

	return []Part{{Text: b.String()}}
}

// BuildSearch assembles the text prompt for a grounded real-time lookup.
func BuildSearch(query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on a real-time Google Search, provide a concise summary about %q.\n", query)
	b.WriteString("The summary should be objective and informative, suitable for gathering context to create a marketing flyer.\n")
	b.WriteString("Highlight key facts, dates, or unique selling points. Keep the summary under 100 words.\n")
	b.WriteString(`Do not add any conversational fluff or introductory phrases like "Here is a summary...". Just provide the summary directly.`)
	b.WriteString("\n")

	return b.String()
}
