// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flyerspark/internal/models"
	"flyerspark/internal/prompt"
)

// geminiProvider implements the Provider interface using the Google
// Gemini REST API (POST /v1beta/models/{model}:generateContent).
type geminiProvider struct {
	config ProviderConfig
	client *http.Client
}

// newGemini creates a new Google Gemini provider.
func newGemini(cfg ProviderConfig) *geminiProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	return &geminiProvider{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *geminiProvider) Name() string { return "gemini" }

// GenerateJSON sends a generateContent request with responseMimeType set
// to application/json and the given response schema, forcing the model
// to emit schema-conformant JSON. Returns the raw JSON text.
func (p *geminiProvider) GenerateJSON(ctx context.Context, parts []prompt.Part, responseSchema any) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Parts: toGeminiParts(parts)}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}

	result, err := p.generateContent(ctx, p.config.Model, body, p.client)
	if err != nil {
		return "", err
	}

	text := candidateText(result)
	if text == "" {
		return "", fmt.Errorf("gemini: no text in response")
	}
	return strings.TrimSpace(text), nil
}

// Search sends a generateContent request with the Google Search tool
// enabled and returns the grounded summary together with the cited web
// sources. Grounding chunks without a URI are dropped; a missing title
// falls back to the URI.
func (p *geminiProvider) Search(ctx context.Context, promptText string) (*models.SearchResult, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: promptText}}}},
		Tools:    []geminiTool{{GoogleSearch: &struct{}{}}},
	}

	result, err := p.generateContent(ctx, p.config.Model, body, p.client)
	if err != nil {
		return nil, err
	}

	summary := strings.TrimSpace(candidateText(result))
	if summary == "" {
		return nil, fmt.Errorf("gemini: no summary in response")
	}

	var sources []models.SearchSource
	if len(result.Candidates) > 0 && result.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range result.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			title := chunk.Web.Title
			if title == "" {
				title = chunk.Web.URI
			}
			sources = append(sources, models.SearchSource{URI: chunk.Web.URI, Title: title})
		}
	}

	return &models.SearchResult{Summary: summary, Sources: sources}, nil
}

// GenerateImage creates an image using Gemini's native generateContent API
// with responseModalities set to IMAGE. Uses ModelImage from config
// (e.g., "gemini-2.5-flash-image"). Returns image bytes and the content type.
func (p *geminiProvider) GenerateImage(ctx context.Context, promptText string) ([]byte, string, error) {
	model := p.config.ModelImage
	if model == "" {
		return nil, "", fmt.Errorf("gemini: image generation requires GEMINI_MODEL_IMAGE to be set")
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: "Generate an image of: " + promptText}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		},
	}

	// Image models are slower than text models.
	imgClient := &http.Client{Timeout: 120 * time.Second}
	result, err := p.generateContent(ctx, model, body, imgClient)
	if err != nil {
		return nil, "", err
	}

	for _, c := range result.Candidates {
		for _, part := range c.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				imgBytes, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					return nil, "", fmt.Errorf("gemini image decode base64: %w", err)
				}
				contentType := part.InlineData.MimeType
				if contentType == "" {
					contentType = "image/png"
				}
				return imgBytes, contentType, nil
			}
		}
	}

	return nil, "", fmt.Errorf("gemini image: no image data in response")
}

// generateContent performs one generateContent round trip and decodes
// the response envelope.
func (p *geminiProvider) generateContent(ctx context.Context, model string, body geminiRequest, client *http.Client) (*geminiResponse, error) {
	if model == "" {
		model = p.config.Model
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("gemini marshal: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", p.config.BaseURL, model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.config.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("gemini unmarshal: %w", err)
	}

	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: no candidates returned")
	}

	return &result, nil
}

// toGeminiParts converts prompt parts into the wire format, preserving
// order. Inline data is base64-encoded as the API requires.
func toGeminiParts(parts []prompt.Part) []geminiPart {
	out := make([]geminiPart, 0, len(parts))
	for _, part := range parts {
		if part.InlineData != nil {
			out = append(out, geminiPart{
				InlineData: &geminiInlineData{
					MimeType: part.InlineData.MIMEType,
					Data:     base64.StdEncoding.EncodeToString(part.InlineData.Data),
				},
			})
			continue
		}
		out = append(out, geminiPart{Text: part.Text})
	}
	return out
}

// candidateText concatenates the text parts of the first candidate.
func candidateText(result *geminiResponse) string {
	if len(result.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}

// --- Gemini API types ---

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType   string   `json:"responseMimeType,omitempty"`
	ResponseSchema     any      `json:"responseSchema,omitempty"`
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
	Tools            []geminiTool            `json:"tools,omitempty"`
}

type geminiWebSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type geminiGroundingChunk struct {
	Web *geminiWebSource `json:"web,omitempty"`
}

type geminiGroundingMetadata struct {
	GroundingChunks []geminiGroundingChunk `json:"groundingChunks"`
}

type geminiCandidate struct {
	Content           geminiContent            `json:"content"`
	GroundingMetadata *geminiGroundingMetadata `json:"groundingMetadata,omitempty"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}
