// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"strings"
	"testing"

	"flyerspark/internal/models"
)

// ---------- ParseDataURI ----------

func TestParseDataURI(t *testing.T) {
	t.Run("decodes mime and payload", func(t *testing.T) {
		inline, err := ParseDataURI("data:image/jpeg;base64,aGVsbG8=")
		if err != nil {
			t.Fatalf("ParseDataURI: unexpected error: %v", err)
		}
		if inline.MIMEType != "image/jpeg" {
			t.Errorf("mime: got %q, want %q", inline.MIMEType, "image/jpeg")
		}
		if string(inline.Data) != "hello" {
			t.Errorf("data: got %q, want %q", inline.Data, "hello")
		}
	})

	t.Run("missing mime falls back to png", func(t *testing.T) {
		inline, err := ParseDataURI("data:;base64,aGVsbG8=")
		if err != nil {
			t.Fatalf("ParseDataURI: unexpected error: %v", err)
		}
		if inline.MIMEType != "image/png" {
			t.Errorf("mime: got %q, want %q", inline.MIMEType, "image/png")
		}
	})

	t.Run("rejects URI without comma", func(t *testing.T) {
		if _, err := ParseDataURI("data:image/png;base64"); err == nil {
			t.Fatal("expected error for malformed URI, got nil")
		}
	})

	t.Run("rejects invalid base64", func(t *testing.T) {
		if _, err := ParseDataURI("data:image/png;base64,???"); err == nil {
			t.Fatal("expected error for invalid base64, got nil")
		}
	})
}

// ---------- BuildIdea ----------

func TestBuildIdeaWithoutLogo(t *testing.T) {
	parts, err := BuildIdea(IdeaRequest{
		Context:    "Grand opening for a new coffee shop",
		Caption:    "Freshly brewed happiness",
		Mode:       models.ModeStandardFlyer,
		BrandColor: "#0808F5",
	})
	if err != nil {
		t.Fatalf("BuildIdea: unexpected error: %v", err)
	}

	if len(parts) != 1 {
		t.Fatalf("parts: got %d, want 1", len(parts))
	}
	if parts[0].InlineData != nil {
		t.Error("no image part expected without a logo")
	}

	text := parts[0].Text
	for _, want := range []string{
		"**Flyer Context:** Grand opening for a new coffee shop",
		"**Flyer Caption:** Freshly brewed happiness",
		"**Design Mode:** Standard Flyer",
		"WCAG AA",
		"#0808F5",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(text, "provided their logo") {
		t.Error("logo clause present without a logo")
	}
}

func TestBuildIdeaWithLogo(t *testing.T) {
	parts, err := BuildIdea(IdeaRequest{
		Context: "ctx",
		Caption: "cap",
		Mode:    models.ModeCarousel,
		Logo:    "data:image/png;base64,aGVsbG8=",
	})
	if err != nil {
		t.Fatalf("BuildIdea: unexpected error: %v", err)
	}

	if len(parts) != 2 {
		t.Fatalf("parts: got %d, want 2", len(parts))
	}
	if parts[0].InlineData == nil {
		t.Fatal("logo must be the first part")
	}
	if parts[1].InlineData != nil {
		t.Fatal("second part must be text")
	}
	if !strings.Contains(parts[1].Text, "provided their logo") {
		t.Error("logo analysis clause missing from the prompt")
	}
}

func TestBuildIdeaOmitsBrandColorClauseWhenEmpty(t *testing.T) {
	parts, err := BuildIdea(IdeaRequest{Context: "c", Caption: "x", Mode: models.ModeQuiz})
	if err != nil {
		t.Fatalf("BuildIdea: unexpected error: %v", err)
	}
	if strings.Contains(parts[0].Text, "primary brand color") {
		t.Error("brand color clause present without a brand color")
	}
}

func TestBuildIdeaPropagatesBadLogo(t *testing.T) {
	_, err := BuildIdea(IdeaRequest{Context: "c", Mode: models.ModeReel, Logo: "garbage"})
	if err == nil {
		t.Fatal("expected error for undecodable logo, got nil")
	}
}

// ---------- BuildStructure ----------

func TestBuildStructurePerFormatPersona(t *testing.T) {
	cases := map[models.OutputFormat]string{
		models.FormatFlyerPoster: "expert copywriter",
		models.FormatBrochure:    "tri-fold brochure",
		models.FormatSocialPost:  "social media manager",
		models.FormatArticle:     "skilled editor",
	}

	for format, marker := range cases {
		parts, err := BuildStructure("some raw content", format)
		if err != nil {
			t.Fatalf("BuildStructure(%q): unexpected error: %v", format, err)
		}
		if len(parts) != 1 || parts[0].InlineData != nil {
			t.Fatalf("BuildStructure(%q): want a single text part", format)
		}
		if !strings.Contains(parts[0].Text, marker) {
			t.Errorf("BuildStructure(%q): prompt missing persona marker %q", format, marker)
		}
		if !strings.Contains(parts[0].Text, "some raw content") {
			t.Errorf("BuildStructure(%q): prompt missing the source content", format)
		}
	}
}

func TestBuildStructureUnknownFormat(t *testing.T) {
	if _, err := BuildStructure("content", "Billboard"); err == nil {
		t.Fatal("expected error for unknown format, got nil")
	}
}

// ---------- BuildRegenerate / BuildSearch ----------

func TestBuildRegenerate(t *testing.T) {
	parts := BuildRegenerate("summer festival")
	if len(parts) != 1 {
		t.Fatalf("parts: got %d, want 1", len(parts))
	}
	if !strings.Contains(parts[0].Text, "**Flyer Context:** summer festival") {
		t.Error("prompt missing the flyer context")
	}
	if !strings.Contains(parts[0].Text, "distinct from any previous suggestions") {
		t.Error("prompt missing the novelty instruction")
	}
}

func TestBuildSearch(t *testing.T) {
	text := BuildSearch("vegan bakery trends")
	if !strings.Contains(text, `"vegan bakery trends"`) {
		t.Error("prompt missing the quoted query")
	}
	if !strings.Contains(text, "under 100 words") {
		t.Error("prompt missing the length constraint")
	}
}
