// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"testing"

	"github.com/terramia/faq-go/internal/model"
)

func TestBuildMetaSkipsEmptyAlternates(t *testing.T) {
	initCatalog(t)

	links := Links{
		CanonicalURL: "https://www.terramia.de/faq/sanitaer/armaturen",
		URLDe:        "https://www.terramia.de/faq/sanitaer/armaturen",
		URLEn:        "https://www.terramia.com/faq/plumbing/fittings",
	}
	m := BuildMeta(model.LocaleGerman, "Armaturen", "Fragen zu Armaturen", links)

	if m.Canonical != links.CanonicalURL {
		t.Errorf("Canonical = %q", m.Canonical)
	}
	if len(m.Alternates) != 2 {
		t.Fatalf("alternates = %d, want 2", len(m.Alternates))
	}
	for _, alt := range m.Alternates {
		if alt.Hreflang == "it" {
			t.Error("untranslated locale must not appear as alternate")
		}
	}
	if !strings.HasPrefix(m.OGImage, "https://www.terramia.de/") {
		t.Errorf("OGImage = %q", m.OGImage)
	}
}

func TestBuildFAQSchema(t *testing.T) {
	js := BuildFAQSchema([]QA{
		{Question: "Wie lange dauert der Versand?", Answer: "<p>In der Regel 3 Tage.</p><script>alert(1)</script>"},
		{Question: "", Answer: "verwaist"},
	})

	s := string(js)
	if !strings.Contains(s, `"@type":"FAQPage"`) {
		t.Errorf("schema = %s", s)
	}
	if !strings.Contains(s, "In der Regel 3 Tage.") {
		t.Error("answer text should be stripped of markup, not dropped")
	}
	if strings.Contains(s, "<p>") {
		t.Error("markup must not survive into schema text")
	}
	if strings.Contains(s, "alert(1)") {
		t.Error("script content must be dropped, not just untagged")
	}
	if strings.Contains(s, "verwaist") {
		t.Error("pairs without a question must be skipped")
	}
}

func TestBuildFAQSchemaEmpty(t *testing.T) {
	if got := BuildFAQSchema(nil); got != "" {
		t.Errorf("schema = %q, want empty", got)
	}
}
