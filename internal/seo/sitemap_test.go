// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"testing"
	"time"
)

func TestNewSitemapBuilder(t *testing.T) {
	builder := NewSitemapBuilder("https://example.de", "faq")
	if builder == nil {
		t.Fatal("NewSitemapBuilder() returned nil")
	}
	if builder.siteURL != "https://example.de" {
		t.Errorf("siteURL = %q, want %q", builder.siteURL, "https://example.de")
	}
	if len(builder.urls) != 0 {
		t.Errorf("urls length = %d, want 0", len(builder.urls))
	}
}

func TestSitemapBuilderAddIndex(t *testing.T) {
	builder := NewSitemapBuilder("https://example.de", "faq")
	builder.AddIndex()

	if len(builder.urls) != 1 {
		t.Fatalf("urls length = %d, want 1", len(builder.urls))
	}

	url := builder.urls[0]
	if url.Loc != "https://example.de/faq" {
		t.Errorf("Loc = %q, want %q", url.Loc, "https://example.de/faq")
	}
	if url.ChangeFreq != ChangeFreqWeekly {
		t.Errorf("ChangeFreq = %q, want %q", url.ChangeFreq, ChangeFreqWeekly)
	}
}

func TestSitemapBuilderAddCategory(t *testing.T) {
	builder := NewSitemapBuilder("https://example.de", "faq")
	updatedAt := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	builder.AddCategory(SitemapCategory{
		Slug:      "sanitaer",
		UpdatedAt: updatedAt,
	})

	if len(builder.urls) != 1 {
		t.Fatalf("urls length = %d, want 1", len(builder.urls))
	}

	url := builder.urls[0]
	if url.Loc != "https://example.de/faq/sanitaer" {
		t.Errorf("Loc = %q, want %q", url.Loc, "https://example.de/faq/sanitaer")
	}
	if url.LastMod != "2026-02-10T09:00:00Z" {
		t.Errorf("LastMod = %q", url.LastMod)
	}
}

func TestSitemapBuilderSkipsUntranslated(t *testing.T) {
	builder := NewSitemapBuilder("https://example.it", "faq")

	builder.AddCategory(SitemapCategory{Slug: ""})
	builder.AddQuestion(SitemapQuestion{CategorySlug: "idraulica", Slug: ""})
	builder.AddQuestion(SitemapQuestion{CategorySlug: "", Slug: "rubinetti"})

	if len(builder.urls) != 0 {
		t.Errorf("urls length = %d, want 0", len(builder.urls))
	}
}

func TestSitemapBuilderAddQuestion(t *testing.T) {
	builder := NewSitemapBuilder("https://example.de", "faq")

	builder.AddQuestion(SitemapQuestion{
		CategorySlug: "sanitaer",
		Slug:         "armaturen",
	})

	if len(builder.urls) != 1 {
		t.Fatalf("urls length = %d, want 1", len(builder.urls))
	}
	if got := builder.urls[0].Loc; got != "https://example.de/faq/sanitaer/armaturen" {
		t.Errorf("Loc = %q", got)
	}
}

func TestGenerateSitemap(t *testing.T) {
	categories := []SitemapCategory{
		{Slug: "versand"},
		{Slug: "zahlung"},
	}
	questions := []SitemapQuestion{
		{CategorySlug: "versand", Slug: "wie-lange-dauert-der-versand"},
	}

	data, err := GenerateSitemap("https://example.de", "faq", categories, questions)
	if err != nil {
		t.Fatalf("GenerateSitemap() error = %v", err)
	}

	content := string(data)
	if !strings.Contains(content, XMLNamespace) {
		t.Error("sitemap should contain XML namespace")
	}
	for _, loc := range []string{
		"https://example.de/faq",
		"https://example.de/faq/versand",
		"https://example.de/faq/zahlung",
		"https://example.de/faq/versand/wie-lange-dauert-der-versand",
	} {
		if !strings.Contains(content, "<loc>"+loc+"</loc>") {
			t.Errorf("sitemap should contain %q", loc)
		}
	}
}
