// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapQuestion contains data needed to add a question page to the
// sitemap. CategorySlug is the already-translated category segment.
type SitemapQuestion struct {
	CategorySlug string
	Slug         string
	UpdatedAt    time.Time
}

// SitemapCategory contains data needed to add a category page to the
// sitemap. Slug is the already-translated category segment.
type SitemapCategory struct {
	Slug      string
	UpdatedAt time.Time
}

// SitemapBuilder builds sitemap XML for one locale's site.
type SitemapBuilder struct {
	siteURL     string
	rootSegment string
	urls        []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder. rootSegment is the
// public FAQ path segment, e.g. "faq".
func NewSitemapBuilder(siteURL, rootSegment string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL:     siteURL,
		rootSegment: rootSegment,
		urls:        make([]SitemapURL, 0),
	}
}

// AddIndex adds the FAQ landing page to the sitemap.
func (b *SitemapBuilder) AddIndex() {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + "/" + b.rootSegment,
		ChangeFreq: ChangeFreqWeekly,
		Priority:   "0.8",
	})
}

// AddCategory adds a category page to the sitemap. Categories without a
// translated slug are skipped.
func (b *SitemapBuilder) AddCategory(cat SitemapCategory) {
	if cat.Slug == "" {
		return
	}
	url := SitemapURL{
		Loc:        b.siteURL + "/" + b.rootSegment + "/" + cat.Slug,
		ChangeFreq: ChangeFreqWeekly,
		Priority:   "0.6",
	}
	if !cat.UpdatedAt.IsZero() {
		url.LastMod = cat.UpdatedAt.Format(time.RFC3339)
	}
	b.urls = append(b.urls, url)
}

// AddCategories adds multiple categories to the sitemap.
func (b *SitemapBuilder) AddCategories(categories []SitemapCategory) {
	for _, c := range categories {
		b.AddCategory(c)
	}
}

// AddQuestion adds a question page to the sitemap. Questions without a
// slug for this locale are skipped.
func (b *SitemapBuilder) AddQuestion(q SitemapQuestion) {
	if q.Slug == "" || q.CategorySlug == "" {
		return
	}
	url := SitemapURL{
		Loc:        b.siteURL + "/" + b.rootSegment + "/" + q.CategorySlug + "/" + q.Slug,
		ChangeFreq: ChangeFreqMonthly,
		Priority:   "0.5",
	}
	if !q.UpdatedAt.IsZero() {
		url.LastMod = q.UpdatedAt.Format(time.RFC3339)
	}
	b.urls = append(b.urls, url)
}

// AddQuestions adds multiple questions to the sitemap.
func (b *SitemapBuilder) AddQuestions(questions []SitemapQuestion) {
	for _, q := range questions {
		b.AddQuestion(q)
	}
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}

// GenerateSitemap is a convenience function to generate a sitemap for one
// locale from its categories and questions.
func GenerateSitemap(siteURL, rootSegment string, categories []SitemapCategory, questions []SitemapQuestion) ([]byte, error) {
	builder := NewSitemapBuilder(siteURL, rootSegment)
	builder.AddIndex()
	builder.AddCategories(categories)
	builder.AddQuestions(questions)
	return builder.Build()
}
