// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds canonical URLs, hreflang alternates, meta tags,
// structured data and sitemaps for the FAQ pages.
package seo

import (
	"github.com/terramia/faq-go/internal/i18n"
	"github.com/terramia/faq-go/internal/model"
	"github.com/terramia/faq-go/internal/translate"
)

// Links holds the canonical URL and the per-locale alternate URLs of a
// resource. An empty alternate means the locale has no translated content
// and must not be advertised.
type Links struct {
	CanonicalURL string
	URLDe        string
	URLEn        string
	URLIt        string
}

// ByLocale returns the alternate URL for a locale.
func (l Links) ByLocale(locale string) string {
	switch locale {
	case model.LocaleGerman:
		return l.URLDe
	case model.LocaleEnglish:
		return l.URLEn
	case model.LocaleItalian:
		return l.URLIt
	}
	return ""
}

// FaqLinkInput carries everything needed to build a question page's links.
type FaqLinkInput struct {
	// RootSegment is the public FAQ path segment, e.g. "faq".
	RootSegment string
	// Locale is the request locale the canonical URL is built for.
	Locale string
	// CategorySlugKey is the primary category's language-neutral slug key.
	CategorySlugKey string
	// Slug is the question slug of the current working copy (request locale).
	Slug string
	// Translations is the resolved locale/field map of the question.
	Translations translate.Map
}

// BuildFaqLinks composes the canonical URL and the three alternate URLs of
// a question page. The category segment always resolves through the
// translated category slug key, never through the question slug. An
// alternate is emitted only when that locale's question slug translation
// exists; there is no fallback to the default-locale slug.
func BuildFaqLinks(in FaqLinkInput) Links {
	links := Links{
		CanonicalURL: questionURL(in.Locale, in.RootSegment, in.CategorySlugKey, in.Slug),
	}

	for _, locale := range model.SupportedLocales {
		slug := in.Translations.Slug(locale)
		if slug == "" {
			continue
		}
		url := questionURL(locale, in.RootSegment, in.CategorySlugKey, slug)
		switch locale {
		case model.LocaleGerman:
			links.URLDe = url
		case model.LocaleEnglish:
			links.URLEn = url
		case model.LocaleItalian:
			links.URLIt = url
		}
	}

	return links
}

// BuildCategoryLinks composes the canonical URL and alternates of a
// category page from the category's own slug key. Locales without a slug
// translation are omitted.
func BuildCategoryLinks(rootSegment, locale, slugKey string) Links {
	links := Links{}

	if slug, err := i18n.CategorySlug(slugKey, locale); err == nil && slug != "" {
		links.CanonicalURL = i18n.Domain(locale) + "/" + rootSegment + "/" + slug
	}

	for _, l := range model.SupportedLocales {
		slug, err := i18n.CategorySlug(slugKey, l)
		if err != nil || slug == "" {
			continue
		}
		url := i18n.Domain(l) + "/" + rootSegment + "/" + slug
		switch l {
		case model.LocaleGerman:
			links.URLDe = url
		case model.LocaleEnglish:
			links.URLEn = url
		case model.LocaleItalian:
			links.URLIt = url
		}
	}

	return links
}

// questionURL builds one locale's question page URL:
// <domain>/<root>/<translated category slug>/<question slug>.
func questionURL(locale, rootSegment, categorySlugKey, slug string) string {
	categorySlug, err := i18n.CategorySlug(categorySlugKey, locale)
	if err != nil {
		categorySlug = ""
	}
	return i18n.Domain(locale) + "/" + rootSegment + "/" + categorySlug + "/" + slug
}
