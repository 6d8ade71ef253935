// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/json"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/terramia/faq-go/internal/i18n"
	"github.com/terramia/faq-go/internal/model"
)

// schemaTextPolicy reduces rendered answer HTML to plain text for the
// JSON-LD schema fields.
var schemaTextPolicy = bluemonday.StrictPolicy()

// AlternateLink is one hreflang entry rendered into the page head.
type AlternateLink struct {
	Hreflang string
	Href     string
}

// Meta holds the head metadata of a front-office page.
type Meta struct {
	Title         string
	Description   string
	Canonical     string
	Alternates    []AlternateLink
	OGURL         string
	OGTitle       string
	OGDescription string
	OGImage       string
	OGImageType   string
	OGImageWidth  string
	OGImageHeight string
	OGImageAlt    string
	OGType        string
}

// hreflang maps content locales to the language codes advertised to
// search engines.
var hreflang = map[string]string{
	model.LocaleGerman:  "de",
	model.LocaleEnglish: "en",
	model.LocaleItalian: "it",
}

// BuildMeta assembles page metadata for the request locale. Alternates are
// taken from links; empty alternate URLs are skipped.
func BuildMeta(locale, title, description string, links Links) *Meta {
	domain := i18n.Domain(locale)

	m := &Meta{
		Title:         title,
		Description:   description,
		Canonical:     links.CanonicalURL,
		OGURL:         domain,
		OGTitle:       title,
		OGDescription: description,
		OGImage:       domain + i18n.T(locale, "default-image"),
		OGImageType:   "image/jpeg",
		OGImageWidth:  "1024",
		OGImageHeight: "1024",
		OGImageAlt:    title,
		OGType:        "website",
	}

	for _, l := range model.SupportedLocales {
		href := links.ByLocale(l)
		if href == "" {
			continue
		}
		m.Alternates = append(m.Alternates, AlternateLink{Hreflang: hreflang[l], Href: href})
	}

	return m
}

// SiteLinks returns links pointing at the per-locale site roots, used on
// the landing page where every locale has a home.
func SiteLinks(locale string) Links {
	return Links{
		CanonicalURL: i18n.Domain(locale),
		URLDe:        i18n.Domain(model.LocaleGerman),
		URLEn:        i18n.Domain(model.LocaleEnglish),
		URLIt:        i18n.Domain(model.LocaleItalian),
	}
}

// FAQSchema is the JSON-LD FAQPage structured data block.
type FAQSchema struct {
	Context    string           `json:"@context"`
	Type       string           `json:"@type"`
	MainEntity []QuestionSchema `json:"mainEntity"`
}

// QuestionSchema is one JSON-LD Question entry.
type QuestionSchema struct {
	Type           string       `json:"@type"`
	Name           string       `json:"name"`
	AcceptedAnswer AnswerSchema `json:"acceptedAnswer"`
}

// AnswerSchema is the JSON-LD Answer of a question.
type AnswerSchema struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// QA pairs a question with its rendered answer text.
type QA struct {
	Question string
	Answer   string
}

// BuildFAQSchema renders the FAQPage JSON-LD for a set of question/answer
// pairs. Returns an empty string when there is nothing to advertise.
func BuildFAQSchema(pairs []QA) template.JS {
	if len(pairs) == 0 {
		return ""
	}

	schema := FAQSchema{
		Context: "https://schema.org",
		Type:    "FAQPage",
	}
	for _, p := range pairs {
		if p.Question == "" {
			continue
		}
		schema.MainEntity = append(schema.MainEntity, QuestionSchema{
			Type: "Question",
			Name: p.Question,
			AcceptedAnswer: AnswerSchema{
				Type: "Answer",
				Text: stripTags(p.Answer),
			},
		})
	}
	if len(schema.MainEntity) == 0 {
		return ""
	}

	data, err := json.Marshal(schema)
	if err != nil {
		return ""
	}
	return template.JS(data)
}

// stripTags removes markup for plain-text schema fields.
func stripTags(s string) string {
	return strings.TrimSpace(schemaTextPolicy.Sanitize(s))
}
