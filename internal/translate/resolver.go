// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package translate flattens per-locale translation rows into a
// locale/field map and guarantees the default-locale question and slug are
// present even when the rows were loaded for another locale.
package translate

import "github.com/terramia/faq-go/internal/model"

// Row is one translation record: a locale/field/content triple belonging
// to a single entity.
type Row struct {
	Locale  string
	Field   string
	Content string
}

// Map is the flattened view of an entity's translations:
// Map[locale][field] = content.
type Map map[string]map[string]string

// Flatten turns translation rows into a Map. Later rows win on duplicate
// (locale, field) pairs, mirroring the unique constraint of the store.
func Flatten(rows []Row) Map {
	m := make(Map)
	for _, row := range rows {
		if m[row.Locale] == nil {
			m[row.Locale] = make(map[string]string)
		}
		m[row.Locale][row.Field] = row.Content
	}
	return m
}

// Get returns the content for a locale/field pair, or "" when absent.
// Consumers must tolerate missing keys; absence is not an error.
func (m Map) Get(locale, field string) string {
	fields, ok := m[locale]
	if !ok {
		return ""
	}
	return fields[field]
}

// Set stores content for a locale/field pair.
func (m Map) Set(locale, field, content string) {
	if m[locale] == nil {
		m[locale] = make(map[string]string)
	}
	m[locale][field] = content
}

// OverlayDefault force-sets the default locale's question and slug from a
// direct by-id fetch. It always writes both keys: when the fetch found no
// row the values degrade to empty strings so downstream consumers read ""
// instead of failing.
func (m Map) OverlayDefault(question, slug string) {
	m.Set(model.DefaultLocale, model.FieldQuestion, question)
	m.Set(model.DefaultLocale, model.FieldSlug, slug)
}

// Question returns the question for a locale, falling back to the default
// locale when that locale carries no question.
func (m Map) Question(locale string) string {
	if q := m.Get(locale, model.FieldQuestion); q != "" {
		return q
	}
	return m.Get(model.DefaultLocale, model.FieldQuestion)
}

// Slug returns the slug for a locale with no fallback: alternate-language
// URLs must point to genuinely translated content or not exist.
func (m Map) Slug(locale string) string {
	return m.Get(locale, model.FieldSlug)
}
