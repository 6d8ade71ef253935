// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Supported content locales. German is the default and the fallback
// source for every translatable field.
const (
	LocaleGerman  = "de_DE"
	LocaleEnglish = "en_US"
	LocaleItalian = "it_IT"

	DefaultLocale = LocaleGerman
)

// SupportedLocales lists the content locales in display order.
var SupportedLocales = []string{LocaleGerman, LocaleEnglish, LocaleItalian}

// IsSupportedLocale reports whether code is one of the three content locales.
func IsSupportedLocale(code string) bool {
	for _, l := range SupportedLocales {
		if l == code {
			return true
		}
	}
	return false
}

// Translatable field names stored in the translation tables.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldQuestion    = "question"
	FieldSlug        = "slug"
	FieldAnswer      = "answer"
	FieldHeadline    = "headline"
	FieldTeaser      = "teaser"
)

// FaqFields are the translatable fields of a FAQ entry.
var FaqFields = []string{FieldTitle, FieldDescription, FieldQuestion, FieldSlug, FieldAnswer}

// CategoryFields are the translatable fields of a FAQ category.
var CategoryFields = []string{FieldTitle, FieldDescription, FieldHeadline, FieldTeaser}
