// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions including
// URL slug generation and validation with Unicode normalization support.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// slugRegex matches non-alphanumeric characters (except hyphens)
	slugRegex = regexp.MustCompile(`[^a-z0-9-]+`)
	// multipleHyphens matches multiple consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// localeRegex matches locale codes of the form xx_XX
	localeRegex = regexp.MustCompile(`^[a-z]{2}_[A-Z]{2}$`)
)

// germanReplacer expands umlauts and sharp s before transliteration,
// so "Sanitär" becomes "sanitaer" rather than "sanitar".
var germanReplacer = strings.NewReplacer(
	"ä", "ae", "Ä", "Ae",
	"ö", "oe", "Ö", "Oe",
	"ü", "ue", "Ü", "Ue",
	"ß", "ss",
)

// Slugify converts a string to a URL-friendly slug.
// German umlauts expand to their two-letter forms, remaining non-ASCII
// characters are transliterated, accents are stripped, spaces become
// hyphens, and everything outside [a-z0-9-] is removed.
func Slugify(s string) string {
	s = germanReplacer.Replace(s)

	// Transliterate remaining non-ASCII characters (é -> e, ç -> c)
	s = unidecode.Unidecode(s)

	// Normalize unicode characters (decompose accents)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = strings.ReplaceAll(result, " ", "-")
	result = slugRegex.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// IsValidSlug checks if a string is a valid slug format.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}

	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	if strings.Contains(s, "--") {
		return false
	}

	return true
}

// IsValidLocaleCode checks that a string has the xx_XX locale form.
// It does not check the locale against the supported set.
func IsValidLocaleCode(s string) bool {
	return localeRegex.MatchString(s)
}
