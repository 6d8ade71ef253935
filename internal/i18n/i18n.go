// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n provides the message catalog for the FAQ module: per-locale
// UI strings, per-locale site domains, and the language-neutral translation
// keys that category names and slugs resolve through.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/text/language"

	"github.com/terramia/faq-go/internal/model"
)

//go:embed locales
var localesFS embed.FS

// ErrUnsupportedLocale is returned when a locale outside the supported set
// reaches a catalog lookup that must not silently fall back.
var ErrUnsupportedLocale = errors.New("i18n: unsupported locale")

// DomainKey is the catalog key holding the per-locale site domain.
const DomainKey = "faq-domain"

// Message represents a single translatable message.
type Message struct {
	ID          string `json:"id"`
	Translation string `json:"translation"`
}

// MessageFile represents the structure of a messages JSON file.
type MessageFile struct {
	Locale   string    `json:"locale"`
	Messages []Message `json:"messages"`
}

// Catalog holds all translations for all supported locales.
type Catalog struct {
	mu           sync.RWMutex
	translations map[string]map[string]string // locale -> key -> translation
	matcher      language.Matcher
	tags         []language.Tag
	tagLocales   []string
	logger       *slog.Logger
}

// catalog is the global catalog instance.
var catalog *Catalog

// Init loads the embedded catalogs for the three supported locales.
func Init(logger *slog.Logger) error {
	c := &Catalog{
		translations: make(map[string]map[string]string),
		logger:       logger,
	}

	for _, locale := range model.SupportedLocales {
		if err := c.loadLocale(locale); err != nil {
			return fmt.Errorf("loading locale %s: %w", locale, err)
		}
		c.tags = append(c.tags, language.MustParse(bcp47(locale)))
		c.tagLocales = append(c.tagLocales, locale)
	}
	c.matcher = language.NewMatcher(c.tags)

	catalog = c

	if logger != nil {
		logger.Info("i18n catalog loaded", "locales", model.SupportedLocales)
	}
	return nil
}

// loadLocale loads translations for a specific locale.
func (c *Catalog) loadLocale(locale string) error {
	path := fmt.Sprintf("locales/%s/messages.json", locale)
	data, err := localesFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var msgFile MessageFile
	if err := json.Unmarshal(data, &msgFile); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.translations[locale] = make(map[string]string)
	for _, msg := range msgFile.Messages {
		c.translations[locale][msg.ID] = msg.Translation
	}
	return nil
}

// bcp47 converts an xx_XX locale code to its BCP 47 tag (xx-XX).
func bcp47(locale string) string {
	if len(locale) != 5 {
		return locale
	}
	return locale[:2] + "-" + locale[3:]
}

// T translates a key to the given locale, falling back to the default
// locale, then to the key itself. Use Lookup when a miss must be visible.
func T(locale, key string) string {
	if s, ok := Lookup(locale, key); ok {
		return s
	}
	if locale != model.DefaultLocale {
		if s, ok := Lookup(model.DefaultLocale, key); ok {
			return s
		}
	}
	return key
}

// Lookup returns the translation of key for the given locale without any
// fallback, and whether it exists.
func Lookup(locale, key string) (string, bool) {
	if catalog == nil {
		return "", false
	}

	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	msgs, ok := catalog.translations[locale]
	if !ok {
		return "", false
	}
	s, ok := msgs[key]
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Domain returns the site domain for a locale (e.g. "https://www.terramia.de").
func Domain(locale string) string {
	return T(locale, DomainKey)
}

// CategorySlug resolves a category slug translation key for one of the
// three supported locales. Unlike T it refuses to guess: a locale outside
// the supported set is a hard failure, and a missing translation yields an
// empty slug rather than the raw key.
func CategorySlug(key, locale string) (string, error) {
	switch locale {
	case model.LocaleGerman, model.LocaleEnglish, model.LocaleItalian:
		s, _ := Lookup(locale, key)
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
}

// MatchLocale finds the best supported content locale for an
// Accept-Language header value. Returns the default locale when nothing
// matches.
func MatchLocale(acceptLang string) string {
	if catalog == nil || acceptLang == "" {
		return model.DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return model.DefaultLocale
	}

	_, idx, conf := catalog.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(catalog.tagLocales) {
		return model.DefaultLocale
	}
	return catalog.tagLocales[idx]
}

// SetForTesting replaces a locale's catalog contents. Test helper.
func SetForTesting(locale string, messages map[string]string) {
	if catalog == nil {
		catalog = &Catalog{translations: make(map[string]map[string]string)}
		for _, l := range model.SupportedLocales {
			catalog.tags = append(catalog.tags, language.MustParse(bcp47(l)))
			catalog.tagLocales = append(catalog.tagLocales, l)
		}
		catalog.matcher = language.NewMatcher(catalog.tags)
	}
	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	catalog.translations[locale] = messages
}
