package i18n

import (
	"errors"
	"testing"

	"github.com/terramia/faq-go/internal/model"
)

func initCatalog(t *testing.T) {
	t.Helper()
	if err := Init(nil); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

func TestLookupAndFallback(t *testing.T) {
	initCatalog(t)

	if _, ok := Lookup(model.LocaleEnglish, "faq-domain"); !ok {
		t.Error("faq-domain should exist for en_US")
	}
	if _, ok := Lookup(model.LocaleEnglish, "no-such-key"); ok {
		t.Error("Lookup must not fall back for missing keys")
	}

	// T falls back to the key itself when nothing matches.
	if got := T(model.LocaleEnglish, "no-such-key"); got != "no-such-key" {
		t.Errorf("T fallback = %q, want key", got)
	}
}

func TestDomainPerLocale(t *testing.T) {
	initCatalog(t)

	domains := map[string]string{
		model.LocaleGerman:  "https://www.terramia.de",
		model.LocaleEnglish: "https://www.terramia.com",
		model.LocaleItalian: "https://www.terramia.it",
	}
	for locale, want := range domains {
		if got := Domain(locale); got != want {
			t.Errorf("Domain(%s) = %q, want %q", locale, got, want)
		}
	}
}

func TestCategorySlug(t *testing.T) {
	initCatalog(t)

	got, err := CategorySlug("faq.category.plumbing.slug", model.LocaleGerman)
	if err != nil {
		t.Fatalf("CategorySlug: %v", err)
	}
	if got != "sanitaer" {
		t.Errorf("CategorySlug de_DE = %q, want %q", got, "sanitaer")
	}

	// Missing translation resolves to an empty slug, not the key.
	got, err = CategorySlug("faq.category.unknown.slug", model.LocaleItalian)
	if err != nil {
		t.Fatalf("CategorySlug: %v", err)
	}
	if got != "" {
		t.Errorf("missing translation should yield empty slug, got %q", got)
	}
}

func TestCategorySlugUnsupportedLocale(t *testing.T) {
	initCatalog(t)

	_, err := CategorySlug("faq.category.plumbing.slug", "fr_FR")
	if !errors.Is(err, ErrUnsupportedLocale) {
		t.Errorf("err = %v, want ErrUnsupportedLocale", err)
	}
}

func TestMatchLocale(t *testing.T) {
	initCatalog(t)

	tests := []struct {
		accept string
		want   string
	}{
		{"de-DE,de;q=0.9", model.LocaleGerman},
		{"en-US,en;q=0.9", model.LocaleEnglish},
		{"it", model.LocaleItalian},
		{"fr-FR,fr;q=0.9", model.DefaultLocale},
		{"", model.DefaultLocale},
		{"garbage;;;", model.DefaultLocale},
	}
	for _, tt := range tests {
		if got := MatchLocale(tt.accept); got != tt.want {
			t.Errorf("MatchLocale(%q) = %q, want %q", tt.accept, got, tt.want)
		}
	}
}
