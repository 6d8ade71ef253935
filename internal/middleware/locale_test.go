package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/terramia/faq-go/internal/i18n"
	"github.com/terramia/faq-go/internal/model"
)

func localeRecorder(t *testing.T) (*chi.Mux, *string) {
	t.Helper()
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init: %v", err)
	}

	var got string
	r := chi.NewRouter()
	r.Use(Locale)
	handler := func(w http.ResponseWriter, r *http.Request) {
		got = GetLocale(r)
		w.WriteHeader(http.StatusOK)
	}
	r.Get("/", handler)
	r.Get("/edit/{id}/{locale}", handler)
	return r, &got
}

func TestLocaleDefault(t *testing.T) {
	r, got := localeRecorder(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	if *got != model.DefaultLocale {
		t.Errorf("locale = %q, want default", *got)
	}
}

func TestLocaleRouteParamNotConsulted(t *testing.T) {
	r, got := localeRecorder(t)

	// Route params are matched after this middleware runs; the cookie
	// preference decides, and the handlers resolve {locale} themselves.
	req := httptest.NewRequest(http.MethodGet, "/edit/5/it_IT", nil)
	req.AddCookie(&http.Cookie{Name: LocaleCookieName, Value: model.LocaleEnglish})
	r.ServeHTTP(httptest.NewRecorder(), req)

	if *got != model.LocaleEnglish {
		t.Errorf("locale = %q, want en_US from the cookie", *got)
	}
}

func TestLocaleFromQuerySetsCookie(t *testing.T) {
	r, got := localeRecorder(t)

	req := httptest.NewRequest(http.MethodGet, "/?locale=en_US", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if *got != model.LocaleEnglish {
		t.Errorf("locale = %q, want en_US", *got)
	}

	cookieSet := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == LocaleCookieName && c.Value == model.LocaleEnglish {
			cookieSet = true
		}
	}
	if !cookieSet {
		t.Error("explicit locale switch should set the preference cookie")
	}
}

func TestLocaleFromCookie(t *testing.T) {
	r, got := localeRecorder(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: LocaleCookieName, Value: model.LocaleItalian})
	r.ServeHTTP(httptest.NewRecorder(), req)

	if *got != model.LocaleItalian {
		t.Errorf("locale = %q, want it_IT", *got)
	}
}

func TestLocaleFromAcceptLanguage(t *testing.T) {
	r, got := localeRecorder(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if *got != model.LocaleEnglish {
		t.Errorf("locale = %q, want en_US", *got)
	}
}

func TestLocaleUnsupportedValuesIgnored(t *testing.T) {
	r, got := localeRecorder(t)

	req := httptest.NewRequest(http.MethodGet, "/?locale=fr_FR", nil)
	req.AddCookie(&http.Cookie{Name: LocaleCookieName, Value: "xx_XX"})
	r.ServeHTTP(httptest.NewRecorder(), req)

	if *got != model.DefaultLocale {
		t.Errorf("locale = %q, want default for unsupported values", *got)
	}
}
