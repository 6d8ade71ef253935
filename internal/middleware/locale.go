// Package middleware provides HTTP middleware for locale detection,
// CSRF protection and request hardening.
package middleware

import (
	"context"
	"net/http"

	"github.com/terramia/faq-go/internal/i18n"
	"github.com/terramia/faq-go/internal/model"
)

// ContextKey is the type of context keys set by this package.
type ContextKey string

// ContextKeyLocale is the context key for the detected content locale.
const ContextKeyLocale ContextKey = "locale"

// LocaleCookieName is the cookie name for the locale preference.
const LocaleCookieName = "faq_locale"

// Locale creates middleware that detects the request's content locale.
// Priority order:
// 1. Query parameter ?locale=xx_XX (explicit switch, updates the cookie)
// 2. Cookie preference
// 3. Accept-Language header
// 4. Default locale
//
// Route parameters are not consulted here: this runs before the router
// matches, so {locale} on the edit routes is resolved by the handlers.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := model.DefaultLocale

		switch {
		case model.IsSupportedLocale(r.URL.Query().Get("locale")):
			locale = r.URL.Query().Get("locale")
			SetLocaleCookie(w, locale)
		default:
			if cookie, err := r.Cookie(LocaleCookieName); err == nil && model.IsSupportedLocale(cookie.Value) {
				locale = cookie.Value
			} else if accept := r.Header.Get("Accept-Language"); accept != "" {
				locale = i18n.MatchLocale(accept)
			}
		}

		ctx := context.WithValue(r.Context(), ContextKeyLocale, locale)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetLocaleCookie persists the locale preference for a year.
func SetLocaleCookie(w http.ResponseWriter, locale string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LocaleCookieName,
		Value:    locale,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetLocale returns the content locale detected for the request, or the
// default locale when the middleware did not run.
func GetLocale(r *http.Request) string {
	if locale, ok := r.Context().Value(ContextKeyLocale).(string); ok {
		return locale
	}
	return model.DefaultLocale
}
