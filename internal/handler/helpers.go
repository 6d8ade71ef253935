// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler contains the HTTP handlers of the FAQ module: the
// back-office CRUD under /faq-index and the public front office.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/terramia/faq-go/internal/middleware"
	"github.com/terramia/faq-go/internal/model"
)

// parseIDParam reads the {id} route parameter. Returns 0 and false for a
// missing, malformed or non-positive id; callers redirect to the index.
func parseIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// editLocale reads the optional {locale} route parameter of the edit
// routes. Without one the back office edits the default locale.
func editLocale(r *http.Request) (string, bool) {
	locale := chi.URLParam(r, "locale")
	if locale == "" {
		return model.DefaultLocale, true
	}
	if !model.IsSupportedLocale(locale) {
		return "", false
	}
	return locale, true
}

// displayLocale returns the locale used for back-office UI strings. The
// edit routes carry a {locale} param that the locale middleware cannot see
// (it runs before routing), so it takes precedence here.
func displayLocale(r *http.Request) string {
	if locale := chi.URLParam(r, "locale"); model.IsSupportedLocale(locale) {
		return locale
	}
	return middleware.GetLocale(r)
}

// serverError logs an error and replies with a 500.
func serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
