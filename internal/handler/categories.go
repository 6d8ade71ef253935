// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/terramia/faq-go/internal/cache"
	"github.com/terramia/faq-go/internal/i18n"
	"github.com/terramia/faq-go/internal/middleware"
	"github.com/terramia/faq-go/internal/model"
	"github.com/terramia/faq-go/internal/render"
	"github.com/terramia/faq-go/internal/store"
	"github.com/terramia/faq-go/internal/translate"
)

// CategoriesHandler handles the back-office category routes under
// /faq-index/category.
type CategoriesHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	cache          cache.Cache
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, c cache.Cache) *CategoriesHandler {
	return &CategoriesHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		cache:          c,
	}
}

// CategoryListRow is one entry of the back-office category list.
type CategoryListRow struct {
	Category store.FaqCategory
	Name     string
	Slug     string
	FaqCount int64
}

// CategoryListData holds data for the category list template.
type CategoryListData struct {
	Rows       []CategoryListRow
	TotalCount int64
}

// List handles GET /faq-index/category.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	cats, err := h.queries.ListFaqCategories(r.Context())
	if err != nil {
		serverError(w, "failed to list categories", err)
		return
	}

	rows := make([]CategoryListRow, 0, len(cats))
	for _, c := range cats {
		faqs, err := h.queries.ListFaqsByCategory(r.Context(), c.ID)
		if err != nil {
			serverError(w, "failed to count category faqs", err)
			return
		}
		slug, _ := i18n.CategorySlug(c.SlugKey, locale)
		rows = append(rows, CategoryListRow{
			Category: c,
			Name:     i18n.T(locale, c.NameKey),
			Slug:     slug,
			FaqCount: int64(len(faqs)),
		})
	}

	data := CategoryListData{
		Rows:       rows,
		TotalCount: int64(len(rows)),
	}

	if err := h.renderer.Render(w, r, "admin/category_list", render.TemplateData{
		Title:  i18n.T(locale, "faq-admin-categories"),
		Locale: locale,
		Data:   data,
	}); err != nil {
		serverError(w, "render error", err)
	}
}

// CategoryFormData holds data for the category form template.
type CategoryFormData struct {
	Category   *store.FaqCategory
	FormLocale string
	Locales    []string
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// CreateForm handles GET /faq-index/category/create.
func (h *CategoriesHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	data := CategoryFormData{
		FormLocale: model.DefaultLocale,
		Locales:    model.SupportedLocales,
		Errors:     make(map[string]string),
		FormValues: make(map[string]string),
	}

	if err := h.renderer.Render(w, r, "admin/category_form", render.TemplateData{
		Title:  i18n.T(locale, "faq-admin-category-create"),
		Locale: locale,
		Data:   data,
	}); err != nil {
		serverError(w, "render error", err)
	}
}

// Create handles POST /faq-index/category/create.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	if err := r.ParseForm(); err != nil {
		h.renderer.SetFlash(r, i18n.T(locale, flashRejected), "error")
		http.Redirect(w, r, redirectCategoryIndex+RouteSuffixCreate, http.StatusSeeOther)
		return
	}

	form := parseCategoryForm(r)
	errs := form.validate()
	h.checkCategoryKeys(r, form, 0, errs)

	if len(errs) > 0 {
		h.renderFormErrors(w, r, locale, nil, model.DefaultLocale, form, errs)
		return
	}

	now := time.Now()
	cat, err := h.queries.CreateFaqCategory(r.Context(), store.CreateFaqCategoryParams{
		Position:  form.Position,
		NameKey:   form.NameKey,
		SlugKey:   form.SlugKey,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		serverError(w, "failed to create category", err)
		return
	}

	if err := h.saveTranslations(r, cat.ID, model.DefaultLocale, form); err != nil {
		serverError(w, "failed to save category translations", err)
		return
	}

	h.invalidate(r)

	slog.Info("category created", "category_id", cat.ID, "name_key", cat.NameKey, "category", "category")
	h.renderer.SetFlash(r, i18n.T(locale, flashSaved), "success")
	http.Redirect(w, r, fmt.Sprintf(redirectCategoryEditID, cat.ID), http.StatusSeeOther)
}

// EditForm handles GET /faq-index/category/edit/{id}[/{locale}].
func (h *CategoriesHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	locale := displayLocale(r)

	id, ok := parseIDParam(r)
	if !ok {
		http.Redirect(w, r, redirectCategoryIndex, http.StatusSeeOther)
		return
	}
	formLocale, ok := editLocale(r)
	if !ok {
		http.Redirect(w, r, redirectCategoryIndex, http.StatusSeeOther)
		return
	}

	cat, err := h.queries.GetFaqCategoryByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Redirect(w, r, redirectCategoryIndex, http.StatusSeeOther)
			return
		}
		serverError(w, "failed to load category", err)
		return
	}

	rows, err := h.queries.ListFaqCategoryTranslations(r.Context(), id)
	if err != nil {
		serverError(w, "failed to load category translations", err)
		return
	}
	trs := make([]translate.Row, 0, len(rows))
	for _, row := range rows {
		trs = append(trs, translate.Row{Locale: row.Locale, Field: row.Field, Content: row.Content})
	}
	tm := translate.Flatten(trs)

	values := map[string]string{
		"name_key":    cat.NameKey,
		"slug_key":    cat.SlugKey,
		"title":       tm.Get(formLocale, model.FieldTitle),
		"description": tm.Get(formLocale, model.FieldDescription),
		"headline":    tm.Get(formLocale, model.FieldHeadline),
		"teaser":      tm.Get(formLocale, model.FieldTeaser),
		"position":    fmt.Sprintf("%d", cat.Position),
	}

	data := CategoryFormData{
		Category:   &cat,
		FormLocale: formLocale,
		Locales:    model.SupportedLocales,
		Errors:     make(map[string]string),
		FormValues: values,
		IsEdit:     true,
	}

	if err := h.renderer.Render(w, r, "admin/category_form", render.TemplateData{
		Title:  i18n.T(locale, "faq-admin-category-edit"),
		Locale: locale,
		Data:   data,
	}); err != nil {
		serverError(w, "render error", err)
	}
}

// Edit handles POST /faq-index/category/edit/{id}[/{locale}].
func (h *CategoriesHandler) Edit(w http.ResponseWriter, r *http.Request) {
	locale := displayLocale(r)

	id, ok := parseIDParam(r)
	if !ok {
		http.Redirect(w, r, redirectCategoryIndex, http.StatusSeeOther)
		return
	}
	formLocale, ok := editLocale(r)
	if !ok {
		http.Redirect(w, r, redirectCategoryIndex, http.StatusSeeOther)
		return
	}

	cat, err := h.queries.GetFaqCategoryByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Redirect(w, r, redirectCategoryIndex, http.StatusSeeOther)
			return
		}
		serverError(w, "failed to load category", err)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderer.SetFlash(r, i18n.T(locale, flashRejected), "error")
		http.Redirect(w, r, fmt.Sprintf(redirectCategoryEditID, id), http.StatusSeeOther)
		return
	}

	form := parseCategoryForm(r)
	errs := form.validate()
	h.checkCategoryKeys(r, form, id, errs)

	if len(errs) > 0 {
		h.renderFormErrors(w, r, locale, &cat, formLocale, form, errs)
		return
	}

	if _, err := h.queries.UpdateFaqCategory(r.Context(), store.UpdateFaqCategoryParams{
		ID:        id,
		Position:  form.Position,
		NameKey:   form.NameKey,
		SlugKey:   form.SlugKey,
		UpdatedAt: time.Now(),
	}); err != nil {
		serverError(w, "failed to update category", err)
		return
	}

	if err := h.saveTranslations(r, id, formLocale, form); err != nil {
		serverError(w, "failed to save category translations", err)
		return
	}

	h.invalidate(r)

	slog.Info("category updated", "category_id", id, "locale", formLocale, "category", "category")
	h.renderer.SetFlash(r, i18n.T(locale, flashSaved), "success")
	http.Redirect(w, r, fmt.Sprintf(redirectCategoryEditID, id), http.StatusSeeOther)
}

// checkCategoryKeys adds field errors when another category already uses
// the submitted name or slug key. Both carry unique constraints, so a
// duplicate must be caught here and re-render the form instead of failing
// the insert. excludeID 0 means a create.
func (h *CategoriesHandler) checkCategoryKeys(r *http.Request, form CategoryForm, excludeID int64, errs map[string]string) {
	if form.NameKey != "" && errs["name_key"] == "" {
		var exists bool
		var err error
		if excludeID > 0 {
			exists, err = h.queries.CategoryNameKeyExistsExcluding(r.Context(), store.CategoryNameKeyExistsExcludingParams{
				NameKey: form.NameKey, ExcludeID: excludeID,
			})
		} else {
			exists, err = h.queries.CategoryNameKeyExists(r.Context(), form.NameKey)
		}
		if err != nil {
			slog.Error("database error checking name key", "error", err)
			errs["name_key"] = "Error checking name key"
		} else if exists {
			errs["name_key"] = "Name key already exists"
		}
	}

	if form.SlugKey != "" && errs["slug_key"] == "" {
		var exists bool
		var err error
		if excludeID > 0 {
			exists, err = h.queries.CategorySlugKeyExistsExcluding(r.Context(), store.CategorySlugKeyExistsExcludingParams{
				SlugKey: form.SlugKey, ExcludeID: excludeID,
			})
		} else {
			exists, err = h.queries.CategorySlugKeyExists(r.Context(), form.SlugKey)
		}
		if err != nil {
			slog.Error("database error checking slug key", "error", err)
			errs["slug_key"] = "Error checking slug key"
		} else if exists {
			errs["slug_key"] = "Slug key already exists"
		}
	}
}

// saveTranslations upserts the four translatable category fields for one
// locale.
func (h *CategoriesHandler) saveTranslations(r *http.Request, id int64, locale string, form CategoryForm) error {
	fields := map[string]string{
		model.FieldTitle:       form.Title,
		model.FieldDescription: form.Description,
		model.FieldHeadline:    form.Headline,
		model.FieldTeaser:      form.Teaser,
	}
	for field, content := range fields {
		if err := h.queries.UpsertFaqCategoryTranslation(r.Context(), store.UpsertFaqCategoryTranslationParams{
			CategoryID: id,
			Locale:     locale,
			Field:      field,
			Content:    content,
		}); err != nil {
			return err
		}
	}
	return nil
}

// renderFormErrors re-renders the category form with the rejected values
// and the incomplete-save flash.
func (h *CategoriesHandler) renderFormErrors(w http.ResponseWriter, r *http.Request, locale string, cat *store.FaqCategory, formLocale string, form CategoryForm, errs map[string]string) {
	title := i18n.T(locale, "faq-admin-category-create")
	if cat != nil {
		title = i18n.T(locale, "faq-admin-category-edit")
	}

	h.renderer.SetFlash(r, i18n.T(locale, flashRejected), "error")

	data := CategoryFormData{
		Category:   cat,
		FormLocale: formLocale,
		Locales:    model.SupportedLocales,
		Errors:     errs,
		FormValues: form.values(),
		IsEdit:     cat != nil,
	}

	if err := h.renderer.Render(w, r, "admin/category_form", render.TemplateData{
		Title:  title,
		Locale: locale,
		Data:   data,
	}); err != nil {
		serverError(w, "render error", err)
	}
}

// invalidate clears the front-office cache after a back-office write.
func (h *CategoriesHandler) invalidate(r *http.Request) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Clear(r.Context()); err != nil {
		slog.Warn("cache clear failed", "error", err, "category", "cache")
	}
}
