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
	"github.com/terramia/faq-go/internal/util"
)

// FaqsHandler handles the back-office FAQ routes under /faq-index.
type FaqsHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	cache          cache.Cache
}

// NewFaqsHandler creates a new FaqsHandler.
func NewFaqsHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, c cache.Cache) *FaqsHandler {
	return &FaqsHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		cache:          c,
	}
}

// FaqListRow is one entry of the back-office FAQ list: the row joined with
// its default-locale question and its primary category's name.
type FaqListRow struct {
	Faq          store.Faq
	Question     string
	Slug         string
	CategoryName string
}

// FaqListData holds data for the FAQ list template.
type FaqListData struct {
	Rows       []FaqListRow
	TotalCount int64
}

// List handles GET /faq-index.
func (h *FaqsHandler) List(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	faqs, err := h.queries.ListFaqs(r.Context())
	if err != nil {
		serverError(w, "failed to list faqs", err)
		return
	}

	names := make(map[int64]string)
	cats, err := h.queries.ListFaqCategories(r.Context())
	if err != nil {
		serverError(w, "failed to list categories", err)
		return
	}
	for _, c := range cats {
		names[c.ID] = i18n.T(locale, c.NameKey)
	}

	rows := make([]FaqListRow, 0, len(faqs))
	for _, f := range faqs {
		texts, err := h.queries.GetFaqDefaultTexts(r.Context(), f.ID, model.DefaultLocale)
		if err != nil {
			serverError(w, "failed to load faq texts", err)
			return
		}
		rows = append(rows, FaqListRow{
			Faq:          f,
			Question:     texts.Question,
			Slug:         texts.Slug,
			CategoryName: names[f.CategoryID],
		})
	}

	data := FaqListData{
		Rows:       rows,
		TotalCount: int64(len(rows)),
	}

	if err := h.renderer.Render(w, r, "admin/faq_list", render.TemplateData{
		Title:  i18n.T(locale, "faq-admin-title"),
		Locale: locale,
		Data:   data,
	}); err != nil {
		serverError(w, "render error", err)
	}
}

// categoryOption is one entry of the category select on the FAQ form.
type categoryOption struct {
	ID   int64
	Name string
}

// FaqFormData holds data for the FAQ form template.
type FaqFormData struct {
	Faq        *store.Faq
	Categories []categoryOption
	MemberIDs  map[int64]bool
	FormLocale string
	Locales    []string
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// categoryOptions returns the category select entries with names resolved
// through the message catalog for the back-office locale.
func (h *FaqsHandler) categoryOptions(r *http.Request, locale string) ([]categoryOption, error) {
	cats, err := h.queries.ListFaqCategories(r.Context())
	if err != nil {
		return nil, err
	}
	opts := make([]categoryOption, 0, len(cats))
	for _, c := range cats {
		opts = append(opts, categoryOption{ID: c.ID, Name: i18n.T(locale, c.NameKey)})
	}
	return opts, nil
}

// CreateForm handles GET /faq-index/create.
func (h *FaqsHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	opts, err := h.categoryOptions(r, locale)
	if err != nil {
		serverError(w, "failed to list categories", err)
		return
	}

	data := FaqFormData{
		Categories: opts,
		MemberIDs:  make(map[int64]bool),
		FormLocale: model.DefaultLocale,
		Locales:    model.SupportedLocales,
		Errors:     make(map[string]string),
		FormValues: make(map[string]string),
	}

	if err := h.renderer.Render(w, r, "admin/faq_form", render.TemplateData{
		Title:  i18n.T(locale, "faq-admin-create"),
		Locale: locale,
		Data:   data,
	}); err != nil {
		serverError(w, "render error", err)
	}
}

// Create handles POST /faq-index/create. A new entry always starts with
// its default-locale content; the other locales are added on the edit form.
func (h *FaqsHandler) Create(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	if err := r.ParseForm(); err != nil {
		h.renderer.SetFlash(r, i18n.T(locale, flashRejected), "error")
		http.Redirect(w, r, RouteFaqIndex+RouteSuffixCreate, http.StatusSeeOther)
		return
	}

	form := parseFaqForm(r)
	if form.Slug == "" && form.Question != "" {
		form.Slug = util.Slugify(form.Question)
	}

	errs := form.validate()
	h.checkFaqUniqueness(r, model.DefaultLocale, form, 0, errs)

	if len(errs) > 0 {
		h.renderFaqFormErrors(w, r, locale, nil, model.DefaultLocale, form, errs)
		return
	}

	now := time.Now()
	faq, err := h.queries.CreateFaq(r.Context(), store.CreateFaqParams{
		CategoryID: form.CategoryID,
		Position:   form.Position,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		serverError(w, "failed to create faq", err)
		return
	}

	if err := h.saveFaqTranslations(r, faq.ID, model.DefaultLocale, form); err != nil {
		serverError(w, "failed to save faq translations", err)
		return
	}

	if err := h.syncFaqCategories(r, faq.ID, form); err != nil {
		serverError(w, "failed to sync faq categories", err)
		return
	}

	h.invalidate(r)

	slog.Info("faq created", "faq_id", faq.ID, "slug", form.Slug, "category", "faq")
	h.renderer.SetFlash(r, i18n.T(locale, flashSaved), "success")
	http.Redirect(w, r, fmt.Sprintf(redirectFaqEditID, faq.ID), http.StatusSeeOther)
}

// EditForm handles GET /faq-index/edit/{id}[/{locale}]. The form shows the
// content of the edit locale; the default-locale question and slug are
// resolved separately so the overlay never depends on row ordering.
func (h *FaqsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	locale := displayLocale(r)

	id, ok := parseIDParam(r)
	if !ok {
		http.Redirect(w, r, redirectFaqIndex, http.StatusSeeOther)
		return
	}
	formLocale, ok := editLocale(r)
	if !ok {
		http.Redirect(w, r, redirectFaqIndex, http.StatusSeeOther)
		return
	}

	faq, err := h.queries.GetFaqByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Redirect(w, r, redirectFaqIndex, http.StatusSeeOther)
			return
		}
		serverError(w, "failed to load faq", err)
		return
	}

	tm, err := h.faqTranslationMap(r, id)
	if err != nil {
		serverError(w, "failed to load faq translations", err)
		return
	}

	memberIDs, err := h.queries.ListFaqCategoryIDs(r.Context(), id)
	if err != nil {
		serverError(w, "failed to load faq categories", err)
		return
	}
	members := make(map[int64]bool, len(memberIDs))
	for _, cid := range memberIDs {
		members[cid] = true
	}

	opts, err := h.categoryOptions(r, locale)
	if err != nil {
		serverError(w, "failed to list categories", err)
		return
	}

	values := map[string]string{
		"question":    tm.Get(formLocale, model.FieldQuestion),
		"title":       tm.Get(formLocale, model.FieldTitle),
		"description": tm.Get(formLocale, model.FieldDescription),
		"slug":        tm.Get(formLocale, model.FieldSlug),
		"answer":      tm.Get(formLocale, model.FieldAnswer),
		"position":    fmt.Sprintf("%d", faq.Position),
		"category":    fmt.Sprintf("%d", faq.CategoryID),
	}

	data := FaqFormData{
		Faq:        &faq,
		Categories: opts,
		MemberIDs:  members,
		FormLocale: formLocale,
		Locales:    model.SupportedLocales,
		Errors:     make(map[string]string),
		FormValues: values,
		IsEdit:     true,
	}

	if err := h.renderer.Render(w, r, "admin/faq_form", render.TemplateData{
		Title:  i18n.T(locale, "faq-admin-edit"),
		Locale: locale,
		Data:   data,
	}); err != nil {
		serverError(w, "render error", err)
	}
}

// Edit handles POST /faq-index/edit/{id}[/{locale}]. The submitted content
// is written to the edit locale only; the row fields (category, position)
// are locale-neutral.
func (h *FaqsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	locale := displayLocale(r)

	id, ok := parseIDParam(r)
	if !ok {
		http.Redirect(w, r, redirectFaqIndex, http.StatusSeeOther)
		return
	}
	formLocale, ok := editLocale(r)
	if !ok {
		http.Redirect(w, r, redirectFaqIndex, http.StatusSeeOther)
		return
	}

	faq, err := h.queries.GetFaqByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Redirect(w, r, redirectFaqIndex, http.StatusSeeOther)
			return
		}
		serverError(w, "failed to load faq", err)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderer.SetFlash(r, i18n.T(locale, flashRejected), "error")
		http.Redirect(w, r, fmt.Sprintf(redirectFaqEditID, id), http.StatusSeeOther)
		return
	}

	form := parseFaqForm(r)
	if form.Slug == "" && form.Question != "" {
		form.Slug = util.Slugify(form.Question)
	}

	errs := form.validate()
	h.checkFaqUniqueness(r, formLocale, form, id, errs)

	if len(errs) > 0 {
		h.renderFaqFormErrors(w, r, locale, &faq, formLocale, form, errs)
		return
	}

	if _, err := h.queries.UpdateFaq(r.Context(), store.UpdateFaqParams{
		ID:         id,
		CategoryID: form.CategoryID,
		Position:   form.Position,
		UpdatedAt:  time.Now(),
	}); err != nil {
		serverError(w, "failed to update faq", err)
		return
	}

	if err := h.saveFaqTranslations(r, id, formLocale, form); err != nil {
		serverError(w, "failed to save faq translations", err)
		return
	}

	if err := h.syncFaqCategories(r, id, form); err != nil {
		serverError(w, "failed to sync faq categories", err)
		return
	}

	h.invalidate(r)

	slog.Info("faq updated", "faq_id", id, "locale", formLocale, "category", "faq")
	h.renderer.SetFlash(r, i18n.T(locale, flashSaved), "success")
	http.Redirect(w, r, fmt.Sprintf(redirectFaqEditID, id), http.StatusSeeOther)
}

// faqTranslationMap loads a FAQ's translations and overlays the
// default-locale question and slug from a direct fetch. Missing rows
// degrade to empty strings.
func (h *FaqsHandler) faqTranslationMap(r *http.Request, id int64) (translate.Map, error) {
	rows, err := h.queries.ListFaqTranslations(r.Context(), id)
	if err != nil {
		return nil, err
	}

	trs := make([]translate.Row, 0, len(rows))
	for _, row := range rows {
		trs = append(trs, translate.Row{Locale: row.Locale, Field: row.Field, Content: row.Content})
	}
	tm := translate.Flatten(trs)

	texts, err := h.queries.GetFaqDefaultTexts(r.Context(), id, model.DefaultLocale)
	if err != nil {
		return nil, err
	}
	tm.OverlayDefault(texts.Question, texts.Slug)

	return tm, nil
}

// checkFaqUniqueness adds field errors when the question or slug is already
// used by another FAQ in the same locale. excludeID 0 means a create.
func (h *FaqsHandler) checkFaqUniqueness(r *http.Request, locale string, form FaqForm, excludeID int64, errs map[string]string) {
	check := func(field, content, errKey, msg string) {
		if content == "" || errs[errKey] != "" {
			return
		}
		var exists bool
		var err error
		if excludeID > 0 {
			exists, err = h.queries.FaqFieldExistsExcluding(r.Context(), store.FaqFieldExistsExcludingParams{
				Locale: locale, Field: field, Content: content, ExcludeID: excludeID,
			})
		} else {
			exists, err = h.queries.FaqFieldExists(r.Context(), store.FaqFieldExistsParams{
				Locale: locale, Field: field, Content: content,
			})
		}
		if err != nil {
			slog.Error("database error checking uniqueness", "field", field, "error", err)
			errs[errKey] = "Error checking " + field
			return
		}
		if exists {
			errs[errKey] = msg
		}
	}

	check(model.FieldQuestion, form.Question, "question", "Question already exists")
	check(model.FieldSlug, form.Slug, "slug", "Slug already exists")
}

// saveFaqTranslations upserts the five translatable fields for one locale.
func (h *FaqsHandler) saveFaqTranslations(r *http.Request, id int64, locale string, form FaqForm) error {
	fields := map[string]string{
		model.FieldQuestion:    form.Question,
		model.FieldTitle:       form.Title,
		model.FieldDescription: form.Description,
		model.FieldSlug:        form.Slug,
		model.FieldAnswer:      form.Answer,
	}
	for field, content := range fields {
		if err := h.queries.UpsertFaqTranslation(r.Context(), store.UpsertFaqTranslationParams{
			FaqID:   id,
			Locale:  locale,
			Field:   field,
			Content: content,
		}); err != nil {
			return err
		}
	}
	return nil
}

// syncFaqCategories reconciles the membership edges with the submitted
// selection. The primary category is always a member.
func (h *FaqsHandler) syncFaqCategories(r *http.Request, id int64, form FaqForm) error {
	desired := map[int64]bool{form.CategoryID: true}
	for _, cid := range form.CategoryIDs {
		desired[cid] = true
	}

	current, err := h.queries.ListFaqCategoryIDs(r.Context(), id)
	if err != nil {
		return err
	}

	have := make(map[int64]bool, len(current))
	for _, cid := range current {
		have[cid] = true
		if !desired[cid] {
			if err := h.queries.RemoveFaqCategory(r.Context(), store.FaqCategoryPair{FaqID: id, CategoryID: cid}); err != nil {
				return err
			}
		}
	}
	for cid := range desired {
		if !have[cid] {
			if err := h.queries.AddFaqCategory(r.Context(), store.FaqCategoryPair{FaqID: id, CategoryID: cid}); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderFaqFormErrors re-renders the form with the rejected values and the
// incomplete-save flash.
func (h *FaqsHandler) renderFaqFormErrors(w http.ResponseWriter, r *http.Request, locale string, faq *store.Faq, formLocale string, form FaqForm, errs map[string]string) {
	opts, err := h.categoryOptions(r, locale)
	if err != nil {
		serverError(w, "failed to list categories", err)
		return
	}

	members := map[int64]bool{form.CategoryID: true}
	for _, cid := range form.CategoryIDs {
		members[cid] = true
	}

	title := i18n.T(locale, "faq-admin-create")
	if faq != nil {
		title = i18n.T(locale, "faq-admin-edit")
	}

	h.renderer.SetFlash(r, i18n.T(locale, flashRejected), "error")

	data := FaqFormData{
		Faq:        faq,
		Categories: opts,
		MemberIDs:  members,
		FormLocale: formLocale,
		Locales:    model.SupportedLocales,
		Errors:     errs,
		FormValues: form.values(),
		IsEdit:     faq != nil,
	}

	if err := h.renderer.Render(w, r, "admin/faq_form", render.TemplateData{
		Title:  title,
		Locale: locale,
		Data:   data,
	}); err != nil {
		serverError(w, "render error", err)
	}
}

// invalidate clears the front-office cache after a back-office write.
func (h *FaqsHandler) invalidate(r *http.Request) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Clear(r.Context()); err != nil {
		slog.Warn("cache clear failed", "error", err, "category", "cache")
	}
}
