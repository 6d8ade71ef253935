// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"database/sql"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/terramia/faq-go/internal/cache"
	"github.com/terramia/faq-go/internal/i18n"
	"github.com/terramia/faq-go/internal/middleware"
	"github.com/terramia/faq-go/internal/model"
	"github.com/terramia/faq-go/internal/render"
	"github.com/terramia/faq-go/internal/seo"
	"github.com/terramia/faq-go/internal/store"
	"github.com/terramia/faq-go/internal/translate"
)

// markdown converts answer Markdown to HTML. GFM for tables and autolinks;
// raw HTML in the source passes through and is sanitized afterwards.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// answerPolicy sanitizes rendered answer HTML before it reaches the page.
var answerPolicy = bluemonday.UGCPolicy()

// FrontendHandler handles the public FAQ routes.
type FrontendHandler struct {
	queries     *store.Queries
	renderer    *render.Renderer
	cache       cache.Cache
	rootSegment string
	robots      seo.RobotsConfig
}

// FrontendConfig holds the front-office handler configuration.
type FrontendConfig struct {
	RootSegment string
	RobotsDeny  bool
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer, c cache.Cache, cfg FrontendConfig) *FrontendHandler {
	return &FrontendHandler{
		queries:     store.New(db),
		renderer:    renderer,
		cache:       c,
		rootSegment: cfg.RootSegment,
		robots: seo.RobotsConfig{
			DisallowAll: cfg.RobotsDeny,
		},
	}
}

// renderAnswer converts an answer's Markdown to sanitized HTML.
func renderAnswer(md string) template.HTML {
	if md == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		slog.Error("markdown conversion failed", "error", err)
		return ""
	}
	return template.HTML(answerPolicy.SanitizeBytes(buf.Bytes()))
}

// cachedPage serves a page from the cache when present. Returns true when
// the response was written.
func (h *FrontendHandler) cachedPage(w http.ResponseWriter, r *http.Request, key string) bool {
	if h.cache == nil {
		return false
	}
	body, err := h.cache.Get(r.Context(), key)
	if err != nil {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
	return true
}

// pageRecorder captures a rendered page so it can be written to the cache
// and to the client in one pass.
type pageRecorder struct {
	header http.Header
	buf    bytes.Buffer
	status int
}

func newPageRecorder() *pageRecorder {
	return &pageRecorder{header: make(http.Header), status: http.StatusOK}
}

func (p *pageRecorder) Header() http.Header { return p.header }

func (p *pageRecorder) WriteHeader(status int) { p.status = status }

func (p *pageRecorder) Write(b []byte) (int, error) { return p.buf.Write(b) }

// servePage renders a template through a recorder, stores the result in
// the cache and writes it to the client. Error responses bypass the cache.
func (h *FrontendHandler) servePage(w http.ResponseWriter, r *http.Request, key, name string, data render.TemplateData) {
	rec := newPageRecorder()
	if err := h.renderer.Render(rec, r, name, data); err != nil {
		serverError(w, "render error", err)
		return
	}

	if h.cache != nil && rec.status == http.StatusOK {
		if err := h.cache.Set(r.Context(), key, rec.buf.Bytes(), 0); err != nil {
			slog.Warn("cache set failed", "key", key, "error", err, "category", "cache")
		}
	}

	for k, vals := range rec.header {
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(rec.status)
	_, _ = rec.buf.WriteTo(w)
}

// LandingQuestion is one question listed under a landing page category.
// URL is empty when the question has no slug in the request locale.
type LandingQuestion struct {
	Question string
	URL      string
}

// LandingCategory is one category block on the landing page.
type LandingCategory struct {
	Name      string
	Slug      string
	Teaser    string
	URL       string
	Questions []LandingQuestion
}

// LandingData holds data for the landing page template.
type LandingData struct {
	Categories []LandingCategory
}

// Landing handles GET /faq.
func (h *FrontendHandler) Landing(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	key := cache.LandingKey(locale)
	if h.cachedPage(w, r, key) {
		return
	}

	cats, err := h.queries.ListFaqCategories(r.Context())
	if err != nil {
		serverError(w, "failed to list categories", err)
		return
	}

	var landing []LandingCategory
	for _, c := range cats {
		slug, err := i18n.CategorySlug(c.SlugKey, locale)
		if err != nil || slug == "" {
			continue
		}
		tm, err := h.categoryTranslationMap(r, c.ID)
		if err != nil {
			serverError(w, "failed to load category translations", err)
			return
		}

		questions, err := h.landingQuestions(r, locale, c.ID, slug)
		if err != nil {
			serverError(w, "failed to list category faqs", err)
			return
		}

		landing = append(landing, LandingCategory{
			Name:      i18n.T(locale, c.NameKey),
			Slug:      slug,
			Teaser:    pickTranslated(tm, locale, model.FieldTeaser),
			URL:       "/" + h.rootSegment + "/" + slug,
			Questions: questions,
		})
	}

	title := i18n.T(locale, "faq-title")
	description := i18n.T(locale, "faq-description")
	meta := seo.BuildMeta(locale, title, description, seo.SiteLinks(locale))

	h.servePage(w, r, key, "front/index", render.TemplateData{
		Title:  title,
		Locale: locale,
		Meta:   meta,
		Data:   LandingData{Categories: landing},
	})
}

// CategoryQuestion is one question listed on a category page. URL is empty
// when the question has no slug in the request locale.
type CategoryQuestion struct {
	Question string
	URL      string
	Answer   template.HTML
}

// CategoryData holds data for the category page template.
type CategoryData struct {
	Name      string
	Headline  string
	Teaser    string
	Questions []CategoryQuestion
	Schema    template.JS
}

// Category handles GET /faq/{category}.
func (h *FrontendHandler) Category(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)
	segment := chi.URLParam(r, "category")

	key := cache.CategoryKey(segment, locale)
	if h.cachedPage(w, r, key) {
		return
	}

	cat, ok := h.resolveCategory(r, locale, segment)
	if !ok {
		http.NotFound(w, r)
		return
	}

	catTm, err := h.categoryTranslationMap(r, cat.ID)
	if err != nil {
		serverError(w, "failed to load category translations", err)
		return
	}

	faqs, err := h.queries.ListFaqsByCategory(r.Context(), cat.ID)
	if err != nil {
		serverError(w, "failed to list category faqs", err)
		return
	}

	maps, err := h.categoryFaqTranslations(r, cat.ID)
	if err != nil {
		serverError(w, "failed to load faq translations", err)
		return
	}

	var questions []CategoryQuestion
	var pairs []seo.QA
	for _, f := range faqs {
		tm, ok := maps[f.ID]
		if !ok {
			continue
		}
		question := tm.Question(locale)
		if question == "" {
			continue
		}

		answer := renderAnswer(pickTranslated(tm, locale, model.FieldAnswer))

		q := CategoryQuestion{Question: question, Answer: answer}
		if slug := tm.Slug(locale); slug != "" {
			q.URL = "/" + h.rootSegment + "/" + segment + "/" + slug
		}
		questions = append(questions, q)
		pairs = append(pairs, seo.QA{Question: question, Answer: string(answer)})
	}

	name := i18n.T(locale, cat.NameKey)
	title := pickTranslated(catTm, locale, model.FieldTitle)
	if title == "" {
		title = name
	}
	description := pickTranslated(catTm, locale, model.FieldDescription)

	links := seo.BuildCategoryLinks(h.rootSegment, locale, cat.SlugKey)
	meta := seo.BuildMeta(locale, title, description, links)

	h.servePage(w, r, key, "front/category", render.TemplateData{
		Title:  title,
		Locale: locale,
		Meta:   meta,
		Data: CategoryData{
			Name:      name,
			Headline:  pickTranslated(catTm, locale, model.FieldHeadline),
			Teaser:    pickTranslated(catTm, locale, model.FieldTeaser),
			Questions: questions,
			Schema:    seo.BuildFAQSchema(pairs),
		},
	})
}

// QuestionData holds data for the question page template.
type QuestionData struct {
	Question     string
	Answer       template.HTML
	CategoryName string
	CategoryURL  string
	Schema       template.JS
}

// Question handles GET /faq/{category}/{slug}. The slug is looked up in
// the request locale only; an untranslated question is a 404, never a
// fallback to another locale's URL.
func (h *FrontendHandler) Question(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)
	segment := chi.URLParam(r, "category")
	slug := chi.URLParam(r, "slug")

	key := cache.FaqKey(slug, locale)
	if h.cachedPage(w, r, key) {
		return
	}

	id, err := h.queries.GetFaqIDBySlug(r.Context(), store.GetFaqIDBySlugParams{
		Locale: locale,
		Slug:   slug,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		serverError(w, "failed to resolve slug", err)
		return
	}

	faq, err := h.queries.GetFaqByID(r.Context(), id)
	if err != nil {
		serverError(w, "failed to load faq", err)
		return
	}

	cat, err := h.queries.GetFaqCategoryByID(r.Context(), faq.CategoryID)
	if err != nil {
		serverError(w, "failed to load category", err)
		return
	}

	// The category segment must match the primary category's translated
	// slug; a stale or foreign segment is a 404.
	catSlug, err := i18n.CategorySlug(cat.SlugKey, locale)
	if err != nil || catSlug == "" || catSlug != segment {
		http.NotFound(w, r)
		return
	}

	tm, err := h.faqTranslationMap(r, id)
	if err != nil {
		serverError(w, "failed to load faq translations", err)
		return
	}

	question := tm.Question(locale)
	answer := renderAnswer(pickTranslated(tm, locale, model.FieldAnswer))

	title := pickTranslated(tm, locale, model.FieldTitle)
	if title == "" {
		title = question
	}
	description := pickTranslated(tm, locale, model.FieldDescription)

	links := seo.BuildFaqLinks(seo.FaqLinkInput{
		RootSegment:     h.rootSegment,
		Locale:          locale,
		CategorySlugKey: cat.SlugKey,
		Slug:            slug,
		Translations:    tm,
	})
	meta := seo.BuildMeta(locale, title, description, links)

	h.servePage(w, r, key, "front/question", render.TemplateData{
		Title:  title,
		Locale: locale,
		Meta:   meta,
		Data: QuestionData{
			Question:     question,
			Answer:       answer,
			CategoryName: i18n.T(locale, cat.NameKey),
			CategoryURL:  "/" + h.rootSegment + "/" + catSlug,
			Schema:       seo.BuildFAQSchema([]seo.QA{{Question: question, Answer: string(answer)}}),
		},
	})
}

// Sitemap handles GET /sitemap.xml for the request locale's site.
func (h *FrontendHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	key := cache.SitemapKey(locale)
	if h.cache != nil {
		if body, err := h.cache.Get(r.Context(), key); err == nil {
			w.Header().Set("Content-Type", "application/xml; charset=utf-8")
			_, _ = w.Write(body)
			return
		}
	}

	cats, err := h.queries.ListFaqCategories(r.Context())
	if err != nil {
		serverError(w, "failed to list categories", err)
		return
	}
	var sitemapCats []seo.SitemapCategory
	for _, c := range cats {
		slug, err := i18n.CategorySlug(c.SlugKey, locale)
		if err != nil {
			continue
		}
		sitemapCats = append(sitemapCats, seo.SitemapCategory{Slug: slug, UpdatedAt: c.UpdatedAt})
	}

	rows, err := h.queries.ListFaqsForSitemap(r.Context(), locale)
	if err != nil {
		serverError(w, "failed to list sitemap faqs", err)
		return
	}
	var questions []seo.SitemapQuestion
	for _, row := range rows {
		catSlug, err := i18n.CategorySlug(row.CategorySlugKey, locale)
		if err != nil {
			continue
		}
		questions = append(questions, seo.SitemapQuestion{
			CategorySlug: catSlug,
			Slug:         row.Slug,
			UpdatedAt:    row.UpdatedAt,
		})
	}

	body, err := seo.GenerateSitemap(i18n.Domain(locale), h.rootSegment, sitemapCats, questions)
	if err != nil {
		serverError(w, "failed to build sitemap", err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(r.Context(), key, body, 0); err != nil {
			slog.Warn("cache set failed", "key", key, "error", err, "category", "cache")
		}
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

// Robots handles GET /robots.txt.
func (h *FrontendHandler) Robots(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	cfg := h.robots
	cfg.SiteURL = i18n.Domain(locale)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.NewRobotsBuilder(cfg).Build()))
}

// landingQuestions lists a category's questions for the landing page.
// Questions fall back to the default locale; links require a locale slug.
func (h *FrontendHandler) landingQuestions(r *http.Request, locale string, categoryID int64, categorySlug string) ([]LandingQuestion, error) {
	faqs, err := h.queries.ListFaqsByCategory(r.Context(), categoryID)
	if err != nil {
		return nil, err
	}
	maps, err := h.categoryFaqTranslations(r, categoryID)
	if err != nil {
		return nil, err
	}

	var questions []LandingQuestion
	for _, f := range faqs {
		tm, ok := maps[f.ID]
		if !ok {
			continue
		}
		question := tm.Question(locale)
		if question == "" {
			continue
		}
		q := LandingQuestion{Question: question}
		if slug := tm.Slug(locale); slug != "" {
			q.URL = "/" + h.rootSegment + "/" + categorySlug + "/" + slug
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// resolveCategory finds the category whose translated slug matches the URL
// segment in the request locale.
func (h *FrontendHandler) resolveCategory(r *http.Request, locale, segment string) (store.FaqCategory, bool) {
	cats, err := h.queries.ListFaqCategories(r.Context())
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		return store.FaqCategory{}, false
	}
	for _, c := range cats {
		slug, err := i18n.CategorySlug(c.SlugKey, locale)
		if err == nil && slug != "" && slug == segment {
			return c, true
		}
	}
	return store.FaqCategory{}, false
}

// faqTranslationMap loads one FAQ's translations with the default-locale
// question and slug overlaid.
func (h *FrontendHandler) faqTranslationMap(r *http.Request, id int64) (translate.Map, error) {
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

// categoryTranslationMap loads one category's translations.
func (h *FrontendHandler) categoryTranslationMap(r *http.Request, id int64) (translate.Map, error) {
	rows, err := h.queries.ListFaqCategoryTranslations(r.Context(), id)
	if err != nil {
		return nil, err
	}
	trs := make([]translate.Row, 0, len(rows))
	for _, row := range rows {
		trs = append(trs, translate.Row{Locale: row.Locale, Field: row.Field, Content: row.Content})
	}
	return translate.Flatten(trs), nil
}

// categoryFaqTranslations loads the translation maps of every FAQ in a
// category in one query, keyed by FAQ id.
func (h *FrontendHandler) categoryFaqTranslations(r *http.Request, categoryID int64) (map[int64]translate.Map, error) {
	rows, err := h.queries.ListCategoryFaqTranslations(r.Context(), categoryID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]translate.Row)
	for _, row := range rows {
		grouped[row.FaqID] = append(grouped[row.FaqID], translate.Row{
			Locale: row.Locale, Field: row.Field, Content: row.Content,
		})
	}

	maps := make(map[int64]translate.Map, len(grouped))
	for id, trs := range grouped {
		maps[id] = translate.Flatten(trs)
	}
	return maps, nil
}

// pickTranslated returns a field in the request locale, falling back to
// the default locale. Question and slug have their own rules in translate.
func pickTranslated(tm translate.Map, locale, field string) string {
	if v := tm.Get(locale, field); v != "" {
		return v
	}
	return tm.Get(model.DefaultLocale, field)
}
