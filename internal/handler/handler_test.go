package handler

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/terramia/faq-go/internal/cache"
	"github.com/terramia/faq-go/internal/i18n"
	"github.com/terramia/faq-go/internal/middleware"
	"github.com/terramia/faq-go/internal/model"
	"github.com/terramia/faq-go/internal/render"
	"github.com/terramia/faq-go/internal/session"
	"github.com/terramia/faq-go/internal/store"
	"github.com/terramia/faq-go/internal/testutil"
	"github.com/terramia/faq-go/web"
)

type testApp struct {
	db      *sql.DB
	queries *store.Queries
	router  chi.Router
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, i18n.Init(logger))

	db := testutil.NewDB(t)
	sm := session.New(db, true)

	renderer, err := render.New(render.Config{
		TemplatesFS:    web.Templates(),
		SessionManager: sm,
		IsDev:          true,
	})
	require.NoError(t, err)

	c := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { c.Close() })

	faqs := NewFaqsHandler(db, renderer, sm, c)
	categories := NewCategoriesHandler(db, renderer, sm, c)
	front := NewFrontendHandler(db, renderer, c, FrontendConfig{RootSegment: "faq"})

	r := chi.NewRouter()
	r.Use(middleware.Locale)
	r.Use(sm.LoadAndSave)

	r.Route(RouteFaqIndex, func(r chi.Router) {
		r.Get("/", faqs.List)
		r.Get(RouteSuffixCreate, faqs.CreateForm)
		r.Post(RouteSuffixCreate, faqs.Create)
		r.Get(RouteSuffixEdit, faqs.EditForm)
		r.Post(RouteSuffixEdit, faqs.Edit)
		r.Get(RouteSuffixEditLocale, faqs.EditForm)
		r.Post(RouteSuffixEditLocale, faqs.Edit)

		r.Route(RouteCategory, func(r chi.Router) {
			r.Get("/", categories.List)
			r.Get(RouteSuffixCreate, categories.CreateForm)
			r.Post(RouteSuffixCreate, categories.Create)
			r.Get(RouteSuffixEdit, categories.EditForm)
			r.Post(RouteSuffixEdit, categories.Edit)
			r.Get(RouteSuffixEditLocale, categories.EditForm)
			r.Post(RouteSuffixEditLocale, categories.Edit)
		})
	})

	r.Get(RouteSitemap, front.Sitemap)
	r.Get(RouteRobots, front.Robots)
	r.Route("/faq", func(r chi.Router) {
		r.Get("/", front.Landing)
		r.Get(RouteParamCategory, front.Category)
		r.Get(RouteParamQuestion, front.Question)
	})

	return &testApp{db: db, queries: store.New(db), router: r}
}

func (a *testApp) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) createCategory(t *testing.T, nameKey, slugKey string) store.FaqCategory {
	t.Helper()
	now := time.Now()
	cat, err := a.queries.CreateFaqCategory(context.Background(), store.CreateFaqCategoryParams{
		Position:  1,
		NameKey:   nameKey,
		SlugKey:   slugKey,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return cat
}

// createFaq inserts a FAQ with its de_DE question, slug and answer, plus
// the membership edge to its primary category.
func (a *testApp) createFaq(t *testing.T, categoryID int64, question, slug, answer string) store.Faq {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	faq, err := a.queries.CreateFaq(ctx, store.CreateFaqParams{
		CategoryID: categoryID,
		Position:   1,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)

	for field, content := range map[string]string{
		model.FieldQuestion: question,
		model.FieldSlug:     slug,
		model.FieldAnswer:   answer,
	} {
		require.NoError(t, a.queries.UpsertFaqTranslation(ctx, store.UpsertFaqTranslationParams{
			FaqID:   faq.ID,
			Locale:  model.LocaleGerman,
			Field:   field,
			Content: content,
		}))
	}

	require.NoError(t, a.queries.AddFaqCategory(ctx, store.FaqCategoryPair{
		FaqID:      faq.ID,
		CategoryID: categoryID,
	}))

	return faq
}

// addTranslation writes one translation row for a FAQ.
func (a *testApp) addTranslation(t *testing.T, faqID int64, locale, field, content string) {
	t.Helper()
	require.NoError(t, a.queries.UpsertFaqTranslation(context.Background(), store.UpsertFaqTranslationParams{
		FaqID:   faqID,
		Locale:  locale,
		Field:   field,
		Content: content,
	}))
}
