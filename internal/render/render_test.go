package render

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/terramia/faq-go/internal/i18n"
	"github.com/terramia/faq-go/internal/seo"
	"github.com/terramia/faq-go/web"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	if err := i18n.Init(slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("i18n.Init: %v", err)
	}

	r, err := New(Config{
		TemplatesFS: web.Templates(),
		IsDev:       true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRenderFrontPage(t *testing.T) {
	r := newTestRenderer(t)

	req := httptest.NewRequest(http.MethodGet, "/faq", nil)
	rec := httptest.NewRecorder()

	err := r.Render(rec, req, "front/index", TemplateData{
		Title:  "Terra Mia FAQ",
		Locale: "de_DE",
		Meta:   seo.BuildMeta("de_DE", "Terra Mia FAQ", "Antworten auf Ihre Fragen.", seo.SiteLinks("de_DE")),
		Data:   struct{ Categories []struct{} }{},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<title>Terra Mia FAQ</title>") {
		t.Errorf("missing title in output")
	}
	if !strings.Contains(body, `rel="canonical" href="https://www.terramia.de"`) {
		t.Errorf("missing canonical link in output")
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestRenderAdminPageUsesAdminLayout(t *testing.T) {
	r := newTestRenderer(t)

	req := httptest.NewRequest(http.MethodGet, "/faq-index", nil)
	rec := httptest.NewRecorder()

	err := r.Render(rec, req, "admin/faq_list", TemplateData{
		Title:  "FAQ-Verwaltung",
		Locale: "de_DE",
		Data: struct {
			Rows       []struct{}
			TotalCount int64
		}{},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "admin-nav") {
		t.Errorf("admin layout not applied")
	}
	if !strings.Contains(body, "No FAQ entries yet.") {
		t.Errorf("empty state not rendered")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := newTestRenderer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := r.Render(rec, req, "front/nope", TemplateData{}); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
