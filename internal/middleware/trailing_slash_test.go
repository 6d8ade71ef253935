package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStripTrailingSlash(t *testing.T) {
	handler := StripTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		path     string
		wantCode int
		wantLoc  string
	}{
		{"/faq/", http.StatusMovedPermanently, "/faq"},
		{"/faq/versand/?locale=de_DE", http.StatusMovedPermanently, "/faq/versand?locale=de_DE"},
		{"/faq", http.StatusOK, ""},
		{"/", http.StatusOK, ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != tt.wantCode {
			t.Errorf("%s: code = %d, want %d", tt.path, rec.Code, tt.wantCode)
		}
		if tt.wantLoc != "" && rec.Header().Get("Location") != tt.wantLoc {
			t.Errorf("%s: location = %q, want %q", tt.path, rec.Header().Get("Location"), tt.wantLoc)
		}
	}
}
