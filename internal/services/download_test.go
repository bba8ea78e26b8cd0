package services

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spars/internal/util"
)

func TestDownloadHandler(t *testing.T) {
	dir := t.TempDir()
	brochure := filepath.Join(dir, "SPARS_Brochure.pdf")
	if err := os.WriteFile(brochure, []byte("%PDF-1.4 brochure"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewDownloadHandler(&util.Assets{BrochurePDF: brochure})

	t.Run("serves brochure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/download/brochure", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("Content-Type = %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "SPARS-Brochure.pdf") {
			t.Errorf("Content-Disposition = %q", cd)
		}
		if !strings.Contains(rec.Body.String(), "brochure") {
			t.Error("body does not contain file content")
		}
	})

	t.Run("missing document is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/download/product-profile", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("unknown path is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/download/whitepaper", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("post is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/download/brochure", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})
}
