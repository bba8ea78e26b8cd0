package services

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"spars/internal/util"
)

// DownloadHandler serves the two static marketing PDFs. Files are resolved
// once at startup; a missing file is a 404, not an error.
type DownloadHandler struct {
	assets *util.Assets
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(assets *util.Assets) *DownloadHandler {
	return &DownloadHandler{assets: assets}
}

// ServeHTTP handles GET /api/download/brochure and
// GET /api/download/product-profile
func (h *DownloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var path, filename string
	switch strings.TrimSuffix(r.URL.Path, "/") {
	case "/api/download/brochure":
		path = h.assets.BrochurePDF
		filename = "SPARS-Brochure.pdf"
	case "/api/download/product-profile":
		path = h.assets.ProductProfilePDF
		filename = "SPARS-Product-Profile.pdf"
	default:
		http.NotFound(w, r)
		return
	}

	if path == "" {
		log.Printf("[DOWNLOAD] Requested document not available: %s", r.URL.Path)
		http.Error(w, "document not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}
