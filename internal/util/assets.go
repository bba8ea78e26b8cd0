package util

import (
	"log"
	"os"
	"path/filepath"

	"spars/internal/config"
)

// Candidate filenames for the two static PDFs. Marketing has renamed these
// files more than once; the first one that exists wins.
var (
	brochureCandidates = []string{
		"SPARS_Brochure.pdf",
		"SPARS-Brochure.pdf",
		"SPARS-Product-Brochure.pdf",
	}
	profileCandidates = []string{
		"SPARS_Profile.pdf",
		"SPARS-Product-Profile.pdf",
		"SPARS-ProductProfile.pdf",
	}
	logoFilename = "spars-logo.png"
)

// Assets holds the static files resolved at startup. An empty path means
// the asset was not found; callers treat that as a soft miss.
type Assets struct {
	BrochurePDF       string
	ProductProfilePDF string
	LogoPath          string
}

// ResolveAssets probes the configured locations once and returns whatever
// was found. Missing assets are logged, never fatal.
func ResolveAssets(cfg *config.AssetsConfig) *Assets {
	a := &Assets{
		BrochurePDF:       findFirst(cfg.PDFDir, brochureCandidates),
		ProductProfilePDF: findFirst(cfg.PDFDir, profileCandidates),
	}

	for _, dir := range cfg.LogoDirs {
		path := filepath.Join(dir, logoFilename)
		if fileExists(path) {
			a.LogoPath = path
			break
		}
	}

	if a.BrochurePDF == "" {
		log.Printf("[ASSETS] Brochure PDF not found in %s", cfg.PDFDir)
	}
	if a.ProductProfilePDF == "" {
		log.Printf("[ASSETS] Product profile PDF not found in %s", cfg.PDFDir)
	}
	if a.LogoPath == "" {
		log.Printf("[ASSETS] Logo not found; emails will be sent without it")
	}

	return a
}

func findFirst(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
