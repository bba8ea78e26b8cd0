package util

import (
	"os"
	"path/filepath"
	"testing"

	"spars/internal/config"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestResolveAssets(t *testing.T) {
	t.Run("all present", func(t *testing.T) {
		pdfDir := t.TempDir()
		logoDir := t.TempDir()
		writeFile(t, filepath.Join(pdfDir, "SPARS_Brochure.pdf"))
		writeFile(t, filepath.Join(pdfDir, "SPARS_Profile.pdf"))
		writeFile(t, filepath.Join(logoDir, "spars-logo.png"))

		a := ResolveAssets(&config.AssetsConfig{PDFDir: pdfDir, LogoDirs: []string{logoDir}})
		if a.BrochurePDF != filepath.Join(pdfDir, "SPARS_Brochure.pdf") {
			t.Errorf("BrochurePDF = %q", a.BrochurePDF)
		}
		if a.ProductProfilePDF != filepath.Join(pdfDir, "SPARS_Profile.pdf") {
			t.Errorf("ProductProfilePDF = %q", a.ProductProfilePDF)
		}
		if a.LogoPath != filepath.Join(logoDir, "spars-logo.png") {
			t.Errorf("LogoPath = %q", a.LogoPath)
		}
	})

	t.Run("alternate filenames", func(t *testing.T) {
		pdfDir := t.TempDir()
		writeFile(t, filepath.Join(pdfDir, "SPARS-Product-Brochure.pdf"))
		writeFile(t, filepath.Join(pdfDir, "SPARS-ProductProfile.pdf"))

		a := ResolveAssets(&config.AssetsConfig{PDFDir: pdfDir})
		if a.BrochurePDF != filepath.Join(pdfDir, "SPARS-Product-Brochure.pdf") {
			t.Errorf("BrochurePDF = %q", a.BrochurePDF)
		}
		if a.ProductProfilePDF != filepath.Join(pdfDir, "SPARS-ProductProfile.pdf") {
			t.Errorf("ProductProfilePDF = %q", a.ProductProfilePDF)
		}
	})

	t.Run("preferred name wins", func(t *testing.T) {
		pdfDir := t.TempDir()
		writeFile(t, filepath.Join(pdfDir, "SPARS_Brochure.pdf"))
		writeFile(t, filepath.Join(pdfDir, "SPARS-Brochure.pdf"))

		a := ResolveAssets(&config.AssetsConfig{PDFDir: pdfDir})
		if a.BrochurePDF != filepath.Join(pdfDir, "SPARS_Brochure.pdf") {
			t.Errorf("BrochurePDF = %q, want SPARS_Brochure.pdf", a.BrochurePDF)
		}
	})

	t.Run("logo from second dir", func(t *testing.T) {
		first := t.TempDir()
		second := t.TempDir()
		writeFile(t, filepath.Join(second, "spars-logo.png"))

		a := ResolveAssets(&config.AssetsConfig{PDFDir: t.TempDir(), LogoDirs: []string{first, second}})
		if a.LogoPath != filepath.Join(second, "spars-logo.png") {
			t.Errorf("LogoPath = %q", a.LogoPath)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		a := ResolveAssets(&config.AssetsConfig{PDFDir: t.TempDir()})
		if a.BrochurePDF != "" || a.ProductProfilePDF != "" || a.LogoPath != "" {
			t.Errorf("expected empty assets, got %+v", a)
		}
	})

	t.Run("directory is not a file", func(t *testing.T) {
		pdfDir := t.TempDir()
		if err := os.Mkdir(filepath.Join(pdfDir, "SPARS_Brochure.pdf"), 0o755); err != nil {
			t.Fatal(err)
		}
		a := ResolveAssets(&config.AssetsConfig{PDFDir: pdfDir})
		if a.BrochurePDF != "" {
			t.Errorf("BrochurePDF = %q, want empty for directory", a.BrochurePDF)
		}
	})
}
