package services

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"spars/internal/domain"
	"spars/internal/store"
)

func newTestStore(t *testing.T) *store.FormStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", DSN: path, Conn: sqlDB}, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: time.Now,
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	err = db.AutoMigrate(
		&domain.NewsletterSubscription{},
		&domain.ContactForm{},
		&domain.BrochureForm{},
		&domain.ProductProfileForm{},
		&domain.TalkToSalesForm{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return store.NewFormStore(db)
}

func seedStore(t *testing.T, st *store.FormStore) {
	t.Helper()
	if _, err := st.SaveNewsletter("jane@example.com"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.SaveNewsletter("john@example.com"); err != nil {
		t.Fatal(err)
	}
	date := "2025-02-10"
	if err := st.SaveContactForm(&domain.ContactForm{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Phone: "2126852127", Message: "Hello",
	}); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveContactForm(&domain.ContactForm{
		FirstName: "John", LastName: "Smith", Email: "john@example.com",
		Phone: "2126852128", Company: "Acme", DemoDate: &date,
	}); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveBrochureForm(&domain.BrochureForm{
		FullName: "Jane Doe", Email: "jane@example.com",
		Company: "Acme", AgreedToMarketing: true,
	}); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveTalkToSalesForm(&domain.TalkToSalesForm{
		Name: "Jane Doe", Email: "jane@example.com",
		Phone: "2126852127", Message: "Interested",
	}); err != nil {
		t.Fatal(err)
	}
}

func TestExportAll(t *testing.T) {
	st := newTestStore(t)
	seedStore(t, st)

	dir := t.TempDir()
	svc := NewExportService(st, dir)

	path, err := svc.ExportAll()
	if err != nil {
		t.Fatalf("ExportAll failed: %v", err)
	}
	if filepath.Base(path) != exportFilename {
		t.Errorf("unexpected filename: %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	wantSheets := []string{
		"Newsletter Subscriptions",
		"Contact Forms",
		"Demo Requests",
		"Brochure Requests",
		"Product Profile Requests",
		"Talk to Sales",
	}
	sheets := f.GetSheetList()
	got := make(map[string]bool, len(sheets))
	for _, s := range sheets {
		got[s] = true
	}
	for _, want := range wantSheets {
		if !got[want] {
			t.Errorf("missing sheet %q", want)
		}
	}
	if got["Sheet1"] {
		t.Error("default sheet not removed")
	}

	// Header plus two subscriptions
	rows, err := f.GetRows("Newsletter Subscriptions")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Errorf("expected 3 newsletter rows, got %d", len(rows))
	}
	if rows[0][1] != "Email" {
		t.Errorf("unexpected header row: %v", rows[0])
	}

	// Demo request must not leak into the contact sheet
	contactRows, err := f.GetRows("Contact Forms")
	if err != nil {
		t.Fatal(err)
	}
	if len(contactRows) != 2 {
		t.Errorf("expected 2 contact rows, got %d", len(contactRows))
	}
	demoRows, err := f.GetRows("Demo Requests")
	if err != nil {
		t.Fatal(err)
	}
	if len(demoRows) != 2 {
		t.Errorf("expected 2 demo rows, got %d", len(demoRows))
	}

	// Empty table still gets its header
	profileRows, err := f.GetRows("Product Profile Requests")
	if err != nil {
		t.Fatal(err)
	}
	if len(profileRows) != 1 {
		t.Errorf("expected header-only profile sheet, got %d rows", len(profileRows))
	}
}

func TestExportAllOverwrites(t *testing.T) {
	st := newTestStore(t)
	dir := t.TempDir()
	svc := NewExportService(st, dir)

	if _, err := svc.ExportAll(); err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	if _, err := st.SaveNewsletter("late@example.com"); err != nil {
		t.Fatal(err)
	}
	path, err := svc.ExportAll()
	if err != nil {
		t.Fatalf("second export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("Newsletter Subscriptions")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("expected header plus one row after rewrite, got %d", len(rows))
	}
}
