package store

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"spars/internal/domain"
)

func newTestStore(t *testing.T) *FormStore {
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
	return NewFormStore(db)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestSaveNewsletter(t *testing.T) {
	s := newTestStore(t)

	sub, err := s.SaveNewsletter("jane@example.com")
	if err != nil {
		t.Fatalf("SaveNewsletter failed: %v", err)
	}
	if sub.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if sub.SubscribedAt.IsZero() {
		t.Error("expected SubscribedAt to be set")
	}

	// Repeat subscriptions create repeat rows
	sub2, err := s.SaveNewsletter("jane@example.com")
	if err != nil {
		t.Fatalf("second SaveNewsletter failed: %v", err)
	}
	if sub2.ID <= sub.ID {
		t.Errorf("expected increasing IDs, got %d then %d", sub.ID, sub2.ID)
	}

	subs, err := s.ListNewsletter()
	if err != nil {
		t.Fatalf("ListNewsletter failed: %v", err)
	}
	if len(subs) != 2 {
		t.Errorf("expected 2 subscriptions, got %d", len(subs))
	}
}

func TestContactAndDemoSplit(t *testing.T) {
	s := newTestStore(t)

	contact := &domain.ContactForm{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "2126852127",
		Message:   "General question",
	}
	if err := s.SaveContactForm(contact); err != nil {
		t.Fatalf("SaveContactForm failed: %v", err)
	}
	if contact.IsDemoRequest() {
		t.Error("contact without demo date reported as demo request")
	}

	demo := &domain.ContactForm{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@example.com",
		Phone:     "2126852128",
		Company:   "Acme Furniture",
		DemoDate:  strPtr("2025-02-10"),
	}
	if err := s.SaveContactForm(demo); err != nil {
		t.Fatalf("SaveContactForm (demo) failed: %v", err)
	}
	if !demo.IsDemoRequest() {
		t.Error("demo request not reported as such")
	}

	contacts, err := s.ListContactForms()
	if err != nil {
		t.Fatalf("ListContactForms failed: %v", err)
	}
	if len(contacts) != 1 || contacts[0].Email != "jane@example.com" {
		t.Errorf("expected only the general contact, got %+v", contacts)
	}

	demos, err := s.ListDemoRequests()
	if err != nil {
		t.Fatalf("ListDemoRequests failed: %v", err)
	}
	if len(demos) != 1 || demos[0].Email != "john@example.com" {
		t.Errorf("expected only the demo request, got %+v", demos)
	}
	if demos[0].DemoDate == nil || *demos[0].DemoDate != "2025-02-10" {
		t.Errorf("demo date not preserved: %+v", demos[0].DemoDate)
	}
}

func TestSaveBrochureForm(t *testing.T) {
	s := newTestStore(t)

	form := &domain.BrochureForm{
		FullName:          "Jane Doe",
		Email:             "jane@example.com",
		Company:           "Acme Furniture",
		Phone:             strPtr("2126852127"),
		JobRole:           strPtr("Operations Manager"),
		AgreedToMarketing: true,
	}
	if err := s.SaveBrochureForm(form); err != nil {
		t.Fatalf("SaveBrochureForm failed: %v", err)
	}
	if form.ID == 0 {
		t.Error("expected non-zero ID")
	}

	forms, err := s.ListBrochureForms()
	if err != nil {
		t.Fatalf("ListBrochureForms failed: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("expected 1 form, got %d", len(forms))
	}
	if !forms[0].AgreedToMarketing {
		t.Error("AgreedToMarketing not preserved")
	}
	if forms[0].JobRole == nil || *forms[0].JobRole != "Operations Manager" {
		t.Error("JobRole not preserved")
	}
}

func TestSaveProductProfileForm(t *testing.T) {
	s := newTestStore(t)

	form := &domain.ProductProfileForm{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Phone:       "2126852127",
		CompanyName: "Acme Furniture",
		Warehouses:  intPtr(3),
		Users:       intPtr(25),
		Timeline:    strPtr("Q2 2025"),
	}
	if err := s.SaveProductProfileForm(form); err != nil {
		t.Fatalf("SaveProductProfileForm failed: %v", err)
	}

	forms, err := s.ListProductProfileForms()
	if err != nil {
		t.Fatalf("ListProductProfileForms failed: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("expected 1 form, got %d", len(forms))
	}
	if forms[0].Warehouses == nil || *forms[0].Warehouses != 3 {
		t.Error("Warehouses not preserved")
	}
	if forms[0].JobTitle != nil {
		t.Error("expected nil JobTitle to stay nil")
	}
}

func TestSaveTalkToSalesForm(t *testing.T) {
	s := newTestStore(t)

	form := &domain.TalkToSalesForm{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "2126852127",
		Message: "Interested in SPARS for our three showrooms",
	}
	if err := s.SaveTalkToSalesForm(form); err != nil {
		t.Fatalf("SaveTalkToSalesForm failed: %v", err)
	}

	forms, err := s.ListTalkToSalesForms()
	if err != nil {
		t.Fatalf("ListTalkToSalesForms failed: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("expected 1 form, got %d", len(forms))
	}
	if forms[0].Company != nil {
		t.Error("expected nil Company to stay nil")
	}
}

func TestListOrder(t *testing.T) {
	s := newTestStore(t)

	early := &domain.BrochureForm{
		FullName:          "First",
		Email:             "first@example.com",
		Company:           "Acme",
		AgreedToMarketing: true,
		SubmittedAt:       time.Now().Add(-time.Hour),
	}
	late := &domain.BrochureForm{
		FullName:          "Second",
		Email:             "second@example.com",
		Company:           "Acme",
		AgreedToMarketing: true,
	}
	if err := s.SaveBrochureForm(early); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveBrochureForm(late); err != nil {
		t.Fatal(err)
	}

	forms, err := s.ListBrochureForms()
	if err != nil {
		t.Fatal(err)
	}
	if len(forms) != 2 {
		t.Fatalf("expected 2 forms, got %d", len(forms))
	}
	if forms[0].Email != "second@example.com" {
		t.Errorf("expected newest first, got %s", forms[0].Email)
	}
}
