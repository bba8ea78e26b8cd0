package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	goa "goa.design/goa/v3/pkg"

	"spars/gen/forms"
	"spars/internal/config"
	"spars/internal/store"
	"spars/internal/util"
)

func newFormsService(t *testing.T, assets *util.Assets) (*FormsService, *store.FormStore) {
	t.Helper()
	st := newTestStore(t)
	email := NewEmailService(&config.EmailConfig{})
	notifier := NewNotifier(email, "", "")
	exporter := NewExportService(st, t.TempDir())
	if assets == nil {
		assets = &util.Assets{}
	}
	return NewFormsService(st, notifier, exporter, assets), st
}

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var serr *goa.ServiceError
	if !errors.As(err, &serr) {
		t.Fatalf("expected goa service error, got %T: %v", err, err)
	}
	if serr.Name != "bad_request" {
		t.Errorf("error name = %q, want bad_request", serr.Name)
	}
}

func TestNewsletterSubscribe(t *testing.T) {
	svc, st := newFormsService(t, nil)

	res, err := svc.Newsletter(context.Background(), &forms.NewsletterPayload{Email: "A@B.com"})
	if err != nil {
		t.Fatalf("Newsletter failed: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}
	if res.Message != "Successfully subscribed to newsletter" {
		t.Errorf("message = %q", res.Message)
	}

	subs, err := st.ListNewsletter()
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 row, got %d", len(subs))
	}
	if subs[0].Email != "a@b.com" {
		t.Errorf("email not normalized: %q", subs[0].Email)
	}
}

func TestNewsletterInvalidEmail(t *testing.T) {
	svc, st := newFormsService(t, nil)

	_, err := svc.Newsletter(context.Background(), &forms.NewsletterPayload{Email: "not-an-email"})
	assertBadRequest(t, err)

	subs, err := st.ListNewsletter()
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 0 {
		t.Errorf("rejected subscription still persisted %d rows", len(subs))
	}
}

func TestBrochureConsentRequired(t *testing.T) {
	svc, st := newFormsService(t, nil)

	_, err := svc.Brochure(context.Background(), &forms.BrochurePayload{
		FullName:          "Jane Doe",
		Email:             "jane@example.com",
		Company:           "Acme Furniture",
		AgreedToMarketing: false,
	})
	assertBadRequest(t, err)

	rows, err := st.ListBrochureForms()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("consent rejection must not persist, got %d rows", len(rows))
	}
}

func TestBrochureSubmit(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "SPARS_Brochure.pdf")
	if err := os.WriteFile(pdf, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("with pdf", func(t *testing.T) {
		svc, st := newFormsService(t, &util.Assets{BrochurePDF: pdf})
		res, err := svc.Brochure(context.Background(), &forms.BrochurePayload{
			FullName:          "Jane Doe",
			Email:             "jane@example.com",
			Company:           "Acme Furniture",
			AgreedToMarketing: true,
		})
		if err != nil {
			t.Fatalf("Brochure failed: %v", err)
		}
		if !res.Success || !res.HasPdf {
			t.Errorf("result = %+v, want success with pdf", res)
		}
		rows, err := st.ListBrochureForms()
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 || !rows[0].AgreedToMarketing {
			t.Errorf("unexpected rows: %+v", rows)
		}
	})

	t.Run("without pdf", func(t *testing.T) {
		svc, _ := newFormsService(t, nil)
		res, err := svc.Brochure(context.Background(), &forms.BrochurePayload{
			FullName:          "Jane Doe",
			Email:             "jane@example.com",
			Company:           "Acme Furniture",
			AgreedToMarketing: true,
		})
		if err != nil {
			t.Fatalf("Brochure failed: %v", err)
		}
		if res.HasPdf {
			t.Error("HasPdf true with no asset resolved")
		}
	})
}

func TestContactSubmit(t *testing.T) {
	svc, st := newFormsService(t, nil)

	res, err := svc.Contact(context.Background(), &forms.ContactPayload{
		Name:        "Jane Q Doe",
		Email:       "jane@example.com",
		InquiryType: "General Inquiry",
		Message:     "Hello there",
	})
	if err != nil {
		t.Fatalf("Contact failed: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}

	rows, err := st.ListContactForms()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 contact row, got %d", len(rows))
	}
	if rows[0].FirstName != "Jane" || rows[0].LastName != "Q Doe" {
		t.Errorf("name split wrong: %q / %q", rows[0].FirstName, rows[0].LastName)
	}
	if rows[0].DemoDate != nil {
		t.Error("general contact row has a demo date")
	}

	demos, err := st.ListDemoRequests()
	if err != nil {
		t.Fatal(err)
	}
	if len(demos) != 0 {
		t.Errorf("contact row leaked into demo requests: %d", len(demos))
	}
}

func TestRequestDemo(t *testing.T) {
	svc, st := newFormsService(t, nil)

	res, err := svc.RequestDemo(context.Background(), &forms.RequestDemoPayload{
		FirstName:         "John",
		LastName:          "Smith",
		Email:             "john@example.com",
		Phone:             "2126852127",
		CompanyName:       "Acme Furniture",
		PreferredDemoDate: "2025-02-10",
	})
	if err != nil {
		t.Fatalf("RequestDemo failed: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}

	demos, err := st.ListDemoRequests()
	if err != nil {
		t.Fatal(err)
	}
	if len(demos) != 1 {
		t.Fatalf("expected 1 demo row, got %d", len(demos))
	}
	if demos[0].DemoDate == nil || *demos[0].DemoDate != "2025-02-10" {
		t.Errorf("demo date = %v, want 2025-02-10", demos[0].DemoDate)
	}
	if demos[0].Company != "Acme Furniture" {
		t.Errorf("company = %q", demos[0].Company)
	}

	contacts, err := st.ListContactForms()
	if err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 0 {
		t.Errorf("demo row leaked into general contacts: %d", len(contacts))
	}
}

func TestTalkToSalesInvalidPhone(t *testing.T) {
	svc, st := newFormsService(t, nil)

	_, err := svc.TalkToSales(context.Background(), &forms.TalkToSalesPayload{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "not-a-phone",
		Message: "Interested in SPARS",
	})
	assertBadRequest(t, err)

	rows, err := st.ListTalkToSalesForms()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("rejected submission still persisted %d rows", len(rows))
	}
}

func TestProductProfileSubmit(t *testing.T) {
	svc, st := newFormsService(t, nil)
	warehouses, users := 2, 25

	res, err := svc.ProductProfile(context.Background(), &forms.ProductProfilePayload{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Phone:       "2126852127",
		CompanyName: "Acme Furniture",
		Warehouses:  &warehouses,
		Users:       &users,
	})
	if err != nil {
		t.Fatalf("ProductProfile failed: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}
	if res.HasPdf {
		t.Error("HasPdf true with no asset resolved")
	}

	rows, err := st.ListProductProfileForms()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Warehouses == nil || *rows[0].Warehouses != 2 {
		t.Errorf("warehouses = %v, want 2", rows[0].Warehouses)
	}
	if rows[0].Users == nil || *rows[0].Users != 25 {
		t.Errorf("users = %v, want 25", rows[0].Users)
	}
}
