package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"spars/gen/forms"
	"spars/internal/domain"
	"spars/internal/metrics"
	"spars/internal/store"
	"spars/internal/util"
)

// maxDispatchTasks caps how many follow-up tasks of one submission run
// concurrently
const maxDispatchTasks = 3

// FormsService implements the forms service. Each method validates,
// persists, then hands the follow-ups (admin notification, confirmation
// email, spreadsheet export) to a best-effort background dispatch.
type FormsService struct {
	store    *store.FormStore
	notifier *Notifier
	exporter *ExportService
	assets   *util.Assets
}

// NewFormsService creates a new forms service
func NewFormsService(st *store.FormStore, notifier *Notifier, exporter *ExportService, assets *util.Assets) *FormsService {
	return &FormsService{
		store:    st,
		notifier: notifier,
		exporter: exporter,
		assets:   assets,
	}
}

// dispatch runs follow-up tasks in the background. Failures are logged by
// the tasks themselves and never surface to the caller; the submission is
// already committed by the time this runs.
func (s *FormsService) dispatch(tasks ...func()) {
	go func() {
		var g errgroup.Group
		g.SetLimit(maxDispatchTasks)
		for _, task := range tasks {
			task := task
			g.Go(func() error {
				task()
				return nil
			})
		}
		_ = g.Wait()
	}()
}

func (s *FormsService) exportTask() func() {
	return func() {
		_, _ = s.exporter.ExportAll()
	}
}

// Newsletter implements the newsletter subscription method
func (s *FormsService) Newsletter(ctx context.Context, p *forms.NewsletterPayload) (*forms.Formresult, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	log.Printf("[FORMS] Newsletter subscription: email=%s", email)

	if !util.ValidEmail(email) {
		return nil, FormsBadRequest("invalid email address")
	}

	sub, err := s.store.SaveNewsletter(email)
	if err != nil {
		log.Printf("[FORMS] Newsletter save failed: %v", err)
		return nil, err
	}
	log.Printf("[FORMS] Newsletter subscription saved: id=%d", sub.ID)
	metrics.RecordFormSubmission(KindNewsletter.MetricName())

	// Greet by the mailbox name; it is all we have
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	s.dispatch(
		func() {
			s.notifier.NotifyAdmin(KindNewsletter, "", []Field{
				{Name: "Email", Value: email},
				{Name: "Subscribed At", Value: formatTime(sub.SubscribedAt)},
			})
		},
		func() { s.notifier.SendConfirmation(KindNewsletter, email, name, nil) },
		s.exportTask(),
	)

	return &forms.Formresult{
		Success: true,
		Message: "Successfully subscribed to newsletter",
	}, nil
}

// Contact implements the contact form method
func (s *FormsService) Contact(ctx context.Context, p *forms.ContactPayload) (*forms.Formresult, error) {
	name := strings.TrimSpace(p.Name)
	email := strings.ToLower(strings.TrimSpace(p.Email))
	log.Printf("[FORMS] Contact submission: name=%s, email=%s, inquiry=%s", name, email, p.InquiryType)

	if !util.ValidEmail(email) {
		return nil, FormsBadRequest("invalid email address")
	}
	if p.Phone != nil && strings.TrimSpace(*p.Phone) != "" && !util.ValidPhone(*p.Phone) {
		return nil, FormsBadRequest("invalid phone number format")
	}

	first, last := splitName(name)
	form := &domain.ContactForm{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     strDeref(p.Phone),
		Company:   strDeref(p.Company),
		Message:   strings.TrimSpace(p.Message),
	}
	if err := s.store.SaveContactForm(form); err != nil {
		log.Printf("[FORMS] Contact save failed: %v", err)
		return nil, err
	}
	log.Printf("[FORMS] Contact form saved: id=%d", form.ID)
	metrics.RecordFormSubmission(KindContact.MetricName())

	label := fmt.Sprintf("Contact Inquiry - %s", p.InquiryType)
	s.dispatch(
		func() {
			s.notifier.NotifyAdmin(KindContact, label, []Field{
				{Name: "Name", Value: name},
				{Name: "Email", Value: email},
				{Name: "Phone", Value: strDeref(p.Phone)},
				{Name: "Company", Value: strDeref(p.Company)},
				{Name: "Inquiry Type", Value: p.InquiryType},
				{Name: "Message", Value: form.Message},
				{Name: "Submitted At", Value: formatTime(form.SubmittedAt)},
			})
		},
		func() { s.notifier.SendConfirmation(KindContact, email, name, nil) },
		s.exportTask(),
	)

	return &forms.Formresult{
		Success: true,
		Message: "Your inquiry has been submitted successfully. We'll get back to you shortly.",
	}, nil
}

// Brochure implements the brochure request method
func (s *FormsService) Brochure(ctx context.Context, p *forms.BrochurePayload) (*forms.Documentformresult, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	log.Printf("[FORMS] Brochure request: name=%s, email=%s", p.FullName, email)

	if !p.AgreedToMarketing {
		return nil, FormsBadRequest("marketing agreement is required")
	}
	if !util.ValidEmail(email) {
		return nil, FormsBadRequest("invalid email address")
	}

	form := &domain.BrochureForm{
		FullName:          strings.TrimSpace(p.FullName),
		Email:             email,
		Company:           strings.TrimSpace(p.Company),
		Phone:             trimPtr(p.Phone),
		JobRole:           trimPtr(p.JobRole),
		AgreedToMarketing: p.AgreedToMarketing,
	}
	if err := s.store.SaveBrochureForm(form); err != nil {
		log.Printf("[FORMS] Brochure save failed: %v", err)
		return nil, err
	}
	log.Printf("[FORMS] Brochure form saved: id=%d", form.ID)
	metrics.RecordFormSubmission(KindBrochure.MetricName())

	var attachments []string
	if s.assets.BrochurePDF != "" {
		attachments = []string{s.assets.BrochurePDF}
	}

	s.dispatch(
		func() {
			s.notifier.NotifyAdmin(KindBrochure, "", []Field{
				{Name: "Full Name", Value: form.FullName},
				{Name: "Email", Value: email},
				{Name: "Company", Value: form.Company},
				{Name: "Phone", Value: strVal(form.Phone)},
				{Name: "Job Role", Value: strVal(form.JobRole)},
				{Name: "Agreed To Marketing", Value: boolVal(form.AgreedToMarketing)},
				{Name: "Submitted At", Value: formatTime(form.SubmittedAt)},
			})
		},
		func() { s.notifier.SendConfirmation(KindBrochure, email, form.FullName, attachments) },
		s.exportTask(),
	)

	return &forms.Documentformresult{
		Success: true,
		Message: "Brochure request submitted successfully. Check your email for the download link.",
		HasPdf:  len(attachments) > 0,
	}, nil
}

// ProductProfile implements the product profile request method
func (s *FormsService) ProductProfile(ctx context.Context, p *forms.ProductProfilePayload) (*forms.Documentformresult, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	log.Printf("[FORMS] Product profile request: name=%s %s, email=%s", p.FirstName, p.LastName, email)

	if !util.ValidEmail(email) {
		return nil, FormsBadRequest("invalid email address")
	}
	if !util.ValidPhone(p.Phone) {
		return nil, FormsBadRequest("invalid phone number format")
	}

	form := &domain.ProductProfileForm{
		FirstName:     strings.TrimSpace(p.FirstName),
		LastName:      strings.TrimSpace(p.LastName),
		Email:         email,
		Phone:         strings.TrimSpace(p.Phone),
		JobTitle:      trimPtr(p.JobTitle),
		CompanyName:   strings.TrimSpace(p.CompanyName),
		Industry:      trimPtr(p.Industry),
		CompanySize:   trimPtr(p.CompanySize),
		Website:       trimPtr(p.Website),
		Address:       trimPtr(p.Address),
		CurrentSystem: trimPtr(p.CurrentSystem),
		Warehouses:    p.Warehouses,
		Users:         p.Users,
		Requirements:  trimPtr(p.Requirements),
		Timeline:      trimPtr(p.Timeline),
	}
	if err := s.store.SaveProductProfileForm(form); err != nil {
		log.Printf("[FORMS] Product profile save failed: %v", err)
		return nil, err
	}
	log.Printf("[FORMS] Product profile form saved: id=%d", form.ID)
	metrics.RecordFormSubmission(KindProductProfile.MetricName())

	var attachments []string
	if s.assets.ProductProfilePDF != "" {
		attachments = []string{s.assets.ProductProfilePDF}
	}
	fullName := form.FirstName + " " + form.LastName

	s.dispatch(
		func() {
			s.notifier.NotifyAdmin(KindProductProfile, "", []Field{
				{Name: "First Name", Value: form.FirstName},
				{Name: "Last Name", Value: form.LastName},
				{Name: "Email", Value: email},
				{Name: "Phone", Value: form.Phone},
				{Name: "Job Title", Value: strVal(form.JobTitle)},
				{Name: "Company Name", Value: form.CompanyName},
				{Name: "Industry", Value: strVal(form.Industry)},
				{Name: "Company Size", Value: strVal(form.CompanySize)},
				{Name: "Website", Value: strVal(form.Website)},
				{Name: "Address", Value: strVal(form.Address)},
				{Name: "Current System", Value: strVal(form.CurrentSystem)},
				{Name: "Warehouses", Value: intVal(form.Warehouses)},
				{Name: "Users", Value: intVal(form.Users)},
				{Name: "Requirements", Value: strVal(form.Requirements)},
				{Name: "Timeline", Value: strVal(form.Timeline)},
				{Name: "Submitted At", Value: formatTime(form.SubmittedAt)},
			})
		},
		func() { s.notifier.SendConfirmation(KindProductProfile, email, fullName, attachments) },
		s.exportTask(),
	)

	return &forms.Documentformresult{
		Success: true,
		Message: "Product profile submitted successfully. Check your email for the download link.",
		HasPdf:  len(attachments) > 0,
	}, nil
}

// RequestDemo implements the demo request method. Demo requests share the
// contact table, distinguished by a non-null demo date.
func (s *FormsService) RequestDemo(ctx context.Context, p *forms.RequestDemoPayload) (*forms.Formresult, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	log.Printf("[FORMS] Demo request: name=%s %s, email=%s, date=%s", p.FirstName, p.LastName, email, p.PreferredDemoDate)

	if !util.ValidEmail(email) {
		return nil, FormsBadRequest("invalid email address")
	}
	if !util.ValidPhone(p.Phone) {
		return nil, FormsBadRequest("invalid phone number format")
	}

	demoDate := strings.TrimSpace(p.PreferredDemoDate)
	form := &domain.ContactForm{
		FirstName:   strings.TrimSpace(p.FirstName),
		LastName:    strings.TrimSpace(p.LastName),
		Email:       email,
		Phone:       strings.TrimSpace(p.Phone),
		Company:     strings.TrimSpace(p.CompanyName),
		CompanySize: trimPtr(p.CompanySize),
		Message:     strDeref(p.AdditionalInformation),
		DemoDate:    &demoDate,
	}
	if err := s.store.SaveContactForm(form); err != nil {
		log.Printf("[FORMS] Demo request save failed: %v", err)
		return nil, err
	}
	log.Printf("[FORMS] Demo request saved: id=%d", form.ID)
	metrics.RecordFormSubmission(KindDemo.MetricName())

	fullName := form.FirstName + " " + form.LastName

	s.dispatch(
		func() {
			s.notifier.NotifyAdmin(KindDemo, "", []Field{
				{Name: "First Name", Value: form.FirstName},
				{Name: "Last Name", Value: form.LastName},
				{Name: "Email", Value: email},
				{Name: "Phone", Value: form.Phone},
				{Name: "Company Name", Value: form.Company},
				{Name: "Company Size", Value: strVal(form.CompanySize)},
				{Name: "Preferred Demo Date", Value: demoDate},
				{Name: "Preferred Demo Time", Value: strDeref(p.PreferredDemoTime)},
				{Name: "Additional Information", Value: form.Message},
				{Name: "Submitted At", Value: formatTime(form.SubmittedAt)},
			})
		},
		func() { s.notifier.SendConfirmation(KindDemo, email, fullName, nil) },
		s.exportTask(),
	)

	return &forms.Formresult{
		Success: true,
		Message: "Demo request submitted successfully. We'll contact you shortly to schedule your demo.",
	}, nil
}

// TalkToSales implements the talk-to-sales method
func (s *FormsService) TalkToSales(ctx context.Context, p *forms.TalkToSalesPayload) (*forms.Formresult, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	name := strings.TrimSpace(p.Name)
	log.Printf("[FORMS] Talk to sales: name=%s, email=%s", name, email)

	if !util.ValidEmail(email) {
		return nil, FormsBadRequest("invalid email address")
	}
	if !util.ValidPhone(p.Phone) {
		return nil, FormsBadRequest("invalid phone number format")
	}

	form := &domain.TalkToSalesForm{
		Name:          name,
		Email:         email,
		Phone:         strings.TrimSpace(p.Phone),
		Company:       trimPtr(p.Company),
		Message:       strings.TrimSpace(p.Message),
		CurrentSystem: trimPtr(p.CurrentSystem),
		Warehouses:    p.Warehouses,
		Users:         p.Users,
		Requirements:  trimPtr(p.Requirements),
		Timeline:      trimPtr(p.Timeline),
	}
	if err := s.store.SaveTalkToSalesForm(form); err != nil {
		log.Printf("[FORMS] Talk to sales save failed: %v", err)
		return nil, err
	}
	log.Printf("[FORMS] Talk to sales form saved: id=%d", form.ID)
	metrics.RecordFormSubmission(KindSales.MetricName())

	s.dispatch(
		func() {
			s.notifier.NotifyAdmin(KindSales, "", []Field{
				{Name: "Name", Value: name},
				{Name: "Email", Value: email},
				{Name: "Phone", Value: form.Phone},
				{Name: "Company", Value: strVal(form.Company)},
				{Name: "Message", Value: form.Message},
				{Name: "Current System", Value: strVal(form.CurrentSystem)},
				{Name: "Warehouses", Value: intVal(form.Warehouses)},
				{Name: "Users", Value: intVal(form.Users)},
				{Name: "Requirements", Value: strVal(form.Requirements)},
				{Name: "Timeline", Value: strVal(form.Timeline)},
				{Name: "Submitted At", Value: formatTime(form.SubmittedAt)},
			})
		},
		func() { s.notifier.SendConfirmation(KindSales, email, name, nil) },
		s.exportTask(),
	)

	return &forms.Formresult{
		Success: true,
		Message: "Your message has been sent. Our sales team will contact you shortly.",
	}, nil
}

// splitName splits a full name into first and last on the first space
func splitName(name string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

// strDeref returns the trimmed value or "" for nil
func strDeref(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// trimPtr trims the value and drops empty strings to nil
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
