// Package store maps validated submissions onto committed rows and reads
// them back for export. Records are append-only: nothing here updates or
// deletes.
package store

import (
	"gorm.io/gorm"

	"spars/internal/domain"
	apperrors "spars/pkg/errors"
)

// FormStore persists form submissions
type FormStore struct {
	db *gorm.DB
}

// NewFormStore creates a new form store
func NewFormStore(db *gorm.DB) *FormStore {
	return &FormStore{db: db}
}

// SaveNewsletter inserts one newsletter subscription row
func (s *FormStore) SaveNewsletter(email string) (*domain.NewsletterSubscription, error) {
	sub := &domain.NewsletterSubscription{Email: email}
	if err := s.db.Create(sub).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodePersistence, "failed to save newsletter subscription", err)
	}
	return sub, nil
}

// SaveContactForm inserts one contact form row. Demo requests arrive here
// too, with DemoDate set.
func (s *FormStore) SaveContactForm(form *domain.ContactForm) error {
	if err := s.db.Create(form).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrCodePersistence, "failed to save contact form", err)
	}
	return nil
}

// SaveBrochureForm inserts one brochure request row
func (s *FormStore) SaveBrochureForm(form *domain.BrochureForm) error {
	if err := s.db.Create(form).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrCodePersistence, "failed to save brochure form", err)
	}
	return nil
}

// SaveProductProfileForm inserts one product profile row
func (s *FormStore) SaveProductProfileForm(form *domain.ProductProfileForm) error {
	if err := s.db.Create(form).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrCodePersistence, "failed to save product profile form", err)
	}
	return nil
}

// SaveTalkToSalesForm inserts one talk-to-sales row
func (s *FormStore) SaveTalkToSalesForm(form *domain.TalkToSalesForm) error {
	if err := s.db.Create(form).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrCodePersistence, "failed to save talk to sales form", err)
	}
	return nil
}

// ListNewsletter returns all subscriptions, newest first
func (s *FormStore) ListNewsletter() ([]domain.NewsletterSubscription, error) {
	var subs []domain.NewsletterSubscription
	if err := s.db.Order("subscribed_at DESC").Find(&subs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodePersistence, "failed to list newsletter subscriptions", err)
	}
	return subs, nil
}

// ListContactForms returns general contact rows (demo_date null), newest first
func (s *FormStore) ListContactForms() ([]domain.ContactForm, error) {
	var forms []domain.ContactForm
	if err := s.db.Where("demo_date IS NULL").Order("submitted_at DESC").Find(&forms).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodePersistence, "failed to list contact forms", err)
	}
	return forms, nil
}

// ListDemoRequests returns demo-request rows (demo_date non-null), newest first
func (s *FormStore) ListDemoRequests() ([]domain.ContactForm, error) {
	var forms []domain.ContactForm
	if err := s.db.Where("demo_date IS NOT NULL").Order("submitted_at DESC").Find(&forms).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodePersistence, "failed to list demo requests", err)
	}
	return forms, nil
}

// ListBrochureForms returns all brochure requests, newest first
func (s *FormStore) ListBrochureForms() ([]domain.BrochureForm, error) {
	var forms []domain.BrochureForm
	if err := s.db.Order("submitted_at DESC").Find(&forms).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodePersistence, "failed to list brochure forms", err)
	}
	return forms, nil
}

// ListProductProfileForms returns all product profile rows, newest first
func (s *FormStore) ListProductProfileForms() ([]domain.ProductProfileForm, error) {
	var forms []domain.ProductProfileForm
	if err := s.db.Order("submitted_at DESC").Find(&forms).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodePersistence, "failed to list product profile forms", err)
	}
	return forms, nil
}

// ListTalkToSalesForms returns all talk-to-sales rows, newest first
func (s *FormStore) ListTalkToSalesForms() ([]domain.TalkToSalesForm, error) {
	var forms []domain.TalkToSalesForm
	if err := s.db.Order("submitted_at DESC").Find(&forms).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodePersistence, "failed to list talk to sales forms", err)
	}
	return forms, nil
}
