package domain

import (
	"time"

	"gorm.io/gorm"
)

// BrochureForm represents a brochure download request
type BrochureForm struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	FullName          string    `gorm:"not null" json:"full_name"`
	Email             string    `gorm:"not null;index" json:"email"`
	Company           string    `gorm:"not null" json:"company"`
	Phone             *string   `json:"phone"`
	JobRole           *string   `json:"job_role"`
	AgreedToMarketing bool      `gorm:"default:false" json:"agreed_to_marketing"`
	SubmittedAt       time.Time `json:"submitted_at"`
}

// TableName specifies the table name for BrochureForm
func (BrochureForm) TableName() string {
	return "brochure_forms"
}

// BeforeCreate hook
func (b *BrochureForm) BeforeCreate(tx *gorm.DB) error {
	if b.SubmittedAt.IsZero() {
		b.SubmittedAt = time.Now()
	}
	return nil
}
