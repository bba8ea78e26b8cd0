package domain

import (
	"time"

	"gorm.io/gorm"
)

// ContactForm represents both general contact inquiries and demo requests.
// A row with a non-null DemoDate is a demo request; the two kinds are split
// into separate sheets on export.
type ContactForm struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `gorm:"not null;index" json:"email"`
	Phone         string     `json:"phone"`
	Company       string     `json:"company"`
	CompanySize   *string    `json:"company_size"`
	Message       string     `gorm:"type:text" json:"message"`
	DemoDate      *string    `json:"demo_date"`
	CurrentSystem *string    `json:"current_system"`
	Warehouses    *int       `json:"warehouses"`
	Users         *int       `json:"users"`
	Requirements  *string    `gorm:"type:text" json:"requirements"`
	Timeline      *string    `json:"timeline"`
	SubmittedAt   time.Time  `json:"submitted_at"`
}

// TableName specifies the table name for ContactForm
func (ContactForm) TableName() string {
	return "contact_forms"
}

// IsDemoRequest reports whether the row came through the demo-request path
func (c *ContactForm) IsDemoRequest() bool {
	return c.DemoDate != nil
}

// BeforeCreate hook
func (c *ContactForm) BeforeCreate(tx *gorm.DB) error {
	if c.SubmittedAt.IsZero() {
		c.SubmittedAt = time.Now()
	}
	return nil
}
