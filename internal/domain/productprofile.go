package domain

import (
	"time"

	"gorm.io/gorm"
)

// ProductProfileForm represents a product profile request
type ProductProfileForm struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// User information
	FirstName string  `gorm:"not null" json:"first_name"`
	LastName  string  `gorm:"not null" json:"last_name"`
	Email     string  `gorm:"not null;index" json:"email"`
	Phone     string  `gorm:"not null" json:"phone"`
	JobTitle  *string `json:"job_title"`

	// Company information
	CompanyName string  `gorm:"not null" json:"company_name"`
	Industry    *string `json:"industry"`
	CompanySize *string `json:"company_size"`
	Website     *string `json:"website"`
	Address     *string `gorm:"type:text" json:"address"`

	// Requirements
	CurrentSystem *string `json:"current_system"`
	Warehouses    *int    `json:"warehouses"`
	Users         *int    `json:"users"`
	Requirements  *string `gorm:"type:text" json:"requirements"`
	Timeline      *string `json:"timeline"`

	SubmittedAt time.Time `json:"submitted_at"`
}

// TableName specifies the table name for ProductProfileForm
func (ProductProfileForm) TableName() string {
	return "product_profile_forms"
}

// BeforeCreate hook
func (p *ProductProfileForm) BeforeCreate(tx *gorm.DB) error {
	if p.SubmittedAt.IsZero() {
		p.SubmittedAt = time.Now()
	}
	return nil
}
