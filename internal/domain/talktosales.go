package domain

import (
	"time"

	"gorm.io/gorm"
)

// TalkToSalesForm represents a talk-to-sales request. The requirement block
// mirrors ProductProfileForm's and is optional.
type TalkToSalesForm struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"not null;index" json:"email"`
	Phone         string    `gorm:"not null" json:"phone"`
	Company       *string   `json:"company"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	CurrentSystem *string   `json:"current_system"`
	Warehouses    *int      `json:"warehouses"`
	Users         *int      `json:"users"`
	Requirements  *string   `gorm:"type:text" json:"requirements"`
	Timeline      *string   `json:"timeline"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// TableName specifies the table name for TalkToSalesForm
func (TalkToSalesForm) TableName() string {
	return "talk_to_sales_forms"
}

// BeforeCreate hook
func (t *TalkToSalesForm) BeforeCreate(tx *gorm.DB) error {
	if t.SubmittedAt.IsZero() {
		t.SubmittedAt = time.Now()
	}
	return nil
}
