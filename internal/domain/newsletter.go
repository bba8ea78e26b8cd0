package domain

import (
	"time"

	"gorm.io/gorm"
)

// NewsletterSubscription represents a newsletter signup. Repeat submissions
// of the same address create repeat rows; no dedup is enforced.
type NewsletterSubscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"not null;index" json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// TableName specifies the table name for NewsletterSubscription
func (NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}

// BeforeCreate hook. Timestamps are server-local, not UTC, so exported
// spreadsheets read in the office timezone.
func (n *NewsletterSubscription) BeforeCreate(tx *gorm.DB) error {
	if n.SubscribedAt.IsZero() {
		n.SubscribedAt = time.Now()
	}
	return nil
}
