package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTypeOrder   = "Order"
	NotificationTypePayment = "Payment"
	NotificationTypeProduct = "Product"
	NotificationTypeAdmin   = "Admin"
	NotificationTypeVendor  = "Vendor"
)

// Notification is a one-way informational record. Creation is fire-and-forget
// from the caller's point of view.
type Notification struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RecipientID uuid.UUID  `json:"recipient_id" gorm:"type:uuid;not null;index"`
	Type        string     `json:"type" gorm:"type:varchar(20);not null"`
	Title       string     `json:"title" gorm:"not null"`
	Message     string     `json:"message"`
	RelatedID   *uuid.UUID `json:"related_id,omitempty" gorm:"type:uuid"`
	RelatedType string     `json:"related_type,omitempty"`
	Read        bool       `json:"read" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
