package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReturnStatusPending   = "pending"
	ReturnStatusApproved  = "approved"
	ReturnStatusRejected  = "rejected"
	ReturnStatusShipped   = "return-shipped"
	ReturnStatusCompleted = "completed"
)

// ReturnRequest tracks a customer's request to send a line item back.
type ReturnRequest struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID    uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	VendorID   uuid.UUID `json:"vendor_id" gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`

	Reason       string  `json:"reason" gorm:"type:varchar(30);not null"`
	Description  string  `json:"description,omitempty"`
	Status       string  `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	VendorNote   string  `json:"vendor_note,omitempty"`
	RefundAmount float64 `json:"refund_amount" gorm:"not null"`

	TrackingNumber   string     `json:"tracking_number,omitempty"`
	ActualReturnDate *time.Time `json:"actual_return_date,omitempty"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

const (
	DisputeStatusOpen      = "open"
	DisputeStatusInReview  = "in-review"
	DisputeStatusResolved  = "resolved"
	DisputeStatusEscalated = "escalated"
)

// Dispute is a customer/vendor disagreement over an order.
type Dispute struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID    uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	VendorID   uuid.UUID `json:"vendor_id" gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index"`

	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	Category    string `json:"category" gorm:"type:varchar(30);not null"`
	Status      string `json:"status" gorm:"type:varchar(20);not null;default:'open'"`
	Priority    string `json:"priority" gorm:"type:varchar(10);default:'medium'"`

	VendorResponse string     `json:"vendor_response,omitempty"`
	Resolution     string     `json:"resolution,omitempty"`
	ResolvedDate   *time.Time `json:"resolved_date,omitempty"`
	ResolvedBy     *uuid.UUID `json:"resolved_by,omitempty" gorm:"type:uuid"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// VendorMessageReply is one reply in a message thread.
type VendorMessageReply struct {
	SenderID  uuid.UUID `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// VendorMessage is a customer-to-vendor (or vendor-to-customer) message
// thread, loosely tied to an order or product.
type VendorMessage struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SenderID    uuid.UUID  `json:"sender_id" gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID  `json:"recipient_id" gorm:"type:uuid;not null;index"`
	OrderID     *uuid.UUID `json:"order_id,omitempty" gorm:"type:uuid"`
	ProductID   *uuid.UUID `json:"product_id,omitempty" gorm:"type:uuid"`

	Subject     string `json:"subject,omitempty"`
	Message     string `json:"message" gorm:"not null"`
	MessageType string `json:"message_type" gorm:"type:varchar(20);default:'other'"`
	IsRead      bool   `json:"is_read" gorm:"default:false"`

	Replies []VendorMessageReply `json:"replies" gorm:"serializer:json"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// LeaveRequest is a vendor staff absence request reviewed by an admin.
type LeaveRequest struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	StartDate time.Time `json:"start_date" gorm:"not null"`
	EndDate   time.Time `json:"end_date" gorm:"not null"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty" gorm:"type:uuid"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
