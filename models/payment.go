package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
	PaymentStatusRefunded  = "Refunded"
)

// Payment tracks money movement per order. Methods are placeholder labels,
// there is no gateway behind them.
type Payment struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID    uuid.UUID `json:"order_id" gorm:"type:uuid;uniqueIndex;not null"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index"`
	Amount     float64   `json:"amount" gorm:"not null"`
	Method     string    `json:"method" gorm:"type:varchar(30);not null"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"`

	RefundAmount float64 `json:"refund_amount" gorm:"default:0"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
