package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
	OrderStatusRefunded   = "Refunded"
)

// allowedTransitions is the forward-only order state machine. Refunded is a
// declared terminal state with no producing transition.
var allowedTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsCancellable reports whether a customer may still cancel an order in the
// given status.
func IsCancellable(status string) bool {
	return status == OrderStatusPending || status == OrderStatusProcessing
}

// ValidOrderStatus reports whether s is one of the declared order statuses.
func ValidOrderStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// DeliveryAddress is embedded into the order at placement time.
type DeliveryAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type Order struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index"`
	TotalPrice float64   `json:"total_price" gorm:"not null"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"`

	DeliveryAddress DeliveryAddress `json:"delivery_address" gorm:"embedded;embeddedPrefix:delivery_"`

	PaymentMethod  string `json:"payment_method"`
	PaymentStatus  string `json:"payment_status" gorm:"type:varchar(20);not null;default:'Pending'"`
	TrackingNumber string `json:"tracking_number,omitempty"`

	Items    []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Messages []OrderMessage `json:"messages,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// OrderItem snapshots the product's price at purchase time; later catalog
// edits never change it.
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	VendorID  uuid.UUID `json:"vendor_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`

	// denormalized for list views
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
}

// OrderMessage is one entry in the order's append-only message log.
type OrderMessage struct {
	ID       uuid.UUID  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID  uuid.UUID  `json:"order_id" gorm:"type:uuid;not null;index"`
	ItemID   *uuid.UUID `json:"item_id,omitempty" gorm:"type:uuid"`
	SenderID uuid.UUID  `json:"sender_id" gorm:"type:uuid;not null"`
	Body     string     `json:"body" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// VendorView returns a copy of the order with items filtered to the given
// vendor. Used by vendor-facing list endpoints.
func (o Order) VendorView(vendorID uuid.UUID) Order {
	filtered := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		if it.VendorID == vendorID {
			filtered = append(filtered, it)
		}
	}
	o.Items = filtered
	return o
}

// HasVendor reports whether the vendor owns at least one line item.
func (o *Order) HasVendor(vendorID uuid.UUID) bool {
	for _, it := range o.Items {
		if it.VendorID == vendorID {
			return true
		}
	}
	return false
}
