package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLowStockThreshold matches the column default on
// Inventory.LowStockThreshold. New in-memory records must set it before the
// first Recalculate so the flag agrees with what a later read computes.
const DefaultLowStockThreshold = 5

// RestockEntry is one line of the inventory's restock history.
type RestockEntry struct {
	QuantityAdded int       `json:"quantity_added"`
	Date          time.Time `json:"date"`
	Reason        string    `json:"reason,omitempty"`
}

// Inventory is the vendor-facing stock view of a product.
type Inventory struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID         uuid.UUID `json:"vendor_id" gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID `json:"product_id" gorm:"type:uuid;uniqueIndex;not null"`
	Quantity         int       `json:"quantity" gorm:"not null;default:0"`
	ReservedQuantity int       `json:"reserved_quantity" gorm:"default:0"`
	LowStockThreshold int      `json:"low_stock_threshold" gorm:"default:5"`
	IsLowStock       bool      `json:"is_low_stock" gorm:"default:false"`

	LastRestockDate *time.Time     `json:"last_restock_date,omitempty"`
	RestockHistory  []RestockEntry `json:"restock_history" gorm:"serializer:json"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// AvailableQuantity is quantity minus reservations.
func (i *Inventory) AvailableQuantity() int {
	return i.Quantity - i.ReservedQuantity
}

// Recalculate refreshes the derived low-stock flag. Must run before every
// persisted write; the flag carries no independent state.
func (i *Inventory) Recalculate() {
	i.IsLowStock = i.AvailableQuantity() <= i.LowStockThreshold
}
