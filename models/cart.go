package models

import "time"

// CartItem snapshots the product's price and vendor at add-to-cart time.
type CartItem struct {
	ProductID string  `json:"product_id"`
	VendorID  string  `json:"vendor_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Cart is stored as a JSON blob in Redis, one per user.
type Cart struct {
	UserID     string     `json:"user_id"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// RecalculateTotal recomputes the derived total from the items. Must be
// called after every mutation so the total never drifts.
func (c *Cart) RecalculateTotal() {
	total := 0.0
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	c.TotalPrice = total
}
