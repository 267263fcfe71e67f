package model

import "time"

// Order rows are written by the storefront; this service only counts them
// for the admin summary.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"order_id"`
	ClientID  uint      `gorm:"not null;index" json:"client_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
