package model

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"product_id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int       `gorm:"not null" json:"stock"`
	ImageURL    string    `gorm:"size:256" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}
