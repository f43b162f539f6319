package models

import (
	"time"
)

// ProductColor is a color variant of a product, with the image shown when
// that color is selected. A product cannot list the same color twice.
type ProductColor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_product_color" json:"product_id"`
	Color     string    `gorm:"not null;uniqueIndex:idx_product_color" json:"color"`
	Image     string    `gorm:"not null" json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
