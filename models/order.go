package models

import (
	"time"
)

// DateLayout is the wire and storage format of an order date.
const DateLayout = "2006-01-02"

type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"not null;index" json:"user_id"`
	User      *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Date      string      `gorm:"size:10;not null;index" json:"date"`
	Total     float64     `gorm:"not null" json:"total"`
	Lines     []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type OrderLine struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"not null;index" json:"order_id"`
	ProductID uint     `gorm:"not null;index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Color     string   `gorm:"not null" json:"color"`
	Quantity  int      `gorm:"not null;check:quantity > 0" json:"quantity"`
	// Name is a snapshot of the product name at order time. It is never
	// updated when the product itself is renamed.
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
