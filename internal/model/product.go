package model

import (
	"time"
)

// Product represents the product master data. Products are hard-deleted:
// historical order items keep their captured price and the reports fall
// back to "Unknown" for the name when the product is gone.
type Product struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Category  string    `json:"category" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
