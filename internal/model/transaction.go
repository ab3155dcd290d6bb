package model

import (
	"time"
)

// WalkInCustomer is the sentinel recorded when a sale has no customer name.
const WalkInCustomer = "Walk-in Customer"

// Transaction is a sale header. Financial fields are write-once: a
// transaction is never updated after creation, only deleted together
// with its order items.
type Transaction struct {
	ID            uint        `json:"id" gorm:"primarykey"`
	CustomerName  string      `json:"customer_name" gorm:"type:varchar(255)"`
	OrderDate     time.Time   `json:"order_date" gorm:"not null;index"`
	Total         float64     `json:"total" gorm:"not null"`
	PaymentMethod string      `json:"payment_method" gorm:"type:varchar(50);not null"`
	CardLast4     string      `json:"card_last4,omitempty" gorm:"type:varchar(4)"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:TransactionID"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem is a single line of a sale. PriceAtSale captures the unit
// price at transaction time so later catalog edits do not change
// historical totals.
type OrderItem struct {
	ID            uint    `json:"id" gorm:"primarykey"`
	TransactionID uint    `json:"transaction_id" gorm:"not null;index"`
	ProductID     uint    `json:"product_id" gorm:"not null;index"`
	Quantity      int     `json:"quantity" gorm:"not null"`
	PriceAtSale   float64 `json:"price_at_sale" gorm:"not null"`
}

// Subtotal returns the line total for the item.
func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.PriceAtSale
}
