package events

import (
	"time"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/model"
)

// OrderCreatedEvent is published after a checkout commits.
type OrderCreatedEvent struct {
	EventID       string            `json:"event_id"`
	TransactionID uint              `json:"transaction_id"`
	CustomerName  string            `json:"customer_name"`
	Total         float64           `json:"total"`
	PaymentMethod string            `json:"payment_method"`
	Items         []model.OrderItem `json:"items"`
	OrderDate     time.Time         `json:"order_date"`
	Timestamp     time.Time         `json:"timestamp"`
}
