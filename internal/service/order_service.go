package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/apperr"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/events"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/model"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// totalEpsilon is the largest accepted difference between a submitted
// total and the server-side recomputation.
const totalEpsilon = 0.01

// CartItem is one line of a submitted cart.
type CartItem struct {
	ProductID uint
	Quantity  int
	UnitPrice float64
}

// CardDetails are accepted at checkout but never stored beyond the
// last four digits of the number.
type CardDetails struct {
	Number string
	Expiry string
	CVV    string
}

// CheckoutRequest carries everything needed to record a sale.
type CheckoutRequest struct {
	CustomerName  string
	PaymentMethod string
	Total         *float64
	Card          *CardDetails
	Cart          []CartItem
}

// IOrderService defines the business logic over the sales ledger.
type IOrderService interface {
	RecordOrder(ctx context.Context, principal *Principal, req CheckoutRequest) (*model.Transaction, error)
	GetTransaction(ctx context.Context, principal *Principal, id uint) (*model.Transaction, error)
	ListTransactions(ctx context.Context, principal *Principal) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, principal *Principal, id uint) error
}

// OrderService implements IOrderService.
type OrderService struct {
	orderRepo repository.IOrderRepository
	producer  events.IProducer
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService instance. The producer may
// be nil when event publishing is disabled.
func NewOrderService(orderRepo repository.IOrderRepository, producer events.IProducer, logger *zap.Logger) IOrderService {
	return &OrderService{
		orderRepo: orderRepo,
		producer:  producer,
		logger:    logger,
	}
}

// RecordOrder validates the cart, recomputes the total server-side, and
// commits the sale header plus all line items as one atomic unit. Any
// insert failure leaves zero rows behind.
func (s *OrderService) RecordOrder(ctx context.Context, principal *Principal, req CheckoutRequest) (*model.Transaction, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}

	paymentMethod := strings.TrimSpace(req.PaymentMethod)
	if paymentMethod == "" {
		return nil, apperr.Validation("payment_method", "payment method is required")
	}
	if len(req.Cart) == 0 {
		return nil, apperr.Validation("cart", "cart must contain at least one item")
	}

	var total float64
	items := make([]model.OrderItem, 0, len(req.Cart))
	for _, line := range req.Cart {
		if line.Quantity <= 0 {
			return nil, apperr.Validation("quantity", "quantity must be positive")
		}
		if line.UnitPrice < 0 {
			return nil, apperr.Validation("unit_price", "unit price cannot be negative")
		}
		item := model.OrderItem{
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			PriceAtSale: line.UnitPrice,
		}
		total += item.Subtotal()
		items = append(items, item)
	}

	// The submitted total is advisory only. It must agree with the
	// server-side recomputation or the checkout is rejected.
	if req.Total != nil && math.Abs(*req.Total-total) > totalEpsilon {
		return nil, apperr.Validation("total", "submitted total does not match the cart")
	}

	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		customerName = model.WalkInCustomer
	}

	transaction := &model.Transaction{
		CustomerName:  customerName,
		OrderDate:     time.Now(),
		Total:         total,
		PaymentMethod: paymentMethod,
		CardLast4:     cardLast4(req.Card),
		Items:         items,
	}

	if err := s.orderRepo.CreateTransaction(ctx, transaction); err != nil {
		s.logger.Error("Failed to record order",
			zap.String("customer_name", customerName),
			zap.Float64("total", total),
			zap.Error(err))
		return nil, apperr.Persistence("failed to record order", err)
	}

	if s.producer != nil {
		event := events.OrderCreatedEvent{
			EventID:       uuid.New().String(),
			TransactionID: transaction.ID,
			CustomerName:  transaction.CustomerName,
			Total:         transaction.Total,
			PaymentMethod: transaction.PaymentMethod,
			Items:         transaction.Items,
			OrderDate:     transaction.OrderDate,
			Timestamp:     time.Now(),
		}
		if err := s.producer.PublishOrderCreated(event); err != nil {
			// The sale is already committed; publishing is best effort.
			s.logger.Error("Failed to publish order event",
				zap.Uint("transaction_id", transaction.ID),
				zap.Error(err))
		}
	}

	s.logger.Info("Order recorded",
		zap.Uint("transaction_id", transaction.ID),
		zap.String("customer_name", transaction.CustomerName),
		zap.Float64("total", transaction.Total),
		zap.Int("item_count", len(transaction.Items)))

	return transaction, nil
}

// GetTransaction returns a single sale with its order items.
func (s *OrderService) GetTransaction(ctx context.Context, principal *Principal, id uint) (*model.Transaction, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}

	transaction, err := s.orderRepo.FindTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("transaction not found")
		}
		s.logger.Error("Failed to load transaction",
			zap.Uint("transaction_id", id),
			zap.Error(err))
		return nil, apperr.Persistence("failed to load transaction", err)
	}
	return transaction, nil
}

// ListTransactions returns all recorded sales, newest first.
func (s *OrderService) ListTransactions(ctx context.Context, principal *Principal) ([]model.Transaction, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}

	transactions, err := s.orderRepo.ListTransactions(ctx)
	if err != nil {
		s.logger.Error("Failed to list transactions", zap.Error(err))
		return nil, apperr.Persistence("failed to list transactions", err)
	}
	return transactions, nil
}

// DeleteTransaction removes a sale and its order items together.
func (s *OrderService) DeleteTransaction(ctx context.Context, principal *Principal, id uint) error {
	if principal == nil {
		return apperr.Auth("authentication required")
	}

	affected, err := s.orderRepo.DeleteTransaction(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete transaction",
			zap.Uint("transaction_id", id),
			zap.Error(err))
		return apperr.Persistence("failed to delete transaction", err)
	}
	if affected == 0 {
		return apperr.NotFound("transaction not found")
	}

	s.logger.Info("Transaction deleted", zap.Uint("transaction_id", id))
	return nil
}

// cardLast4 reduces submitted card details to the last four digits of
// the number. Raw card data is never persisted.
func cardLast4(card *CardDetails) string {
	if card == nil {
		return ""
	}
	digits := make([]rune, 0, len(card.Number))
	for _, r := range card.Number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}
