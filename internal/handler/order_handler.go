package handler

import (
	"net/http"
	"strconv"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/apperr"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/middleware"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/service"
	"github.com/OmandamRheajen/Point-Of-Sale/pkg/logger"
	"github.com/OmandamRheajen/Point-Of-Sale/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CartItemRequest is one submitted cart line.
type CartItemRequest struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// CardRequest carries submitted card details. Only the last four digits
// of the number are ever stored.
type CardRequest struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// CheckoutRequest defines the structure for checkout requests.
type CheckoutRequest struct {
	CustomerName  string            `json:"customer_name"`
	PaymentMethod string            `json:"payment_method"`
	Total         *float64          `json:"total,omitempty"`
	Card          *CardRequest      `json:"card,omitempty"`
	Cart          []CartItemRequest `json:"cart"`
}

// OrderHandler handles HTTP requests for the sales ledger.
type OrderHandler struct {
	orders service.IOrderService
}

// NewOrderHandler creates a new OrderHandler instance.
func NewOrderHandler(orders service.IOrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder handles the checkout endpoint.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	cart := make([]service.CartItem, 0, len(req.Cart))
	for _, line := range req.Cart {
		cart = append(cart, service.CartItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	checkout := service.CheckoutRequest{
		CustomerName:  req.CustomerName,
		PaymentMethod: req.PaymentMethod,
		Total:         req.Total,
		Cart:          cart,
	}
	if req.Card != nil {
		checkout.Card = &service.CardDetails{
			Number: req.Card.Number,
			Expiry: req.Card.Expiry,
			CVV:    req.Card.CVV,
		}
	}

	transaction, err := h.orders.RecordOrder(c.Request().Context(), principal, checkout)
	if err != nil {
		prometheus.RecordCheckoutFailure(string(apperr.KindOf(err)))
		log.Error("Checkout failed",
			zap.String("customer_name", req.CustomerName),
			zap.Int("cart_size", len(req.Cart)),
			zap.Error(err))
		return errorResponse(c, err)
	}

	prometheus.RecordCheckout(transaction.Total)
	log.Info("Checkout completed",
		zap.Uint("transaction_id", transaction.ID),
		zap.Float64("total", transaction.Total),
		zap.Int("item_count", len(transaction.Items)))
	return c.JSON(http.StatusCreated, transaction)
}

// GetTransaction returns a single sale with its order items.
func (h *OrderHandler) GetTransaction(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid transaction id"})
	}

	transaction, err := h.orders.GetTransaction(c.Request().Context(), principal, uint(id))
	if err != nil {
		log.Error("Failed to get transaction",
			zap.Uint64("transaction_id", id),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// ListTransactions handles the sales report listing, newest first.
func (h *OrderHandler) ListTransactions(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	transactions, err := h.orders.ListTransactions(c.Request().Context(), principal)
	if err != nil {
		log.Error("Failed to list transactions", zap.Error(err))
		return errorResponse(c, err)
	}

	log.Info("Transactions retrieved", zap.Int("count", len(transactions)))
	return c.JSON(http.StatusOK, transactions)
}

// DeleteTransaction removes a sale and its order items.
func (h *OrderHandler) DeleteTransaction(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid transaction id"})
	}

	if err := h.orders.DeleteTransaction(c.Request().Context(), principal, uint(id)); err != nil {
		log.Error("Failed to delete transaction",
			zap.Uint64("transaction_id", id),
			zap.Error(err))
		return errorResponse(c, err)
	}

	log.Info("Transaction deleted", zap.Uint64("transaction_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Transaction deleted successfully"})
}
