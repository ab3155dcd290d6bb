package handler

import (
	"net/http"
	"strconv"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/middleware"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/service"
	"github.com/OmandamRheajen/Point-Of-Sale/pkg/logger"
	"github.com/OmandamRheajen/Point-Of-Sale/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	catalog service.ICatalogService
}

// NewProductHandler creates a new ProductHandler instance.
func NewProductHandler(catalog service.ICatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// ListProducts handles retrieving all products. The management view
// (default) lists newest first; ?view=order-entry lists by name.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	view := service.ProductViewManagement
	if c.QueryParam("view") == string(service.ProductViewOrderEntry) {
		view = service.ProductViewOrderEntry
	}

	products, err := h.catalog.ListProducts(c.Request().Context(), principal, view)
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return errorResponse(c, err)
	}

	log.Info("Products retrieved", zap.Int("count", len(products)), zap.String("view", string(view)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), principal, uint(id))
	if err != nil {
		log.Warn("Product lookup failed", zap.Uint64("product_id", id), zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles creating a new product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	product, err := h.catalog.AddProduct(c.Request().Context(), principal, service.ProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Error(err))
		return errorResponse(c, err)
	}

	prometheus.RecordProductOperation("create")
	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles updating an existing product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	product, err := h.catalog.EditProduct(c.Request().Context(), principal, uint(id), service.ProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		log.Error("Failed to update product",
			zap.Uint64("product_id", id),
			zap.Error(err))
		return errorResponse(c, err)
	}

	prometheus.RecordProductOperation("update")
	log.Info("Product updated",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("price", product.Price))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles deleting a product. The delete is unconditional:
// order items referencing the product are kept as recorded.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	if err := h.catalog.DeleteProduct(c.Request().Context(), principal, uint(id)); err != nil {
		log.Error("Failed to delete product",
			zap.Uint64("product_id", id),
			zap.Error(err))
		return errorResponse(c, err)
	}

	prometheus.RecordProductOperation("delete")
	log.Info("Product deleted", zap.Uint64("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}
