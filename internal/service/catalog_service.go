package service

import (
	"context"
	"errors"
	"strings"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/apperr"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/model"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name     string
	Price    float64
	Category string
}

// ProductView selects the listing order.
type ProductView string

const (
	// ProductViewManagement lists newest products first.
	ProductViewManagement ProductView = "management"
	// ProductViewOrderEntry lists products by name for cart building.
	ProductViewOrderEntry ProductView = "order-entry"
)

// ICatalogService defines the business logic over the product catalog.
type ICatalogService interface {
	AddProduct(ctx context.Context, principal *Principal, input ProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, principal *Principal, id uint) (*model.Product, error)
	ListProducts(ctx context.Context, principal *Principal, view ProductView) ([]model.Product, error)
	EditProduct(ctx context.Context, principal *Principal, id uint, input ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, principal *Principal, id uint) error
}

// CatalogService implements ICatalogService.
type CatalogService struct {
	catalogRepo repository.ICatalogRepository
	logger      *zap.Logger
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(catalogRepo repository.ICatalogRepository, logger *zap.Logger) ICatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func validateProductInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperr.Validation("name", "product name is required")
	}
	if input.Price < 0 {
		return apperr.Validation("price", "price cannot be negative")
	}
	return nil
}

// AddProduct validates and creates a new product.
func (s *CatalogService) AddProduct(ctx context.Context, principal *Principal, input ProductInput) (*model.Product, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:     strings.TrimSpace(input.Name),
		Price:    input.Price,
		Category: strings.TrimSpace(input.Category),
	}
	if err := s.catalogRepo.CreateProduct(ctx, product); err != nil {
		s.logger.Error("Failed to create product",
			zap.String("name", input.Name),
			zap.Error(err))
		return nil, apperr.Persistence("failed to create product", err)
	}

	s.logger.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("price", product.Price))
	return product, nil
}

// GetProduct retrieves a single product.
func (s *CatalogService) GetProduct(ctx context.Context, principal *Principal, id uint) (*model.Product, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}

	product, err := s.catalogRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.Persistence("failed to load product", err)
	}
	return product, nil
}

// ListProducts returns the catalog in the order the view expects:
// newest first for management, by name for order entry.
func (s *CatalogService) ListProducts(ctx context.Context, principal *Principal, view ProductView) ([]model.Product, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}

	order := repository.ProductOrderIDDesc
	if view == ProductViewOrderEntry {
		order = repository.ProductOrderNameAsc
	}

	products, err := s.catalogRepo.ListProducts(ctx, order)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, apperr.Persistence("failed to list products", err)
	}
	return products, nil
}

// EditProduct validates and updates an existing product. Historical
// order items keep their captured price-at-sale.
func (s *CatalogService) EditProduct(ctx context.Context, principal *Principal, id uint, input ProductInput) (*model.Product, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := s.catalogRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.Persistence("failed to load product", err)
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Price = input.Price
	product.Category = strings.TrimSpace(input.Category)

	if err := s.catalogRepo.UpdateProduct(ctx, product); err != nil {
		s.logger.Error("Failed to update product",
			zap.Uint("product_id", id),
			zap.Error(err))
		return nil, apperr.Persistence("failed to update product", err)
	}

	s.logger.Info("Product updated",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("price", product.Price))
	return product, nil
}

// DeleteProduct removes a product unconditionally. Order items that
// reference it are left untouched; reports show "Unknown" for the name.
func (s *CatalogService) DeleteProduct(ctx context.Context, principal *Principal, id uint) error {
	if principal == nil {
		return apperr.Auth("authentication required")
	}

	affected, err := s.catalogRepo.DeleteProduct(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete product",
			zap.Uint("product_id", id),
			zap.Error(err))
		return apperr.Persistence("failed to delete product", err)
	}
	if affected == 0 {
		return apperr.NotFound("product not found")
	}

	s.logger.Info("Product deleted", zap.Uint("product_id", id))
	return nil
}
