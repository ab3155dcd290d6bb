package repository

import (
	"context"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/model"
	"gorm.io/gorm"
)

// ProductOrder selects the listing order for products. The management
// view lists newest first, the order-entry view lists by name.
type ProductOrder string

const (
	ProductOrderIDDesc  ProductOrder = "id DESC"
	ProductOrderNameAsc ProductOrder = "name ASC"
)

// ICatalogRepository defines the interface for product data operations.
type ICatalogRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	FindProductByID(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context, order ProductOrder) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id uint) (int64, error)
}

// CatalogRepository implements ICatalogRepository for GORM.
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new CatalogRepository instance.
func NewCatalogRepository(db *gorm.DB) ICatalogRepository {
	return &CatalogRepository{db: db}
}

// CreateProduct inserts a new product.
func (r *CatalogRepository) CreateProduct(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindProductByID retrieves a product by its ID.
func (r *CatalogRepository) FindProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts retrieves all products in the requested order.
func (r *CatalogRepository) ListProducts(ctx context.Context, order ProductOrder) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order(string(order)).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProduct saves changes to an existing product.
func (r *CatalogRepository) UpdateProduct(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// DeleteProduct removes a product unconditionally and reports the
// number of rows affected. Referencing order items are left in place;
// historical reports resolve their product names as "Unknown".
func (r *CatalogRepository) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	return result.RowsAffected, result.Error
}
