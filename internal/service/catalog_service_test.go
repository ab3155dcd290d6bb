package service

import (
	"context"
	"testing"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/apperr"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/model"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MockCatalogRepository is a mock implementation of repository.ICatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) CreateProduct(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	if args.Error(0) == nil {
		product.ID = 1
	}
	return args.Error(0)
}

func (m *MockCatalogRepository) FindProductByID(ctx context.Context, id uint) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, order repository.ProductOrder) ([]model.Product, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogRepository) UpdateProduct(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestCatalogService_AddProduct_Success(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	svc := NewCatalogService(mockRepo, zap.NewNop())

	product, err := svc.AddProduct(context.Background(), testPrincipal(), ProductInput{
		Name:     "Widget",
		Price:    10.00,
		Category: "Tools",
	})

	assert.NoError(t, err)
	assert.NotNil(t, product)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, 10.00, product.Price)
	assert.Equal(t, "Tools", product.Category)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_AddProduct_EmptyName(t *testing.T) {
	mockRepo := new(MockCatalogRepository)

	svc := NewCatalogService(mockRepo, zap.NewNop())

	product, err := svc.AddProduct(context.Background(), testPrincipal(), ProductInput{
		Name:  "   ",
		Price: 5.00,
	})

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "name", apperr.FieldOf(err))
	mockRepo.AssertNotCalled(t, "CreateProduct")
}

func TestCatalogService_AddProduct_NegativePrice(t *testing.T) {
	mockRepo := new(MockCatalogRepository)

	svc := NewCatalogService(mockRepo, zap.NewNop())

	_, err := svc.AddProduct(context.Background(), testPrincipal(), ProductInput{
		Name:  "Widget",
		Price: -1.00,
	})

	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "price", apperr.FieldOf(err))
}

func TestCatalogService_AddProduct_NoPrincipal(t *testing.T) {
	mockRepo := new(MockCatalogRepository)

	svc := NewCatalogService(mockRepo, zap.NewNop())

	_, err := svc.AddProduct(context.Background(), nil, ProductInput{Name: "Widget", Price: 1})

	assert.Error(t, err)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	mockRepo.AssertNotCalled(t, "CreateProduct")
}

func TestCatalogService_ListProducts_ManagementViewOrder(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("ListProducts", mock.Anything, repository.ProductOrderIDDesc).
		Return([]model.Product{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}}, nil)

	svc := NewCatalogService(mockRepo, zap.NewNop())

	products, err := svc.ListProducts(context.Background(), testPrincipal(), ProductViewManagement)

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListProducts_OrderEntryViewOrder(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("ListProducts", mock.Anything, repository.ProductOrderNameAsc).
		Return([]model.Product{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil)

	svc := NewCatalogService(mockRepo, zap.NewNop())

	products, err := svc.ListProducts(context.Background(), testPrincipal(), ProductViewOrderEntry)

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_EditProduct_NotFound(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("FindProductByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCatalogService(mockRepo, zap.NewNop())

	product, err := svc.EditProduct(context.Background(), testPrincipal(), 99, ProductInput{
		Name:  "Widget",
		Price: 2.00,
	})

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCatalogService_EditProduct_Success(t *testing.T) {
	existing := &model.Product{ID: 5, Name: "Old", Price: 1.00, Category: "Misc"}
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("FindProductByID", mock.Anything, uint(5)).Return(existing, nil)
	mockRepo.On("UpdateProduct", mock.Anything, existing).Return(nil)

	svc := NewCatalogService(mockRepo, zap.NewNop())

	product, err := svc.EditProduct(context.Background(), testPrincipal(), 5, ProductInput{
		Name:     "New",
		Price:    2.50,
		Category: "Tools",
	})

	assert.NoError(t, err)
	assert.Equal(t, "New", product.Name)
	assert.Equal(t, 2.50, product.Price)
	assert.Equal(t, "Tools", product.Category)
	mockRepo.AssertExpectations(t)
}

// Product deletion is unconditional: no check is made for order items
// referencing the product. Reports resolve missing names as "Unknown".
func TestCatalogService_DeleteProduct_Unconditional(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("DeleteProduct", mock.Anything, uint(3)).Return(int64(1), nil)

	svc := NewCatalogService(mockRepo, zap.NewNop())

	err := svc.DeleteProduct(context.Background(), testPrincipal(), 3)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("DeleteProduct", mock.Anything, uint(404)).Return(int64(0), nil)

	svc := NewCatalogService(mockRepo, zap.NewNop())

	err := svc.DeleteProduct(context.Background(), testPrincipal(), 404)

	assert.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
