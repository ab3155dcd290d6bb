package repository

import (
	"context"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/model"
	"gorm.io/gorm"
)

// IOrderRepository defines the interface for sales ledger operations.
type IOrderRepository interface {
	CreateTransaction(ctx context.Context, transaction *model.Transaction) error
	FindTransactionByID(ctx context.Context, id uint) (*model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id uint) (int64, error)
}

// OrderRepository implements IOrderRepository for GORM.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

// CreateTransaction inserts the sale header and all of its order items
// as one atomic unit. Any insert failure rolls back the whole write so
// no header without items (or partial item set) is ever committed.
func (r *OrderRepository) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := transaction.Items
		transaction.Items = nil

		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].TransactionID = transaction.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		transaction.Items = items
		return nil
	})
}

// FindTransactionByID retrieves a transaction with its items.
func (r *OrderRepository) FindTransactionByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.db.WithContext(ctx).Preload("Items").First(&transaction, id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// ListTransactions retrieves all transactions newest first, with items.
func (r *OrderRepository) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := r.db.WithContext(ctx).Preload("Items").Order("id DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// DeleteTransaction removes a transaction and its order items in one
// atomic unit, items first so no orphaned items remain. Returns the
// number of header rows removed.
func (r *OrderRepository) DeleteTransaction(ctx context.Context, id uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Transaction{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}
