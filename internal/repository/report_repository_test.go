package repository

import (
	"context"
	"testing"
	"time"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSale(t *testing.T, db *gorm.DB, paymentMethod string, items []model.OrderItem) {
	t.Helper()

	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	require.NoError(t, NewOrderRepository(db).CreateTransaction(context.Background(), &model.Transaction{
		CustomerName:  model.WalkInCustomer,
		OrderDate:     time.Now(),
		Total:         total,
		PaymentMethod: paymentMethod,
		Items:         items,
	}))
}

func TestReportRepository_EmptyLedger(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	orders, err := repo.CountTransactions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), orders)

	revenue, err := repo.SumTransactionTotals(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0.0, revenue)

	rows, err := repo.BestSellers(context.Background(), 5)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReportRepository_CountCategories_Distinct(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	require.NoError(t, db.Create(&model.Product{Name: "Americano", Price: 3.00, Category: "Coffee"}).Error)
	require.NoError(t, db.Create(&model.Product{Name: "Latte", Price: 4.50, Category: "Coffee"}).Error)
	require.NoError(t, db.Create(&model.Product{Name: "Croissant", Price: 2.50, Category: "Bakery"}).Error)

	products, err := repo.CountProducts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), products)

	categories, err := repo.CountCategories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), categories)
}

func TestReportRepository_BestSellers_RanksByRevenue(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	require.NoError(t, db.Create(&model.Product{ID: 1, Name: "Americano", Price: 5.00, Category: "Coffee"}).Error)
	require.NoError(t, db.Create(&model.Product{ID: 2, Name: "Latte", Price: 10.00, Category: "Coffee"}).Error)
	require.NoError(t, db.Create(&model.Product{ID: 3, Name: "Mocha", Price: 3.00, Category: "Coffee"}).Error)

	seedSale(t, db, "cash", []model.OrderItem{
		{ProductID: 3, Quantity: 4, PriceAtSale: 3.00}, // revenue 12.00
		{ProductID: 1, Quantity: 2, PriceAtSale: 5.00}, // revenue 10.00
	})
	seedSale(t, db, "card", []model.OrderItem{
		{ProductID: 2, Quantity: 1, PriceAtSale: 10.00}, // revenue 10.00
	})

	rows, err := repo.BestSellers(context.Background(), 5)

	assert.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, uint(3), rows[0].ProductID)
	assert.Equal(t, 12.00, rows[0].Revenue)
	// Products 1 and 2 tie at 10.00; the lower product id ranks first.
	assert.Equal(t, uint(1), rows[1].ProductID)
	assert.Equal(t, uint(2), rows[2].ProductID)
	assert.Equal(t, "Americano", rows[1].Name)
	assert.Equal(t, int64(2), rows[1].UnitsSold)
}

func TestReportRepository_BestSellers_DeletedProductNamedUnknown(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	seedSale(t, db, "cash", []model.OrderItem{
		{ProductID: 42, Quantity: 1, PriceAtSale: 7.50},
	})

	rows, err := repo.BestSellers(context.Background(), 5)

	assert.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(42), rows[0].ProductID)
	assert.Equal(t, "Unknown", rows[0].Name)
	assert.Equal(t, 7.50, rows[0].Revenue)
}

func TestReportRepository_BestSellers_LimitApplied(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	seedSale(t, db, "cash", []model.OrderItem{
		{ProductID: 1, Quantity: 3, PriceAtSale: 1.00},
		{ProductID: 2, Quantity: 2, PriceAtSale: 1.00},
		{ProductID: 3, Quantity: 1, PriceAtSale: 1.00},
	})

	rows, err := repo.BestSellers(context.Background(), 2)

	assert.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(1), rows[0].ProductID)
	assert.Equal(t, uint(2), rows[1].ProductID)
}

func TestReportRepository_RecentTransactions_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	orders := NewOrderRepository(db)

	base := time.Now().Add(-3 * time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, orders.CreateTransaction(context.Background(), &model.Transaction{
			CustomerName:  model.WalkInCustomer,
			OrderDate:     base.Add(time.Duration(i) * time.Hour),
			Total:         float64(i + 1),
			PaymentMethod: "cash",
			Items:         []model.OrderItem{{ProductID: 1, Quantity: 1, PriceAtSale: float64(i + 1)}},
		}))
	}

	recent, err := repo.RecentTransactions(context.Background(), 2)

	assert.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 3.0, recent[0].Total)
	assert.Equal(t, 2.0, recent[1].Total)
	assert.Len(t, recent[0].Items, 1)
}
