package repository

import (
	"context"
	"time"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/model"
	"gorm.io/gorm"
)

// BestSellerRow is one product ranked by revenue across all order items.
type BestSellerRow struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	UnitsSold int64   `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}

// DailyRevenueRow is one calendar day's aggregated sales, keyed by the
// transactions' own order dates.
type DailyRevenueRow struct {
	Day     time.Time `json:"day"`
	Orders  int64     `json:"orders"`
	Revenue float64   `json:"revenue"`
}

// IReportRepository defines the read-only aggregation queries over the
// sales ledger and catalog. Every call re-reads current state.
type IReportRepository interface {
	CountTransactions(ctx context.Context) (int64, error)
	SumTransactionTotals(ctx context.Context) (float64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	RecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error)
	BestSellers(ctx context.Context, limit int) ([]BestSellerRow, error)
	DailyRevenue(ctx context.Context) ([]DailyRevenueRow, error)
}

// ReportRepository implements IReportRepository for GORM.
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository instance.
func NewReportRepository(db *gorm.DB) IReportRepository {
	return &ReportRepository{db: db}
}

// CountTransactions returns the number of recorded sales.
func (r *ReportRepository) CountTransactions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).Count(&count).Error
	return count, err
}

// SumTransactionTotals returns the revenue sum, zero for an empty ledger.
func (r *ReportRepository) SumTransactionTotals(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

// CountProducts returns the number of products in the catalog.
func (r *ReportRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}

// CountCategories returns the number of distinct product categories.
func (r *ReportRepository) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Distinct("category").
		Count(&count).Error
	return count, err
}

// RecentTransactions returns the most recent sales, newest first.
func (r *ReportRepository) RecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("order_date DESC, id DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

// BestSellers ranks products by revenue = sum(quantity * price_at_sale)
// across all order items. Ties break on product id ascending so the
// ranking is deterministic. Deleted products resolve to "Unknown".
func (r *ReportRepository) BestSellers(ctx context.Context, limit int) ([]BestSellerRow, error) {
	var rows []BestSellerRow
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.product_id AS product_id, " +
			"COALESCE(products.name, 'Unknown') AS name, " +
			"SUM(order_items.quantity) AS units_sold, " +
			"SUM(order_items.quantity * order_items.price_at_sale) AS revenue").
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Group("order_items.product_id, products.name").
		Order("revenue DESC, product_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// DailyRevenue groups transactions by calendar day of their own order
// date, ascending. Days with no sales are absent from the series.
func (r *ReportRepository) DailyRevenue(ctx context.Context) ([]DailyRevenueRow, error) {
	var rows []DailyRevenueRow
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("DATE(order_date) AS day, COUNT(*) AS orders, SUM(total) AS revenue").
		Group("DATE(order_date)").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}
