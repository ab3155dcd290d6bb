package service

import (
	"context"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/apperr"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/model"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/repository"
	"go.uber.org/zap"
)

// DefaultRecentOrders is the dashboard's recent-orders window.
const DefaultRecentOrders = 5

// DefaultBestSellers is the dashboard's best-sellers window.
const DefaultBestSellers = 5

// Summary are the ledger-wide counters. An empty ledger yields zeros,
// never nulls.
type Summary struct {
	TotalOrders     int64   `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalProducts   int64   `json:"total_products"`
	TotalCategories int64   `json:"total_categories"`
}

// DailyRevenuePoint is one day of the earnings series. Days with no
// sales are absent rather than zero-filled.
type DailyRevenuePoint struct {
	Date    string  `json:"date"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Dashboard bundles everything the dashboard view renders.
type Dashboard struct {
	Summary        Summary                    `json:"summary"`
	RecentOrders   []model.Transaction        `json:"recent_orders"`
	BestSellers    []repository.BestSellerRow `json:"best_selling_products"`
	EarningsByDate []DailyRevenuePoint        `json:"earnings_by_date"`
}

// IReportService defines the read-only reporting operations. Every call
// re-reads current ledger state; there is no caching layer.
type IReportService interface {
	GetSummary(ctx context.Context, principal *Principal) (*Summary, error)
	RecentOrders(ctx context.Context, principal *Principal, limit int) ([]model.Transaction, error)
	BestSellers(ctx context.Context, principal *Principal, limit int) ([]repository.BestSellerRow, error)
	DailyRevenueSeries(ctx context.Context, principal *Principal) ([]DailyRevenuePoint, error)
	GetDashboard(ctx context.Context, principal *Principal) (*Dashboard, error)
}

// ReportService implements IReportService.
type ReportService struct {
	reportRepo repository.IReportRepository
	logger     *zap.Logger
}

// NewReportService creates a new ReportService instance.
func NewReportService(reportRepo repository.IReportRepository, logger *zap.Logger) IReportService {
	return &ReportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// GetSummary returns the ledger-wide counters.
func (s *ReportService) GetSummary(ctx context.Context, principal *Principal) (*Summary, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}

	orders, err := s.reportRepo.CountTransactions(ctx)
	if err != nil {
		return nil, apperr.Persistence("failed to count transactions", err)
	}
	revenue, err := s.reportRepo.SumTransactionTotals(ctx)
	if err != nil {
		return nil, apperr.Persistence("failed to sum revenue", err)
	}
	products, err := s.reportRepo.CountProducts(ctx)
	if err != nil {
		return nil, apperr.Persistence("failed to count products", err)
	}
	categories, err := s.reportRepo.CountCategories(ctx)
	if err != nil {
		return nil, apperr.Persistence("failed to count categories", err)
	}

	return &Summary{
		TotalOrders:     orders,
		TotalRevenue:    revenue,
		TotalProducts:   products,
		TotalCategories: categories,
	}, nil
}

// RecentOrders returns the most recent transactions, newest first.
func (s *ReportService) RecentOrders(ctx context.Context, principal *Principal, limit int) ([]model.Transaction, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}
	if limit <= 0 {
		limit = DefaultRecentOrders
	}

	transactions, err := s.reportRepo.RecentTransactions(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to load recent orders", zap.Error(err))
		return nil, apperr.Persistence("failed to load recent orders", err)
	}
	return transactions, nil
}

// BestSellers returns products ranked by revenue, ties broken by
// product id ascending.
func (s *ReportService) BestSellers(ctx context.Context, principal *Principal, limit int) ([]repository.BestSellerRow, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}
	if limit <= 0 {
		limit = DefaultBestSellers
	}

	rows, err := s.reportRepo.BestSellers(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to load best sellers", zap.Error(err))
		return nil, apperr.Persistence("failed to load best sellers", err)
	}
	return rows, nil
}

// DailyRevenueSeries returns per-day sales sums in chronological order.
func (s *ReportService) DailyRevenueSeries(ctx context.Context, principal *Principal) ([]DailyRevenuePoint, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}

	rows, err := s.reportRepo.DailyRevenue(ctx)
	if err != nil {
		s.logger.Error("Failed to load daily revenue", zap.Error(err))
		return nil, apperr.Persistence("failed to load daily revenue", err)
	}

	series := make([]DailyRevenuePoint, 0, len(rows))
	for _, row := range rows {
		series = append(series, DailyRevenuePoint{
			Date:    row.Day.Format("2006-01-02"),
			Orders:  row.Orders,
			Revenue: row.Revenue,
		})
	}
	return series, nil
}

// GetDashboard assembles the full dashboard payload.
func (s *ReportService) GetDashboard(ctx context.Context, principal *Principal) (*Dashboard, error) {
	if principal == nil {
		return nil, apperr.Auth("authentication required")
	}

	summary, err := s.GetSummary(ctx, principal)
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentOrders(ctx, principal, DefaultRecentOrders)
	if err != nil {
		return nil, err
	}
	bestSellers, err := s.BestSellers(ctx, principal, DefaultBestSellers)
	if err != nil {
		return nil, err
	}
	earnings, err := s.DailyRevenueSeries(ctx, principal)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Summary:        *summary,
		RecentOrders:   recent,
		BestSellers:    bestSellers,
		EarningsByDate: earnings,
	}, nil
}
