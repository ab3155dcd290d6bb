package service

import (
	"context"
	"testing"
	"time"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/apperr"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/model"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockReportRepository is a mock implementation of repository.IReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) CountTransactions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) SumTransactionTotals(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReportRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) CountCategories(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) RecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockReportRepository) BestSellers(ctx context.Context, limit int) ([]repository.BestSellerRow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BestSellerRow), args.Error(1)
}

func (m *MockReportRepository) DailyRevenue(ctx context.Context) ([]repository.DailyRevenueRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DailyRevenueRow), args.Error(1)
}

func TestReportService_GetSummary_EmptyLedgerIsZeros(t *testing.T) {
	mockRepo := new(MockReportRepository)
	mockRepo.On("CountTransactions", mock.Anything).Return(int64(0), nil)
	mockRepo.On("SumTransactionTotals", mock.Anything).Return(0.0, nil)
	mockRepo.On("CountProducts", mock.Anything).Return(int64(0), nil)
	mockRepo.On("CountCategories", mock.Anything).Return(int64(0), nil)

	svc := NewReportService(mockRepo, zap.NewNop())

	summary, err := svc.GetSummary(context.Background(), testPrincipal())

	assert.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Equal(t, int64(0), summary.TotalOrders)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, int64(0), summary.TotalProducts)
	assert.Equal(t, int64(0), summary.TotalCategories)
	mockRepo.AssertExpectations(t)
}

func TestReportService_GetSummary_NoPrincipal(t *testing.T) {
	mockRepo := new(MockReportRepository)

	svc := NewReportService(mockRepo, zap.NewNop())

	summary, err := svc.GetSummary(context.Background(), nil)

	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	mockRepo.AssertNotCalled(t, "CountTransactions")
}

func TestReportService_RecentOrders_DefaultLimit(t *testing.T) {
	mockRepo := new(MockReportRepository)
	mockRepo.On("RecentTransactions", mock.Anything, DefaultRecentOrders).
		Return([]model.Transaction{}, nil)

	svc := NewReportService(mockRepo, zap.NewNop())

	_, err := svc.RecentOrders(context.Background(), testPrincipal(), 0)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestReportService_BestSellers_PassesRankingThrough(t *testing.T) {
	// Equal revenue ranks by product id ascending; the ordering comes
	// from the query and must be preserved as returned.
	rows := []repository.BestSellerRow{
		{ProductID: 1, Name: "Widget", UnitsSold: 3, Revenue: 30.0},
		{ProductID: 2, Name: "Gadget", UnitsSold: 2, Revenue: 30.0},
	}
	mockRepo := new(MockReportRepository)
	mockRepo.On("BestSellers", mock.Anything, 2).Return(rows, nil)

	svc := NewReportService(mockRepo, zap.NewNop())

	got, err := svc.BestSellers(context.Background(), testPrincipal(), 2)

	assert.NoError(t, err)
	assert.Equal(t, rows, got)
	assert.Equal(t, uint(1), got[0].ProductID)
	mockRepo.AssertExpectations(t)
}

func TestReportService_DailyRevenueSeries_FormatsDays(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	mockRepo := new(MockReportRepository)
	mockRepo.On("DailyRevenue", mock.Anything).Return([]repository.DailyRevenueRow{
		{Day: day1, Orders: 2, Revenue: 45.0},
		{Day: day3, Orders: 1, Revenue: 10.0},
	}, nil)

	svc := NewReportService(mockRepo, zap.NewNop())

	series, err := svc.DailyRevenueSeries(context.Background(), testPrincipal())

	assert.NoError(t, err)
	// Gap days are absent, not zero-filled.
	assert.Len(t, series, 2)
	assert.Equal(t, "2024-03-01", series[0].Date)
	assert.Equal(t, 45.0, series[0].Revenue)
	assert.Equal(t, "2024-03-03", series[1].Date)
}

func TestReportService_GetDashboard_AssemblesAllSections(t *testing.T) {
	mockRepo := new(MockReportRepository)
	mockRepo.On("CountTransactions", mock.Anything).Return(int64(3), nil)
	mockRepo.On("SumTransactionTotals", mock.Anything).Return(120.0, nil)
	mockRepo.On("CountProducts", mock.Anything).Return(int64(4), nil)
	mockRepo.On("CountCategories", mock.Anything).Return(int64(2), nil)
	mockRepo.On("RecentTransactions", mock.Anything, DefaultRecentOrders).
		Return([]model.Transaction{{ID: 3}, {ID: 2}, {ID: 1}}, nil)
	mockRepo.On("BestSellers", mock.Anything, DefaultBestSellers).
		Return([]repository.BestSellerRow{{ProductID: 1, Name: "Widget", Revenue: 90.0}}, nil)
	mockRepo.On("DailyRevenue", mock.Anything).Return([]repository.DailyRevenueRow{}, nil)

	svc := NewReportService(mockRepo, zap.NewNop())

	dashboard, err := svc.GetDashboard(context.Background(), testPrincipal())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), dashboard.Summary.TotalOrders)
	assert.Equal(t, 120.0, dashboard.Summary.TotalRevenue)
	assert.Len(t, dashboard.RecentOrders, 3)
	assert.Len(t, dashboard.BestSellers, 1)
	assert.Empty(t, dashboard.EarningsByDate)
	mockRepo.AssertExpectations(t)
}
