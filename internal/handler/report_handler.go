package handler

import (
	"net/http"
	"strconv"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/middleware"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/service"
	"github.com/OmandamRheajen/Point-Of-Sale/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ReportHandler handles HTTP requests for reporting views.
type ReportHandler struct {
	reports service.IReportService
}

// NewReportHandler creates a new ReportHandler instance.
func NewReportHandler(reports service.IReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Dashboard returns the full dashboard payload: summary counters,
// recent orders, best sellers, and the earnings-by-date series.
func (h *ReportHandler) Dashboard(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	dashboard, err := h.reports.GetDashboard(c.Request().Context(), principal)
	if err != nil {
		log.Error("Failed to build dashboard", zap.Error(err))
		return errorResponse(c, err)
	}

	log.Info("Dashboard served",
		zap.Int64("total_orders", dashboard.Summary.TotalOrders),
		zap.Float64("total_revenue", dashboard.Summary.TotalRevenue))
	return c.JSON(http.StatusOK, dashboard)
}

// Summary returns the ledger-wide counters.
func (h *ReportHandler) Summary(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	summary, err := h.reports.GetSummary(c.Request().Context(), principal)
	if err != nil {
		log.Error("Failed to build summary", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// BestSellers returns products ranked by revenue.
func (h *ReportHandler) BestSellers(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	rows, err := h.reports.BestSellers(c.Request().Context(), principal, limit)
	if err != nil {
		log.Error("Failed to load best sellers", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// DailyRevenue returns the chronological earnings series.
func (h *ReportHandler) DailyRevenue(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	series, err := h.reports.DailyRevenueSeries(c.Request().Context(), principal)
	if err != nil {
		log.Error("Failed to load daily revenue", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, series)
}

// RecentOrders returns the most recent transactions.
func (h *ReportHandler) RecentOrders(c echo.Context) error {
	log := logger.FromEcho(c)
	principal := middleware.PrincipalFromContext(c)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	transactions, err := h.reports.RecentOrders(c.Request().Context(), principal, limit)
	if err != nil {
		log.Error("Failed to load recent orders", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, transactions)
}
