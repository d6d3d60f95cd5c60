package handler

import (
	"go-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	productChartWindowDays  = 30
	overviewChartWindowDays = 7
)

type DashboardHandler struct {
	statsService service.StatsService
}

func NewDashboardHandler(statsService service.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// GetDashboardStats returns the landing-page counters plus the five most
// recent transactions
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	summary, err := h.statsService.DashboardSummary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(summary)
}

// GetInventoryOverview returns the current-state snapshot of every active
// product
// GET /api/v1/dashboard/inventory
func (h *DashboardHandler) GetInventoryOverview(c *fiber.Ctx) error {
	overview, err := h.statsService.InventoryOverview()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inventory overview"})
	}
	return c.JSON(overview)
}

// GetProductChart returns the fixed 30-day daily series of one product
// GET /api/v1/charts/product/:id
func (h *DashboardHandler) GetProductChart(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	series, err := h.statsService.DailySeries(id, productChartWindowDays)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"product_id": id,
		"period":     productChartWindowDays,
		"chart_data": series,
	})
}

// GetInventoryChart returns the 7-day whole-inventory series
// GET /api/v1/charts/inventory-overview
func (h *DashboardHandler) GetInventoryChart(c *fiber.Ctx) error {
	series, err := h.statsService.OverviewSeries(overviewChartWindowDays)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inventory chart"})
	}

	return c.JSON(fiber.Map{
		"period":     overviewChartWindowDays,
		"chart_data": series,
	})
}

// GetCategoryDistribution returns product counts and stock totals per
// category, ordered by count descending
// GET /api/v1/charts/category-distribution
func (h *DashboardHandler) GetCategoryDistribution(c *fiber.Ctx) error {
	distribution, err := h.statsService.CategoryDistribution()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch category distribution"})
	}
	return c.JSON(distribution)
}
