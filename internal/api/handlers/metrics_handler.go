package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

type (
	MetricsHandler interface {
		GetImpactMetrics(c *fiber.Ctx) error
	}

	metricsHandler struct {
		metricsService metrics.MetricsService
	}
)

func NewMetricsHandler(metricsService metrics.MetricsService) MetricsHandler {
	return &metricsHandler{
		metricsService: metricsService,
	}
}

func (h *metricsHandler) GetImpactMetrics(c *fiber.Ctx) error {
	period := c.Query("period", domain.PeriodToday)
	metricType := c.Query("type")

	dashboard, err := h.metricsService.GetImpactMetrics(c.Context(), period, metricType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMetrics, err)
	}

	// Aggregated periods return a plain metric array; the activity feed only
	// accompanies today's raw rows.
	if period != domain.PeriodToday {
		return presenters.SuccessResponse(c, dashboard.Metrics, fiber.StatusOK, domain.MessageSuccessGetMetrics)
	}

	return presenters.SuccessResponse(c, dashboard, fiber.StatusOK, domain.MessageSuccessGetMetrics)
}
