package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskjar/domain/dto"
	"taskjar/domain/services"
	"taskjar/pkg/logger"
	"taskjar/pkg/utils"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) GetDailySeries(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	days, _ := strconv.Atoi(c.Query("days", "0"))
	series, err := h.analyticsService.DailySeries(ctx, user.ID, days)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute daily series", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.DailySeriesResponse{Days: series})
}

// GetDailyHistory serves the stored daily snapshots rather than
// recomputing from tasks, so exports see exactly what the nightly job
// materialized.
func (h *AnalyticsHandler) GetDailyHistory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	days, _ := strconv.Atoi(c.Query("days", "0"))
	series, err := h.analyticsService.SnapshotSeries(ctx, user.ID, days)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load daily history", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.DailySeriesResponse{Days: series})
}

func (h *AnalyticsHandler) GetOverview(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	overview, err := h.analyticsService.Overview(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute overview", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, overview)
}

func (h *AnalyticsHandler) GetHeatmap(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	heatmap, err := h.analyticsService.Heatmap(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute heatmap", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, heatmap)
}

func (h *AnalyticsHandler) GetBreakdown(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	breakdown, err := h.analyticsService.Breakdown(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute breakdown", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, breakdown)
}

func (h *AnalyticsHandler) GetInsights(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	insights, err := h.analyticsService.Insights(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute insights", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, insights)
}
