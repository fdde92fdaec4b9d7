package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskjar/interfaces/api/handlers"
	"taskjar/interfaces/api/middleware"
)

func SetupAnalyticsRoutes(api fiber.Router, h *handlers.Handlers) {
	analytics := api.Group("/analytics")
	analytics.Use(middleware.Protected(h.JWTSecret))

	analytics.Get("/daily", h.Analytics.GetDailySeries)
	analytics.Get("/daily/history", h.Analytics.GetDailyHistory)
	analytics.Get("/overview", h.Analytics.GetOverview)
	analytics.Get("/heatmap", h.Analytics.GetHeatmap)
	analytics.Get("/breakdown", h.Analytics.GetBreakdown)
	analytics.Get("/insights", h.Analytics.GetInsights)
}
