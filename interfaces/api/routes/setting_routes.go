package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskjar/interfaces/api/handlers"
	"taskjar/interfaces/api/middleware"
)

func SetupSettingRoutes(api fiber.Router, h *handlers.Handlers) {
	settings := api.Group("/settings")
	settings.Use(middleware.Protected(h.JWTSecret))

	settings.Get("/", h.Setting.GetSettings)
	settings.Put("/", h.Setting.UpdateSettings)
	settings.Post("/parent-lock", h.Setting.SetParentLock)
	settings.Delete("/parent-lock", h.Setting.DisableParentLock)
	settings.Post("/clear-data", h.Setting.ClearData)
}
