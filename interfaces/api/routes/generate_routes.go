package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskjar/interfaces/api/handlers"
	"taskjar/interfaces/api/middleware"
)

func SetupGenerateRoutes(api fiber.Router, h *handlers.Handlers) {
	generate := api.Group("/generate")
	generate.Use(middleware.Protected(h.JWTSecret))

	generate.Post("/tasks", h.Generate.GenerateTasks)
	generate.Post("/weekly", h.Generate.GenerateWeekly)
	generate.Get("/weekly/history", h.Generate.GetWeeklyHistory)
}
