package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskjar/interfaces/api/handlers"
	"taskjar/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Protected(h.JWTSecret))

	tasks.Post("/", h.Task.CreateTask)
	tasks.Post("/bulk", h.Task.BulkCreateTasks)
	tasks.Get("/", h.Task.GetUserTasks)
	tasks.Get("/:id", h.Task.GetTask)
	tasks.Put("/:id", h.Task.UpdateTask)
	tasks.Delete("/:id", h.Task.DeleteTask)
	tasks.Post("/:id/complete", h.Task.CompleteTask)
}
