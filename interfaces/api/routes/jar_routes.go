package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskjar/interfaces/api/handlers"
	"taskjar/interfaces/api/middleware"
)

func SetupJarRoutes(api fiber.Router, h *handlers.Handlers) {
	jars := api.Group("/jars")
	jars.Use(middleware.Protected(h.JWTSecret))

	jars.Get("/active", h.Jar.GetActiveJar)
	jars.Get("/", h.Jar.ListJars)
	jars.Get("/:id", h.Jar.GetJar)
}
