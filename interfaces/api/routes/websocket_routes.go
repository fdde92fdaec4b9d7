package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"taskjar/interfaces/api/handlers"
	"taskjar/interfaces/api/middleware"
	websocketHandler "taskjar/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, h *handlers.Handlers) {
	wsHandler := websocketHandler.NewWebSocketHandler()

	// WebSocket with optional authentication
	app.Use("/ws", middleware.Optional(h.JWTSecret), wsHandler.WebSocketUpgrade)
	app.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
