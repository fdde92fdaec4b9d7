package websocket

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	websocketManager "taskjar/infrastructure/websocket"
	"taskjar/pkg/utils"
)

type WebSocketHandler struct{}

func NewWebSocketHandler() *WebSocketHandler {
	return &WebSocketHandler{}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	var userID uuid.UUID

	// User is set by the Optional auth middleware when a token was sent.
	if userContext := c.Locals("user"); userContext != nil {
		if user, ok := userContext.(*utils.UserContext); ok {
			userID = user.ID
		}
	}

	// Anonymous connections get a throwaway ID; they receive broadcasts
	// but no per-user progress events.
	if userID == uuid.Nil {
		userID = uuid.New()
		log.Printf("WebSocket: Anonymous client connected with ID: %s", userID.String())
	} else {
		log.Printf("WebSocket: Authenticated user connected: %s", userID.String())
	}

	websocketManager.Manager.RegisterClient(c, userID)

	defer func() {
		websocketManager.Manager.UnregisterClient(c)
	}()

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("WebSocket read error: %v", err)
			break
		}

		websocketManager.HandleWebSocketMessage(c, messageType, message)
	}
}
