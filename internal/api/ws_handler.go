package api

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"vocably.app/internal/constants"
	"vocably.app/internal/domain"
	"vocably.app/internal/infra"
)

// InitWebsocket wires the real-time counts channel. Listeners receive
// the current snapshot on connect and a fresh one after every
// successful participant write.
func InitWebsocket(app *fiber.App, hub *infra.WsManager, roomSvc domain.RoomService) {
	// Middleware to force upgrade
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c

		defer func() {
			hub.Unregister <- c
		}()

		// Initial snapshot so a fresh client doesn't wait for the next
		// room action.
		hub.SendTo(c, infra.CountsMessage{
			Type:  constants.WsTypeCounts,
			Rooms: roomSvc.Participants(),
		})

		// Read loop. Clients don't send anything we act on; reading
		// keeps the connection alive and detects closes.
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Println("ws read error:", err)
				}
				break
			}
		}
	}))
}
