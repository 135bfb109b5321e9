// handlers/ws.go
package handlers

import (
	"log"
	"sync"

	"snowline/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// NotificationHub pushes unlock events to connected clients. It implements
// services.UnlockPublisher.
type NotificationHub struct {
	mu    sync.Mutex
	conns map[uint]map[*websocket.Conn]bool
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		conns: make(map[uint]map[*websocket.Conn]bool),
	}
}

type unlockEvent struct {
	Type         string                       `json:"type"`
	Achievements []models.UnlockedAchievement `json:"achievements"`
}

// PublishUnlocks sends the unlocks to every open connection the user has.
// Dead connections are dropped on write failure.
func (h *NotificationHub) PublishUnlocks(userID uint, unlocked []models.UnlockedAchievement) {
	if len(unlocked) == 0 {
		return
	}

	event := unlockEvent{Type: "achievement_unlocked", Achievements: unlocked}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns[userID] {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("ws: dropping connection for user %d: %v", userID, err)
			conn.Close()
			delete(h.conns[userID], conn)
		}
	}
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
}

func (h *NotificationHub) register(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]bool)
	}
	h.conns[userID][conn] = true
}

func (h *NotificationHub) unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[userID], conn)
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
}

// WebSocketUpgrade rejects plain HTTP requests to websocket routes.
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// NotificationSocket keeps a connection open per authenticated user and
// streams unlock events to it. The client is not expected to send anything;
// the read loop only detects the close.
func NotificationSocket(hub *NotificationHub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := socketUserID(conn)
		if !ok {
			conn.Close()
			return
		}

		hub.register(userID, conn)
		defer hub.unregister(userID, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}

// socketUserID reads the user id set by the auth middleware before the
// upgrade. JWT claims decode numbers as float64.
func socketUserID(conn *websocket.Conn) (uint, bool) {
	switch v := conn.Locals("userId").(type) {
	case float64:
		return uint(v), true
	case uint:
		return v, true
	default:
		return 0, false
	}
}
