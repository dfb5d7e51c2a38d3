package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/doclibhq/doclib-be/service"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// SessionEventHandler streams session-change events to connected clients so
// every dependent sees sign-ins and sign-outs as they happen, in emission
// order.
type SessionEventHandler struct {
	auth     service.AuthService
	upgrader websocket.Upgrader
}

func NewSessionEventHandler(auth service.AuthService) *SessionEventHandler {
	return &SessionEventHandler{
		auth: auth,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (h *SessionEventHandler) HandleSessionEvents(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(4 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	subID, events := h.auth.Subscribe()
	defer h.auth.Unsubscribe(subID)

	// Reader goroutine only watches for the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				return
			}
			conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		}
	}()

	for {
		select {
		case <-done:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Println("Write error:", err)
				return
			}
		}
	}
}
