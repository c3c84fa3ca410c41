package websocket

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler upgrades HTTP requests to schedule feed subscriptions
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Subscribe to schedule changes
// @Description Upgrades the connection to a WebSocket that streams schedule change events of one corps, or of all corps when corps is omitted
// @Tags schedule, websocket
// @Param corps query string false "Corps name"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Router /ws/schedule [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	corps := strings.TrimSpace(c.Query("corps"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written an HTTP error
		h.logger.Warn().Err(err).Str("corps", corps).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:        h.hub,
		conn:       conn,
		send:       make(chan []byte, 256),
		corps:      corps,
		remoteAddr: conn.RemoteAddr().String(),
		logger:     h.logger,
	}
	client.hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	go client.readPump()
}
