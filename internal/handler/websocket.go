package handler

import (
	"net/http"

	"casino-ledger/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket upgrades the connection and streams the player's realtime
// notifications until the client disconnects.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	playerID := c.GetInt64("player_id")
	if playerID <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session has no player"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &notify.Client{
		PlayerID: playerID,
		Conn:     conn,
	}
	h.hub.Register(client)

	defer func() {
		h.hub.Unregister(client)
		conn.Close()
	}()

	// The connection is push-only; the read loop exists to detect close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug().Err(err).Int64("player_id", playerID).Msg("websocket closed")
			}
			return
		}
	}
}
