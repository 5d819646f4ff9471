package notify

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"casino-ledger/internal/model"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Client is one websocket connection owned by a player.
type Client struct {
	PlayerID int64
	Conn     *websocket.Conn
}

// Hub fans redis pub/sub notifications out to connected websocket clients.
// One hub runs per API instance; redis carries events published by any
// instance to the one holding the player's connection.
type Hub struct {
	rdb        *redis.Client
	logger     zerolog.Logger
	register   chan *Client
	unregister chan *Client
	deliver    chan *model.Notification

	mu      sync.RWMutex
	clients map[int64][]*Client
}

func NewHub(rdb *redis.Client, logger zerolog.Logger) *Hub {
	return &Hub{
		rdb:        rdb,
		logger:     logger,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan *model.Notification, 256),
		clients:    make(map[int64][]*Client),
	}
}

// Register attaches a client; Unregister detaches it. Both are safe from any
// goroutine.
func (h *Hub) Register(c *Client)   { h.register <- c }
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

// Run owns the client table and the redis subscription. It returns when ctx
// is cancelled.
func (h *Hub) Run(ctx context.Context) {
	sub := h.rdb.PSubscribe(ctx, "player:*:balance", "player:*:events")
	defer sub.Close()

	go h.consume(ctx, sub.Channel())

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.PlayerID] = append(h.clients[client.PlayerID], client)
			h.mu.Unlock()
			h.logger.Debug().Int64("player_id", client.PlayerID).Msg("websocket client registered")

		case client := <-h.unregister:
			h.mu.Lock()
			conns := h.clients[client.PlayerID]
			for i, c := range conns {
				if c == client {
					h.clients[client.PlayerID] = append(conns[:i], conns[i+1:]...)
					break
				}
			}
			if len(h.clients[client.PlayerID]) == 0 {
				delete(h.clients, client.PlayerID)
			}
			h.mu.Unlock()
			h.logger.Debug().Int64("player_id", client.PlayerID).Msg("websocket client unregistered")

		case n := <-h.deliver:
			h.send(n)
		}
	}
}

func (h *Hub) consume(ctx context.Context, ch <-chan *redis.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			playerID, err := playerFromChannel(msg.Channel)
			if err != nil {
				h.logger.Warn().Str("channel", msg.Channel).Msg("unparseable notification channel")
				continue
			}
			var n model.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				h.logger.Warn().Err(err).Str("channel", msg.Channel).Msg("bad notification payload")
				continue
			}
			n.PlayerID = playerID
			select {
			case h.deliver <- &n:
			default:
				// Slow consumers drop realtime pushes; the balance endpoint is
				// always authoritative.
				h.logger.Warn().Int64("player_id", playerID).Msg("notification dropped, hub backlog full")
			}
		}
	}
}

func (h *Hub) send(n *model.Notification) {
	h.mu.RLock()
	conns := append([]*Client(nil), h.clients[n.PlayerID]...)
	h.mu.RUnlock()

	for _, c := range conns {
		if err := c.Conn.WriteJSON(n); err != nil {
			h.logger.Debug().Err(err).Int64("player_id", n.PlayerID).Msg("websocket write failed")
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conns := range h.clients {
		for _, c := range conns {
			c.Conn.Close()
		}
	}
	h.clients = make(map[int64][]*Client)
}

// playerFromChannel extracts the player id from "player:<id>:balance" or
// "player:<id>:events".
func playerFromChannel(channel string) (int64, error) {
	parts := strings.Split(channel, ":")
	if len(parts) != 3 {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(parts[1], 10, 64)
}
