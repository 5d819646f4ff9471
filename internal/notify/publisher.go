package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"casino-ledger/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Channel naming. The balance channel is the low-latency path clients care
// about most; richer settlement events go on the events channel.
func balanceChannel(playerID int64) string {
	return fmt.Sprintf("player:%d:balance", playerID)
}

func eventsChannel(playerID int64) string {
	return fmt.Sprintf("player:%d:events", playerID)
}

// RedisPublisher pushes notifications through redis pub/sub so every API
// instance's websocket hub sees them, wherever the player is connected.
type RedisPublisher struct {
	rdb    *redis.Client
	logger zerolog.Logger
}

func NewRedisPublisher(rdb *redis.Client, logger zerolog.Logger) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, logger: logger}
}

// PublishBalance sends a balance change on the dedicated balance channel.
func (p *RedisPublisher) PublishBalance(ctx context.Context, n *model.Notification) error {
	return p.publish(ctx, balanceChannel(n.PlayerID), n)
}

// Publish sends a full event on the player's events channel.
func (p *RedisPublisher) Publish(ctx context.Context, n *model.Notification) error {
	return p.publish(ctx, eventsChannel(n.PlayerID), n)
}

func (p *RedisPublisher) publish(ctx context.Context, channel string, n *model.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	if err := p.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	p.logger.Debug().Str("channel", channel).Str("type", n.Type).Msg("notification published")
	return nil
}
