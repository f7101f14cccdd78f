package infra

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"vocably.app/internal/constants"
)

// CountsEnvelope is the wire format of a snapshot on the Redis channel.
// Origin lets an instance skip its own messages.
type CountsEnvelope struct {
	Origin string         `json:"origin"`
	Rooms  map[string]int `json:"rooms"`
}

// CountsBridge relays participant-count snapshots between instances over
// Redis pub/sub. Each instance publishes its own snapshots and
// re-broadcasts snapshots received from peers to its local WebSocket
// clients.
type CountsBridge struct {
	rdb    *redis.Client
	origin string
}

func NewCountsBridge(rdb *redis.Client) *CountsBridge {
	return &CountsBridge{
		rdb:    rdb,
		origin: uuid.NewString(),
	}
}

// Publish sends a snapshot to peers. Best effort: errors are logged,
// never returned to the request path.
func (b *CountsBridge) Publish(ctx context.Context, rooms map[string]int) {
	data, err := json.Marshal(CountsEnvelope{Origin: b.origin, Rooms: rooms})
	if err != nil {
		log.Printf("CountsBridge: failed to marshal snapshot: %v", err)
		return
	}
	if err := b.rdb.Publish(ctx, constants.RedisChannelCounts, data).Err(); err != nil {
		log.Printf("CountsBridge: failed to publish snapshot: %v", err)
	}
}

// Start subscribes to the counts channel and re-broadcasts peer
// snapshots to the local hub. Runs until ctx is canceled.
func (b *CountsBridge) Start(ctx context.Context, hub *WsManager) error {
	pubsub := b.rdb.Subscribe(ctx, constants.RedisChannelCounts)

	// Wait for confirmation that subscription is created
	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}

	ch := pubsub.Channel()

	go func() {
		defer pubsub.Close()
		log.Println("Started counts bridge subscriber loop")
		for msg := range ch {
			var env CountsEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.Printf("CountsBridge: bad payload: %v", err)
				continue
			}
			if env.Origin == b.origin {
				continue
			}
			hub.BroadcastCounts(env.Rooms)
		}
	}()

	return nil
}
