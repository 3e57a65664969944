package hub

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"clubportal/backend/internal/config"
	"clubportal/backend/internal/models"
)

// PubSub is the broadcast backbone between the lifecycle service and every
// running hub. With Redis configured it spans server instances; otherwise
// the in-memory implementation keeps everything in process.
type PubSub interface {
	Publish(frame models.ConversationFrame) error
	// Subscribe returns a frame channel and a cancel function that stops
	// the subscription and closes the channel.
	Subscribe() (<-chan models.ConversationFrame, func())
}

// RedisPubSub bridges frames across instances through one Redis channel.
type RedisPubSub struct {
	Client *redis.Client
	ctx    context.Context
}

// NewRedisPubSub wraps an existing Redis client.
func NewRedisPubSub(client *redis.Client) *RedisPubSub {
	return &RedisPubSub{Client: client, ctx: context.Background()}
}

func (r *RedisPubSub) Publish(frame models.ConversationFrame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return r.Client.Publish(r.ctx, config.PubSubChannel, payload).Err()
}

func (r *RedisPubSub) Subscribe() (<-chan models.ConversationFrame, func()) {
	sub := r.Client.Subscribe(r.ctx, config.PubSubChannel)
	out := make(chan models.ConversationFrame, 64)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var frame models.ConversationFrame
			if err := json.Unmarshal([]byte(msg.Payload), &frame); err != nil {
				log.Printf("Error unmarshalling pubsub frame: %v", err)
				continue
			}
			out <- frame
		}
	}()

	return out, func() { _ = sub.Close() }
}

// MemoryPubSub is the single-process fallback used when no Redis address is
// configured, and in tests.
type MemoryPubSub struct {
	mu   sync.Mutex
	subs []chan models.ConversationFrame
}

// NewMemoryPubSub creates an empty in-process pub/sub.
func NewMemoryPubSub() *MemoryPubSub {
	return &MemoryPubSub{}
}

func (m *MemoryPubSub) Publish(frame models.ConversationFrame) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- frame:
		default:
			// Slow subscriber; the frame is display-only, drop it.
		}
	}
	return nil
}

func (m *MemoryPubSub) Subscribe() (<-chan models.ConversationFrame, func()) {
	ch := make(chan models.ConversationFrame, 64)

	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, sub := range m.subs {
			if sub == ch {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}
