package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

const subscriberBuffer = 8

// Hub broadcasts alerts to connected dashboard streams. Delivery never blocks:
// a subscriber whose buffer is full misses the alert.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan Payload]struct{}
	closed bool
	now    func() time.Time
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[chan Payload]struct{}),
		now:    time.Now,
		logger: logger,
	}
}

// Subscribe registers a stream. The returned cancel func is idempotent.
func (h *Hub) Subscribe() (<-chan Payload, func()) {
	ch := make(chan Payload, subscriberBuffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[ch]; ok {
				delete(h.subs, ch)
				close(ch)
			}
		})
	}
}

func (h *Hub) Notify(_ context.Context, event model.NewOrdersEvent) error {
	payload := NewPayload(event, h.now())

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- payload:
		default:
			h.logger.Warn("dropping alert for slow subscriber", slog.Int("orders", len(payload.OrderIDs)))
		}
	}
	return nil
}

// Subscribers returns the number of connected streams.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close disconnects every subscriber and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
}
