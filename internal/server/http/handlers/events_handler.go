package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/notify"
)

const defaultHeartbeat = 25 * time.Second

// EventsHandler streams new order events as server-sent events.
type EventsHandler struct {
	source    EventSource
	heartbeat time.Duration
}

// NewEventsHandler constructs EventsHandler.
func NewEventsHandler(source EventSource) *EventsHandler {
	return &EventsHandler{source: source, heartbeat: defaultHeartbeat}
}

// Stream holds the connection open until the client leaves or the hub closes.
func (h *EventsHandler) Stream(c *gin.Context) {
	events, cancel := h.source.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(notify.EventNewOrders, payload)
		case <-ticker.C:
			c.SSEvent("ping", gin.H{"at": time.Now().UTC()})
		}
		c.Writer.Flush()
	}
}
