package notify

import (
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// EventNewOrders is the event name used on every transport.
const EventNewOrders = "new_orders"

// Payload is the wire form of a new order alert.
type Payload struct {
	Type             string    `json:"type"`
	OrderIDs         []string  `json:"orderIds"`
	Watermark        string    `json:"watermark"`
	Sound            bool      `json:"sound"`
	Vibrate          bool      `json:"vibrate"`
	VibrationPattern []int     `json:"vibrationPattern,omitempty"`
	RaisedAt         time.Time `json:"raisedAt"`
}

// NewPayload converts event. The vibration pattern is only attached when vibration is on.
func NewPayload(event model.NewOrdersEvent, at time.Time) Payload {
	p := Payload{
		Type:      EventNewOrders,
		OrderIDs:  append([]string(nil), event.OrderIDs...),
		Watermark: event.Watermark,
		Sound:     event.Sound,
		Vibrate:   event.Vibrate,
		RaisedAt:  at.UTC(),
	}
	if event.Vibrate {
		p.VibrationPattern = append([]int(nil), model.VibrationPattern...)
	}
	return p
}
