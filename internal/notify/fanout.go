package notify

import (
	"context"
	"errors"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// Sink receives new order alerts.
type Sink interface {
	Notify(ctx context.Context, event model.NewOrdersEvent) error
}

// Fanout delivers every alert to all sinks and joins their failures.
type Fanout struct {
	sinks []Sink
}

// NewFanout skips nil sinks.
func NewFanout(sinks ...Sink) *Fanout {
	f := &Fanout{}
	for _, s := range sinks {
		if s != nil {
			f.sinks = append(f.sinks, s)
		}
	}
	return f
}

func (f *Fanout) Notify(ctx context.Context, event model.NewOrdersEvent) error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
