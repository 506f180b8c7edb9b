package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/notify"
)

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type connection interface {
	Close() error
}

// Publisher mirrors new order alerts onto a fanout exchange so kitchen
// displays and other consumers can react without polling the sheet.
type Publisher struct {
	mu       sync.Mutex
	conn     connection
	ch       channel
	exchange string
	now      func() time.Time
	logger   *slog.Logger
}

// Dial connects to url and declares exchange.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := newPublisher(conn, ch, exchange, logger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return p, nil
}

func newPublisher(conn connection, ch channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, now: time.Now, logger: logger}, nil
}

func (p *Publisher) Notify(ctx context.Context, event model.NewOrdersEvent) error {
	now := p.now()
	body, err := json.Marshal(notify.NewPayload(event, now))
	if err != nil {
		return fmt.Errorf("encode alert: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         notify.EventNewOrders,
		Timestamp:    now.UTC(),
		Body:         body,
		Headers: amqp.Table{
			"x-source": "orderdesk",
		},
	})
	if err != nil {
		p.logger.Error("failed to publish alert", slog.String("exchange", p.exchange), slog.Any("error", err))
		return fmt.Errorf("publish alert: %w", err)
	}
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
