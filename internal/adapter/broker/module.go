package broker

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/notify"
)

// Module registers the AMQP publisher as a notification sink when AMQP_URL is set.
var Module = fx.Provide(newSink)

type sinkParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

type sinkResult struct {
	fx.Out

	Sink notify.Sink `group:"notifiers"`
}

var dial = Dial

func newSink(p sinkParams) (sinkResult, error) {
	if p.Config.AMQPURL == "" {
		p.Logger.Info("amqp publishing disabled")
		return sinkResult{}, nil
	}

	pub, err := dial(p.Config.AMQPURL, p.Config.AMQPExchange, p.Logger)
	if err != nil {
		return sinkResult{}, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return pub.Close()
		},
	})
	p.Logger.Info("amqp publishing enabled", slog.String("exchange", p.Config.AMQPExchange))
	return sinkResult{Sink: pub}, nil
}
