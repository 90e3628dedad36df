package worker

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"tuition/config"
	"tuition/internal/delivery"
	"tuition/internal/delivery/worker/handler"
	"tuition/internal/domain/constants"
	"tuition/internal/errors"
)

type natsSubscriber struct {
	cfg     *config.NATSConfig
	logger  *slog.Logger
	handler *handler.NATSHandler
	conn    *nats.Conn
	sub     *nats.Subscription
}

// SubscriberParams holds dependencies for the NATS subscriber
type SubscriberParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Events *handler.EventHandler
}

// NewNATSSubscriber creates the queue subscriber used with the nats provider.
// With any other provider Serve returns immediately.
func NewNATSSubscriber(params SubscriberParams) delivery.Delivery {
	sub := &natsSubscriber{
		logger:  params.Logger,
		handler: handler.NewNATSHandler(params.Logger, params.Events),
	}
	if params.Cfg.PubSub != nil && params.Cfg.PubSub.Provider == constants.PubSubProviderNATS {
		sub.cfg = params.Cfg.NATS
	}

	params.Lc.Append(fx.Hook{
		OnStop: sub.stop,
	})

	return sub
}

// Serve connects and joins the worker queue group. Messages are handled on
// the NATS client's goroutine until stop drains the subscription.
func (s *natsSubscriber) Serve(ctx context.Context) error {
	if s.cfg == nil || s.cfg.URL == "" {
		s.logger.Info("NATS subscriber disabled")

		return nil
	}

	conn, err := nats.Connect(s.cfg.URL,
		nats.Name("tuition-activityworker"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			s.logger.Warn("NATS disconnected", slog.Any("error", err))
		}),
	)
	if err != nil {
		return errors.Wrapf(err, "connect to NATS at %s", s.cfg.URL)
	}

	sub, err := conn.QueueSubscribe(s.cfg.Subject, s.cfg.Queue, func(msg *nats.Msg) {
		s.handler.HandleMsg(ctx, msg)
	})
	if err != nil {
		conn.Close()

		return errors.Wrapf(err, "subscribe to %s", s.cfg.Subject)
	}

	s.conn = conn
	s.sub = sub
	s.logger.Info("NATS subscriber started",
		slog.String("subject", s.cfg.Subject),
		slog.String("queue", s.cfg.Queue),
	)

	return nil
}

func (s *natsSubscriber) stop(_ context.Context) error {
	if s.conn == nil {
		return nil
	}

	s.logger.Info("Draining NATS subscriber")

	return errors.WithStack(s.conn.Drain())
}
