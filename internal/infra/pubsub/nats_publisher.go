package pubsub

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"tuition/internal/domain/entity"
	"tuition/internal/domain/service"
)

// natsPublisher implements EventPublisher on a core NATS subject.
type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to url and publishes events on subject.
func NewNATSPublisher(url, subject string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("tuition-publisher"))
	if err != nil {
		return nil, errors.Wrapf(err, "connect to NATS at %s", url)
	}

	logger.Info("NATS publisher initialized", slog.String("subject", subject))

	return newNATSPublisher(conn, subject, logger), nil
}

func newNATSPublisher(conn *nats.Conn, subject string, logger *slog.Logger) *natsPublisher {
	return &natsPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}
}

// PublishProfileEvent publishes the event with its attributes as message headers
func (p *natsPublisher) PublishProfileEvent(ctx context.Context, event *entity.ProfileEvent) error {
	data, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = data
	for k, v := range eventAttributes(ctx, event) {
		msg.Header.Set(k, v)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[NATS] Event published",
		slog.String("subject", p.subject),
		slog.String("event_id", event.ID.String()),
	)

	return nil
}

// Close flushes pending messages and closes the connection
func (p *natsPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if err := p.conn.Drain(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
