package handler

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"

	"tuition/internal/infra/pubsub"
)

// NATSHandler consumes profile events from a NATS subscription.
type NATSHandler struct {
	logger *slog.Logger
	events *EventHandler
}

// NewNATSHandler creates the NATS message handler
func NewNATSHandler(logger *slog.Logger, events *EventHandler) *NATSHandler {
	return &NATSHandler{
		logger: logger,
		events: events,
	}
}

// HandleMsg records one message. Core NATS has no redelivery, so failures are logged only.
func (h *NATSHandler) HandleMsg(ctx context.Context, msg *nats.Msg) {
	event, err := pubsub.DecodeEvent(msg.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode NATS message",
			slog.String("subject", msg.Subject),
			slog.Any("error", err),
		)

		return
	}

	var requestID string
	if msg.Header != nil {
		requestID = msg.Header.Get(pubsub.AttrRequestID)
	}

	// Handle logs its own failures.
	_ = h.events.Handle(ctx, event, requestID)
}
