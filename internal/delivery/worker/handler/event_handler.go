// Package handler contains the transport handlers of the activity worker.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/errors"
	"tuition/internal/infra/metrics"
	"tuition/internal/usecase"
)

// EventHandler records profile events delivered by any transport.
type EventHandler struct {
	logger     *slog.Logger
	activityUC usecase.ActivityUsecase
	metrics    *metrics.Metrics
}

// EventHandlerParams holds dependencies for the EventHandler
type EventHandlerParams struct {
	fx.In

	Logger     *slog.Logger
	ActivityUC usecase.ActivityUsecase
	Metrics    *metrics.Metrics `optional:"true"`
}

// NewEventHandler creates the shared event handler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		logger:     params.Logger,
		activityUC: params.ActivityUC,
		metrics:    params.Metrics,
	}
}

// Handle records the event under a request-scoped logger. The returned error
// reports whether redelivery could succeed, see IsRetryable.
func (h *EventHandler) Handle(ctx context.Context, event *entity.ProfileEvent, requestID string) error {
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing profile event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
	)

	err := h.activityUC.RecordEvent(ctx, event)
	h.metrics.EventRecorded(string(event.Type), err)
	if err != nil {
		reqLogger.Error("[Worker] Failed to record profile event",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", IsRetryable(err)),
		)

		return err
	}

	reqLogger.Info("[Worker] Profile event recorded", slog.String("event_id", event.ID.String()))

	return nil
}

// IsRetryable reports whether err may clear on redelivery. Client-class
// application errors never do; storage and unknown errors might.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}
