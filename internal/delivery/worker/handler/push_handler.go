package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"

	"tuition/config"
	"tuition/internal/domain/constants"
	"tuition/internal/errors"
	"tuition/internal/infra/pubsub"
)

// PushHandler receives Pub/Sub push deliveries of profile events
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	events         *EventHandler
	validateToken  func(req *http.Request) error
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Events *EventHandler
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; local emulation and development do not.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		events:         params.Events,
		validateToken:  verifyPubSubToken,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks Pub/Sub to redeliver; 200 acknowledges, including events that can never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.validateToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Event()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode profile event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.events.Handle(ctx, event, pushMsg.Message.Attributes[pubsub.AttrRequestID]); err != nil {
		if IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
