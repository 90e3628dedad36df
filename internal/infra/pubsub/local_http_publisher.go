package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/entity"
	"tuition/internal/domain/service"
)

const localSubscription = "projects/local/subscriptions/activity-sub"

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishProfileEvent wraps the event in a push envelope and posts it to the local worker
func (p *localHTTPPublisher) PublishProfileEvent(ctx context.Context, event *entity.ProfileEvent) error {
	data, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = event.ID.String()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(ctx, event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
