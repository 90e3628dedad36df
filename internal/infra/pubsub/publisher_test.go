package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuition/config"
	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/constants"
	"tuition/internal/domain/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *entity.ProfileEvent {
	teacherID := uuid.New()

	return &entity.ProfileEvent{
		ID:            uuid.New(),
		Type:          entity.EventTeacherApproved,
		TeacherUserID: &teacherID,
		TargetType:    "teacher",
		TargetID:      teacherID.String(),
		Payload:       map[string]any{"note": "welcome"},
		OccurredAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishProfileEvent(t *testing.T) {
	event := sampleEvent()

	var (
		received  PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	require.NoError(t, publisher.PublishProfileEvent(ctx, event))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, event.ID.String(), received.Message.MessageID)
	assert.Equal(t, string(entity.EventTeacherApproved), received.Message.Attributes[AttrEventType])
	assert.Equal(t, "req-42", received.Message.Attributes[AttrRequestID])

	decoded, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, *event.TeacherUserID, *decoded.TeacherUserID)
	assert.Equal(t, "welcome", decoded.Payload["note"])
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishProfileEvent(context.Background(), sampleEvent())

	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestPushMessage_EventRejectsBadPayload(t *testing.T) {
	var msg PushMessage
	msg.Message.Data = "%%%not-base64"

	_, err := msg.Event()

	assert.Error(t, err)
}

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("no provider falls back to noop", func(t *testing.T) {
		publisher, err := newPublisher(ctx, &config.Config{}, logger)

		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishProfileEvent(ctx, sampleEvent()))
	})

	t.Run("local provider needs endpoint", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}, logger)

		assert.ErrorContains(t, err, "local endpoint is required")
	})

	t.Run("google provider needs project", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}, logger)

		assert.ErrorContains(t, err, "project ID is required")
	})

	t.Run("nats provider needs url", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderNATS}}, logger)

		assert.ErrorContains(t, err, "nats url is required")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}, logger)

		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}

func TestOrderingKey(t *testing.T) {
	teacherID := uuid.New()

	assert.Equal(t, "teacher:"+teacherID.String(), orderingKey(&entity.ProfileEvent{ConfigKey: "default", TeacherUserID: &teacherID}))
	assert.Equal(t, "config:school-a", orderingKey(&entity.ProfileEvent{ConfigKey: "school-a"}))
}
