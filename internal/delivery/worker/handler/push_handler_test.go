package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/errors"
	"tuition/internal/infra/pubsub"
	mockUsecase "tuition/internal/mocks/usecase"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockActivityUsecase) {
	activity := mockUsecase.NewMockActivityUsecase(t)
	logger := newTestLogger()

	return &PushHandler{
		logger:        logger,
		events:        NewEventHandler(EventHandlerParams{Logger: logger, ActivityUC: activity}),
		validateToken: verifyPubSubToken,
	}, activity
}

func testEvent() *entity.ProfileEvent {
	teacherID := uuid.New()

	return &entity.ProfileEvent{
		ID:            uuid.New(),
		Type:          entity.EventTeacherApproved,
		TeacherUserID: &teacherID,
		OccurredAt:    time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func pushBody(t *testing.T, event *entity.ProfileEvent, requestID string) string {
	t.Helper()

	data, err := pubsub.EncodeEvent(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Message.Attributes = map[string]string{pubsub.AttrRequestID: requestID}
	msg.Subscription = "projects/local/subscriptions/activity-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("records event under the publisher's request id", func(t *testing.T) {
		h, activity := createTestPushHandler(t)
		event := testEvent()

		activity.EXPECT().
			RecordEvent(mock.MatchedBy(func(ctx context.Context) bool {
				return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
			}), mock.MatchedBy(func(e *entity.ProfileEvent) bool {
				return e.ID == event.ID && e.Type == event.Type
			})).
			Return(nil).
			Once()

		rec := servePush(h, pushBody(t, event, "req-42"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("storage failure asks for redelivery", func(t *testing.T) {
		h, activity := createTestPushHandler(t)

		activity.EXPECT().
			RecordEvent(mock.Anything, mock.Anything).
			Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert failed")).
			Once()

		rec := servePush(h, pushBody(t, testEvent(), "req-1"))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("invalid event is acknowledged", func(t *testing.T) {
		h, activity := createTestPushHandler(t)

		activity.EXPECT().
			RecordEvent(mock.Anything, mock.Anything).
			Return(domainerrors.ErrValidationFailed).
			Once()

		rec := servePush(h, pushBody(t, testEvent(), ""))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable payload", func(t *testing.T) {
		h, _ := createTestPushHandler(t)

		rec := servePush(h, `{"message":{"data":"%%%not-base64"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unsigned push is refused when verification is on", func(t *testing.T) {
		h, _ := createTestPushHandler(t)
		h.verifyPushAuth = true

		rec := servePush(h, pushBody(t, testEvent(), ""))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "validation", err: domainerrors.ErrValidationFailed, want: false},
		{name: "not found", err: errors.Wrap(domainerrors.ErrNotificationNotFound, "mark read"), want: false},
		{name: "database", err: domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "insert"), want: true},
		{name: "unknown", err: errors.New("boom"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestNATSHandler_HandleMsg(t *testing.T) {
	activity := mockUsecase.NewMockActivityUsecase(t)
	logger := newTestLogger()
	h := NewNATSHandler(logger, NewEventHandler(EventHandlerParams{Logger: logger, ActivityUC: activity}))
	event := testEvent()

	data, err := pubsub.EncodeEvent(event)
	require.NoError(t, err)
	msg := nats.NewMsg("tuition.profile-events")
	msg.Data = data
	msg.Header.Set(pubsub.AttrRequestID, "req-nats")

	activity.EXPECT().
		RecordEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-nats"
		}), mock.MatchedBy(func(e *entity.ProfileEvent) bool {
			return e.ID == event.ID
		})).
		Return(nil).
		Once()

	h.HandleMsg(context.Background(), msg)
	h.HandleMsg(context.Background(), &nats.Msg{Subject: "tuition.profile-events", Data: []byte("not json")})
}
