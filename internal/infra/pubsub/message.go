package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"

	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/entity"
)

// Message attribute names carried next to every encoded event.
const (
	AttrEventID   = "event_id"
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
)

// PushMessage is the envelope Google Pub/Sub uses when pushing to HTTP
// endpoints. The local publisher produces the same shape.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Event decodes the base64 payload into a ProfileEvent.
func (m *PushMessage) Event() (*entity.ProfileEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push message data")
	}

	return DecodeEvent(data)
}

// EncodeEvent serializes the event as published on every transport.
func EncodeEvent(event *entity.ProfileEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// DecodeEvent parses a published event.
func DecodeEvent(data []byte) (*entity.ProfileEvent, error) {
	var event entity.ProfileEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "decode profile event")
	}

	return &event, nil
}

// eventAttributes builds the attributes used for filtering and tracing.
func eventAttributes(ctx context.Context, event *entity.ProfileEvent) map[string]string {
	attributes := map[string]string{
		AttrEventID:   event.ID.String(),
		AttrEventType: string(event.Type),
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attributes[AttrRequestID] = requestID
	}

	return attributes
}

// orderingKey groups events that must be consumed in publish order: every
// event about one teacher, otherwise every event about one config key.
func orderingKey(event *entity.ProfileEvent) string {
	if event.TeacherUserID != nil {
		return "teacher:" + event.TeacherUserID.String()
	}

	return "config:" + event.ConfigKey
}
