package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a mutation published on the activity stream.
type EventType string

const (
	EventConfigUpdated     EventType = "config.updated"
	EventConfigSeeded      EventType = "config.seeded"
	EventTaxonomyAdded     EventType = "taxonomy.added"
	EventTaxonomyUpdated   EventType = "taxonomy.updated"
	EventTaxonomyRemoved   EventType = "taxonomy.removed"
	EventSectionAdded      EventType = "section.added"
	EventSectionUpdated    EventType = "section.updated"
	EventSectionRemoved    EventType = "section.removed"
	EventSectionsReordered EventType = "section.reordered"
	EventTemplateAdded     EventType = "template.added"
	EventTemplateUpdated   EventType = "template.updated"
	EventTemplateRemoved   EventType = "template.removed"
	EventTeacherCreated    EventType = "teacher.created"
	EventTeacherApproved   EventType = "teacher.approved"
	EventTeacherRejected   EventType = "teacher.rejected"
	EventProfileUpdated    EventType = "profile.updated"
	EventProfileEnabled    EventType = "profile.enabled"
	EventProfileDisabled   EventType = "profile.disabled"
	EventProfileLayout     EventType = "profile.layout_updated"
	EventTemplateApplied   EventType = "profile.template_applied"
)

// NotifiesTeacher reports whether the event results in an in-app
// notification for the affected teacher.
func (t EventType) NotifiesTeacher() bool {
	switch t {
	case EventTeacherApproved, EventTeacherRejected, EventTemplateApplied:
		return true
	default:
		return false
	}
}

// ProfileEvent is the message published for every config or profile mutation.
type ProfileEvent struct {
	ID            uuid.UUID      `json:"id"`
	Type          EventType      `json:"type"`
	ActorID       *uuid.UUID     `json:"actorId,omitempty"`
	TeacherUserID *uuid.UUID     `json:"teacherUserId,omitempty"`
	ConfigKey     string         `json:"configKey,omitempty"`
	TargetType    string         `json:"targetType,omitempty"`
	TargetID      string         `json:"targetId,omitempty"`
	Payload       map[string]any `json:"payload,omitempty"`
	OccurredAt    time.Time      `json:"occurredAt"`
}

// ActivityLog is the persisted record of a ProfileEvent.
type ActivityLog struct {
	ID            uuid.UUID      `json:"id"`
	EventID       uuid.UUID      `json:"eventId"`
	Type          EventType      `json:"type"`
	ActorID       *uuid.UUID     `json:"actorId,omitempty"`
	TeacherUserID *uuid.UUID     `json:"teacherUserId,omitempty"`
	ConfigKey     string         `json:"configKey,omitempty"`
	TargetType    string         `json:"targetType,omitempty"`
	TargetID      string         `json:"targetId,omitempty"`
	Payload       map[string]any `json:"payload,omitempty"`
	OccurredAt    time.Time      `json:"occurredAt"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// ActivityFromEvent converts a consumed event into its log record.
func ActivityFromEvent(e *ProfileEvent) *ActivityLog {
	return &ActivityLog{
		EventID:       e.ID,
		Type:          e.Type,
		ActorID:       e.ActorID,
		TeacherUserID: e.TeacherUserID,
		ConfigKey:     e.ConfigKey,
		TargetType:    e.TargetType,
		TargetID:      e.TargetID,
		Payload:       e.Payload,
		OccurredAt:    e.OccurredAt,
	}
}
