package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message shown to a single user.
type Notification struct {
	ID        uuid.UUID      `json:"id"`             // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID      `json:"userId"`         // The recipient.
	EventID   uuid.UUID      `json:"eventId"`        // The event that produced it; unique per recipient.
	Kind      EventType      `json:"kind"`           // The event type that triggered the notification.
	Title     string         `json:"title"`          // Short headline.
	Body      string         `json:"body"`           // Human readable message.
	Data      map[string]any `json:"data,omitempty"` // Extra payload for clients.
	ReadAt    *time.Time     `json:"readAt"`         // Nil until the user marks it read.
	CreatedAt time.Time      `json:"createdAt"`      // Timestamp of when the notification was created.
}

// IsRead reports whether the notification was marked read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
