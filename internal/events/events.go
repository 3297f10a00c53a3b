// Package events publishes domain events to an optional AMQP exchange so other
// processes (push, e-mail) can fan notifications out.
package events

import (
	"context"
	"encoding/json"
	"time"

	"budgetnatin/internal/models"
)

// NotificationEvent is the JSON body published for every created notification.
type NotificationEvent struct {
	NotificationID uint      `json:"notification_id"`
	UserID         uint      `json:"user_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	RelatedID      *uint     `json:"related_id,omitempty"`
	RelatedType    *string   `json:"related_type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewNotificationEvent converts a stored notification into its event form.
func NewNotificationEvent(n *models.Notification) NotificationEvent {
	return NotificationEvent{
		NotificationID: n.NotificationID,
		UserID:         n.UserID,
		Type:           string(n.Type),
		Title:          n.Title,
		Message:        n.Message,
		RelatedID:      n.RelatedID,
		RelatedType:    n.RelatedType,
		CreatedAt:      n.CreatedAt,
	}
}

// RoutingKey is notification.<type>, e.g. notification.overdue.
func (e NotificationEvent) RoutingKey() string {
	return "notification." + e.Type
}

// ToJSON encodes the event body.
func (e NotificationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers notification events.
type Publisher interface {
	PublishNotification(ctx context.Context, n *models.Notification) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

// PublishNotification implements Publisher.
func (NoopPublisher) PublishNotification(context.Context, *models.Notification) error { return nil }

// Close implements Publisher.
func (NoopPublisher) Close() error { return nil }
