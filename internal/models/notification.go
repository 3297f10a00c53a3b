package models

import "time"

// NotificationType represents the kind of notification
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeOverdue NotificationType = "overdue"
	NotificationTypeDueSoon NotificationType = "due_soon"
)

// RelatedTypeExpense marks notifications generated from an expense.
const RelatedTypeExpense = "expense"

// Notification is a message shown to a user. It moves from unread to read
// and can be deleted in either state.
type Notification struct {
	NotificationID uint             `gorm:"column:notification_id;primaryKey" json:"notification_id"`
	UserID         uint             `gorm:"not null;index" json:"user_id"`
	Title          string           `gorm:"size:100;not null" json:"title"`
	Message        string           `json:"message"`
	Type           NotificationType `gorm:"size:20;default:info" json:"type"`
	IsRead         bool             `gorm:"not null;default:false" json:"is_read"`
	CreatedAt      time.Time        `json:"created_at"`
	RelatedID      *uint            `json:"related_id"`
	RelatedType    *string          `gorm:"size:50" json:"related_type"`
}

// TableName overrides the table name used by Notification.
func (Notification) TableName() string { return "notifications" }
