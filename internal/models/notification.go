package models

import "time"

// NotificationType names the source stream a feed entry came from.
type NotificationType string

const (
	NotificationStatusUpdate NotificationType = "STATUS_UPDATE"
	NotificationAssignment   NotificationType = "ASSIGNMENT"
	NotificationMessage      NotificationType = "MESSAGE"
	NotificationAnnouncement NotificationType = "ANNOUNCEMENT"
)

// Notification is one entry of the merged member-facing feed. It is a
// derived, read-only view; nothing in the system stores notifications.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	IsNew     bool             `json:"is_new"`
}
