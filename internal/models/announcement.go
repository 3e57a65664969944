package models

import "time"

// AnnouncementCategory classifies a club-wide broadcast.
type AnnouncementCategory string

const (
	AnnouncementNews  AnnouncementCategory = "NEWS"
	AnnouncementAlert AnnouncementCategory = "ALERT"
	AnnouncementEvent AnnouncementCategory = "EVENT"
)

// Announcement is a club-wide broadcast. Immutable once created,
// except for deletion.
type Announcement struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Category  AnnouncementCategory `json:"category"`
	IsUrgent  bool                 `json:"is_urgent"`
	CreatedAt time.Time            `json:"created_at"`
}
