// Package notification derives the member-facing feed. It owns no state:
// every read recomputes the feed from the complaint and announcement lists,
// merging four event streams into one time-ordered, size-capped view.
package notification

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"clubportal/backend/internal/config"
	"clubportal/backend/internal/models"
)

// BuildFeed merges history entries, assignment events, foreign chat
// messages and announcements into a single feed for the viewer, sorted by
// timestamp descending and truncated to the most recent entries. Ties keep
// input stream order. Only the viewer's own complaints contribute.
func BuildFeed(viewer models.User, complaints []models.Complaint, announcements []models.Announcement, now time.Time) []models.Notification {
	recentCutoff := now.Add(-config.FeedRecentWindow)
	var feed []models.Notification

	for _, c := range complaints {
		if c.UserID != viewer.ID {
			continue
		}
		for i, h := range c.History {
			feed = append(feed, models.Notification{
				ID:        fmt.Sprintf("hist-%s-%d", c.ID, i),
				Type:      models.NotificationStatusUpdate,
				Title:     c.Subject,
				Body:      h.Note,
				Timestamp: h.Timestamp,
				IsNew:     h.Timestamp.After(recentCutoff),
			})
		}
	}

	for _, c := range complaints {
		if c.UserID != viewer.ID || c.AssignedTo == "" {
			continue
		}
		ts := c.LastUpdated
		if c.AssignmentDate != nil {
			ts = *c.AssignmentDate
		}
		feed = append(feed, models.Notification{
			ID:    "assign-" + c.ID,
			Type:  models.NotificationAssignment,
			Title: fmt.Sprintf("%s is handling request %s", c.AssignedTo, shortID(c.ID)),
			// Nothing tracks whether the member has seen an assignment,
			// so it is always surfaced as new.
			Timestamp: ts,
			IsNew:     true,
		})
	}

	for _, c := range complaints {
		if c.UserID != viewer.ID {
			continue
		}
		for _, msg := range c.Messages {
			if msg.SenderID == viewer.ID {
				continue
			}
			feed = append(feed, models.Notification{
				ID:        "msg-" + msg.ID,
				Type:      models.NotificationMessage,
				Title:     fmt.Sprintf("%s replied on %q", msg.SenderName, c.Subject),
				Body:      msg.Text,
				Timestamp: msg.Timestamp,
				IsNew:     msg.Timestamp.After(recentCutoff),
			})
		}
	}

	for _, a := range announcements {
		feed = append(feed, models.Notification{
			ID:        "ann-" + a.ID,
			Type:      models.NotificationAnnouncement,
			Title:     a.Title,
			Body:      a.Content,
			Timestamp: a.CreatedAt,
			IsNew:     a.IsUrgent || a.CreatedAt.After(recentCutoff),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})

	if len(feed) > config.FeedMaxEntries {
		feed = feed[:config.FeedMaxEntries]
	}
	return feed
}

func shortID(id string) string {
	return strings.TrimPrefix(id, "REQ-")
}
