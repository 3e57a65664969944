package notification_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubportal/backend/internal/models"
	"clubportal/backend/internal/notification"
)

var viewer = models.User{ID: "u1", Name: "Ahmed Mohamed", Role: models.RoleMember}

func TestFeedMergesStreamsNewestFirst(t *testing.T) {
	now := time.Now()

	complaints := []models.Complaint{
		{
			ID:      "REQ-1",
			UserID:  "u1",
			Subject: "AC broken",
			History: []models.HistoryEntry{
				{Status: models.StatusUnderReview, Timestamp: now, UpdatedBy: models.ActorAdmin},
			},
			Messages: []models.ChatMessage{
				{ID: "m1", SenderID: "s1", SenderName: "Tarek Ali", Text: "Looking into it", Timestamp: now.Add(-1 * time.Hour)},
			},
		},
	}
	announcements := []models.Announcement{
		{ID: "a1", Title: "Pool closed", IsUrgent: true, CreatedAt: now.Add(-48 * time.Hour)},
	}

	feed := notification.BuildFeed(viewer, complaints, announcements, now)

	require.Len(t, feed, 3)
	assert.Equal(t, models.NotificationStatusUpdate, feed[0].Type)
	assert.Equal(t, models.NotificationMessage, feed[1].Type)
	assert.Equal(t, models.NotificationAnnouncement, feed[2].Type)
	// Urgency overrides the 24h window even for a two-day-old broadcast.
	assert.True(t, feed[2].IsNew)
}

func TestFeedScopedToViewer(t *testing.T) {
	now := time.Now()

	complaints := []models.Complaint{
		{
			ID:     "REQ-mine",
			UserID: "u1",
			History: []models.HistoryEntry{
				{Status: models.StatusNew, Timestamp: now, UpdatedBy: models.ActorUser},
			},
		},
		{
			ID:         "REQ-theirs",
			UserID:     "u2",
			AssignedTo: "Tech A",
			History: []models.HistoryEntry{
				{Status: models.StatusNew, Timestamp: now, UpdatedBy: models.ActorUser},
			},
		},
	}

	feed := notification.BuildFeed(viewer, complaints, nil, now)

	require.Len(t, feed, 1)
	assert.Equal(t, "hist-REQ-mine-0", feed[0].ID)
}

func TestFeedSkipsViewerOwnMessages(t *testing.T) {
	now := time.Now()

	complaints := []models.Complaint{
		{
			ID:     "REQ-1",
			UserID: "u1",
			Messages: []models.ChatMessage{
				{ID: "m1", SenderID: "u1", Text: "my own message", Timestamp: now},
				{ID: "m2", SenderID: "s1", SenderName: "Tarek Ali", Text: "a reply", Timestamp: now},
			},
		},
	}

	feed := notification.BuildFeed(viewer, complaints, nil, now)

	require.Len(t, feed, 1)
	assert.Equal(t, "msg-m2", feed[0].ID)
}

func TestAssignmentAlwaysNew(t *testing.T) {
	now := time.Now()
	assignedAt := now.Add(-72 * time.Hour)

	complaints := []models.Complaint{
		{
			ID:             "REQ-2023-089",
			UserID:         "u1",
			AssignedTo:     "Tech A",
			AssignmentDate: &assignedAt,
		},
	}

	feed := notification.BuildFeed(viewer, complaints, nil, now)

	require.Len(t, feed, 1)
	assert.Equal(t, models.NotificationAssignment, feed[0].Type)
	assert.True(t, feed[0].IsNew)
	assert.Contains(t, feed[0].Title, "Tech A")
	assert.Contains(t, feed[0].Title, "2023-089")
}

func TestNewFlagUses24HourWindow(t *testing.T) {
	now := time.Now()

	complaints := []models.Complaint{
		{
			ID:     "REQ-1",
			UserID: "u1",
			History: []models.HistoryEntry{
				{Status: models.StatusSolved, Timestamp: now.Add(-2 * time.Hour), UpdatedBy: models.ActorAdmin},
				{Status: models.StatusNew, Timestamp: now.Add(-30 * time.Hour), UpdatedBy: models.ActorUser},
			},
		},
	}
	announcements := []models.Announcement{
		{ID: "a1", Title: "stale news", CreatedAt: now.Add(-25 * time.Hour)},
	}

	feed := notification.BuildFeed(viewer, complaints, announcements, now)

	require.Len(t, feed, 3)
	assert.True(t, feed[0].IsNew)
	assert.False(t, feed[1].IsNew)
	assert.False(t, feed[2].IsNew)
}

func TestFeedCappedAt15(t *testing.T) {
	now := time.Now()

	var history []models.HistoryEntry
	for i := 0; i < 30; i++ {
		history = append(history, models.HistoryEntry{
			Status:    models.StatusUnderReview,
			Timestamp: now.Add(-time.Duration(i) * time.Minute),
			UpdatedBy: models.ActorAdmin,
		})
	}
	complaints := []models.Complaint{{ID: "REQ-1", UserID: "u1", Subject: "busy", History: history}}

	feed := notification.BuildFeed(viewer, complaints, nil, now)

	require.Len(t, feed, 15)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Timestamp.After(feed[i-1].Timestamp),
			fmt.Sprintf("feed not sorted at index %d", i))
	}
	// The cap keeps the most recent entries.
	assert.Equal(t, now, feed[0].Timestamp)
}

func TestTimestampTiesKeepStreamOrder(t *testing.T) {
	now := time.Now()
	ts := now.Add(-1 * time.Hour)

	complaints := []models.Complaint{
		{
			ID:      "REQ-1",
			UserID:  "u1",
			Subject: "tied",
			History: []models.HistoryEntry{
				{Status: models.StatusNew, Timestamp: ts, UpdatedBy: models.ActorUser},
			},
			Messages: []models.ChatMessage{
				{ID: "m1", SenderID: "s1", Text: "same instant", Timestamp: ts},
			},
		},
	}
	announcements := []models.Announcement{{ID: "a1", Title: "same instant too", CreatedAt: ts}}

	feed := notification.BuildFeed(viewer, complaints, announcements, now)

	// History before messages before announcements: the input stream order
	// breaks ties.
	require.Len(t, feed, 3)
	assert.Equal(t, models.NotificationStatusUpdate, feed[0].Type)
	assert.Equal(t, models.NotificationMessage, feed[1].Type)
	assert.Equal(t, models.NotificationAnnouncement, feed[2].Type)
}
