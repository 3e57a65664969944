package store

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clubportal/backend/internal/models"
)

// Seed loads the demo accounts and sample records the portal starts with.
// Credentials are hashed on the way in; the store never sees plaintext.
func Seed(s Store) {
	seedUsers(s)
	seedComplaints(s)
	seedAnnouncements(s)
	seedSubscriptions(s)
	log.Println("Store seeded with demo data.")
}

func seedUsers(s Store) {
	users := []struct {
		user     models.User
		password string
	}{
		{
			user: models.User{
				ID:          "u1",
				Name:        "Ahmed Mohamed",
				MemberID:    "102030",
				Role:        models.RoleMember,
				PhoneNumber: "01000000001",
				PhotoURL:    "https://picsum.photos/100/100",
			},
			password: "member123",
		},
		{
			user: models.User{
				ID:          "u2",
				Name:        "Ahmed Hassan",
				MemberID:    "405060",
				Role:        models.RoleMember,
				PhoneNumber: "01000000002",
			},
			password: "member123",
		},
		{
			user: models.User{
				ID:         "s1",
				Name:       "Tarek Ali",
				MemberID:   "STAFF01",
				Role:       models.RoleStaff,
				Department: "Engineering",
			},
			password: "staff123",
		},
		{
			user: models.User{
				ID:       "a1",
				Name:     "System Administrator",
				MemberID: "ADMIN01",
				Role:     models.RoleAdmin,
			},
			password: "admin123",
		},
	}

	for _, entry := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash seed password: %v", err)
		}
		u := entry.user
		u.PasswordHash = string(hash)
		s.AddUser(u)
	}
}

func seedComplaints(s Store) {
	now := time.Now()

	// Oldest first so InsertComplaint's prepend leaves the newest on top.
	solvedAt := now.Add(-5 * 24 * time.Hour)
	s.InsertComplaint(models.Complaint{
		ID:              "REQ-2023-084",
		UserID:          "u1",
		UserName:        "Ahmed Mohamed",
		MemberID:        "102030",
		UserPhone:       "01000000001",
		Category:        models.CategorySwimming,
		Subject:         "Poor pool cleanliness",
		Details:         "Please follow up with the cleaning contractors, the water is not clear enough today.",
		Status:          models.StatusSolved,
		Priority:        models.PriorityMedium,
		DateCreated:     solvedAt,
		LastUpdated:     solvedAt.Add(52 * time.Hour),
		ResolutionNotes: "Cleaning company re-briefed and all filters replaced; reviewed by the sports activity supervisor.",
		History: []models.HistoryEntry{
			{Status: models.StatusSolved, Timestamp: solvedAt.Add(52 * time.Hour), Note: "Work completed", UpdatedBy: models.ActorAdmin},
			{Status: models.StatusInProgress, Timestamp: solvedAt.Add(24 * time.Hour), Note: "Cleaning in progress", UpdatedBy: models.ActorAdmin},
			{Status: models.StatusNew, Timestamp: solvedAt, UpdatedBy: models.ActorUser},
		},
		Messages: []models.ChatMessage{
			{
				ID:         "msg-seed-1",
				SenderID:   "s1",
				SenderName: "Tarek Ali",
				SenderRole: models.RoleStaff,
				Text:       "The filters have been replaced, could you confirm the water is clear now?",
				Timestamp:  solvedAt.Add(50 * time.Hour),
			},
		},
	})

	reviewAt := now.Add(-2 * 24 * time.Hour)
	s.InsertComplaint(models.Complaint{
		ID:          "REQ-2023-089",
		UserID:      "u2",
		UserName:    "Ahmed Hassan",
		MemberID:    "405060",
		UserPhone:   "01000000002",
		Category:    models.CategorySports,
		Subject:     "Main hall air conditioning failure",
		Details:     "The hall needs urgent maintenance before the annual ceremony, the air conditioning barely works.",
		Status:      models.StatusUnderReview,
		Priority:    models.PriorityHigh,
		DateCreated: reviewAt,
		LastUpdated: reviewAt.Add(2 * time.Hour),
		History: []models.HistoryEntry{
			{Status: models.StatusUnderReview, Timestamp: reviewAt.Add(2 * time.Hour), Note: "Forwarded to the engineering department", UpdatedBy: models.ActorAdmin},
			{Status: models.StatusNew, Timestamp: reviewAt, UpdatedBy: models.ActorUser},
		},
	})
}

func seedAnnouncements(s Store) {
	now := time.Now()
	s.AddAnnouncement(models.Announcement{
		ID:        "ann-1",
		Title:     "Pool maintenance window",
		Content:   "The main pool closes for maintenance this Friday from 08:00 to 14:00.",
		Category:  models.AnnouncementNews,
		CreatedAt: now.Add(-3 * 24 * time.Hour),
	})
	s.AddAnnouncement(models.Announcement{
		ID:        "ann-2",
		Title:     "Annual ceremony tickets",
		Content:   "Tickets for the annual ceremony are now available at the members desk.",
		Category:  models.AnnouncementEvent,
		IsUrgent:  true,
		CreatedAt: now.Add(-1 * 24 * time.Hour),
	})
}

func seedSubscriptions(s Store) {
	s.AddSubscriptionRequest(models.SubscriptionRequest{
		ID:            "SUB-101",
		ApplicantName: "Khaled Ibrahim",
		MemberID:      "505020",
		PhoneNumber:   "01234567890",
		Status:        models.SubscriptionPending,
		DateApplied:   time.Now().Add(-6 * 24 * time.Hour),
	})
}
