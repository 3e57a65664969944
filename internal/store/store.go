// Package store holds the authoritative in-memory collections of the portal.
// There is no persistence layer: the process owns one mutable copy of every
// collection, mutations rebuild the complaint slice wholesale (copy-on-write
// at the collection level) and reads hand out deep copies.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"clubportal/backend/internal/models"
)

var (
	ErrComplaintNotFound    = errors.New("complaint not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrSubscriptionNotFound = errors.New("subscription request not found")
	// ErrAlreadyDecided means an administrator decision was already recorded
	// for a subscription request; a decided request never transitions again.
	ErrAlreadyDecided = errors.New("subscription request already decided")
)

// Store is the access boundary the services depend on.
type Store interface {
	// Complaints
	NextComplaintID() string
	InsertComplaint(c models.Complaint)
	GetComplaint(id string) (models.Complaint, error)
	AllComplaints() []models.Complaint
	UpdateComplaint(id string, mutate func(c *models.Complaint)) (models.Complaint, error)

	// Users
	AddUser(u models.User)
	GetUserByID(id string) (models.User, error)
	FindUserByMemberID(memberID string) (models.User, error)
	AllUsers() []models.User

	// Announcements
	AddAnnouncement(a models.Announcement)
	DeleteAnnouncement(id string) error
	Announcements() []models.Announcement

	// Subscription requests
	AddSubscriptionRequest(r models.SubscriptionRequest)
	SubscriptionRequests() []models.SubscriptionRequest
	DecideSubscription(id string, status models.SubscriptionStatus, reason string) (models.SubscriptionRequest, error)
}

// Memory implements Store on process-local slices.
type Memory struct {
	mu sync.RWMutex

	complaints    []models.Complaint
	users         []models.User
	announcements []models.Announcement
	subscriptions []models.SubscriptionRequest

	lastComplaintMillis int64
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{}
}

// NextComplaintID derives an id from the creation time, like the legacy
// portal did. Kept monotonic under the lock so two creates in the same
// millisecond never collide.
func (m *Memory) NextComplaintID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	millis := time.Now().UnixMilli()
	if millis <= m.lastComplaintMillis {
		millis = m.lastComplaintMillis + 1
	}
	m.lastComplaintMillis = millis
	return fmt.Sprintf("REQ-%d", millis)
}

// InsertComplaint prepends the complaint, keeping newest-created-first order.
func (m *Memory) InsertComplaint(c models.Complaint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]models.Complaint, 0, len(m.complaints)+1)
	next = append(next, c.Clone())
	next = append(next, m.complaints...)
	m.complaints = next
}

func (m *Memory) GetComplaint(id string) (models.Complaint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.complaints {
		if m.complaints[i].ID == id {
			return m.complaints[i].Clone(), nil
		}
	}
	return models.Complaint{}, ErrComplaintNotFound
}

// AllComplaints returns deep copies in newest-created-first order.
func (m *Memory) AllComplaints() []models.Complaint {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Complaint, 0, len(m.complaints))
	for i := range m.complaints {
		out = append(out, m.complaints[i].Clone())
	}
	return out
}

// UpdateComplaint runs mutate against a copy of the matching record, bumps
// its version and swaps in a rebuilt slice. The collection is untouched when
// the id is unknown.
func (m *Memory) UpdateComplaint(id string, mutate func(c *models.Complaint)) (models.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i := range m.complaints {
		if m.complaints[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Complaint{}, ErrComplaintNotFound
	}

	updated := m.complaints[idx].Clone()
	mutate(&updated)
	updated.Version = m.complaints[idx].Version + 1

	next := make([]models.Complaint, len(m.complaints))
	copy(next, m.complaints)
	next[idx] = updated
	m.complaints = next

	return updated.Clone(), nil
}

func (m *Memory) AddUser(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, u)
}

func (m *Memory) GetUserByID(id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (m *Memory) FindUserByMemberID(memberID string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.MemberID == memberID {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (m *Memory) AllUsers() []models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.User(nil), m.users...)
}

func (m *Memory) AddAnnouncement(a models.Announcement) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]models.Announcement, 0, len(m.announcements)+1)
	next = append(next, a)
	next = append(next, m.announcements...)
	m.announcements = next
}

func (m *Memory) DeleteAnnouncement(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.announcements {
		if m.announcements[i].ID == id {
			m.announcements = append(m.announcements[:i:i], m.announcements[i+1:]...)
			return nil
		}
	}
	return ErrAnnouncementNotFound
}

func (m *Memory) Announcements() []models.Announcement {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Announcement(nil), m.announcements...)
}

func (m *Memory) AddSubscriptionRequest(r models.SubscriptionRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]models.SubscriptionRequest, 0, len(m.subscriptions)+1)
	next = append(next, r)
	next = append(next, m.subscriptions...)
	m.subscriptions = next
}

func (m *Memory) SubscriptionRequests() []models.SubscriptionRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.SubscriptionRequest(nil), m.subscriptions...)
}

// DecideSubscription records the single administrator decision.
func (m *Memory) DecideSubscription(id string, status models.SubscriptionStatus, reason string) (models.SubscriptionRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.subscriptions {
		if m.subscriptions[i].ID != id {
			continue
		}
		if m.subscriptions[i].Status != models.SubscriptionPending {
			return models.SubscriptionRequest{}, ErrAlreadyDecided
		}
		next := append([]models.SubscriptionRequest(nil), m.subscriptions...)
		next[i].Status = status
		next[i].RejectionReason = reason
		m.subscriptions = next
		return next[i], nil
	}
	return models.SubscriptionRequest{}, ErrSubscriptionNotFound
}
