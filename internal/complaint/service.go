// Package complaint provides the core logic for the member-complaint
// lifecycle: creation, status transitions, assignment, conversation,
// priority and post-resolution feedback. Every mutation goes through the
// store and is reflected in both the denormalized current-state fields and
// the append-only history log.
package complaint

import (
	"time"

	"github.com/google/uuid"

	"clubportal/backend/internal/config"
	"clubportal/backend/internal/models"
	"clubportal/backend/internal/store"
)

// Broadcaster pushes live conversation updates to connected viewers.
type Broadcaster interface {
	Broadcast(frame models.ConversationFrame)
}

// Alerter notifies staff out of band about newly filed complaints.
type Alerter interface {
	NotifyNewComplaint(c models.Complaint)
}

// Service handles the business logic for complaints.
type Service struct {
	Store store.Store

	broadcaster Broadcaster
	alerter     Alerter
}

// NewService creates a new complaint service.
func NewService(s store.Store) *Service {
	return &Service{Store: s}
}

// SetBroadcaster attaches the live-update hub. Optional.
func (s *Service) SetBroadcaster(b Broadcaster) { s.broadcaster = b }

// SetAlerter attaches the staff alert channel. Optional.
func (s *Service) SetAlerter(a Alerter) { s.alerter = a }

// Draft carries the member-supplied fields of a new complaint.
type Draft struct {
	Category    models.ComplaintCategory
	Priority    models.Priority
	Subject     string
	Details     string
	Attachments []string
}

// Create files a new complaint for the submitter. Missing draft fields are
// substituted with defaults rather than rejected: the portal favors
// availability over strict validation, so an empty subject still produces a
// valid NEW record with exactly one history entry.
func (s *Service) Create(submitter models.User, draft Draft) models.Complaint {
	now := time.Now()

	category := draft.Category
	if category == "" {
		category = models.CategoryOther
	}
	priority := draft.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	c := models.Complaint{
		ID:          s.Store.NextComplaintID(),
		UserID:      submitter.ID,
		UserName:    submitter.Name,
		MemberID:    submitter.MemberID,
		UserPhone:   submitter.PhoneNumber,
		Category:    category,
		Priority:    priority,
		Subject:     draft.Subject,
		Details:     draft.Details,
		Attachments: draft.Attachments,
		Status:      models.StatusNew,
		DateCreated: now,
		LastUpdated: now,
		History: []models.HistoryEntry{
			{Status: models.StatusNew, Timestamp: now, UpdatedBy: models.ActorUser},
		},
	}

	s.Store.InsertComplaint(c)

	if s.alerter != nil {
		s.alerter.NotifyNewComplaint(c)
	}
	return c
}

// TransitionStatus is the single path through which the status field
// changes. Every call appends exactly one history entry, even when the
// target equals the current status; repeated transitions are audit rows,
// not errors. Transitioning into SOLVED stores the note as the resolution,
// overwriting any prior value; other targets leave the resolution intact.
func (s *Service) TransitionStatus(id string, status models.ComplaintStatus, note string, by models.ActorType) (models.Complaint, error) {
	updated, err := s.Store.UpdateComplaint(id, func(c *models.Complaint) {
		now := time.Now()
		entry := models.HistoryEntry{
			Status:    status,
			Timestamp: now,
			Note:      note,
			UpdatedBy: by,
		}
		c.Status = status
		if status == models.StatusSolved {
			c.ResolutionNotes = note
		}
		c.LastUpdated = now
		c.History = append([]models.HistoryEntry{entry}, c.History...)
	})
	if err != nil {
		return models.Complaint{}, err
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(models.ConversationFrame{
			ComplaintID: updated.ID,
			Type:        models.FrameStatusUpdate,
			Status:      updated.Status,
		})
	}
	return updated, nil
}

// AssignTask binds a staff member to the complaint and forces the status to
// IN_PROGRESS regardless of the prior state: assignment always means work
// has begun. No history entry is appended here; history rows come only from
// explicit status transitions.
func (s *Service) AssignTask(id, staffName, expectedResolution string) (models.Complaint, error) {
	return s.Store.UpdateComplaint(id, func(c *models.Complaint) {
		now := time.Now()
		c.AssignedTo = staffName
		c.AssignmentDate = &now
		c.ExpectedResolution = expectedResolution
		c.Status = models.StatusInProgress
		c.LastUpdated = now
	})
}

// AddMessage appends a chat message to the complaint's conversation thread.
// The thread is append-only; prior messages are never touched.
func (s *Service) AddMessage(id string, sender models.User, text string) (models.ChatMessage, error) {
	msg := models.ChatMessage{
		ID:         uuid.New().String(),
		SenderID:   sender.ID,
		SenderName: sender.Name,
		SenderRole: sender.Role,
		Text:       text,
		Timestamp:  time.Now(),
	}

	_, err := s.Store.UpdateComplaint(id, func(c *models.Complaint) {
		c.Messages = append(c.Messages, msg)
		c.LastUpdated = msg.Timestamp
	})
	if err != nil {
		return models.ChatMessage{}, err
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(models.ConversationFrame{
			ComplaintID: id,
			Type:        models.FrameChatMessage,
			Message:     &msg,
		})
	}
	return msg, nil
}

// AddFeedback records the post-resolution rating and optional feedback
// text. The rating range is enforced; a SOLVED status deliberately is not,
// that remains caller discipline.
func (s *Service) AddFeedback(id string, rating int, feedback string) error {
	if rating < config.MinRating || rating > config.MaxRating {
		return ErrInvalidRating
	}
	_, err := s.Store.UpdateComplaint(id, func(c *models.Complaint) {
		c.Rating = rating
		c.Feedback = feedback
		c.LastUpdated = time.Now()
	})
	return err
}

// UpdatePriority changes the triage level. No history entry.
func (s *Service) UpdatePriority(id string, priority models.Priority) error {
	_, err := s.Store.UpdateComplaint(id, func(c *models.Complaint) {
		c.Priority = priority
		c.LastUpdated = time.Now()
	})
	return err
}

// GetAll returns every complaint, newest-created-first.
func (s *Service) GetAll() []models.Complaint {
	return s.Store.AllComplaints()
}

// GetByUser returns the complaints submitted by one member.
func (s *Service) GetByUser(userID string) []models.Complaint {
	all := s.Store.AllComplaints()
	out := make([]models.Complaint, 0, len(all))
	for _, c := range all {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}

// FilterByStatus returns complaints in the given status, or everything for
// the special "ALL" filter.
func (s *Service) FilterByStatus(status string) []models.Complaint {
	if status == models.StatusFilterAll || status == "" {
		return s.Store.AllComplaints()
	}
	all := s.Store.AllComplaints()
	out := make([]models.Complaint, 0, len(all))
	for _, c := range all {
		if c.Status == models.ComplaintStatus(status) {
			out = append(out, c)
		}
	}
	return out
}

// Get looks up a single complaint.
func (s *Service) Get(id string) (models.Complaint, error) {
	return s.Store.GetComplaint(id)
}
