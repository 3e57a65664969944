package models

import "time"

// ComplaintStatus is the lifecycle state of a complaint.
type ComplaintStatus string

const (
	StatusNew         ComplaintStatus = "NEW"
	StatusUnderReview ComplaintStatus = "UNDER_REVIEW"
	StatusInProgress  ComplaintStatus = "IN_PROGRESS"
	StatusSolved      ComplaintStatus = "SOLVED"
	StatusClosed      ComplaintStatus = "CLOSED"
	StatusRejected    ComplaintStatus = "REJECTED"
)

// StatusFilterAll is accepted by FilterByStatus to disable filtering.
const StatusFilterAll = "ALL"

// ComplaintCategory identifies the club department a complaint belongs to.
type ComplaintCategory string

const (
	CategoryFacilities      ComplaintCategory = "FACILITIES"
	CategoryFood            ComplaintCategory = "FOOD"
	CategorySports          ComplaintCategory = "SPORTS"
	CategoryEvents          ComplaintCategory = "EVENTS"
	CategorySwimming        ComplaintCategory = "SWIMMING"
	CategoryCustomerService ComplaintCategory = "CUSTOMER_SERVICE"
	CategoryMaintenance     ComplaintCategory = "MAINTENANCE"
	CategorySecurity        ComplaintCategory = "SECURITY"
	CategorySubscription    ComplaintCategory = "SUBSCRIPTION"
	CategoryOther           ComplaintCategory = "OTHER"
)

// Priority is the triage level assigned to a complaint.
type Priority string

const (
	PriorityUrgent Priority = "URGENT"
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// ActorType identifies who performed a recorded action.
type ActorType string

const (
	ActorUser   ActorType = "USER"
	ActorAdmin  ActorType = "ADMIN"
	ActorSystem ActorType = "SYSTEM"
)

// HistoryEntry is a single row of the append-only audit trail.
// Storage order is newest-first; rows are never rewritten or dropped.
type HistoryEntry struct {
	Status    ComplaintStatus `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Note      string          `json:"note,omitempty"`
	UpdatedBy ActorType       `json:"updated_by"`
}

// ChatMessage is one entry of a complaint's conversation thread.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole UserRole  `json:"sender_role"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// Complaint is a member-submitted issue tracked through the status lifecycle.
type Complaint struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	MemberID  string `json:"member_id,omitempty"`
	UserPhone string `json:"user_phone,omitempty"`

	Category ComplaintCategory `json:"category"`
	Priority Priority          `json:"priority"`

	Subject     string   `json:"subject"`
	Details     string   `json:"details"`
	Attachments []string `json:"attachments,omitempty"`

	Status          ComplaintStatus `json:"status"`
	DateCreated     time.Time       `json:"date_created"`
	LastUpdated     time.Time       `json:"last_updated"`
	ResolutionNotes string          `json:"resolution_notes,omitempty"`

	History  []HistoryEntry `json:"history"`
	Messages []ChatMessage  `json:"messages"`

	Rating   int    `json:"rating,omitempty"`
	Feedback string `json:"feedback,omitempty"`

	AssignedTo         string     `json:"assigned_to,omitempty"`
	AssignmentDate     *time.Time `json:"assignment_date,omitempty"`
	ExpectedResolution string     `json:"expected_resolution,omitempty"`

	// Version increments on every mutation so a concurrent writer can
	// detect a stale read before overwriting newer state.
	Version int `json:"version"`
}

// Clone returns a deep copy so callers can never reach into stored state.
func (c *Complaint) Clone() Complaint {
	cp := *c
	if c.Attachments != nil {
		cp.Attachments = append([]string(nil), c.Attachments...)
	}
	cp.History = append([]HistoryEntry(nil), c.History...)
	cp.Messages = append([]ChatMessage(nil), c.Messages...)
	if c.AssignmentDate != nil {
		d := *c.AssignmentDate
		cp.AssignmentDate = &d
	}
	return cp
}
