package models

import "time"

// SubscriptionStatus is the state of a pending-membership application.
type SubscriptionStatus string

const (
	SubscriptionPending  SubscriptionStatus = "PENDING"
	SubscriptionApproved SubscriptionStatus = "APPROVED"
	SubscriptionRejected SubscriptionStatus = "REJECTED"
)

// SubscriptionRequest is a membership application created by public
// registration. Its lifecycle ends with a single administrator decision;
// a decided request never transitions again.
type SubscriptionRequest struct {
	ID              string             `json:"id"`
	ApplicantName   string             `json:"applicant_name"`
	MemberID        string             `json:"member_id"`
	PhoneNumber     string             `json:"phone_number"`
	IDCardImage     string             `json:"id_card_image,omitempty"`
	Status          SubscriptionStatus `json:"status"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	DateApplied     time.Time          `json:"date_applied"`
}
