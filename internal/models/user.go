package models

// UserRole determines which part of the portal a user may operate.
type UserRole string

const (
	RoleMember UserRole = "MEMBER"
	RoleStaff  UserRole = "STAFF"
	RoleAdmin  UserRole = "ADMIN"
)

// User represents a portal account: a club member, a staff executor,
// or an administrator. Department is only meaningful for staff and admins.
type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MemberID    string   `json:"member_id"`
	Role        UserRole `json:"role"`
	Department  string   `json:"department,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	PhotoURL    string   `json:"photo_url,omitempty"`

	// PasswordHash is a bcrypt hash. Plaintext credentials never enter the model.
	PasswordHash string `json:"-"`
}
