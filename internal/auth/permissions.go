package auth

import "clubportal/backend/internal/models"

// Permission names one operation a role may perform. Role dispatch happens
// through a single lookup table instead of scattered role checks.
type Permission string

const (
	PermSubmitComplaint     Permission = "complaint:submit"
	PermViewOwnComplaints   Permission = "complaint:view_own"
	PermViewAllComplaints   Permission = "complaint:view_all"
	PermMessage             Permission = "complaint:message"
	PermFeedback            Permission = "complaint:feedback"
	PermTransitionStatus    Permission = "complaint:transition"
	PermAssign              Permission = "complaint:assign"
	PermSetPriority         Permission = "complaint:priority"
	PermNotifications       Permission = "notifications:read"
	PermManageAnnouncements Permission = "announcements:manage"
	PermManageSubscriptions Permission = "subscriptions:manage"
	PermExport              Permission = "complaints:export"
)

var rolePermissions = map[models.UserRole]map[Permission]bool{
	models.RoleMember: {
		PermSubmitComplaint:   true,
		PermViewOwnComplaints: true,
		PermMessage:           true,
		PermFeedback:          true,
		PermNotifications:     true,
	},
	models.RoleStaff: {
		PermViewAllComplaints: true,
		PermViewOwnComplaints: true,
		PermMessage:           true,
		PermTransitionStatus:  true,
	},
	models.RoleAdmin: {
		PermViewAllComplaints:   true,
		PermViewOwnComplaints:   true,
		PermMessage:             true,
		PermTransitionStatus:    true,
		PermAssign:              true,
		PermSetPriority:         true,
		PermManageAnnouncements: true,
		PermManageSubscriptions: true,
		PermExport:              true,
	},
}

// Allowed reports whether the role may perform the operation.
func Allowed(role models.UserRole, perm Permission) bool {
	return rolePermissions[role][perm]
}
