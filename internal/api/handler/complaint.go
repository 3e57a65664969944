package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clubportal/backend/internal/auth"
	"clubportal/backend/internal/complaint"
	"clubportal/backend/internal/models"
)

type createComplaintRequest struct {
	Category    models.ComplaintCategory `json:"category"`
	Priority    models.Priority          `json:"priority"`
	Subject     string                   `json:"subject"`
	Details     string                   `json:"details"`
	Attachments []string                 `json:"attachments"`
}

// CreateComplaint files a new complaint for the authenticated member.
// Missing fields are tolerated; the service substitutes defaults.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request body"})
		return
	}

	created := h.Complaints.Create(currentUser(c), complaint.Draft{
		Category:    req.Category,
		Priority:    req.Priority,
		Subject:     req.Subject,
		Details:     req.Details,
		Attachments: req.Attachments,
	})
	c.JSON(http.StatusCreated, created)
}

// ListComplaints returns every complaint for staff and admins, and the
// caller's own complaints for members. An optional status query filters.
func (h *Handler) ListComplaints(c *gin.Context) {
	user := currentUser(c)

	var list []models.Complaint
	if auth.Allowed(user.Role, auth.PermViewAllComplaints) {
		list = h.Complaints.FilterByStatus(c.Query("status"))
	} else {
		list = h.Complaints.GetByUser(user.ID)
	}
	c.JSON(http.StatusOK, list)
}

// GetComplaint returns one complaint. Members can only read their own.
func (h *Handler) GetComplaint(c *gin.Context) {
	found, err := h.Complaints.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	user := currentUser(c)
	if !auth.Allowed(user.Role, auth.PermViewAllComplaints) && found.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your complaint"})
		return
	}
	c.JSON(http.StatusOK, found)
}

type addMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddMessage appends a chat message to the conversation thread.
func (h *Handler) AddMessage(c *gin.Context) {
	var req addMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	user := currentUser(c)
	if !auth.Allowed(user.Role, auth.PermViewAllComplaints) {
		found, err := h.Complaints.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		if found.UserID != user.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your complaint"})
			return
		}
	}

	msg, err := h.Complaints.AddMessage(c.Param("id"), user, req.Text)
	if err != nil {
		h.complaintError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

type addFeedbackRequest struct {
	Rating   int    `json:"rating" binding:"required"`
	Feedback string `json:"feedback"`
}

// AddFeedback records the submitting member's post-resolution rating.
func (h *Handler) AddFeedback(c *gin.Context) {
	var req addFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating is required"})
		return
	}

	user := currentUser(c)
	found, err := h.Complaints.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}
	if found.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your complaint"})
		return
	}

	if err := h.Complaints.AddFeedback(c.Param("id"), req.Rating, req.Feedback); err != nil {
		h.complaintError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type transitionRequest struct {
	Status models.ComplaintStatus `json:"status" binding:"required"`
	Note   string                 `json:"note"`
}

// TransitionStatus moves a complaint to the target status. Any target is
// accepted from any source; terminal states are conventional only.
func (h *Handler) TransitionStatus(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	updated, err := h.Complaints.TransitionStatus(c.Param("id"), req.Status, req.Note, models.ActorAdmin)
	if err != nil {
		h.complaintError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type priorityRequest struct {
	Priority models.Priority `json:"priority" binding:"required"`
}

// UpdatePriority changes the triage level.
func (h *Handler) UpdatePriority(c *gin.Context) {
	var req priorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "priority is required"})
		return
	}

	if err := h.Complaints.UpdatePriority(c.Param("id"), req.Priority); err != nil {
		h.complaintError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type assignRequest struct {
	StaffName          string `json:"staff_name" binding:"required"`
	ExpectedResolution string `json:"expected_resolution"`
}

// AssignTask binds a staff member to the complaint; the status is forced
// to IN_PROGRESS as a side effect.
func (h *Handler) AssignTask(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staff_name is required"})
		return
	}

	updated, err := h.Complaints.AssignTask(c.Param("id"), req.StaffName, req.ExpectedResolution)
	if err != nil {
		h.complaintError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) complaintError(c *gin.Context, err error) {
	switch {
	case complaint.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
	case errors.Is(err, complaint.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
