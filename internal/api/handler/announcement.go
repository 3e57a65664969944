package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clubportal/backend/internal/models"
)

// ListAnnouncements returns every broadcast, newest first.
func (h *Handler) ListAnnouncements(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Announcements())
}

type createAnnouncementRequest struct {
	Title    string                      `json:"title" binding:"required"`
	Content  string                      `json:"content" binding:"required"`
	Category models.AnnouncementCategory `json:"category" binding:"required"`
	IsUrgent bool                        `json:"is_urgent"`
}

// CreateAnnouncement publishes a club-wide broadcast. Urgent ones are
// mirrored to the staff chat when an alerter is configured.
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	var req createAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, content and category are required"})
		return
	}

	ann := models.Announcement{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		IsUrgent:  req.IsUrgent,
		CreatedAt: time.Now(),
	}
	h.Store.AddAnnouncement(ann)

	if ann.IsUrgent && h.Alerter != nil {
		h.Alerter.NotifyUrgentAnnouncement(ann)
	}
	c.JSON(http.StatusCreated, ann)
}

// DeleteAnnouncement removes a broadcast. Deletion is the only mutation an
// announcement supports.
func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	if err := h.Store.DeleteAnnouncement(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
