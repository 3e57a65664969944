package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clubportal/backend/internal/notification"
)

// NotificationFeed returns the merged, capped feed for the caller.
func (h *Handler) NotificationFeed(c *gin.Context) {
	user := currentUser(c)
	feed := notification.BuildFeed(user, h.Complaints.GetAll(), h.Store.Announcements(), time.Now())
	c.JSON(http.StatusOK, feed)
}
