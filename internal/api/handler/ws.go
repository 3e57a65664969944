package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"clubportal/backend/internal/auth"
	"clubportal/backend/internal/hub"
	"clubportal/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients come from the portal frontend on another origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and registers the caller as a live
// viewer of one complaint's conversation. The token travels in the query
// string because browsers cannot set headers on websocket upgrades.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	identity, err := h.Tokens.Parse(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}

	complaintID := c.Query("complaint")
	if complaintID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "complaint query parameter missing"})
		return
	}

	found, err := h.Complaints.Get(complaintID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}
	if !auth.Allowed(identity.Role, auth.PermViewAllComplaints) && found.UserID != identity.UserID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not your complaint"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &hub.WebSocketClient{
		ID:          uuid.New().String(),
		UserID:      identity.UserID,
		ComplaintID: complaintID,
		Conn:        conn,
		Hub:         h.Hub,
		Send:        make(chan models.ConversationFrame, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
