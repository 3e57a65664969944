package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clubportal/backend/internal/auth"
)

type loginRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges member credentials for a session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "member_id and password are required"})
		return
	}

	user, token, err := h.Auth.Login(req.MemberID, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid member id or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
