package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clubportal/backend/internal/models"
	"clubportal/backend/internal/store"
)

type subscriptionRequestBody struct {
	ApplicantName string `json:"applicant_name" binding:"required"`
	MemberID      string `json:"member_id" binding:"required"`
	PhoneNumber   string `json:"phone_number" binding:"required"`
	IDCardImage   string `json:"id_card_image"`
}

// SubmitSubscription files a public membership application.
func (h *Handler) SubmitSubscription(c *gin.Context) {
	var req subscriptionRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "applicant_name, member_id and phone_number are required"})
		return
	}

	request := models.SubscriptionRequest{
		ID:            fmt.Sprintf("SUB-%d", time.Now().UnixMilli()),
		ApplicantName: req.ApplicantName,
		MemberID:      req.MemberID,
		PhoneNumber:   req.PhoneNumber,
		IDCardImage:   req.IDCardImage,
		Status:        models.SubscriptionPending,
		DateApplied:   time.Now(),
	}
	h.Store.AddSubscriptionRequest(request)

	c.JSON(http.StatusCreated, gin.H{
		"request": request,
		"message": "Your application was received and will be reviewed shortly.",
	})
}

// ListSubscriptions returns every membership application.
func (h *Handler) ListSubscriptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.SubscriptionRequests())
}

type decisionRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

// DecideSubscription records the single administrator decision on an
// application. A second decision is a conflict, not a transition.
func (h *Handler) DecideSubscription(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request body"})
		return
	}

	status := models.SubscriptionRejected
	if req.Approve {
		status = models.SubscriptionApproved
	}

	decided, err := h.Store.DecideSubscription(c.Param("id"), status, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{"error": "Request already decided"})
		case errors.Is(err, store.ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, decided)
}
