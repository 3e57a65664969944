// Package handler exposes the portal over HTTP. Handlers stay thin: they
// bind input, check the role table and delegate to the services.
package handler

import (
	"github.com/gin-gonic/gin"

	"clubportal/backend/internal/auth"
	"clubportal/backend/internal/complaint"
	"clubportal/backend/internal/hub"
	"clubportal/backend/internal/store"
	"clubportal/backend/internal/telegram"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Complaints *complaint.Service
	Auth       *auth.Service
	Tokens     *auth.TokenManager
	Store      store.Store
	Hub        *hub.Manager

	// Alerter is optional; it mirrors urgent announcements to staff.
	Alerter *telegram.Alerter
}

// NewHandler wires the services into one handler set.
func NewHandler(complaints *complaint.Service, authSvc *auth.Service, tokens *auth.TokenManager, st store.Store, h *hub.Manager) *Handler {
	return &Handler{
		Complaints: complaints,
		Auth:       authSvc,
		Tokens:     tokens,
		Store:      st,
		Hub:        h,
	}
}

// RegisterRoutes mounts the full portal API on the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/subscriptions", h.SubmitSubscription)
	r.GET("/ws", h.ServeWebSocket)

	api := r.Group("/api", h.Authenticated())

	api.GET("/complaints", h.ListComplaints)
	api.POST("/complaints", h.RequirePermission(auth.PermSubmitComplaint), h.CreateComplaint)
	api.GET("/complaints/:id", h.GetComplaint)
	api.POST("/complaints/:id/messages", h.RequirePermission(auth.PermMessage), h.AddMessage)
	api.POST("/complaints/:id/feedback", h.RequirePermission(auth.PermFeedback), h.AddFeedback)
	api.PUT("/complaints/:id/status", h.RequirePermission(auth.PermTransitionStatus), h.TransitionStatus)
	api.PUT("/complaints/:id/priority", h.RequirePermission(auth.PermSetPriority), h.UpdatePriority)
	api.PUT("/complaints/:id/assignment", h.RequirePermission(auth.PermAssign), h.AssignTask)

	api.GET("/notifications", h.RequirePermission(auth.PermNotifications), h.NotificationFeed)

	api.GET("/announcements", h.ListAnnouncements)
	api.POST("/announcements", h.RequirePermission(auth.PermManageAnnouncements), h.CreateAnnouncement)
	api.DELETE("/announcements/:id", h.RequirePermission(auth.PermManageAnnouncements), h.DeleteAnnouncement)

	api.GET("/subscriptions", h.RequirePermission(auth.PermManageSubscriptions), h.ListSubscriptions)
	api.PUT("/subscriptions/:id/decision", h.RequirePermission(auth.PermManageSubscriptions), h.DecideSubscription)

	api.GET("/admin/complaints/export", h.RequirePermission(auth.PermExport), h.ExportComplaints)
}
