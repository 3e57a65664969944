package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clubportal/backend/internal/export"
)

// ExportComplaints streams the filtered complaint list as a CSV download.
func (h *Handler) ExportComplaints(c *gin.Context) {
	list := h.Complaints.FilterByStatus(c.Query("status"))

	filename := fmt.Sprintf("complaints-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := export.WriteCSV(c.Writer, list); err != nil {
		// Headers are gone already; the truncated download is all we can offer.
		log.Printf("Error writing CSV export: %v", err)
	}
}
