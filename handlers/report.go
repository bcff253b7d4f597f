package handlers

import (
	"errors"
	"net/http"

	"servyadmin/services/report"
	"servyadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler serves provider reports and moderation actions on them.
type ReportHandler struct {
	Service report.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(svc report.ReportService) *ReportHandler {
	return &ReportHandler{Service: svc}
}

// ListReportsHandler returns the filtered report table plus stat cards.
func (rh *ReportHandler) ListReportsHandler(c *gin.Context) {
	statusFilter := c.DefaultQuery("status", "all")

	result, stale, err := rh.Service.List(c.Request.Context(), statusFilter)
	if err != nil {
		zap.L().Error("Failed to load reports", zap.Error(err))
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reports": result.Reports,
		"stats":   result.Stats,
		"stale":   stale,
	})
}

// UpdateStatusRequest carries a report moderation decision.
type UpdateStatusRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

// UpdateStatusHandler records a report moderation decision.
func (rh *ReportHandler) UpdateStatusHandler(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid report ID", c.Param("id"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := rh.Service.UpdateStatus(c.Request.Context(), id, req.Status, req.AdminNotes); err != nil {
		if errors.Is(err, report.ErrInvalidStatus) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid report status", req.Status)
			return
		}
		zap.L().Error("Failed to update report status", zap.Int64("report_id", id), zap.Error(err))
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report status updated"})
}

// VideoHandler redirects the browser to the report's video evidence on the
// backend. The video is never proxied or parsed here.
func (rh *ReportHandler) VideoHandler(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid report ID", c.Param("id"))
		return
	}
	c.Redirect(http.StatusFound, rh.Service.VideoURL(id))
}
