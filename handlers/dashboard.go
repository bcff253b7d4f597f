package handlers

import (
	"net/http"

	"servyadmin/services/dashboard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the landing-page overview.
type DashboardHandler struct {
	Service dashboard.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: svc}
}

// OverviewHandler returns the six landing-page aggregates in one response.
func (dh *DashboardHandler) OverviewHandler(c *gin.Context) {
	overview, stale, err := dh.Service.Overview(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to load dashboard overview", zap.Error(err))
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"overview": overview,
		"stale":    stale,
	})
}
