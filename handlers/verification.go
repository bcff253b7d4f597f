package handlers

import (
	"errors"
	"net/http"

	"servyadmin/services/verification"
	"servyadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VerificationHandler serves the provider verification queue.
type VerificationHandler struct {
	Service verification.VerificationService
}

// NewVerificationHandler creates a new VerificationHandler.
func NewVerificationHandler(svc verification.VerificationService) *VerificationHandler {
	return &VerificationHandler{Service: svc}
}

// PendingHandler returns one page of pending applications.
func (vh *VerificationHandler) PendingHandler(c *gin.Context) {
	page := parseIntDefault(c.Query("page"), 1)

	queue, stale, err := vh.Service.Pending(c.Request.Context(), page)
	if err != nil {
		zap.L().Error("Failed to load pending providers", zap.Error(err))
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"providers": queue.Providers,
		"page":      queue.Page,
		"stale":     stale,
	})
}

// CountsHandler returns the verification aggregate counts.
func (vh *VerificationHandler) CountsHandler(c *gin.Context) {
	counts, stale, err := vh.Service.Counts(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to load verification counts", zap.Error(err))
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"counts": counts,
		"stale":  stale,
	})
}

// ApproveHandler approves a pending application.
func (vh *VerificationHandler) ApproveHandler(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid provider ID", c.Param("id"))
		return
	}

	if err := vh.Service.Approve(c.Request.Context(), id); err != nil {
		zap.L().Error("Failed to approve provider", zap.Int64("provider_id", id), zap.Error(err))
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider approved"})
}

// RejectRequest carries the rejection reason sent to the provider.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// RejectHandler rejects a pending application. The reason is mandatory.
func (vh *VerificationHandler) RejectHandler(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid provider ID", c.Param("id"))
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := vh.Service.Reject(c.Request.Context(), id, req.Reason); err != nil {
		if errors.Is(err, verification.ErrReasonRequired) {
			utils.JSONError(c, http.StatusBadRequest, "Rejection reason is required", "")
			return
		}
		zap.L().Error("Failed to reject provider", zap.Int64("provider_id", id), zap.Error(err))
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application rejected"})
}
