package handlers

import (
	"net/http"

	"servyadmin/services/directory"
	"servyadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DirectoryHandler serves the provider directory pages.
type DirectoryHandler struct {
	Service directory.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(svc directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: svc}
}

// ListProvidersHandler returns a filtered, searched, paginated directory page.
func (dh *DirectoryHandler) ListProvidersHandler(c *gin.Context) {
	q := directory.Query{
		Status: c.DefaultQuery("status", "all"),
		Search: c.Query("search"),
		Page:   parseIntDefault(c.Query("page"), 1),
	}

	result, stale, err := dh.Service.List(c.Request.Context(), q)
	if err != nil {
		zap.L().Error("Failed to list providers", zap.Error(err))
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"providers": result.Providers,
		"page":      result.Page,
		"stale":     stale,
	})
}

// ProviderDetailsHandler returns the rich detail payload for one provider.
func (dh *DirectoryHandler) ProviderDetailsHandler(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid provider ID", c.Param("id"))
		return
	}

	details, err := dh.Service.Details(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to fetch provider details", zap.Int64("provider_id", id), zap.Error(err))
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
