package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"servyadmin/backend"
	"servyadmin/utils"
	"servyadmin/views"

	"github.com/gin-gonic/gin"
)

// writeBackendError maps a failed backend interaction onto the gateway's
// response contract: unknown ids become 404, same-id mutation collisions
// become 409, everything else is a retryable upstream failure.
func writeBackendError(c *gin.Context, err error) {
	switch {
	case backend.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, views.ErrMutationInFlight):
		utils.JSONError(c, http.StatusConflict, "Action already in progress", err.Error())
	default:
		utils.JSONRetryableError(c, http.StatusBadGateway, "Backend request failed", err.Error())
	}
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func parseIntDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
