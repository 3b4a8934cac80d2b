package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/plsapi/backend/internal/model"
	"github.com/plsapi/backend/internal/service"
)

// writeError maps service sentinels to status codes. Details of unexpected
// errors are logged and never returned.
func writeError(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, "server error"
	switch {
	case errors.Is(err, service.ErrNotMember):
		status, msg = http.StatusUnauthorized, "not a member of required community"
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrUpstreamAuth):
		status, msg = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, service.ErrForbidden):
		status, msg = http.StatusForbidden, "forbidden"
	case errors.Is(err, service.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrUpstreamLookup):
		status, msg = http.StatusBadRequest, "could not extract duration from video"
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		status, msg = http.StatusBadRequest, err.Error()
	}

	if status >= http.StatusInternalServerError {
		loggerFrom(c).Error("request failed", "error", err)
	}
	c.AbortWithStatusJSON(status, model.ErrorResponse{Error: msg})
}

func writeBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{Error: msg})
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
