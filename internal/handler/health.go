package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/plsapi/backend/internal/model"
)

// 헬스체크 엔드포인트
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// 루트 엔드포인트
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.RootResponse{
		Status:  "ok",
		Message: "PLSapi is running",
	})
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Healthz godoc
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Failure 503 {object} model.HealthResponse
// @Router /healthz [get]
func Healthz(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			loggerFrom(c).Warn("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, model.HealthResponse{Status: "degraded", Database: "down"})
			return
		}
		c.JSON(http.StatusOK, model.HealthResponse{Status: "ok", Database: "up"})
	}
}
