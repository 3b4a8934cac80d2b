package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimiterPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewLoginRateLimiter(60, 2)
	defer rl.Stop()

	r := gin.New()
	r.POST("/auth/token", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("198.51.100.1:1000"))
	assert.Equal(t, http.StatusOK, send("198.51.100.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1:1002"))
	assert.Equal(t, http.StatusOK, send("198.51.100.2:1000"))
}

func TestLoginRateLimiterCleanup(t *testing.T) {
	rl := NewLoginRateLimiter(10, 1)
	defer rl.Stop()

	rl.get("a")
	rl.get("b")
	assert.Equal(t, 2, rl.size())

	rl.cleanup(time.Now())
	assert.Equal(t, 2, rl.size())

	rl.cleanup(time.Now().Add(rl.idleTTL + time.Second))
	assert.Equal(t, 0, rl.size())

	rl.Stop()
	rl.Stop()
}
