package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/plsapi/backend/internal/metrics"
	"github.com/plsapi/backend/internal/model"
	"github.com/plsapi/backend/internal/service"
)

const (
	authSubjectKey    = "auth_subject"
	authActionneurKey = "auth_actionneur"
	loggerKey         = "logger"
	requestIDHeader   = "X-Request-ID"
)

// ============================================================================
// Authorization chain: RequireUser -> RequireActionneur -> RequireAdmin
// ============================================================================

// RequireUser aborts with 401 unless a valid bearer token is presented.
func RequireUser(gate *service.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			writeError(c, service.ErrInvalidToken)
			return
		}

		subject, err := gate.Authenticate(token)
		if err != nil {
			writeError(c, err)
			return
		}

		c.Set(authSubjectKey, subject)
		c.Next()
	}
}

// OptionalUser records the subject when a valid bearer token is present and
// lets every request through.
func OptionalUser(gate *service.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if subject, err := gate.Authenticate(token); err == nil {
				c.Set(authSubjectKey, subject)
			}
		}
		c.Next()
	}
}

// RequireActionneur must run after RequireUser.
func RequireActionneur(gate *service.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := GetAuthSubject(c)
		if !ok {
			writeError(c, service.ErrInvalidToken)
			return
		}

		a, err := gate.AuthorizeActionneur(c.Request.Context(), subject)
		if err != nil {
			writeError(c, err)
			return
		}

		c.Set(authActionneurKey, a)
		c.Next()
	}
}

// RequireAdmin must run after RequireActionneur.
func RequireAdmin(gate *service.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := gate.AuthorizeAdmin(GetActionneur(c)); err != nil {
			writeError(c, err)
			return
		}
		c.Next()
	}
}

func GetAuthSubject(c *gin.Context) (string, bool) {
	if value, ok := c.Get(authSubjectKey); ok {
		if subject, ok := value.(string); ok && subject != "" {
			return subject, true
		}
	}
	return "", false
}

func GetActionneur(c *gin.Context) *model.Actionneur {
	if value, ok := c.Get(authActionneurKey); ok {
		if a, ok := value.(*model.Actionneur); ok {
			return a
		}
	}
	return nil
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// ============================================================================
// Ambient middleware
// ============================================================================

func CORSMiddleware(allowedOrigins []string, allowCredentials bool) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				if allowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestLogger tags every request with an id and logs it once served.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		reqLogger := logger.With("request_id", requestID)
		c.Set(loggerKey, reqLogger)

		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if subject, ok := GetAuthSubject(c); ok {
			attrs = append(attrs, "user_id", subject)
		}
		reqLogger.Info("request", attrs...)
	}
}

func loggerFrom(c *gin.Context) *slog.Logger {
	if value, ok := c.Get(loggerKey); ok {
		if l, ok := value.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

// MetricsMiddleware records requests under their route template.
func MetricsMiddleware(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
