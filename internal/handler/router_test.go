package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/plsapi/backend/internal/config"
	"github.com/plsapi/backend/internal/metrics"
	"github.com/plsapi/backend/internal/mocks"
	"github.com/plsapi/backend/internal/model"
	"github.com/plsapi/backend/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testEnv struct {
	router *gin.Engine
	repo   *mocks.MockActionneurRepository
	codec  *service.TokenCodec
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActionneurRepository(ctrl)
	codec, err := service.NewTokenCodec("test-secret", "HS256")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authSvc, err := service.NewAuthService(nil, codec, repo, config.Config{
		Auth:    config.AuthConfig{TokenTTL: time.Hour},
		Discord: config.DiscordConfig{GuildID: "1"},
	}, logger, nil)
	require.NoError(t, err)

	limiter := NewLoginRateLimiter(1, 1)
	t.Cleanup(limiter.Stop)

	reg := prometheus.NewRegistry()
	router := NewRouter(&RouterDeps{
		Logger:      logger,
		Metrics:     metrics.NewCollector(reg),
		Gatherer:    reg,
		Health:      fakePinger{},
		Gate:        service.NewGate(codec, repo),
		LoginLimit:  limiter,
		CORSOrigins: []string{"https://pls.example.org"},

		Auth:           NewAuthHandler(authSvc),
		Charbons:       NewCharbonHandler(nil),
		Courses:        NewCourseHandler(nil),
		Announcements:  NewAnnouncementHandler(nil),
		ExerciseTopics: NewExerciseTopicHandler(nil),
		Exercises:      NewExerciseHandler(nil),
		Actionneurs:    NewActionneurHandler(nil),
	})
	return &testEnv{router: router, repo: repo, codec: codec}
}

func (e *testEnv) token(t *testing.T, subject string) string {
	t.Helper()
	token, err := e.codec.Issue(subject, time.Now().Add(time.Hour))
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestWriteRoutesRequireBearer(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/charbons"},
		{http.MethodPut, "/charbons/1"},
		{http.MethodDelete, "/announcements/1"},
		{http.MethodPost, "/exercises"},
		{http.MethodPost, "/courses"},
		{http.MethodDelete, "/actionneurs/1"},
		{http.MethodGet, "/auth/me"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := env.do(rt.method, rt.path, "", `{}`)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "unauthorized", errorBody(t, w))

			w = env.do(rt.method, rt.path, "not-a-jwt", `{}`)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestNonActionneurIsForbidden(t *testing.T) {
	env := newTestEnv(t)
	env.repo.EXPECT().GetActionneur(gomock.Any(), model.Snowflake(42)).Return(nil, pgx.ErrNoRows)

	w := env.do(http.MethodPost, "/charbons", env.token(t, "42"), `{}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", errorBody(t, w))
}

func TestActionneurPassesWriteGate(t *testing.T) {
	env := newTestEnv(t)
	env.repo.EXPECT().GetActionneur(gomock.Any(), model.Snowflake(42)).
		Return(&model.Actionneur{ID: 42, Username: "alice"}, nil)

	w := env.do(http.MethodPost, "/charbons", env.token(t, "42"), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request", errorBody(t, w))
}

func TestAdminRoutes(t *testing.T) {
	env := newTestEnv(t)

	env.repo.EXPECT().GetActionneur(gomock.Any(), model.Snowflake(42)).
		Return(&model.Actionneur{ID: 42, Username: "alice"}, nil)
	w := env.do(http.MethodPost, "/courses", env.token(t, "42"), `{}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	env.repo.EXPECT().GetActionneur(gomock.Any(), model.Snowflake(7)).
		Return(&model.Actionneur{ID: 7, Username: "root", IsAdmin: true}, nil)
	w = env.do(http.MethodPost, "/courses", env.token(t, "7"), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.repo.EXPECT().GetActionneur(gomock.Any(), model.Snowflake(7)).
		Return(&model.Actionneur{ID: 7, Username: "root", IsAdmin: true}, nil)
	w = env.do(http.MethodDelete, "/actionneurs/abc", env.token(t, "7"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id", errorBody(t, w))
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	env.repo.EXPECT().GetActionneur(gomock.Any(), model.Snowflake(7)).
		Return(&model.Actionneur{ID: 7, Username: "root", IsAdmin: true}, nil)

	w := env.do(http.MethodGet, "/auth/me", env.token(t, "7"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"7","username":"root","is_actionneur":true,"is_admin":true}`, w.Body.String())
}

func TestMePlainUser(t *testing.T) {
	env := newTestEnv(t)
	env.repo.EXPECT().GetActionneur(gomock.Any(), model.Snowflake(9)).Return(nil, pgx.ErrNoRows)

	w := env.do(http.MethodGet, "/auth/me", env.token(t, "9"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"9","username":null,"is_actionneur":false,"is_admin":false}`, w.Body.String())
}

func TestLoginRateLimited(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/token", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request", errorBody(t, w))

	w = env.do(http.MethodPost, "/auth/token", "", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestInvalidIDParam(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/charbons/abc", "/charbons/0", "/announcements/-1", "/exercises/x"} {
		w := env.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/charbons", nil)
	req.Header.Set("Origin", "https://pls.example.org")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://pls.example.org", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")

	req = httptest.NewRequest(http.MethodOptions, "/charbons", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestOperationalEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w = env.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, w.Body.String())

	w = env.do(http.MethodGet, "/openapi.json", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/charbons/{id}")
	assert.Contains(t, w.Body.String(), `"description": "Backend of the PLS student organisation."`)

	w = env.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `plsapi_http_requests_total{method="GET",route="/ping",status="200"} 1`)
}

func TestHealthzDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", Healthz(fakePinger{err: errors.New("connection refused")}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"degraded","database":"down"}`, w.Body.String())
}

func TestOptionalUser(t *testing.T) {
	env := newTestEnv(t)
	gate := service.NewGate(env.codec, env.repo)

	r := gin.New()
	r.GET("/", OptionalUser(gate), func(c *gin.Context) {
		subject, _ := GetAuthSubject(c)
		c.String(http.StatusOK, subject)
	})

	send := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := send(env.token(t, "42"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())

	w = send("garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = send("")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
