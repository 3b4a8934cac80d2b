package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/plsapi/backend/internal/metrics"
	"github.com/plsapi/backend/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// RouterDeps carries everything NewRouter wires into routes.
type RouterDeps struct {
	Logger      *slog.Logger
	Metrics     *metrics.Collector
	Gatherer    prometheus.Gatherer
	Health      Pinger
	Gate        *service.Gate
	LoginLimit  *LoginRateLimiter
	CORSOrigins []string

	Auth           *AuthHandler
	Charbons       *CharbonHandler
	Courses        *CourseHandler
	Announcements  *AnnouncementHandler
	ExerciseTopics *ExerciseTopicHandler
	Exercises      *ExerciseHandler
	Actionneurs    *ActionneurHandler
}

func NewRouter(deps *RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(MetricsMiddleware(deps.Metrics))
	r.Use(CORSMiddleware(deps.CORSOrigins, true))

	r.GET("/ping", Ping)
	r.GET("/", Root)
	r.GET("/healthz", Healthz(deps.Health))
	r.GET("/openapi.json", OpenAPIDoc)
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	user := RequireUser(deps.Gate)
	actionneur := RequireActionneur(deps.Gate)
	admin := RequireAdmin(deps.Gate)

	// 인증
	auth := r.Group("/auth")
	if deps.LoginLimit != nil {
		auth.POST("/token", deps.LoginLimit.Middleware(), deps.Auth.Login)
	} else {
		auth.POST("/token", deps.Auth.Login)
	}
	auth.GET("/me", user, deps.Auth.Me)

	// 공개 조회
	public := r.Group("/", OptionalUser(deps.Gate))
	{
		public.GET("/charbons", deps.Charbons.List)
		public.GET("/charbons/:id", deps.Charbons.Get)
		public.GET("/courses", deps.Courses.List)
		public.GET("/courses/:id", deps.Courses.Get)
		public.GET("/announcements", deps.Announcements.List)
		public.GET("/announcements/:id", deps.Announcements.Get)
		public.GET("/exercise_topics", deps.ExerciseTopics.List)
		public.GET("/exercise_topics/:id", deps.ExerciseTopics.Get)
		public.GET("/exercises", deps.Exercises.List)
		public.GET("/exercises/:id", deps.Exercises.Get)
		public.GET("/actionneurs", deps.Actionneurs.List)
	}

	// 액셔너 전용
	writers := r.Group("/", user, actionneur)
	{
		writers.POST("/charbons", deps.Charbons.Create)
		writers.PUT("/charbons/:id", deps.Charbons.Update)
		writers.DELETE("/charbons/:id", deps.Charbons.Delete)

		writers.POST("/announcements", deps.Announcements.Create)
		writers.PUT("/announcements/:id", deps.Announcements.Update)
		writers.DELETE("/announcements/:id", deps.Announcements.Delete)

		writers.POST("/exercise_topics", deps.ExerciseTopics.Create)
		writers.PUT("/exercise_topics/:id", deps.ExerciseTopics.Update)
		writers.DELETE("/exercise_topics/:id", deps.ExerciseTopics.Delete)

		writers.POST("/exercises", deps.Exercises.Create)
		writers.DELETE("/exercises/:id", deps.Exercises.Delete)
	}

	// 관리자 전용
	admins := r.Group("/", user, actionneur, admin)
	{
		admins.POST("/courses", deps.Courses.Create)
		admins.PUT("/courses/:id", deps.Courses.Update)

		admins.POST("/actionneurs", deps.Actionneurs.Create)
		admins.DELETE("/actionneurs/:id", deps.Actionneurs.Delete)
	}

	return r
}
