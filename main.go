package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/plsapi/backend/internal/client"
	"github.com/plsapi/backend/internal/config"
	"github.com/plsapi/backend/internal/db"
	"github.com/plsapi/backend/internal/handler"
	"github.com/plsapi/backend/internal/logging"
	"github.com/plsapi/backend/internal/metrics"
	"github.com/plsapi/backend/internal/service"
	"github.com/plsapi/backend/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title PLSapi
// @version 1.0
// @description Backend of the PLS student organisation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.Init(cfg.Log.Level)
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. DB 연결 및 마이그레이션
	if cfg.Postgres.RunMigrations {
		if err := db.Migrate(cfg.Postgres.DatabaseURL, logger); err != nil {
			return err
		}
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()
	pg := &db.Postgres{Pool: pool}

	// 2. 메트릭
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewCollector(reg)

	// 3. 외부 클라이언트 및 서비스
	codec, err := service.NewTokenCodec(cfg.Auth.SecretKey, cfg.Auth.Algorithm)
	if err != nil {
		return err
	}
	discord := client.NewDiscordClient(cfg.Discord)
	youtube := client.NewYouTubeClient(cfg.YouTube)
	durations := service.NewDurationResolver(youtube, cfg.YouTube.CacheSize, cfg.YouTube.CacheTTL, m, logger)

	store, err := storage.New(cfg.Storage.Root)
	if err != nil {
		return err
	}

	authSvc, err := service.NewAuthService(discord, codec, pg, cfg, logger, m)
	if err != nil {
		return err
	}
	defer authSvc.Wait()

	if err := authSvc.EnsureAdmin(ctx, cfg.Auth.BootstrapAdminID, cfg.Auth.BootstrapAdminUsername); err != nil {
		return err
	}

	limiter := handler.NewLoginRateLimiter(cfg.Server.LoginRatePerMinute, cfg.Server.LoginBurst)
	defer limiter.Stop()

	// 4. 라우터
	router := handler.NewRouter(&handler.RouterDeps{
		Logger:      logger,
		Metrics:     m,
		Gatherer:    reg,
		Health:      pg,
		Gate:        service.NewGate(codec, pg),
		LoginLimit:  limiter,
		CORSOrigins: cfg.Server.CORSAllowedOrigins,

		Auth:           handler.NewAuthHandler(authSvc),
		Charbons:       handler.NewCharbonHandler(service.NewCharbonService(pg, durations)),
		Courses:        handler.NewCourseHandler(service.NewCourseService(pg)),
		Announcements:  handler.NewAnnouncementHandler(service.NewAnnouncementService(pg)),
		ExerciseTopics: handler.NewExerciseTopicHandler(service.NewExerciseTopicService(pg, store, logger)),
		Exercises:      handler.NewExerciseHandler(service.NewExerciseService(pg, store, logger)),
		Actionneurs:    handler.NewActionneurHandler(service.NewActionneurService(pg)),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
