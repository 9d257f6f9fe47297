package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"BrainTrainer/docs"
	"BrainTrainer/internal/auth"
	"BrainTrainer/internal/catalog"
	"BrainTrainer/internal/coach"
	"BrainTrainer/internal/config"
	"BrainTrainer/internal/exercise"
	"BrainTrainer/internal/handler"
	"BrainTrainer/internal/llm"
	"BrainTrainer/internal/logger"
	"BrainTrainer/internal/middleware"
	"BrainTrainer/internal/progress"
	"BrainTrainer/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// @title           BrainTrainer API
// @version         1.0
// @description     두뇌 훈련 서비스 API (연습 채점, 진행 현황, AI 코치)
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Bearer " 뒤에 JWT 토큰을 입력하세요.
func main() {
	cfg := config.Load()

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer appLog.Sync()

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		appLog.Fatal("failed to open database", "path", cfg.DatabasePath, "error", err)
	}
	defer store.Close()

	cat, err := catalog.Load()
	if err != nil {
		appLog.Fatal("failed to load exercise catalog", "error", err)
	}
	if cfg.SeedCatalog {
		exercises, articles, err := cat.Seed(context.Background(), store)
		if err != nil {
			appLog.Fatal("failed to seed catalog", "error", err)
		}
		appLog.Info("catalog seeded", "exercises", exercises, "learning_content", articles)
	}

	tokens, usedDefault := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	if usedDefault {
		appLog.Warn("JWT_SECRET_KEY is not set, using the development default")
	}
	if cfg.LLMAPIKey == "" {
		appLog.Warn("LLM_API_KEY is not set, coach requests will fail")
	}

	h := handler.New(
		store,
		tokens,
		progress.NewService(store),
		exercise.NewService(store, cat, exercise.NewSessions(cfg.RoundTTL), nil),
		coach.NewService(store, llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout), appLog),
		appLog,
		handler.Options{
			SignupInviteCode:   cfg.SignupInviteCode,
			CoachRatePerMinute: cfg.CoachRatePerMinute,
		},
	)

	if cfg.LogMode == "prod" || cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(appLog), middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Invite-Code")
	router.Use(cors.New(corsConfig))

	docs.SwaggerInfo.Host = ""
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	h.Register(router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLog.Info("server listening", "addr", cfg.HTTPAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("graceful shutdown failed", "error", err)
	}
}
