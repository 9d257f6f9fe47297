/**
* Name: 			handler.go
* Description: 		Gin HTTP 핸들러 공통 구조체, 라우트 등록, 에러 응답 매핑
* Workflow: 		New -> Register (공개/보호 그룹/웹소켓) -> 각 핸들러
 */
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"BrainTrainer/internal/auth"
	"BrainTrainer/internal/coach"
	"BrainTrainer/internal/exercise"
	"BrainTrainer/internal/logger"
	"BrainTrainer/internal/middleware"
	"BrainTrainer/internal/models"
	"BrainTrainer/internal/progress"
	"BrainTrainer/internal/storage"

	"github.com/gin-gonic/gin"
)

// Store is the persistence surface the handlers read and write directly.
type Store interface {
	CreateUser(ctx context.Context, email, username, passwordHash, fullName string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateUserProfile(ctx context.Context, userID string, profile models.UserProfile) error
	GetCognitiveProfile(ctx context.Context, userID string) (models.CognitiveProfile, error)
	GetPreferences(ctx context.Context, userID string) (models.UserPreference, error)
	UpdatePreferences(ctx context.Context, p models.UserPreference) error
	GetExercise(ctx context.Context, id string) (models.Exercise, error)
	ListExercises(ctx context.Context, filter storage.ExerciseFilter) ([]models.Exercise, error)
	ListHistory(ctx context.Context, userID string, limit int) ([]models.ExerciseHistory, error)
	CreateGoal(ctx context.Context, g models.UserGoal) (models.UserGoal, error)
	ListGoals(ctx context.Context, userID string) ([]models.UserGoal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
	LatestLearningContent(ctx context.Context) (models.LearningContent, error)
	MarkLearningComplete(ctx context.Context, userID, contentID string) (models.UserLearning, error)
	LatestAssistantMessage(ctx context.Context, userID string) (models.ChatMessage, error)
}

type Options struct {
	SignupInviteCode   string
	CoachRatePerMinute int
}

type Handler struct {
	store     Store
	tokens    *auth.TokenManager
	progress  *progress.Service
	exercises *exercise.Service
	coach     *coach.Service
	log       *logger.Logger
	opts      Options

	// shared by POST /api/coach and /ws/coach
	coachLimit *middleware.UserLimiter
}

func New(store Store, tokens *auth.TokenManager, progress *progress.Service, exercises *exercise.Service, coach *coach.Service, log *logger.Logger, opts Options) *Handler {
	return &Handler{
		store:     store,
		tokens:    tokens,
		progress:  progress,
		exercises: exercises,
		coach:     coach,
		log:       log,
		opts:      opts,

		coachLimit: middleware.NewUserLimiter("coach", opts.CoachRatePerMinute),
	}
}

// Register mounts every route on r.
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/signup", middleware.InviteCodeMiddleware(h.opts.SignupInviteCode), h.Signup)
	r.POST("/login", h.Login)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(h.tokens))
	{
		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.UpdateProfile)
		api.GET("/preferences", h.GetPreferences)
		api.PUT("/preferences", h.UpdatePreferences)
		api.GET("/dashboard", h.Dashboard)

		api.GET("/exercises", h.ListExercises)
		api.GET("/exercises/:id", h.GetExercise)
		api.POST("/exercises/:id/rounds", h.StartRound)
		api.POST("/rounds/:round_id/memory", h.SubmitMemory)
		api.POST("/rounds/:round_id/focus", h.SubmitFocus)
		api.POST("/rounds/:round_id/puzzles", h.SubmitPuzzles)
		api.POST("/complete-exercise", h.CompleteExercise)

		api.GET("/progress", h.Progress)
		api.GET("/history", h.History)
		api.GET("/achievements", h.Achievements)

		api.GET("/goals", h.ListGoals)
		api.POST("/goals", h.CreateGoal)
		api.DELETE("/goals/:id", h.DeleteGoal)

		api.GET("/learning/latest", h.LatestLearning)
		api.POST("/learning/:id/complete", h.CompleteLearning)

		api.POST("/coach", middleware.PerUserRateLimit(h.coachLimit), h.AskCoach)
		api.GET("/coach/messages", h.CoachMessages)
	}

	r.GET("/ws/coach", h.HandleCoachConnection)
}

type SuccessResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

func userID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// respondError maps domain errors to a status code and writes {"error": msg}.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, exercise.ErrRoundNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrUsernameExists), errors.Is(err, storage.ErrEmailExists),
		errors.Is(err, exercise.ErrWrongKind):
		status = http.StatusConflict
	case errors.Is(err, progress.ErrInvalidInput), errors.Is(err, exercise.ErrInvalidSubmission),
		errors.Is(err, coach.ErrEmptyMessage), errors.Is(err, coach.ErrMessageTooLong):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", "path", c.FullPath(), "user_id", userID(c), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// queryLimit reads ?limit=, falling back to def and capping at max.
func queryLimit(c *gin.Context, def, maxN int) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 {
		return def
	}
	return min(n, maxN)
}
