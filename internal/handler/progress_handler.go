/**
* Name: 			progress_handler.go
* Description: 		연습 완료 기록, 진행 현황, 업적, 목표, 학습 콘텐츠 핸들러
* Workflow: 		POST /complete-exercise -> progress.Service (단일 트랜잭션) -> 요약 응답
 */
package handler

import (
	"net/http"
	"strings"
	"time"

	"BrainTrainer/internal/models"
	"BrainTrainer/internal/observability"
	"BrainTrainer/internal/progress"

	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type GoalRequest struct {
	Title       string          `json:"title" example:"Train every day"`
	Description string          `json:"description" example:"Keep the streak going for a week"`
	TargetValue int             `json:"target_value" example:"7"`
	GoalType    models.GoalType `json:"goal_type" example:"streak"`
	EndDate     *string         `json:"end_date" example:"2025-12-31"`
}

// CompleteExercise godoc
// @Summary      연습 완료 기록
// @Description  기록 저장, 사용자 통계/스트릭/인지 프로필/목표 갱신을 하나의 트랜잭션으로 처리합니다.
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body progress.CompleteInput true "완료 결과"
// @Success      200 {object} progress.CompletionSummary
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse "연습 없음"
// @Router       /api/complete-exercise [post]
func (h *Handler) CompleteExercise(c *gin.Context) {
	var req progress.CompleteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	summary, err := h.progress.CompleteExercise(c.Request.Context(), userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	observability.RecordCompletion(string(summary.Category))
	h.log.Info("exercise completed",
		"user_id", userID(c),
		"exercise_id", req.ExerciseID,
		"score", summary.Record.Score,
		"streak", summary.CurrentStreak,
	)
	c.JSON(http.StatusOK, summary)
}

// Progress godoc
// @Summary      진행 현황
// @Description  인지 프로필, 최근 30일 스트릭, 최근 50개 기록, 카테고리별 평균 점수
// @Tags         Progress
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} progress.Overview
// @Router       /api/progress [get]
func (h *Handler) Progress(c *gin.Context) {
	overview, err := h.progress.Overview(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// History godoc
// @Summary      연습 기록 조회
// @Tags         Progress
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "최대 개수 (기본 20, 최대 100)"
// @Success      200 {array} models.ExerciseHistory
// @Router       /api/history [get]
func (h *Handler) History(c *gin.Context) {
	rows, err := h.store.ListHistory(c.Request.Context(), userID(c), queryLimit(c, defaultHistoryLimit, maxHistoryLimit))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if rows == nil {
		rows = []models.ExerciseHistory{}
	}
	c.JSON(http.StatusOK, rows)
}

// Achievements godoc
// @Summary      업적 조회
// @Tags         Progress
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} progress.AchievementStatus
// @Router       /api/achievements [get]
func (h *Handler) Achievements(c *gin.Context) {
	statuses, err := h.progress.Achievements(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// ListGoals godoc
// @Summary      목표 목록
// @Description  마감일 순 (마감일 없는 목표는 마지막)
// @Tags         Goals
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.UserGoal
// @Router       /api/goals [get]
func (h *Handler) ListGoals(c *gin.Context) {
	goals, err := h.store.ListGoals(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if goals == nil {
		goals = []models.UserGoal{}
	}
	c.JSON(http.StatusOK, goals)
}

// CreateGoal godoc
// @Summary      목표 생성
// @Description  goal_type: streak | score | exercises | time. 현재 값은 사용자 통계로 채워집니다.
// @Tags         Goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.GoalRequest true "목표"
// @Success      200 {object} models.UserGoal
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/goals [post]
func (h *Handler) CreateGoal(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	switch {
	case req.Title == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	case req.TargetValue <= 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_value must be positive"})
		return
	case !req.GoalType.Valid():
		c.JSON(http.StatusBadRequest, gin.H{"error": "goal_type must be one of streak, score, exercises, time"})
		return
	}
	if req.EndDate != nil {
		if _, err := time.Parse(models.DateLayout, *req.EndDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
	}

	ctx := c.Request.Context()
	user, err := h.store.GetUserByID(ctx, userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	goal := models.UserGoal{
		UserID:       user.ID,
		Title:        req.Title,
		Description:  strings.TrimSpace(req.Description),
		TargetValue:  req.TargetValue,
		CurrentValue: progress.MetricValue(user, progress.Metric(req.GoalType)),
		GoalType:     req.GoalType,
		EndDate:      req.EndDate,
	}
	if goal.CurrentValue >= goal.TargetValue {
		now := time.Now().UTC()
		goal.Completed = true
		goal.CompletedAt = &now
	}

	created, err := h.store.CreateGoal(ctx, goal)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// DeleteGoal godoc
// @Summary      목표 삭제
// @Tags         Goals
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "목표 ID"
// @Success      200 {object} handler.SuccessResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/goals/{id} [delete]
func (h *Handler) DeleteGoal(c *gin.Context) {
	if err := h.store.DeleteGoal(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Goal deleted"})
}

// LatestLearning godoc
// @Summary      최신 학습 콘텐츠
// @Tags         Learning
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.LearningContent
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/learning/latest [get]
func (h *Handler) LatestLearning(c *gin.Context) {
	lc, err := h.store.LatestLearningContent(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lc)
}

// CompleteLearning godoc
// @Summary      학습 콘텐츠 완료 표시
// @Tags         Learning
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "콘텐츠 ID"
// @Success      200 {object} models.UserLearning
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/learning/{id}/complete [post]
func (h *Handler) CompleteLearning(c *gin.Context) {
	ul, err := h.store.MarkLearningComplete(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ul)
}
