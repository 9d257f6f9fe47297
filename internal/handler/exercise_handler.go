/**
* Name: 			exercise_handler.go
* Description: 		연습 목록 조회, 라운드 발급, 라운드 제출(서버 채점) 핸들러
* Workflow: 		GET /exercises -> POST /exercises/:id/rounds -> POST /rounds/:round_id/{memory|focus|puzzles}
 */
package handler

import (
	"fmt"
	"net/http"
	"strings"

	"BrainTrainer/internal/exercise"
	"BrainTrainer/internal/models"
	"BrainTrainer/internal/observability"
	"BrainTrainer/internal/storage"

	"github.com/gin-gonic/gin"
)

const (
	defaultExerciseLimit = 10
	maxExerciseLimit     = 50
)

type StartRoundRequest struct {
	Level int `json:"level" example:"1"` // memory grid only
}

type MemorySubmission struct {
	Selected []int `json:"selected" example:"0,6,12"`
}

type FocusSubmission struct {
	Responses      []exercise.FocusResponse `json:"responses"`
	ElapsedSeconds int                      `json:"elapsed_seconds" example:"58"`
}

type PuzzleSubmission struct {
	Answers []exercise.PuzzleAnswer `json:"answers"`
}

// ListExercises godoc
// @Summary      연습 목록 조회
// @Description  category(쉼표 구분), difficulty, limit(기본 10, 최대 50)으로 필터링합니다.
// @Description  필터가 없으면 사용자의 선호 카테고리/난이도를 사용합니다.
// @Tags         Exercise
// @Produce      json
// @Security     BearerAuth
// @Param        category   query string false "memory,focus,..."
// @Param        difficulty query string false "easy | medium | hard"
// @Param        limit      query int    false "최대 개수"
// @Success      200 {array} models.Exercise
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/exercises [get]
func (h *Handler) ListExercises(c *gin.Context) {
	filter := storage.ExerciseFilter{Limit: queryLimit(c, defaultExerciseLimit, maxExerciseLimit)}

	if raw := c.Query("category"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			cat := models.Category(strings.TrimSpace(part))
			if !cat.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown category %q", cat)})
				return
			}
			filter.Categories = append(filter.Categories, cat)
		}
	}
	if raw := c.Query("difficulty"); raw != "" {
		filter.Difficulty = models.Difficulty(raw)
		if !filter.Difficulty.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown difficulty %q", raw)})
			return
		}
	}

	ctx := c.Request.Context()
	if len(filter.Categories) == 0 && filter.Difficulty == "" {
		if prefs, err := h.store.GetPreferences(ctx, userID(c)); err == nil {
			filter.Categories = prefs.PreferredCategories
			filter.Difficulty = prefs.PreferredDifficulty
		}
	}

	exercises, err := h.store.ListExercises(ctx, filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise godoc
// @Summary      연습 상세 조회
// @Tags         Exercise
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "연습 ID"
// @Success      200 {object} models.Exercise
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/exercises/{id} [get]
func (h *Handler) GetExercise(c *gin.Context) {
	ex, err := h.store.GetExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

// StartRound godoc
// @Summary      라운드 발급
// @Description  연습 종류에 맞는 라운드(기억 그리드, 집중력 시퀀스, 퍼즐 세트)를 발급합니다. 정답은 서버에만 보관됩니다.
// @Tags         Exercise
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                    true  "연습 ID"
// @Param        request body handler.StartRoundRequest false "기억 그리드 레벨"
// @Success      200 {object} exercise.Round
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      409 {object} handler.ErrorResponse "서버 채점이 없는 연습"
// @Router       /api/exercises/{id}/rounds [post]
func (h *Handler) StartRound(c *gin.Context) {
	var req StartRoundRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}
	if req.Level == 0 {
		req.Level = 1
	}

	ctx := c.Request.Context()
	ex, err := h.store.GetExercise(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	var round *exercise.Round
	switch ex.Kind {
	case models.KindMemoryGrid:
		round, err = h.exercises.StartMemory(ctx, userID(c), ex.ID, req.Level)
	case models.KindFocusCPT:
		round, err = h.exercises.StartFocus(ctx, userID(c), ex.ID)
	case models.KindLogicPuzzle:
		round, err = h.exercises.StartPuzzles(ctx, userID(c), ex.ID)
	default:
		err = exercise.ErrWrongKind
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	observability.RecordRoundIssued(string(round.Kind))
	c.JSON(http.StatusOK, round)
}

// SubmitMemory godoc
// @Summary      기억 그리드 제출
// @Tags         Exercise
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        round_id path string                   true "라운드 ID"
// @Param        request  body handler.MemorySubmission true "선택한 셀 (0..24)"
// @Success      200 {object} exercise.MemoryResult
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse "라운드 없음/만료/이미 채점됨"
// @Router       /api/rounds/{round_id}/memory [post]
func (h *Handler) SubmitMemory(c *gin.Context) {
	var req MemorySubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	result, err := h.exercises.SubmitMemory(userID(c), c.Param("round_id"), req.Selected)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitFocus godoc
// @Summary      집중력 테스트 제출
// @Tags         Exercise
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        round_id path string                  true "라운드 ID"
// @Param        request  body handler.FocusSubmission true "자극별 응답"
// @Success      200 {object} exercise.FocusResult
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/rounds/{round_id}/focus [post]
func (h *Handler) SubmitFocus(c *gin.Context) {
	var req FocusSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	result, err := h.exercises.SubmitFocus(userID(c), c.Param("round_id"), req.Responses, req.ElapsedSeconds)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitPuzzles godoc
// @Summary      논리 퍼즐 제출
// @Tags         Exercise
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        round_id path string                   true "라운드 ID"
// @Param        request  body handler.PuzzleSubmission true "퍼즐별 답안"
// @Success      200 {object} exercise.PuzzleResult
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/rounds/{round_id}/puzzles [post]
func (h *Handler) SubmitPuzzles(c *gin.Context) {
	var req PuzzleSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	result, err := h.exercises.SubmitPuzzles(userID(c), c.Param("round_id"), req.Answers)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
