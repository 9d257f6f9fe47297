/**
* Name: 			coach_handler.go
* Description: 		AI 브레인 코치 HTTP 핸들러
* Workflow: 		메시지 수신 -> coach.Ask (저장/LLM 호출) -> 답변 반환
 */
package handler

import (
	"net/http"

	"BrainTrainer/internal/models"
	"BrainTrainer/internal/observability"

	"github.com/gin-gonic/gin"
)

const (
	defaultCoachHistory = 50
	maxCoachHistory     = 200
)

type CoachRequest struct {
	Message string `json:"message" example:"How can I improve my focus?"`
}

type CoachResponse struct {
	Response string             `json:"response" example:"Try the focus test daily..."`
	Message  models.ChatMessage `json:"message"`
}

// AskCoach godoc
// @Summary      AI 코치에게 질문
// @Description  인지 프로필과 최근 연습 기록을 컨텍스트로 LLM에 전달합니다. 사용자별 분당 요청 수가 제한됩니다.
// @Tags         Coach
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.CoachRequest true "질문"
// @Success      200 {object} handler.CoachResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse "요청 한도 초과"
// @Failure      500 {object} handler.ErrorResponse "LLM 호출 실패"
// @Router       /api/coach [post]
func (h *Handler) AskCoach(c *gin.Context) {
	var req CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reply, err := h.coach.Ask(c.Request.Context(), userID(c), req.Message)
	observability.RecordCoachRequest(err == nil)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CoachResponse{Response: reply.Content, Message: reply})
}

// CoachMessages godoc
// @Summary      코치 대화 기록
// @Description  오래된 순으로 정렬된 최근 메시지
// @Tags         Coach
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "최대 개수 (기본 50, 최대 200)"
// @Success      200 {array} models.ChatMessage
// @Router       /api/coach/messages [get]
func (h *Handler) CoachMessages(c *gin.Context) {
	msgs, err := h.coach.History(c.Request.Context(), userID(c), queryLimit(c, defaultCoachHistory, maxCoachHistory))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	c.JSON(http.StatusOK, msgs)
}
