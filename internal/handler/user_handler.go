/**
* Name: 			user_handler.go
* Description: 		프로필, 사용자 설정, 대시보드 핸들러
* Workflow: 		JWT의 user_id로 조회 -> 검증 후 갱신
 */
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"BrainTrainer/internal/models"
	"BrainTrainer/internal/storage"

	"github.com/gin-gonic/gin"
)

const (
	recommendedCount = 4
	maxDailyGoal     = 24 * 60
)

type ProfileResponse struct {
	User             models.User             `json:"user"`
	CognitiveProfile models.CognitiveProfile `json:"cognitive_profile"`
}

// PreferencesRequest updates only the fields that are present.
type PreferencesRequest struct {
	PreferredCategories []models.Category  `json:"preferred_categories" example:"memory,focus"`
	PreferredDifficulty *models.Difficulty `json:"preferred_difficulty" example:"medium"`
	DailyGoalMinutes    *int               `json:"daily_goal_minutes" example:"15"`
	ReminderEnabled     *bool              `json:"reminder_enabled" example:"true"`
	ReminderTime        *string            `json:"reminder_time" example:"09:00"`
	Theme               *models.Theme      `json:"theme" example:"dark"`
}

type DashboardResponse struct {
	User                 models.User             `json:"user"`
	CognitiveProfile     models.CognitiveProfile `json:"cognitive_profile"`
	RecommendedExercises []models.Exercise       `json:"recommended_exercises"`
	LearningContent      *models.LearningContent `json:"learning_content"`
	LatestCoachMessage   *models.ChatMessage     `json:"latest_coach_message"`
}

// GetProfile godoc
// @Summary      프로필 조회 (Profile)
// @Description  인증된 사용자의 계정 정보와 인지 프로필을 조회합니다. (JWT 필요)
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.ProfileResponse
// @Failure      401 {object} handler.ErrorResponse "인증 토큰 누락 또는 만료"
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()
	user, err := h.store.GetUserByID(ctx, userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	profile, err := h.store.GetCognitiveProfile(ctx, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{User: user, CognitiveProfile: profile})
}

// UpdateProfile godoc
// @Summary      프로필 수정
// @Description  이름과 아바타 URL을 수정합니다.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.UserProfile true "수정할 프로필"
// @Success      200 {object} models.User
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req models.UserProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.AvatarURL = strings.TrimSpace(req.AvatarURL)

	ctx := c.Request.Context()
	if err := h.store.UpdateUserProfile(ctx, userID(c), req); err != nil {
		h.respondError(c, err)
		return
	}
	user, err := h.store.GetUserByID(ctx, userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetPreferences godoc
// @Summary      사용자 설정 조회
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.UserPreference
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/preferences [get]
func (h *Handler) GetPreferences(c *gin.Context) {
	prefs, err := h.store.GetPreferences(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences godoc
// @Summary      사용자 설정 수정
// @Description  요청에 포함된 항목만 수정합니다. reminder_time은 HH:MM 또는 HH:MM:SS 형식입니다.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.PreferencesRequest true "수정할 설정"
// @Success      200 {object} models.UserPreference
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/preferences [put]
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()
	prefs, err := h.store.GetPreferences(ctx, userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := req.apply(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.UpdatePreferences(ctx, prefs); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (req PreferencesRequest) apply(p *models.UserPreference) error {
	if req.PreferredCategories != nil {
		if len(req.PreferredCategories) == 0 {
			return errors.New("at least one preferred category is required")
		}
		for _, cat := range req.PreferredCategories {
			if !cat.Valid() {
				return fmt.Errorf("unknown category %q", cat)
			}
		}
		p.PreferredCategories = req.PreferredCategories
	}
	if req.PreferredDifficulty != nil {
		if !req.PreferredDifficulty.Valid() {
			return fmt.Errorf("unknown difficulty %q", *req.PreferredDifficulty)
		}
		p.PreferredDifficulty = *req.PreferredDifficulty
	}
	if req.DailyGoalMinutes != nil {
		if *req.DailyGoalMinutes <= 0 || *req.DailyGoalMinutes > maxDailyGoal {
			return errors.New("daily_goal_minutes must be between 1 and 1440")
		}
		p.DailyGoalMinutes = *req.DailyGoalMinutes
	}
	if req.ReminderEnabled != nil {
		p.ReminderEnabled = *req.ReminderEnabled
	}
	if req.ReminderTime != nil {
		t, err := normalizeClock(*req.ReminderTime)
		if err != nil {
			return err
		}
		p.ReminderTime = t
	}
	if req.Theme != nil {
		if !req.Theme.Valid() {
			return fmt.Errorf("unknown theme %q", *req.Theme)
		}
		p.Theme = *req.Theme
	}
	return nil
}

// normalizeClock accepts HH:MM or HH:MM:SS and returns HH:MM:SS. Empty clears.
func normalizeClock(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("invalid reminder_time %q", v)
}

// Dashboard godoc
// @Summary      대시보드
// @Description  사용자 통계, 인지 프로필, 추천 연습 4개, 최신 학습 콘텐츠, 최근 코치 메시지를 한 번에 반환합니다.
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.DashboardResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	id := userID(c)

	var resp DashboardResponse
	var err error
	if resp.User, err = h.store.GetUserByID(ctx, id); err != nil {
		h.respondError(c, err)
		return
	}
	if resp.CognitiveProfile, err = h.store.GetCognitiveProfile(ctx, id); err != nil {
		h.respondError(c, err)
		return
	}

	filter := storage.ExerciseFilter{Limit: recommendedCount}
	if prefs, err := h.store.GetPreferences(ctx, id); err == nil {
		filter.Categories = prefs.PreferredCategories
		filter.Difficulty = prefs.PreferredDifficulty
	}
	if resp.RecommendedExercises, err = h.store.ListExercises(ctx, filter); err != nil {
		h.respondError(c, err)
		return
	}
	// 선호 조건에 맞는 연습이 없으면 전체 목록에서 추천
	if len(resp.RecommendedExercises) == 0 {
		if resp.RecommendedExercises, err = h.store.ListExercises(ctx, storage.ExerciseFilter{Limit: recommendedCount}); err != nil {
			h.respondError(c, err)
			return
		}
	}

	if lc, err := h.store.LatestLearningContent(ctx); err == nil {
		resp.LearningContent = &lc
	} else if !errors.Is(err, storage.ErrNotFound) {
		h.respondError(c, err)
		return
	}
	if msg, err := h.store.LatestAssistantMessage(ctx, id); err == nil {
		resp.LatestCoachMessage = &msg
	} else if !errors.Is(err, storage.ErrNotFound) {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
