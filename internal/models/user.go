package models

import "time"

// 회원 사용자 모델, 누적 통계 포함
type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Username           string    `json:"username"`
	PasswordHash       string    `json:"-"`
	FullName           string    `json:"full_name"`
	AvatarURL          string    `json:"avatar_url"`
	BrainHealthScore   int       `json:"brain_health_score"`
	CurrentStreak      int       `json:"current_streak"`
	ExercisesCompleted int       `json:"exercises_completed"`
	TotalTimeSpent     int       `json:"total_time_spent"` // minutes
	LastActive         time.Time `json:"last_active"`
	CreatedAt          time.Time `json:"created_at"`
}

// 프로필 수정 요청에 쓰이는 필드
type UserProfile struct {
	FullName  string `json:"full_name" example:"Hong Gildong"`
	AvatarURL string `json:"avatar_url" example:"https://example.com/a.png"`
}

// Initial values for a newly registered user.
const (
	DefaultBrainHealthScore = 50
	DefaultCategoryScore    = 50
)
