package models

import "time"

// 오늘의 학습 콘텐츠
type LearningContent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	ReadingTime int       `json:"reading_time"` // minutes
	CreatedAt   time.Time `json:"created_at"`
}

type UserLearning struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	LearningContentID string     `json:"learning_content_id"`
	Completed         bool       `json:"completed"`
	CompletedAt       *time.Time `json:"completed_at"`
}
