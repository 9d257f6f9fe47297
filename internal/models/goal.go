package models

import "time"

type GoalType string

const (
	GoalStreak    GoalType = "streak"
	GoalScore     GoalType = "score"
	GoalExercises GoalType = "exercises"
	GoalTime      GoalType = "time"
)

func (g GoalType) Valid() bool {
	switch g {
	case GoalStreak, GoalScore, GoalExercises, GoalTime:
		return true
	}
	return false
}

type UserGoal struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	TargetValue  int        `json:"target_value"`
	CurrentValue int        `json:"current_value"`
	GoalType     GoalType   `json:"goal_type"`
	StartDate    string     `json:"start_date"`
	EndDate      *string    `json:"end_date"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at"`
}
