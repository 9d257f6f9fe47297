package models

import "time"

// DateLayout is the calendar-day key used by daily streak rows (UTC).
const DateLayout = "2006-01-02"

type DailyStreak struct {
	ID                 string `json:"id"`
	UserID             string `json:"user_id"`
	Date               string `json:"date"`
	ExercisesCompleted int    `json:"exercises_completed"`
	TotalTime          int    `json:"total_time"` // minutes
}

// DayKey formats t as the UTC calendar day.
func DayKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
