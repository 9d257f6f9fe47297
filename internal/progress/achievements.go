package progress

import (
	"math"

	"BrainTrainer/internal/models"
)

// Metric is the user statistic an achievement or goal is measured against.
type Metric string

const (
	MetricStreak    Metric = "streak"
	MetricExercises Metric = "exercises"
	MetricTime      Metric = "time"
	MetricScore     Metric = "score"
)

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Metric      Metric `json:"category"`
	Requirement int    `json:"requirement"`
	XP          int    `json:"xp"`
}

type AchievementStatus struct {
	Achievement
	Current   int  `json:"current"`
	Progress  int  `json:"progress"` // percent, 0..100
	Completed bool `json:"completed"`
}

var Achievements = []Achievement{
	{ID: "streak-7", Title: "Week Warrior", Description: "Maintain a 7-day streak", Metric: MetricStreak, Requirement: 7, XP: 100},
	{ID: "streak-30", Title: "Monthly Master", Description: "Maintain a 30-day streak", Metric: MetricStreak, Requirement: 30, XP: 500},
	{ID: "exercises-10", Title: "Getting Started", Description: "Complete 10 exercises", Metric: MetricExercises, Requirement: 10, XP: 50},
	{ID: "exercises-50", Title: "Brain Enthusiast", Description: "Complete 50 exercises", Metric: MetricExercises, Requirement: 50, XP: 200},
	{ID: "exercises-100", Title: "Century Club", Description: "Complete 100 exercises", Metric: MetricExercises, Requirement: 100, XP: 500},
	{ID: "time-60", Title: "Hour of Power", Description: "Train for a total of 60 minutes", Metric: MetricTime, Requirement: 60, XP: 100},
	{ID: "time-300", Title: "Dedicated Mind", Description: "Train for a total of 5 hours", Metric: MetricTime, Requirement: 300, XP: 300},
	{ID: "score-70", Title: "Brain Booster", Description: "Reach a Brain Health Score of 70", Metric: MetricScore, Requirement: 70, XP: 200},
	{ID: "score-90", Title: "Cognitive Champion", Description: "Reach a Brain Health Score of 90", Metric: MetricScore, Requirement: 90, XP: 500},
}

// MetricValue reads the statistic m from the user's aggregate counters.
func MetricValue(u models.User, m Metric) int {
	switch m {
	case MetricStreak:
		return u.CurrentStreak
	case MetricExercises:
		return u.ExercisesCompleted
	case MetricTime:
		return u.TotalTimeSpent
	case MetricScore:
		return u.BrainHealthScore
	}
	return 0
}

// EvaluateAchievements computes progress on every achievement for u.
func EvaluateAchievements(u models.User) []AchievementStatus {
	out := make([]AchievementStatus, 0, len(Achievements))
	for _, a := range Achievements {
		current := MetricValue(u, a.Metric)
		pct := 0
		if a.Requirement > 0 {
			pct = int(math.Round(float64(current) / float64(a.Requirement) * 100))
		}
		out = append(out, AchievementStatus{
			Achievement: a,
			Current:     current,
			Progress:    min(100, max(0, pct)),
			Completed:   current >= a.Requirement,
		})
	}
	return out
}

// newlyEarned lists achievements completed in after but not in before.
func newlyEarned(before, after models.User) []Achievement {
	earned := []Achievement{}
	for _, a := range Achievements {
		if MetricValue(before, a.Metric) < a.Requirement && MetricValue(after, a.Metric) >= a.Requirement {
			earned = append(earned, a)
		}
	}
	return earned
}
