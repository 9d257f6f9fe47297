/**
* Name: 			service.go
* Description: 		연습 완료 처리 (기록, 통계, 스트릭, 인지 프로필, 목표) 및 진행 현황 조회
* Workflow: 		입력 검증 -> ApplyCompletion 트랜잭션 안에서 상태 갱신 -> 요약 반환
 */
package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"BrainTrainer/internal/models"
)

var ErrInvalidInput = errors.New("invalid completion input")

const (
	overviewStreakDays = 30
	overviewHistory    = 50
	// weight kept from the previous category score
	blendKeep = 0.7
	// upper bound on a submitted score
	maxScore = 1_000_000
)

type Store interface {
	ApplyCompletion(ctx context.Context, userID, exerciseID string, now time.Time, mutate func(*models.CompletionState) error) (models.CompletionState, error)
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	GetCognitiveProfile(ctx context.Context, userID string) (models.CognitiveProfile, error)
	ListStreaks(ctx context.Context, userID string, limit int) ([]models.DailyStreak, error)
	ListHistory(ctx context.Context, userID string, limit int) ([]models.ExerciseHistory, error)
	CategoryAverages(ctx context.Context, userID string, limit int) (map[models.Category]float64, error)
}

// CompleteInput is a finished exercise. Score, Accuracy and TimeSpent are
// required; pointers tell a missing field from zero.
type CompleteInput struct {
	ExerciseID      string   `json:"exercise_id" binding:"required" example:"memory-grid"`
	Score           *int     `json:"score" example:"80"`
	Accuracy        *float64 `json:"accuracy" example:"0.85"`
	TimeSpent       *int     `json:"time_spent" example:"95"` // seconds
	DifficultyLevel int      `json:"difficulty_level" example:"3"`
}

type CompletionSummary struct {
	Record             models.ExerciseHistory `json:"record"`
	Category           models.Category        `json:"category"`
	CategoryScore      *int                   `json:"category_score"` // nil for mixed exercises
	BrainHealthScore   int                    `json:"brain_health_score"`
	CurrentStreak      int                    `json:"current_streak"`
	ExercisesCompleted int                    `json:"exercises_completed"`
	TotalTimeSpent     int                    `json:"total_time_spent"`
	NewAchievements    []Achievement          `json:"new_achievements"`
	CompletedGoals     []models.UserGoal      `json:"completed_goals"`
}

type Overview struct {
	CognitiveProfile models.CognitiveProfile     `json:"cognitive_profile"`
	StreakData       []models.DailyStreak        `json:"streak_data"`
	ExerciseHistory  []models.ExerciseHistory    `json:"exercise_history"`
	CategoryScores   map[models.Category]float64 `json:"category_scores"`
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (in *CompleteInput) validate() error {
	switch {
	case in.ExerciseID == "":
		return fmt.Errorf("%w: exercise_id is required", ErrInvalidInput)
	case in.Score == nil:
		return fmt.Errorf("%w: score is required", ErrInvalidInput)
	case in.Accuracy == nil:
		return fmt.Errorf("%w: accuracy is required", ErrInvalidInput)
	case in.TimeSpent == nil:
		return fmt.Errorf("%w: time_spent is required", ErrInvalidInput)
	case *in.Score < 0:
		return fmt.Errorf("%w: score must not be negative", ErrInvalidInput)
	case *in.Score > maxScore:
		return fmt.Errorf("%w: score must not exceed %d", ErrInvalidInput, maxScore)
	case *in.Accuracy < 0 || *in.Accuracy > 1 || math.IsNaN(*in.Accuracy):
		return fmt.Errorf("%w: accuracy must be between 0 and 1", ErrInvalidInput)
	case *in.TimeSpent < 0:
		return fmt.Errorf("%w: time_spent must not be negative", ErrInvalidInput)
	case in.DifficultyLevel < 0:
		return fmt.Errorf("%w: difficulty_level must not be negative", ErrInvalidInput)
	}
	if in.DifficultyLevel == 0 {
		in.DifficultyLevel = 1
	}
	return nil
}

// CompleteExercise records a finished exercise and updates every derived
// statistic in one transaction.
func (s *Service) CompleteExercise(ctx context.Context, userID string, in CompleteInput) (CompletionSummary, error) {
	if err := in.validate(); err != nil {
		return CompletionSummary{}, err
	}

	var summary CompletionSummary
	now := s.now().UTC()
	state, err := s.store.ApplyCompletion(ctx, userID, in.ExerciseID, now, func(st *models.CompletionState) error {
		summary = applyCompletion(st, in, now)
		return nil
	})
	if err != nil {
		return CompletionSummary{}, err
	}
	// id, user and exercise are assigned when the record is saved
	summary.Record = state.Record
	return summary, nil
}

// applyCompletion mutates st in place and returns what changed.
func applyCompletion(st *models.CompletionState, in CompleteInput, now time.Time) CompletionSummary {
	before := st.User
	score, accuracy, timeSpent := *in.Score, *in.Accuracy, *in.TimeSpent
	minutes := int(math.Ceil(float64(timeSpent) / 60))

	st.Record = models.ExerciseHistory{
		Score:           score,
		Accuracy:        accuracy,
		TimeSpent:       timeSpent,
		DifficultyLevel: in.DifficultyLevel,
		CompletedAt:     now,
	}

	u := &st.User
	u.ExercisesCompleted++
	u.TotalTimeSpent += minutes
	u.LastActive = now

	// first completion of the day decides the streak
	if st.Today == nil {
		st.Today = &models.DailyStreak{ExercisesCompleted: 1, TotalTime: minutes}
		if st.HadYesterday {
			u.CurrentStreak++
		} else {
			u.CurrentStreak = 1
		}
	} else {
		st.Today.ExercisesCompleted++
		st.Today.TotalTime += minutes
	}

	summary := CompletionSummary{Category: st.Exercise.Category}
	if old, ok := st.Profile.Score(st.Exercise.Category); ok {
		blended := int(math.Round(blendKeep*float64(old) + (1-blendKeep)*float64(score)))
		st.Profile.SetScore(st.Exercise.Category, blended)
		summary.CategoryScore = &blended
	}
	st.Profile.LastUpdated = now
	u.BrainHealthScore = st.Profile.BrainHealthScore()

	completed := []models.UserGoal{}
	for i := range st.Goals {
		g := &st.Goals[i]
		g.CurrentValue = MetricValue(*u, Metric(g.GoalType))
		if !g.Completed && g.CurrentValue >= g.TargetValue {
			g.Completed = true
			at := now
			g.CompletedAt = &at
			completed = append(completed, *g)
		}
	}

	summary.Record = st.Record
	summary.BrainHealthScore = u.BrainHealthScore
	summary.CurrentStreak = u.CurrentStreak
	summary.ExercisesCompleted = u.ExercisesCompleted
	summary.TotalTimeSpent = u.TotalTimeSpent
	summary.NewAchievements = newlyEarned(before, *u)
	summary.CompletedGoals = completed
	return summary
}

// Achievements returns the user's progress on every achievement.
func (s *Service) Achievements(ctx context.Context, userID string) ([]AchievementStatus, error) {
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return EvaluateAchievements(u), nil
}

// Overview gathers the data behind the progress page.
func (s *Service) Overview(ctx context.Context, userID string) (Overview, error) {
	var o Overview
	var err error
	if o.CognitiveProfile, err = s.store.GetCognitiveProfile(ctx, userID); err != nil {
		return o, err
	}
	if o.StreakData, err = s.store.ListStreaks(ctx, userID, overviewStreakDays); err != nil {
		return o, err
	}
	if o.ExerciseHistory, err = s.store.ListHistory(ctx, userID, overviewHistory); err != nil {
		return o, err
	}
	if o.CategoryScores, err = s.store.CategoryAverages(ctx, userID, overviewHistory); err != nil {
		return o, err
	}
	return o, nil
}
