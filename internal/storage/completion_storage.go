package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"BrainTrainer/internal/models"

	"github.com/google/uuid"
)

// ApplyCompletion loads the completion state for userID/exerciseID, hands it to
// mutate and writes the result back, all in one transaction. The history row
// in state.Record is inserted; user, profile, today's streak and goals are
// overwritten. now picks today's and yesterday's streak rows.
func (s *Store) ApplyCompletion(ctx context.Context, userID, exerciseID string, now time.Time, mutate func(*models.CompletionState) error) (models.CompletionState, error) {
	var state models.CompletionState
	now = now.UTC()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if state.User, err = getUser(ctx, tx, userID); err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if state.Profile, err = getCognitiveProfile(ctx, tx, userID); err != nil {
			return fmt.Errorf("load cognitive profile: %w", err)
		}
		if state.Exercise, err = getExercise(ctx, tx, exerciseID); err != nil {
			return fmt.Errorf("load exercise: %w", err)
		}

		today := models.DayKey(now)
		yesterday := models.DayKey(now.AddDate(0, 0, -1))
		if state.Today, err = getStreakDay(ctx, tx, userID, today); err != nil {
			return fmt.Errorf("load today's streak: %w", err)
		}
		prev, err := getStreakDay(ctx, tx, userID, yesterday)
		if err != nil {
			return fmt.Errorf("load yesterday's streak: %w", err)
		}
		state.HadYesterday = prev != nil

		if state.Goals, err = listGoals(ctx, tx, userID, true); err != nil {
			return fmt.Errorf("load goals: %w", err)
		}

		if err := mutate(&state); err != nil {
			return err
		}
		return saveCompletion(ctx, tx, userID, today, &state)
	})
	if err != nil {
		return models.CompletionState{}, err
	}
	return state, nil
}

func getStreakDay(ctx context.Context, q queryer, userID, date string) (*models.DailyStreak, error) {
	var d models.DailyStreak
	err := q.QueryRowContext(ctx, `
		SELECT id, user_id, date, exercises_completed, total_time
		FROM daily_streaks WHERE user_id = ? AND date = ?`, userID, date).Scan(
		&d.ID, &d.UserID, &d.Date, &d.ExercisesCompleted, &d.TotalTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func saveCompletion(ctx context.Context, tx *sql.Tx, userID, today string, state *models.CompletionState) error {
	rec := &state.Record
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.UserID = userID
	rec.ExerciseID = state.Exercise.ID
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO exercise_history(id, user_id, exercise_id, score, accuracy, time_spent, difficulty_level, completed_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.ExerciseID, rec.Score, rec.Accuracy, rec.TimeSpent,
		rec.DifficultyLevel, formatTime(rec.CompletedAt)); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	u := state.User
	if _, err := tx.ExecContext(ctx, `
		UPDATE users SET brain_health_score = ?, current_streak = ?, exercises_completed = ?,
			total_time_spent = ?, last_active = ?
		WHERE id = ?`,
		u.BrainHealthScore, u.CurrentStreak, u.ExercisesCompleted, u.TotalTimeSpent,
		formatTime(u.LastActive), userID); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	p := state.Profile
	if _, err := tx.ExecContext(ctx, `
		UPDATE cognitive_profiles SET memory_score = ?, focus_score = ?, problem_solving_score = ?,
			creativity_score = ?, language_score = ?, last_updated = ?
		WHERE user_id = ?`,
		p.MemoryScore, p.FocusScore, p.ProblemSolvingScore, p.CreativityScore, p.LanguageScore,
		formatTime(p.LastUpdated), userID); err != nil {
		return fmt.Errorf("update cognitive profile: %w", err)
	}

	if d := state.Today; d != nil {
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		d.UserID = userID
		d.Date = today
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO daily_streaks(id, user_id, date, exercises_completed, total_time)
			VALUES(?, ?, ?, ?, ?)
			ON CONFLICT(user_id, date) DO UPDATE SET
				exercises_completed = excluded.exercises_completed,
				total_time = excluded.total_time`,
			d.ID, d.UserID, d.Date, d.ExercisesCompleted, d.TotalTime); err != nil {
			return fmt.Errorf("upsert daily streak: %w", err)
		}
	}

	for _, g := range state.Goals {
		if _, err := tx.ExecContext(ctx, `
			UPDATE user_goals SET current_value = ?, completed = ?, completed_at = ?
			WHERE id = ? AND user_id = ?`,
			g.CurrentValue, boolToInt(g.Completed), nullTime(g.CompletedAt), g.ID, userID); err != nil {
			return fmt.Errorf("update goal %s: %w", g.ID, err)
		}
	}
	return nil
}
