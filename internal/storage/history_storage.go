package storage

import (
	"context"

	"BrainTrainer/internal/models"
)

// ListHistory returns the user's most recent completions, newest first.
func (s *Store) ListHistory(ctx context.Context, userID string, limit int) ([]models.ExerciseHistory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, exercise_id, score, accuracy, time_spent, difficulty_level, completed_at
		FROM exercise_history
		WHERE user_id = ?
		ORDER BY completed_at DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.ExerciseHistory{}
	for rows.Next() {
		var r models.ExerciseHistory
		var completedAt string
		if err := rows.Scan(&r.ID, &r.UserID, &r.ExerciseID, &r.Score, &r.Accuracy,
			&r.TimeSpent, &r.DifficultyLevel, &completedAt); err != nil {
			return nil, err
		}
		r.CompletedAt = parseTime(completedAt)
		records = append(records, r)
	}
	return records, rows.Err()
}

// CategoryAverages averages scores per exercise category over the user's
// most recent `limit` completions.
func (s *Store) CategoryAverages(ctx context.Context, userID string, limit int) (map[models.Category]float64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.category, AVG(h.score)
		FROM (
			SELECT exercise_id, score FROM exercise_history
			WHERE user_id = ?
			ORDER BY completed_at DESC
			LIMIT ?
		) AS h
		JOIN exercises e ON e.id = h.exercise_id
		GROUP BY e.category`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[models.Category]float64)
	for rows.Next() {
		var category string
		var avg float64
		if err := rows.Scan(&category, &avg); err != nil {
			return nil, err
		}
		out[models.Category(category)] = avg
	}
	return out, rows.Err()
}

// ListStreaks returns daily streak rows, most recent day first.
func (s *Store) ListStreaks(ctx context.Context, userID string, limit int) ([]models.DailyStreak, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, date, exercises_completed, total_time
		FROM daily_streaks
		WHERE user_id = ?
		ORDER BY date DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	streaks := []models.DailyStreak{}
	for rows.Next() {
		var d models.DailyStreak
		if err := rows.Scan(&d.ID, &d.UserID, &d.Date, &d.ExercisesCompleted, &d.TotalTime); err != nil {
			return nil, err
		}
		streaks = append(streaks, d)
	}
	return streaks, rows.Err()
}
