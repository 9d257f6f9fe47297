package storage

import (
	"context"
	"database/sql"

	"BrainTrainer/internal/models"

	"github.com/google/uuid"
)

func (s *Store) CreateGoal(ctx context.Context, g models.UserGoal) (models.UserGoal, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.StartDate == "" {
		g.StartDate = models.DayKey(s.now())
	}
	var endDate sql.NullString
	if g.EndDate != nil {
		endDate = nullString(*g.EndDate)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_goals(id, user_id, title, description, target_value, current_value,
			goal_type, start_date, end_date, completed, completed_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.UserID, g.Title, nullString(g.Description), g.TargetValue, g.CurrentValue,
		string(g.GoalType), g.StartDate, endDate, boolToInt(g.Completed), nullTime(g.CompletedAt))
	if err != nil {
		return models.UserGoal{}, err
	}
	return g, nil
}

// ListGoals returns the user's goals ordered by end date, open-ended last.
func (s *Store) ListGoals(ctx context.Context, userID string) ([]models.UserGoal, error) {
	return listGoals(ctx, s.db, userID, false)
}

func listGoals(ctx context.Context, q queryer, userID string, openOnly bool) ([]models.UserGoal, error) {
	query := `
		SELECT id, user_id, title, description, target_value, current_value, goal_type,
			start_date, end_date, completed, completed_at
		FROM user_goals
		WHERE user_id = ?`
	if openOnly {
		query += " AND completed = 0"
	}
	query += " ORDER BY end_date IS NULL, end_date ASC, start_date ASC"

	rows, err := q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []models.UserGoal{}
	for rows.Next() {
		var g models.UserGoal
		var description, endDate, completedAt sql.NullString
		var goalType string
		var completed int
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &description, &g.TargetValue, &g.CurrentValue,
			&goalType, &g.StartDate, &endDate, &completed, &completedAt); err != nil {
			return nil, err
		}
		g.Description = description.String
		g.GoalType = models.GoalType(goalType)
		if endDate.Valid {
			e := endDate.String
			g.EndDate = &e
		}
		g.Completed = completed == 1
		g.CompletedAt = timePtr(completedAt)
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) DeleteGoal(ctx context.Context, userID, goalID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM user_goals WHERE id = ? AND user_id = ?", goalID, userID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}
