package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"BrainTrainer/internal/models"

	"github.com/google/uuid"
)

func insertPreferences(ctx context.Context, q queryer, p models.UserPreference) error {
	categories, err := json.Marshal(p.PreferredCategories)
	if err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO user_preferences(id, user_id, preferred_categories, preferred_difficulty,
			daily_goal_minutes, reminder_enabled, reminder_time, theme)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, string(categories), string(p.PreferredDifficulty),
		p.DailyGoalMinutes, boolToInt(p.ReminderEnabled), nullString(p.ReminderTime), string(p.Theme))
	if err != nil {
		return fmt.Errorf("insert preferences: %w", err)
	}
	return nil
}

func (s *Store) GetPreferences(ctx context.Context, userID string) (models.UserPreference, error) {
	var p models.UserPreference
	var categories string
	var reminderEnabled int
	var reminderTime sql.NullString
	var difficulty, theme string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, preferred_categories, preferred_difficulty, daily_goal_minutes,
			reminder_enabled, reminder_time, theme
		FROM user_preferences WHERE user_id = ?`, userID).Scan(
		&p.ID, &p.UserID, &categories, &difficulty, &p.DailyGoalMinutes,
		&reminderEnabled, &reminderTime, &theme)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, ErrNotFound
		}
		return p, err
	}
	if err := json.Unmarshal([]byte(categories), &p.PreferredCategories); err != nil {
		return p, fmt.Errorf("decode preferred categories: %w", err)
	}
	p.PreferredDifficulty = models.Difficulty(difficulty)
	p.ReminderEnabled = reminderEnabled == 1
	p.ReminderTime = reminderTime.String
	p.Theme = models.Theme(theme)
	return p, nil
}

// UpdatePreferences overwrites every preference column of the user's row.
func (s *Store) UpdatePreferences(ctx context.Context, p models.UserPreference) error {
	categories, err := json.Marshal(p.PreferredCategories)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE user_preferences
		SET preferred_categories = ?, preferred_difficulty = ?, daily_goal_minutes = ?,
			reminder_enabled = ?, reminder_time = ?, theme = ?
		WHERE user_id = ?`,
		string(categories), string(p.PreferredDifficulty), p.DailyGoalMinutes,
		boolToInt(p.ReminderEnabled), nullString(p.ReminderTime), string(p.Theme), p.UserID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}
