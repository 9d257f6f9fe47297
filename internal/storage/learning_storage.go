package storage

import (
	"context"
	"database/sql"
	"errors"

	"BrainTrainer/internal/models"

	"github.com/google/uuid"
)

// UpsertLearningContent inserts or replaces a learning article keyed by ID.
func (s *Store) UpsertLearningContent(ctx context.Context, c models.LearningContent) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO learning_content(id, title, content, category, reading_time, created_at)
		VALUES(?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			category = excluded.category,
			reading_time = excluded.reading_time`,
		c.ID, c.Title, c.Content, c.Category, c.ReadingTime, formatTime(c.CreatedAt))
	return err
}

// LatestLearningContent returns the most recently published article.
func (s *Store) LatestLearningContent(ctx context.Context) (models.LearningContent, error) {
	var c models.LearningContent
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, content, category, reading_time, created_at
		FROM learning_content ORDER BY created_at DESC LIMIT 1`).Scan(
		&c.ID, &c.Title, &c.Content, &c.Category, &c.ReadingTime, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, ErrNotFound
		}
		return c, err
	}
	c.CreatedAt = parseTime(createdAt)
	return c, nil
}

// MarkLearningComplete records that the user finished an article. Repeated
// calls keep the first completion time.
func (s *Store) MarkLearningComplete(ctx context.Context, userID, contentID string) (models.UserLearning, error) {
	now := s.now().UTC()
	var ul models.UserLearning

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM learning_content WHERE id = ?", contentID).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO user_learning(id, user_id, learning_content_id, completed, completed_at)
			VALUES(?, ?, ?, 1, ?)
			ON CONFLICT(user_id, learning_content_id) DO UPDATE SET
				completed = 1,
				completed_at = COALESCE(user_learning.completed_at, excluded.completed_at)`,
			uuid.NewString(), userID, contentID, formatTime(now)); err != nil {
			return err
		}

		var completed int
		var completedAt sql.NullString
		if err := tx.QueryRowContext(ctx, `
			SELECT id, user_id, learning_content_id, completed, completed_at
			FROM user_learning WHERE user_id = ? AND learning_content_id = ?`, userID, contentID).Scan(
			&ul.ID, &ul.UserID, &ul.LearningContentID, &completed, &completedAt); err != nil {
			return err
		}
		ul.Completed = completed == 1
		ul.CompletedAt = timePtr(completedAt)
		return nil
	})
	if err != nil {
		return models.UserLearning{}, err
	}
	return ul, nil
}
