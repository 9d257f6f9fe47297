package storage

import (
	"context"
	"database/sql"
	"errors"

	"BrainTrainer/internal/models"

	"github.com/google/uuid"
)

func (s *Store) AddChatMessage(ctx context.Context, userID string, role models.ChatRole, content string) (models.ChatMessage, error) {
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO chat_messages(id, user_id, role, content, created_at) VALUES(?, ?, ?, ?, ?)",
		msg.ID, msg.UserID, string(msg.Role), msg.Content, formatTime(msg.CreatedAt))
	if err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

// ListChatMessages returns the latest `limit` messages in chronological order.
func (s *Store) ListChatMessages(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, role, content, created_at FROM (
			SELECT id, user_id, role, content, created_at FROM chat_messages
			WHERE user_id = ?
			ORDER BY created_at DESC
			LIMIT ?
		) ORDER BY created_at ASC`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		msg, err := scanChatMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// LatestAssistantMessage returns the most recent coach reply.
func (s *Store) LatestAssistantMessage(ctx context.Context, userID string) (models.ChatMessage, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, role, content, created_at FROM chat_messages
		WHERE user_id = ? AND role = ?
		ORDER BY created_at DESC
		LIMIT 1`, userID, string(models.RoleAssistant))
	msg, err := scanChatMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return msg, ErrNotFound
	}
	return msg, err
}

func scanChatMessage(row interface{ Scan(...any) error }) (models.ChatMessage, error) {
	var msg models.ChatMessage
	var role, createdAt string
	if err := row.Scan(&msg.ID, &msg.UserID, &role, &msg.Content, &createdAt); err != nil {
		return msg, err
	}
	msg.Role = models.ChatRole(role)
	msg.CreatedAt = parseTime(createdAt)
	return msg, nil
}
