package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"BrainTrainer/internal/models"
)

// ExerciseFilter narrows ListExercises. Zero values mean "any".
type ExerciseFilter struct {
	Categories []models.Category
	Difficulty models.Difficulty
	Limit      int
}

// UpsertExercise inserts or replaces a catalog exercise keyed by ID.
func (s *Store) UpsertExercise(ctx context.Context, e models.Exercise) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	var content sql.NullString
	if len(e.Content) > 0 {
		content = sql.NullString{String: string(e.Content), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exercises(id, title, description, category, difficulty, duration, instructions, kind, content_json, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			category = excluded.category,
			difficulty = excluded.difficulty,
			duration = excluded.duration,
			instructions = excluded.instructions,
			kind = excluded.kind,
			content_json = excluded.content_json`,
		e.ID, e.Title, e.Description, string(e.Category), string(e.Difficulty), e.Duration,
		e.Instructions, string(e.Kind), content, formatTime(e.CreatedAt))
	return err
}

const exerciseColumns = `id, title, description, category, difficulty, duration, instructions, kind, content_json, created_at`

func scanExercise(row interface{ Scan(...any) error }) (models.Exercise, error) {
	var e models.Exercise
	var category, difficulty, kind, createdAt string
	var content sql.NullString
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &category, &difficulty, &e.Duration,
		&e.Instructions, &kind, &content, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, ErrNotFound
		}
		return e, err
	}
	e.Category = models.Category(category)
	e.Difficulty = models.Difficulty(difficulty)
	e.Kind = models.ExerciseKind(kind)
	if content.Valid {
		e.Content = []byte(content.String)
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

func (s *Store) GetExercise(ctx context.Context, id string) (models.Exercise, error) {
	return getExercise(ctx, s.db, id)
}

func getExercise(ctx context.Context, q queryer, id string) (models.Exercise, error) {
	row := q.QueryRowContext(ctx, "SELECT "+exerciseColumns+" FROM exercises WHERE id = ?", id)
	return scanExercise(row)
}

// ListExercises returns catalog rows ordered by title.
func (s *Store) ListExercises(ctx context.Context, filter ExerciseFilter) ([]models.Exercise, error) {
	var where []string
	var args []any

	if len(filter.Categories) > 0 {
		placeholders := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			placeholders[i] = "?"
			args = append(args, string(c))
		}
		where = append(where, "category IN ("+strings.Join(placeholders, ", ")+")")
	}
	if filter.Difficulty != "" {
		where = append(where, "difficulty = ?")
		args = append(args, string(filter.Difficulty))
	}

	query := "SELECT " + exerciseColumns + " FROM exercises"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY title"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []models.Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
