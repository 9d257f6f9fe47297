package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"BrainTrainer/internal/models"

	"github.com/google/uuid"
)

// CreateUser inserts the account together with its initial cognitive profile
// and default preferences.
func (s *Store) CreateUser(ctx context.Context, email, username, passwordHash, fullName string) (models.User, error) {
	now := s.now().UTC()
	user := models.User{
		ID:               uuid.NewString(),
		Email:            email,
		Username:         username,
		PasswordHash:     passwordHash,
		FullName:         fullName,
		BrainHealthScore: models.DefaultBrainHealthScore,
		LastActive:       now,
		CreatedAt:        now,
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users(id, email, username, password_hash, full_name, avatar_url,
				brain_health_score, current_streak, exercises_completed, total_time_spent, last_active, created_at)
			VALUES(?, ?, ?, ?, ?, NULL, ?, 0, 0, 0, ?, ?)`,
			user.ID, user.Email, user.Username, user.PasswordHash, nullString(user.FullName),
			user.BrainHealthScore, formatTime(now), formatTime(now))
		if err != nil {
			return uniqueViolation(err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO cognitive_profiles(id, user_id, memory_score, focus_score, problem_solving_score,
				creativity_score, language_score, last_updated)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), user.ID,
			models.DefaultCategoryScore, models.DefaultCategoryScore, models.DefaultCategoryScore,
			models.DefaultCategoryScore, models.DefaultCategoryScore, formatTime(now))
		if err != nil {
			return fmt.Errorf("insert cognitive profile: %w", err)
		}

		return insertPreferences(ctx, tx, models.DefaultPreferences(user.ID))
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

const userColumns = `id, email, username, password_hash, full_name, avatar_url, brain_health_score,
	current_streak, exercises_completed, total_time_spent, last_active, created_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var user models.User
	var fullName, avatarURL sql.NullString
	var lastActive, createdAt string

	if err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&fullName, &avatarURL,
		&user.BrainHealthScore, &user.CurrentStreak, &user.ExercisesCompleted, &user.TotalTimeSpent,
		&lastActive, &createdAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}
	user.FullName = fullName.String
	user.AvatarURL = avatarURL.String
	user.LastActive = parseTime(lastActive)
	user.CreatedAt = parseTime(createdAt)
	return user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE username = ?", username)
	return scanUser(row)
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	return getUser(ctx, s.db, userID)
}

func getUser(ctx context.Context, q queryer, userID string) (models.User, error) {
	row := q.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", userID)
	return scanUser(row)
}

// UpdateUserProfile overwrites the editable profile fields.
func (s *Store) UpdateUserProfile(ctx context.Context, userID string, profile models.UserProfile) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET full_name = ?, avatar_url = ? WHERE id = ?",
		nullString(profile.FullName), nullString(profile.AvatarURL), userID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (s *Store) GetCognitiveProfile(ctx context.Context, userID string) (models.CognitiveProfile, error) {
	return getCognitiveProfile(ctx, s.db, userID)
}

func getCognitiveProfile(ctx context.Context, q queryer, userID string) (models.CognitiveProfile, error) {
	var p models.CognitiveProfile
	var lastUpdated string
	err := q.QueryRowContext(ctx, `
		SELECT id, user_id, memory_score, focus_score, problem_solving_score, creativity_score, language_score, last_updated
		FROM cognitive_profiles WHERE user_id = ?`, userID).Scan(
		&p.ID, &p.UserID, &p.MemoryScore, &p.FocusScore, &p.ProblemSolvingScore,
		&p.CreativityScore, &p.LanguageScore, &lastUpdated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, ErrNotFound
		}
		return p, err
	}
	p.LastUpdated = parseTime(lastUpdated)
	return p, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
