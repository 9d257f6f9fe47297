/**
* Name: 			database.go
* Description: 		SQLite 연결 및 테이블 생성
* Workflow: 		Open -> pragma 적용 -> 스키마 생성, 트랜잭션 헬퍼
 */
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modernc.org/sqlite"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)

// SQLITE_CONSTRAINT_UNIQUE
const sqliteUniqueViolation = 2067

// Store is the SQLite-backed persistence layer.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open connects to the database at path and creates missing tables.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("Open(): failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("Open(): failed to open database: %w", err)
	}
	// SQLite는 동시 쓰기를 지원하지 않으므로 연결 하나로 직렬화
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("Open(): failed to connect to database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SetClock overrides the time source. Tests use it to pin "today".
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		"id" TEXT PRIMARY KEY,
		"email" TEXT NOT NULL UNIQUE,
		"username" TEXT NOT NULL UNIQUE,
		"password_hash" TEXT NOT NULL,
		"full_name" TEXT,
		"avatar_url" TEXT,
		"brain_health_score" INTEGER NOT NULL DEFAULT 50,
		"current_streak" INTEGER NOT NULL DEFAULT 0,
		"exercises_completed" INTEGER NOT NULL DEFAULT 0,
		"total_time_spent" INTEGER NOT NULL DEFAULT 0,
		"last_active" TEXT NOT NULL,
		"created_at" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cognitive_profiles (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL UNIQUE,
		"memory_score" INTEGER NOT NULL,
		"focus_score" INTEGER NOT NULL,
		"problem_solving_score" INTEGER NOT NULL,
		"creativity_score" INTEGER NOT NULL,
		"language_score" INTEGER NOT NULL,
		"last_updated" TEXT NOT NULL,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		"id" TEXT PRIMARY KEY,
		"title" TEXT NOT NULL,
		"description" TEXT NOT NULL,
		"category" TEXT NOT NULL,
		"difficulty" TEXT NOT NULL,
		"duration" INTEGER NOT NULL,
		"instructions" TEXT NOT NULL,
		"kind" TEXT NOT NULL,
		"content_json" TEXT,
		"created_at" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS exercise_history (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL,
		"exercise_id" TEXT NOT NULL,
		"score" INTEGER NOT NULL,
		"accuracy" REAL NOT NULL,
		"time_spent" INTEGER NOT NULL,
		"difficulty_level" INTEGER NOT NULL,
		"completed_at" TEXT NOT NULL,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY(exercise_id) REFERENCES exercises(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_user_completed ON exercise_history(user_id, completed_at)`,
	`CREATE TABLE IF NOT EXISTS daily_streaks (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL,
		"date" TEXT NOT NULL,
		"exercises_completed" INTEGER NOT NULL,
		"total_time" INTEGER NOT NULL,
		UNIQUE(user_id, date),
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS user_preferences (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL UNIQUE,
		"preferred_categories" TEXT NOT NULL,
		"preferred_difficulty" TEXT NOT NULL,
		"daily_goal_minutes" INTEGER NOT NULL,
		"reminder_enabled" INTEGER NOT NULL,
		"reminder_time" TEXT,
		"theme" TEXT NOT NULL,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL,
		"role" TEXT NOT NULL,
		"content" TEXT NOT NULL,
		"created_at" TEXT NOT NULL,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_user_created ON chat_messages(user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS user_goals (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL,
		"title" TEXT NOT NULL,
		"description" TEXT,
		"target_value" INTEGER NOT NULL,
		"current_value" INTEGER NOT NULL DEFAULT 0,
		"goal_type" TEXT NOT NULL,
		"start_date" TEXT NOT NULL,
		"end_date" TEXT,
		"completed" INTEGER NOT NULL DEFAULT 0,
		"completed_at" TEXT,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS learning_content (
		"id" TEXT PRIMARY KEY,
		"title" TEXT NOT NULL,
		"content" TEXT NOT NULL,
		"category" TEXT NOT NULL,
		"reading_time" INTEGER NOT NULL,
		"created_at" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_learning (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL,
		"learning_content_id" TEXT NOT NULL,
		"completed" INTEGER NOT NULL DEFAULT 0,
		"completed_at" TEXT,
		UNIQUE(user_id, learning_content_id),
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY(learning_content_id) REFERENCES learning_content(id)
	)`,
}

func (s *Store) createTables() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("createTables(): %w", err)
		}
	}
	return nil
}

// withTx runs fn inside a transaction, rolling back when fn fails.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// uniqueViolation maps SQLite unique-constraint failures on users to sentinels.
func uniqueViolation(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteUniqueViolation {
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "users.email"):
			return ErrEmailExists
		case strings.Contains(msg, "users.username"):
			return ErrUsernameExists
		}
	}
	return err
}

// SQLite는 시간을 문자열로 저장함, 고정 폭이라 문자열 정렬 = 시간 정렬
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func timePtr(ns sql.NullString) *time.Time {
	if !ns.Valid {
		return nil
	}
	t := parseTime(ns.String)
	return &t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
