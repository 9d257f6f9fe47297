package models

import (
	"encoding/json"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// 연습 문제를 채점하는 엔진 종류
type ExerciseKind string

const (
	KindMemoryGrid  ExerciseKind = "memory_grid"
	KindFocusCPT    ExerciseKind = "focus_cpt"
	KindLogicPuzzle ExerciseKind = "logic_puzzle"
	KindGuided      ExerciseKind = "guided" // no server-side engine
)

type Exercise struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Category     Category        `json:"category"`
	Difficulty   Difficulty      `json:"difficulty"`
	Duration     int             `json:"duration"` // minutes
	Instructions string          `json:"instructions"`
	Kind         ExerciseKind    `json:"kind"`
	Content      json.RawMessage `json:"content_json,omitempty" swaggertype:"object"`
	CreatedAt    time.Time       `json:"created_at"`
}

// 완료된 연습 기록
type ExerciseHistory struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ExerciseID      string    `json:"exercise_id"`
	Score           int       `json:"score"`
	Accuracy        float64   `json:"accuracy"`
	TimeSpent       int       `json:"time_spent"` // seconds
	CompletedAt     time.Time `json:"completed_at"`
	DifficultyLevel int       `json:"difficulty_level"`
}
