/**
* Name: 			catalog.go
* Description: 		내장 YAML 카탈로그 (연습 문제, 논리 퍼즐, 학습 콘텐츠)
* Workflow: 		Load -> 검증 -> Seed 로 DB upsert, 퍼즐은 메모리에서 조회
 */
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"BrainTrainer/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

type ExerciseEntry struct {
	ID           string              `yaml:"id"`
	Title        string              `yaml:"title"`
	Description  string              `yaml:"description"`
	Category     models.Category     `yaml:"category"`
	Difficulty   models.Difficulty   `yaml:"difficulty"`
	Duration     int                 `yaml:"duration"`
	Kind         models.ExerciseKind `yaml:"kind"`
	Instructions string              `yaml:"instructions"`
	Content      map[string]any      `yaml:"content"`
}

// Puzzle is a multiple choice logic question. Answer and Explanation are only
// revealed through graded outcomes.
type Puzzle struct {
	ID          string   `yaml:"id" json:"id"`
	Question    string   `yaml:"question" json:"question"`
	Options     []string `yaml:"options" json:"options"`
	Answer      int      `yaml:"answer" json:"-"`
	Explanation string   `yaml:"explanation" json:"-"`
}

type LearningEntry struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	ReadingTime int    `yaml:"reading_time"`
	Content     string `yaml:"content"`
}

type Catalog struct {
	Exercises []ExerciseEntry `yaml:"exercises"`
	Puzzles   []Puzzle        `yaml:"puzzles"`
	Learning  []LearningEntry `yaml:"learning"`
}

// Seeder is the subset of storage used to load the catalog.
type Seeder interface {
	UpsertExercise(ctx context.Context, e models.Exercise) error
	UpsertLearningContent(ctx context.Context, c models.LearningContent) error
}

// Load parses the catalog compiled into the binary.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("Parse(): failed to decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	seen := map[string]bool{}
	for _, e := range c.Exercises {
		switch {
		case e.ID == "" || e.Title == "":
			errs = append(errs, fmt.Errorf("exercise %q: id and title are required", e.ID))
		case seen[e.ID]:
			errs = append(errs, fmt.Errorf("exercise %q: duplicate id", e.ID))
		case !e.Category.Valid():
			errs = append(errs, fmt.Errorf("exercise %q: unknown category %q", e.ID, e.Category))
		case !e.Difficulty.Valid():
			errs = append(errs, fmt.Errorf("exercise %q: unknown difficulty %q", e.ID, e.Difficulty))
		case !validKind(e.Kind):
			errs = append(errs, fmt.Errorf("exercise %q: unknown kind %q", e.ID, e.Kind))
		}
		seen[e.ID] = true
	}

	seenPuzzle := map[string]bool{}
	for _, p := range c.Puzzles {
		if p.ID == "" || seenPuzzle[p.ID] {
			errs = append(errs, fmt.Errorf("puzzle %q: missing or duplicate id", p.ID))
		}
		if p.Answer < 0 || p.Answer >= len(p.Options) {
			errs = append(errs, fmt.Errorf("puzzle %q: answer index %d out of range", p.ID, p.Answer))
		}
		seenPuzzle[p.ID] = true
	}

	for _, l := range c.Learning {
		if l.ID == "" || l.Title == "" {
			errs = append(errs, fmt.Errorf("learning %q: id and title are required", l.ID))
		}
	}
	return errors.Join(errs...)
}

func validKind(k models.ExerciseKind) bool {
	switch k {
	case models.KindMemoryGrid, models.KindFocusCPT, models.KindLogicPuzzle, models.KindGuided:
		return true
	}
	return false
}

// Models converts catalog entries into storage rows.
func (c *Catalog) Models() ([]models.Exercise, []models.LearningContent, error) {
	exercises := make([]models.Exercise, 0, len(c.Exercises))
	for _, e := range c.Exercises {
		var content json.RawMessage
		if len(e.Content) > 0 {
			raw, err := json.Marshal(e.Content)
			if err != nil {
				return nil, nil, fmt.Errorf("exercise %q: encode content: %w", e.ID, err)
			}
			content = raw
		}
		exercises = append(exercises, models.Exercise{
			ID:           e.ID,
			Title:        e.Title,
			Description:  e.Description,
			Category:     e.Category,
			Difficulty:   e.Difficulty,
			Duration:     e.Duration,
			Instructions: e.Instructions,
			Kind:         e.Kind,
			Content:      content,
		})
	}

	learning := make([]models.LearningContent, 0, len(c.Learning))
	for _, l := range c.Learning {
		learning = append(learning, models.LearningContent{
			ID:          l.ID,
			Title:       l.Title,
			Content:     l.Content,
			Category:    l.Category,
			ReadingTime: l.ReadingTime,
		})
	}
	return exercises, learning, nil
}

// Seed upserts every exercise and learning article. It returns how many rows
// of each were written.
func (c *Catalog) Seed(ctx context.Context, s Seeder) (int, int, error) {
	exercises, learning, err := c.Models()
	if err != nil {
		return 0, 0, err
	}
	for _, e := range exercises {
		if err := s.UpsertExercise(ctx, e); err != nil {
			return 0, 0, fmt.Errorf("Seed(): exercise %s: %w", e.ID, err)
		}
	}
	for _, l := range learning {
		if err := s.UpsertLearningContent(ctx, l); err != nil {
			return len(exercises), 0, fmt.Errorf("Seed(): learning %s: %w", l.ID, err)
		}
	}
	return len(exercises), len(learning), nil
}
