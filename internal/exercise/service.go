/**
* Name: 			service.go
* Description: 		연습 라운드 발급 및 서버측 채점
* Workflow: 		Start* -> 라운드 캐시 저장 -> Submit* -> 캐시에서 꺼내 채점 (1회)
 */
package exercise

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"BrainTrainer/internal/catalog"
	"BrainTrainer/internal/models"
)

type ExerciseSource interface {
	GetExercise(ctx context.Context, id string) (models.Exercise, error)
}

type Service struct {
	exercises ExerciseSource
	puzzles   []catalog.Puzzle
	sessions  *Sessions

	mu  sync.Mutex // guards rng
	rng *rand.Rand
	now func() time.Time
}

// NewService wires the engines. A nil rng is seeded from the clock.
func NewService(exercises ExerciseSource, cat *catalog.Catalog, sessions *Sessions, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return &Service{
		exercises: exercises,
		puzzles:   cat.Puzzles,
		sessions:  sessions,
		rng:       rng,
		now:       time.Now,
	}
}

func (s *Service) issue(ctx context.Context, userID, exerciseID string, kind models.ExerciseKind, fill func(r *Round, rng *rand.Rand) error) (*Round, error) {
	ex, err := s.exercises.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	if ex.Kind != kind {
		return nil, ErrWrongKind
	}

	r := &Round{
		UserID:     userID,
		ExerciseID: ex.ID,
		Kind:       kind,
		IssuedAt:   s.now().UTC(),
	}
	s.mu.Lock()
	err = fill(r, s.rng)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.sessions.Put(r)
	return r, nil
}

func (s *Service) StartMemory(ctx context.Context, userID, exerciseID string, level int) (*Round, error) {
	return s.issue(ctx, userID, exerciseID, models.KindMemoryGrid, func(r *Round, rng *rand.Rand) error {
		m, err := NewMemoryRound(level, rng)
		if err != nil {
			return err
		}
		r.Memory = &m
		return nil
	})
}

func (s *Service) SubmitMemory(userID, roundID string, selected []int) (MemoryResult, error) {
	r, err := s.sessions.Take(roundID, userID, models.KindMemoryGrid)
	if err != nil {
		return MemoryResult{}, err
	}
	return CheckMemory(*r.Memory, selected)
}

func (s *Service) StartFocus(ctx context.Context, userID, exerciseID string) (*Round, error) {
	return s.issue(ctx, userID, exerciseID, models.KindFocusCPT, func(r *Round, rng *rand.Rand) error {
		seq := NewFocusSequence(rng)
		r.Focus = &seq
		return nil
	})
}

// SubmitFocus grades a focus run. The reported elapsed time never exceeds
// what the server observed since the round was issued.
func (s *Service) SubmitFocus(userID, roundID string, responses []FocusResponse, elapsedSeconds int) (FocusResult, error) {
	r, err := s.sessions.Take(roundID, userID, models.KindFocusCPT)
	if err != nil {
		return FocusResult{}, err
	}
	elapsed := min(time.Duration(elapsedSeconds)*time.Second, s.now().Sub(r.IssuedAt))
	return GradeFocus(*r.Focus, responses, elapsed)
}

// StartPuzzles issues every puzzle in the bank in a shuffled order.
func (s *Service) StartPuzzles(ctx context.Context, userID, exerciseID string) (*Round, error) {
	return s.issue(ctx, userID, exerciseID, models.KindLogicPuzzle, func(r *Round, rng *rand.Rand) error {
		puzzles := append([]catalog.Puzzle(nil), s.puzzles...)
		rng.Shuffle(len(puzzles), func(i, j int) { puzzles[i], puzzles[j] = puzzles[j], puzzles[i] })
		r.Puzzles = &PuzzleSet{SecondsPerPuzzle: SecondsPerPuzzle, Puzzles: puzzles}
		return nil
	})
}

func (s *Service) SubmitPuzzles(userID, roundID string, answers []PuzzleAnswer) (PuzzleResult, error) {
	r, err := s.sessions.Take(roundID, userID, models.KindLogicPuzzle)
	if err != nil {
		return PuzzleResult{}, err
	}
	return GradePuzzles(*r.Puzzles, answers)
}
