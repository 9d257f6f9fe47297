package exercise

import (
	"errors"
	"sync"
	"time"

	"BrainTrainer/internal/models"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var (
	ErrRoundNotFound     = errors.New("round not found or already graded")
	ErrWrongKind         = errors.New("round belongs to a different exercise type")
	ErrInvalidSubmission = errors.New("invalid submission")
)

// Round is an issued exercise instance waiting to be graded.
type Round struct {
	ID         string              `json:"round_id"`
	UserID     string              `json:"-"`
	ExerciseID string              `json:"exercise_id"`
	Kind       models.ExerciseKind `json:"kind"`
	IssuedAt   time.Time           `json:"issued_at"`
	ExpiresAt  time.Time           `json:"expires_at"`

	Memory  *MemoryRound   `json:"memory,omitempty"`
	Focus   *FocusSequence `json:"focus,omitempty"`
	Puzzles *PuzzleSet     `json:"puzzles,omitempty"`
}

// Sessions keeps issued rounds in memory until they are graded or expire.
type Sessions struct {
	mu    sync.Mutex
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (s *Sessions) Put(r *Round) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.ExpiresAt = r.IssuedAt.Add(s.ttl)
	s.cache.Set(r.ID, r, cache.DefaultExpiration)
}

// Take removes and returns the round so it can only be graded once. Rounds
// owned by another user are reported as missing.
func (s *Sessions) Take(id, userID string, kind models.ExerciseKind) (*Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrRoundNotFound
	}
	r := v.(*Round)
	if r.UserID != userID {
		return nil, ErrRoundNotFound
	}
	if r.Kind != kind {
		return nil, ErrWrongKind
	}
	s.cache.Delete(id)
	return r, nil
}

func (s *Sessions) Len() int {
	return s.cache.ItemCount()
}
