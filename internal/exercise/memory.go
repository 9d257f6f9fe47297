package exercise

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"
)

const (
	GridSize       = 5
	GridCells      = GridSize * GridSize
	MaxMemoryLevel = 10
	maxActiveCells = 15
	// accuracy needed to move to the next level
	advanceAccuracy = 0.8
	basePoints      = 10
)

// MemoryRound is one pattern shown to the player. Active holds cell indices
// in row-major order (0..24).
type MemoryRound struct {
	Level           int   `json:"level"`
	GridSize        int   `json:"grid_size"`
	Active          []int `json:"active_cells"`
	MemorizeSeconds int   `json:"memorize_seconds"`
}

type MemoryResult struct {
	Level     int     `json:"level"`
	Correct   int     `json:"correct_cells"`
	Accuracy  float64 `json:"accuracy"`
	Points    int     `json:"points"`
	Advanced  bool    `json:"advanced"`
	NextLevel int     `json:"next_level"`
	Finished  bool    `json:"finished"`
	Missed    []int   `json:"missed_cells"`
	Wrong     []int   `json:"wrong_cells"`
}

// ActiveCellCount grows by one per level, capped at 15.
func ActiveCellCount(level int) int {
	return min(3+level-1, maxActiveCells)
}

// MemorizeTime shrinks every two levels, never below 3 seconds.
func MemorizeTime(level int) time.Duration {
	return time.Duration(max(3, 7-level/2)) * time.Second
}

// NewMemoryRound picks ActiveCellCount(level) distinct cells.
func NewMemoryRound(level int, rng *rand.Rand) (MemoryRound, error) {
	if level < 1 || level > MaxMemoryLevel {
		return MemoryRound{}, fmt.Errorf("%w: level must be between 1 and %d", ErrInvalidSubmission, MaxMemoryLevel)
	}
	perm := rng.Perm(GridCells)
	active := append([]int(nil), perm[:ActiveCellCount(level)]...)
	slices.Sort(active)
	return MemoryRound{
		Level:           level,
		GridSize:        GridSize,
		Active:          active,
		MemorizeSeconds: int(MemorizeTime(level) / time.Second),
	}, nil
}

// CheckMemory grades the selected cells. Every cell counts: an active cell
// must be selected and an inactive one left alone.
func CheckMemory(round MemoryRound, selected []int) (MemoryResult, error) {
	active := make([]bool, GridCells)
	for _, c := range round.Active {
		active[c] = true
	}
	picked := make([]bool, GridCells)
	for _, c := range selected {
		if c < 0 || c >= GridCells {
			return MemoryResult{}, fmt.Errorf("%w: cell %d outside the grid", ErrInvalidSubmission, c)
		}
		picked[c] = true
	}

	res := MemoryResult{Level: round.Level, Missed: []int{}, Wrong: []int{}}
	for i := 0; i < GridCells; i++ {
		switch {
		case active[i] == picked[i]:
			res.Correct++
		case active[i]:
			res.Missed = append(res.Missed, i)
		default:
			res.Wrong = append(res.Wrong, i)
		}
	}
	res.Accuracy = float64(res.Correct) / GridCells
	res.Points = int(math.Round(basePoints * float64(round.Level) * res.Accuracy))

	res.NextLevel = round.Level
	if res.Accuracy >= advanceAccuracy {
		if round.Level >= MaxMemoryLevel {
			res.Finished = true
		} else {
			res.Advanced = true
			res.NextLevel = round.Level + 1
		}
	}
	return res, nil
}
