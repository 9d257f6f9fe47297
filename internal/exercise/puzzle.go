package exercise

import (
	"fmt"

	"BrainTrainer/internal/catalog"
)

const (
	SecondsPerPuzzle = 60
	puzzleBasePoints = 50
	// answers faster than this earn a bonus of 2 points per second saved
	puzzleBonusWindow = 30
)

type PuzzleSet struct {
	SecondsPerPuzzle int              `json:"seconds_per_puzzle"`
	Puzzles          []catalog.Puzzle `json:"puzzles"`
}

// PuzzleAnswer is one submitted answer. A nil Choice means the timer ran out.
type PuzzleAnswer struct {
	PuzzleID string `json:"puzzle_id"`
	Choice   *int   `json:"choice"`
	Seconds  int    `json:"seconds"`
}

type PuzzleOutcome struct {
	PuzzleID      string `json:"puzzle_id"`
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correct_answer"`
	Points        int    `json:"points"`
	TimeSpent     int    `json:"time_spent"`
	Explanation   string `json:"explanation"`
}

type PuzzleResult struct {
	Outcomes  []PuzzleOutcome `json:"outcomes"`
	Score     int             `json:"score"`
	Accuracy  float64         `json:"accuracy"`
	AvgTime   float64         `json:"avg_time"`
	TimeSpent int             `json:"time_spent"` // seconds, summed over answers
}

// PuzzlePoints scores one correct answer given after seconds.
func PuzzlePoints(seconds int) int {
	return puzzleBasePoints + max(0, puzzleBonusWindow-clampSeconds(seconds))*2
}

func clampSeconds(s int) int {
	return min(SecondsPerPuzzle, max(0, s))
}

// GradePuzzles grades answers against the issued set. Puzzles without an
// answer are left out of the totals.
func GradePuzzles(set PuzzleSet, answers []PuzzleAnswer) (PuzzleResult, error) {
	byID := make(map[string]catalog.Puzzle, len(set.Puzzles))
	for _, p := range set.Puzzles {
		byID[p.ID] = p
	}

	res := PuzzleResult{Outcomes: make([]PuzzleOutcome, 0, len(answers))}
	seen := make(map[string]bool, len(answers))
	correct := 0

	for _, a := range answers {
		p, ok := byID[a.PuzzleID]
		if !ok {
			return PuzzleResult{}, fmt.Errorf("%w: puzzle %q not in this round", ErrInvalidSubmission, a.PuzzleID)
		}
		if seen[a.PuzzleID] {
			return PuzzleResult{}, fmt.Errorf("%w: puzzle %q answered twice", ErrInvalidSubmission, a.PuzzleID)
		}
		seen[a.PuzzleID] = true

		out := PuzzleOutcome{
			PuzzleID:      p.ID,
			CorrectAnswer: p.Answer,
			TimeSpent:     clampSeconds(a.Seconds),
			Explanation:   p.Explanation,
		}
		if a.Choice != nil && *a.Choice == p.Answer {
			out.Correct = true
			out.Points = PuzzlePoints(a.Seconds)
			correct++
		}
		res.Score += out.Points
		res.TimeSpent += out.TimeSpent
		res.Outcomes = append(res.Outcomes, out)
	}

	if n := len(res.Outcomes); n > 0 {
		res.Accuracy = float64(correct) / float64(n)
		res.AvgTime = float64(res.TimeSpent) / float64(n)
	}
	return res, nil
}
