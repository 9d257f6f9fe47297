package exercise

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	FocusItems          = 30
	FocusTarget         = "X"
	FocusSessionSeconds = 60
	focusTargetRate     = 0.3
	pointsPerResponse   = 10
)

// non-target letters never include the target
const distractors = "ABCDEFGHIJKLMNOPQRSTUVWYZ"

type Stimulus struct {
	Letter    string `json:"letter"`
	DisplayMS int    `json:"display_ms"` // 1000..3000
	PauseMS   int    `json:"pause_ms"`   // 500..1500 before the next stimulus
}

// FocusSequence is a continuous-performance run. Timing values are hints for
// the client, which drives the clock.
type FocusSequence struct {
	Target         string     `json:"target"`
	SessionSeconds int        `json:"session_seconds"`
	Stimuli        []Stimulus `json:"stimuli"`
}

// FocusResponse is the player's reaction to one stimulus. Stimuli the player
// never reached are simply omitted.
type FocusResponse struct {
	Index      int  `json:"index"`
	Pressed    bool `json:"pressed"`
	ReactionMS int  `json:"reaction_ms"`
}

type FocusResult struct {
	Responses         int     `json:"responses"`
	Correct           int     `json:"correct"`
	Score             int     `json:"score"`
	Accuracy          float64 `json:"accuracy"`
	AvgReactionTimeMS float64 `json:"avg_reaction_time_ms"`
	TimeSpent         int     `json:"time_spent"` // seconds
}

func NewFocusSequence(rng *rand.Rand) FocusSequence {
	seq := FocusSequence{
		Target:         FocusTarget,
		SessionSeconds: FocusSessionSeconds,
		Stimuli:        make([]Stimulus, FocusItems),
	}
	for i := range seq.Stimuli {
		letter := FocusTarget
		if rng.Float64() >= focusTargetRate {
			letter = string(distractors[rng.IntN(len(distractors))])
		}
		seq.Stimuli[i] = Stimulus{
			Letter:    letter,
			DisplayMS: 1000 + rng.IntN(2001),
			PauseMS:   500 + rng.IntN(1001),
		}
	}
	return seq
}

func (s FocusSequence) isTarget(i int) bool {
	return s.Stimuli[i].Letter == s.Target
}

// GradeFocus scores the responses. A response is correct when the player
// pressed on a target or held back on a distractor. Each stimulus is graded
// at most once.
func GradeFocus(seq FocusSequence, responses []FocusResponse, elapsed time.Duration) (FocusResult, error) {
	var res FocusResult
	seen := make(map[int]bool, len(responses))
	totalReaction := 0

	for _, r := range responses {
		if r.Index < 0 || r.Index >= len(seq.Stimuli) {
			return FocusResult{}, fmt.Errorf("%w: stimulus %d out of range", ErrInvalidSubmission, r.Index)
		}
		if seen[r.Index] {
			return FocusResult{}, fmt.Errorf("%w: stimulus %d answered twice", ErrInvalidSubmission, r.Index)
		}
		if r.ReactionMS < 0 {
			return FocusResult{}, fmt.Errorf("%w: negative reaction time", ErrInvalidSubmission)
		}
		seen[r.Index] = true

		res.Responses++
		totalReaction += r.ReactionMS
		if r.Pressed == seq.isTarget(r.Index) {
			res.Correct++
			res.Score += pointsPerResponse
		}
	}

	if res.Responses > 0 {
		res.Accuracy = float64(res.Correct) / float64(res.Responses)
		res.AvgReactionTimeMS = float64(totalReaction) / float64(res.Responses)
	}
	res.TimeSpent = min(FocusSessionSeconds, max(0, int(elapsed/time.Second)))
	return res, nil
}
