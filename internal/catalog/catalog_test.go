package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"BrainTrainer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSeeder struct {
	exercises []models.Exercise
	learning  []models.LearningContent
}

func (r *recordingSeeder) UpsertExercise(_ context.Context, e models.Exercise) error {
	r.exercises = append(r.exercises, e)
	return nil
}

func (r *recordingSeeder) UpsertLearningContent(_ context.Context, c models.LearningContent) error {
	r.learning = append(r.learning, c)
	return nil
}

func TestEmbeddedCatalogLoads(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	kinds := map[models.ExerciseKind]bool{}
	for _, e := range c.Exercises {
		kinds[e.Kind] = true
	}
	assert.True(t, kinds[models.KindMemoryGrid])
	assert.True(t, kinds[models.KindFocusCPT])
	assert.True(t, kinds[models.KindLogicPuzzle])

	require.Len(t, c.Puzzles, 3)
	for _, p := range c.Puzzles {
		assert.Equal(t, 1, p.Answer, p.ID)
		assert.Len(t, p.Options, 4)
	}

	river := c.Puzzles[1]
	assert.Equal(t, "river-crossing", river.ID)
	assert.Equal(t, "7 trips", river.Options[river.Answer])
}

func TestPuzzleAnswerHiddenFromJSON(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	raw, err := json.Marshal(c.Puzzles[0])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "answer")
}

func TestSeedWritesEverything(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	var s recordingSeeder
	nEx, nLearn, err := c.Seed(context.Background(), &s)
	require.NoError(t, err)
	assert.Equal(t, len(c.Exercises), nEx)
	assert.Equal(t, len(c.Learning), nLearn)
	assert.Len(t, s.exercises, nEx)

	for _, e := range s.exercises {
		if e.ID == "memory-grid" {
			assert.JSONEq(t, `{"grid_size":5,"max_level":10}`, string(e.Content))
		}
		if e.Kind == models.KindGuided {
			assert.Empty(t, e.Content)
		}
	}
	assert.Equal(t, "The Neuroplasticity Phenomenon", s.learning[0].Title)
}

func TestParseRejectsInvalidEntries(t *testing.T) {
	_, err := Parse([]byte(`
exercises:
  - id: a
    title: A
    category: juggling
    difficulty: easy
    kind: guided
puzzles:
  - id: p
    question: q
    options: [x, y]
    answer: 5
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
	assert.Contains(t, err.Error(), "out of range")

	_, err = Parse([]byte("exercises: [::"))
	assert.Error(t, err)
}
