package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"BrainTrainer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	state   models.CompletionState
	saved   *models.CompletionState
	loadErr error
	now     time.Time

	streaks  []models.DailyStreak
	history  []models.ExerciseHistory
	averages map[models.Category]float64
}

func (m *mockStore) ApplyCompletion(_ context.Context, userID, exerciseID string, now time.Time, mutate func(*models.CompletionState) error) (models.CompletionState, error) {
	m.now = now
	if m.loadErr != nil {
		return models.CompletionState{}, m.loadErr
	}
	st := m.state
	st.Goals = append([]models.UserGoal(nil), m.state.Goals...)
	if m.state.Today != nil {
		today := *m.state.Today
		st.Today = &today
	}
	if err := mutate(&st); err != nil {
		return models.CompletionState{}, err
	}
	// storage fills these in on insert
	st.Record.ID = "rec-1"
	st.Record.UserID = userID
	st.Record.ExerciseID = exerciseID
	m.saved = &st
	return st, nil
}

func (m *mockStore) GetUserByID(context.Context, string) (models.User, error) {
	return m.state.User, nil
}

func (m *mockStore) GetCognitiveProfile(context.Context, string) (models.CognitiveProfile, error) {
	return m.state.Profile, nil
}

func (m *mockStore) ListStreaks(_ context.Context, _ string, limit int) ([]models.DailyStreak, error) {
	return m.streaks[:min(limit, len(m.streaks))], nil
}

func (m *mockStore) ListHistory(_ context.Context, _ string, limit int) ([]models.ExerciseHistory, error) {
	return m.history[:min(limit, len(m.history))], nil
}

func (m *mockStore) CategoryAverages(context.Context, string, int) (map[models.Category]float64, error) {
	return m.averages, nil
}

var fixedNow = time.Date(2025, 5, 2, 8, 30, 0, 0, time.UTC)

func newState(category models.Category) models.CompletionState {
	return models.CompletionState{
		User: models.User{ID: "u1", BrainHealthScore: 50, CurrentStreak: 4, ExercisesCompleted: 9, TotalTimeSpent: 58},
		Profile: models.CognitiveProfile{
			MemoryScore: 50, FocusScore: 50, ProblemSolvingScore: 50, CreativityScore: 50, LanguageScore: 50,
		},
		Exercise: models.Exercise{ID: "ex", Category: category},
	}
}

func newTestService(m *mockStore) *Service {
	s := NewService(m)
	s.now = func() time.Time { return fixedNow }
	return s
}

func ptr[T any](v T) *T { return &v }

func input(score int, accuracy float64, seconds int) CompleteInput {
	return CompleteInput{ExerciseID: "ex", Score: &score, Accuracy: &accuracy, TimeSpent: &seconds}
}

func TestCompleteExerciseFirstOfDayContinuesStreak(t *testing.T) {
	m := &mockStore{state: newState(models.CategoryMemory)}
	m.state.HadYesterday = true
	svc := newTestService(m)

	sum, err := svc.CompleteExercise(context.Background(), "u1", input(90, 0.9, 61))
	require.NoError(t, err)
	require.NotNil(t, m.saved)

	st := m.saved
	assert.Equal(t, 10, st.User.ExercisesCompleted)
	assert.Equal(t, 60, st.User.TotalTimeSpent) // 61s rounds up to 2 minutes
	assert.Equal(t, 5, st.User.CurrentStreak)
	assert.Equal(t, fixedNow, st.User.LastActive)
	require.NotNil(t, st.Today)
	assert.Equal(t, 1, st.Today.ExercisesCompleted)
	assert.Equal(t, 2, st.Today.TotalTime)

	// round(0.7*50 + 0.3*90) = 62
	assert.Equal(t, 62, st.Profile.MemoryScore)
	// round((62+50*4)/5) = round(52.4) = 52
	assert.Equal(t, 52, st.User.BrainHealthScore)

	assert.Equal(t, 1, st.Record.DifficultyLevel)
	assert.Equal(t, fixedNow, st.Record.CompletedAt)
	assert.Equal(t, fixedNow, m.now)

	assert.Equal(t, "rec-1", sum.Record.ID)
	assert.Equal(t, "u1", sum.Record.UserID)
	assert.Equal(t, "ex", sum.Record.ExerciseID)
	assert.Equal(t, 90, sum.Record.Score)

	require.NotNil(t, sum.CategoryScore)
	assert.Equal(t, 62, *sum.CategoryScore)
	assert.Equal(t, 5, sum.CurrentStreak)
	ids := []string{}
	for _, a := range sum.NewAchievements {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []string{"exercises-10", "time-60"}, ids)
}

func TestCompleteExerciseStreakResetsAfterGap(t *testing.T) {
	m := &mockStore{state: newState(models.CategoryFocus)}
	svc := newTestService(m)

	_, err := svc.CompleteExercise(context.Background(), "u1", input(40, 0, 30))
	require.NoError(t, err)
	assert.Equal(t, 1, m.saved.User.CurrentStreak)
	assert.Equal(t, 47, m.saved.Profile.FocusScore)
}

func TestCompleteExerciseSameDayKeepsStreak(t *testing.T) {
	m := &mockStore{state: newState(models.CategoryLanguage)}
	m.state.Today = &models.DailyStreak{ID: "d", ExercisesCompleted: 2, TotalTime: 7}
	svc := newTestService(m)

	_, err := svc.CompleteExercise(context.Background(), "u1", withDifficulty(input(50, 0, 120), 3))
	require.NoError(t, err)
	assert.Equal(t, 4, m.saved.User.CurrentStreak)
	assert.Equal(t, 3, m.saved.Today.ExercisesCompleted)
	assert.Equal(t, 9, m.saved.Today.TotalTime)
	assert.Equal(t, 3, m.saved.Record.DifficultyLevel)
}

func TestCompleteMixedExerciseSkipsBlend(t *testing.T) {
	m := &mockStore{state: newState(models.CategoryMixed)}
	m.state.Profile.MemoryScore = 70
	svc := newTestService(m)

	sum, err := svc.CompleteExercise(context.Background(), "u1", input(100, 0, 0))
	require.NoError(t, err)
	assert.Nil(t, sum.CategoryScore)
	assert.Equal(t, 70, m.saved.Profile.MemoryScore)
	// brain score still recomputed from the five categories
	assert.Equal(t, 54, m.saved.User.BrainHealthScore)
}

func TestCompleteExerciseUpdatesGoals(t *testing.T) {
	m := &mockStore{state: newState(models.CategoryMemory)}
	m.state.Goals = []models.UserGoal{
		{ID: "g1", GoalType: models.GoalExercises, TargetValue: 10},
		{ID: "g2", GoalType: models.GoalStreak, TargetValue: 7},
		{ID: "g3", GoalType: models.GoalTime, TargetValue: 1000},
	}
	svc := newTestService(m)

	sum, err := svc.CompleteExercise(context.Background(), "u1", input(50, 0, 60))
	require.NoError(t, err)

	goals := m.saved.Goals
	assert.True(t, goals[0].Completed)
	require.NotNil(t, goals[0].CompletedAt)
	assert.Equal(t, 10, goals[0].CurrentValue)
	assert.False(t, goals[1].Completed)
	assert.Equal(t, 1, goals[1].CurrentValue)
	assert.Equal(t, 59, goals[2].CurrentValue)

	require.Len(t, sum.CompletedGoals, 1)
	assert.Equal(t, "g1", sum.CompletedGoals[0].ID)
}

func TestCompleteExerciseValidation(t *testing.T) {
	svc := newTestService(&mockStore{state: newState(models.CategoryMemory)})
	ctx := context.Background()

	missingScore := input(0, 0.5, 10)
	missingScore.Score = nil
	missingAccuracy := input(10, 0, 10)
	missingAccuracy.Accuracy = nil
	missingTime := input(10, 0.5, 0)
	missingTime.TimeSpent = nil
	noExercise := input(10, 0.5, 10)
	noExercise.ExerciseID = ""

	cases := map[string]CompleteInput{
		"empty":              {ExerciseID: "ex"},
		"no exercise":        noExercise,
		"missing score":      missingScore,
		"missing accuracy":   missingAccuracy,
		"missing time":       missingTime,
		"negative score":     input(-1, 0.5, 10),
		"score too large":    input(1_000_001, 0.5, 10),
		"accuracy above one": input(10, 1.5, 10),
		"negative time":      input(10, 0.5, -3),
		"negative level":     withDifficulty(input(10, 0.5, 10), -1),
	}
	for name, in := range cases {
		_, err := svc.CompleteExercise(ctx, "u1", in)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}

	// the bound itself is accepted
	_, err := svc.CompleteExercise(ctx, "u1", input(1_000_000, 1, 0))
	assert.NoError(t, err)
}

func TestCompleteExerciseZeroValuesAreAccepted(t *testing.T) {
	m := &mockStore{state: newState(models.CategoryFocus)}
	svc := newTestService(m)

	in := CompleteInput{ExerciseID: "ex", Score: ptr(0), Accuracy: ptr(0.0), TimeSpent: ptr(0)}
	_, err := svc.CompleteExercise(context.Background(), "u1", in)
	require.NoError(t, err)
	// round(0.7*50 + 0.3*0) = 35
	assert.Equal(t, 35, m.saved.Profile.FocusScore)
	assert.Equal(t, 58, m.saved.User.TotalTimeSpent)
}

func withDifficulty(in CompleteInput, level int) CompleteInput {
	in.DifficultyLevel = level
	return in
}

func TestCompleteExerciseStoreError(t *testing.T) {
	boom := errors.New("load failed")
	svc := newTestService(&mockStore{loadErr: boom})
	_, err := svc.CompleteExercise(context.Background(), "u1", input(10, 0.5, 10))
	assert.ErrorIs(t, err, boom)
}

func TestEvaluateAchievements(t *testing.T) {
	statuses := EvaluateAchievements(models.User{CurrentStreak: 7, ExercisesCompleted: 33, TotalTimeSpent: 400, BrainHealthScore: 63})
	byID := map[string]AchievementStatus{}
	for _, s := range statuses {
		byID[s.ID] = s
	}
	require.Len(t, byID, 9)

	assert.True(t, byID["streak-7"].Completed)
	assert.Equal(t, 100, byID["streak-7"].Progress)
	assert.Equal(t, 23, byID["streak-30"].Progress)
	assert.Equal(t, 66, byID["exercises-50"].Progress)
	assert.Equal(t, 33, byID["exercises-100"].Progress)
	assert.Equal(t, 100, byID["time-300"].Progress)
	assert.True(t, byID["time-300"].Completed)
	assert.Equal(t, 90, byID["score-70"].Progress)
	assert.False(t, byID["score-70"].Completed)
	assert.Equal(t, 63, byID["score-90"].Current)
}

func TestOverview(t *testing.T) {
	m := &mockStore{
		state:    newState(models.CategoryMemory),
		streaks:  make([]models.DailyStreak, 40),
		history:  make([]models.ExerciseHistory, 60),
		averages: map[models.Category]float64{models.CategoryMemory: 71.5},
	}
	svc := newTestService(m)

	o, err := svc.Overview(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, o.StreakData, 30)
	assert.Len(t, o.ExerciseHistory, 50)
	assert.Equal(t, 71.5, o.CategoryScores[models.CategoryMemory])
	assert.Equal(t, 50, o.CognitiveProfile.FocusScore)
}
