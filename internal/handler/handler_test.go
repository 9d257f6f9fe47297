package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"BrainTrainer/internal/auth"
	"BrainTrainer/internal/catalog"
	"BrainTrainer/internal/coach"
	"BrainTrainer/internal/exercise"
	"BrainTrainer/internal/llm"
	"BrainTrainer/internal/logger"
	"BrainTrainer/internal/models"
	"BrainTrainer/internal/progress"
	"BrainTrainer/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type echoModel struct{}

func (echoModel) Chat(_ context.Context, messages []llm.Message) (string, error) {
	return "coach: " + messages[len(messages)-1].Content, nil
}

func newTestRouter(t *testing.T, opts Options) *gin.Engine {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cat, err := catalog.Load()
	require.NoError(t, err)
	_, _, err = cat.Seed(context.Background(), store)
	require.NoError(t, err)

	tokens, _ := auth.NewTokenManager("test-secret", time.Hour)
	if opts.CoachRatePerMinute == 0 {
		opts.CoachRatePerMinute = 100
	}
	h := New(
		store,
		tokens,
		progress.NewService(store),
		exercise.NewService(store, cat, exercise.NewSessions(time.Minute), rand.New(rand.NewPCG(1, 2))),
		coach.NewService(store, echoModel{}, logger.Nop()),
		logger.Nop(),
		opts,
	)
	r := gin.New()
	h.Register(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func signupAndLogin(t *testing.T, r http.Handler, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/signup", "", SignupRequest{
		Email: username + "@example.com", Username: username, Password: "password123", FullName: "Test " + username,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/login", "", LoginRequest{Username: username, Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[LoginSuccessResponse](t, w)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, username, resp.User.Username)
	return resp.Token
}

func TestSignupAndLogin(t *testing.T) {
	r := newTestRouter(t, Options{})
	signupAndLogin(t, r, "kim")

	t.Run("duplicate username", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/signup", "", SignupRequest{Email: "other@example.com", Username: "kim", Password: "password123"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
	t.Run("duplicate email", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/signup", "", SignupRequest{Email: "kim@example.com", Username: "lee", Password: "password123"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
	t.Run("short password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/signup", "", SignupRequest{Email: "park@example.com", Username: "park", Password: "123"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("bad email", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/signup", "", SignupRequest{Email: "not-an-email", Username: "park", Password: "password123"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", "", LoginRequest{Username: "kim", Password: "nope-nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", "", LoginRequest{Username: "ghost", Password: "password123"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("protected without token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSignupInviteCode(t *testing.T) {
	r := newTestRouter(t, Options{SignupInviteCode: "brainy"})

	w := doJSON(t, r, http.MethodPost, "/signup", "", SignupRequest{Email: "a@example.com", Username: "a", Password: "password123"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	body, _ := json.Marshal(SignupRequest{Email: "a@example.com", Username: "a", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Invite-Code", "brainy")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileAndPreferences(t *testing.T) {
	r := newTestRouter(t, Options{})
	token := signupAndLogin(t, r, "kim")

	w := doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[ProfileResponse](t, w)
	assert.Equal(t, 50, profile.CognitiveProfile.MemoryScore)
	assert.Equal(t, 50, profile.User.BrainHealthScore)

	w = doJSON(t, r, http.MethodPut, "/api/profile", token, models.UserProfile{FullName: " Kim Minji ", AvatarURL: "https://example.com/k.png"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kim Minji", decode[models.User](t, w).FullName)

	w = doJSON(t, r, http.MethodPut, "/api/preferences", token, map[string]any{
		"preferred_categories": []string{"focus"},
		"reminder_time":        "07:30",
		"theme":                "dark",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	prefs := decode[models.UserPreference](t, w)
	assert.Equal(t, []models.Category{models.CategoryFocus}, prefs.PreferredCategories)
	assert.Equal(t, "07:30:00", prefs.ReminderTime)
	assert.Equal(t, models.ThemeDark, prefs.Theme)
	// untouched fields keep their value
	assert.Equal(t, 15, prefs.DailyGoalMinutes)

	for name, body := range map[string]map[string]any{
		"unknown theme":    {"theme": "neon"},
		"unknown category": {"preferred_categories": []string{"music"}},
		"bad time":         {"reminder_time": "25:99"},
		"zero goal":        {"daily_goal_minutes": 0},
	} {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPut, "/api/preferences", token, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	w = doJSON(t, r, http.MethodGet, "/api/preferences", token, nil)
	assert.Equal(t, models.ThemeDark, decode[models.UserPreference](t, w).Theme)
}

func TestListExercises(t *testing.T) {
	r := newTestRouter(t, Options{})
	token := signupAndLogin(t, r, "kim")

	// default preferences: every skill category at medium difficulty
	w := doJSON(t, r, http.MethodGet, "/api/exercises", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	exercises := decode[[]models.Exercise](t, w)
	require.NotEmpty(t, exercises)
	for _, e := range exercises {
		assert.Equal(t, models.DifficultyMedium, e.Difficulty)
	}

	w = doJSON(t, r, http.MethodGet, "/api/exercises?category=focus", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	exercises = decode[[]models.Exercise](t, w)
	require.Len(t, exercises, 2)
	for _, e := range exercises {
		assert.Equal(t, models.CategoryFocus, e.Category)
	}

	w = doJSON(t, r, http.MethodGet, "/api/exercises?difficulty=hard&limit=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	exercises = decode[[]models.Exercise](t, w)
	require.Len(t, exercises, 1)
	assert.Equal(t, "dual-n-back", exercises[0].ID)

	assert.Equal(t, http.StatusBadRequest, doJSON(t, r, http.MethodGet, "/api/exercises?category=music", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, r, http.MethodGet, "/api/exercises?difficulty=insane", token, nil).Code)

	w = doJSON(t, r, http.MethodGet, "/api/exercises/memory-grid", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.KindMemoryGrid, decode[models.Exercise](t, w).Kind)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/api/exercises/nope", token, nil).Code)
}

func TestMemoryRoundFlow(t *testing.T) {
	r := newTestRouter(t, Options{})
	token := signupAndLogin(t, r, "kim")

	w := doJSON(t, r, http.MethodPost, "/api/exercises/memory-grid/rounds", token, StartRoundRequest{Level: 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	round := decode[exercise.Round](t, w)
	require.NotNil(t, round.Memory)
	assert.Len(t, round.Memory.Active, exercise.ActiveCellCount(2))

	path := "/api/rounds/" + round.ID + "/memory"

	// another user cannot grade this round
	other := signupAndLogin(t, r, "lee")
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodPost, path, other, MemorySubmission{Selected: round.Memory.Active}).Code)

	w = doJSON(t, r, http.MethodPost, path, token, MemorySubmission{Selected: round.Memory.Active})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[exercise.MemoryResult](t, w)
	assert.Equal(t, 1.0, result.Accuracy)
	assert.True(t, result.Advanced)
	assert.Equal(t, 3, result.NextLevel)

	// rounds are graded once
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodPost, path, token, MemorySubmission{}).Code)

	w = doJSON(t, r, http.MethodPost, "/api/exercises/memory-grid/rounds", token, StartRoundRequest{Level: 11})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoundKindChecks(t *testing.T) {
	r := newTestRouter(t, Options{})
	token := signupAndLogin(t, r, "kim")

	// guided exercises have no server-side engine
	assert.Equal(t, http.StatusConflict, doJSON(t, r, http.MethodPost, "/api/exercises/dual-n-back/rounds", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodPost, "/api/exercises/nope/rounds", token, nil).Code)

	w := doJSON(t, r, http.MethodPost, "/api/exercises/focus-cpt/rounds", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	round := decode[exercise.Round](t, w)
	require.NotNil(t, round.Focus)
	assert.Len(t, round.Focus.Stimuli, exercise.FocusItems)

	// submitting to the wrong engine
	w = doJSON(t, r, http.MethodPost, "/api/rounds/"+round.ID+"/memory", token, MemorySubmission{})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFocusRoundFlow(t *testing.T) {
	r := newTestRouter(t, Options{})
	token := signupAndLogin(t, r, "kim")

	w := doJSON(t, r, http.MethodPost, "/api/exercises/focus-cpt/rounds", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	round := decode[exercise.Round](t, w)

	responses := make([]exercise.FocusResponse, len(round.Focus.Stimuli))
	for i, s := range round.Focus.Stimuli {
		responses[i] = exercise.FocusResponse{Index: i, Pressed: s.Letter == exercise.FocusTarget, ReactionMS: 400}
	}
	w = doJSON(t, r, http.MethodPost, "/api/rounds/"+round.ID+"/focus", token, FocusSubmission{Responses: responses, ElapsedSeconds: 600})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[exercise.FocusResult](t, w)
	assert.Equal(t, exercise.FocusItems, result.Correct)
	assert.Equal(t, 1.0, result.Accuracy)
	// the server saw far less than the claimed ten minutes
	assert.Less(t, result.TimeSpent, 60)
}

func TestPuzzleRoundHidesAnswers(t *testing.T) {
	r := newTestRouter(t, Options{})
	token := signupAndLogin(t, r, "kim")

	w := doJSON(t, r, http.MethodPost, "/api/exercises/logic-puzzles/rounds", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"answer"`)
	assert.NotContains(t, w.Body.String(), `"explanation"`)
	round := decode[exercise.Round](t, w)
	require.NotNil(t, round.Puzzles)
	require.NotEmpty(t, round.Puzzles.Puzzles)

	one := 1
	answers := make([]exercise.PuzzleAnswer, 0, len(round.Puzzles.Puzzles))
	for _, p := range round.Puzzles.Puzzles {
		answers = append(answers, exercise.PuzzleAnswer{PuzzleID: p.ID, Choice: &one, Seconds: 10})
	}
	w = doJSON(t, r, http.MethodPost, "/api/rounds/"+round.ID+"/puzzles", token, PuzzleSubmission{Answers: answers})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[exercise.PuzzleResult](t, w)
	assert.Equal(t, 1.0, result.Accuracy)
	assert.Equal(t, len(answers)*exercise.PuzzlePoints(10), result.Score)
	for _, o := range result.Outcomes {
		assert.NotEmpty(t, o.Explanation)
	}
}

func TestCompleteExerciseAndProgress(t *testing.T) {
	r := newTestRouter(t, Options{})
	token := signupAndLogin(t, r, "kim")

	w := doJSON(t, r, http.MethodPost, "/api/goals", token, GoalRequest{Title: "Two sessions", TargetValue: 2, GoalType: models.GoalExercises})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	goal := decode[models.UserGoal](t, w)
	assert.Equal(t, 0, goal.CurrentValue)

	complete := func(score int) progress.CompletionSummary {
		w := doJSON(t, r, http.MethodPost, "/api/complete-exercise", token, progress.CompleteInput{
			ExerciseID: "memory-grid", Score: &score, Accuracy: ptr(0.9), TimeSpent: ptr(90),
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return decode[progress.CompletionSummary](t, w)
	}

	first := complete(80)
	assert.Equal(t, models.CategoryMemory, first.Category)
	require.NotNil(t, first.CategoryScore)
	assert.Equal(t, 59, *first.CategoryScore)
	assert.Equal(t, 1, first.CurrentStreak)
	assert.Equal(t, 1, first.ExercisesCompleted)
	assert.Equal(t, 2, first.TotalTimeSpent)
	assert.Equal(t, 1, first.Record.DifficultyLevel)
	assert.NotEmpty(t, first.Record.ID)
	assert.Equal(t, "memory-grid", first.Record.ExerciseID)
	assert.NotEmpty(t, first.Record.UserID)
	assert.Empty(t, first.CompletedGoals)

	second := complete(80)
	assert.Equal(t, 1, second.CurrentStreak)
	require.Len(t, second.CompletedGoals, 1)
	assert.Equal(t, goal.ID, second.CompletedGoals[0].ID)
	assert.NotEqual(t, first.Record.ID, second.Record.ID)

	for name, body := range map[string]map[string]any{
		"bad accuracy":     {"exercise_id": "memory-grid", "score": 10, "accuracy": 1.5, "time_spent": 10},
		"score too large":  {"exercise_id": "memory-grid", "score": 1_000_001, "accuracy": 0.5, "time_spent": 10},
		"only exercise id": {"exercise_id": "memory-grid"},
		"missing score":    {"exercise_id": "memory-grid", "accuracy": 0.5, "time_spent": 10},
	} {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/complete-exercise", token, body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	w = doJSON(t, r, http.MethodPost, "/api/complete-exercise", token, map[string]any{
		"exercise_id": "nope", "score": 10, "accuracy": 0.5, "time_spent": 10,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// rejected submissions leave the profile alone
	w = doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[ProfileResponse](t, w)
	assert.Equal(t, *second.CategoryScore, profile.CognitiveProfile.MemoryScore)
	assert.Equal(t, 2, profile.User.ExercisesCompleted)

	w = doJSON(t, r, http.MethodGet, "/api/progress", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	overview := decode[progress.Overview](t, w)
	assert.Len(t, overview.ExerciseHistory, 2)
	require.Len(t, overview.StreakData, 1)
	assert.Equal(t, 2, overview.StreakData[0].ExercisesCompleted)
	assert.InDelta(t, 80, overview.CategoryScores[models.CategoryMemory], 0.001)

	w = doJSON(t, r, http.MethodGet, "/api/history?limit=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.ExerciseHistory](t, w), 1)

	w = doJSON(t, r, http.MethodGet, "/api/achievements", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	statuses := decode[[]progress.AchievementStatus](t, w)
	require.Len(t, statuses, len(progress.Achievements))
	for _, s := range statuses {
		if s.ID == "exercises-10" {
			assert.Equal(t, 2, s.Current)
			assert.Equal(t, 20, s.Progress)
			assert.False(t, s.Completed)
		}
	}
}

func TestGoals(t *testing.T) {
	r := newTestRouter(t, Options{})
	token := signupAndLogin(t, r, "kim")

	end := "2030-01-31"
	w := doJSON(t, r, http.MethodPost, "/api/goals", token, GoalRequest{Title: "Score 70", TargetValue: 70, GoalType: models.GoalScore, EndDate: &end})
	require.Equal(t, http.StatusOK, w.Code)
	goal := decode[models.UserGoal](t, w)
	// brain health starts at 50
	assert.Equal(t, 50, goal.CurrentValue)
	assert.False(t, goal.Completed)

	for name, req := range map[string]GoalRequest{
		"no title":    {TargetValue: 1, GoalType: models.GoalTime},
		"zero target": {Title: "x", GoalType: models.GoalTime},
		"bad type":    {Title: "x", TargetValue: 1, GoalType: "karma"},
		"bad date":    {Title: "x", TargetValue: 1, GoalType: models.GoalTime, EndDate: ptr("31/01/2030")},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, doJSON(t, r, http.MethodPost, "/api/goals", token, req).Code)
		})
	}

	w = doJSON(t, r, http.MethodGet, "/api/goals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.UserGoal](t, w), 1)

	// goals are scoped to their owner
	other := signupAndLogin(t, r, "lee")
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodDelete, "/api/goals/"+goal.ID, other, nil).Code)

	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodDelete, "/api/goals/"+goal.ID, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodDelete, "/api/goals/"+goal.ID, token, nil).Code)
}

func TestLearningAndDashboard(t *testing.T) {
	r := newTestRouter(t, Options{})
	token := signupAndLogin(t, r, "kim")

	w := doJSON(t, r, http.MethodGet, "/api/learning/latest", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	lc := decode[models.LearningContent](t, w)
	require.NotEmpty(t, lc.ID)

	w = doJSON(t, r, http.MethodPost, "/api/learning/"+lc.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.UserLearning](t, w).Completed)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodPost, "/api/learning/nope/complete", token, nil).Code)

	w = doJSON(t, r, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode[DashboardResponse](t, w)
	assert.Len(t, dash.RecommendedExercises, recommendedCount)
	require.NotNil(t, dash.LearningContent)
	assert.Equal(t, lc.ID, dash.LearningContent.ID)
	assert.Nil(t, dash.LatestCoachMessage)

	w = doJSON(t, r, http.MethodPost, "/api/coach", token, CoachRequest{Message: "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/dashboard", token, nil)
	dash = decode[DashboardResponse](t, w)
	require.NotNil(t, dash.LatestCoachMessage)
	assert.Equal(t, "coach: hello", dash.LatestCoachMessage.Content)
}

func TestCoach(t *testing.T) {
	r := newTestRouter(t, Options{CoachRatePerMinute: 3})
	token := signupAndLogin(t, r, "kim")

	w := doJSON(t, r, http.MethodPost, "/api/coach", token, CoachRequest{Message: "How do I focus?"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[CoachResponse](t, w)
	assert.Equal(t, "coach: How do I focus?", resp.Response)
	assert.Equal(t, models.RoleAssistant, resp.Message.Role)

	assert.Equal(t, http.StatusBadRequest, doJSON(t, r, http.MethodPost, "/api/coach", token, CoachRequest{Message: "  "}).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, r, http.MethodPost, "/api/coach", token, CoachRequest{Message: strings.Repeat("a", 4001)}).Code)
	assert.Equal(t, http.StatusTooManyRequests, doJSON(t, r, http.MethodPost, "/api/coach", token, CoachRequest{Message: "again"}).Code)

	w = doJSON(t, r, http.MethodGet, "/api/coach/messages", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	msgs := decode[[]models.ChatMessage](t, w)
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
}

func TestCoachWebSocket(t *testing.T) {
	r := newTestRouter(t, Options{})
	token := signupAndLogin(t, r, "kim")
	srv := httptest.NewServer(r)
	defer srv.Close()
	base := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/coach"

	_, resp, err := websocket.DefaultDialer.Dial(base+"?token=bogus", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(base+"?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	_, greeting, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, coachGreeting, string(greeting))

	// binary frames are ignored, the next text frame is answered
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{0x01, 0x02}))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("sleep tips?")))
	kind, reply, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, kind)
	assert.Equal(t, "coach: sleep tips?", string(reply))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("   ")))
	_, reply, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(reply), "error:"))
}

func TestCoachWebSocketSharesRateLimit(t *testing.T) {
	r := newTestRouter(t, Options{CoachRatePerMinute: 1})
	token := signupAndLogin(t, r, "kim")
	srv := httptest.NewServer(r)
	defer srv.Close()

	w := doJSON(t, r, http.MethodPost, "/api/coach", token, CoachRequest{Message: "first"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/coach?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage() // greeting
	require.NoError(t, err)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("second")))
	_, reply, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "error: too many requests", string(reply))

	// the limited frame never reached the coach
	w = doJSON(t, r, http.MethodGet, "/api/coach/messages", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.ChatMessage](t, w), 2)

	assert.Equal(t, http.StatusTooManyRequests, doJSON(t, r, http.MethodPost, "/api/coach", token, CoachRequest{Message: "third"}).Code)
}

func ptr[T any](v T) *T { return &v }
