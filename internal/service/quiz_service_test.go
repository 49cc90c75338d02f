package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"testing"
	"time"

	"practice-service/internal/bank"
	"practice-service/internal/constants"
	"practice-service/internal/models"
	"practice-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttempts struct {
	mu        sync.Mutex
	created   []models.Attempt
	listErr   error
	createErr error
}

func (f *fakeAttempts) Create(_ context.Context, attempt *models.Attempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *attempt)
	return nil
}

func (f *fakeAttempts) ListBySession(_ context.Context, sessionID string, limit int) ([]models.Attempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Attempt
	for i := len(f.created) - 1; i >= 0 && len(out) < limit; i-- {
		if f.created[i].SessionID == sessionID {
			out = append(out, f.created[i])
		}
	}
	return out, nil
}

type fakePublisher struct {
	queue string
	body  []byte
	err   error
}

func (f *fakePublisher) Publish(_ context.Context, queueName string, body []byte) error {
	f.queue = queueName
	f.body = body
	return f.err
}

func makeQuestions(n int) []models.Question {
	qs := make([]models.Question, n)
	for i := range qs {
		qs[i] = models.Question{
			Text:        fmt.Sprintf("Question %d", i),
			OptionA:     "a",
			OptionB:     "b",
			OptionC:     "c",
			OptionD:     "d",
			Answer:      "A",
			Explanation: "because",
		}
	}
	return qs
}

func testBank() *bank.Bank {
	catalog := bank.Catalog{
		Subjects: []string{"Physics", "Botany"},
		Years:    []string{"2024", "2023"},
	}
	return bank.New(catalog, map[string]map[string][]models.Question{
		"2024": {"Physics": makeQuestions(10)},
	})
}

type fixture struct {
	svc       *QuizService
	store     *repository.MemorySessionStore
	attempts  *fakeAttempts
	publisher *fakePublisher
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:     repository.NewMemorySessionStore(24 * time.Hour),
		attempts:  &fakeAttempts{},
		publisher: &fakePublisher{},
		now:       time.Now(),
	}
	f.svc = NewQuizService(testBank(), f.store, f.attempts, f.publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.svc.now = func() time.Time { return f.now }
	f.svc.rng = rand.New(rand.NewSource(1))
	return f
}

func start(count, timer string) StartRequest {
	return StartRequest{Subject: "Physics", Year: "2024", NumQuestions: count, TimerMinutes: timer}
}

func TestStartQuiz_SamplesDistinctQuestionsFromBank(t *testing.T) {
	f := newFixture(t)
	bankQuestions, _ := f.svc.bank.Questions("Physics", "2024")

	for count := 1; count <= len(bankQuestions); count++ {
		session, err := f.svc.StartQuiz(context.Background(), "s1", start(fmt.Sprint(count), "30"))
		require.NoError(t, err)
		require.Len(t, session.Questions, count)

		seen := make(map[string]bool, count)
		for _, q := range session.Questions {
			assert.False(t, seen[q.Text], "repeated question %q", q.Text)
			seen[q.Text] = true
			assert.Contains(t, bankQuestions, q)
		}
	}
}

func TestStartQuiz_StoresSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.StartQuiz(ctx, "s1", start("3", ""))
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultTimerMinutes, session.TimerMinutes)
	assert.True(t, session.Deadline.Equal(f.now.Add(time.Hour)))

	stored, err := f.store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, session.Questions, stored.Questions)
	assert.Equal(t, "Physics", stored.Subject)
	assert.Equal(t, "2024", stored.Year)
	assert.Nil(t, stored.LastResult)
}

func TestStartQuiz_ReplacesPreviousSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.StartQuiz(ctx, "s1", start("2", "10"))
	require.NoError(t, err)
	_, err = f.svc.Score(ctx, "s1", nil)
	require.NoError(t, err)

	_, err = f.svc.StartQuiz(ctx, "s1", start("5", "10"))
	require.NoError(t, err)

	stored, err := f.store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, stored.Questions, 5)
	assert.Nil(t, stored.LastResult)
}

func TestStartQuiz_Errors(t *testing.T) {
	testCases := []struct {
		name string
		req  StartRequest
		want error
	}{
		{name: "unknown subject", req: StartRequest{Subject: "Maths", Year: "2024", NumQuestions: "1"}, want: ErrInvalidSelection},
		{name: "unknown year", req: StartRequest{Subject: "Physics", Year: "1999", NumQuestions: "1"}, want: ErrInvalidSelection},
		{name: "selection checked first", req: StartRequest{Subject: "Maths", Year: "2024", NumQuestions: "x"}, want: ErrInvalidSelection},
		{name: "count not integer", req: start("many", "10"), want: ErrInvalidParameters},
		{name: "count missing", req: start("", "10"), want: ErrInvalidParameters},
		{name: "timer not integer", req: start("1", "ten"), want: ErrInvalidParameters},
		{name: "timer zero", req: start("1", "0"), want: ErrInvalidParameters},
		{name: "timer negative", req: start("1", "-5"), want: ErrInvalidParameters},
		{name: "no data", req: StartRequest{Subject: "Botany", Year: "2024", NumQuestions: "1"}, want: ErrNoData},
		{name: "no data before range", req: StartRequest{Subject: "Botany", Year: "2023", NumQuestions: "0"}, want: ErrNoData},
		{name: "count zero", req: start("0", "10"), want: ErrOutOfRange},
		{name: "count negative", req: start("-1", "10"), want: ErrOutOfRange},
		{name: "count above bank size", req: start("11", "10"), want: ErrOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			session, err := f.svc.StartQuiz(context.Background(), "s1", tc.req)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, IsClientError(err))
			assert.Nil(t, session)

			_, err = f.store.Get(context.Background(), "s1")
			assert.ErrorIs(t, err, repository.ErrSessionNotFound)
		})
	}
}

func TestStartQuiz_LongTimerAccepted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.StartQuiz(ctx, "s1", start("2", "2000"))
	require.NoError(t, err)
	assert.Equal(t, 2000, session.TimerMinutes)

	f.now = f.now.Add(30 * time.Second)
	left, err := f.svc.TimeRemaining(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, left.TimeUp)
	assert.Equal(t, 2000*60-30, left.TotalSeconds)
	assert.Equal(t, 1999, left.Minutes)
	assert.Equal(t, 30, left.Seconds)
}

func TestTimeRemaining_AfterStart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.StartQuiz(ctx, "s1", start("1", "1"))
	require.NoError(t, err)

	f.now = f.now.Add(250 * time.Millisecond)
	left, err := f.svc.TimeRemaining(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, left.TimeUp)
	assert.Greater(t, left.TotalSeconds, 0)
	assert.LessOrEqual(t, left.TotalSeconds, 60)
	assert.Equal(t, 59, left.TotalSeconds)
	assert.Equal(t, 0, left.Minutes)
	assert.Equal(t, 59, left.Seconds)
}

func TestTimeRemaining_SplitsMinutesAndSeconds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.StartQuiz(ctx, "s1", start("1", "5"))
	require.NoError(t, err)

	f.now = f.now.Add(2*time.Minute + 15*time.Second)
	left, err := f.svc.TimeRemaining(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.TimeRemaining{Minutes: 2, Seconds: 45, TotalSeconds: 165}, left)

	again, err := f.svc.TimeRemaining(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, left, again)
}

func TestTimeRemaining_AfterDeadline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.StartQuiz(ctx, "s1", start("1", "1"))
	require.NoError(t, err)

	for _, elapsed := range []time.Duration{time.Minute, time.Hour} {
		f.now = f.now.Add(elapsed)
		left, err := f.svc.TimeRemaining(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, models.TimeRemaining{TimeUp: true}, left)
	}
}

func TestTimeRemaining_NoSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TimeRemaining(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = f.svc.TimeRemaining(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func putSession(t *testing.T, f *fixture, questions []models.Question) {
	t.Helper()
	require.NoError(t, f.store.Put(context.Background(), "s1", &models.Session{
		Questions:    questions,
		Deadline:     f.now.Add(time.Minute),
		TimerMinutes: 1,
		Subject:      "Physics",
		Year:         "2024",
		StartedAt:    f.now,
	}))
}

func TestScore_HalfCorrect(t *testing.T) {
	f := newFixture(t)
	putSession(t, f, []models.Question{
		{Text: "Unit of force?", OptionA: "Newton", OptionB: "Joule", OptionC: "Watt", OptionD: "Pascal", Answer: "A", Explanation: "F = ma"},
		{Text: "Unit of energy?", OptionA: "Newton", OptionB: "Joule", OptionC: "Watt", OptionD: "Pascal", Answer: "B"},
	})

	report, err := f.svc.Score(context.Background(), "s1", map[string]string{
		"Unit of force?":  "A",
		"Unit of energy?": "C",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Score)
	assert.Equal(t, 2, report.Total)
	assert.InDelta(t, 50.0, report.Percentage, 1e-9)
	assert.Equal(t, "Physics", report.Subject)
	assert.Equal(t, "2024", report.Year)

	require.Len(t, report.Answers, 2)
	first := report.Answers[0]
	assert.Equal(t, "Unit of force?", first.Question)
	require.NotNil(t, first.UserAnswer)
	assert.Equal(t, "A", *first.UserAnswer)
	assert.True(t, first.IsCorrect)
	assert.Equal(t, "F = ma", first.Explanation)
	assert.Equal(t, "Newton", first.Options["A"])

	second := report.Answers[1]
	assert.False(t, second.IsCorrect)
	assert.Equal(t, "B", second.CorrectAnswer)
	assert.Equal(t, constants.MissingExplanation, second.Explanation)
}

func TestScore_UnansweredAndCaseSensitive(t *testing.T) {
	f := newFixture(t)
	putSession(t, f, makeQuestions(3))

	report, err := f.svc.Score(context.Background(), "s1", map[string]string{
		"Question 0": "a",
		"Question 9": "A",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, report.Score)
	require.NotNil(t, report.Answers[0].UserAnswer)
	assert.False(t, report.Answers[0].IsCorrect)
	assert.Nil(t, report.Answers[1].UserAnswer)
	assert.Nil(t, report.Answers[2].UserAnswer)
}

func TestScore_ZeroQuestions(t *testing.T) {
	f := newFixture(t)
	putSession(t, f, nil)

	report, err := f.svc.Score(context.Background(), "s1", map[string]string{"x": "A"})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 0.0, report.Percentage)
	assert.Empty(t, report.Answers)
}

func TestScore_ResubmissionIsIdentical(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.StartQuiz(ctx, "s1", start("4", "10"))
	require.NoError(t, err)

	answers := map[string]string{"Question 1": "A", "Question 2": "B", "Question 3": "A"}
	first, err := f.svc.Score(ctx, "s1", answers)
	require.NoError(t, err)

	f.now = f.now.Add(time.Minute)
	second, err := f.svc.Score(ctx, "s1", answers)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScore_LateSubmissionIsScored(t *testing.T) {
	f := newFixture(t)
	putSession(t, f, makeQuestions(1))
	f.now = f.now.Add(time.Hour)

	report, err := f.svc.Score(context.Background(), "s1", map[string]string{"Question 0": "A"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Score)
}

func TestScore_DuplicateTextSharesAnswer(t *testing.T) {
	f := newFixture(t)
	putSession(t, f, []models.Question{
		{Text: "Same wording", Answer: "A"},
		{Text: "Same wording", Answer: "B"},
	})

	report, err := f.svc.Score(context.Background(), "s1", map[string]string{"Same wording": "A"})
	require.NoError(t, err)
	assert.True(t, report.Answers[0].IsCorrect)
	assert.False(t, report.Answers[1].IsCorrect)
	assert.Equal(t, "A", *report.Answers[1].UserAnswer)
}

func TestScore_SideEffects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	putSession(t, f, makeQuestions(4))

	_, err := f.svc.Score(ctx, "s1", map[string]string{"Question 0": "A"})
	require.NoError(t, err)

	stored, err := f.store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, stored.LastResult)
	assert.Equal(t, models.ResultSummary{Score: 1, Total: 4, Percentage: 25}, *stored.LastResult)
	assert.Len(t, stored.Questions, 4)

	require.Len(t, f.attempts.created, 1)
	attempt := f.attempts.created[0]
	assert.Equal(t, "s1", attempt.SessionID)
	assert.Equal(t, 1, attempt.Score)
	assert.NotEmpty(t, attempt.ID)

	assert.Equal(t, constants.ResultsQueue, f.publisher.queue)
	var event map[string]any
	require.NoError(t, json.Unmarshal(f.publisher.body, &event))
	assert.Equal(t, attempt.ID, event["attempt_id"])
	assert.Equal(t, "Physics", event["subject"])
	assert.EqualValues(t, 25, event["percentage"])
}

func TestScore_SideEffectFailuresAreNotSurfaced(t *testing.T) {
	f := newFixture(t)
	f.attempts.createErr = errors.New("db down")
	f.publisher.err = errors.New("broker down")
	putSession(t, f, makeQuestions(2))

	report, err := f.svc.Score(context.Background(), "s1", map[string]string{"Question 0": "A"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Score)
}

func TestScore_NoSession(t *testing.T) {
	f := newFixture(t)

	report, err := f.svc.Score(context.Background(), "nobody", nil)
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.Nil(t, report)
	assert.Empty(t, f.attempts.created)
}

func TestOverview(t *testing.T) {
	f := newFixture(t)

	overview := f.svc.Overview()
	assert.Equal(t, []string{"2024", "2023"}, overview.Years)
	assert.Equal(t, []string{"Physics", "Botany"}, overview.Subjects)
	assert.Equal(t, map[string]bool{"2024": true, "2023": false}, overview.AvailableYearsData)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.svc.Dashboard(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, empty.LastResult)
	assert.Empty(t, empty.PerformanceHistory)
	assert.Equal(t, []string{"Physics", "Botany"}, empty.Subjects)

	putSession(t, f, makeQuestions(2))
	_, err = f.svc.Score(ctx, "s1", map[string]string{"Question 0": "A"})
	require.NoError(t, err)
	_, err = f.svc.Score(ctx, "s1", map[string]string{"Question 0": "A", "Question 1": "A"})
	require.NoError(t, err)

	dashboard, err := f.svc.Dashboard(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, dashboard.LastResult)
	assert.Equal(t, 2, dashboard.LastResult.Score)
	require.Len(t, dashboard.PerformanceHistory, 2)
	assert.Equal(t, 2, dashboard.PerformanceHistory[0].Score)
}

func TestDashboard_WithoutHistoryStore(t *testing.T) {
	f := newFixture(t)
	f.svc.attempts = nil

	dashboard, err := f.svc.Dashboard(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotNil(t, dashboard.PerformanceHistory)
	assert.Empty(t, dashboard.PerformanceHistory)
}

func TestDashboard_HistoryFailureDegrades(t *testing.T) {
	f := newFixture(t)
	f.attempts.listErr = errors.New("db down")

	dashboard, err := f.svc.Dashboard(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, dashboard.PerformanceHistory)
}
