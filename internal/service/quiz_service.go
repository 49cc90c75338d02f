package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"practice-service/internal/bank"
	"practice-service/internal/constants"
	"practice-service/internal/models"
	"practice-service/internal/repository"

	"github.com/google/uuid"
)

type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.Attempt) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]models.Attempt, error)
}

type RabbitMQPublisher interface {
	Publish(ctx context.Context, queueName string, body []byte) error
}

// StartRequest carries the raw quiz parameters as submitted by the client.
// NumQuestions and TimerMinutes are parsed by StartQuiz so that malformed
// values surface as ErrInvalidParameters.
type StartRequest struct {
	Subject      string
	Year         string
	NumQuestions string
	TimerMinutes string
}

type QuizService struct {
	bank        *bank.Bank
	sessions    repository.SessionStore
	attempts    AttemptRepository
	mqPublisher RabbitMQPublisher
	logger      *slog.Logger

	now   func() time.Time
	newID func() string

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewQuizService wires the service. attempts and mqPublisher may be nil, in
// which case history and result events are skipped.
func NewQuizService(
	questionBank *bank.Bank,
	sessions repository.SessionStore,
	attempts AttemptRepository,
	mqPublisher RabbitMQPublisher,
	logger *slog.Logger,
) *QuizService {
	return &QuizService{
		bank:        questionBank,
		sessions:    sessions,
		attempts:    attempts,
		mqPublisher: mqPublisher,
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *QuizService) Overview() models.Overview {
	years := s.bank.Years()
	available := make(map[string]bool, len(years))
	for _, year := range years {
		available[year] = s.bank.YearHasData(year)
	}

	return models.Overview{
		Years:              years,
		Subjects:           s.bank.Subjects(),
		AvailableYearsData: available,
	}
}

// StartQuiz draws a fresh random question set and replaces the caller's
// session with it.
func (s *QuizService) StartQuiz(ctx context.Context, sessionID string, req StartRequest) (*models.Session, error) {
	if !s.bank.ValidSelection(req.Subject, req.Year) {
		return nil, fmt.Errorf("%w: subject %q, year %q", ErrInvalidSelection, req.Subject, req.Year)
	}

	count, err := strconv.Atoi(strings.TrimSpace(req.NumQuestions))
	if err != nil {
		return nil, fmt.Errorf("%w: num_questions must be an integer", ErrInvalidParameters)
	}

	timerMinutes := constants.DefaultTimerMinutes
	if raw := strings.TrimSpace(req.TimerMinutes); raw != "" {
		timerMinutes, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: timer must be an integer", ErrInvalidParameters)
		}
	}
	if timerMinutes <= 0 {
		return nil, fmt.Errorf("%w: timer must be a positive number of minutes", ErrInvalidParameters)
	}

	questions, ok := s.bank.Questions(req.Subject, req.Year)
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrNoData, req.Subject, req.Year)
	}

	if count < 1 || count > len(questions) {
		return nil, fmt.Errorf("%w: choose between 1 and %d questions", ErrOutOfRange, len(questions))
	}

	now := s.now()
	session := &models.Session{
		Questions:    s.sample(questions, count),
		Deadline:     now.Add(time.Duration(timerMinutes) * time.Minute),
		TimerMinutes: timerMinutes,
		Subject:      req.Subject,
		Year:         req.Year,
		StartedAt:    now,
	}

	if err := s.sessions.Put(ctx, sessionID, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info("quiz started",
		"subject", session.Subject,
		"year", session.Year,
		"questions", len(session.Questions),
		"timer_minutes", timerMinutes,
	)
	return session, nil
}

// sample picks n distinct questions uniformly without replacement.
func (s *QuizService) sample(questions []models.Question, n int) []models.Question {
	s.rngMu.Lock()
	perm := s.rng.Perm(len(questions))
	s.rngMu.Unlock()

	selected := make([]models.Question, n)
	for i := 0; i < n; i++ {
		selected[i] = questions[perm[i]]
	}
	return selected
}

// TimeRemaining reports the time left until the session deadline. It never
// modifies the session.
func (s *QuizService) TimeRemaining(ctx context.Context, sessionID string) (models.TimeRemaining, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return models.TimeRemaining{}, err
	}
	return remaining(session.Deadline, s.now()), nil
}

func remaining(deadline, now time.Time) models.TimeRemaining {
	delta := deadline.Sub(now)
	if delta <= 0 {
		return models.TimeRemaining{TimeUp: true}
	}

	total := int(delta / time.Second)
	return models.TimeRemaining{
		Minutes:      total / 60,
		Seconds:      total % 60,
		TotalSeconds: total,
	}
}

// Score grades answers, keyed by question text, against the session's
// questions. The deadline is not enforced. The session keeps its questions,
// so scoring again with the same answers yields the same report.
func (s *QuizService) Score(ctx context.Context, sessionID string, answers map[string]string) (*models.Report, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Answers: make([]models.AnswerRecord, 0, len(session.Questions)),
		Total:   len(session.Questions),
		Subject: session.Subject,
		Year:    session.Year,
	}

	for _, q := range session.Questions {
		record := models.AnswerRecord{
			Question:      q.Text,
			CorrectAnswer: q.Answer,
			Explanation:   q.Explanation,
			Options:       q.Options(),
		}
		if record.Explanation == "" {
			record.Explanation = constants.MissingExplanation
		}
		if submitted, ok := answers[q.Text]; ok {
			record.UserAnswer = &submitted
			record.IsCorrect = submitted == q.Answer
		}
		if record.IsCorrect {
			report.Score++
		}
		report.Answers = append(report.Answers, record)
	}

	if report.Total > 0 {
		report.Percentage = float64(report.Score) / float64(report.Total) * 100
	}

	session.LastResult = &models.ResultSummary{
		Score:      report.Score,
		Total:      report.Total,
		Percentage: report.Percentage,
	}
	if err := s.sessions.Put(ctx, sessionID, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	attempt := &models.Attempt{
		ID:          s.newID(),
		SessionID:   sessionID,
		Subject:     session.Subject,
		Year:        session.Year,
		Score:       report.Score,
		Total:       report.Total,
		Percentage:  report.Percentage,
		CompletedAt: s.now(),
	}
	s.recordAttempt(ctx, attempt)
	s.publishResult(ctx, attempt)

	s.logger.Info("quiz scored",
		"subject", report.Subject,
		"year", report.Year,
		"score", report.Score,
		"total", report.Total,
	)
	return report, nil
}

func (s *QuizService) Dashboard(ctx context.Context, sessionID string) (*models.Dashboard, error) {
	dashboard := &models.Dashboard{
		Subjects:           s.bank.Subjects(),
		PerformanceHistory: []models.Attempt{},
	}

	session, err := s.loadSession(ctx, sessionID)
	switch {
	case errors.Is(err, ErrNoActiveSession):
	case err != nil:
		return nil, err
	default:
		dashboard.LastResult = session.LastResult
	}

	if s.attempts == nil {
		return dashboard, nil
	}

	history, err := s.attempts.ListBySession(ctx, sessionID, constants.DashboardHistory)
	if err != nil {
		s.logger.Warn("failed to load performance history", "error", err)
		return dashboard, nil
	}
	if history != nil {
		dashboard.PerformanceHistory = history
	}
	return dashboard, nil
}

func (s *QuizService) loadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, ErrNoActiveSession
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, ErrNoActiveSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

func (s *QuizService) recordAttempt(ctx context.Context, attempt *models.Attempt) {
	if s.attempts == nil {
		return
	}

	if err := s.attempts.Create(ctx, attempt); err != nil {
		s.logger.Warn("failed to record attempt", "attempt_id", attempt.ID, "error", err)
	}
}

func (s *QuizService) publishResult(ctx context.Context, attempt *models.Attempt) {
	if s.mqPublisher == nil {
		return
	}

	type QuizResultEvent struct {
		AttemptID   string  `json:"attempt_id"`
		SessionID   string  `json:"session_id"`
		Subject     string  `json:"subject"`
		Year        string  `json:"year"`
		Score       int     `json:"score"`
		Total       int     `json:"total"`
		Percentage  float64 `json:"percentage"`
		CompletedAt string  `json:"completed_at"`
	}

	event := QuizResultEvent{
		AttemptID:   attempt.ID,
		SessionID:   attempt.SessionID,
		Subject:     attempt.Subject,
		Year:        attempt.Year,
		Score:       attempt.Score,
		Total:       attempt.Total,
		Percentage:  attempt.Percentage,
		CompletedAt: attempt.CompletedAt.Format(time.RFC3339),
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal quiz result event", "error", err)
		return
	}

	if err := s.mqPublisher.Publish(ctx, constants.ResultsQueue, eventJSON); err != nil {
		s.logger.Warn("failed to publish quiz result event", "error", err)
	}
}
