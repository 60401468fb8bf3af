package interview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hirelens/internal/analysis"
	"hirelens/internal/cache"
	"hirelens/internal/model"
	"hirelens/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionFinished = errors.New("session already finished")
	ErrNoMoreQuestions = errors.New("no more questions")
)

// defaultTimeLimit applies when a question carries no explicit limit.
const defaultTimeLimit = 300 * time.Second

// Manager owns interview session lifecycle: creation, question flow,
// answer recording and completion. Access per session is serialized so
// concurrent submissions for the same session cannot race.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*model.InterviewSession
	started  map[string]time.Time // session id -> current question start

	repo      repository.SessionRepo
	sessCache cache.SessionCache
	detector  *analysis.AIDetector
	log       *zap.Logger
}

func NewManager(repo repository.SessionRepo, sessCache cache.SessionCache, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		sessions:  make(map[string]*model.InterviewSession),
		started:   make(map[string]time.Time),
		repo:      repo,
		sessCache: sessCache,
		detector:  analysis.NewAIDetector(),
		log:       log,
	}
}

// CreateSession starts a new interview for the candidate.
func (m *Manager) CreateSession(ctx context.Context, candidate model.Candidate, set model.QuestionSet) (*model.InterviewSession, error) {
	session := &model.InterviewSession{
		ID:            uuid.NewString(),
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		Lang:          candidate.Lang,
		Status:        model.SessionActive,
		StartedAt:     time.Now().UTC(),
		Questions:     set.Questions,
		Answers:       []model.Answer{},
	}

	if err := m.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.started[session.ID] = time.Now().UTC()
	m.mu.Unlock()

	if m.sessCache != nil {
		if err := m.sessCache.Set(ctx, session); err != nil {
			m.log.Warn("session cache set failed", zap.String("session_id", session.ID), zap.Error(err))
		}
	}

	m.log.Info("session created",
		zap.String("session_id", session.ID),
		zap.String("candidate", candidate.Name),
		zap.Int("questions", len(set.Questions)))

	return session, nil
}

// CurrentQuestion returns the question awaiting an answer.
func (m *Manager) CurrentQuestion(ctx context.Context, sessionID string) (*model.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionActive {
		return nil, ErrSessionFinished
	}
	if session.CurrentIndex >= len(session.Questions) {
		return nil, ErrNoMoreQuestions
	}
	q := session.Questions[session.CurrentIndex]
	return &q, nil
}

// SubmitAnswer records an immutable answer for the current question and
// advances the session. The AI detector runs once here with the real
// elapsed time; the resulting pre-score is attached so the integrity
// pass does not re-apply typing-speed penalties.
func (m *Manager) SubmitAnswer(ctx context.Context, sessionID, text string) (*model.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionActive {
		return nil, ErrSessionFinished
	}
	if session.CurrentIndex >= len(session.Questions) {
		return nil, ErrNoMoreQuestions
	}

	q := session.Questions[session.CurrentIndex]
	now := time.Now().UTC()
	elapsed := int(now.Sub(m.questionStartLocked(sessionID)).Seconds())

	limit := defaultTimeLimit
	if q.TimeLimitSec > 0 {
		limit = time.Duration(q.TimeLimitSec) * time.Second
	}
	timedOut := elapsed > int(limit.Seconds())

	answer := model.Answer{
		QuestionID:   q.ID,
		Text:         text,
		TimeSpentSec: elapsed,
		SubmittedAt:  now,
		IsTimeout:    timedOut,
	}

	if text != "" && !timedOut {
		res := m.detector.Analyze(text, elapsed)
		answer.AIScore = &res.Score
		if res.HasFlag(analysis.FlagSuperhumanTyping) {
			m.log.Warn("superhuman typing speed",
				zap.String("session_id", sessionID),
				zap.Int("question_id", q.ID))
		}
	}

	session.Answers = append(session.Answers, answer)
	session.CurrentIndex++
	m.started[sessionID] = now

	if session.CurrentIndex >= len(session.Questions) {
		session.Status = model.SessionCompleted
		ended := now
		session.EndedAt = &ended
	}

	if err := m.persistLocked(ctx, session); err != nil {
		return nil, err
	}
	return &answer, nil
}

// SkipQuestion records an empty timed-out answer for the current question.
func (m *Manager) SkipQuestion(ctx context.Context, sessionID string) error {
	_, err := m.submitTimeout(ctx, sessionID)
	return err
}

func (m *Manager) submitTimeout(ctx context.Context, sessionID string) (*model.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionActive {
		return nil, ErrSessionFinished
	}
	if session.CurrentIndex >= len(session.Questions) {
		return nil, ErrNoMoreQuestions
	}

	q := session.Questions[session.CurrentIndex]
	now := time.Now().UTC()
	answer := model.Answer{
		QuestionID:   q.ID,
		TimeSpentSec: int(now.Sub(m.questionStartLocked(sessionID)).Seconds()),
		SubmittedAt:  now,
		IsTimeout:    true,
	}

	session.Answers = append(session.Answers, answer)
	session.CurrentIndex++
	m.started[sessionID] = now

	if session.CurrentIndex >= len(session.Questions) {
		session.Status = model.SessionCompleted
		ended := now
		session.EndedAt = &ended
	}

	if err := m.persistLocked(ctx, session); err != nil {
		return nil, err
	}
	return &answer, nil
}

// FinishSession closes the session regardless of remaining questions and
// returns the read-only summary for scoring.
func (m *Manager) FinishSession(ctx context.Context, sessionID string) (*model.SessionSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionActive {
		session.Status = model.SessionCompleted
		ended := time.Now().UTC()
		session.EndedAt = &ended
		if err := m.persistLocked(ctx, session); err != nil {
			return nil, err
		}
	}

	return summarize(session), nil
}

// Summary returns the scoring snapshot without mutating the session.
func (m *Manager) Summary(ctx context.Context, sessionID string) (*model.SessionSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return summarize(session), nil
}

// Get returns the full session record.
func (m *Manager) Get(ctx context.Context, sessionID string) (*model.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked(ctx, sessionID)
}

// Questions returns the session's question list for metadata lookups.
func (m *Manager) Questions(ctx context.Context, sessionID string) ([]model.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Questions, nil
}

func summarize(session *model.InterviewSession) *model.SessionSummary {
	answers := make([]model.Answer, len(session.Answers))
	copy(answers, session.Answers)
	return &model.SessionSummary{
		SessionID:      session.ID,
		CandidateName:  session.CandidateName,
		TotalQuestions: len(session.Questions),
		Answers:        answers,
	}
}

// loadLocked fetches the session from memory, then the store.
func (m *Manager) loadLocked(ctx context.Context, sessionID string) (*model.InterviewSession, error) {
	if s, ok := m.sessions[sessionID]; ok {
		return s, nil
	}
	s, err := m.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	m.sessions[sessionID] = s
	m.started[sessionID] = time.Now().UTC()
	return s, nil
}

func (m *Manager) questionStartLocked(sessionID string) time.Time {
	if t, ok := m.started[sessionID]; ok {
		return t
	}
	return time.Now().UTC()
}

func (m *Manager) persistLocked(ctx context.Context, session *model.InterviewSession) error {
	if err := m.repo.Update(ctx, session); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if m.sessCache != nil {
		if err := m.sessCache.Set(ctx, session); err != nil {
			m.log.Warn("session cache set failed", zap.String("session_id", session.ID), zap.Error(err))
		}
	}
	return nil
}
