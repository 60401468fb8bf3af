package interview

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelens/internal/model"
)

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]model.InterviewSession
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]model.InterviewSession)}
}

func (r *memSessionRepo) Create(_ context.Context, s *model.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *memSessionRepo) GetByID(_ context.Context, id string) (*model.InterviewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &s, nil
}

func (r *memSessionRepo) GetByCandidateID(_ context.Context, candidateID string) ([]*model.InterviewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.InterviewSession
	for _, s := range r.sessions {
		if s.CandidateID == candidateID {
			cp := s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSessionRepo) Update(_ context.Context, s *model.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *memSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func testSet() model.QuestionSet {
	return model.QuestionSet{
		CandidateName: "Alice",
		Level:         "middle",
		Questions: []model.Question{
			{ID: 1, Skill: "python", Difficulty: model.DifficultyMedium, Type: model.QuestionTheory, Text: "Q1"},
			{ID: 2, Skill: "python", Difficulty: model.DifficultyMedium, Type: model.QuestionCase, Text: "Q2"},
		},
	}
}

func newTestManager(t *testing.T) (*Manager, *memSessionRepo) {
	t.Helper()
	repo := newMemSessionRepo()
	return NewManager(repo, nil, nil), repo
}

func TestManagerFullFlow(t *testing.T) {
	ctx := context.Background()
	m, repo := newTestManager(t)

	session, err := m.CreateSession(ctx, model.Candidate{ID: "c1", Name: "Alice", Lang: "en"}, testSet())
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	assert.Equal(t, model.SessionActive, session.Status)

	q, err := m.CurrentQuestion(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, q.ID)

	ans, err := m.SubmitAnswer(ctx, session.ID, "A dict maps keys to values via hashing")
	require.NoError(t, err)
	assert.Equal(t, 1, ans.QuestionID)
	require.NotNil(t, ans.AIScore)
	assert.False(t, ans.IsTimeout)

	q, err = m.CurrentQuestion(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, q.ID)

	_, err = m.SubmitAnswer(ctx, session.ID, "I would profile the query first")
	require.NoError(t, err)

	// Answering the last question completes the session.
	_, err = m.CurrentQuestion(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionFinished)

	summary, err := m.Summary(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalQuestions)
	assert.Len(t, summary.Answers, 2)

	stored, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionCompleted, stored.Status)
	require.NotNil(t, stored.EndedAt)
}

func TestManagerSkipRecordsTimeout(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	session, err := m.CreateSession(ctx, model.Candidate{ID: "c1", Name: "Alice"}, testSet())
	require.NoError(t, err)

	require.NoError(t, m.SkipQuestion(ctx, session.ID))

	summary, err := m.Summary(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, summary.Answers, 1)
	assert.True(t, summary.Answers[0].IsTimeout)
	assert.Empty(t, summary.Answers[0].Text)
	assert.Nil(t, summary.Answers[0].AIScore)
}

func TestManagerFinishEarly(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	session, err := m.CreateSession(ctx, model.Candidate{ID: "c1", Name: "Alice"}, testSet())
	require.NoError(t, err)

	_, err = m.SubmitAnswer(ctx, session.ID, "only one answer")
	require.NoError(t, err)

	summary, err := m.FinishSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalQuestions)
	assert.Len(t, summary.Answers, 1)

	// No further submissions once finished.
	_, err = m.SubmitAnswer(ctx, session.ID, "late answer")
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestManagerUnknownSession(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	_, err := m.CurrentQuestion(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.SubmitAnswer(ctx, "missing", "text")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.FinishSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerReloadsFromRepo(t *testing.T) {
	ctx := context.Background()
	repo := newMemSessionRepo()
	first := NewManager(repo, nil, nil)

	session, err := first.CreateSession(ctx, model.Candidate{ID: "c1", Name: "Alice"}, testSet())
	require.NoError(t, err)

	// A fresh manager instance recovers state from the store.
	second := NewManager(repo, nil, nil)
	q, err := second.CurrentQuestion(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, q.ID)
}
