package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelens/internal/analysis"
	"hirelens/internal/model"
	"hirelens/internal/scoring"
)

type memRecRepo struct {
	mu   sync.Mutex
	recs map[string]model.FinalRecommendation
}

func newMemRecRepo() *memRecRepo {
	return &memRecRepo{recs: make(map[string]model.FinalRecommendation)}
}

func (r *memRecRepo) Save(_ context.Context, rec *model.FinalRecommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs[rec.SessionID] = *rec
	return nil
}

func (r *memRecRepo) GetBySessionID(_ context.Context, sessionID string) (*model.FinalRecommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recs[sessionID]
	if !ok {
		return nil, errors.New("not found")
	}
	return &rec, nil
}

func (r *memRecRepo) TopByScore(_ context.Context, limit int) ([]*model.FinalRecommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.FinalRecommendation, 0, len(r.recs))
	for _, rec := range r.recs {
		cp := rec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FinalScore > out[j].FinalScore })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func evalQuestions() []model.Question {
	return []model.Question{
		{ID: 1, Skill: "python", Difficulty: model.DifficultyMedium, Type: model.QuestionTheory,
			Text: "How does a dict work?", ExpectedTopics: []string{"hash", "bucket", "collision"}},
		{ID: 2, Skill: "sql", Difficulty: model.DifficultyMedium, Type: model.QuestionTheory,
			Text: "Explain indexes.", ExpectedTopics: []string{"index", "btree", "lookup"}},
		{ID: 3, Skill: "soft_skills", Difficulty: model.DifficultyMedium, Type: model.QuestionSoft,
			Text: "Tell about a conflict.", ExpectedTopics: nil},
	}
}

func newTestEvaluator() (*EvaluationService, *memRecRepo) {
	repo := newMemRecRepo()
	svc := NewEvaluationService(
		analysis.NewIntegrityAnalyzer(analysis.DefaultPolicy(), nil),
		scoring.NewTechnicalScorer(nil),
		repo,
		nil,
		nil,
		nil,
	)
	return svc, repo
}

func TestEvaluateSolidCandidate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestEvaluator()

	summary := model.SessionSummary{
		SessionID:      "s1",
		CandidateName:  "Alice",
		TotalQuestions: 3,
		Answers: []model.Answer{
			{QuestionID: 1, TimeSpentSec: 110, Text: "The dict computes a hash of the key and places it into a bucket, " +
				"then on collision it probes the next slot so average complexity stays constant for lookups."},
			{QuestionID: 2, TimeSpentSec: 130, Text: "An index is usually a btree, so a lookup walks the tree instead of " +
				"scanning the whole table, and the database keeps it updated on writes."},
			{QuestionID: 3, TimeSpentSec: 90, Text: "We disagreed about the release scope, talked it through with the " +
				"manager and split the feature into two milestones everyone accepted."},
		},
	}

	rec, err := svc.Evaluate(ctx, summary, evalQuestions(), []string{"python", "sql"})
	require.NoError(t, err)

	assert.Equal(t, "s1", rec.SessionID)
	assert.Equal(t, "Alice", rec.CandidateName)
	assert.GreaterOrEqual(t, rec.FinalScore, 50)
	assert.LessOrEqual(t, rec.FinalScore, 100)
	assert.NotEqual(t, model.DecisionReject, rec.Decision)
	assert.Empty(t, rec.Flags)
	assert.Contains(t, rec.HRComment, "|||")
	assert.Equal(t, "medium", rec.Metadata["difficulty_mix"])

	stored, err := repo.GetBySessionID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, rec.FinalScore, stored.FinalScore)
}

func TestEvaluateEmptySessionRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestEvaluator()

	summary := model.SessionSummary{SessionID: "s2", CandidateName: "Bob", TotalQuestions: 3}
	rec, err := svc.Evaluate(ctx, summary, evalQuestions(), []string{"python"})
	require.NoError(t, err)

	// No answers: knowledge is zero, so the floor zeroes the final score.
	assert.Zero(t, rec.FinalScore)
	assert.Equal(t, model.DecisionReject, rec.Decision)
	// Fail-open integrity: silence is not evidence of cheating.
	assert.Empty(t, rec.Flags)
	assert.Equal(t, 100.0, rec.Breakdown.HonestyScore)
}

func TestEvaluateCheatingSessionFlagged(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestEvaluator()

	pre := 0.95
	summary := model.SessionSummary{
		SessionID:      "s3",
		CandidateName:  "Eve",
		TotalQuestions: 3,
		Answers: []model.Answer{
			{QuestionID: 1, TimeSpentSec: 5, AIScore: &pre, Text: "Furthermore, it's important to note that a dict " +
				"uses a hash function. Moreover, collisions go into a bucket. Additionally, lookups stay constant."},
			{QuestionID: 2, TimeSpentSec: 4, AIScore: &pre, Text: "It's important to note that an index is a btree. " +
				"Furthermore, a lookup walks the tree. Moreover, writes maintain it. Additionally, this is typical."},
		},
	}

	rec, err := svc.Evaluate(ctx, summary, evalQuestions(), []string{"python", "sql"})
	require.NoError(t, err)

	assert.Contains(t, rec.Flags, model.FlagHighRiskOfCheating)
	assert.Contains(t, rec.Flags, model.FlagSystemicAIUsage)
	// Strong technical content plus dirty integrity goes to human review.
	assert.Equal(t, model.DecisionReview, rec.Decision)
	assert.Less(t, rec.Breakdown.HonestyScore, 50.0)
}

func TestEvaluateIsRepeatable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestEvaluator()

	summary := model.SessionSummary{
		SessionID:      "s4",
		CandidateName:  "Dana",
		TotalQuestions: 3,
		Answers: []model.Answer{
			{QuestionID: 1, TimeSpentSec: 100, Text: "A dict hashes the key into a bucket and resolves collision by probing."},
		},
	}

	first, err := svc.Evaluate(ctx, summary, evalQuestions(), []string{"python"})
	require.NoError(t, err)
	second, err := svc.Evaluate(ctx, summary, evalQuestions(), []string{"python"})
	require.NoError(t, err)

	assert.Equal(t, first.FinalScore, second.FinalScore)
	assert.Equal(t, first.Decision, second.Decision)
	assert.Equal(t, first.Breakdown, second.Breakdown)
}

func TestGetEvaluationFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestEvaluator()

	require.NoError(t, repo.Save(ctx, &model.FinalRecommendation{SessionID: "s5", FinalScore: 77}))

	rec, err := svc.GetEvaluation(ctx, "s5")
	require.NoError(t, err)
	assert.Equal(t, 77, rec.FinalScore)
}
