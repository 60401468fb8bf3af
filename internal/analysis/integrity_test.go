package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelens/internal/model"
)

func testQuestions() []model.Question {
	return []model.Question{
		{ID: 1, Skill: "python", Difficulty: model.DifficultyMedium, Type: model.QuestionTheory, Text: "What is a dict?"},
		{ID: 2, Skill: "python", Difficulty: model.DifficultyHard, Type: model.QuestionTheory, Text: "Explain the GIL."},
	}
}

func TestIntegrityEmptySessionFailsOpen(t *testing.T) {
	a := NewIntegrityAnalyzer(DefaultPolicy(), nil)
	summary := model.SessionSummary{SessionID: "s1", CandidateName: "Alice", TotalQuestions: 2}

	report := a.AnalyzeSession(summary, testQuestions())

	assert.Equal(t, 1.0, report.OverallHonesty)
	assert.Zero(t, report.SuspiciousCount)
	assert.Empty(t, report.GlobalFlags)
	assert.Empty(t, report.AnswerReports)
}

func TestIntegrityEmptySessionHonestyIsConfigurable(t *testing.T) {
	a := NewIntegrityAnalyzer(Policy{EmptySessionHonesty: 0.3}, nil)
	report := a.AnalyzeSession(model.SessionSummary{SessionID: "s1"}, nil)

	assert.InDelta(t, 0.3, report.OverallHonesty, 1e-9)
	assert.Contains(t, report.GlobalFlags, model.FlagHighRiskOfCheating)
}

func TestIntegrityKillSwitchOnCertainAI(t *testing.T) {
	a := NewIntegrityAnalyzer(DefaultPolicy(), nil)
	pre := 0.95
	summary := model.SessionSummary{
		SessionID:      "s1",
		CandidateName:  "Bob",
		TotalQuestions: 2,
		Answers: []model.Answer{
			{
				QuestionID:   1,
				Text:         "First we hash the key because lookups must be constant, then we store the value in the bucket list.",
				TimeSpentSec: 90,
				AIScore:      &pre,
			},
		},
	}

	report := a.AnalyzeSession(summary, testQuestions())

	require.Len(t, report.AnswerReports, 1)
	ar := report.AnswerReports[0]
	// Near-certain AI authorship overrides every healthy signal.
	assert.InDelta(t, 10.0, ar.HonestyScore, 0.01)
	assert.True(t, ar.IsSuspicious)
	assert.Equal(t, 0.95, ar.AIProbability)
	assert.Contains(t, report.GlobalFlags, model.FlagHighRiskOfCheating)
	assert.Contains(t, report.GlobalFlags, model.FlagSystemicAIUsage)
}

func TestIntegrityHonestAnswerStaysClean(t *testing.T) {
	a := NewIntegrityAnalyzer(DefaultPolicy(), nil)
	summary := model.SessionSummary{
		SessionID:      "s2",
		TotalQuestions: 2,
		Answers: []model.Answer{
			{
				QuestionID: 1,
				Text: "First you check the load factor because resizing is expensive, then the key gets hashed " +
					"into a bucket and collisions go into a chain.",
				TimeSpentSec: 120,
			},
		},
	}

	report := a.AnalyzeSession(summary, testQuestions())

	require.Len(t, report.AnswerReports, 1)
	ar := report.AnswerReports[0]
	assert.False(t, ar.IsSuspicious)
	assert.Greater(t, ar.HonestyScore, 60.0)
	assert.Zero(t, report.SuspiciousCount)
	assert.Empty(t, report.GlobalFlags)
}

func TestIntegrityCrossAnswerSimilarityUsesSubmissionOrder(t *testing.T) {
	a := NewIntegrityAnalyzer(DefaultPolicy(), nil)
	repeated := "A binary search tree keeps elements ordered so lookups take logarithmic time on average."
	summary := model.SessionSummary{
		SessionID:      "s3",
		TotalQuestions: 2,
		Answers: []model.Answer{
			{QuestionID: 1, Text: repeated, TimeSpentSec: 120},
			{QuestionID: 2, Text: repeated, TimeSpentSec: 120},
		},
	}

	report := a.AnalyzeSession(summary, testQuestions())

	require.Len(t, report.AnswerReports, 2)
	firstPlag := signalOfKind(t, report.AnswerReports[0].Signals, model.KindPlagiarism)
	secondPlag := signalOfKind(t, report.AnswerReports[1].Signals, model.KindPlagiarism)

	// The first answer has nothing before it to copy from.
	assert.NotContains(t, firstPlag.Flags, FlagHighSelfSimilarity)
	assert.Contains(t, secondPlag.Flags, FlagHighSelfSimilarity)
}

func TestIntegrityDeterministic(t *testing.T) {
	a := NewIntegrityAnalyzer(DefaultPolicy(), nil)
	summary := model.SessionSummary{
		SessionID:      "s4",
		TotalQuestions: 2,
		Answers: []model.Answer{
			{QuestionID: 1, Text: "Furthermore, it's important to note that dicts hash keys.", TimeSpentSec: 8},
			{QuestionID: 2, Text: "не знаю", TimeSpentSec: 3},
		},
	}

	first := a.AnalyzeSession(summary, testQuestions())
	second := a.AnalyzeSession(summary, testQuestions())
	require.Equal(t, first, second)
}

func TestIntegrityScoresBounded(t *testing.T) {
	a := NewIntegrityAnalyzer(DefaultPolicy(), nil)
	summary := model.SessionSummary{
		SessionID:      "s5",
		TotalQuestions: 2,
		Answers: []model.Answer{
			{QuestionID: 1, Text: "In this example, we use a dictionary to keep track of elements.", TimeSpentSec: 2},
			{QuestionID: 2, Text: "", TimeSpentSec: 0, IsTimeout: true},
		},
	}

	report := a.AnalyzeSession(summary, testQuestions())

	assert.GreaterOrEqual(t, report.OverallHonesty, 0.0)
	assert.LessOrEqual(t, report.OverallHonesty, 1.0)
	for _, ar := range report.AnswerReports {
		assert.GreaterOrEqual(t, ar.HonestyScore, 0.0)
		assert.LessOrEqual(t, ar.HonestyScore, 100.0)
	}
}

func signalOfKind(t *testing.T, signals []model.SignalResult, kind model.AnalyzerKind) model.SignalResult {
	t.Helper()
	for _, s := range signals {
		if s.Kind == kind {
			return s
		}
	}
	t.Fatalf("signal %s not found", kind)
	return model.SignalResult{}
}
