package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hirelens/internal/model"
)

func TestSkillsMatch(t *testing.T) {
	questions := []model.Question{
		{ID: 1, Skill: "python"},
		{ID: 2, Skill: "sql"},
		{ID: 3, Skill: "soft_skills"},
	}

	tests := []struct {
		name     string
		cvSkills []string
		want     float64
	}{
		{"no cv skills earns nothing", nil, 0},
		{"full coverage", []string{"python", "sql"}, 100},
		{"partial coverage", []string{"python", "kubernetes"}, 50},
		{"substring match", []string{"skills"}, 100},
		{"case insensitive", []string{"Python"}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SkillsMatch(tt.cvSkills, questions), 1e-9)
		})
	}
}

func TestSkillsMatchNoQuestions(t *testing.T) {
	assert.Zero(t, SkillsMatch([]string{"python"}, nil))
}

func TestConfidencePoints(t *testing.T) {
	assert.Equal(t, 100.0, ConfidencePoints(model.ConfidenceHigh))
	assert.Equal(t, 65.0, ConfidencePoints(model.ConfidenceMedium))
	assert.Equal(t, 30.0, ConfidencePoints(model.ConfidenceLow))
	assert.Equal(t, 50.0, ConfidencePoints(model.ConfidenceLevel("unknown")))
}

func TestFinalScoreKnowledgeFloor(t *testing.T) {
	breakdown := model.ScoreBreakdown{
		KnowledgeScore:   4.9,
		HonestyScore:     100,
		SkillsMatchScore: 100,
		ConfidencePoints: 100,
	}
	// No technical substance hard-zeroes the result, whatever the rest says.
	assert.Zero(t, FinalScore(breakdown, model.DifficultyMedium))
}

func TestFinalScoreFusion(t *testing.T) {
	tests := []struct {
		name      string
		breakdown model.ScoreBreakdown
		want      int
	}{
		{
			"all components maxed",
			model.ScoreBreakdown{KnowledgeScore: 100, SkillsMatchScore: 100, ConfidencePoints: 100},
			100,
		},
		{
			"mid-range candidate",
			model.ScoreBreakdown{KnowledgeScore: 50, SkillsMatchScore: 50, ConfidencePoints: 65},
			55,
		},
		{
			"knowledge just above floor",
			model.ScoreBreakdown{KnowledgeScore: 5, SkillsMatchScore: 0, ConfidencePoints: 30},
			12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalScore(tt.breakdown, model.DifficultyMedium)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestDifficultyMix(t *testing.T) {
	tests := []struct {
		name      string
		questions []model.Question
		want      model.Difficulty
	}{
		{"empty defaults to medium", nil, model.DifficultyMedium},
		{
			"dominant tier wins",
			[]model.Question{
				{Difficulty: model.DifficultyEasy},
				{Difficulty: model.DifficultyEasy},
				{Difficulty: model.DifficultyHard},
			},
			model.DifficultyEasy,
		},
		{
			"tie resolves to the easier tier",
			[]model.Question{
				{Difficulty: model.DifficultyHard},
				{Difficulty: model.DifficultyEasy},
			},
			model.DifficultyEasy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DifficultyMix(tt.questions))
		})
	}
}

func TestWeightProfilesSumToOne(t *testing.T) {
	for _, d := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		w := Weights(d)
		assert.InDelta(t, 1.0, w.Knowledge+w.Honesty+w.Time+w.ProblemSolving, 1e-9, string(d))
	}
}
