package scoring

import "hirelens/internal/model"

// WeightProfile describes how the evaluation emphasis shifts with the
// session's dominant difficulty. Recorded in recommendation metadata so
// reviewers can see which profile applied.
type WeightProfile struct {
	Knowledge      float64 `json:"knowledge"`
	Honesty        float64 `json:"honesty"`
	Time           float64 `json:"time"`
	ProblemSolving float64 `json:"problemSolving"`
}

// Easy interviews lean on integrity and timing; hard interviews lean on
// knowledge and problem solving. Each profile sums to 1.0.
var weightProfiles = map[model.Difficulty]WeightProfile{
	model.DifficultyEasy: {
		Knowledge:      0.3,
		Honesty:        0.4,
		Time:           0.3,
		ProblemSolving: 0.0,
	},
	model.DifficultyMedium: {
		Knowledge:      0.4,
		Honesty:        0.3,
		Time:           0.2,
		ProblemSolving: 0.1,
	},
	model.DifficultyHard: {
		Knowledge:      0.5,
		Honesty:        0.2,
		Time:           0.0,
		ProblemSolving: 0.3,
	},
}

// Weights returns the profile for a difficulty tier, defaulting to medium.
func Weights(difficulty model.Difficulty) WeightProfile {
	if p, ok := weightProfiles[difficulty]; ok {
		return p
	}
	return weightProfiles[model.DifficultyMedium]
}
