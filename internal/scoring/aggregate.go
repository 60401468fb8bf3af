package scoring

import (
	"math"
	"strings"

	"hirelens/internal/model"
)

// Final score fusion weights. Skills match edges out the others so the
// interview coverage of the CV matters slightly more.
const (
	skillsMatchWeight = 0.34
	knowledgeWeight   = 0.33
	confidenceWeight  = 0.33
)

// knowledgeFloor hard-zeroes the final score: no amount of skills match
// or confidence rescues a candidate with no technical substance.
const knowledgeFloor = 5.0

// Confidence points per confidence tier.
var confidencePointsMap = map[model.ConfidenceLevel]float64{
	model.ConfidenceHigh:   100,
	model.ConfidenceMedium: 65,
	model.ConfidenceLow:    30,
}

// SkillsMatch measures how well the interview questions covered the
// candidate's CV skills, 0-100. Empty input on either side earns no
// free credit.
func SkillsMatch(cvSkills []string, questions []model.Question) float64 {
	if len(cvSkills) == 0 || len(questions) == 0 {
		return 0
	}

	interviewSkills := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if s := strings.ToLower(q.Skill); s != "" {
			interviewSkills[s] = struct{}{}
		}
	}

	matches := 0
	for _, skill := range cvSkills {
		sl := strings.ToLower(skill)
		for is := range interviewSkills {
			if strings.Contains(is, sl) || strings.Contains(sl, is) {
				matches++
				break
			}
		}
	}

	return math.Min(100, float64(matches)/float64(len(cvSkills))*100)
}

// ConfidencePoints maps a confidence tier to its 0-100 contribution.
func ConfidencePoints(level model.ConfidenceLevel) float64 {
	if pts, ok := confidencePointsMap[level]; ok {
		return pts
	}
	return 50
}

// Breakdown assembles the component scores from the pipeline outputs.
func Breakdown(tech TechnicalScores, integrity model.FullIntegrityReport, cvSkills []string, questions []model.Question, confidence model.ConfidenceLevel) model.ScoreBreakdown {
	return model.ScoreBreakdown{
		KnowledgeScore:   roundTo2(tech.Knowledge),
		HonestyScore:     roundTo2(integrity.OverallHonesty * 100),
		SkillsMatchScore: roundTo2(SkillsMatch(cvSkills, questions)),
		ConfidencePoints: roundTo2(ConfidencePoints(confidence)),
	}
}

// FinalScore fuses the breakdown into a 0-100 integer. difficultyMix is
// the session's dominant difficulty tier and selects the weight profile
// recorded alongside the score; the fusion itself is fixed 34/33/33.
func FinalScore(breakdown model.ScoreBreakdown, difficultyMix model.Difficulty) int {
	if breakdown.KnowledgeScore < knowledgeFloor {
		return 0
	}

	final := breakdown.SkillsMatchScore*skillsMatchWeight +
		breakdown.KnowledgeScore*knowledgeWeight +
		breakdown.ConfidencePoints*confidenceWeight

	return int(math.Round(final))
}

// DifficultyMix returns the dominant difficulty tier across the
// session's questions; ties resolve toward the easier tier and an empty
// set defaults to medium.
func DifficultyMix(questions []model.Question) model.Difficulty {
	counts := map[model.Difficulty]int{}
	for _, q := range questions {
		counts[q.Difficulty]++
	}

	best := model.DifficultyMedium
	bestCount := 0
	for _, d := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		if counts[d] > bestCount {
			best = d
			bestCount = counts[d]
		}
	}
	return best
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
