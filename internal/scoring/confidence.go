package scoring

import "hirelens/internal/model"

// EstimateConfidence judges how reliable the numeric interview result is.
// Starts at 100 points and subtracts for thin data: few questions, low
// completion, shallow answers, and suspicious activity.
func EstimateConfidence(totalQuestions, answeredQuestions int, answerLengths []int, suspiciousCount int) model.ConfidenceLevel {
	if totalQuestions == 0 {
		return model.ConfidenceLow
	}

	points := 100

	if totalQuestions < 3 {
		points -= 40
	} else if totalQuestions < 5 {
		points -= 20
	}

	rate := float64(answeredQuestions) / float64(totalQuestions)
	if rate < 0.5 {
		points -= 50
	} else if rate < 0.8 {
		points -= 20
	}

	avgLen := 0.0
	if len(answerLengths) > 0 {
		sum := 0
		for _, l := range answerLengths {
			sum += l
		}
		avgLen = float64(sum) / float64(len(answerLengths))
	}
	if avgLen < 20 {
		points -= 30
	}

	points -= suspiciousCount * 15

	switch {
	case points >= 80:
		return model.ConfidenceHigh
	case points >= 50:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}
