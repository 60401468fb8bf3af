package scoring

import (
	"strings"

	"hirelens/internal/model"
)

// Recommend maps a final score plus integrity context to a decision tier
// and a human-readable reason. The matrix is evaluated top-down, first
// match wins, and is monotonic in score for fixed honesty and flags.
func Recommend(score int, breakdown model.ScoreBreakdown, flags []string) (model.Decision, string) {
	switch {
	case score >= 85:
		if breakdown.HonestyScore < 60 {
			return model.DecisionReview, "Excellent technical knowledge, but significant integrity flags require human verification."
		}
		return model.DecisionStrongHire, "Exceptional candidate with strong technical depth and authentic communication."

	case score >= 70:
		if breakdown.HonestyScore < 50 {
			return model.DecisionReview, "Good technical level, but low honesty score suggests potential AI usage or copy-pasting."
		}
		return model.DecisionHire, "Solid technical foundation. The candidate displays clear competence in the required skills."

	case score >= 50:
		if hasFlag(flags, model.FlagHighRiskOfCheating) {
			return model.DecisionReject, "Candidate showed borderline performance and multiple serious integrity violations."
		}
		return model.DecisionReview, "Average performance. May need additional training or a follow-up interview for clarification."

	default:
		reason := "Score is below the required threshold for this position."
		if breakdown.KnowledgeScore < 40 {
			reason = "Insufficient technical knowledge demonstrated during the interview."
		}
		return model.DecisionReject, "Does not meet current requirements. " + reason
	}
}

// GenerateComment composes a bilingual (RU|||UZ) HR comment from three
// independent observations: knowledge tier, integrity tier and timing.
func GenerateComment(breakdown model.ScoreBreakdown, timingScore float64) string {
	var ru, uz []string

	if breakdown.KnowledgeScore > 80 {
		ru = append(ru, "Демонстрирует глубокое понимание концепций.")
		uz = append(uz, "Asosiy tushunchalarni chuqur bilishini namoyish etadi.")
	} else if breakdown.KnowledgeScore > 60 {
		ru = append(ru, "Показывает хорошее понимание стека.")
		uz = append(uz, "Texnologiyalar stekini yaxshi tushunadi.")
	}

	if breakdown.HonestyScore < 60 {
		ru = append(ru, "Заметка: Ответы похожи на AI.")
		uz = append(uz, "Eslatma: Javoblar AI ga o'xshaydi.")
	} else if breakdown.HonestyScore > 90 {
		ru = append(ru, "Ответы выглядят естественными.")
		uz = append(uz, "Javoblar tabiiy va samimiy ko'rinadi.")
	}

	if timingScore < 50 {
		ru = append(ru, "Подозрительно быстрые ответы.")
		uz = append(uz, "Javoblar shubhali darajada tez berilgan.")
	}

	if len(ru) == 0 {
		ru = append(ru, "Стандартный результат.")
		uz = append(uz, "Standart natija.")
	}

	return strings.Join(ru, " ") + "|||" + strings.Join(uz, " ")
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}
