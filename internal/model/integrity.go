package model

// AnswerIntegrityReport is the integrity verdict for a single answer.
// Honesty is rescaled to 0-100; the raw signals are kept for audit.
type AnswerIntegrityReport struct {
	QuestionID    int            `json:"questionId" bson:"questionId"`
	HonestyScore  float64        `json:"honestyScore" bson:"honestyScore"` // 0-100
	IsSuspicious  bool           `json:"isSuspicious" bson:"isSuspicious"`
	AIProbability float64        `json:"aiProbability" bson:"aiProbability"`
	Signals       []SignalResult `json:"signals" bson:"signals"`
	Summary       string         `json:"summary" bson:"summary"`
}

// FullIntegrityReport is the session-level integrity verdict.
// OverallHonesty stays on the 0-1 scale: mean of per-answer scores / 100.
type FullIntegrityReport struct {
	SessionID       string                  `json:"sessionId" bson:"sessionId"`
	CandidateName   string                  `json:"candidateName" bson:"candidateName"`
	OverallHonesty  float64                 `json:"overallHonestyScore" bson:"overallHonestyScore"`
	SuspiciousCount int                     `json:"suspiciousAnswersCount" bson:"suspiciousAnswersCount"`
	GlobalFlags     []string                `json:"globalFlags" bson:"globalFlags"`
	AnswerReports   []AnswerIntegrityReport `json:"answerReports" bson:"answerReports"`
	Recommendation  string                  `json:"recommendation" bson:"recommendation"`
}

// HasGlobalFlag reports whether the session carries the given warning.
func (r *FullIntegrityReport) HasGlobalFlag(flag string) bool {
	for _, f := range r.GlobalFlags {
		if f == flag {
			return true
		}
	}
	return false
}

// Session-level integrity warnings.
const (
	FlagHighRiskOfCheating = "HIGH_RISK_OF_CHEATING"
	FlagSystemicAIUsage    = "SYSTEMIC_AI_USAGE_LIKELY"
)
