package model

// Decision is the terminal hiring recommendation tier.
type Decision string

const (
	DecisionStrongHire Decision = "Strong Hire"
	DecisionHire       Decision = "Hire"
	DecisionReview     Decision = "Review"
	DecisionReject     Decision = "Reject"
)

// Rank orders decisions from worst (0) to best (3) for comparisons.
func (d Decision) Rank() int {
	switch d {
	case DecisionStrongHire:
		return 3
	case DecisionHire:
		return 2
	case DecisionReview:
		return 1
	default:
		return 0
	}
}

// ConfidenceLevel states how much the numeric result should be trusted.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ScoreBreakdown holds the component scores feeding the final score.
// All values are 0-100.
type ScoreBreakdown struct {
	KnowledgeScore   float64 `json:"knowledgeScore" bson:"knowledgeScore"`
	HonestyScore     float64 `json:"honestyScore" bson:"honestyScore"`
	SkillsMatchScore float64 `json:"skillsMatchScore" bson:"skillsMatchScore"`
	ConfidencePoints float64 `json:"confidencePoints" bson:"confidencePoints"`
}

// FinalRecommendation is the terminal artifact handed to HR.
type FinalRecommendation struct {
	SessionID     string          `json:"sessionId" bson:"_id"`
	CandidateName string          `json:"candidateName" bson:"candidateName"`
	FinalScore    int             `json:"finalScore" bson:"finalScore"` // 0-100
	Decision      Decision        `json:"decision" bson:"decision"`
	Confidence    ConfidenceLevel `json:"confidence" bson:"confidence"`
	HRComment     string          `json:"hrComment" bson:"hrComment"` // RU|||UZ pair
	Breakdown     ScoreBreakdown  `json:"scoreBreakdown" bson:"scoreBreakdown"`
	Flags         []string        `json:"flags" bson:"flags"`
	Metadata      map[string]any  `json:"metadata,omitempty" bson:"metadata,omitempty"`
}
