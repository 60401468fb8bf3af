package model

// AnalyzerKind identifies which signal analyzer produced a result.
// Closed set: one handler per variant, no open-ended string dispatch.
type AnalyzerKind string

const (
	KindAIDetection  AnalyzerKind = "ai_detection"
	KindStructure    AnalyzerKind = "structure"
	KindTimeBehavior AnalyzerKind = "time_behavior"
	KindPlagiarism   AnalyzerKind = "plagiarism"
)

// SignalResult is the output of a single analyzer for a single answer.
// Scores are directional: ai_detection and plagiarism are suspicion
// (higher = worse), structure and time_behavior are health (higher = better).
type SignalResult struct {
	Kind        AnalyzerKind   `json:"kind" bson:"kind"`
	Score       float64        `json:"score" bson:"score"` // 0.0 to 1.0
	Probability *float64       `json:"probability,omitempty" bson:"probability,omitempty"`
	Flags       []string       `json:"flags" bson:"flags"`
	Details     map[string]any `json:"details,omitempty" bson:"details,omitempty"`
}

// HasFlag reports whether the result carries the given flag.
func (r *SignalResult) HasFlag(flag string) bool {
	for _, f := range r.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
