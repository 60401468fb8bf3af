package analysis

import (
	"strings"

	"hirelens/internal/model"
)

// PlagiarismChecker detects templated answers and cross-answer
// self-plagiarism. The score is a running max across all checks: a
// strong match is never averaged down by weaker ones.
type PlagiarismChecker struct{}

func NewPlagiarismChecker() *PlagiarismChecker {
	return &PlagiarismChecker{}
}

// Flags raised by the plagiarism checker.
const (
	FlagKnownTemplate      = "known_template_detected"
	FlagTemplatedPhrasing  = "possible_templated_phrasing"
	FlagHighSelfSimilarity = "high_self_similarity"
)

// Analyze checks text against the template corpus and against all prior
// answers in the same session, in submission order.
func (p *PlagiarismChecker) Analyze(text string, previousAnswers []string) model.SignalResult {
	flags := make([]string, 0, 2)
	prob := 0.0
	textLower := strings.ToLower(text)

	for _, template := range knownTemplates {
		tmplLower := strings.ToLower(template)

		if strings.Contains(textLower, tmplLower) {
			if !containsString(flags, FlagKnownTemplate) {
				flags = append(flags, FlagKnownTemplate)
			}
			if prob < 0.9 {
				prob = 0.9
			}
			continue
		}

		if SequenceRatio(tmplLower, textLower) > 0.6 {
			if !containsString(flags, FlagTemplatedPhrasing) {
				flags = append(flags, FlagTemplatedPhrasing)
			}
			if prob < 0.5 {
				prob = 0.5
			}
		}
	}

	// Self-similarity between answers of the same session. Only texts
	// longer than 20 characters carry enough signal to compare.
	if len(previousAnswers) > 0 && len(text) > 20 {
		maxSim := 0.0
		for _, prev := range previousAnswers {
			if len(prev) <= 20 {
				continue
			}
			if sim := SequenceRatio(strings.ToLower(prev), textLower); sim > maxSim {
				maxSim = sim
			}
		}
		if maxSim > 0.7 {
			flags = append(flags, FlagHighSelfSimilarity)
			if prob < 0.4 {
				prob = 0.4
			}
		}
	}

	return model.SignalResult{
		Kind:        model.KindPlagiarism,
		Score:       prob,
		Probability: &prob,
		Flags:       flags,
		Details: map[string]any{
			"plagiarism_probability": prob,
			"found_matches":          len(flags),
		},
	}
}
