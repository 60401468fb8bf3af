package analysis

import (
	"regexp"
	"strings"

	"hirelens/internal/model"
)

// StructureAnalyzer scores the logical structure of an answer: code
// presence, step-by-step reasoning, and depth. Higher is healthier.
// Combination rule: arithmetic mean of every triggered component.
type StructureAnalyzer struct{}

func NewStructureAnalyzer() *StructureAnalyzer {
	return &StructureAnalyzer{}
}

var codePunctRe = regexp.MustCompile(`[{}();]`)

// Flags raised by the structure analyzer.
const (
	FlagContainsCode      = "contains_code"
	FlagLogicalSteps      = "logical_steps_detected"
	FlagNoExplainingSteps = "lack_of_explaining_steps"
	FlagComprehensive     = "comprehensive_answer"
	FlagTooShort          = "too_short_answer"
	FlagRawCodeNoWords    = "raw_code_no_explanation"
	FlagLongTextNoCode    = "long_text_no_code"
)

func (s *StructureAnalyzer) Analyze(text string) model.SignalResult {
	if text == "" {
		return model.SignalResult{Kind: model.KindStructure, Score: 0, Flags: []string{}}
	}

	flags := make([]string, 0, 4)
	scores := make([]float64, 0, 5)
	textLower := strings.ToLower(text)

	hasCode := strings.Contains(text, "```") || codePunctRe.MatchString(text)
	if hasCode {
		flags = append(flags, FlagContainsCode)
		scores = append(scores, 0.8)
	}

	foundLogic := 0
	for _, w := range logicMarkers {
		if strings.Contains(textLower, w) {
			foundLogic++
		}
	}
	if foundLogic >= 2 {
		flags = append(flags, FlagLogicalSteps)
		scores = append(scores, 1.0)
	} else {
		flags = append(flags, FlagNoExplainingSteps)
		scores = append(scores, 0.3)
	}

	wordCount := len(strings.Fields(text))
	switch {
	case wordCount > 100:
		flags = append(flags, FlagComprehensive)
		scores = append(scores, 1.0)
	case wordCount < 15:
		flags = append(flags, FlagTooShort)
		scores = append(scores, 0.2)
	default:
		scores = append(scores, 0.7)
	}

	// Code dumped without words, or an essay where code was expected.
	if hasCode && wordCount < 10 {
		flags = append(flags, FlagRawCodeNoWords)
		scores = append(scores, 0.4)
	}
	if !hasCode && wordCount > 80 {
		flags = append(flags, FlagLongTextNoCode)
		scores = append(scores, 0.6)
	}

	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	final := sum / float64(len(scores))

	return model.SignalResult{
		Kind:  model.KindStructure,
		Score: final,
		Flags: flags,
		Details: map[string]any{
			"word_count":         wordCount,
			"has_code":           hasCode,
			"logic_markers_found": foundLogic,
		},
	}
}
