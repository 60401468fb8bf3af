package analysis

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"hirelens/internal/model"
)

// AIDetector scores how likely an answer text was machine-generated.
// Pure heuristics: typing-speed trap, cliché markers, structural tells,
// vocabulary entropy and a perfect-grammar tell. Combination rule is
// additive with hard floors, capped at 0.98.
type AIDetector struct{}

func NewAIDetector() *AIDetector {
	return &AIDetector{}
}

var (
	numberedListRe = regexp.MustCompile(`(?m)^\d+\.\s`)
	colonDefRe     = regexp.MustCompile(`(?m)^\**[\p{L}\p{N}_ ]+:\**\s`)
	wordRe         = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentenceEndRe  = regexp.MustCompile(`[.!?]+`)
)

// Flags raised by the AI detector.
const (
	FlagEmptyText         = "empty_text"
	FlagSuperhumanTyping  = "superhuman_typing_speed"
	FlagFastTyping        = "fast_typing_suspicion"
	FlagStarFormatting    = "ai_star_formatting"
	FlagPerfectBullets    = "perfect_bullet_points"
	FlagPerfectNumbered   = "perfect_numbered_list"
	FlagColonDefinitions  = "colon_definitions_pattern"
	FlagHighRepetition    = "high_repetition_rate"
	FlagRobotTransitions  = "robot_transitions"
	FlagHighMarkerDensity = "high_marker_density"
)

// Analyze scores the text for AI authorship. timeSpentSec drives the
// typing-speed trap; pass 0 when elapsed time is unknown.
func (d *AIDetector) Analyze(text string, timeSpentSec int) model.SignalResult {
	if text == "" {
		return model.SignalResult{
			Kind:  model.KindAIDetection,
			Score: 0,
			Flags: []string{FlagEmptyText},
		}
	}

	flags := make([]string, 0, 4)
	textLower := strings.ToLower(text)

	// Speed trap. Average typing is ~40 WPM, fast is 80-100, >150 is not typing.
	wordCount := len(strings.Fields(text))
	wpm := 0.0
	if timeSpentSec > 0 {
		wpm = float64(wordCount) / float64(timeSpentSec) * 60
	}
	if wpm > 150 && wordCount > 10 {
		flags = append(flags, FlagSuperhumanTyping)
	} else if wpm > 100 && wordCount > 10 {
		flags = append(flags, FlagFastTyping)
	}

	// Cliché marker scan.
	markerCount := 0
	foundMarkers := make([]string, 0, 3)
	for _, marker := range aiMarkers {
		if strings.Contains(textLower, marker) {
			markerCount++
			if len(foundMarkers) < 3 {
				foundMarkers = append(foundMarkers, marker)
			}
		}
	}

	// Structural tells: list formatting and "Term: Definition" patterns.
	structureScore := 0.0
	starBullets, dashBullets := 0, 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "* "):
			starBullets++
		case strings.HasPrefix(trimmed, "- "):
			dashBullets++
		}
	}
	numberedLists := len(numberedListRe.FindAllString(text, -1))

	switch {
	case starBullets > 2:
		flags = append(flags, FlagStarFormatting)
		structureScore += 0.25
	case dashBullets > 2:
		flags = append(flags, FlagPerfectBullets)
		structureScore += 0.15
	case numberedLists > 2:
		flags = append(flags, FlagPerfectNumbered)
		structureScore += 0.15
	}

	if len(colonDefRe.FindAllString(text, -1)) > 1 {
		flags = append(flags, FlagColonDefinitions)
		structureScore += 0.2
	}

	// Entropy: generated text has flat vocabulary; humans are more chaotic.
	words := wordRe.FindAllString(textLower, -1)
	if len(words) > 20 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		ratio := float64(len(unique)) / float64(len(words))
		if ratio < 0.4 {
			flags = append(flags, FlagHighRepetition)
			structureScore += 0.2
		}

		transCount := 0
		for _, t := range transitionWords {
			if strings.Contains(textLower, t) {
				transCount++
			}
		}
		if transCount > 2 && len(words) < 50 {
			flags = append(flags, FlagRobotTransitions)
			structureScore += 0.2
		}
	}

	// Perfect grammar tell: humans usually miss a capital or two in chat.
	sentences := splitSentences(text)
	if len(sentences) > 2 {
		perfectCaps := 0
		for _, s := range sentences {
			if r := []rune(s); len(r) > 0 && unicode.IsUpper(r[0]) {
				perfectCaps++
			}
		}
		if perfectCaps == len(sentences) {
			structureScore += 0.1
		}
	}

	markerScore := math.Min(0.6, float64(markerCount)*0.15)
	probability := math.Min(0.98, markerScore+structureScore)

	if containsString(flags, FlagSuperhumanTyping) {
		probability = math.Max(probability, 0.99)
	} else if containsString(flags, FlagFastTyping) {
		probability = math.Max(probability, 0.75)
	}

	if markerCount >= 3 {
		flags = append(flags, FlagHighMarkerDensity)
		probability = math.Max(probability, 0.85)
	}

	score := round2(probability)
	return model.SignalResult{
		Kind:        model.KindAIDetection,
		Score:       score,
		Probability: &probability,
		Flags:       flags,
		Details: map[string]any{
			"marker_count":    markerCount,
			"found_markers":   foundMarkers,
			"wpm":             round1(wpm),
			"structure_score": round2(structureScore),
		},
	}
}

// splitSentences splits on .!? and drops fragments of 5 runes or fewer.
func splitSentences(text string) []string {
	parts := sentenceEndRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len([]rune(p)) > 5 {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
