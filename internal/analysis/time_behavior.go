package analysis

import (
	"hirelens/internal/model"
)

// TimeBehaviorAnalyzer scores response timing. Starts at 1.0 (healthy)
// and stacks penalties multiplicatively: each trigger encodes its own
// severity and several can compound.
type TimeBehaviorAnalyzer struct{}

func NewTimeBehaviorAnalyzer() *TimeBehaviorAnalyzer {
	return &TimeBehaviorAnalyzer{}
}

// Flags raised by the time-behavior analyzer.
const (
	FlagTooFastForHard      = "too_fast_for_hard_question"
	FlagTooFastForMedium    = "too_fast_for_medium_question"
	FlagSuspiciouslyShort   = "suspiciously_short_time"
	FlagImpossibleTyping    = "impossible_typing_speed"
	FlagExtremelyFastTyping = "extremely_high_typing_speed"
)

// cpsUnknown is the sentinel reported when elapsed time is zero.
const cpsUnknown = 999.0

// Analyze scores timing for one answer. textLength is the answer length
// in characters.
func (t *TimeBehaviorAnalyzer) Analyze(timeSpentSec int, difficulty model.Difficulty, textLength int) model.SignalResult {
	flags := make([]string, 0, 3)
	score := 1.0

	if difficulty == model.DifficultyHard && timeSpentSec < 45 {
		flags = append(flags, FlagTooFastForHard)
		score *= 0.4
	}
	if difficulty == model.DifficultyMedium && timeSpentSec < 20 {
		flags = append(flags, FlagTooFastForMedium)
		score *= 0.5
	}
	if timeSpentSec < 10 {
		flags = append(flags, FlagSuspiciouslyShort)
		score *= 0.3
	}

	// Typing correlation: humans sustain 3-4 chars/sec. >30 cps is paste.
	cps := cpsUnknown
	if timeSpentSec > 0 {
		cps = float64(textLength) / float64(timeSpentSec)
		if cps > 30 {
			flags = append(flags, FlagImpossibleTyping)
			score *= 0.3
		} else if cps > 15 {
			flags = append(flags, FlagExtremelyFastTyping)
			score *= 0.6
		}
	}

	return model.SignalResult{
		Kind:  model.KindTimeBehavior,
		Score: score,
		Flags: flags,
		Details: map[string]any{
			"time_spent":       timeSpentSec,
			"difficulty":       string(difficulty),
			"chars_per_second": round1(cps),
		},
	}
}
