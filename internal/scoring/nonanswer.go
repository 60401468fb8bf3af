package scoring

import (
	"strings"
)

// Non-answer classification: gibberish, keyboard mash, and explicit
// "I don't know"-style answers score zero regardless of coincidental
// keyword overlap.

// IsNonAnswer reports whether text should receive zero points, and the
// matched rule for score audit logs.
func IsNonAnswer(text string) (bool, string) {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < 2 {
		return true, "empty_or_trivial"
	}

	textLower := strings.ToLower(trimmed)
	runes := []rune(textLower)

	// All-same-character strings like "aaaa".
	allSame := true
	for _, r := range runes[1:] {
		if r != runes[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return true, "repeated_single_character"
	}

	// "I don't know" equivalents. A phrase only zeroes the answer when it
	// dominates a short answer or is itself a strong signal.
	for _, phrase := range dontKnowPhrases {
		if !strings.Contains(textLower, phrase) {
			continue
		}
		_, strong := strongDontKnow[phrase]
		if strong || len(runes) < len([]rune(phrase))+15 {
			return true, "dont_know_phrase"
		}
	}

	if len(runes) > 5 {
		// Extremely low vowel ratio reads as keyboard mash.
		vowelCount := 0
		for _, r := range runes {
			if strings.ContainsRune(allVowels, r) {
				vowelCount++
			}
		}
		if float64(vowelCount)/float64(len(runes)) < 0.1 {
			return true, "low_vowel_ratio"
		}

		for _, row := range keyboardRows {
			if strings.Contains(textLower, row) {
				return true, "keyboard_row"
			}
			if len(runes) > 3 && strings.Contains(row, textLower) {
				return true, "keyboard_row"
			}
		}

		// Heavy word repetition like "blabla blabla blabla".
		words := strings.Fields(textLower)
		if len(words) > 3 {
			unique := make(map[string]struct{}, len(words))
			for _, w := range words {
				unique[w] = struct{}{}
			}
			if float64(len(unique))/float64(len(words)) < 0.4 {
				return true, "word_repetition"
			}
		}
	}

	return false, ""
}
