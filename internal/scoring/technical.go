package scoring

import (
	"math"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"hirelens/internal/model"
)

// TechnicalScores are the session-level knowledge and problem-solving
// averages, both 0-100.
type TechnicalScores struct {
	Knowledge      float64 `json:"knowledge"`
	ProblemSolving float64 `json:"problemSolving"`
}

// TechnicalScorer grades answer content: topic matching against expected
// topics, a gated length heuristic, a keyword-density bonus, and strict
// junk rejection. Every zero is logged with its reason.
type TechnicalScorer struct {
	log *zap.Logger
}

func NewTechnicalScorer(log *zap.Logger) *TechnicalScorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &TechnicalScorer{log: log}
}

// junkCharRe matches characters outside letters, digits and ordinary
// punctuation in any of the supported alphabets.
var junkCharRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,?!:;()\-]`)

// Score grades every answer in the summary and returns session averages.
// Unknown question ids degrade to empty metadata rather than failing.
func (t *TechnicalScorer) Score(summary model.SessionSummary, questions []model.Question) TechnicalScores {
	qIndex := model.QuestionIndex(questions)

	technical := make([]float64, 0, len(summary.Answers))
	problemSolving := make([]float64, 0, len(summary.Answers))

	for _, answer := range summary.Answers {
		q := model.LookupQuestion(qIndex, answer.QuestionID)

		if answer.Text == "" || answer.IsTimeout {
			t.log.Info("zero score",
				zap.Int("question_id", answer.QuestionID),
				zap.String("reason", "no answer or timeout"))
			technical = append(technical, 0)
			problemSolving = append(problemSolving, 0)
			continue
		}

		if nonAnswer, reason := IsNonAnswer(answer.Text); nonAnswer {
			t.log.Info("zero score",
				zap.Int("question_id", answer.QuestionID),
				zap.String("reason", "non-answer: "+reason))
			technical = append(technical, 0)
			problemSolving = append(problemSolving, 0)
			continue
		}

		textLower := strings.ToLower(answer.Text)
		wordCount := len(strings.Fields(answer.Text))

		// Topic match ratio, whole-word, no free baseline: zero expected
		// topics means zero topic score.
		matches := 0
		for _, topic := range q.ExpectedTopics {
			if wholeWordMatch(textLower, strings.ToLower(topic)) {
				matches++
			}
		}
		topicScore := 0.0
		if len(q.ExpectedTopics) > 0 {
			topicScore = float64(matches) / float64(len(q.ExpectedTopics)) * 100
		}

		keywordHits := 0
		for _, kw := range technicalKeywords {
			if strings.Contains(textLower, kw) {
				keywordHits++
			}
		}

		// Length heuristic, gated on relevance so long-but-irrelevant
		// answers stay at zero.
		lengthScore := 0.0
		switch {
		case wordCount > 20:
			if matches > 0 || keywordHits > 2 {
				lengthScore = 70
			}
		case wordCount > 10:
			if matches > 0 || keywordHits > 1 {
				lengthScore = 30
			}
		}

		// Junk-density guard: a real keyword mixed into mash like
		// "python asdfghjk" must not score via keyword presence alone.
		if t.isKeywordPlusJunk(answer.Text, wordCount) {
			t.log.Info("zero score",
				zap.Int("question_id", answer.QuestionID),
				zap.String("reason", "junk-mixed answer"))
			technical = append(technical, 0)
			problemSolving = append(problemSolving, 0)
			continue
		}

		keywordBonus := math.Min(30, float64(keywordHits)*5)
		knowledge := math.Min(100, math.Max(topicScore, lengthScore)+keywordBonus)

		if knowledge == 0 {
			t.log.Info("zero score",
				zap.Int("question_id", answer.QuestionID),
				zap.String("reason", "no topic, length or keyword signal"))
		}
		technical = append(technical, knowledge)

		if q.Type == model.QuestionCase {
			problemSolving = append(problemSolving, caseScore(textLower, wordCount, topicScore))
		} else {
			// Non-case answers only partially demonstrate problem solving.
			problemSolving = append(problemSolving, knowledge*0.8)
		}
	}

	return TechnicalScores{
		Knowledge:      mean(technical),
		ProblemSolving: mean(problemSolving),
	}
}

// caseScore grades problem-solving on case questions: trade-off markers
// plus a stronger length requirement.
func caseScore(textLower string, wordCount int, topicScore float64) float64 {
	markerPoints := 0.0
	for _, m := range problemSolvingMarkers {
		if strings.Contains(textLower, m) {
			markerPoints += 10
		}
	}

	lengthScore := 0.0
	switch {
	case wordCount > 30:
		lengthScore = 75
	case wordCount > 15:
		lengthScore = 50
	}

	return math.Min(100, math.Max(topicScore, lengthScore)+markerPoints)
}

// isKeywordPlusJunk detects short answers that pad a keyword with noise:
// high junk-character ratio, gibberish words, or too many random short
// words in a very short answer.
func (t *TechnicalScorer) isKeywordPlusJunk(text string, wordCount int) bool {
	if wordCount >= 20 {
		return false
	}

	junkChars := junkCharRe.FindAllString(text, -1)
	junkRatio := 0.0
	if n := len([]rune(text)); n > 0 {
		junkRatio = float64(len(junkChars)) / float64(n)
	}
	if junkRatio > 0.4 {
		return true
	}

	shortWords := 0
	for _, w := range strings.Fields(text) {
		wl := strings.ToLower(w)
		runes := []rune(wl)

		// Long word with almost no vowels reads as gibberish.
		if len(runes) > 5 {
			vowels := 0
			for _, r := range runes {
				if strings.ContainsRune(allVowels, r) {
					vowels++
				}
			}
			if float64(vowels)/float64(len(runes)) < 0.1 {
				return true
			}
		}

		if len(runes) <= 2 {
			if _, ok := commonShortWords[wl]; !ok {
				shortWords++
			}
		}
	}

	return shortWords > 3 && wordCount < 7
}

// wholeWordMatch reports whether needle occurs in haystack bounded by
// non-letter characters on both sides.
func wholeWordMatch(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	re, err := regexp.Compile(`(^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(needle) + `($|[^\p{L}\p{N}_])`)
	if err != nil {
		return strings.Contains(haystack, needle)
	}
	return re.MatchString(haystack)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
