package model

import "time"

// Answer is a single submitted interview answer.
// Created once by the interview flow and read-only afterwards.
type Answer struct {
	QuestionID   int       `json:"questionId" bson:"questionId"`
	Text         string    `json:"text" bson:"text"`
	TimeSpentSec int       `json:"timeSpentSec" bson:"timeSpentSec"`
	SubmittedAt  time.Time `json:"submittedAt" bson:"submittedAt"`
	IsTimeout    bool      `json:"isTimeout" bson:"isTimeout"`

	// AIScore is the speed-trap pre-score attached at submission time.
	// The integrity analyzer reuses it instead of re-running the AI
	// detector, so typing-speed penalties are applied only once.
	AIScore *float64 `json:"aiScore,omitempty" bson:"aiScore,omitempty"`
}

// WordCount returns the number of whitespace-separated tokens in the answer.
func (a *Answer) WordCount() int {
	n := 0
	inWord := false
	for _, r := range a.Text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}
