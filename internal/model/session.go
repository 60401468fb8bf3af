package model

import "time"

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionExpired   SessionStatus = "expired"
)

// InterviewSession tracks one candidate's interview from start to finish.
type InterviewSession struct {
	ID            string        `json:"id" bson:"_id"`
	CandidateID   string        `json:"candidateId" bson:"candidateId"`
	CandidateName string        `json:"candidateName" bson:"candidateName"`
	Lang          string        `json:"lang" bson:"lang"`
	Status        SessionStatus `json:"status" bson:"status"`
	StartedAt     time.Time     `json:"startedAt" bson:"startedAt"`
	EndedAt       *time.Time    `json:"endedAt,omitempty" bson:"endedAt,omitempty"`
	CurrentIndex  int           `json:"currentIndex" bson:"currentIndex"`
	Questions     []Question    `json:"questions" bson:"questions"`
	Answers       []Answer      `json:"answers" bson:"answers"`
}

// SessionSummary is the read-only snapshot handed to the scoring pipeline.
type SessionSummary struct {
	SessionID      string   `json:"sessionId"`
	CandidateName  string   `json:"candidateName"`
	TotalQuestions int      `json:"totalQuestions"`
	Answers        []Answer `json:"answers"`
}

// AnsweredCount returns the number of non-timeout answers with text.
func (s *SessionSummary) AnsweredCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.Text != "" && !a.IsTimeout {
			n++
		}
	}
	return n
}

// AnswerLengths returns the character length of each answer, in order.
func (s *SessionSummary) AnswerLengths() []int {
	lengths := make([]int, 0, len(s.Answers))
	for _, a := range s.Answers {
		lengths = append(lengths, len([]rune(a.Text)))
	}
	return lengths
}
