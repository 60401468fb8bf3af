package model

// Difficulty is the question difficulty tier
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuestionType defines what a question probes
type QuestionType string

const (
	QuestionTheory QuestionType = "theory" // Conceptual knowledge, keyword-gradable
	QuestionCase   QuestionType = "case"   // Applied scenario, problem-solving graded
	QuestionSoft   QuestionType = "soft"   // Culture fit, never technically graded
)

// Question is a single interview question from the bank
type Question struct {
	ID             int          `json:"id" bson:"_id"`
	Skill          string       `json:"skill" bson:"skill"`
	Difficulty     Difficulty   `json:"difficulty" bson:"difficulty"`
	Type           QuestionType `json:"type" bson:"type"`
	Text           string       `json:"text" bson:"text"`
	ExpectedTopics []string     `json:"expectedTopics" bson:"expectedTopics"` // Whole-word matched against answers
	Lang           string       `json:"lang" bson:"lang"`                     // "en", "ru", "uz"
	TimeLimitSec   int          `json:"timeLimitSec,omitempty" bson:"timeLimitSec,omitempty"`
}

// QuestionSet is the ordered list of questions selected for one interview
type QuestionSet struct {
	CandidateName string     `json:"candidateName"`
	Level         string     `json:"level"`
	Questions     []Question `json:"questions"`
}

// QuestionIndex maps question ids to their metadata for scoring lookups.
// Unknown ids degrade to a medium-difficulty placeholder instead of failing
// the whole scoring pass.
func QuestionIndex(questions []Question) map[int]Question {
	idx := make(map[int]Question, len(questions))
	for _, q := range questions {
		idx[q.ID] = q
	}
	return idx
}

// LookupQuestion returns the metadata for id, or a medium-difficulty
// placeholder when the id is unknown.
func LookupQuestion(idx map[int]Question, id int) Question {
	if q, ok := idx[id]; ok {
		return q
	}
	return Question{ID: id, Difficulty: DifficultyMedium}
}
