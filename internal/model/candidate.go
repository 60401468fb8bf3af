package model

import "time"

// SeniorityLevel is the detected candidate level used for question selection.
type SeniorityLevel string

const (
	LevelJunior SeniorityLevel = "junior"
	LevelMiddle SeniorityLevel = "middle"
	LevelSenior SeniorityLevel = "senior"
)

// Candidate is an applicant with a parsed CV profile.
type Candidate struct {
	ID              string         `json:"id" bson:"_id"`
	Name            string         `json:"name" bson:"name"`
	Email           string         `json:"email" bson:"email"`
	Phone           string         `json:"phone,omitempty" bson:"phone,omitempty"`
	Lang            string         `json:"lang" bson:"lang"`
	Skills          []string       `json:"skills" bson:"skills"` // Canonical names from CV extraction
	ExperienceYears float64        `json:"experienceYears" bson:"experienceYears"`
	Level           SeniorityLevel `json:"level" bson:"level"`
	LevelScore      float64        `json:"levelScore" bson:"levelScore"` // 0-100
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
}
