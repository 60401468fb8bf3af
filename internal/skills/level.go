package skills

import (
	"math"

	"hirelens/internal/model"
)

// Level detection weights: experience dominates, then breadth of skills.
const (
	experienceWeight = 0.40
	skillCountWeight = 0.30
	confidenceWeight = 0.20
	diversityWeight  = 0.10
)

// Level thresholds on the 0-100 level score.
const (
	middleThreshold = 45
	seniorThreshold = 75
)

// LevelResult is the seniority verdict for a candidate profile.
type LevelResult struct {
	CandidateName string               `json:"candidateName"`
	Level         model.SeniorityLevel `json:"level"`
	LevelScore    float64              `json:"levelScore"` // 0-100
	Confidence    float64              `json:"confidence"` // 0-1, distance from tier boundary
	Skills        []string             `json:"skills"`
	Experience    float64              `json:"experienceYears"`
}

// skillCategories groups skills for the diversity component.
var skillCategories = map[string]string{
	"python": "language", "javascript": "language", "typescript": "language", "java": "language",
	"go": "language", "rust": "language", "c++": "language", "c#": "language", "php": "language",
	"ruby": "language", "swift": "language", "kotlin": "language",
	"react": "frontend", "vue": "frontend", "angular": "frontend", "svelte": "frontend",
	"html": "frontend", "css": "frontend", "tailwind": "frontend",
	"django": "backend", "flask": "backend", "fastapi": "backend", "express": "backend",
	"node.js": "backend", "spring boot": "backend", "laravel": "backend", "rails": "backend",
	"sql": "data", "postgresql": "data", "mysql": "data", "mongodb": "data", "redis": "data",
	"elasticsearch": "data", "machine learning": "data", "deep learning": "data",
	"docker": "devops", "kubernetes": "devops", "aws": "devops", "azure": "devops",
	"gcp": "devops", "terraform": "devops", "jenkins": "devops", "git": "devops", "linux": "devops",
}

// DetectLevel scores a candidate's seniority from CV-derived facts.
// extractionConfidence is 0-1: how much the extraction itself is trusted.
func DetectLevel(candidateName string, candidateSkills []string, experienceYears float64, extractionConfidence float64) LevelResult {
	total := (scoreExperience(experienceYears)*experienceWeight +
		scoreSkillCount(candidateSkills)*skillCountWeight +
		clamp01(extractionConfidence)*confidenceWeight +
		scoreDiversity(candidateSkills)*diversityWeight) * 100

	level := model.LevelJunior
	switch {
	case total >= seniorThreshold:
		level = model.LevelSenior
	case total >= middleThreshold:
		level = model.LevelMiddle
	}

	return LevelResult{
		CandidateName: candidateName,
		Level:         level,
		LevelScore:    math.Round(total*100) / 100,
		Confidence:    math.Round(boundaryConfidence(total)*100) / 100,
		Skills:        candidateSkills,
		Experience:    experienceYears,
	}
}

func scoreExperience(years float64) float64 {
	switch {
	case years <= 1:
		return 0.1
	case years <= 3:
		return 0.3
	case years <= 5:
		return 0.6
	case years <= 7:
		return 0.8
	default:
		return 1.0
	}
}

func scoreSkillCount(candidateSkills []string) float64 {
	n := len(candidateSkills)
	switch {
	case n <= 3:
		return 0.2
	case n <= 6:
		return 0.5
	case n <= 10:
		return 0.8
	default:
		return 1.0
	}
}

// scoreDiversity rewards skills spread across categories rather than
// many skills in one niche.
func scoreDiversity(candidateSkills []string) float64 {
	categories := make(map[string]struct{})
	for _, s := range candidateSkills {
		if c, ok := skillCategories[s]; ok {
			categories[c] = struct{}{}
		}
	}
	switch len(categories) {
	case 0:
		return 0
	case 1:
		return 0.3
	case 2:
		return 0.6
	case 3:
		return 0.8
	default:
		return 1.0
	}
}

// boundaryConfidence is high mid-tier and low near a threshold.
func boundaryConfidence(score float64) float64 {
	nearest := math.Min(math.Abs(score-middleThreshold), math.Abs(score-seniorThreshold))
	return clamp01(0.5 + nearest/50)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
