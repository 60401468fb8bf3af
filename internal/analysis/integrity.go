package analysis

import (
	"strings"

	"go.uber.org/zap"

	"hirelens/internal/model"
)

// Honesty weighting per answer: 40% AI suspicion, 30% plagiarism,
// 20% timing health, 10% structure validity.
const (
	aiWeight         = 0.4
	plagiarismWeight = 0.3
	timeWeight       = 0.2
	structureWeight  = 0.1
)

// Kill-switch thresholds. Near-certain cheating overrides every other
// positive signal for that answer.
const (
	killSwitchThreshold = 0.8
	killSwitchCap       = 0.3
	certainAIThreshold  = 0.9
	certainAIHonesty    = 0.1
)

// Suspicion thresholds for marking a single answer.
const (
	suspiciousHonestyBelow = 0.6
	suspiciousSignalAbove  = 0.7
)

// Policy holds the tunable integrity-analysis constants.
type Policy struct {
	// EmptySessionHonesty is the overall honesty assigned when a session
	// has no answers. Defaults to fail-open: no evidence = presumed honest.
	EmptySessionHonesty float64
}

// DefaultPolicy returns the fail-open policy used in production.
func DefaultPolicy() Policy {
	return Policy{EmptySessionHonesty: 1.0}
}

// IntegrityAnalyzer runs the four signal analyzers over every answer in
// a session and fuses them into per-answer honesty scores and a
// session-level report. Stateless between calls and deterministic given
// identical input.
type IntegrityAnalyzer struct {
	ai        *AIDetector
	structure *StructureAnalyzer
	timing    *TimeBehaviorAnalyzer
	plag      *PlagiarismChecker
	policy    Policy
	log       *zap.Logger
}

func NewIntegrityAnalyzer(policy Policy, log *zap.Logger) *IntegrityAnalyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &IntegrityAnalyzer{
		ai:        NewAIDetector(),
		structure: NewStructureAnalyzer(),
		timing:    NewTimeBehaviorAnalyzer(),
		plag:      NewPlagiarismChecker(),
		policy:    policy,
		log:       log,
	}
}

// AnalyzeSession produces the full integrity report for a session.
// Answers referencing unknown question ids degrade to medium difficulty.
func (a *IntegrityAnalyzer) AnalyzeSession(summary model.SessionSummary, questions []model.Question) model.FullIntegrityReport {
	qIndex := model.QuestionIndex(questions)
	reports := make([]model.AnswerIntegrityReport, 0, len(summary.Answers))

	// Prior answer texts accumulate in submission order so the
	// plagiarism checker can compare each answer against all before it.
	previousTexts := make([]string, 0, len(summary.Answers))

	for _, answer := range summary.Answers {
		q := model.LookupQuestion(qIndex, answer.QuestionID)

		// Reuse the interview flow's speed-trap pre-score when present,
		// so typing-speed penalties are not applied twice.
		var aiRes model.SignalResult
		if answer.AIScore != nil {
			aiRes = model.SignalResult{Kind: model.KindAIDetection, Score: *answer.AIScore, Flags: []string{}}
		} else {
			aiRes = a.ai.Analyze(answer.Text, answer.TimeSpentSec)
		}

		structRes := a.structure.Analyze(answer.Text)
		timeRes := a.timing.Analyze(answer.TimeSpentSec, q.Difficulty, len([]rune(answer.Text)))
		plagRes := a.plag.Analyze(answer.Text, previousTexts)
		previousTexts = append(previousTexts, answer.Text)

		honesty := (1.0-aiRes.Score)*aiWeight +
			(1.0-plagRes.Score)*plagiarismWeight +
			timeRes.Score*timeWeight +
			structRes.Score*structureWeight

		if aiRes.Score > killSwitchThreshold || plagRes.Score > killSwitchThreshold {
			if honesty > killSwitchCap {
				honesty = killSwitchCap
			}
			if aiRes.Score > certainAIThreshold {
				honesty = certainAIHonesty
			}
		}

		suspicious := honesty < suspiciousHonestyBelow ||
			aiRes.Score > suspiciousSignalAbove ||
			plagRes.Score > suspiciousSignalAbove

		signals := []model.SignalResult{aiRes, structRes, timeRes, plagRes}
		summaryText := "Answer looks authentic and manually written."
		if suspicious {
			summaryText = "Suspicious activity detected: " + strings.Join(collectFlags(signals, 3), ", ")
			a.log.Debug("suspicious answer",
				zap.Int("question_id", answer.QuestionID),
				zap.Float64("honesty", honesty),
				zap.Float64("ai_score", aiRes.Score),
				zap.Float64("plagiarism_score", plagRes.Score))
		}

		reports = append(reports, model.AnswerIntegrityReport{
			QuestionID:    answer.QuestionID,
			HonestyScore:  round2(honesty * 100),
			IsSuspicious:  suspicious,
			AIProbability: aiRes.Score,
			Signals:       signals,
			Summary:       summaryText,
		})
	}

	overall := a.policy.EmptySessionHonesty
	if len(reports) > 0 {
		sum := 0.0
		for _, r := range reports {
			sum += r.HonestyScore
		}
		overall = sum / float64(len(reports)) / 100
	}

	suspiciousCount := 0
	for _, r := range reports {
		if r.IsSuspicious {
			suspiciousCount++
		}
	}

	globalFlags := make([]string, 0, 2)
	if overall < 0.5 {
		globalFlags = append(globalFlags, model.FlagHighRiskOfCheating)
	}
	if len(reports) > 0 && float64(suspiciousCount) > float64(len(reports))/2 {
		globalFlags = append(globalFlags, model.FlagSystemicAIUsage)
	}

	return model.FullIntegrityReport{
		SessionID:       summary.SessionID,
		CandidateName:   summary.CandidateName,
		OverallHonesty:  round2(overall),
		SuspiciousCount: suspiciousCount,
		GlobalFlags:     globalFlags,
		AnswerReports:   reports,
		Recommendation:  honestyRecommendation(overall),
	}
}

func honestyRecommendation(overall float64) string {
	switch {
	case overall > 0.8:
		return "Highly Trustworthy: The candidate answered naturally and manually."
	case overall > 0.6:
		return "Mostly Honest: Some flags detected, but likely minor assistance or fast typing."
	case overall > 0.4:
		return "Suspect: Significant indicators of AI assistance or automated tools."
	default:
		return "Risk: Strong probability of systemic cheating. Human review recommended."
	}
}

// collectFlags gathers up to limit distinct flags across signal results.
func collectFlags(signals []model.SignalResult, limit int) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, limit)
	for _, s := range signals {
		for _, f := range s.Flags {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			if len(out) < limit {
				out = append(out, f)
			}
		}
	}
	return out
}
