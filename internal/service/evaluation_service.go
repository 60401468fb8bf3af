package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hirelens/internal/analysis"
	"hirelens/internal/cache"
	"hirelens/internal/model"
	"hirelens/internal/repository"
	"hirelens/internal/scoring"
)

// EvaluationService runs the full scoring pass for a finished session:
// integrity analysis, technical grading, confidence estimation, score
// fusion and the final recommendation, persisted for HR.
type EvaluationService struct {
	integrity *analysis.IntegrityAnalyzer
	technical *scoring.TechnicalScorer
	recRepo   repository.RecommendationRepo
	reports   cache.ReportCache
	notifier  Notifier
	log       *zap.Logger
}

func NewEvaluationService(
	integrity *analysis.IntegrityAnalyzer,
	technical *scoring.TechnicalScorer,
	recRepo repository.RecommendationRepo,
	reports cache.ReportCache,
	notifier Notifier,
	log *zap.Logger,
) *EvaluationService {
	if log == nil {
		log = zap.NewNop()
	}
	if notifier == nil {
		notifier = NewLogNotifier(log)
	}
	return &EvaluationService{
		integrity: integrity,
		technical: technical,
		recRepo:   recRepo,
		reports:   reports,
		notifier:  notifier,
		log:       log,
	}
}

// Evaluate scores a session end to end and persists the result.
// The pipeline itself is pure; only the final persistence touches I/O.
func (s *EvaluationService) Evaluate(
	ctx context.Context,
	summary model.SessionSummary,
	questions []model.Question,
	cvSkills []string,
) (*model.FinalRecommendation, error) {
	integrity := s.integrity.AnalyzeSession(summary, questions)
	tech := s.technical.Score(summary, questions)

	confidence := scoring.EstimateConfidence(
		summary.TotalQuestions,
		summary.AnsweredCount(),
		summary.AnswerLengths(),
		integrity.SuspiciousCount,
	)

	breakdown := scoring.Breakdown(tech, integrity, cvSkills, questions, confidence)
	mix := scoring.DifficultyMix(questions)
	finalScore := scoring.FinalScore(breakdown, mix)
	decision, reason := scoring.Recommend(finalScore, breakdown, integrity.GlobalFlags)
	comment := scoring.GenerateComment(breakdown, averageTimingScore(integrity))

	rec := &model.FinalRecommendation{
		SessionID:     summary.SessionID,
		CandidateName: summary.CandidateName,
		FinalScore:    finalScore,
		Decision:      decision,
		Confidence:    confidence,
		HRComment:     comment,
		Breakdown:     breakdown,
		Flags:         integrity.GlobalFlags,
		Metadata: map[string]any{
			"reason":             reason,
			"difficulty_mix":     string(mix),
			"weight_profile":     scoring.Weights(mix),
			"problem_solving":    tech.ProblemSolving,
			"suspicious_answers": integrity.SuspiciousCount,
			"integrity_summary":  integrity.Recommendation,
		},
	}

	if err := s.recRepo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save recommendation: %w", err)
	}
	if s.reports != nil {
		if err := s.reports.Set(ctx, rec); err != nil {
			s.log.Warn("report cache set failed", zap.String("session_id", rec.SessionID), zap.Error(err))
		}
	}

	s.notifier.EvaluationReady(ctx, rec)

	s.log.Info("session evaluated",
		zap.String("session_id", summary.SessionID),
		zap.String("candidate", summary.CandidateName),
		zap.Int("final_score", finalScore),
		zap.String("decision", string(decision)),
		zap.String("confidence", string(confidence)))

	return rec, nil
}

// GetEvaluation fetches a stored recommendation, preferring the cache.
func (s *EvaluationService) GetEvaluation(ctx context.Context, sessionID string) (*model.FinalRecommendation, error) {
	if s.reports != nil {
		if rec, err := s.reports.Get(ctx, sessionID); err == nil {
			return rec, nil
		}
	}
	return s.recRepo.GetBySessionID(ctx, sessionID)
}

// averageTimingScore extracts the mean time-behavior health (0-100)
// across the session's answers for the comment generator.
func averageTimingScore(report model.FullIntegrityReport) float64 {
	sum, n := 0.0, 0
	for _, ar := range report.AnswerReports {
		for _, sig := range ar.Signals {
			if sig.Kind == model.KindTimeBehavior {
				sum += sig.Score * 100
				n++
			}
		}
	}
	if n == 0 {
		return 100
	}
	return sum / float64(n)
}
