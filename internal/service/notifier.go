package service

import (
	"context"

	"go.uber.org/zap"

	"hirelens/internal/model"
)

// Notifier delivers evaluation results downstream. Actual channels
// (e-mail, SMS, messenger bots) live outside this service; the default
// implementation writes an audit log entry.
type Notifier interface {
	EvaluationReady(ctx context.Context, rec *model.FinalRecommendation)
}

type logNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &logNotifier{log: log}
}

func (n *logNotifier) EvaluationReady(_ context.Context, rec *model.FinalRecommendation) {
	n.log.Info("evaluation ready",
		zap.String("session_id", rec.SessionID),
		zap.String("candidate", rec.CandidateName),
		zap.String("decision", string(rec.Decision)),
		zap.Int("score", rec.FinalScore))
}
