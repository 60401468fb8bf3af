package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hirelens/internal/model"
	"hirelens/internal/repository"
)

// SummaryService answers HR dashboard queries over stored evaluations.
type SummaryService struct {
	recRepo repository.RecommendationRepo
	log     *zap.Logger
}

func NewSummaryService(recRepo repository.RecommendationRepo, log *zap.Logger) *SummaryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SummaryService{recRepo: recRepo, log: log}
}

// TopCandidates returns the best-scoring evaluated candidates. Rejected
// candidates are filtered out regardless of raw score.
func (s *SummaryService) TopCandidates(ctx context.Context, limit int) ([]*model.FinalRecommendation, error) {
	if limit <= 0 {
		limit = 10
	}

	// Over-fetch so filtering rejections still fills the page.
	recs, err := s.recRepo.TopByScore(ctx, limit*2)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}

	out := make([]*model.FinalRecommendation, 0, limit)
	for _, rec := range recs {
		if rec.Decision == model.DecisionReject {
			continue
		}
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
