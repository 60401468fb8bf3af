package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"hirelens/internal/service"
)

// EvaluationHandler serves stored evaluation results to HR.
type EvaluationHandler struct {
	evaluator *service.EvaluationService
	summaries *service.SummaryService
	log       *zap.Logger
}

func NewEvaluationHandler(evaluator *service.EvaluationService, summaries *service.SummaryService, log *zap.Logger) *EvaluationHandler {
	return &EvaluationHandler{evaluator: evaluator, summaries: summaries, log: log}
}

// Get handles GET /v1/evaluations/{sessionId}.
func (h *EvaluationHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	rec, err := h.evaluator.GetEvaluation(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "evaluation not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Top handles GET /v1/evaluations/top?limit=N.
func (h *EvaluationHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	recs, err := h.summaries.TopCandidates(r.Context(), limit)
	if err != nil {
		h.log.Error("top candidates query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list candidates")
		return
	}
	writeJSON(w, http.StatusOK, recs)
}
