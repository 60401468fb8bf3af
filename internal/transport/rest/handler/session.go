package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"hirelens/internal/interview"
	"hirelens/internal/question"
	"hirelens/internal/repository"
	"hirelens/internal/service"
	"hirelens/internal/skills"
)

// SessionHandler drives the interview flow over REST.
type SessionHandler struct {
	candidates   repository.CandidateRepo
	selector     *question.Selector
	manager      *interview.Manager
	evaluator    *service.EvaluationService
	maxQuestions int
	log          *zap.Logger
}

func NewSessionHandler(
	candidates repository.CandidateRepo,
	selector *question.Selector,
	manager *interview.Manager,
	evaluator *service.EvaluationService,
	maxQuestions int,
	log *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		candidates:   candidates,
		selector:     selector,
		manager:      manager,
		evaluator:    evaluator,
		maxQuestions: maxQuestions,
		log:          log,
	}
}

type startSessionRequest struct {
	CandidateID string `json:"candidateId" validate:"required"`
}

// Start handles POST /v1/sessions: selects questions for the candidate's
// level and opens the interview.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	candidate, err := h.candidates.GetByID(r.Context(), req.CandidateID)
	if err != nil {
		writeError(w, http.StatusNotFound, "candidate not found")
		return
	}

	level := skills.LevelResult{
		CandidateName: candidate.Name,
		Level:         candidate.Level,
		Skills:        candidate.Skills,
		Experience:    candidate.ExperienceYears,
	}
	set := h.selector.Select(level, h.maxQuestions, candidate.Lang)
	if len(set.Questions) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "no questions available for candidate skills")
		return
	}

	session, err := h.manager.CreateSession(r.Context(), *candidate, set)
	if err != nil {
		h.log.Error("session create failed", zap.String("candidate_id", candidate.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// CurrentQuestion handles GET /v1/sessions/{id}/question.
func (h *SessionHandler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	q, err := h.manager.CurrentQuestion(r.Context(), id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

type submitAnswerRequest struct {
	Text string `json:"text"`
}

// SubmitAnswer handles POST /v1/sessions/{id}/answers.
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req submitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	answer, err := h.manager.SubmitAnswer(r.Context(), id, req.Text)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, answer)
}

// Skip handles POST /v1/sessions/{id}/skip.
func (h *SessionHandler) Skip(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.manager.SkipQuestion(r.Context(), id); err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "skipped"})
}

// Finish handles POST /v1/sessions/{id}/finish: closes the session and
// runs the full evaluation pipeline.
func (h *SessionHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	summary, err := h.manager.FinishSession(r.Context(), id)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	session, err := h.manager.Get(r.Context(), id)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	// Skills from the stored CV profile; a missing profile degrades to
	// zero skills match rather than blocking the evaluation.
	var cvSkills []string
	if candidate, cerr := h.candidates.GetByID(r.Context(), session.CandidateID); cerr == nil {
		cvSkills = candidate.Skills
	}

	rec, err := h.evaluator.Evaluate(r.Context(), *summary, session.Questions, cvSkills)
	if err != nil {
		h.log.Error("evaluation failed", zap.String("session_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, interview.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, interview.ErrSessionFinished):
		writeError(w, http.StatusConflict, "session already finished")
	case errors.Is(err, interview.ErrNoMoreQuestions):
		writeError(w, http.StatusConflict, "no more questions")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
