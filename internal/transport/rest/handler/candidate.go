package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"hirelens/internal/model"
	"hirelens/internal/repository"
	"hirelens/internal/skills"
)

// CandidateHandler handles candidate intake and lookup.
type CandidateHandler struct {
	repo      repository.CandidateRepo
	extractor *skills.Extractor
	log       *zap.Logger
}

func NewCandidateHandler(repo repository.CandidateRepo, extractor *skills.Extractor, log *zap.Logger) *CandidateHandler {
	return &CandidateHandler{repo: repo, extractor: extractor, log: log}
}

type createCandidateRequest struct {
	Name   string `json:"name" validate:"required,min=2"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone"`
	Lang   string `json:"lang" validate:"omitempty,oneof=en ru uz"`
	CVText string `json:"cvText" validate:"required,min=20"`
}

// Create handles POST /v1/candidates: extracts skills from the plain CV
// text, detects seniority, and stores the profile. Document-format
// extraction happens upstream; only text arrives here.
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCandidateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.Lang == "" {
		req.Lang = "en"
	}

	candidateSkills := h.extractor.Extract(req.CVText)
	years := skills.ExperienceYears(req.CVText)

	extractionConfidence := 0.1
	if len(candidateSkills) > 0 {
		extractionConfidence = 0.85
	}
	level := skills.DetectLevel(req.Name, candidateSkills, years, extractionConfidence)

	candidate := &model.Candidate{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Lang:            req.Lang,
		Skills:          candidateSkills,
		ExperienceYears: years,
		Level:           level.Level,
		LevelScore:      level.LevelScore,
	}

	if err := h.repo.Upsert(r.Context(), candidate); err != nil {
		h.log.Error("candidate upsert failed", zap.String("email", req.Email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store candidate")
		return
	}

	h.log.Info("candidate created",
		zap.String("candidate_id", candidate.ID),
		zap.String("level", string(candidate.Level)),
		zap.Int("skills", len(candidateSkills)))

	writeJSON(w, http.StatusCreated, candidate)
}

// Get handles GET /v1/candidates/{id}.
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	candidate, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "candidate not found")
		return
	}
	writeJSON(w, http.StatusOK, candidate)
}
