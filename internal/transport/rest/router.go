package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"hirelens/internal/interview"
	"hirelens/internal/question"
	"hirelens/internal/repository"
	"hirelens/internal/service"
	"hirelens/internal/skills"
	"hirelens/internal/transport/rest/handler"
	"hirelens/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router.
type Container struct {
	CandidateRepo repository.CandidateRepo
	Extractor     *skills.Extractor
	Selector      *question.Selector
	Manager       *interview.Manager
	Evaluator     *service.EvaluationService
	Summaries     *service.SummaryService
	AuthToken     string
	MaxQuestions  int
	Log           *zap.Logger
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	candidateHandler := handler.NewCandidateHandler(c.CandidateRepo, c.Extractor, c.Log)
	sessionHandler := handler.NewSessionHandler(c.CandidateRepo, c.Selector, c.Manager, c.Evaluator, c.MaxQuestions, c.Log)
	evaluationHandler := handler.NewEvaluationHandler(c.Evaluator, c.Summaries, c.Log)

	authMW := middleware.NewAuthMiddleware(c.AuthToken)

	r.Use(corsMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.Use(authMW.RequireToken)

	// Candidate intake
	v1.HandleFunc("/candidates", candidateHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/candidates/{id}", candidateHandler.Get).Methods("GET", "OPTIONS")

	// Interview flow
	v1.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/question", sessionHandler.CurrentQuestion).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/answers", sessionHandler.SubmitAnswer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/skip", sessionHandler.Skip).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/finish", sessionHandler.Finish).Methods("POST", "OPTIONS")

	// HR results
	v1.HandleFunc("/evaluations/top", evaluationHandler.Top).Methods("GET", "OPTIONS")
	v1.HandleFunc("/evaluations/{sessionId}", evaluationHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
