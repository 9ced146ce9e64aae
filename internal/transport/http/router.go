package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"quiz-taker-service/internal/app"
	"quiz-taker-service/internal/domain"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	AllowedOrigins []string
	// RequestLogging enables chi's request logger.
	RequestLogging bool
}

// NewRouter mounts the REST API, the websocket endpoint and the health check.
func NewRouter(service *app.AttemptService, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	if opts.RequestLogging {
		r.Use(middleware.Logger)
	}
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
	}

	h := &restHandler{service: service}
	ws := NewWSHandler(service)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ws", ws.ServeWS)

	r.Route("/quizzes/{quizID}", func(r chi.Router) {
		r.Get("/", h.getQuiz)
		r.Post("/attempts", h.startAttempt)
	})
	r.Route("/attempts/{attemptID}", func(r chi.Router) {
		r.Delete("/", h.abandon)
		r.Get("/answers", h.getAnswers)
		r.Post("/answers", h.recordAnswer)
		r.Post("/submit", h.submit)
		r.Get("/questions/{questionID}/explanation", h.explain)
	})
	return r
}

type restHandler struct {
	service *app.AttemptService
}

type answerRequest struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

type answerResponse struct {
	QuestionID string   `json:"questionId"`
	Values     []string `json:"values"`
}

type explanationResponse struct {
	QuestionID  string `json:"questionId"`
	Explanation string `json:"explanation"`
}

func (h *restHandler) getQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.Quiz(r.Context(), chi.URLParam(r, "quizID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (h *restHandler) startAttempt(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Start(r.Context(), chi.URLParam(r, "quizID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *restHandler) getAnswers(w http.ResponseWriter, r *http.Request) {
	answers, err := h.service.Answers(r.Context(), chi.URLParam(r, "attemptID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answers)
}

func (h *restHandler) recordAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.QuestionID == "" {
		http.Error(w, "questionId required", http.StatusBadRequest)
		return
	}
	values, err := h.service.RecordAnswer(r.Context(), chi.URLParam(r, "attemptID"), req.QuestionID, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{QuestionID: req.QuestionID, Values: values})
}

func (h *restHandler) submit(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Submit(r.Context(), chi.URLParam(r, "attemptID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *restHandler) explain(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "questionID")
	text, err := h.service.Explain(r.Context(), chi.URLParam(r, "attemptID"), questionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, explanationResponse{QuestionID: questionID, Explanation: text})
}

func (h *restHandler) abandon(w http.ResponseWriter, r *http.Request) {
	h.service.Abandon(r.Context(), chi.URLParam(r, "attemptID"))
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrQuizNotFound),
		errors.Is(err, domain.ErrAttemptNotFound),
		errors.Is(err, domain.ErrQuestionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOptionNotFound), errors.Is(err, domain.ErrInvalidAnswer):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAttemptSubmitted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrQuizUnavailable), errors.Is(err, domain.ErrInvalidQuiz):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
