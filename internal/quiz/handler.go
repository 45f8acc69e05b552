package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
	"github.com/hsinghweb/eag-v2-s2/internal/normalize"
	"github.com/hsinghweb/eag-v2-s2/internal/session"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	v, err := h.service.Start(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to start quiz")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, v)
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	v, err := h.service.Current(r.Context())
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, v)
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, 1)
}

func (h *Handler) Previous(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, -1)
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request, delta int) {
	v, err := h.service.Navigate(r.Context(), delta)
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, v)
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Option string `json:"option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	v, err := h.service.Answer(r.Context(), body.Option)
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, v)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	v, err := h.service.Submit(r.Context())
	if err != nil {
		if errors.Is(err, session.ErrNoActiveQuiz) || errors.Is(err, session.ErrQuizSubmitted) {
			h.sessionError(w, r, err)
			return
		}
		log.WithError(err).Error("Failed to submit quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, v)
}

func (h *Handler) sessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrNoActiveQuiz):
		http.Error(w, "no active quiz", http.StatusNotFound)
	case errors.Is(err, session.ErrQuizSubmitted):
		http.Error(w, "quiz already submitted", http.StatusConflict)
	case errors.Is(err, session.ErrInvalidOption):
		http.Error(w, "option must be one of A, B, C, D", http.StatusBadRequest)
	default:
		log := config.WithContext(r.Context())
		log.WithError(err).Error("Quiz operation failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// respondError maps transport and normalization failures to a terminal error
// payload with a recovery hint for the popup.
func respondError(w http.ResponseWriter, err error) {
	var classified interface {
		HTTPStatus() int
		UserMessage() string
		RecoveryAction() string
	}
	if !errors.As(err, &classified) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	body := map[string]string{
		"error":    classified.UserMessage(),
		"recovery": classified.RecoveryAction(),
	}
	var nvc *normalize.NoValidContentError
	if errors.As(err, &nvc) {
		body["raw"] = rawExcerpt(nvc.Raw)
	}
	config.JSON(w, classified.HTTPStatus(), body)
}

func rawExcerpt(raw string) string {
	const max = 500
	if len(raw) > max {
		return raw[:max] + "..."
	}
	return raw
}
