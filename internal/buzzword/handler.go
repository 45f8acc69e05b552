package buzzword

import (
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
		log.WithError(err).Error("Failed to start buzzword session")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, v)
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func() (*View, error) { return h.service.Current(r.Context()) })
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func() (*View, error) { return h.service.Move(r.Context(), 1) })
}

func (h *Handler) Previous(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func() (*View, error) { return h.service.Move(r.Context(), -1) })
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, fn func() (*View, error)) {
	log := config.WithContext(r.Context())

	v, err := fn()
	if err != nil {
		if errors.Is(err, session.ErrNoActiveBuzzwords) {
			http.Error(w, "no active buzzword session", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Buzzword navigation failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, v)
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
