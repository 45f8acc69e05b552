package progress

import (
	"net/http"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	records, err := h.service.History(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list score history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, records)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build progress summary")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}
