package setting

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetProficiency(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	p, err := h.service.Proficiency(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load proficiency")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"proficiency": string(p)})
}

func (h *Handler) SetProficiency(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Proficiency Proficiency `json:"proficiency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SetProficiency(r.Context(), payload.Proficiency); err != nil {
		if errors.Is(err, ErrInvalidProficiency) {
			http.Error(w, "invalid proficiency level", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to store proficiency")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"proficiency": string(payload.Proficiency)})
}
