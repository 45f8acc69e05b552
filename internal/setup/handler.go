package setup

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
	"github.com/hsinghweb/eag-v2-s2/internal/gemini"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	configured, err := h.service.Configured(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to check API key status")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]bool{"configured": configured})
}

func (h *Handler) SaveKey(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		APIKey string `json:"api_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SaveKey(r.Context(), payload.APIKey); err != nil {
		switch {
		case errors.Is(err, ErrEmptyKey):
			http.Error(w, "please enter an API key", http.StatusBadRequest)
		case errors.Is(err, ErrBadKeyFormat):
			http.Error(w, "invalid API key format", http.StatusBadRequest)
		default:
			var gerr *gemini.Error
			if errors.As(err, &gerr) {
				config.JSON(w, gerr.HTTPStatus(), map[string]string{
					"error":    gerr.UserMessage(),
					"recovery": gerr.RecoveryAction(),
				})
				return
			}
			log.WithError(err).Error("Failed to save API key")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]string{
		"message": "API key saved successfully",
	})
}

func (h *Handler) ClearKey(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.ClearKey(r.Context()); err != nil {
		log.WithError(err).Error("Failed to clear API key")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "API key removed",
	})
}
