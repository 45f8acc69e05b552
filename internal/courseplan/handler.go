package courseplan

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
	"github.com/hsinghweb/eag-v2-s2/internal/session"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	plan, err := h.service.Generate(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to generate course plan")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, plan)
}

func (h *Handler) ConvertTodos(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	todos, err := h.service.ConvertTodos(r.Context())
	if err != nil {
		if errors.Is(err, session.ErrNoActivePlan) {
			http.Error(w, "generate a course plan first", http.StatusConflict)
			return
		}
		log.WithError(err).Error("Failed to convert course plan to todos")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, todos)
}

func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	todos, err := h.service.Todos(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load todos")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, todos)
}

func (h *Handler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid todo index", http.StatusBadRequest)
		return
	}

	var payload struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	todos, err := h.service.ToggleTodo(r.Context(), index, payload.Completed)
	if err != nil {
		if errors.Is(err, ErrTodoOutOfRange) {
			http.Error(w, "todo not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to toggle todo")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, todos)
}
