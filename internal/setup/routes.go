package setup

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/api-key", h.Status)
	r.Post("/api-key", h.SaveKey)
	r.Delete("/api-key", h.ClearKey)
	return r
}
