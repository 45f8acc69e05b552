package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Start)
	r.Get("/current", h.Current)
	r.Post("/next", h.Next)
	r.Post("/prev", h.Previous)
	r.Post("/answer", h.Answer)
	r.Post("/submit", h.Submit)
	return r
}
