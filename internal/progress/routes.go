package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/scores", h.ListScores)
	r.Get("/summary", h.GetSummary)
	return r
}
