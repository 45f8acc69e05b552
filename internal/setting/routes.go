package setting

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/proficiency", h.GetProficiency)
	r.Put("/proficiency", h.SetProficiency)
	return r
}
