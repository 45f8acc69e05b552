package courseplan

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Generate)
	r.Post("/todos", h.ConvertTodos)
	r.Get("/todos", h.ListTodos)
	r.Patch("/todos/{index}", h.ToggleTodo)
	return r
}
