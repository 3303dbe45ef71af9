package classroom

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Put("/sort", h.SetSort)
	r.Post("/students", h.AddStudent)
	r.Post("/students/{id}/scores", h.GradeStudent)
	r.Delete("/students/{id}", h.DeleteStudent)
	return r
}
