package quizbuilder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Post("/mode", h.ToggleMode)
	r.Put("/title", h.SetTitle)

	r.Post("/questions", h.AddQuestion)
	r.Route("/questions/{id}", func(r chi.Router) {
		r.Put("/", h.UpdateText)
		r.Delete("/", h.DeleteQuestion)
		r.Post("/move", h.MoveQuestion)
		r.Post("/options", h.AddOption)
		r.Put("/options/{index}", h.UpdateOption)
		r.Delete("/options/{index}", h.RemoveOption)
		r.Post("/options/{index}/correct", h.ToggleCorrect)
		r.Post("/options/{index}/select", h.ToggleSelection)
	})
	return r
}
