package navigation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Current)
	r.Put("/location", h.ChangeLocation)
	r.Post("/navigate", h.Navigate)
	r.Post("/back", h.Back)
	return r
}
