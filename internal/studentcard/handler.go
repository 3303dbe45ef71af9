package studentcard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/exercise-server/internal/routes"
	"github.com/saulo-duarte/exercise-server/internal/session"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session.Handle(w, r, routes.StudentCard, func(p *Page) (any, error) {
		return p.View(), nil
	})
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	return r
}
