package accordion

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/exercise-server/internal/config"
	"github.com/saulo-duarte/exercise-server/internal/routes"
	"github.com/saulo-duarte/exercise-server/internal/session"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session.Handle(w, r, routes.Accordion, func(p *Page) (any, error) {
		return p.View(), nil
	})
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid item index")
		return
	}

	session.Handle(w, r, routes.Accordion, func(p *Page) (any, error) {
		if err := p.Toggle(i); err != nil {
			return nil, err
		}
		return p.View(), nil
	})
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Post("/items/{index}/toggle", h.Toggle)
	return r
}
