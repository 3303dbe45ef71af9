package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/exercise-server/internal/config"
	"github.com/saulo-duarte/exercise-server/internal/routes"
	"github.com/saulo-duarte/exercise-server/internal/session"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type QueryDTO struct {
	Query string `json:"query"`
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session.Handle(w, r, routes.FilterableList, func(p *Page) (any, error) {
		return p.View(), nil
	})
}

func (h *Handler) SetQuery(w http.ResponseWriter, r *http.Request) {
	var dto QueryDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body for search")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session.Handle(w, r, routes.FilterableList, func(p *Page) (any, error) {
		p.SetQuery(dto.Query)
		return p.View(), nil
	})
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Put("/query", h.SetQuery)
	return r
}
