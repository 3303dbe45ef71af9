package tabs

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

type SelectDTO struct {
	Index int `json:"index"`
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session.Handle(w, r, routes.Tabs, func(p *Page) (any, error) {
		return p.View(), nil
	})
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	var dto SelectDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body for tab select")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session.Handle(w, r, routes.Tabs, func(p *Page) (any, error) {
		if err := p.Select(dto.Index); err != nil {
			return nil, err
		}
		return p.View(), nil
	})
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Put("/active", h.Select)
	return r
}
