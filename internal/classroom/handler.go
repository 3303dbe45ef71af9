package classroom

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

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session.Handle(w, r, routes.MiniClassroom, func(p *Page) (any, error) {
		return p.View(), nil
	})
}

func (h *Handler) AddStudent(w http.ResponseWriter, r *http.Request) {
	var dto AddStudentDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body for add student")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session.Handle(w, r, routes.MiniClassroom, func(p *Page) (any, error) {
		if _, err := p.AddStudent(r.Context(), dto); err != nil {
			return nil, err
		}
		return p.View(), nil
	})
}

func (h *Handler) GradeStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto GradeDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body for grade")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session.Handle(w, r, routes.MiniClassroom, func(p *Page) (any, error) {
		if err := p.GradeStudent(r.Context(), id, dto.Score); err != nil {
			return nil, err
		}
		return p.View(), nil
	})
}

func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session.Handle(w, r, routes.MiniClassroom, func(p *Page) (any, error) {
		p.DeleteStudent(r.Context(), id)
		return p.View(), nil
	})
}

func (h *Handler) SetSort(w http.ResponseWriter, r *http.Request) {
	var dto SortDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body for sort")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session.Handle(w, r, routes.MiniClassroom, func(p *Page) (any, error) {
		if err := p.SetSortMode(dto.Mode); err != nil {
			return nil, err
		}
		return p.View(), nil
	})
}
