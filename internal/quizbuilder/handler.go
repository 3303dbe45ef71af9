package quizbuilder

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

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, fn func(p *Page) error) {
	session.Handle(w, r, routes.QuizBuilder, func(p *Page) (any, error) {
		if err := fn(p); err != nil {
			return nil, err
		}
		return p.View(), nil
	})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := config.DecodeJSON(r, v); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body for quiz builder")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func optionIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	k, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid option index")
		return 0, false
	}
	return k, true
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(p *Page) error { return nil })
}

func (h *Handler) ToggleMode(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(p *Page) error {
		mode := p.ToggleMode()
		config.WithContext(r.Context()).WithField("mode", mode).Info("Quiz mode changed")
		return nil
	})
}

func (h *Handler) SetTitle(w http.ResponseWriter, r *http.Request) {
	var dto TitleDTO
	if !decode(w, r, &dto) {
		return
	}
	h.serve(w, r, func(p *Page) error { return p.SetTitle(dto.Title) })
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(p *Page) error {
		_, err := p.AddQuestion(r.Context())
		return err
	})
}

func (h *Handler) UpdateText(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var dto TextDTO
	if !decode(w, r, &dto) {
		return
	}
	h.serve(w, r, func(p *Page) error { return p.UpdateText(id, dto.Text) })
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.serve(w, r, func(p *Page) error { return p.DeleteQuestion(r.Context(), id) })
}

func (h *Handler) MoveQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var dto MoveDTO
	if !decode(w, r, &dto) {
		return
	}
	h.serve(w, r, func(p *Page) error { return p.MoveQuestion(r.Context(), id, dto.Direction) })
}

func (h *Handler) AddOption(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.serve(w, r, func(p *Page) error { return p.AddOption(id) })
}

func (h *Handler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	k, ok := optionIndex(w, r)
	if !ok {
		return
	}
	var dto TextDTO
	if !decode(w, r, &dto) {
		return
	}
	h.serve(w, r, func(p *Page) error { return p.UpdateOption(id, k, dto.Text) })
}

func (h *Handler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	k, ok := optionIndex(w, r)
	if !ok {
		return
	}
	h.serve(w, r, func(p *Page) error { return p.RemoveOption(id, k) })
}

func (h *Handler) ToggleCorrect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	k, ok := optionIndex(w, r)
	if !ok {
		return
	}
	h.serve(w, r, func(p *Page) error { return p.ToggleCorrect(id, k) })
}

func (h *Handler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	k, ok := optionIndex(w, r)
	if !ok {
		return
	}
	h.serve(w, r, func(p *Page) error { return p.ToggleSelection(id, k) })
}
