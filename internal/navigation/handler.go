package navigation

import (
	"net/http"

	"github.com/saulo-duarte/exercise-server/internal/config"
	"github.com/saulo-duarte/exercise-server/internal/navigator"
	"github.com/saulo-duarte/exercise-server/internal/routes"
	"github.com/saulo-duarte/exercise-server/internal/session"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type State struct {
	Route    routes.Key `json:"route"`
	Location string     `json:"location"`
	Title    string     `json:"title,omitempty"`
}

type LocationRequest struct {
	Location string `json:"location"`
}

type NavigateRequest struct {
	Route routes.Key `json:"route"`
}

func stateOf(nav *navigator.Navigator) State {
	st := State{Route: nav.Current(), Location: nav.Location()}
	if e, ok := routes.Lookup(st.Route); ok {
		st.Title = e.Title
	}
	return st
}

func (h *Handler) ListExercises(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, routes.Exercises)
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(nav *navigator.Navigator) {})
}

// ChangeLocation is the host telling us its location changed.
func (h *Handler) ChangeLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid location body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.apply(w, r, func(nav *navigator.Navigator) {
		nav.HandleLocationChange(req.Location)
	})
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid navigate body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.apply(w, r, func(nav *navigator.Navigator) {
		nav.Navigate(req.Route)
	})
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(nav *navigator.Navigator) {
		nav.Back()
	})
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request, fn func(nav *navigator.Navigator)) {
	s, err := session.FromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var st State
	_ = s.Do(func(nav *navigator.Navigator) error {
		fn(nav)
		st = stateOf(nav)
		return nil
	})

	config.JSON(w, http.StatusOK, st)
}
