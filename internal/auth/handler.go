package auth

import (
	"net/http"
	"time"

	"github.com/saulo-duarte/exercise-server/internal/config"
	"github.com/saulo-duarte/exercise-server/internal/navigator"
	"github.com/saulo-duarte/exercise-server/internal/routes"
	"github.com/saulo-duarte/exercise-server/internal/session"
)

type Handler struct {
	store *session.Store
	ttl   time.Duration
}

func NewHandler(store *session.Store, ttl time.Duration) *Handler {
	return &Handler{store: store, ttl: ttl}
}

type SessionResponse struct {
	Token    string     `json:"token"`
	Route    routes.Key `json:"route"`
	Location string     `json:"location"`
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	s := h.store.Create(r.Context())
	token, err := GenerateJWT(s.ID.String(), h.ttl)
	if err != nil {
		h.store.Delete(s.ID)
		log.WithError(err).Error("Failed to sign session token")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var resp SessionResponse
	_ = s.Do(func(nav *navigator.Navigator) error {
		resp = SessionResponse{Token: token, Route: nav.Current(), Location: nav.Location()}
		return nil
	})

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	if s, err := GetSessionFromContext(r.Context()); err == nil {
		h.store.Delete(s.ID)
		config.WithContext(r.Context()).Info("Session ended")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}
