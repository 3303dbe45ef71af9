package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/exercise-server/internal/config"
	"github.com/saulo-duarte/exercise-server/internal/session"
)

const cookieName = "session"

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// Middleware resolves the session named by the request's token and rejects
// the request when there is none.
func Middleware(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			tokenStr := tokenFromRequest(r)
			if tokenStr == "" {
				log.Warn("Request without session token")
				config.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := ValidateJWT(tokenStr)
			if err != nil {
				log.WithError(err).Warn("Invalid session token")
				config.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			id, err := uuid.Parse(claims.SessionID)
			if err != nil {
				log.WithError(err).Warn("Malformed session id in token")
				config.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			s, err := store.Get(id)
			if err != nil {
				log.WithField("session_id", id).Warn("Session expired or unknown")
				config.Error(w, http.StatusUnauthorized, "session expired")
				return
			}

			ctx := session.NewContext(r.Context(), s)
			ctx = config.ContextWithSessionID(ctx, id.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSessionFromContext(ctx context.Context) (*session.Session, error) {
	return session.FromContext(ctx)
}
