package session

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/exercise-server/internal/apperr"
	"github.com/saulo-duarte/exercise-server/internal/config"
	"github.com/saulo-duarte/exercise-server/internal/routes"
)

// Handle runs fn against the request session's page state for route and
// writes whatever fn returns as JSON.
func Handle[T any](w http.ResponseWriter, r *http.Request, route routes.Key, fn func(page T) (any, error)) {
	log := config.WithContext(r.Context())

	s, err := FromContext(r.Context())
	if err != nil {
		log.WithError(err).Warn("Page request without session")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var out any
	err = WithPage(s, route, func(page T) error {
		var fnErr error
		out, fnErr = fn(page)
		return fnErr
	})

	if err != nil {
		WriteError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, out)
}

// WriteError maps page errors to HTTP responses.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	log := config.WithContext(r.Context())

	if ve, ok := apperr.AsValidation(err); ok {
		log.WithError(err).Warn("Rejected invalid input")
		config.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  ve.Error(),
			"fields": ve.Fields,
		})
		return
	}

	if errors.Is(err, ErrPageNotActive) {
		log.WithError(err).Warn("Page request for inactive route")
		config.Error(w, http.StatusConflict, err.Error())
		return
	}

	log.WithError(err).Error("Page request failed")
	config.Error(w, http.StatusInternalServerError, "internal server error")
}
