package middlewares

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

const anyOrigin = "*"

// Cors allows credentialed requests only from explicitly listed origins. A
// wildcard list still works with bearer tokens but never sees cookies.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: !slices.Contains(allowedOrigins, anyOrigin),
		MaxAge:           300,
	})
	return c.Handler
}
