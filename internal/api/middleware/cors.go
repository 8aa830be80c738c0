package middleware

import (
	"net/http"

	"github.com/aaravmahajanofficial/papela-rentals/internal/config"
	"github.com/rs/cors"
)

// CORS lets the storefront front-end call the API from its own origin.
func CORS(cfg *config.CORS) func(http.Handler) http.Handler {

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID", SessionTokenHeader},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: cfg.AllowCredentials,
	})

	return c.Handler
}
