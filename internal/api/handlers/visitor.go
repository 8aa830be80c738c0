package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	"github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils/response"
)

// visitorFrom resolves the caller's visitor. When it returns false the
// error response has already been written.
func visitorFrom(w http.ResponseWriter, r *http.Request, registry *service.VisitorRegistry) (*service.Visitor, bool) {

	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Warn("Request without session")
		response.Error(w, errors.UnauthorizedError("Session token is required"))
		return nil, false
	}

	return registry.Get(r.Context(), sessionID), true
}
