package handler

import (
	"net/http"

	"github.com/mhaugen/awaydays/backend/internal/middleware"
)

// handleStats handles GET /stats. The response is computed fresh from the
// caller's current flight list on every request.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "missing identity")
		return
	}

	overview, err := s.stats.Overview(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "statistics not found")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}
