package handler

import "net/http"

// handleCountries handles GET /countries. When the embedded reference list
// failed to parse at boot the endpoint reports 503; record CRUD is unaffected.
func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	if s.countries == nil {
		writeError(w, http.StatusServiceUnavailable, "reference_data_unavailable", "country reference data could not be loaded")
		return
	}

	writeJSON(w, http.StatusOK, s.countries.List())
}
