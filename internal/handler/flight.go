package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mhaugen/awaydays/backend/internal/domain"
	"github.com/mhaugen/awaydays/backend/internal/middleware"
)

// dateLayout is the wire format for calendar dates. No time component —
// travel dates are whole days.
const dateLayout = "2006-01-02"

// flightRequest is the JSON body for create and update. Update is a full
// field replace: omitted fields fall back to their zero values and fail
// validation, which is intentional — there is no silent partial merge.
type flightRequest struct {
	FlightNumber string `json:"flight_number"`
	Date         string `json:"date"`
	From         string `json:"from"`
	To           string `json:"to"`
	Days         int    `json:"days"`
	Notes        string `json:"notes"`
}

// flightResponse is the JSON representation of a persisted flight.
type flightResponse struct {
	ID           uuid.UUID  `json:"id"`
	FlightNumber string     `json:"flight_number"`
	Date         string     `json:"date"`
	From         string     `json:"from"`
	To           string     `json:"to"`
	Days         int        `json:"days"`
	Notes        string     `json:"notes,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// paginationResponse mirrors the query params back with the total count.
type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// flightListResponse is the paged list envelope.
type flightListResponse struct {
	Data       []flightResponse   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// handleCreateFlight handles POST /flights.
func (s *Server) handleCreateFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "missing identity")
		return
	}

	flight, err := decodeFlightRequest(r)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	created, err := s.flights.Create(r.Context(), id, flight)
	if err != nil {
		writeServiceError(w, err, "flight not found")
		return
	}

	writeJSON(w, http.StatusCreated, flightToResponse(created))
}

// handleListFlights handles GET /flights.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) handleListFlights(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "missing identity")
		return
	}

	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	flights, total, err := s.flights.ListByOwnerPaged(r.Context(), id, params)
	if err != nil {
		writeServiceError(w, err, "flight not found")
		return
	}

	data := make([]flightResponse, 0, len(flights))
	for _, f := range flights {
		data = append(data, flightToResponse(f))
	}
	writeJSON(w, http.StatusOK, flightListResponse{
		Data: data,
		Pagination: paginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// handleGetFlight handles GET /flights/{flightID}.
func (s *Server) handleGetFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "missing identity")
		return
	}

	flightID, err := pathUUID(r, "flightID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	flight, err := s.flights.GetByID(r.Context(), id, flightID)
	if err != nil {
		writeServiceError(w, err, "flight not found")
		return
	}

	writeJSON(w, http.StatusOK, flightToResponse(flight))
}

// handleUpdateFlight handles PUT /flights/{flightID}.
func (s *Server) handleUpdateFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "missing identity")
		return
	}

	flightID, err := pathUUID(r, "flightID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	flight, err := decodeFlightRequest(r)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	updated, err := s.flights.Update(r.Context(), id, flightID, flight)
	if err != nil {
		writeServiceError(w, err, "flight not found")
		return
	}

	writeJSON(w, http.StatusOK, flightToResponse(updated))
}

// handleDeleteFlight handles DELETE /flights/{flightID}.
func (s *Server) handleDeleteFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "missing identity")
		return
	}

	flightID, err := pathUUID(r, "flightID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	if err := s.flights.Delete(r.Context(), id, flightID); err != nil {
		writeServiceError(w, err, "flight not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteAllFlights handles DELETE /flights — the "reset all data"
// action. Deleting an already-empty account succeeds.
func (s *Server) handleDeleteAllFlights(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "missing identity")
		return
	}

	if err := s.flights.DeleteAll(r.Context(), id); err != nil {
		writeServiceError(w, err, "flight not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- request/response helpers -----------------------------------------------

// decodeFlightRequest parses and maps the JSON body into a domain.Flight.
// A malformed body or an unparseable date is a request error; business rules
// (required fields, days >= 1) are the service's job.
func decodeFlightRequest(r *http.Request) (domain.Flight, error) {
	var body flightRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return domain.Flight{}, errors.New("request body is missing or malformed")
	}

	flight := domain.Flight{
		FlightNumber: body.FlightNumber,
		From:         body.From,
		To:           body.To,
		Days:         body.Days,
		Notes:        body.Notes,
	}
	if body.Date != "" {
		date, err := time.Parse(dateLayout, body.Date)
		if err != nil {
			return domain.Flight{}, errors.New("date must be formatted as YYYY-MM-DD")
		}
		flight.Date = date
	}
	return flight, nil
}

// flightToResponse converts a domain.Flight into its JSON representation.
func flightToResponse(f domain.Flight) flightResponse {
	return flightResponse{
		ID:           f.ID,
		FlightNumber: f.FlightNumber,
		Date:         f.Date.Format(dateLayout),
		From:         f.From,
		To:           f.To,
		Days:         f.Days,
		Notes:        f.Notes,
		ExpiresAt:    f.ExpiresAt,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// pathUUID parses a UUID path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.UUID{}, errors.New(name + " must be a valid UUID")
	}
	return id, nil
}

// queryInt parses an optional positive integer query parameter, returning nil
// when absent or unparseable so pagination falls back to its defaults.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
