// Package service contains the business logic for the Away Days API.
// Services validate inputs, enforce ownership and guest-expiry rules, and
// orchestrate repo calls. No SQL lives here — services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mhaugen/awaydays/backend/internal/domain"
	"github.com/mhaugen/awaydays/backend/internal/repo"
)

// DefaultGuestTTL is how long a guest-owned record lives after its last write.
const DefaultGuestTTL = 24 * time.Hour

// FlightService implements business logic for flight operations.
// Every operation takes the caller's Identity and scopes reads and writes to
// it; a record owned by someone else behaves exactly like a missing record.
type FlightService struct {
	repo     repo.FlightRepo
	guestTTL time.Duration
}

// NewFlightService constructs a FlightService backed by the provided repo.
// A non-positive guestTTL falls back to DefaultGuestTTL.
func NewFlightService(r repo.FlightRepo, guestTTL time.Duration) *FlightService {
	if guestTTL <= 0 {
		guestTTL = DefaultGuestTTL
	}
	return &FlightService{repo: r, guestTTL: guestTTL}
}

// Create validates and persists a new flight for the caller.
// Guest callers get an expiry stamp of now + guestTTL.
func (s *FlightService) Create(ctx context.Context, id domain.Identity, flight domain.Flight) (domain.Flight, error) {
	if err := validateFlight(flight); err != nil {
		return domain.Flight{}, fmt.Errorf("service.FlightService.Create: %w", err)
	}

	flight.Owner = id.Owner
	flight.ExpiresAt = nil
	if id.Guest {
		exp := time.Now().UTC().Add(s.guestTTL)
		flight.ExpiresAt = &exp
	}

	result, err := s.repo.Create(ctx, flight)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("service.FlightService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single flight if it exists and belongs to the caller.
func (s *FlightService) GetByID(ctx context.Context, id domain.Identity, flightID uuid.UUID) (domain.Flight, error) {
	flight, err := s.loadOwned(ctx, id, flightID)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("service.FlightService.GetByID: %w", err)
	}
	return flight, nil
}

// ListByOwner returns all of the caller's flights, most recent date first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *FlightService) ListByOwner(ctx context.Context, id domain.Identity) ([]domain.Flight, error) {
	flights, err := s.repo.ListByOwner(ctx, id.Owner)
	if err != nil {
		return nil, fmt.Errorf("service.FlightService.ListByOwner: %w", err)
	}
	if flights == nil {
		return []domain.Flight{}, nil
	}
	return flights, nil
}

// ListByOwnerPaged returns one page of the caller's flights plus the total count.
func (s *FlightService) ListByOwnerPaged(ctx context.Context, id domain.Identity, p domain.PaginationParams) ([]domain.Flight, int64, error) {
	flights, total, err := s.repo.ListByOwnerPaged(ctx, id.Owner, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.FlightService.ListByOwnerPaged: %w", err)
	}
	if flights == nil {
		flights = []domain.Flight{}
	}
	return flights, total, nil
}

// Update validates and persists changes to an existing flight record.
// The full set of mutable fields (flight number, date, from, to, days, notes)
// is replaced; the owner is always taken from the stored record, never from
// the request. Guest callers get their expiry refreshed to now + guestTTL;
// authenticated callers clear it, preserving the invariant that an expiry is
// present exactly when the last writer was a guest. Last write wins on
// concurrent updates — there is no optimistic concurrency token.
func (s *FlightService) Update(ctx context.Context, id domain.Identity, flightID uuid.UUID, flight domain.Flight) (domain.Flight, error) {
	if err := validateFlight(flight); err != nil {
		return domain.Flight{}, fmt.Errorf("service.FlightService.Update: %w", err)
	}

	current, err := s.loadOwned(ctx, id, flightID)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("service.FlightService.Update: %w", err)
	}

	current.FlightNumber = flight.FlightNumber
	current.Date = flight.Date
	current.From = flight.From
	current.To = flight.To
	current.Days = flight.Days
	current.Notes = flight.Notes

	current.ExpiresAt = nil
	if id.Guest {
		exp := time.Now().UTC().Add(s.guestTTL)
		current.ExpiresAt = &exp
	}

	result, err := s.repo.Update(ctx, current)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("service.FlightService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a single flight if it exists and belongs to the caller.
func (s *FlightService) Delete(ctx context.Context, id domain.Identity, flightID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, id, flightID); err != nil {
		return fmt.Errorf("service.FlightService.Delete: %w", err)
	}
	if err := s.repo.Delete(ctx, flightID); err != nil {
		return fmt.Errorf("service.FlightService.Delete: %w", err)
	}
	return nil
}

// DeleteAll removes every flight belonging to the caller in one atomic batch.
func (s *FlightService) DeleteAll(ctx context.Context, id domain.Identity) error {
	if err := s.repo.DeleteAllByOwner(ctx, id.Owner); err != nil {
		return fmt.Errorf("service.FlightService.DeleteAll: %w", err)
	}
	return nil
}

// loadOwned fetches a flight and verifies the caller owns it. An ownership
// mismatch is reported as ErrNotFound so callers cannot probe for other
// users' record IDs.
func (s *FlightService) loadOwned(ctx context.Context, id domain.Identity, flightID uuid.UUID) (domain.Flight, error) {
	flight, err := s.repo.GetByID(ctx, flightID)
	if err != nil {
		return domain.Flight{}, err
	}
	if flight.Owner != id.Owner {
		return domain.Flight{}, domain.ErrNotFound
	}
	return flight, nil
}

// validateFlight enforces the record-creation boundary rules shared by Create
// and Update:
//   - flight number, from, and to must be non-empty (whitespace-only rejected)
//   - date is required
//   - days must be at least 1; the aggregator's days=1 default covers only
//     legacy records that predate this check, not new writes
func validateFlight(flight domain.Flight) error {
	if strings.TrimSpace(flight.FlightNumber) == "" {
		return fmt.Errorf("%w: flight_number is required", domain.ErrValidation)
	}
	if strings.TrimSpace(flight.From) == "" {
		return fmt.Errorf("%w: from is required", domain.ErrValidation)
	}
	if strings.TrimSpace(flight.To) == "" {
		return fmt.Errorf("%w: to is required", domain.ErrValidation)
	}
	if flight.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if flight.Days < 1 {
		return fmt.Errorf("%w: days must be at least 1", domain.ErrValidation)
	}
	return nil
}
