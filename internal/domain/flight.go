// Package domain contains the core data types for the Away Days application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler, stats).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flight represents a single tracked flight: one journey to a destination
// country together with the number of days spent there. Flights are the only
// persisted aggregate; all statistics are derived from them on read.
type Flight struct {
	ID uuid.UUID `json:"id"`

	// Owner scopes every query. It is assigned at creation from the caller's
	// identity and is never mutated afterwards.
	Owner string `json:"owner"`

	FlightNumber string    `json:"flight_number"`
	Date         time.Time `json:"date"` // travel start date; no time component

	// From and To are free-text country names. They are matched against the
	// reference country list for display only, never validated against it.
	From string `json:"from"`
	To   string `json:"to"`

	// Days is the number of days spent at the destination, always >= 1.
	Days int `json:"days"`

	Notes string `json:"notes,omitempty"`

	// ExpiresAt is set only for records owned by a guest session: creation or
	// last-update time plus the guest TTL. The sweeper deletes records whose
	// expiry has passed.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
