// Package repo contains all database access logic for the Away Days API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mhaugen/awaydays/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// FlightRepo defines the persistence operations for flight records.
// The service layer depends on this interface, not the concrete Postgres
// implementation, so it can be unit-tested with a mock.
type FlightRepo interface {
	// Create inserts a new flight and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, flight domain.Flight) (domain.Flight, error)

	// GetByID retrieves a single flight by its UUID primary key.
	// Returns domain.ErrNotFound if no flight with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Flight, error)

	// ListByOwner returns all flights for one owner ordered by date descending.
	ListByOwner(ctx context.Context, owner string) ([]domain.Flight, error)

	// ListByOwnerPaged returns one page of an owner's flights ordered by date
	// descending, plus the total count for pagination metadata.
	ListByOwnerPaged(ctx context.Context, owner string, p domain.PaginationParams) ([]domain.Flight, int64, error)

	// Update overwrites the mutable fields of an existing flight and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, flight domain.Flight) (domain.Flight, error)

	// Delete removes a flight by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAllByOwner removes every flight belonging to owner in one
	// statement, so concurrent readers never observe a partially deleted set.
	// Deleting zero rows is success, not ErrNotFound.
	DeleteAllByOwner(ctx context.Context, owner string) error

	// DeleteExpired removes every flight with expires_at <= now and reports
	// how many rows were deleted. Used by the expiry sweeper only.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// pgFlightRepo is the Postgres implementation of FlightRepo.
type pgFlightRepo struct {
	db db
}

// NewFlightRepo constructs a FlightRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewFlightRepo(db db) FlightRepo {
	return &pgFlightRepo{db: db}
}

// flightColumns is the select list shared by every query that scans a flight.
const flightColumns = `id, owner, flight_number, date, from_country, to_country, days, notes, expires_at, created_at, updated_at`

// Create inserts a new flight row and returns the full persisted record.
func (r *pgFlightRepo) Create(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	const q = `
		INSERT INTO flights (owner, flight_number, date, from_country, to_country, days, notes, expires_at)
		VALUES (@owner, @flight_number, @date, @from_country, @to_country, @days, @notes, @expires_at)
		RETURNING ` + flightColumns

	args := pgx.NamedArgs{
		"owner":         flight.Owner,
		"flight_number": flight.FlightNumber,
		"date":          flight.Date,
		"from_country":  flight.From,
		"to_country":    flight.To,
		"days":          flight.Days,
		"notes":         flight.Notes,
		"expires_at":    flight.ExpiresAt, // nil becomes NULL
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanFlight(row)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("repo.FlightRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a flight by primary key.
func (r *pgFlightRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Flight, error) {
	const q = `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanFlight(row)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("repo.FlightRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByOwner returns all of an owner's flights, most recent date first.
func (r *pgFlightRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Flight, error) {
	const q = `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE owner = @owner
		ORDER BY date DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("repo.FlightRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	flights, err := collectFlights(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.FlightRepo.ListByOwner: %w", err)
	}
	return flights, nil
}

// ListByOwnerPaged returns one page of an owner's flights plus the total count.
func (r *pgFlightRepo) ListByOwnerPaged(ctx context.Context, owner string, p domain.PaginationParams) ([]domain.Flight, int64, error) {
	const countQ = `SELECT count(*) FROM flights WHERE owner = @owner`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"owner": owner}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.FlightRepo.ListByOwnerPaged: count: %w", err)
	}

	const q = `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE owner = @owner
		ORDER BY date DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"owner":  owner,
		"limit":  p.Limit,
		"offset": p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.FlightRepo.ListByOwnerPaged: %w", err)
	}
	defer rows.Close()

	flights, err := collectFlights(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.FlightRepo.ListByOwnerPaged: %w", err)
	}
	return flights, total, nil
}

// Update overwrites the mutable fields of a flight and returns the updated record.
// The owner column is absent from the SET list; ownership never changes.
func (r *pgFlightRepo) Update(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	const q = `
		UPDATE flights
		SET flight_number = @flight_number,
		    date          = @date,
		    from_country  = @from_country,
		    to_country    = @to_country,
		    days          = @days,
		    notes         = @notes,
		    expires_at    = @expires_at,
		    updated_at    = now()
		WHERE id = @id
		RETURNING ` + flightColumns

	args := pgx.NamedArgs{
		"id":            flight.ID,
		"flight_number": flight.FlightNumber,
		"date":          flight.Date,
		"from_country":  flight.From,
		"to_country":    flight.To,
		"days":          flight.Days,
		"notes":         flight.Notes,
		"expires_at":    flight.ExpiresAt,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanFlight(row)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("repo.FlightRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a flight by primary key.
func (r *pgFlightRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM flights WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.FlightRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.FlightRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// DeleteAllByOwner removes everything an owner has in a single statement.
func (r *pgFlightRepo) DeleteAllByOwner(ctx context.Context, owner string) error {
	const q = `DELETE FROM flights WHERE owner = @owner`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"owner": owner}); err != nil {
		return fmt.Errorf("repo.FlightRepo.DeleteAllByOwner: %w", err)
	}
	return nil
}

// DeleteExpired removes all guest records whose expiry has passed.
func (r *pgFlightRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const q = `DELETE FROM flights WHERE expires_at IS NOT NULL AND expires_at <= @now`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"now": now})
	if err != nil {
		return 0, fmt.Errorf("repo.FlightRepo.DeleteExpired: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanFlight to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanFlight maps a single database row into a domain.Flight.
// It handles the UUID, date, and nullable expires_at conversions.
func scanFlight(s scanner) (domain.Flight, error) {
	var (
		f         domain.Flight
		id        pgtype.UUID
		date      pgtype.Date
		expiresAt pgtype.Timestamptz
	)

	err := s.Scan(&id, &f.Owner, &f.FlightNumber, &date, &f.From, &f.To, &f.Days,
		&f.Notes, &expiresAt, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Flight{}, domain.ErrNotFound
		}
		return domain.Flight{}, err
	}

	f.ID = uuid.UUID(id.Bytes)
	f.Date = date.Time
	if expiresAt.Valid {
		exp := expiresAt.Time
		f.ExpiresAt = &exp
	}

	return f, nil
}

// collectFlights drains rows into a slice, surfacing scan and iteration errors.
func collectFlights(rows pgx.Rows) ([]domain.Flight, error) {
	var flights []domain.Flight
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return flights, nil
}
