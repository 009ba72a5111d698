package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhaugen/awaydays/backend/internal/domain"
	"github.com/mhaugen/awaydays/backend/internal/repo"
	"github.com/mhaugen/awaydays/backend/internal/service"
)

// mockFlightRepo is a hand-written test double for repo.FlightRepo.
// Each method is a function field — set only the ones your test needs.
type mockFlightRepo struct {
	create           func(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	getByID          func(ctx context.Context, id uuid.UUID) (domain.Flight, error)
	listByOwner      func(ctx context.Context, owner string) ([]domain.Flight, error)
	listByOwnerPaged func(ctx context.Context, owner string, p domain.PaginationParams) ([]domain.Flight, int64, error)
	update           func(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	delete           func(ctx context.Context, id uuid.UUID) error
	deleteAllByOwner func(ctx context.Context, owner string) error
	deleteExpired    func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockFlightRepo) Create(ctx context.Context, f domain.Flight) (domain.Flight, error) {
	return m.create(ctx, f)
}
func (m *mockFlightRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Flight, error) {
	return m.getByID(ctx, id)
}
func (m *mockFlightRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Flight, error) {
	return m.listByOwner(ctx, owner)
}
func (m *mockFlightRepo) ListByOwnerPaged(ctx context.Context, owner string, p domain.PaginationParams) ([]domain.Flight, int64, error) {
	return m.listByOwnerPaged(ctx, owner, p)
}
func (m *mockFlightRepo) Update(ctx context.Context, f domain.Flight) (domain.Flight, error) {
	return m.update(ctx, f)
}
func (m *mockFlightRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockFlightRepo) DeleteAllByOwner(ctx context.Context, owner string) error {
	return m.deleteAllByOwner(ctx, owner)
}
func (m *mockFlightRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return m.deleteExpired(ctx, now)
}

// compile-time check: mockFlightRepo must satisfy repo.FlightRepo.
var _ repo.FlightRepo = (*mockFlightRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validFlight() domain.Flight {
	return domain.Flight{
		FlightNumber: "BA123",
		Date:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		From:         "United Kingdom",
		To:           "France",
		Days:         3,
		Notes:        "weekend",
	}
}

func user(owner string) domain.Identity  { return domain.Identity{Owner: owner} }
func guest(owner string) domain.Identity { return domain.Identity{Owner: owner, Guest: true} }

// echoRepo echoes whatever it receives back — useful for Create/Update tests
// that only care about validation and stamping logic, not what the DB returns.
func echoRepo() *mockFlightRepo {
	return &mockFlightRepo{
		create: func(_ context.Context, f domain.Flight) (domain.Flight, error) { return f, nil },
		update: func(_ context.Context, f domain.Flight) (domain.Flight, error) { return f, nil },
	}
}

// ---- Create tests ----------------------------------------------------------

func TestFlightService_Create_Valid(t *testing.T) {
	svc := service.NewFlightService(echoRepo(), 0)

	got, err := svc.Create(context.Background(), user("u1"), validFlight())

	require.NoError(t, err)
	assert.Equal(t, "BA123", got.FlightNumber)
	assert.Equal(t, "u1", got.Owner, "owner comes from the identity, not the payload")
	assert.Nil(t, got.ExpiresAt, "authenticated records never expire")
}

func TestFlightService_Create_OwnerFromIdentityOnly(t *testing.T) {
	svc := service.NewFlightService(echoRepo(), 0)

	flight := validFlight()
	flight.Owner = "someone-else" // must be overwritten

	got, err := svc.Create(context.Background(), user("u1"), flight)

	require.NoError(t, err)
	assert.Equal(t, "u1", got.Owner)
}

func TestFlightService_Create_GuestGetsExpiry(t *testing.T) {
	svc := service.NewFlightService(echoRepo(), 0)

	got, err := svc.Create(context.Background(), guest("anon-1"), validFlight())

	require.NoError(t, err)
	require.NotNil(t, got.ExpiresAt)
	assert.WithinDuration(t, time.Now().UTC().Add(service.DefaultGuestTTL), *got.ExpiresAt, 5*time.Second)
}

func TestFlightService_Create_MissingFields(t *testing.T) {
	svc := service.NewFlightService(echoRepo(), 0)

	tests := []struct {
		name   string
		mutate func(*domain.Flight)
	}{
		{"flight number", func(f *domain.Flight) { f.FlightNumber = "   " }},
		{"from", func(f *domain.Flight) { f.From = "" }},
		{"to", func(f *domain.Flight) { f.To = "" }},
		{"date", func(f *domain.Flight) { f.Date = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flight := validFlight()
			tt.mutate(&flight)

			_, err := svc.Create(context.Background(), user("u1"), flight)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestFlightService_Create_DaysBelowOne(t *testing.T) {
	svc := service.NewFlightService(echoRepo(), 0)

	flight := validFlight()
	flight.Days = 0

	_, err := svc.Create(context.Background(), user("u1"), flight)

	assert.ErrorIs(t, err, domain.ErrValidation,
		"zero days is rejected at the creation boundary; the aggregator's default is for stored legacy data only")
}

func TestFlightService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := service.NewFlightService(&mockFlightRepo{
		create: func(_ context.Context, _ domain.Flight) (domain.Flight, error) {
			return domain.Flight{}, repoErr
		},
	}, 0)

	_, err := svc.Create(context.Background(), user("u1"), validFlight())

	assert.ErrorIs(t, err, repoErr)
}

// ---- Get / ownership tests -------------------------------------------------

func TestFlightService_GetByID_OtherOwnerLooksMissing(t *testing.T) {
	stored := validFlight()
	stored.ID = uuid.New()
	stored.Owner = "u1"

	svc := service.NewFlightService(&mockFlightRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Flight, error) { return stored, nil },
	}, 0)

	_, err := svc.GetByID(context.Background(), user("u2"), stored.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound,
		"a foreign record must be indistinguishable from a missing one")
}

func TestFlightService_GetByID_Owned(t *testing.T) {
	stored := validFlight()
	stored.ID = uuid.New()
	stored.Owner = "u1"

	svc := service.NewFlightService(&mockFlightRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Flight, error) { return stored, nil },
	}, 0)

	got, err := svc.GetByID(context.Background(), user("u1"), stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
}

// ---- List tests ------------------------------------------------------------

func TestFlightService_ListByOwner_NilBecomesEmptySlice(t *testing.T) {
	svc := service.NewFlightService(&mockFlightRepo{
		listByOwner: func(_ context.Context, _ string) ([]domain.Flight, error) { return nil, nil },
	}, 0)

	flights, err := svc.ListByOwner(context.Background(), user("u1"))

	require.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
}

// ---- Update tests ----------------------------------------------------------

func TestFlightService_Update_ReplacesMutableFieldsOnly(t *testing.T) {
	stored := validFlight()
	stored.ID = uuid.New()
	stored.Owner = "u1"

	var updated domain.Flight
	svc := service.NewFlightService(&mockFlightRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Flight, error) { return stored, nil },
		update: func(_ context.Context, f domain.Flight) (domain.Flight, error) {
			updated = f
			return f, nil
		},
	}, 0)

	incoming := validFlight()
	incoming.FlightNumber = "LH456"
	incoming.To = "Germany"
	incoming.Days = 7
	incoming.Owner = "attacker" // must be ignored

	got, err := svc.Update(context.Background(), user("u1"), stored.ID, incoming)

	require.NoError(t, err)
	assert.Equal(t, "u1", updated.Owner, "owner is immutable")
	assert.Equal(t, stored.ID, updated.ID)
	assert.Equal(t, "LH456", got.FlightNumber)
	assert.Equal(t, "Germany", got.To)
	assert.Equal(t, 7, got.Days)
}

func TestFlightService_Update_GuestRefreshesExpiry(t *testing.T) {
	stored := validFlight()
	stored.ID = uuid.New()
	stored.Owner = "anon-1"
	stale := time.Now().UTC().Add(-time.Hour)
	stored.ExpiresAt = &stale

	svc := service.NewFlightService(&mockFlightRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Flight, error) { return stored, nil },
		update:  func(_ context.Context, f domain.Flight) (domain.Flight, error) { return f, nil },
	}, 0)

	got, err := svc.Update(context.Background(), guest("anon-1"), stored.ID, validFlight())

	require.NoError(t, err)
	require.NotNil(t, got.ExpiresAt)
	assert.True(t, got.ExpiresAt.After(time.Now().UTC()), "expiry must be pushed forward on every guest write")
}

func TestFlightService_Update_AuthenticatedClearsExpiry(t *testing.T) {
	stored := validFlight()
	stored.ID = uuid.New()
	stored.Owner = "u1"
	exp := time.Now().UTC().Add(time.Hour)
	stored.ExpiresAt = &exp

	svc := service.NewFlightService(&mockFlightRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Flight, error) { return stored, nil },
		update:  func(_ context.Context, f domain.Flight) (domain.Flight, error) { return f, nil },
	}, 0)

	got, err := svc.Update(context.Background(), user("u1"), stored.ID, validFlight())

	require.NoError(t, err)
	assert.Nil(t, got.ExpiresAt, "expiry present iff last writer was a guest")
}

func TestFlightService_Update_Invalid(t *testing.T) {
	svc := service.NewFlightService(echoRepo(), 0)

	bad := validFlight()
	bad.Days = -2

	_, err := svc.Update(context.Background(), user("u1"), uuid.New(), bad)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Delete tests ----------------------------------------------------------

func TestFlightService_Delete_OtherOwnerLooksMissing(t *testing.T) {
	stored := validFlight()
	stored.ID = uuid.New()
	stored.Owner = "u1"

	deleted := false
	svc := service.NewFlightService(&mockFlightRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Flight, error) { return stored, nil },
		delete: func(_ context.Context, _ uuid.UUID) error {
			deleted = true
			return nil
		},
	}, 0)

	err := svc.Delete(context.Background(), user("u2"), stored.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, deleted, "repo delete must never run for a foreign record")
}

func TestFlightService_DeleteAll(t *testing.T) {
	var gotOwner string
	svc := service.NewFlightService(&mockFlightRepo{
		deleteAllByOwner: func(_ context.Context, owner string) error {
			gotOwner = owner
			return nil
		},
	}, 0)

	err := svc.DeleteAll(context.Background(), user("u1"))

	require.NoError(t, err)
	assert.Equal(t, "u1", gotOwner)
}
