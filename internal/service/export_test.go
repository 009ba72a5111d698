package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhaugen/awaydays/backend/internal/domain"
	"github.com/mhaugen/awaydays/backend/internal/service"
)

func TestExportService_Export(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := service.NewExportService(&mockFlightRepo{
		listByOwner: func(_ context.Context, _ string) ([]domain.Flight, error) {
			return []domain.Flight{{
				ID:           id,
				Owner:        "u1",
				FlightNumber: "BA123",
				Date:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				From:         "United Kingdom",
				To:           "France",
				Days:         3,
				Notes:        "weekend",
				CreatedAt:    created,
			}}, nil
		},
	})

	rows, err := svc.Export(context.Background(), user("u1"))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id.String(), rows[0].ID)
	assert.Equal(t, "2024-03-10", rows[0].Date, "dates are pre-formatted for encoders")
	assert.Equal(t, "France", rows[0].To)
	assert.Equal(t, 3, rows[0].Days)
	assert.Equal(t, created, rows[0].CreatedAt)
}

func TestExportService_Export_EmptyIsNonNil(t *testing.T) {
	svc := service.NewExportService(&mockFlightRepo{
		listByOwner: func(_ context.Context, _ string) ([]domain.Flight, error) { return nil, nil },
	})

	rows, err := svc.Export(context.Background(), user("u1"))

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
