package service

import (
	"context"
	"fmt"

	"github.com/mhaugen/awaydays/backend/internal/domain"
	"github.com/mhaugen/awaydays/backend/internal/repo"
	"github.com/mhaugen/awaydays/backend/internal/stats"
)

// Overview bundles the derived statistics and the residency report computed
// from one owner's complete flight list.
type Overview struct {
	Statistics domain.Statistics      `json:"statistics"`
	Residency  domain.ResidencyReport `json:"residency"`
}

// StatsService fetches an owner's flights and runs the aggregation engine
// over them. The engine itself is pure; this service is the only place the
// two are glued together, so the engine never sees a failed fetch.
type StatsService struct {
	repo repo.FlightRepo
}

// NewStatsService constructs a StatsService backed by the provided repo.
func NewStatsService(r repo.FlightRepo) *StatsService {
	return &StatsService{repo: r}
}

// Overview computes the full derived view for the caller. The repo returns
// flights in date-descending order, which fixes the most-visited tie-break
// deterministically for a given owner.
func (s *StatsService) Overview(ctx context.Context, id domain.Identity) (Overview, error) {
	flights, err := s.repo.ListByOwner(ctx, id.Owner)
	if err != nil {
		return Overview{}, fmt.Errorf("service.StatsService.Overview: %w", err)
	}

	st := stats.Compute(flights)
	return Overview{
		Statistics: st,
		Residency:  stats.ComputeTaxResidency(st.TotalDays),
	}, nil
}
