package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mhaugen/awaydays/backend/internal/repo"
)

// SweeperService deletes guest records whose expiry has passed. It is driven
// by the scheduled sweeper binary on a fixed cadence, never by a request path.
type SweeperService struct {
	repo repo.FlightRepo
	log  *slog.Logger
}

// NewSweeperService constructs a SweeperService backed by the provided repo.
func NewSweeperService(r repo.FlightRepo, log *slog.Logger) *SweeperService {
	return &SweeperService{repo: r, log: log}
}

// Sweep deletes every record with an expiry at or before now. The job is
// fire-and-forget: errors are logged and swallowed, and the run always
// reports success to its host — the next scheduled run picks up whatever
// this one missed. Finding nothing to delete is the normal case.
func (s *SweeperService) Sweep(ctx context.Context, now time.Time) {
	n, err := s.repo.DeleteExpired(ctx, now)
	if err != nil {
		s.log.Error("expiry sweep failed", "error", err)
		return
	}
	if n == 0 {
		s.log.Info("no expired guest records found")
		return
	}
	s.log.Info("deleted expired guest records", "count", n)
}
