package service

import (
	"context"
	"fmt"

	"github.com/mhaugen/awaydays/backend/internal/domain"
	"github.com/mhaugen/awaydays/backend/internal/repo"
)

// ExportService assembles a flat export of one owner's flight records.
type ExportService struct {
	repo repo.FlightRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(r repo.FlightRepo) *ExportService {
	return &ExportService{repo: r}
}

// Export returns one ExportRow per flight, most recent date first.
// Always returns a non-nil slice so encoders can range over it directly.
func (s *ExportService) Export(ctx context.Context, id domain.Identity) ([]domain.ExportRow, error) {
	flights, err := s.repo.ListByOwner(ctx, id.Owner)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, domain.ExportRow{
			ID:           f.ID.String(),
			FlightNumber: f.FlightNumber,
			Date:         f.Date.Format("2006-01-02"),
			From:         f.From,
			To:           f.To,
			Days:         f.Days,
			Notes:        f.Notes,
			CreatedAt:    f.CreatedAt,
		})
	}
	return rows, nil
}
