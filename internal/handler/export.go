package handler

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mhaugen/awaydays/backend/internal/domain"
	"github.com/mhaugen/awaydays/backend/internal/middleware"
)

// handleExport handles GET /export. The default encoding is JSON;
// ?format=csv switches to a CSV download with a header row.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "missing identity")
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		writeRequestError(w, "format must be json or csv")
		return
	}

	rows, err := s.export.Export(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "export not found")
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// writeCSV streams the export rows as a CSV attachment. csv.Writer buffers,
// so a late write failure surfaces from Flush; by then the status line is
// out and the error can only be logged.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="flights.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "flight_number", "date", "from", "to", "days", "notes", "created_at"})
	for _, row := range rows {
		_ = cw.Write([]string{
			row.ID,
			row.FlightNumber,
			row.Date,
			row.From,
			row.To,
			strconv.Itoa(row.Days),
			row.Notes,
			row.CreatedAt.Format(time.RFC3339),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("write csv export", "error", err)
	}
}
