package domain

import "time"

// ExportRow is a single row in the flight-data export: a flat view of one
// flight with dates pre-formatted as strings so both the JSON and CSV
// encodings can use it unchanged.
type ExportRow struct {
	ID           string `json:"id"`
	FlightNumber string `json:"flight_number"`
	Date         string `json:"date"` // "2006-01-02" formatted date
	From         string `json:"from"`
	To           string `json:"to"`
	Days         int    `json:"days"`
	Notes        string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
