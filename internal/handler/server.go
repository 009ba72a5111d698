// Package handler implements the HTTP handlers for the Away Days API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (flight.go, stats.go, export.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mhaugen/awaydays/backend/internal/domain"
	"github.com/mhaugen/awaydays/backend/internal/middleware"
	"github.com/mhaugen/awaydays/backend/internal/ref"
	"github.com/mhaugen/awaydays/backend/internal/service"
)

// FlightServicer defines the business operations the flight handlers depend
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type FlightServicer interface {
	Create(ctx context.Context, id domain.Identity, flight domain.Flight) (domain.Flight, error)
	GetByID(ctx context.Context, id domain.Identity, flightID uuid.UUID) (domain.Flight, error)
	ListByOwnerPaged(ctx context.Context, id domain.Identity, p domain.PaginationParams) ([]domain.Flight, int64, error)
	Update(ctx context.Context, id domain.Identity, flightID uuid.UUID, flight domain.Flight) (domain.Flight, error)
	Delete(ctx context.Context, id domain.Identity, flightID uuid.UUID) error
	DeleteAll(ctx context.Context, id domain.Identity) error
}

// StatsServicer defines the statistics operation the stats handler depends on.
type StatsServicer interface {
	Overview(ctx context.Context, id domain.Identity) (service.Overview, error)
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, id domain.Identity) ([]domain.ExportRow, error)
}

// Server holds the dependencies for all API endpoints.
// Wire it in main.go and mount Routes on the root router.
type Server struct {
	flights FlightServicer
	stats   StatsServicer
	export  ExportServicer

	// countries is nil when the reference list failed to load; the countries
	// endpoint then degrades while everything else keeps working.
	countries *ref.Countries
}

// NewServer constructs the Server with all its dependencies.
func NewServer(flights FlightServicer, stats StatsServicer, export ExportServicer, countries *ref.Countries) *Server {
	return &Server{flights: flights, stats: stats, export: export, countries: countries}
}

// Routes returns a router with every endpoint mounted. Identity is required
// for all record, stats, and export routes; health, the OpenAPI document, and
// the country reference list are public.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPI)
	r.Get("/countries", s.handleCountries)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewIdentityHandler())

		r.Route("/flights", func(r chi.Router) {
			r.Post("/", s.handleCreateFlight)
			r.Get("/", s.handleListFlights)
			r.Delete("/", s.handleDeleteAllFlights)

			r.Route("/{flightID}", func(r chi.Router) {
				r.Get("/", s.handleGetFlight)
				r.Put("/", s.handleUpdateFlight)
				r.Delete("/", s.handleDeleteFlight)
			})
		})

		r.Get("/stats", s.handleStats)
		r.Get("/export", s.handleExport)
	})

	return r
}
