// Package handler implements the HTTP handlers for the tour operations API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, asset.go, trip.go, scheduler.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/tour-ops/internal/domain"
	"github.com/pkordes/tour-ops/spec"
)

// AssetServicer defines the business operations the asset handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type AssetServicer interface {
	Create(ctx context.Context, asset domain.Asset) (domain.Asset, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Asset, error)
	ListPaged(ctx context.Context, assetType domain.AssetType, p domain.PaginationParams) ([]domain.Asset, int64, error)
	Update(ctx context.Context, asset domain.Asset) (domain.Asset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TripServicer defines the business operations the trip handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SchedulerServicer defines the availability operations the scheduler
// handlers depend on.
type SchedulerServicer interface {
	Availability(ctx context.Context, start, end time.Time, assetType domain.AssetType) ([]domain.Asset, error)
	Calendar(ctx context.Context, assetID uuid.UUID, start time.Time, days int) ([]domain.ResourceSlot, error)
	Validate(ctx context.Context, resourceIDs []uuid.UUID, start, end time.Time, excludeTripID *uuid.UUID) (domain.ConflictResult, error)
}

// Server holds the dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	assets AssetServicer
	trips  TripServicer
	sched  SchedulerServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(assets AssetServicer, trips TripServicer, sched SchedulerServicer) *Server {
	return &Server{assets: assets, trips: trips, sched: sched}
}

// Routes returns the chi router for the full API surface.
// Mount it at the root of the middleware chain in main.go.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/assets", func(r chi.Router) {
			r.Get("/", s.ListAssets)
			r.Post("/", s.CreateAsset)
			r.Get("/{id}", s.GetAsset)
			r.Put("/{id}", s.UpdateAsset)
			r.Delete("/{id}", s.DeleteAsset)
		})

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)
			r.Get("/{id}", s.GetTrip)
			r.Put("/{id}", s.UpdateTrip)
			r.Delete("/{id}", s.DeleteTrip)
		})

		r.Route("/scheduler", func(r chi.Router) {
			r.Get("/availability", s.GetAvailability)
			r.Get("/assets/{id}/calendar", s.GetAssetCalendar)
			r.Post("/validate", s.ValidateAssignment)
		})
	})

	return r
}
