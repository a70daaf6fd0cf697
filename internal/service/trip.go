package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/tour-ops/internal/domain"
	"github.com/pkordes/tour-ops/internal/repo"
	"github.com/pkordes/tour-ops/internal/scheduler"
)

// TripService implements business logic for Trip operations.
// It holds both repos because committing a trip requires validating the
// proposed resource assignment against the full fleet and every overlapping
// trip.
type TripService struct {
	trips  repo.TripRepo
	assets repo.AssetRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, assets repo.AssetRepo) *TripService {
	return &TripService{trips: trips, assets: assets}
}

// Create validates the trip, checks its resource assignment for conflicts,
// and persists it.
//
// Returns domain.ErrValidation for rule violations and a *domain.ConflictError
// (matching domain.ErrConflict) when any assigned resource is unavailable for
// the window. The pre-write check reports every conflict at once; the
// database exclusion constraint stays as the backstop for writes that race
// past it.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if err := s.checkAssignment(ctx, trip, nil); err != nil {
		return domain.Trip{}, err
	}

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of trips plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and persists changes to an existing trip, re-checking the
// resource assignment with the trip itself excluded so it never conflicts
// with its own booking.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if err := s.checkAssignment(ctx, trip, &trip.ID); err != nil {
		return domain.Trip{}, err
	}

	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID, releasing all its resource assignments.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// checkAssignment loads a fresh snapshot and runs the conflict checker over
// the trip's proposed assignment. Returns *domain.ConflictError when
// conflicts are found.
func (s *TripService) checkAssignment(ctx context.Context, trip domain.Trip, excludeTripID *uuid.UUID) error {
	assets, err := s.assets.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("service.TripService.checkAssignment: load assets: %w", err)
	}
	overlapping, err := s.trips.ListOverlapping(ctx, trip.StartDate, trip.EndDate)
	if err != nil {
		return fmt.Errorf("service.TripService.checkAssignment: load trips: %w", err)
	}

	result := scheduler.ValidateAssignment(assets, overlapping, trip.AssignedResources, trip.StartDate, trip.EndDate, excludeTripID)
	if result.HasConflict {
		return &domain.ConflictError{Result: result}
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - EndDate must not be before StartDate (same-day trips are valid).
//   - At least one resource must be assigned, with no duplicates.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if domain.Day(trip.EndDate).Before(domain.Day(trip.StartDate)) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if len(trip.AssignedResources) == 0 {
		return fmt.Errorf("%w: at least one resource must be assigned", domain.ErrValidation)
	}
	seen := make(map[uuid.UUID]bool, len(trip.AssignedResources))
	for _, id := range trip.AssignedResources {
		if seen[id] {
			return fmt.Errorf("%w: resource %s assigned twice", domain.ErrValidation, id)
		}
		seen[id] = true
	}
	return nil
}
