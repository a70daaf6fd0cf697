package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tour-ops/internal/domain"
	"github.com/pkordes/tour-ops/internal/repo"
	"github.com/pkordes/tour-ops/internal/scheduler"
)

// SchedulerService is the read side of the scheduling core: it loads fleet
// and schedule snapshots from the repos and runs the pure scheduler functions
// over them.
//
// When sampleFallback is enabled (off by default), snapshot load failures in
// Availability and Calendar are logged and answered from a small hard-coded
// demo fleet instead of surfacing a 5xx. Useful for demo environments; keep
// it off in production, where it would mask real outages as healthy screens.
// Validate never falls back — a booking decision must not be made against
// fake data.
type SchedulerService struct {
	assets         repo.AssetRepo
	trips          repo.TripRepo
	sampleFallback bool
	log            *slog.Logger
}

// NewSchedulerService constructs a SchedulerService backed by the provided repos.
func NewSchedulerService(assets repo.AssetRepo, trips repo.TripRepo, sampleFallback bool, log *slog.Logger) *SchedulerService {
	if log == nil {
		log = slog.Default()
	}
	return &SchedulerService{assets: assets, trips: trips, sampleFallback: sampleFallback, log: log}
}

// Availability returns the assets bookable for every day of [start, end],
// optionally restricted to one asset type.
// Returns domain.ErrValidation if the window is inverted or the type unknown.
func (s *SchedulerService) Availability(ctx context.Context, start, end time.Time, assetType domain.AssetType) ([]domain.Asset, error) {
	if domain.Day(end).Before(domain.Day(start)) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if assetType != "" && !assetType.Valid() {
		return nil, fmt.Errorf("%w: unknown asset type %q", domain.ErrValidation, assetType)
	}

	assets, trips, err := s.snapshot(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("service.SchedulerService.Availability: %w", err)
	}

	return scheduler.FilterAvailable(assets, trips, start, end, assetType), nil
}

// Calendar returns one slot per day for `days` consecutive days starting at
// start, for the given asset.
// Returns domain.ErrNotFound if the asset does not exist (never served from
// sample data) and domain.ErrValidation for a non-positive day count.
func (s *SchedulerService) Calendar(ctx context.Context, assetID uuid.UUID, start time.Time, days int) ([]domain.ResourceSlot, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: days must be at least 1", domain.ErrValidation)
	}

	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("service.SchedulerService.Calendar: %w", err)
	}

	end := domain.Day(start).AddDate(0, 0, days-1)
	trips, err := s.trips.ListOverlapping(ctx, domain.Day(start), end)
	if err != nil {
		if !s.sampleFallback {
			return nil, fmt.Errorf("service.SchedulerService.Calendar: %w", err)
		}
		s.log.Warn("schedule snapshot load failed, serving sample data", "error", err)
		trips = sampleTrips()
	}

	return scheduler.GenerateCalendar(asset, trips, start, days), nil
}

// Validate checks a proposed assignment of resources to the window
// [start, end] and returns every conflict found. excludeTripID, when non-nil,
// exempts that trip so edit flows do not self-conflict.
func (s *SchedulerService) Validate(ctx context.Context, resourceIDs []uuid.UUID, start, end time.Time, excludeTripID *uuid.UUID) (domain.ConflictResult, error) {
	if domain.Day(end).Before(domain.Day(start)) {
		return domain.ConflictResult{}, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if len(resourceIDs) == 0 {
		return domain.ConflictResult{}, fmt.Errorf("%w: resource_ids must not be empty", domain.ErrValidation)
	}

	assets, err := s.assets.ListAll(ctx)
	if err != nil {
		return domain.ConflictResult{}, fmt.Errorf("service.SchedulerService.Validate: load assets: %w", err)
	}
	trips, err := s.trips.ListOverlapping(ctx, start, end)
	if err != nil {
		return domain.ConflictResult{}, fmt.Errorf("service.SchedulerService.Validate: load trips: %w", err)
	}

	return scheduler.ValidateAssignment(assets, trips, resourceIDs, start, end, excludeTripID), nil
}

// snapshot loads the full fleet and all trips overlapping the window,
// falling back to sample data when enabled.
func (s *SchedulerService) snapshot(ctx context.Context, start, end time.Time) ([]domain.Asset, []domain.Trip, error) {
	assets, err := s.assets.ListAll(ctx)
	if err == nil {
		var trips []domain.Trip
		trips, err = s.trips.ListOverlapping(ctx, start, end)
		if err == nil {
			return assets, trips, nil
		}
	}

	if !s.sampleFallback {
		return nil, nil, err
	}
	s.log.Warn("fleet snapshot load failed, serving sample data", "error", err)
	return sampleAssets(), sampleTrips(), nil
}
