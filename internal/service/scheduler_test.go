package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tour-ops/internal/domain"
	"github.com/pkordes/tour-ops/internal/service"
)

func TestSchedulerService_Availability_FiltersBookedAssets(t *testing.T) {
	boat := validAsset()
	van := domain.Asset{ID: uuid.New(), Name: "Van 1", Type: domain.AssetTypeVehicle}
	trip := validTrip(boat.ID)

	assetRepo := &mockAssetRepo{
		listAll: func(context.Context) ([]domain.Asset, error) {
			return []domain.Asset{boat, van}, nil
		},
	}
	tripRepo := &mockTripRepo{
		listOverlapping: func(context.Context, time.Time, time.Time) ([]domain.Trip, error) {
			return []domain.Trip{trip}, nil
		},
	}
	svc := service.NewSchedulerService(assetRepo, tripRepo, false, nil)

	got, err := svc.Availability(context.Background(), trip.StartDate, trip.EndDate, "")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, van.ID, got[0].ID)
}

func TestSchedulerService_Availability_InvertedWindow(t *testing.T) {
	assetRepo, tripRepo := emptyFleet()
	svc := service.NewSchedulerService(assetRepo, tripRepo, false, nil)

	_, err := svc.Availability(context.Background(), date(2026, 6, 5), date(2026, 6, 1), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSchedulerService_Availability_UnknownType(t *testing.T) {
	assetRepo, tripRepo := emptyFleet()
	svc := service.NewSchedulerService(assetRepo, tripRepo, false, nil)

	_, err := svc.Availability(context.Background(), date(2026, 6, 1), date(2026, 6, 5), "submarine")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSchedulerService_Availability_StoreErrorWithoutFallback(t *testing.T) {
	loadErr := errors.New("db exploded")
	assetRepo := &mockAssetRepo{
		listAll: func(context.Context) ([]domain.Asset, error) { return nil, loadErr },
	}
	svc := service.NewSchedulerService(assetRepo, &mockTripRepo{}, false, nil)

	_, err := svc.Availability(context.Background(), date(2026, 6, 1), date(2026, 6, 5), "")

	// Fallback disabled: the store failure surfaces to the caller.
	assert.ErrorIs(t, err, loadErr)
}

func TestSchedulerService_Availability_StoreErrorWithFallback(t *testing.T) {
	assetRepo := &mockAssetRepo{
		listAll: func(context.Context) ([]domain.Asset, error) {
			return nil, errors.New("db exploded")
		},
	}
	svc := service.NewSchedulerService(assetRepo, &mockTripRepo{}, true, nil)

	got, err := svc.Availability(context.Background(), date(2026, 6, 1), date(2026, 6, 5), domain.AssetTypeBoat)

	// Fallback enabled: the sample fleet is served instead of an error.
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, a := range got {
		assert.Equal(t, domain.AssetTypeBoat, a.Type)
	}
}

func TestSchedulerService_Calendar_LengthAndStatuses(t *testing.T) {
	boat := validAsset()
	trip := validTrip(boat.ID) // June 1-5

	assetRepo := &mockAssetRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Asset, error) {
			require.Equal(t, boat.ID, id)
			return boat, nil
		},
	}
	tripRepo := &mockTripRepo{
		listOverlapping: func(context.Context, time.Time, time.Time) ([]domain.Trip, error) {
			return []domain.Trip{trip}, nil
		},
	}
	svc := service.NewSchedulerService(assetRepo, tripRepo, false, nil)

	slots, err := svc.Calendar(context.Background(), boat.ID, date(2026, 6, 4), 7)

	require.NoError(t, err)
	require.Len(t, slots, 7)
	assert.Equal(t, domain.SlotBooked, slots[0].Status)    // June 4
	assert.Equal(t, domain.SlotBooked, slots[1].Status)    // June 5
	assert.Equal(t, domain.SlotAvailable, slots[2].Status) // June 6
}

func TestSchedulerService_Calendar_UnknownAsset(t *testing.T) {
	assetRepo := &mockAssetRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Asset, error) {
			return domain.Asset{}, domain.ErrNotFound
		},
	}
	// Fallback never applies to a missing asset — only to schedule loads.
	svc := service.NewSchedulerService(assetRepo, &mockTripRepo{}, true, nil)

	_, err := svc.Calendar(context.Background(), uuid.New(), date(2026, 6, 1), 7)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSchedulerService_Calendar_NonPositiveDays(t *testing.T) {
	assetRepo, tripRepo := emptyFleet()
	svc := service.NewSchedulerService(assetRepo, tripRepo, false, nil)

	_, err := svc.Calendar(context.Background(), uuid.New(), date(2026, 6, 1), 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSchedulerService_Validate_ReportsConflicts(t *testing.T) {
	boat := validAsset()
	trip := validTrip(boat.ID)

	assetRepo := &mockAssetRepo{
		listAll: func(context.Context) ([]domain.Asset, error) { return []domain.Asset{boat}, nil },
	}
	tripRepo := &mockTripRepo{
		listOverlapping: func(context.Context, time.Time, time.Time) ([]domain.Trip, error) {
			return []domain.Trip{trip}, nil
		},
	}
	svc := service.NewSchedulerService(assetRepo, tripRepo, false, nil)

	result, err := svc.Validate(context.Background(), []uuid.UUID{boat.ID}, trip.StartDate, trip.EndDate, nil)

	require.NoError(t, err)
	require.True(t, result.HasConflict)
	assert.Equal(t, domain.ConflictAlreadyBooked, result.Conflicts[0].Type)

	excluded, err := svc.Validate(context.Background(), []uuid.UUID{boat.ID}, trip.StartDate, trip.EndDate, &trip.ID)
	require.NoError(t, err)
	assert.False(t, excluded.HasConflict)
}

func TestSchedulerService_Validate_NeverFallsBack(t *testing.T) {
	loadErr := errors.New("db exploded")
	assetRepo := &mockAssetRepo{
		listAll: func(context.Context) ([]domain.Asset, error) { return nil, loadErr },
	}
	svc := service.NewSchedulerService(assetRepo, &mockTripRepo{}, true, nil)

	_, err := svc.Validate(context.Background(), []uuid.UUID{uuid.New()},
		date(2026, 6, 1), date(2026, 6, 5), nil)

	// Even with fallback enabled, a booking decision is never made against
	// sample data.
	assert.ErrorIs(t, err, loadErr)
}

func TestSchedulerService_Validate_EmptyResourceList(t *testing.T) {
	assetRepo, tripRepo := emptyFleet()
	svc := service.NewSchedulerService(assetRepo, tripRepo, false, nil)

	_, err := svc.Validate(context.Background(), nil, date(2026, 6, 1), date(2026, 6, 5), nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}
