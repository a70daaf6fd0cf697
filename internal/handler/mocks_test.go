package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tour-ops/internal/domain"
	"github.com/pkordes/tour-ops/internal/handler"
)

// Function-field mocks for the servicer interfaces. Set only the fields the
// test needs; an unset field that gets called panics, which is the test
// telling you it exercised an unexpected path.

type mockAssetService struct {
	create    func(ctx context.Context, asset domain.Asset) (domain.Asset, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Asset, error)
	listPaged func(ctx context.Context, assetType domain.AssetType, p domain.PaginationParams) ([]domain.Asset, int64, error)
	update    func(ctx context.Context, asset domain.Asset) (domain.Asset, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockAssetService) Create(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	return m.create(ctx, asset)
}
func (m *mockAssetService) GetByID(ctx context.Context, id uuid.UUID) (domain.Asset, error) {
	return m.getByID(ctx, id)
}
func (m *mockAssetService) ListPaged(ctx context.Context, assetType domain.AssetType, p domain.PaginationParams) ([]domain.Asset, int64, error) {
	return m.listPaged(ctx, assetType, p)
}
func (m *mockAssetService) Update(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	return m.update(ctx, asset)
}
func (m *mockAssetService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.AssetServicer = (*mockAssetService)(nil)

type mockTripService struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripService)(nil)

type mockSchedulerService struct {
	availability func(ctx context.Context, start, end time.Time, assetType domain.AssetType) ([]domain.Asset, error)
	calendar     func(ctx context.Context, assetID uuid.UUID, start time.Time, days int) ([]domain.ResourceSlot, error)
	validate     func(ctx context.Context, resourceIDs []uuid.UUID, start, end time.Time, excludeTripID *uuid.UUID) (domain.ConflictResult, error)
}

func (m *mockSchedulerService) Availability(ctx context.Context, start, end time.Time, assetType domain.AssetType) ([]domain.Asset, error) {
	return m.availability(ctx, start, end, assetType)
}
func (m *mockSchedulerService) Calendar(ctx context.Context, assetID uuid.UUID, start time.Time, days int) ([]domain.ResourceSlot, error) {
	return m.calendar(ctx, assetID, start, days)
}
func (m *mockSchedulerService) Validate(ctx context.Context, resourceIDs []uuid.UUID, start, end time.Time, excludeTripID *uuid.UUID) (domain.ConflictResult, error) {
	return m.validate(ctx, resourceIDs, start, end, excludeTripID)
}

var _ handler.SchedulerServicer = (*mockSchedulerService)(nil)

// newTestHandler wires a Server with the given mocks (nil mocks are fine for
// routes the test never hits) and returns the full router.
func newTestHandler(assets *mockAssetService, trips *mockTripService, sched *mockSchedulerService) http.Handler {
	var (
		a handler.AssetServicer
		t handler.TripServicer
		s handler.SchedulerServicer
	)
	if assets != nil {
		a = assets
	}
	if trips != nil {
		t = trips
	}
	if sched != nil {
		s = sched
	}
	return handler.NewServer(a, t, s).Routes()
}
