package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tour-ops/internal/domain"
	"github.com/pkordes/tour-ops/internal/repo"
)

// mockAssetRepo is a hand-written test double for repo.AssetRepo.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.
type mockAssetRepo struct {
	create  func(ctx context.Context, asset domain.Asset) (domain.Asset, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Asset, error)
	list    func(ctx context.Context, assetType domain.AssetType, p domain.PaginationParams) ([]domain.Asset, int64, error)
	listAll func(ctx context.Context) ([]domain.Asset, error)
	update  func(ctx context.Context, asset domain.Asset) (domain.Asset, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockAssetRepo) Create(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	return m.create(ctx, asset)
}
func (m *mockAssetRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Asset, error) {
	return m.getByID(ctx, id)
}
func (m *mockAssetRepo) List(ctx context.Context, assetType domain.AssetType, p domain.PaginationParams) ([]domain.Asset, int64, error) {
	return m.list(ctx, assetType, p)
}
func (m *mockAssetRepo) ListAll(ctx context.Context) ([]domain.Asset, error) {
	return m.listAll(ctx)
}
func (m *mockAssetRepo) Update(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	return m.update(ctx, asset)
}
func (m *mockAssetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockAssetRepo must satisfy repo.AssetRepo.
var _ repo.AssetRepo = (*mockAssetRepo)(nil)

// mockTripRepo is a hand-written test double for repo.TripRepo.
type mockTripRepo struct {
	create          func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID         func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list            func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	listOverlapping func(ctx context.Context, start, end time.Time) ([]domain.Trip, error)
	update          func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete          func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.list(ctx, p)
}
func (m *mockTripRepo) ListOverlapping(ctx context.Context, start, end time.Time) ([]domain.Trip, error) {
	return m.listOverlapping(ctx, start, end)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- shared fixtures -------------------------------------------------------

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validAsset() domain.Asset {
	return domain.Asset{
		ID:   uuid.New(),
		Name: "Sea Breeze",
		Type: domain.AssetTypeBoat,
	}
}

func validTrip(resources ...uuid.UUID) domain.Trip {
	return domain.Trip{
		ID:                uuid.New(),
		Name:              "Island Hopper",
		StartDate:         date(2026, 6, 1),
		EndDate:           date(2026, 6, 5),
		AssignedResources: resources,
	}
}

// emptyFleet returns repos that report no assets and no trips.
func emptyFleet() (*mockAssetRepo, *mockTripRepo) {
	assets := &mockAssetRepo{
		listAll: func(context.Context) ([]domain.Asset, error) { return nil, nil },
	}
	trips := &mockTripRepo{
		listOverlapping: func(context.Context, time.Time, time.Time) ([]domain.Trip, error) { return nil, nil },
	}
	return assets, trips
}
