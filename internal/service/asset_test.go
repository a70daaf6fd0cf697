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

// echoAssetRepo echoes whatever it receives back — useful for Create/Update
// tests that only care about validation logic, not what the DB returns.
func echoAssetRepo() *mockAssetRepo {
	return &mockAssetRepo{
		create: func(_ context.Context, a domain.Asset) (domain.Asset, error) { return a, nil },
		update: func(_ context.Context, a domain.Asset) (domain.Asset, error) { return a, nil },
	}
}

func TestAssetService_Create_Valid(t *testing.T) {
	svc := service.NewAssetService(echoAssetRepo())

	got, err := svc.Create(context.Background(), validAsset())

	require.NoError(t, err)
	assert.Equal(t, "Sea Breeze", got.Name)
}

func TestAssetService_Create_MissingName(t *testing.T) {
	svc := service.NewAssetService(echoAssetRepo())

	a := validAsset()
	a.Name = "   " // whitespace-only should be treated as empty

	_, err := svc.Create(context.Background(), a)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAssetService_Create_UnknownType(t *testing.T) {
	svc := service.NewAssetService(echoAssetRepo())

	a := validAsset()
	a.Type = "submarine"

	_, err := svc.Create(context.Background(), a)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAssetService_Create_NormalizesBlockedDates(t *testing.T) {
	svc := service.NewAssetService(echoAssetRepo())

	a := validAsset()
	a.Maintenance = &domain.MaintenanceSchedule{
		BlockedDates: []time.Time{
			time.Date(2026, 3, 20, 14, 30, 0, 0, time.UTC), // time-of-day noise
			time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC), // duplicate day
		},
	}

	got, err := svc.Create(context.Background(), a)

	require.NoError(t, err)
	require.NotNil(t, got.Maintenance)
	// Deduplicated, truncated to midnight, sorted ascending.
	require.Len(t, got.Maintenance.BlockedDates, 2)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got.Maintenance.BlockedDates[0])
	assert.Equal(t, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), got.Maintenance.BlockedDates[1])
}

func TestAssetService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockAssetRepo{
		create: func(context.Context, domain.Asset) (domain.Asset, error) {
			return domain.Asset{}, repoErr
		},
	}
	svc := service.NewAssetService(r)

	_, err := svc.Create(context.Background(), validAsset())

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
}

func TestAssetService_GetByID_NotFound(t *testing.T) {
	r := &mockAssetRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Asset, error) {
			return domain.Asset{}, domain.ErrNotFound
		},
	}
	svc := service.NewAssetService(r)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssetService_ListPaged_UnknownTypeFilter(t *testing.T) {
	svc := service.NewAssetService(&mockAssetRepo{})

	_, _, err := svc.ListPaged(context.Background(), "submarine", domain.NewPaginationParams(nil, nil))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAssetService_ListPaged_NilBecomesEmptySlice(t *testing.T) {
	r := &mockAssetRepo{
		list: func(context.Context, domain.AssetType, domain.PaginationParams) ([]domain.Asset, int64, error) {
			return nil, 0, nil
		},
	}
	svc := service.NewAssetService(r)

	got, total, err := svc.ListPaged(context.Background(), "", domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.NotNil(t, got)
}

func TestAssetService_Delete_NotFound(t *testing.T) {
	r := &mockAssetRepo{
		delete: func(context.Context, uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := service.NewAssetService(r)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
