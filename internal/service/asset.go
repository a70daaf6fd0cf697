// Package service contains the business logic for the tour operations API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// scheduler calls. No SQL lives here — services depend on repo interfaces,
// not implementations.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/tour-ops/internal/domain"
	"github.com/pkordes/tour-ops/internal/repo"
)

// AssetService implements business logic for Asset operations.
type AssetService struct {
	repo repo.AssetRepo
}

// NewAssetService constructs an AssetService backed by the provided AssetRepo.
func NewAssetService(r repo.AssetRepo) *AssetService {
	return &AssetService{repo: r}
}

// Create validates and persists a new asset.
// Returns domain.ErrValidation if input violates business rules.
func (s *AssetService) Create(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	if err := validateAsset(&asset); err != nil {
		return domain.Asset{}, err
	}
	result, err := s.repo.Create(ctx, asset)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("service.AssetService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single asset by ID.
// Returns domain.ErrNotFound if no asset with that ID exists.
func (s *AssetService) GetByID(ctx context.Context, id uuid.UUID) (domain.Asset, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("service.AssetService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of assets plus the total count, optionally
// restricted to one asset type. An unknown type filter is a validation error
// rather than an empty result, so a typo never looks like an empty fleet.
// Always returns a non-nil slice so callers can safely range over it.
func (s *AssetService) ListPaged(ctx context.Context, assetType domain.AssetType, p domain.PaginationParams) ([]domain.Asset, int64, error) {
	if assetType != "" && !assetType.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown asset type %q", domain.ErrValidation, assetType)
	}
	assets, total, err := s.repo.List(ctx, assetType, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.AssetService.ListPaged: %w", err)
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return assets, total, nil
}

// Update validates and updates an existing asset.
func (s *AssetService) Update(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	if err := validateAsset(&asset); err != nil {
		return domain.Asset{}, err
	}
	result, err := s.repo.Update(ctx, asset)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("service.AssetService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an asset by ID.
func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.AssetService.Delete: %w", err)
	}
	return nil
}

// validateAsset enforces business rules common to both Create and Update,
// and normalizes the maintenance schedule in place:
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Type must be a known asset type.
//   - Blocked dates are truncated to calendar days, deduplicated, and sorted
//     so downstream comparisons never see time-of-day noise.
func validateAsset(asset *domain.Asset) error {
	if strings.TrimSpace(asset.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !asset.Type.Valid() {
		return fmt.Errorf("%w: unknown asset type %q", domain.ErrValidation, asset.Type)
	}

	if m := asset.Maintenance; m != nil {
		seen := make(map[int64]bool, len(m.BlockedDates))
		days := m.BlockedDates[:0]
		for _, d := range m.BlockedDates {
			day := domain.Day(d)
			if !seen[day.Unix()] {
				seen[day.Unix()] = true
				days = append(days, day)
			}
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
		m.BlockedDates = days

		if m.NextMaintenance != nil {
			nm := domain.Day(*m.NextMaintenance)
			m.NextMaintenance = &nm
		}
	}

	return nil
}
