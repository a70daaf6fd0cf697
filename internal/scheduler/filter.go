package scheduler

import (
	"time"

	"github.com/pkordes/tour-ops/internal/domain"
)

// FilterAvailable returns the assets that can be booked for every day of the
// inclusive window [start, end]: not maintenance-blocked and not held by any
// overlapping trip.
//
// assetType, when non-empty, restricts the result to assets of that type.
// The filter is stable — surviving assets keep their original relative order.
// With no assets or no trips, every asset of the matching type is available.
func FilterAvailable(assets []domain.Asset, trips []domain.Trip, start, end time.Time, assetType domain.AssetType) []domain.Asset {
	available := make([]domain.Asset, 0, len(assets))

	for _, asset := range assets {
		if assetType != "" && asset.Type != assetType {
			continue
		}
		if BlockedByMaintenance(asset, start, end) {
			continue
		}
		if FindBookingConflicts(trips, asset.ID, start, end, nil).HasConflict {
			continue
		}
		available = append(available, asset)
	}

	return available
}
