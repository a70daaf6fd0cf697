package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tour-ops/internal/domain"
)

// ValidateAssignment checks a proposed multi-resource assignment (e.g. one
// boat plus one guide) over the inclusive window [start, end] and aggregates
// every conflict found. A non-empty result should block the write in the
// caller.
//
// Per resource id, in order:
//   - An id that resolves to no known asset yields one unknown_resource
//     conflict. An assignment referencing a deleted asset must never
//     validate clean.
//   - A maintenance-blocked asset yields exactly one maintenance conflict
//     and skips the booking check — the asset cannot be double-booked on
//     days it cannot be booked at all.
//   - Otherwise every overlapping trip holding the asset yields an
//     already_booked conflict, with excludeTripID honored so an edit flow
//     does not conflict with itself.
//
// Callers are expected to have validated start <= end; the window is not
// re-checked here.
func ValidateAssignment(assets []domain.Asset, trips []domain.Trip, resourceIDs []uuid.UUID, start, end time.Time, excludeTripID *uuid.UUID) domain.ConflictResult {
	byID := make(map[uuid.UUID]domain.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}

	var conflicts []domain.Conflict

	for _, id := range resourceIDs {
		asset, ok := byID[id]
		if !ok {
			conflicts = append(conflicts, domain.Conflict{
				ResourceID: id,
				Type:       domain.ConflictUnknownResource,
				Date:       domain.Day(start),
			})
			continue
		}

		if BlockedByMaintenance(asset, start, end) {
			conflicts = append(conflicts, domain.Conflict{
				ResourceID:   id,
				ResourceName: asset.Name,
				Type:         domain.ConflictMaintenance,
				Date:         domain.Day(start),
			})
			continue
		}

		result := FindBookingConflicts(trips, id, start, end, excludeTripID)
		for _, c := range result.Conflicts {
			c.ResourceName = asset.Name
			conflicts = append(conflicts, c)
		}
	}

	return domain.ConflictResult{
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	}
}
