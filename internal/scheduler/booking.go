package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tour-ops/internal/domain"
)

// FindBookingConflicts checks whether the given resource is already held by
// any trip whose date range overlaps the inclusive window [start, end].
//
// Every overlapping trip holding the resource produces its own conflict entry
// — the scan never short-circuits, so a caller sees all competing trips at
// once. Each entry carries the existing trip's id and its start date.
//
// excludeTripID, when non-nil, skips that trip entirely. This is what lets an
// edit flow re-validate a trip's own resources without self-conflicting.
//
// The detector fills only ResourceID on each conflict; it does not always
// have the asset record in scope, so the display name is left for the caller.
func FindBookingConflicts(trips []domain.Trip, resourceID uuid.UUID, start, end time.Time, excludeTripID *uuid.UUID) domain.ConflictResult {
	var conflicts []domain.Conflict

	for _, trip := range trips {
		if excludeTripID != nil && trip.ID == *excludeTripID {
			continue
		}
		if !trip.Overlaps(start, end) {
			continue
		}
		if !trip.Holds(resourceID) {
			continue
		}

		existing := trip.ID
		conflicts = append(conflicts, domain.Conflict{
			ResourceID:     resourceID,
			Type:           domain.ConflictAlreadyBooked,
			ExistingTripID: &existing,
			Date:           domain.Day(trip.StartDate),
		})
	}

	return domain.ConflictResult{
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	}
}
