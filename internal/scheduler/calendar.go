package scheduler

import (
	"time"

	"github.com/pkordes/tour-ops/internal/domain"
)

// maintenanceNote is the human-readable note attached to maintenance slots.
const maintenanceNote = "Scheduled maintenance"

// GenerateCalendar classifies each of `days` consecutive calendar days
// starting at start for a single asset, for calendar-strip rendering.
//
// Per day, maintenance wins over bookings; a booked day carries the id of the
// first overlapping trip in snapshot order (first conflict reported, not all
// simultaneous ones). The result always has exactly `days` entries, one per
// day in order, so callers can render a fixed-width strip without gap
// filling. days <= 0 yields an empty, non-nil slice.
func GenerateCalendar(asset domain.Asset, trips []domain.Trip, start time.Time, days int) []domain.ResourceSlot {
	if days < 0 {
		days = 0
	}
	slots := make([]domain.ResourceSlot, 0, days)

	for i := 0; i < days; i++ {
		day := domain.Day(start).AddDate(0, 0, i)

		if BlockedByMaintenance(asset, day, day) {
			slots = append(slots, domain.ResourceSlot{
				Date:   day,
				Status: domain.SlotMaintenance,
				Note:   maintenanceNote,
			})
			continue
		}

		if result := FindBookingConflicts(trips, asset.ID, day, day, nil); result.HasConflict {
			slots = append(slots, domain.ResourceSlot{
				Date:   day,
				Status: domain.SlotBooked,
				TripID: result.Conflicts[0].ExistingTripID,
			})
			continue
		}

		slots = append(slots, domain.ResourceSlot{
			Date:   day,
			Status: domain.SlotAvailable,
		})
	}

	return slots
}
