// Package scheduler implements the resource availability and conflict
// detection core. Every function here is pure: it reads a snapshot of assets
// and trips supplied by the caller, performs calendar-day arithmetic, and
// returns a value. No I/O, no shared state, no side effects — the service
// layer loads the snapshot and persists any decision.
//
// All date comparisons are inclusive and at calendar-day granularity
// (see domain.Day). A trip ending the same day another begins conflicts with
// it; there is no half-day buffer.
package scheduler

import (
	"time"

	"github.com/pkordes/tour-ops/internal/domain"
)

// BlockedByMaintenance reports whether the asset is out of service on any day
// of the inclusive window [start, end]: either an explicit blocked date or
// the next planned maintenance day falls inside the window.
//
// An asset with no maintenance schedule is never blocked. That is a
// deliberate fail-open choice: missing maintenance data means bookable, not
// grounded.
func BlockedByMaintenance(asset domain.Asset, start, end time.Time) bool {
	if asset.Maintenance == nil {
		return false
	}

	for _, d := range asset.Maintenance.BlockedDates {
		if inWindow(d, start, end) {
			return true
		}
	}

	if nm := asset.Maintenance.NextMaintenance; nm != nil && inWindow(*nm, start, end) {
		return true
	}

	return false
}

// inWindow reports whether day d falls inside [start, end], inclusive on
// both ends, at calendar-day granularity.
func inWindow(d, start, end time.Time) bool {
	day := domain.Day(d)
	return !day.Before(domain.Day(start)) && !day.After(domain.Day(end))
}
