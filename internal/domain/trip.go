package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents one committed assignment of resources to a tour over an
// inclusive date range. A trip that starts and ends on the same day is valid.
// AssignedResources are the Asset IDs exclusively held by this trip for every
// day in [StartDate, EndDate].
type Trip struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	StartDate         time.Time   `json:"start_date"`
	EndDate           time.Time   `json:"end_date"`
	AssignedResources []uuid.UUID `json:"assigned_resources"`
	Notes             string      `json:"notes,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Overlaps reports whether the trip's date range intersects [start, end].
// Boundaries are inclusive: a trip ending the day another begins overlaps it.
// All comparisons are at calendar-day granularity.
func (t Trip) Overlaps(start, end time.Time) bool {
	return !Day(start).After(Day(t.EndDate)) && !Day(end).Before(Day(t.StartDate))
}

// Holds reports whether the given asset is among the trip's assigned resources.
func (t Trip) Holds(assetID uuid.UUID) bool {
	for _, id := range t.AssignedResources {
		if id == assetID {
			return true
		}
	}
	return false
}

// Day truncates a timestamp to its UTC calendar day. The scheduler works at
// day granularity everywhere, so time-of-day never influences a comparison.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
