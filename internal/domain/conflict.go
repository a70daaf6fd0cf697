package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConflictType names the reason an asset cannot be assigned to a window.
type ConflictType string

const (
	// ConflictAlreadyBooked: the asset is held by another trip whose date
	// range overlaps the requested window.
	ConflictAlreadyBooked ConflictType = "already_booked"

	// ConflictMaintenance: a maintenance day falls inside the window.
	ConflictMaintenance ConflictType = "maintenance"

	// ConflictBlocked: the asset is administratively blocked.
	ConflictBlocked ConflictType = "blocked"

	// ConflictUnknownResource: the requested id does not resolve to any
	// known asset. Surfaced rather than silently skipped so a caller never
	// gets a clean validation for an assignment referencing a deleted asset.
	ConflictUnknownResource ConflictType = "unknown_resource"
)

// Conflict is one detected reason an assignment cannot proceed.
// ResourceName is a display label filled in by whichever layer has the asset
// record in scope; the overlap detector itself only knows the id.
type Conflict struct {
	ResourceID     uuid.UUID    `json:"resource_id"`
	ResourceName   string       `json:"resource_name,omitempty"`
	Type           ConflictType `json:"conflict_type"`
	ExistingTripID *uuid.UUID   `json:"existing_trip_id,omitempty"`
	Date           time.Time    `json:"date"`
}

// ConflictResult aggregates every conflict found for a proposed assignment.
// Never persisted; serialized to JSON as-is in HTTP responses.
type ConflictResult struct {
	HasConflict bool       `json:"has_conflict"`
	Conflicts   []Conflict `json:"conflicts"`
}

// SlotStatus classifies one calendar day for one asset.
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotBooked      SlotStatus = "booked"
	SlotMaintenance SlotStatus = "maintenance"
)

// ResourceSlot is one day in an asset's availability calendar.
// TripID is set only when Status is SlotBooked.
type ResourceSlot struct {
	Date   time.Time  `json:"date"`
	Status SlotStatus `json:"status"`
	TripID *uuid.UUID `json:"trip_id,omitempty"`
	Note   string     `json:"note,omitempty"`
}
