// Package domain contains the core data types for the tour operations API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (scheduler, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetType classifies a bookable physical resource.
type AssetType string

// The asset types the platform schedules. Stored as plain text in the
// database, so adding a type is a code change, not a migration.
const (
	AssetTypeBoat    AssetType = "boat"
	AssetTypeGuide   AssetType = "guide"
	AssetTypeVehicle AssetType = "vehicle"
	AssetTypeVilla   AssetType = "villa"
)

// Valid reports whether t is one of the known asset types.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeBoat, AssetTypeGuide, AssetTypeVehicle, AssetTypeVilla:
		return true
	}
	return false
}

// MaintenanceSchedule describes when an asset is out of service.
// BlockedDates are individual calendar days the asset cannot be booked.
// NextMaintenance is the next planned service day, nil when none is planned.
type MaintenanceSchedule struct {
	BlockedDates    []time.Time `json:"blocked_dates,omitempty"`
	NextMaintenance *time.Time  `json:"next_maintenance,omitempty"`
}

// Asset represents a bookable physical resource: a boat, guide, vehicle, or
// villa. Maintenance is nil when the asset has no maintenance information at
// all, which the scheduler treats as "never blocked".
type Asset struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Type        AssetType            `json:"type"`
	Maintenance *MaintenanceSchedule `json:"maintenance,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
