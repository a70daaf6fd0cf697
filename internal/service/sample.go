package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tour-ops/internal/domain"
)

// Fixed ids keep the sample dataset stable across calls, so a demo screen
// refresh does not reshuffle the fleet.
var (
	sampleBoatID  = uuid.MustParse("7a1d3f60-0000-4000-8000-000000000001")
	sampleGuideID = uuid.MustParse("7a1d3f60-0000-4000-8000-000000000002")
	sampleVanID   = uuid.MustParse("7a1d3f60-0000-4000-8000-000000000003")
	sampleVillaID = uuid.MustParse("7a1d3f60-0000-4000-8000-000000000004")
	sampleTripID  = uuid.MustParse("7a1d3f60-0000-4000-8000-000000000100")
)

// sampleAssets returns the hard-coded demo fleet served when the store is
// unreachable and sample fallback is enabled.
func sampleAssets() []domain.Asset {
	nextMnt := domain.Day(time.Now()).AddDate(0, 1, 0)
	return []domain.Asset{
		{ID: sampleBoatID, Name: "Sea Breeze (sample)", Type: domain.AssetTypeBoat,
			Maintenance: &domain.MaintenanceSchedule{NextMaintenance: &nextMnt}},
		{ID: sampleGuideID, Name: "Maria Santos (sample)", Type: domain.AssetTypeGuide},
		{ID: sampleVanID, Name: "Shuttle Van (sample)", Type: domain.AssetTypeVehicle},
		{ID: sampleVillaID, Name: "Hilltop Villa (sample)", Type: domain.AssetTypeVilla},
	}
}

// sampleTrips returns one demo trip holding the sample boat for a three-day
// window starting tomorrow, so demo calendars show at least one booked strip.
func sampleTrips() []domain.Trip {
	start := domain.Day(time.Now()).AddDate(0, 0, 1)
	return []domain.Trip{
		{
			ID:                sampleTripID,
			Name:              "Coastal Demo Tour",
			StartDate:         start,
			EndDate:           start.AddDate(0, 0, 2),
			AssignedResources: []uuid.UUID{sampleBoatID},
		},
	}
}
