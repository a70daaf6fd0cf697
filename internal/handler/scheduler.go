package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/pkordes/tour-ops/internal/domain"
)

// Calendar strips default to two weeks and are capped at a quarter to keep
// response sizes predictable.
const (
	defaultCalendarDays = 14
	maxCalendarDays     = 92
)

// availabilityResponse is the body of GET /scheduler/availability.
// View echoes the requested UI granularity; it never changes the computation.
type availabilityResponse struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	View      string          `json:"view,omitempty"`
	Available []assetResponse `json:"available"`
}

// GetAvailability handles GET /api/v1/scheduler/availability.
// Query parameters: start_date and end_date (required, YYYY-MM-DD),
// asset_type (optional filter), view (optional, advisory only).
func (s *Server) GetAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := parseDate(q.Get("start_date"), "start_date")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	end, err := parseDate(q.Get("end_date"), "end_date")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	assets, err := s.sched.Availability(r.Context(), start, end, domain.AssetType(q.Get("asset_type")))
	if err != nil {
		writeError(w, err, "asset not found")
		return
	}

	available := make([]assetResponse, len(assets))
	for i, a := range assets {
		available[i] = assetToResponse(a)
	}
	writeJSON(w, http.StatusOK, availabilityResponse{
		StartDate: formatDate(start),
		EndDate:   formatDate(end),
		View:      q.Get("view"),
		Available: available,
	})
}

// calendarResponse is the body of GET /scheduler/assets/{id}/calendar.
type calendarResponse struct {
	AssetID uuid.UUID      `json:"asset_id"`
	Slots   []slotResponse `json:"slots"`
}

// GetAssetCalendar handles GET /api/v1/scheduler/assets/{id}/calendar.
// Query parameters: start_date (required), days (optional, default 14, max 92).
// The response always contains exactly `days` slots.
func (s *Server) GetAssetCalendar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	start, err := parseDate(r.URL.Query().Get("start_date"), "start_date")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	days := defaultCalendarDays
	if v := r.URL.Query().Get("days"); v != "" {
		days, err = strconv.Atoi(v)
		if err != nil {
			badRequest(w, "days must be an integer")
			return
		}
		if days > maxCalendarDays {
			days = maxCalendarDays
		}
	}

	slots, err := s.sched.Calendar(r.Context(), id, start, days)
	if err != nil {
		writeError(w, err, "asset not found")
		return
	}

	resp := calendarResponse{AssetID: id, Slots: make([]slotResponse, len(slots))}
	for i, slot := range slots {
		resp.Slots[i] = slotToResponse(slot)
	}
	writeJSON(w, http.StatusOK, resp)
}

// validateRequest is the body of POST /scheduler/validate.
type validateRequest struct {
	ResourceIDs   []uuid.UUID `json:"resource_ids"`
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	ExcludeTripID *uuid.UUID  `json:"exclude_trip_id,omitempty"`
}

// ValidateAssignment handles POST /api/v1/scheduler/validate.
// Returns 200 with the ConflictResult whether or not conflicts were found —
// a detected conflict is a successful validation, not an HTTP error.
func (s *Server) ValidateAssignment(w http.ResponseWriter, r *http.Request) {
	var body validateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "request body must be valid JSON")
		return
	}
	start, err := parseDate(body.StartDate, "start_date")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	end, err := parseDate(body.EndDate, "end_date")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	result, err := s.sched.Validate(r.Context(), body.ResourceIDs, start, end, body.ExcludeTripID)
	if err != nil {
		writeError(w, err, "asset not found")
		return
	}

	if result.Conflicts == nil {
		result.Conflicts = []domain.Conflict{}
	}
	writeJSON(w, http.StatusOK, result)
}
