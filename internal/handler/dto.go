package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/tour-ops/internal/domain"
)

// dateLayout is the wire format for calendar dates throughout the API.
const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD query or body value into a UTC calendar day.
func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return t, nil
}

// formatDate renders a calendar day in the wire format.
func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// pathID extracts and parses the {id} path parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("id must be a valid UUID")
	}
	return id, nil
}

// queryPagination reads optional ?page= and ?limit= parameters.
// Unparseable values are ignored and fall back to the defaults.
func queryPagination(r *http.Request) domain.PaginationParams {
	var page, limit *int
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		page = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = &v
	}
	return domain.NewPaginationParams(page, limit)
}

// pagination is the page envelope on list responses.
type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ---- asset DTOs ------------------------------------------------------------

// maintenancePayload is the wire shape of a maintenance schedule, with dates
// as YYYY-MM-DD strings.
type maintenancePayload struct {
	BlockedDates    []string `json:"blocked_dates,omitempty"`
	NextMaintenance *string  `json:"next_maintenance,omitempty"`
}

// assetRequest is the body for both POST and PUT on assets.
type assetRequest struct {
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Maintenance *maintenancePayload `json:"maintenance,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// assetResponse is the wire shape of an asset.
type assetResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Maintenance *maintenancePayload `json:"maintenance,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// requestToAsset converts an assetRequest into a domain.Asset.
// Returns an error if a date fails to parse; field-level business rules are
// left to the service.
func requestToAsset(body *assetRequest) (domain.Asset, error) {
	if body == nil {
		return domain.Asset{}, fmt.Errorf("request body is required")
	}
	a := domain.Asset{
		Name:  body.Name,
		Type:  domain.AssetType(body.Type),
		Notes: body.Notes,
	}
	if body.Maintenance != nil {
		m := &domain.MaintenanceSchedule{}
		for _, s := range body.Maintenance.BlockedDates {
			d, err := parseDate(s, "maintenance.blocked_dates")
			if err != nil {
				return domain.Asset{}, err
			}
			m.BlockedDates = append(m.BlockedDates, d)
		}
		if body.Maintenance.NextMaintenance != nil {
			d, err := parseDate(*body.Maintenance.NextMaintenance, "maintenance.next_maintenance")
			if err != nil {
				return domain.Asset{}, err
			}
			m.NextMaintenance = &d
		}
		a.Maintenance = m
	}
	return a, nil
}

// assetToResponse converts a domain.Asset into its wire shape.
func assetToResponse(a domain.Asset) assetResponse {
	resp := assetResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      string(a.Type),
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Maintenance != nil {
		m := &maintenancePayload{}
		for _, d := range a.Maintenance.BlockedDates {
			m.BlockedDates = append(m.BlockedDates, formatDate(d))
		}
		if a.Maintenance.NextMaintenance != nil {
			s := formatDate(*a.Maintenance.NextMaintenance)
			m.NextMaintenance = &s
		}
		resp.Maintenance = m
	}
	return resp
}

// ---- trip DTOs -------------------------------------------------------------

// tripRequest is the body for both POST and PUT on trips.
type tripRequest struct {
	Name              string      `json:"name"`
	StartDate         string      `json:"start_date"`
	EndDate           string      `json:"end_date"`
	AssignedResources []uuid.UUID `json:"assigned_resources"`
	Notes             string      `json:"notes,omitempty"`
}

// tripResponse is the wire shape of a trip.
type tripResponse struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	StartDate         string      `json:"start_date"`
	EndDate           string      `json:"end_date"`
	AssignedResources []uuid.UUID `json:"assigned_resources"`
	Notes             string      `json:"notes,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// requestToTrip converts a tripRequest into a domain.Trip.
func requestToTrip(body *tripRequest) (domain.Trip, error) {
	if body == nil {
		return domain.Trip{}, fmt.Errorf("request body is required")
	}
	start, err := parseDate(body.StartDate, "start_date")
	if err != nil {
		return domain.Trip{}, err
	}
	end, err := parseDate(body.EndDate, "end_date")
	if err != nil {
		return domain.Trip{}, err
	}
	return domain.Trip{
		Name:              body.Name,
		StartDate:         start,
		EndDate:           end,
		AssignedResources: body.AssignedResources,
		Notes:             body.Notes,
	}, nil
}

// tripToResponse converts a domain.Trip into its wire shape.
// AssignedResources is never null in the response, even for a trip loaded
// with no assignments.
func tripToResponse(t domain.Trip) tripResponse {
	resources := t.AssignedResources
	if resources == nil {
		resources = []uuid.UUID{}
	}
	return tripResponse{
		ID:                t.ID,
		Name:              t.Name,
		StartDate:         formatDate(t.StartDate),
		EndDate:           formatDate(t.EndDate),
		AssignedResources: resources,
		Notes:             t.Notes,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ---- scheduler DTOs --------------------------------------------------------

// slotResponse is one day in a calendar strip.
type slotResponse struct {
	Date   string     `json:"date"`
	Status string     `json:"status"`
	TripID *uuid.UUID `json:"trip_id,omitempty"`
	Note   string     `json:"note,omitempty"`
}

func slotToResponse(s domain.ResourceSlot) slotResponse {
	return slotResponse{
		Date:   formatDate(s.Date),
		Status: string(s.Status),
		TripID: s.TripID,
		Note:   s.Note,
	}
}
