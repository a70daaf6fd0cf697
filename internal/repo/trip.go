package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/tour-ops/internal/domain"
)

// exclusionViolation is the Postgres SQLSTATE raised when a row would violate
// an EXCLUDE constraint — here, two trips holding the same asset on
// overlapping days.
const exclusionViolation = "23P01"

// TripRepo defines the persistence operations for Trips.
//
// A trip write touches two tables: the trips row and one trip_assignments row
// per assigned asset. The assignment rows carry the trip's date range so the
// database-level exclusion constraint can reject a double-booking that two
// racing validators both missed. Create and Update run in a transaction and
// surface that rejection as domain.ErrConflict.
type TripRepo interface {
	// Create inserts a new trip with its resource assignments and returns
	// the persisted record. Returns domain.ErrConflict if any assignment
	// would double-book an asset.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns one page of trips ordered by start_date descending,
	// with the total trip count.
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// ListOverlapping returns every trip whose inclusive date range
	// intersects [start, end], in start_date order. This is the schedule
	// snapshot the conflict checker runs against.
	ListOverlapping(ctx context.Context, start, end time.Time) ([]domain.Trip, error)

	// Update overwrites the mutable fields and resource assignments of an
	// existing trip. Returns domain.ErrNotFound if the trip does not exist
	// and domain.ErrConflict on a double-booking.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip and its assignments by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// tripColumns selects the trip row joined with its assignment ids.
// array_remove strips the NULL produced by the left join for trips that have
// no assignments, leaving an empty array instead of {NULL}.
const tripColumns = `
	t.id, t.name, t.start_date, t.end_date, t.notes, t.created_at, t.updated_at,
	array_remove(array_agg(ta.asset_id ORDER BY ta.asset_id), NULL) AS asset_ids`

const tripGroup = ` GROUP BY t.id, t.name, t.start_date, t.end_date, t.notes, t.created_at, t.updated_at`

// Create inserts the trip row and its assignment rows in one transaction.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	const q = `
		INSERT INTO trips (name, start_date, end_date, notes)
		VALUES (@name, @start_date, @end_date, @notes)
		RETURNING id, name, start_date, end_date, notes, created_at, updated_at`

	args := pgx.NamedArgs{
		"name":       trip.Name,
		"start_date": trip.StartDate,
		"end_date":   trip.EndDate,
		"notes":      trip.Notes,
	}

	created, err := scanTripRow(tx.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	if err := insertAssignments(ctx, tx, created.ID, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	created.AssignedResources = append([]uuid.UUID(nil), trip.AssignedResources...)

	if err := tx.Commit(ctx); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: commit: %w", mapConflict(err))
	}
	return created, nil
}

// GetByID retrieves a trip with its assignments by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT` + tripColumns + `
		FROM trips t
		LEFT JOIN trip_assignments ta ON ta.trip_id = t.id
		WHERE t.id = @id` + tripGroup

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of trips ordered by start_date descending (most
// recent first), plus the total trip count.
func (r *pgTripRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const q = `
		SELECT` + tripColumns + `
		FROM trips t
		LEFT JOIN trip_assignments ta ON ta.trip_id = t.id` + tripGroup + `
		ORDER BY t.start_date DESC, t.id
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: count: %w", err)
	}

	return trips, total, nil
}

// ListOverlapping returns all trips intersecting the inclusive window
// [start, end], oldest start first.
func (r *pgTripRepo) ListOverlapping(ctx context.Context, start, end time.Time) ([]domain.Trip, error) {
	const q = `
		SELECT` + tripColumns + `
		FROM trips t
		LEFT JOIN trip_assignments ta ON ta.trip_id = t.id
		WHERE t.start_date <= @end AND t.end_date >= @start` + tripGroup + `
		ORDER BY t.start_date, t.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"start": start, "end": end})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListOverlapping: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListOverlapping: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListOverlapping: rows: %w", err)
	}

	return trips, nil
}

// Update overwrites the trip row and replaces its assignment rows in one
// transaction.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	const q = `
		UPDATE trips
		SET name       = @name,
		    start_date = @start_date,
		    end_date   = @end_date,
		    notes      = @notes,
		    updated_at = now()
		WHERE id = @id
		RETURNING id, name, start_date, end_date, notes, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":         trip.ID,
		"name":       trip.Name,
		"start_date": trip.StartDate,
		"end_date":   trip.EndDate,
		"notes":      trip.Notes,
	}

	updated, err := scanTripRow(tx.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}

	// Replace the assignment set wholesale; diffing buys nothing at this scale.
	if _, err := tx.Exec(ctx, `DELETE FROM trip_assignments WHERE trip_id = @id`, pgx.NamedArgs{"id": trip.ID}); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: clear assignments: %w", err)
	}
	if err := insertAssignments(ctx, tx, trip.ID, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	updated.AssignedResources = append([]uuid.UUID(nil), trip.AssignedResources...)

	if err := tx.Commit(ctx); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: commit: %w", mapConflict(err))
	}
	return updated, nil
}

// Delete removes a trip by primary key. Assignment rows go with it via
// ON DELETE CASCADE.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// insertAssignments writes one trip_assignments row per assigned resource,
// carrying the trip's date range for the exclusion constraint. An exclusion
// violation maps to domain.ErrConflict.
func insertAssignments(ctx context.Context, tx pgx.Tx, tripID uuid.UUID, trip domain.Trip) error {
	const q = `
		INSERT INTO trip_assignments (trip_id, asset_id, start_date, end_date)
		VALUES (@trip_id, @asset_id, @start_date, @end_date)`

	for _, assetID := range trip.AssignedResources {
		args := pgx.NamedArgs{
			"trip_id":    tripID,
			"asset_id":   assetID,
			"start_date": trip.StartDate,
			"end_date":   trip.EndDate,
		}
		if _, err := tx.Exec(ctx, q, args); err != nil {
			return fmt.Errorf("assign %s: %w", assetID, mapConflict(err))
		}
	}
	return nil
}

// mapConflict converts a Postgres exclusion violation into domain.ErrConflict
// and passes every other error through unchanged.
func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
		return domain.ErrConflict
	}
	return err
}

// scanTrip maps a database row (trip columns plus aggregated asset ids) into
// a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t      domain.Trip
		id     pgtype.UUID
		start  pgtype.Date
		end    pgtype.Date
		assets []pgtype.UUID
	)

	err := s.Scan(&id, &t.Name, &start, &end, &t.Notes, &t.CreatedAt, &t.UpdatedAt, &assets)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDate = start.Time
	t.EndDate = end.Time
	t.AssignedResources = make([]uuid.UUID, 0, len(assets))
	for _, a := range assets {
		t.AssignedResources = append(t.AssignedResources, uuid.UUID(a.Bytes))
	}

	return t, nil
}

// scanTripRow maps a bare trip row (no assignment aggregate) into a
// domain.Trip. Used by the RETURNING clauses of Create and Update.
func scanTripRow(s scanner) (domain.Trip, error) {
	var (
		t     domain.Trip
		id    pgtype.UUID
		start pgtype.Date
		end   pgtype.Date
	)

	err := s.Scan(&id, &t.Name, &start, &end, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDate = start.Time
	t.EndDate = end.Time
	return t, nil
}
