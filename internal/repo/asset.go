package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/tour-ops/internal/domain"
)

// AssetRepo defines the persistence operations for Assets.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type AssetRepo interface {
	// Create inserts a new asset and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, asset domain.Asset) (domain.Asset, error)

	// GetByID retrieves a single asset by its UUID primary key.
	// Returns domain.ErrNotFound if no asset with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Asset, error)

	// List returns assets ordered by name, optionally restricted to one
	// asset type (empty assetType means all types), with the total row
	// count for the same filter.
	List(ctx context.Context, assetType domain.AssetType, p domain.PaginationParams) ([]domain.Asset, int64, error)

	// ListAll returns every asset, unpaged, ordered by name. The scheduler
	// works on full fleet snapshots, not pages.
	ListAll(ctx context.Context) ([]domain.Asset, error)

	// Update overwrites the mutable fields of an existing asset and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, asset domain.Asset) (domain.Asset, error)

	// Delete removes an asset by ID. Returns domain.ErrNotFound if it does
	// not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgAssetRepo is the Postgres implementation of AssetRepo.
type pgAssetRepo struct {
	db db
}

// NewAssetRepo constructs an AssetRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewAssetRepo(db db) AssetRepo {
	return &pgAssetRepo{db: db}
}

const assetColumns = `id, name, asset_type, blocked_dates, next_maintenance, notes, created_at, updated_at`

// Create inserts a new asset row and returns the full persisted record.
func (r *pgAssetRepo) Create(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	const q = `
		INSERT INTO assets (name, asset_type, blocked_dates, next_maintenance, notes)
		VALUES (@name, @asset_type, @blocked_dates, @next_maintenance, @notes)
		RETURNING ` + assetColumns

	row := r.db.QueryRow(ctx, q, assetArgs(asset))
	result, err := scanAsset(row)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("repo.AssetRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an asset by primary key.
func (r *pgAssetRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Asset, error) {
	const q = `SELECT ` + assetColumns + ` FROM assets WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanAsset(row)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("repo.AssetRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of assets ordered by name, plus the total count for
// the same type filter. An empty assetType matches every type.
func (r *pgAssetRepo) List(ctx context.Context, assetType domain.AssetType, p domain.PaginationParams) ([]domain.Asset, int64, error) {
	const q = `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE (@asset_type = '' OR asset_type = @asset_type)
		ORDER BY name, id
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{
		"asset_type": string(assetType),
		"limit":      p.Limit,
		"offset":     p.Offset(),
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.AssetRepo.List: %w", err)
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.AssetRepo.List: scan: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.AssetRepo.List: rows: %w", err)
	}

	const countQ = `SELECT count(*) FROM assets WHERE (@asset_type = '' OR asset_type = @asset_type)`
	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"asset_type": string(assetType)}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.AssetRepo.List: count: %w", err)
	}

	return assets, total, nil
}

// ListAll returns every asset ordered by name.
func (r *pgAssetRepo) ListAll(ctx context.Context) ([]domain.Asset, error) {
	const q = `SELECT ` + assetColumns + ` FROM assets ORDER BY name, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.AssetRepo.ListAll: %w", err)
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.AssetRepo.ListAll: scan: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.AssetRepo.ListAll: rows: %w", err)
	}

	return assets, nil
}

// Update overwrites the mutable fields of an asset and returns the updated record.
func (r *pgAssetRepo) Update(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	const q = `
		UPDATE assets
		SET name             = @name,
		    asset_type       = @asset_type,
		    blocked_dates    = @blocked_dates,
		    next_maintenance = @next_maintenance,
		    notes            = @notes,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + assetColumns

	args := assetArgs(asset)
	args["id"] = asset.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanAsset(row)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("repo.AssetRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an asset by primary key.
func (r *pgAssetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM assets WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.AssetRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.AssetRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// assetArgs maps the writable asset fields to NamedArgs shared by Create and
// Update. A nil maintenance schedule becomes NULL blocked_dates and
// next_maintenance.
func assetArgs(asset domain.Asset) pgx.NamedArgs {
	var (
		blocked []time.Time
		next    *time.Time
	)
	if asset.Maintenance != nil {
		blocked = asset.Maintenance.BlockedDates
		next = asset.Maintenance.NextMaintenance
	}
	return pgx.NamedArgs{
		"name":             asset.Name,
		"asset_type":       string(asset.Type),
		"blocked_dates":    blocked, // nil or empty becomes NULL / empty array
		"next_maintenance": next,
		"notes":            asset.Notes,
	}
}

// scanAsset maps a single database row into a domain.Asset.
// It handles the UUID, date-array, and nullable next_maintenance conversions.
// Maintenance is left nil when the row carries no maintenance data at all, so
// the scheduler's "no schedule means never blocked" rule keeps working.
func scanAsset(s scanner) (domain.Asset, error) {
	var (
		a       domain.Asset
		id      pgtype.UUID
		atype   string
		blocked []pgtype.Date
		nextMnt pgtype.Date
	)

	err := s.Scan(&id, &a.Name, &atype, &blocked, &nextMnt, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Asset{}, domain.ErrNotFound
		}
		return domain.Asset{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.Type = domain.AssetType(atype)

	if len(blocked) > 0 || nextMnt.Valid {
		m := &domain.MaintenanceSchedule{}
		for _, d := range blocked {
			if d.Valid {
				m.BlockedDates = append(m.BlockedDates, d.Time)
			}
		}
		if nextMnt.Valid {
			nm := nextMnt.Time
			m.NextMaintenance = &nm
		}
		a.Maintenance = m
	}

	return a, nil
}
