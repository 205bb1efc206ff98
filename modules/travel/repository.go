package travel

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piggyparcel/backend/pkg/pg"
)

// ListFilter narrows and paginates the travel plan listing.
type ListFilter struct {
	Origin      string
	Destination string
	Mode        string
	TravelerID  string
	Page        int
	Limit       int
}

// Repository is the storage surface for travel plans.
type Repository interface {
	Create(ctx context.Context, p *Plan) error
	GetByID(ctx context.Context, id int64) (*Plan, error)
	List(ctx context.Context, f ListFilter) ([]Plan, int, error)
	Update(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, id int64) error
	MatchLane(ctx context.Context, origin, destination string) ([]Plan, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a postgres-backed travel plan repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const planColumns = `id, traveler_id, origin, destination, departure_time, transport_mode,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, p *Plan) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO travel_plans (traveler_id, origin, destination, departure_time, transport_mode)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+planColumns,
		p.TravelerID, p.Origin, p.Destination, p.DepartureTime, p.TransportMode)

	if err := scanPlan(row, p); err != nil {
		return fmt.Errorf("create travel plan: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Plan, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+planColumns+` FROM travel_plans WHERE id = $1`, id)

	var p Plan
	if err := scanPlan(row, &p); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get travel plan: %w", err)
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]Plan, int, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Origin != "" {
		conds = append(conds, "origin ILIKE "+arg(f.Origin))
	}
	if f.Destination != "" {
		conds = append(conds, "destination ILIKE "+arg(f.Destination))
	}
	if f.Mode != "" {
		conds = append(conds, "transport_mode = "+arg(f.Mode))
	}
	if f.TravelerID != "" {
		conds = append(conds, "traveler_id = "+arg(f.TravelerID))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM travel_plans"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count travel plans: %w", err)
	}

	query := "SELECT " + planColumns + " FROM travel_plans" + where +
		" ORDER BY departure_time ASC LIMIT " + arg(f.Limit) + " OFFSET " + arg((f.Page-1)*f.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list travel plans: %w", err)
	}
	defer rows.Close()

	var out []Plan
	for rows.Next() {
		var p Plan
		if err := scanPlan(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("scan travel plan: %w", err)
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *repository) Update(ctx context.Context, p *Plan) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE travel_plans
		SET origin = $2, destination = $3, departure_time = $4, transport_mode = $5,
			updated_at = now()
		WHERE id = $1
		RETURNING `+planColumns,
		p.ID, p.Origin, p.Destination, p.DepartureTime, p.TransportMode)

	if err := scanPlan(row, p); err != nil {
		if pg.IsNotFoundError(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update travel plan: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM travel_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete travel plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MatchLane returns upcoming plans along a route, soonest departure first.
func (r *repository) MatchLane(ctx context.Context, origin, destination string) ([]Plan, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+planColumns+` FROM travel_plans
		WHERE origin ILIKE $1 AND destination ILIKE $2 AND departure_time > now()
		ORDER BY departure_time ASC`,
		origin, destination)
	if err != nil {
		return nil, fmt.Errorf("match travel plans: %w", err)
	}
	defer rows.Close()

	var out []Plan
	for rows.Next() {
		var p Plan
		if err := scanPlan(rows, &p); err != nil {
			return nil, fmt.Errorf("scan travel plan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner, p *Plan) error {
	return row.Scan(
		&p.ID, &p.TravelerID, &p.Origin, &p.Destination,
		&p.DepartureTime, &p.TransportMode, &p.CreatedAt, &p.UpdatedAt,
	)
}
