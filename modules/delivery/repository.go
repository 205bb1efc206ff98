package delivery

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piggyparcel/backend/pkg/pg"
)

// ListFilter narrows and paginates the delivery request listing.
type ListFilter struct {
	Status      string
	Origin      string
	Destination string
	Urgent      *bool
	SenderID    string
	TravelerID  string
	Page        int
	Limit       int
}

// Repository is the storage surface for delivery requests.
type Repository interface {
	Create(ctx context.Context, d *Request) error
	GetByID(ctx context.Context, id int64) (*Request, error)
	List(ctx context.Context, f ListFilter) ([]Request, int, error)
	Update(ctx context.Context, d *Request) error
	ListPendingByLane(ctx context.Context, origin, destination string) ([]Request, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a postgres-backed delivery repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const deliveryColumns = `id, sender_id, traveler_id, origin, destination, parcel_details,
	urgency, proposed_fee, status, pickup_point, drop_off_point, tracking_id,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, d *Request) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO delivery_requests
			(sender_id, origin, destination, parcel_details, urgency, proposed_fee,
			 pickup_point, drop_off_point, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+deliveryColumns,
		d.SenderID, d.Origin, d.Destination, d.ParcelDetails, d.Urgency,
		d.ProposedFee, d.PickupPoint, d.DropOffPoint, StatusPending)

	if err := scanRequest(row, d); err != nil {
		return fmt.Errorf("create delivery request: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Request, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM delivery_requests WHERE id = $1`, id)

	var d Request
	if err := scanRequest(row, &d); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get delivery request: %w", err)
	}
	return &d, nil
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]Request, int, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != "" {
		conds = append(conds, "status = "+arg(f.Status))
	}
	if f.Origin != "" {
		conds = append(conds, "origin ILIKE "+arg(f.Origin))
	}
	if f.Destination != "" {
		conds = append(conds, "destination ILIKE "+arg(f.Destination))
	}
	if f.Urgent != nil {
		conds = append(conds, "urgency = "+arg(*f.Urgent))
	}
	if f.SenderID != "" {
		conds = append(conds, "sender_id = "+arg(f.SenderID))
	}
	if f.TravelerID != "" {
		conds = append(conds, "traveler_id = "+arg(f.TravelerID))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM delivery_requests"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count delivery requests: %w", err)
	}

	query := "SELECT " + deliveryColumns + " FROM delivery_requests" + where +
		" ORDER BY created_at DESC LIMIT " + arg(f.Limit) + " OFFSET " + arg((f.Page-1)*f.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list delivery requests: %w", err)
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var d Request
		if err := scanRequest(rows, &d); err != nil {
			return nil, 0, fmt.Errorf("scan delivery request: %w", err)
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}

func (r *repository) Update(ctx context.Context, d *Request) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE delivery_requests
		SET traveler_id = $2, parcel_details = $3, proposed_fee = $4,
			pickup_point = $5, drop_off_point = $6, status = $7,
			tracking_id = $8, updated_at = now()
		WHERE id = $1
		RETURNING `+deliveryColumns,
		d.ID, d.TravelerID, d.ParcelDetails, d.ProposedFee,
		d.PickupPoint, d.DropOffPoint, d.Status, d.TrackingID)

	if err := scanRequest(row, d); err != nil {
		if pg.IsNotFoundError(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update delivery request: %w", err)
	}
	return nil
}

func (r *repository) ListPendingByLane(ctx context.Context, origin, destination string) ([]Request, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+deliveryColumns+` FROM delivery_requests
		WHERE status = $1 AND origin ILIKE $2 AND destination ILIKE $3
		ORDER BY urgency DESC, created_at ASC`,
		StatusPending, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("list pending by lane: %w", err)
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var d Request
		if err := scanRequest(rows, &d); err != nil {
			return nil, fmt.Errorf("scan delivery request: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner, d *Request) error {
	return row.Scan(
		&d.ID, &d.SenderID, &d.TravelerID, &d.Origin, &d.Destination, &d.ParcelDetails,
		&d.Urgency, &d.ProposedFee, &d.Status, &d.PickupPoint, &d.DropOffPoint,
		&d.TrackingID, &d.CreatedAt, &d.UpdatedAt,
	)
}
