package rating

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piggyparcel/backend/pkg/pg"
)

// Repository is the storage surface for ratings.
type Repository interface {
	Create(ctx context.Context, rt *Rating) error
	ListByReviewed(ctx context.Context, reviewedID uuid.UUID, page, limit int) ([]Rating, int, error)
	StatsFor(ctx context.Context, userID uuid.UUID) (*Stats, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a postgres-backed rating repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) Create(ctx context.Context, rt *Rating) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO ratings (delivery_id, reviewer_id, reviewed_id, rating, comment)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, created_at`,
		rt.DeliveryID, rt.ReviewerID, rt.ReviewedID, rt.Rating, derefOrEmpty(rt.Comment))

	if err := row.Scan(&rt.ID, &rt.CreatedAt); err != nil {
		switch {
		case pg.IsDuplicateKeyError(err):
			return ErrAlreadyRated
		case pg.IsForeignKeyViolationError(err):
			return ErrDeliveryNotFound
		}
		return fmt.Errorf("create rating: %w", err)
	}
	return nil
}

func (r *repository) ListByReviewed(ctx context.Context, reviewedID uuid.UUID, page, limit int) ([]Rating, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM ratings WHERE reviewed_id = $1`, reviewedID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ratings: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, delivery_id, reviewer_id, reviewed_id, rating, comment, created_at
		FROM ratings
		WHERE reviewed_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		reviewedID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var out []Rating
	for rows.Next() {
		var rt Rating
		if err := rows.Scan(&rt.ID, &rt.DeliveryID, &rt.ReviewerID, &rt.ReviewedID,
			&rt.Rating, &rt.Comment, &rt.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan rating: %w", err)
		}
		out = append(out, rt)
	}
	return out, total, rows.Err()
}

func (r *repository) StatsFor(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	stats := &Stats{UserID: userID, Breakdown: make(map[int]int)}

	rows, err := r.pool.Query(ctx, `
		SELECT rating, count(*) FROM ratings
		WHERE reviewed_id = $1
		GROUP BY rating`, userID)
	if err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}
	defer rows.Close()

	var sum int
	for rows.Next() {
		var star, count int
		if err := rows.Scan(&star, &count); err != nil {
			return nil, fmt.Errorf("scan rating stats: %w", err)
		}
		stats.Breakdown[star] = count
		stats.Total += count
		sum += star * count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if stats.Total > 0 {
		stats.Average = float64(sum) / float64(stats.Total)
	}
	return stats, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
