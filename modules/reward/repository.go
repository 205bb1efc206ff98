package reward

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piggyparcel/backend/pkg/pg"
)

// Repository is the storage surface for rewards.
type Repository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*Reward, error)
	AddPoints(ctx context.Context, userID uuid.UUID, points int) (*Reward, error)
	SetBadges(ctx context.Context, userID uuid.UUID, badges []Badge) error
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a postgres-backed reward repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) (*Reward, error) {
	rw := &Reward{UserID: userID}
	err := r.pool.QueryRow(ctx, `
		SELECT green_points, badges, updated_at
		FROM rewards
		WHERE user_id = $1`, userID).
		Scan(&rw.GreenPoints, &rw.Badges, &rw.UpdatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reward: %w", err)
	}
	return rw, nil
}

// AddPoints increments a user's balance, creating the reward row on
// first award, and returns the updated reward.
func (r *repository) AddPoints(ctx context.Context, userID uuid.UUID, points int) (*Reward, error) {
	rw := &Reward{UserID: userID}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO rewards (user_id, green_points)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET green_points = rewards.green_points + EXCLUDED.green_points,
		    updated_at   = now()
		RETURNING green_points, badges, updated_at`, userID, points).
		Scan(&rw.GreenPoints, &rw.Badges, &rw.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("add points: %w", err)
	}
	return rw, nil
}

func (r *repository) SetBadges(ctx context.Context, userID uuid.UUID, badges []Badge) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE rewards
		SET badges = $2, updated_at = now()
		WHERE user_id = $1`, userID, badges)
	if err != nil {
		return fmt.Errorf("set badges: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, COALESCE(NULLIF(u.user_name, ''), u.name), r.green_points, r.badges
		FROM rewards r
		JOIN users u ON u.id = r.user_id
		ORDER BY r.green_points DESC, u.name ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.GreenPoints, &e.Badges); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard rows: %w", err)
	}
	return entries, nil
}
