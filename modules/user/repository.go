package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piggyparcel/backend/pkg/pg"
)

// Repository is the storage surface the user service depends on.
type Repository interface {
	CreateUser(ctx context.Context, u *User, passwordHash string) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	CreateSession(ctx context.Context, s *Session, tokenHash string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a postgres-backed user repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const userColumns = `id, name, user_name, email, email_verified, image, role,
	banned, ban_reason, ban_expires, created_at, updated_at`

func (r *repository) CreateUser(ctx context.Context, u *User, passwordHash string) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, user_name, email, password_hash, role)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)
		RETURNING `+userColumns,
		u.Name, derefOrEmpty(u.UserName), u.Email, passwordHash, u.Role)

	if err := scanUser(row, u); err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *repository) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	var u User
	if err := scanUser(row, &u); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	var u User
	if err := scanUser(row, &u); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (r *repository) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	var hash string
	err := r.pool.QueryRow(ctx, `SELECT password_hash FROM users WHERE id = $1`, id).Scan(&hash)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get password hash: %w", err)
	}
	return hash, nil
}

func (r *repository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) CreateSession(ctx context.Context, s *Session, tokenHash string) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sessions (user_id, token_hash, ip_address, user_agent, expires_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)
		RETURNING id, created_at`,
		s.UserID, tokenHash, s.IPAddress, s.UserAgent, s.ExpiresAt)

	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// rowScanner lets scanUser accept both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, u *User) error {
	return row.Scan(
		&u.ID, &u.Name, &u.UserName, &u.Email, &u.EmailVerified, &u.Image,
		&u.Role, &u.Banned, &u.BanReason, &u.BanExpires, &u.CreatedAt, &u.UpdatedAt,
	)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
