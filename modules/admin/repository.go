package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piggyparcel/backend/modules/user"
	"github.com/piggyparcel/backend/pkg/pg"
)

// ListFilter narrows and paginates the admin user listing.
type ListFilter struct {
	Role   string
	Banned *bool
	Search string
	Page   int
	Limit  int
}

// Repository is the storage surface for admin user management and the
// super-admin bootstrap.
type Repository interface {
	ListUsers(ctx context.Context, f ListFilter) ([]user.User, int, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	CreateUser(ctx context.Context, u *user.User, passwordHash string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) (*user.User, error)
	SetBan(ctx context.Context, id uuid.UUID, banned bool, reason string, expires *time.Time) (*user.User, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a postgres-backed admin repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const userColumns = `id, name, user_name, email, email_verified, image, role,
	banned, ban_reason, ban_expires, created_at, updated_at`

func (r *repository) ListUsers(ctx context.Context, f ListFilter) ([]user.User, int, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Role != "" {
		conds = append(conds, "role = "+arg(f.Role))
	}
	if f.Banned != nil {
		conds = append(conds, "banned = "+arg(*f.Banned))
	}
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf("(name ILIKE %s OR email ILIKE %s)", p, p))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := "SELECT " + userColumns + " FROM users" + where +
		" ORDER BY created_at DESC LIMIT " + arg(f.Limit) + " OFFSET " + arg((f.Page-1)*f.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.UserName, &u.Email, &u.EmailVerified, &u.Image,
			&u.Role, &u.Banned, &u.BanReason, &u.BanExpires, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.UserName, &u.Email, &u.EmailVerified, &u.Image,
		&u.Role, &u.Banned, &u.BanReason, &u.BanExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (r *repository) CreateUser(ctx context.Context, u *user.User, passwordHash string) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		u.Name, u.Email, passwordHash, u.Role)

	err := row.Scan(
		&u.ID, &u.Name, &u.UserName, &u.Email, &u.EmailVerified, &u.Image,
		&u.Role, &u.Banned, &u.BanReason, &u.BanExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return user.ErrEmailAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *repository) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET role = $2, updated_at = now() WHERE id = $1
		RETURNING `+userColumns, id, role)

	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.UserName, &u.Email, &u.EmailVerified, &u.Image,
		&u.Role, &u.Banned, &u.BanReason, &u.BanExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("update role: %w", err)
	}
	return &u, nil
}

func (r *repository) SetBan(ctx context.Context, id uuid.UUID, banned bool, reason string, expires *time.Time) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET banned = $2, ban_reason = NULLIF($3, ''), ban_expires = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, banned, reason, expires)

	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.UserName, &u.Email, &u.EmailVerified, &u.Image,
		&u.Role, &u.Banned, &u.BanReason, &u.BanExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("set ban: %w", err)
	}
	return &u, nil
}
