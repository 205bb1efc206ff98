package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/piggyparcel/backend/modules/user"
)

// Service implements admin user management.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService wires the admin service.
func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log}
}

// ListUsers returns a filtered, paginated slice of accounts plus the
// total match count.
func (s *Service) ListUsers(ctx context.Context, q ListUsersQuery) ([]user.User, int, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}

	return s.repo.ListUsers(ctx, ListFilter{
		Role:   q.Role,
		Banned: q.Banned,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
}

// UpdateRole changes an account's role.
func (s *Service) UpdateRole(ctx context.Context, id uuid.UUID, req UpdateRoleRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.UpdateRole(ctx, id, req.Role)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user role changed",
		slog.String("user_id", id.String()),
		slog.String("role", string(req.Role)),
	)
	return u, nil
}

// SetBan bans or unbans an account.
func (s *Service) SetBan(ctx context.Context, id uuid.UUID, req BanRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reason := req.Reason
	var expires *time.Time
	if req.Banned {
		expires = req.Expires
	} else {
		reason = ""
	}

	u, err := s.repo.SetBan(ctx, id, req.Banned, reason, expires)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user ban updated",
		slog.String("user_id", id.String()),
		slog.Bool("banned", req.Banned),
	)
	return u, nil
}
