package admin

import (
	"time"

	"github.com/piggyparcel/backend/modules/user"
	"github.com/piggyparcel/backend/pkg/validator"
)

// ListUsersQuery filters the admin user listing.
type ListUsersQuery struct {
	Role   string `query:"role"`
	Banned *bool  `query:"banned"`
	Search string `query:"search"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

func (q ListUsersQuery) Validate() error {
	return validator.Apply(
		validator.Optional(q.Role, validator.InList("role",
			user.Role(q.Role), []user.Role{user.RoleUser, user.RoleAdmin, user.RoleSuperAdmin})),
		validator.Between("page", q.Page, 1, 100000),
		validator.Between("limit", q.Limit, 1, 100),
	)
}

type UpdateRoleRequest struct {
	Role user.Role `json:"role"`
}

func (r UpdateRoleRequest) Validate() error {
	return validator.Apply(
		validator.InList("role", r.Role,
			[]user.Role{user.RoleUser, user.RoleAdmin, user.RoleSuperAdmin}),
	)
}

type BanRequest struct {
	Banned  bool       `json:"banned"`
	Reason  string     `json:"reason,omitempty"`
	Expires *time.Time `json:"expires,omitempty"`
}

func (r BanRequest) Validate() error {
	if !r.Banned {
		return nil
	}
	return validator.Apply(
		validator.Required("reason", r.Reason),
	)
}
