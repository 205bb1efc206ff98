package admin_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggyparcel/backend/modules/admin"
	"github.com/piggyparcel/backend/modules/user"
)

func TestService_ListUsers(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	for _, u := range []*user.User{
		{Name: "Alice", Email: "alice@example.com", Role: user.RoleUser},
		{Name: "Bob", Email: "bob@example.com", Role: user.RoleAdmin},
	} {
		require.NoError(t, repo.CreateUser(context.Background(), u, "hash"))
	}

	svc := admin.NewService(repo, nil)

	t.Run("filters by role", func(t *testing.T) {
		t.Parallel()

		users, total, err := svc.ListUsers(context.Background(), admin.ListUsersQuery{Role: "admin"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, users, 1)
		assert.Equal(t, "bob@example.com", users[0].Email)
	})

	t.Run("applies default pagination", func(t *testing.T) {
		t.Parallel()

		_, total, err := svc.ListUsers(context.Background(), admin.ListUsersQuery{})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		t.Parallel()

		_, _, err := svc.ListUsers(context.Background(), admin.ListUsersQuery{Role: "owner"})
		require.Error(t, err)
	})
}

func TestService_UpdateRole(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	u := &user.User{Name: "Alice", Email: "alice@example.com", Role: user.RoleUser}
	require.NoError(t, repo.CreateUser(context.Background(), u, "hash"))

	svc := admin.NewService(repo, nil)

	t.Run("promotes to admin", func(t *testing.T) {
		updated, err := svc.UpdateRole(context.Background(), u.ID, admin.UpdateRoleRequest{Role: user.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, updated.Role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.UpdateRole(context.Background(), u.ID, admin.UpdateRoleRequest{Role: "owner"})
		require.Error(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateRole(context.Background(), uuid.New(), admin.UpdateRoleRequest{Role: user.RoleAdmin})
		require.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestService_SetBan(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	u := &user.User{Name: "Alice", Email: "alice@example.com", Role: user.RoleUser}
	require.NoError(t, repo.CreateUser(context.Background(), u, "hash"))

	svc := admin.NewService(repo, nil)

	t.Run("ban requires a reason", func(t *testing.T) {
		_, err := svc.SetBan(context.Background(), u.ID, admin.BanRequest{Banned: true})
		require.Error(t, err)
	})

	t.Run("ban and unban", func(t *testing.T) {
		banned, err := svc.SetBan(context.Background(), u.ID, admin.BanRequest{Banned: true, Reason: "abuse"})
		require.NoError(t, err)
		assert.True(t, banned.Banned)
		require.NotNil(t, banned.BanReason)
		assert.Equal(t, "abuse", *banned.BanReason)

		unbanned, err := svc.SetBan(context.Background(), u.ID, admin.BanRequest{Banned: false})
		require.NoError(t, err)
		assert.False(t, unbanned.Banned)
		assert.Nil(t, unbanned.BanReason)
	})
}
