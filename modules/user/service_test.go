package user_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/piggyparcel/backend/modules/user"
	"github.com/piggyparcel/backend/pkg/email"
	"github.com/piggyparcel/backend/pkg/token"
)

type fakeRepo struct {
	mu       sync.Mutex
	byEmail  map[string]*user.User
	byID     map[uuid.UUID]*user.User
	hashes   map[uuid.UUID]string
	sessions []user.Session
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[uuid.UUID]*user.User),
		hashes:  make(map[uuid.UUID]string),
	}
}

func (f *fakeRepo) CreateUser(_ context.Context, u *user.User, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[u.Email]; ok {
		return user.ErrEmailAlreadyExists
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.byEmail[u.Email] = &cp
	f.byID[u.ID] = &cp
	f.hashes[u.ID] = passwordHash
	return nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, e string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[e]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GetPasswordHash(_ context.Context, id uuid.UUID) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.hashes[id]
	if !ok {
		return "", user.ErrUserNotFound
	}
	return h, nil
}

func (f *fakeRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.hashes[id]; !ok {
		return user.ErrUserNotFound
	}
	f.hashes[id] = hash
	return nil
}

func (f *fakeRepo) CreateSession(_ context.Context, s *user.Session, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	f.sessions = append(f.sessions, *s)
	return nil
}

type fakeMailer struct {
	mu    sync.Mutex
	sends []sentMail
	err   error
}

type sentMail struct {
	template string
	to       string
	data     any
}

func (m *fakeMailer) Send(_ context.Context, template, to string, data any, _ *email.Options) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, sentMail{template: template, to: to, data: data})
	return m.err
}

func (m *fakeMailer) sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sends...)
}

func testConfig() user.Config {
	return user.Config{
		TokenSecret:   "test-secret",
		SessionTTL:    time.Hour,
		ResetTokenTTL: 24 * time.Hour,
		BcryptCost:    bcrypt.MinCost,
		BaseURL:       "http://localhost:3000",
	}
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates user and sends one welcome email", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		mailer := &fakeMailer{}
		svc := user.NewService(testConfig(), repo, mailer, nil)

		u, err := svc.Register(context.Background(), user.RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, user.RoleUser, u.Role)
		assert.Equal(t, "alice@example.com", u.Email)

		sends := mailer.sent()
		require.Len(t, sends, 1)
		assert.Equal(t, email.TemplateWelcome, sends[0].template)
		assert.Equal(t, "alice@example.com", sends[0].to)
	})

	t.Run("email provider outage does not fail registration", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		mailer := &fakeMailer{err: email.ErrSendFailed}
		svc := user.NewService(testConfig(), repo, mailer, nil)

		_, err := svc.Register(context.Background(), user.RegisterRequest{
			Name:     "Bob",
			Email:    "bob@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Len(t, mailer.sent(), 1)
	})

	t.Run("rejects short password", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService(testConfig(), newFakeRepo(), &fakeMailer{}, nil)

		_, err := svc.Register(context.Background(), user.RegisterRequest{
			Name:     "Eve",
			Email:    "eve@example.com",
			Password: "short",
		})
		require.Error(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		svc := user.NewService(testConfig(), repo, &fakeMailer{}, nil)

		req := user.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
		_, err := svc.Register(context.Background(), req)
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), req)
		require.ErrorIs(t, err, user.ErrEmailAlreadyExists)
	})
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T, svc *user.Service) {
		t.Helper()
		_, err := svc.Register(context.Background(), user.RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
	}

	t.Run("valid credentials open a session", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		svc := user.NewService(testConfig(), repo, &fakeMailer{}, nil)
		register(t, svc)

		result, err := svc.Login(context.Background(), user.LoginRequest{
			Email:    "alice@example.com",
			Password: "secret123",
		}, "127.0.0.1", "test-agent")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Session.Token)
		assert.True(t, result.Session.ExpiresAt.After(time.Now()))
		assert.Len(t, repo.sessions, 1)
	})

	t.Run("unknown account", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService(testConfig(), newFakeRepo(), &fakeMailer{}, nil)

		_, err := svc.Login(context.Background(), user.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever1",
		}, "", "")
		require.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService(testConfig(), newFakeRepo(), &fakeMailer{}, nil)
		register(t, svc)

		_, err := svc.Login(context.Background(), user.LoginRequest{
			Email:    "alice@example.com",
			Password: "not-the-password",
		}, "", "")
		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestService_PasswordReset(t *testing.T) {
	t.Parallel()

	t.Run("full reset flow", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		mailer := &fakeMailer{}
		svc := user.NewService(testConfig(), repo, mailer, nil)

		_, err := svc.Register(context.Background(), user.RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		require.NoError(t, svc.RequestPasswordReset(context.Background(),
			user.ForgotPasswordRequest{Email: "alice@example.com"}))

		sends := mailer.sent()
		require.Len(t, sends, 2) // welcome + reset
		assert.Equal(t, email.TemplatePasswordReset, sends[1].template)

		data, ok := sends[1].data.(email.PasswordResetData)
		require.True(t, ok)
		assert.Contains(t, data.ResetLink, "http://localhost:3000/reset-password?token=")

		// The token in the emailed link resets the password.
		u, err := repo.GetUserByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		resetToken, err := token.Generate(u.ID.String(), "password_reset", time.Hour, "test-secret")
		require.NoError(t, err)

		require.NoError(t, svc.ResetPassword(context.Background(), user.ResetPasswordRequest{
			Token:    resetToken,
			Password: "newsecret1",
		}))

		_, err = svc.Login(context.Background(), user.LoginRequest{
			Email:    "alice@example.com",
			Password: "newsecret1",
		}, "", "")
		require.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService(testConfig(), newFakeRepo(), &fakeMailer{}, nil)

		err := svc.RequestPasswordReset(context.Background(),
			user.ForgotPasswordRequest{Email: "ghost@example.com"})
		require.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("email outage still succeeds and link stays private", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		mailer := &fakeMailer{err: errors.New("provider down")}
		svc := user.NewService(testConfig(), repo, mailer, nil)

		_, err := svc.Register(context.Background(), user.RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		err = svc.RequestPasswordReset(context.Background(),
			user.ForgotPasswordRequest{Email: "alice@example.com"})
		require.NoError(t, err)
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService(testConfig(), newFakeRepo(), &fakeMailer{}, nil)

		err := svc.ResetPassword(context.Background(), user.ResetPasswordRequest{
			Token:    "not.a-token",
			Password: "newsecret1",
		})
		require.ErrorIs(t, err, user.ErrInvalidResetToken)
	})
}
