package user

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/piggyparcel/backend/pkg/email"
	"github.com/piggyparcel/backend/pkg/token"
)

const purposePasswordReset = "password_reset"

// Config holds auth settings for the consumer user service.
type Config struct {
	TokenSecret   string        `env:"TOKEN_SECRET,required"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"24h"`
	BcryptCost    int           `env:"BCRYPT_COST" envDefault:"10"`
	BaseURL       string        `env:"API_URL" envDefault:"http://localhost:3000"`
}

// Mailer is the slice of the email service the user module needs.
// Satisfied by *email.Service.
type Mailer interface {
	Send(ctx context.Context, template, to string, data any, opts *email.Options) error
}

// Service implements consumer account operations.
type Service struct {
	cfg    Config
	repo   Repository
	mailer Mailer
	log    *slog.Logger
}

// NewService wires the consumer user service.
func NewService(cfg Config, repo Repository, mailer Mailer, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{cfg: cfg, repo: repo, mailer: mailer, log: log}
}

// Register creates a consumer account and sends a best-effort welcome
// email. Email delivery failure never fails the registration.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Name:  req.Name,
		Email: normalizeEmail(req.Email),
		Role:  RoleUser,
	}
	if req.UserName != "" {
		u.UserName = &req.UserName
	}

	if err := s.repo.CreateUser(ctx, u, string(hash)); err != nil {
		return nil, err
	}

	if err := s.mailer.Send(ctx, email.TemplateWelcome, u.Email,
		email.WelcomeData{UserName: u.Name}, nil); err != nil {
		s.log.WarnContext(ctx, "welcome email failed",
			slog.String("email", u.Email),
			slog.Any("error", err),
		)
	}

	return u, nil
}

// Login authenticates by email and password and opens a session.
// An unknown account surfaces as ErrUserNotFound; a wrong password as
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req LoginRequest, ipAddress, userAgent string) (*LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}

	hash, err := s.repo.GetPasswordHash(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if u.Banned && (u.BanExpires == nil || u.BanExpires.After(time.Now())) {
		return nil, ErrUserBanned
	}

	sess := &Session{
		UserID:    u.ID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: time.Now().Add(s.cfg.SessionTTL),
	}

	raw, tokenHash, err := newSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	sess.Token = raw

	if err := s.repo.CreateSession(ctx, sess, tokenHash); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session opened",
		slog.String("user_id", u.ID.String()),
		slog.String("ip", ipAddress))

	return &LoginResult{User: *u, Session: *sess}, nil
}

// RequestPasswordReset issues a signed reset token and emails the reset
// link. The link is delivered by email only; it is never part of the
// return value, so a provider outage cannot leak it through the API.
func (s *Service) RequestPasswordReset(ctx context.Context, req ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.repo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return err
	}

	resetToken, err := token.Generate(u.ID.String(), purposePasswordReset, s.cfg.ResetTokenTTL, s.cfg.TokenSecret)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(s.cfg.BaseURL, "/"), resetToken)

	if err := s.mailer.Send(ctx, email.TemplatePasswordReset, u.Email,
		email.PasswordResetData{UserName: u.Name, ResetLink: link}, nil); err != nil {
		s.log.WarnContext(ctx, "password reset email failed",
			slog.String("email", u.Email),
			slog.Any("error", err),
		)
	}

	return nil
}

// ResetPassword verifies a reset token and replaces the password hash.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	claims, err := token.Parse(req.Token, purposePasswordReset, s.cfg.TokenSecret)
	if err != nil {
		return errors.Join(ErrInvalidResetToken, err)
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ErrInvalidResetToken
	}
	u, err := s.repo.GetUserByID(ctx, uid)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePasswordHash(ctx, u.ID, string(hash))
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// newSessionToken returns the raw token handed to the client and the
// sha256 hex digest persisted in storage.
func newSessionToken() (raw, hash string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	sum := sha256.Sum256([]byte(raw))
	return raw, hex.EncodeToString(sum[:]), nil
}
