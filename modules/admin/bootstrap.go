package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/piggyparcel/backend/modules/user"
	"github.com/piggyparcel/backend/pkg/email"
	"github.com/piggyparcel/backend/pkg/statemachine"
)

// BootstrapConfig identifies the super-admin account guaranteed to exist
// after startup.
type BootstrapConfig struct {
	Email    string `env:"SUPER_ADMIN_EMAIL,required"`
	Password string `env:"SUPER_ADMIN_PASSWORD,required"`
	Name     string `env:"SUPER_ADMIN_NAME,required"`
}

// BootstrapOutcome is the terminal result of a bootstrap run.
type BootstrapOutcome string

const (
	OutcomeCreated  BootstrapOutcome = "created"
	OutcomePromoted BootstrapOutcome = "promoted"
	OutcomeNoop     BootstrapOutcome = "noop"
)

// Bootstrap states and events.
const (
	stateNoUser   statemachine.State = "no_user"
	stateNotAdmin statemachine.State = "user_exists_not_admin"
	stateAdmin    statemachine.State = "user_exists_admin"
	stateCreated  statemachine.State = "created"
	statePromoted statemachine.State = "promoted"
	stateNoop     statemachine.State = "noop"

	eventBootstrap statemachine.Event = "bootstrap"
)

// Bootstrap ensures the configured super-admin account exists with the
// superadmin role. It is idempotent: an account is created once, a
// lesser existing account is promoted in place, and a super-admin is
// left untouched. Every branch ends with a best-effort welcome email
// whose failure is only logged.
func Bootstrap(ctx context.Context, cfg BootstrapConfig, repo Repository, mailer user.Mailer, log *slog.Logger) (BootstrapOutcome, error) {
	if log == nil {
		log = slog.Default()
	}

	existing, err := repo.GetUserByEmail(ctx, cfg.Email)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return "", fmt.Errorf("bootstrap lookup: %w", err)
	}

	m := statemachine.New(stateNoUser)
	for _, t := range []statemachine.Transition{
		{
			From: stateNoUser, To: stateCreated, Event: eventBootstrap,
			Actions: []statemachine.Action{func(ctx context.Context, _, _ statemachine.State, _ statemachine.Event, _ any) error {
				hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
				if err != nil {
					return fmt.Errorf("hash super-admin password: %w", err)
				}
				u := &user.User{Name: cfg.Name, Email: cfg.Email, Role: user.RoleSuperAdmin}
				return repo.CreateUser(ctx, u, string(hash))
			}},
		},
		{
			From: stateNotAdmin, To: statePromoted, Event: eventBootstrap,
			Actions: []statemachine.Action{func(ctx context.Context, _, _ statemachine.State, _ statemachine.Event, _ any) error {
				_, err := repo.UpdateRole(ctx, existing.ID, user.RoleSuperAdmin)
				return err
			}},
		},
		{From: stateAdmin, To: stateNoop, Event: eventBootstrap},
	} {
		if err := m.AddTransition(t); err != nil {
			return "", err
		}
	}

	switch {
	case existing == nil:
		m.SetCurrent(stateNoUser)
	case existing.Role == user.RoleSuperAdmin:
		m.SetCurrent(stateAdmin)
	default:
		m.SetCurrent(stateNotAdmin)
	}

	if err := m.Fire(ctx, eventBootstrap, nil); err != nil {
		return "", fmt.Errorf("bootstrap super-admin: %w", err)
	}

	var outcome BootstrapOutcome
	switch m.Current() {
	case stateCreated:
		outcome = OutcomeCreated
	case statePromoted:
		outcome = OutcomePromoted
	default:
		outcome = OutcomeNoop
	}

	log.InfoContext(ctx, "super-admin bootstrap finished",
		slog.String("email", cfg.Email),
		slog.String("outcome", string(outcome)),
	)

	if err := mailer.Send(ctx, email.TemplateWelcome, cfg.Email,
		email.WelcomeData{UserName: cfg.Name}, nil); err != nil {
		log.WarnContext(ctx, "super-admin welcome email failed",
			slog.String("email", cfg.Email),
			slog.Any("error", err),
		)
	}

	return outcome, nil
}
