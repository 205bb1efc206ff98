package email

import (
	"context"
	"fmt"
)

// Sender delivers a fully assembled Message through a provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender constructs the provider selected by cfg.Provider.
func NewSender(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case "resend":
		return NewResendSender(cfg)
	case "postmark":
		return NewPostmarkSender(cfg)
	case "dev":
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}
