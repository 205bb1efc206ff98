package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// ResendSender delivers messages through the Resend transactional API.
type ResendSender struct {
	client *resend.Client
	cfg    Config
}

// NewResendSender creates a Resend-backed sender. The API key and a
// from-address are required so misconfiguration fails at startup instead of
// on the first send.
func NewResendSender(cfg Config) (*ResendSender, error) {
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("%w: RESEND_API_KEY is required", ErrInvalidConfig)
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("%w: EMAIL_FROM is required", ErrInvalidConfig)
	}

	return &ResendSender{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}, nil
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      msg.To,
		Cc:      msg.Cc,
		Bcc:     msg.Bcc,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	for _, a := range msg.Attachments {
		attachment := &resend.Attachment{Path: a.Path}
		if a.Name != "" {
			attachment.Filename = a.Name
		}
		req.Attachments = append(req.Attachments, attachment)
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
