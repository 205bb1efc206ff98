package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/piggyparcel/backend/pkg/async"
)

// Options carries optional per-send fields applied on top of the
// rendered template output.
type Options struct {
	Cc          []string
	Bcc         []string
	Attachments []Attachment
}

// Personalized pairs a recipient with their own template data for
// personalized bulk sends.
type Personalized struct {
	To   string
	Data any
}

// SendResult reports the outcome of a single recipient in a bulk send.
type SendResult struct {
	To  string
	Err error
}

// Service renders templates and dispatches messages through the
// configured sender.
type Service struct {
	registry *Registry
	sender   Sender
	log      *slog.Logger
}

// NewService wires a template registry and sender into a send pipeline.
func NewService(registry *Registry, sender Sender, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		registry: registry,
		sender:   sender,
		log:      log,
	}
}

// Send renders the named template with data and delivers the result to a
// single recipient.
func (s *Service) Send(ctx context.Context, template, to string, data any, opts *Options) error {
	msg, err := s.compose(template, to, data, opts)
	if err != nil {
		return err
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "email send failed",
			slog.String("template", template),
			slog.String("to", to),
			slog.Any("error", err),
		)
		return err
	}

	s.log.InfoContext(ctx, "email sent",
		slog.String("template", template),
		slog.String("to", to),
	)
	return nil
}

// SendBulk delivers the same rendered template to every recipient in
// parallel. All sends are attempted regardless of individual failures;
// the returned results hold the per-recipient outcomes and the error is
// the first failure encountered, or nil when all succeeded.
func (s *Service) SendBulk(ctx context.Context, template string, recipients []string, data any, opts *Options) ([]SendResult, error) {
	items := make([]Personalized, len(recipients))
	for i, to := range recipients {
		items[i] = Personalized{To: to, Data: data}
	}
	return s.SendPersonalizedBulk(ctx, template, items, opts)
}

// SendPersonalizedBulk delivers the named template to each recipient with
// their own data, fanning out in parallel. Semantics match SendBulk.
func (s *Service) SendPersonalizedBulk(ctx context.Context, template string, items []Personalized, opts *Options) ([]SendResult, error) {
	if len(items) == 0 {
		return nil, nil
	}

	futures := make([]*async.Future[struct{}], len(items))
	for i, item := range items {
		futures[i] = async.Go(ctx, item, func(ctx context.Context, p Personalized) (struct{}, error) {
			return struct{}{}, s.Send(ctx, template, p.To, p.Data, opts)
		})
	}

	outcomes := async.SettleAll(futures...)

	results := make([]SendResult, len(items))
	var first error
	var failed int
	for i, o := range outcomes {
		results[i] = SendResult{To: items[i].To, Err: o.Err}
		if o.Err != nil {
			failed++
			if first == nil {
				first = fmt.Errorf("send to %s: %w", items[i].To, o.Err)
			}
		}
	}

	if failed > 0 {
		s.log.WarnContext(ctx, "bulk send completed with failures",
			slog.String("template", template),
			slog.Int("total", len(items)),
			slog.Int("failed", failed),
		)
	}
	return results, first
}

func (s *Service) compose(template, to string, data any, opts *Options) (Message, error) {
	rendered, err := s.registry.Render(template, data)
	if err != nil {
		return Message{}, err
	}

	b := NewBuilder().
		SetSubject(rendered.Subject).
		SetHTML(rendered.HTML).
		AddRecipient(to)

	if opts != nil {
		for _, cc := range opts.Cc {
			b.AddCc(cc)
		}
		for _, bcc := range opts.Bcc {
			b.AddBcc(bcc)
		}
		for _, att := range opts.Attachments {
			b.AddAttachment(att.Path, att.Name)
		}
	}

	return b.Build()
}
