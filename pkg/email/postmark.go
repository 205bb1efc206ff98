package email

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrz1836/postmark"
)

// PostmarkSender delivers messages through the Postmark transactional API.
type PostmarkSender struct {
	client *postmark.Client
	cfg    Config
}

// NewPostmarkSender creates a Postmark-backed sender.
func NewPostmarkSender(cfg Config) (*PostmarkSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrInvalidConfig)
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("%w: EMAIL_FROM is required", ErrInvalidConfig)
	}

	return &PostmarkSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, ""),
		cfg:    cfg,
	}, nil
}

// Send implements Sender. Postmark takes recipient lists as comma-separated
// strings and attachments inline as base64, so file attachments are read
// from disk here.
func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	pmail := postmark.Email{
		From:       s.cfg.FromEmail,
		To:         strings.Join(msg.To, ","),
		Cc:         strings.Join(msg.Cc, ","),
		Bcc:        strings.Join(msg.Bcc, ","),
		Subject:    msg.Subject,
		HTMLBody:   msg.HTML,
		TrackOpens: true,
	}

	for _, a := range msg.Attachments {
		content, err := os.ReadFile(a.Path)
		if err != nil {
			return errors.Join(ErrSendFailed, fmt.Errorf("read attachment %s: %w", a.Path, err))
		}

		name := a.Name
		if name == "" {
			name = filepath.Base(a.Path)
		}
		contentType := mime.TypeByExtension(filepath.Ext(a.Path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		pmail.Attachments = append(pmail.Attachments, postmark.Attachment{
			Name:        name,
			Content:     base64.StdEncoding.EncodeToString(content),
			ContentType: contentType,
		})
	}

	resp, err := s.client.SendEmail(ctx, pmail)
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
