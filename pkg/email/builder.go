package email

import (
	"fmt"
	"slices"
)

// Builder assembles a Message field by field. Every mutator returns the
// builder for chaining. Builders are single-use and not goroutine-safe.
type Builder struct {
	msg Message
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetSubject sets the subject line.
func (b *Builder) SetSubject(subject string) *Builder {
	b.msg.Subject = subject
	return b
}

// SetHTML sets the HTML body.
func (b *Builder) SetHTML(html string) *Builder {
	b.msg.HTML = html
	return b
}

// AddRecipient appends an address to To.
func (b *Builder) AddRecipient(to string) *Builder {
	b.msg.To = append(b.msg.To, to)
	return b
}

// AddCc appends an address to Cc.
func (b *Builder) AddCc(cc string) *Builder {
	b.msg.Cc = append(b.msg.Cc, cc)
	return b
}

// AddBcc appends an address to Bcc.
func (b *Builder) AddBcc(bcc string) *Builder {
	b.msg.Bcc = append(b.msg.Bcc, bcc)
	return b
}

// AddAttachment appends a file attachment; name is optional.
func (b *Builder) AddAttachment(path, name string) *Builder {
	b.msg.Attachments = append(b.msg.Attachments, Attachment{Path: path, Name: name})
	return b
}

// Build validates the accumulated message and returns a defensive copy that
// later builder mutation cannot touch. Subject, HTML body and at least one
// recipient are required.
func (b *Builder) Build() (Message, error) {
	if b.msg.Subject == "" {
		return Message{}, fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if b.msg.HTML == "" {
		return Message{}, fmt.Errorf("%w: html content is required", ErrInvalidMessage)
	}
	if len(b.msg.To) == 0 {
		return Message{}, fmt.Errorf("%w: at least one recipient is required", ErrInvalidMessage)
	}

	return Message{
		Subject:     b.msg.Subject,
		HTML:        b.msg.HTML,
		To:          slices.Clone(b.msg.To),
		Cc:          slices.Clone(b.msg.Cc),
		Bcc:         slices.Clone(b.msg.Bcc),
		Attachments: slices.Clone(b.msg.Attachments),
	}, nil
}
