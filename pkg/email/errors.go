package email

import "errors"

var (
	// ErrTemplateNotFound is returned when a template name is not registered.
	ErrTemplateNotFound = errors.New("email template not found")

	// ErrInvalidTemplateData is returned when a renderer receives data of the wrong type.
	ErrInvalidTemplateData = errors.New("invalid template data")

	// ErrInvalidMessage is returned by Builder.Build when required fields are missing.
	ErrInvalidMessage = errors.New("invalid email message")

	// ErrSendFailed wraps provider delivery failures.
	ErrSendFailed = errors.New("failed to send email")

	// ErrInvalidConfig is returned when a provider is constructed with incomplete configuration.
	ErrInvalidConfig = errors.New("invalid email configuration")
)
