package delivery

import "errors"

var (
	ErrNotFound          = errors.New("delivery request not found")
	ErrInvalidStatus     = errors.New("invalid delivery status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrAlreadyAccepted   = errors.New("delivery request already accepted")
	ErrNotCancellable    = errors.New("only pending requests can be cancelled")
	ErrNoTrackingID      = errors.New("delivery request has no tracking id yet")
)
