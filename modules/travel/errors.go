package travel

import "errors"

var (
	ErrNotFound = errors.New("travel plan not found")
	ErrNotOwner = errors.New("travel plan belongs to another traveler")
)
