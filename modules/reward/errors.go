package reward

import "errors"

var (
	ErrNotFound     = errors.New("reward: not found")
	ErrUnknownBadge = errors.New("reward: unknown badge type")
)
