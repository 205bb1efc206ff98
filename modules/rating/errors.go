package rating

import "errors"

var (
	ErrNotFound         = errors.New("rating not found")
	ErrAlreadyRated     = errors.New("delivery already rated by this reviewer")
	ErrDeliveryNotFound = errors.New("delivery request not found")
	ErrSelfRating       = errors.New("users cannot rate themselves")
)
