package rating

import (
	"time"

	"github.com/google/uuid"
)

// Rating is one review left after a delivery.
type Rating struct {
	ID         int64     `json:"id"`
	DeliveryID int64     `json:"deliveryId"`
	ReviewerID uuid.UUID `json:"reviewerId"`
	ReviewedID uuid.UUID `json:"reviewedId"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Stats aggregates the ratings received by one user.
type Stats struct {
	UserID    uuid.UUID   `json:"userId"`
	Average   float64     `json:"average"`
	Total     int         `json:"total"`
	Breakdown map[int]int `json:"breakdown"` // star -> count
}
