package delivery

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a delivery request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusPickedUp  Status = "picked_up"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Statuses is the closed set of delivery statuses.
var Statuses = []Status{
	StatusPending, StatusAccepted, StatusPickedUp,
	StatusInTransit, StatusDelivered, StatusCancelled,
}

// ParcelDetails describes the parcel being shipped. Stored as JSONB.
type ParcelDetails struct {
	Size     string  `json:"size"`
	Weight   float64 `json:"weight"`
	Contents string  `json:"contents"`
	Fragile  bool    `json:"fragile,omitempty"`
	Value    float64 `json:"value,omitempty"`
}

// Request is a delivery request opened by a sender and optionally
// claimed by a traveler.
type Request struct {
	ID            int64         `json:"id"`
	SenderID      uuid.UUID     `json:"senderId"`
	TravelerID    *uuid.UUID    `json:"travelerId"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	ParcelDetails ParcelDetails `json:"parcelDetails"`
	Urgency       bool          `json:"urgency"`
	ProposedFee   *string       `json:"proposedFee"`
	Status        Status        `json:"status"`
	PickupPoint   *string       `json:"pickupPoint"`
	DropOffPoint  *string       `json:"dropOffPoint"`
	TrackingID    *string       `json:"trackingId"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
