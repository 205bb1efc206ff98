package travel

import (
	"time"

	"github.com/google/uuid"
)

// TransportMode is how the traveler moves along the route.
type TransportMode string

const (
	ModeBus        TransportMode = "bus"
	ModeCar        TransportMode = "car"
	ModeTrain      TransportMode = "train"
	ModePlane      TransportMode = "plane"
	ModeMotorcycle TransportMode = "motorcycle"
	ModeBicycle    TransportMode = "bicycle"
	ModeWalking    TransportMode = "walking"
)

// TransportModes is the closed set of transport modes.
var TransportModes = []TransportMode{
	ModeBus, ModeCar, ModeTrain, ModePlane, ModeMotorcycle, ModeBicycle, ModeWalking,
}

// Plan is a traveler's announced trip, used to match pending deliveries.
type Plan struct {
	ID            int64         `json:"id"`
	TravelerID    uuid.UUID     `json:"travelerId"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	DepartureTime time.Time     `json:"departureTime"`
	TransportMode TransportMode `json:"transportMode"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
