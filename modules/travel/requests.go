package travel

import (
	"time"

	"github.com/piggyparcel/backend/pkg/validator"
)

type CreateRequest struct {
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	DepartureTime time.Time     `json:"departureTime"`
	TransportMode TransportMode `json:"transportMode"`
}

func (r CreateRequest) Validate() error {
	return validator.Apply(
		validator.Required("origin", r.Origin),
		validator.Required("destination", r.Destination),
		validator.Future("departureTime", r.DepartureTime),
		validator.InList("transportMode", r.TransportMode, TransportModes),
	)
}

type UpdateRequest struct {
	Origin        *string        `json:"origin,omitempty"`
	Destination   *string        `json:"destination,omitempty"`
	DepartureTime *time.Time     `json:"departureTime,omitempty"`
	TransportMode *TransportMode `json:"transportMode,omitempty"`
}

func (r UpdateRequest) Validate() error {
	var rules []validator.Rule
	if r.Origin != nil {
		rules = append(rules, validator.Required("origin", *r.Origin))
	}
	if r.Destination != nil {
		rules = append(rules, validator.Required("destination", *r.Destination))
	}
	if r.DepartureTime != nil {
		rules = append(rules, validator.Future("departureTime", *r.DepartureTime))
	}
	if r.TransportMode != nil {
		rules = append(rules, validator.InList("transportMode", *r.TransportMode, TransportModes))
	}
	return validator.Apply(rules...)
}

type ListQuery struct {
	Origin      string `query:"origin"`
	Destination string `query:"destination"`
	Mode        string `query:"transportMode"`
	TravelerID  string `query:"travelerId"`
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
}

func (q ListQuery) Validate() error {
	return validator.Apply(
		validator.Optional(q.Mode, validator.InList("transportMode", TransportMode(q.Mode), TransportModes)),
		validator.Between("page", q.Page, 1, 100000),
		validator.Between("limit", q.Limit, 1, 100),
	)
}

type MatchQuery struct {
	Origin      string `query:"origin"`
	Destination string `query:"destination"`
}

func (q MatchQuery) Validate() error {
	return validator.Apply(
		validator.Required("origin", q.Origin),
		validator.Required("destination", q.Destination),
	)
}
