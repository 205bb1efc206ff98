package delivery

import (
	"github.com/piggyparcel/backend/pkg/validator"
)

type CreateRequest struct {
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	ParcelDetails ParcelDetails `json:"parcelDetails"`
	Urgency       bool          `json:"urgency,omitempty"`
	ProposedFee   string        `json:"proposedFee,omitempty"`
	PickupPoint   string        `json:"pickupPoint,omitempty"`
	DropOffPoint  string        `json:"dropOffPoint,omitempty"`
}

func (r CreateRequest) Validate() error {
	return validator.Apply(
		validator.Required("origin", r.Origin),
		validator.Required("destination", r.Destination),
		validator.Required("parcelDetails.size", r.ParcelDetails.Size),
		validator.Required("parcelDetails.contents", r.ParcelDetails.Contents),
		validator.Positive("parcelDetails.weight", r.ParcelDetails.Weight),
	)
}

type UpdateRequest struct {
	ProposedFee  *string `json:"proposedFee,omitempty"`
	PickupPoint  *string `json:"pickupPoint,omitempty"`
	DropOffPoint *string `json:"dropOffPoint,omitempty"`
}

type AcceptRequest struct {
	TravelerID string `json:"travelerId"`
}

func (r AcceptRequest) Validate() error {
	return validator.Apply(
		validator.Required("travelerId", r.TravelerID),
	)
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validator.Apply(
		validator.InList("status", r.Status, Statuses),
	)
}

type ListQuery struct {
	Status      string `query:"status"`
	Origin      string `query:"origin"`
	Destination string `query:"destination"`
	Urgent      *bool  `query:"urgent"`
	SenderID    string `query:"senderId"`
	TravelerID  string `query:"travelerId"`
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
}

func (q ListQuery) Validate() error {
	return validator.Apply(
		validator.Optional(q.Status, validator.InList("status", Status(q.Status), Statuses)),
		validator.Between("page", q.Page, 1, 100000),
		validator.Between("limit", q.Limit, 1, 100),
	)
}
