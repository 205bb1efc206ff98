package rating

import "github.com/piggyparcel/backend/pkg/validator"

type CreateRequest struct {
	ReviewedID string `json:"reviewedId"`
	DeliveryID int64  `json:"deliveryId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
}

func (r CreateRequest) Validate() error {
	return validator.Apply(
		validator.Required("reviewedId", r.ReviewedID),
		validator.Positive("deliveryId", r.DeliveryID),
		validator.Between("rating", r.Rating, 1, 5),
		validator.MaxLen("comment", r.Comment, 500),
	)
}

type ListQuery struct {
	ReviewedID string `query:"reviewedId"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}

func (q ListQuery) Validate() error {
	return validator.Apply(
		validator.Required("reviewedId", q.ReviewedID),
		validator.Between("page", q.Page, 1, 100000),
		validator.Between("limit", q.Limit, 1, 100),
	)
}
