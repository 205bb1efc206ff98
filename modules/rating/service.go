package rating

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/piggyparcel/backend/pkg/validator"
)

// Service implements rating operations.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService wires the rating service.
func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log}
}

// Create records one review of another user for a delivery. A reviewer
// may rate each delivery once.
func (s *Service) Create(ctx context.Context, reviewerID uuid.UUID, req CreateRequest) (*Rating, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reviewedID, err := uuid.Parse(req.ReviewedID)
	if err != nil {
		return nil, validator.ValidationErrors{{Field: "reviewedId", Message: "must be a valid user id"}}
	}
	if reviewedID == reviewerID {
		return nil, ErrSelfRating
	}

	rt := &Rating{
		DeliveryID: req.DeliveryID,
		ReviewerID: reviewerID,
		ReviewedID: reviewedID,
		Rating:     req.Rating,
	}
	if req.Comment != "" {
		rt.Comment = &req.Comment
	}

	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// List returns the ratings received by a user, newest first.
func (s *Service) List(ctx context.Context, q ListQuery) ([]Rating, int, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}

	reviewedID, err := uuid.Parse(q.ReviewedID)
	if err != nil {
		return nil, 0, validator.ValidationErrors{{Field: "reviewedId", Message: "must be a valid user id"}}
	}

	return s.repo.ListByReviewed(ctx, reviewedID, q.Page, q.Limit)
}

// StatsFor aggregates a user's received ratings.
func (s *Service) StatsFor(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	return s.repo.StatsFor(ctx, userID)
}
