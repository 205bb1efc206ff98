package travel

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Service implements travel plan operations.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService wires the travel plan service.
func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log}
}

// Create announces a new trip for the traveler.
func (s *Service) Create(ctx context.Context, travelerID uuid.UUID, req CreateRequest) (*Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &Plan{
		TravelerID:    travelerID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		TransportMode: req.TransportMode,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns one travel plan by id.
func (s *Service) Get(ctx context.Context, id int64) (*Plan, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a filtered, paginated slice of plans and the total count.
func (s *Service) List(ctx context.Context, q ListQuery) ([]Plan, int, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}

	return s.repo.List(ctx, ListFilter{
		Origin:      q.Origin,
		Destination: q.Destination,
		Mode:        q.Mode,
		TravelerID:  q.TravelerID,
		Page:        q.Page,
		Limit:       q.Limit,
	})
}

// Update patches a plan. Only the owning traveler may change it.
func (s *Service) Update(ctx context.Context, id int64, travelerID uuid.UUID, req UpdateRequest) (*Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.TravelerID != travelerID {
		return nil, ErrNotOwner
	}

	if req.Origin != nil {
		p.Origin = *req.Origin
	}
	if req.Destination != nil {
		p.Destination = *req.Destination
	}
	if req.DepartureTime != nil {
		p.DepartureTime = *req.DepartureTime
	}
	if req.TransportMode != nil {
		p.TransportMode = *req.TransportMode
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a plan. Only the owning traveler may delete it.
func (s *Service) Delete(ctx context.Context, id int64, travelerID uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.TravelerID != travelerID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}

// Match finds upcoming plans along a delivery lane, soonest first.
func (s *Service) Match(ctx context.Context, q MatchQuery) ([]Plan, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.repo.MatchLane(ctx, q.Origin, q.Destination)
}
