package delivery

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/piggyparcel/backend/modules/user"
	"github.com/piggyparcel/backend/pkg/email"
)

// UserDirectory resolves user records for notifications.
// Satisfied by the consumer user repository.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// RewardHook is called when a delivery reaches the delivered state.
// Satisfied by the reward service.
type RewardHook interface {
	AwardDeliveryPoints(ctx context.Context, travelerID uuid.UUID, deliveryID int64) error
}

// Config holds delivery settings.
type Config struct {
	TrackingBaseURL string `env:"TRACKING_BASE_URL" envDefault:"http://localhost:3000/track"`
}

// Service implements delivery request operations.
type Service struct {
	cfg     Config
	repo    Repository
	users   UserDirectory
	mailer  user.Mailer
	rewards RewardHook
	log     *slog.Logger
}

// NewService wires the delivery service. rewards may be nil when the
// reward module is disabled.
func NewService(cfg Config, repo Repository, users UserDirectory, mailer user.Mailer, rewards RewardHook, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{cfg: cfg, repo: repo, users: users, mailer: mailer, rewards: rewards, log: log}
}

// Create opens a new pending delivery request for the sender.
func (s *Service) Create(ctx context.Context, senderID uuid.UUID, req CreateRequest) (*Request, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d := &Request{
		SenderID:      senderID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		ParcelDetails: req.ParcelDetails,
		Urgency:       req.Urgency,
		Status:        StatusPending,
	}
	if req.ProposedFee != "" {
		d.ProposedFee = &req.ProposedFee
	}
	if req.PickupPoint != "" {
		d.PickupPoint = &req.PickupPoint
	}
	if req.DropOffPoint != "" {
		d.DropOffPoint = &req.DropOffPoint
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Get returns one delivery request by id.
func (s *Service) Get(ctx context.Context, id int64) (*Request, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a filtered, paginated slice of requests and the total count.
func (s *Service) List(ctx context.Context, q ListQuery) ([]Request, int, error) {
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
		Status:      q.Status,
		Origin:      q.Origin,
		Destination: q.Destination,
		Urgent:      q.Urgent,
		SenderID:    q.SenderID,
		TravelerID:  q.TravelerID,
		Page:        q.Page,
		Limit:       q.Limit,
	})
}

// Update patches mutable request fields. Status changes go through
// UpdateStatus; traveler assignment goes through Accept.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*Request, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProposedFee != nil {
		d.ProposedFee = req.ProposedFee
	}
	if req.PickupPoint != nil {
		d.PickupPoint = req.PickupPoint
	}
	if req.DropOffPoint != nil {
		d.DropOffPoint = req.DropOffPoint
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Accept assigns a traveler to a pending request, moves it to accepted
// and issues the tracking id.
func (s *Service) Accept(ctx context.Context, id int64, req AcceptRequest) (*Request, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	travelerID, err := uuid.Parse(req.TravelerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid traveler id", ErrIllegalTransition)
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Status != StatusPending {
		return nil, ErrAlreadyAccepted
	}
	if err := transition(ctx, d.Status, StatusAccepted); err != nil {
		return nil, err
	}

	tracking, err := newTrackingID()
	if err != nil {
		return nil, fmt.Errorf("generate tracking id: %w", err)
	}

	d.TravelerID = &travelerID
	d.Status = StatusAccepted
	d.TrackingID = &tracking

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}

	s.notifySender(ctx, d)
	return d, nil
}

// UpdateStatus applies a legal status transition and notifies the
// sender. A delivered parcel awards green points to the traveler.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (*Request, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := transition(ctx, d.Status, req.Status); err != nil {
		return nil, err
	}

	d.Status = req.Status
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}

	s.notifySender(ctx, d)

	if d.Status == StatusDelivered && s.rewards != nil && d.TravelerID != nil {
		if err := s.rewards.AwardDeliveryPoints(ctx, *d.TravelerID, d.ID); err != nil {
			s.log.WarnContext(ctx, "reward hook failed",
				slog.Int64("delivery_id", d.ID),
				slog.Any("error", err),
			)
		}
	}

	return d, nil
}

// Cancel withdraws a pending request.
func (s *Service) Cancel(ctx context.Context, id int64) (*Request, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Status != StatusPending {
		return nil, ErrNotCancellable
	}

	d.Status = StatusCancelled
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// TrackingURL returns the public tracking link encoded into QR codes.
func (s *Service) TrackingURL(d *Request) (string, error) {
	if d.TrackingID == nil {
		return "", ErrNoTrackingID
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.TrackingBaseURL, "/"), *d.TrackingID), nil
}

// notifySender emails the sender about a status change, best effort.
func (s *Service) notifySender(ctx context.Context, d *Request) {
	sender, err := s.users.GetUserByID(ctx, d.SenderID)
	if err != nil {
		s.log.WarnContext(ctx, "sender lookup for notification failed",
			slog.Int64("delivery_id", d.ID),
			slog.Any("error", err),
		)
		return
	}

	tracking := ""
	if d.TrackingID != nil {
		tracking = *d.TrackingID
	}

	if err := s.mailer.Send(ctx, email.TemplateDeliveryUpdate, sender.Email,
		email.DeliveryUpdateData{
			UserName:       sender.Name,
			TrackingNumber: tracking,
			Status:         string(d.Status),
		}, nil); err != nil {
		s.log.WarnContext(ctx, "delivery update email failed",
			slog.Int64("delivery_id", d.ID),
			slog.String("email", sender.Email),
			slog.Any("error", err),
		)
	}
}

// newTrackingID issues an id like PP-2026-4F21A9C0.
func newTrackingID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("PP-%d-%s", time.Now().Year(), strings.ToUpper(hex.EncodeToString(buf))), nil
}
