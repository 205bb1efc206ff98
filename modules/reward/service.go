package reward

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Config holds reward settings.
type Config struct {
	PointsPerDelivery int `env:"GREEN_POINTS_PER_DELIVERY" envDefault:"50"`
	LeaderboardLimit  int `env:"LEADERBOARD_LIMIT" envDefault:"10"`
}

// pointBadges maps green point thresholds to the badge earned at each
// one. Badges without a threshold are awarded explicitly.
var pointBadges = map[BadgeType]int{
	BadgeQuickDeliverer:  1,
	BadgeEcoWarrior:      100,
	BadgeCarbonSaver:     250,
	BadgeTrustedTraveler: 500,
	BadgeFrequentUser:    1000,
}

// Service implements green point and badge operations.
type Service struct {
	cfg  Config
	repo Repository
	log  *slog.Logger
}

// NewService wires the reward service.
func NewService(cfg Config, repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{cfg: cfg, repo: repo, log: log}
}

// GetByUser returns a user's reward. Users who have never earned
// points get an empty balance rather than an error.
func (s *Service) GetByUser(ctx context.Context, userID uuid.UUID) (*Reward, error) {
	rw, err := s.repo.GetByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return &Reward{UserID: userID, Badges: []Badge{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return rw, nil
}

// Leaderboard returns the top earners ordered by green points.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit < 1 || limit > 100 {
		limit = s.cfg.LeaderboardLimit
	}
	return s.repo.Leaderboard(ctx, limit)
}

// AwardDeliveryPoints credits a traveler for a completed delivery and
// awards any point-threshold badges the new balance unlocks.
func (s *Service) AwardDeliveryPoints(ctx context.Context, travelerID uuid.UUID, deliveryID int64) error {
	rw, err := s.repo.AddPoints(ctx, travelerID, s.cfg.PointsPerDelivery)
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "green points awarded",
		slog.String("user_id", travelerID.String()),
		slog.Int64("delivery_id", deliveryID),
		slog.Int("points", s.cfg.PointsPerDelivery),
		slog.Int("balance", rw.GreenPoints))

	earned := unlockedBadges(rw)
	if len(earned) == 0 {
		return nil
	}
	rw.Badges = append(rw.Badges, earned...)
	if err := s.repo.SetBadges(ctx, travelerID, rw.Badges); err != nil {
		return err
	}
	for _, b := range earned {
		s.log.InfoContext(ctx, "badge earned",
			slog.String("user_id", travelerID.String()),
			slog.String("badge", string(b.Type)))
	}
	return nil
}

// AwardBadge grants a badge explicitly, such as a community
// recognition. Awarding a badge the user already holds is a no-op.
func (s *Service) AwardBadge(ctx context.Context, userID uuid.UUID, t BadgeType) (*Reward, error) {
	meta, ok := badgeCatalog[t]
	if !ok {
		return nil, ErrUnknownBadge
	}

	rw, err := s.repo.GetByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		if rw, err = s.repo.AddPoints(ctx, userID, 0); err != nil {
			return nil, err
		}
		rw.UserID = userID
	} else if err != nil {
		return nil, err
	}
	if rw.HasBadge(t) {
		return rw, nil
	}

	rw.Badges = append(rw.Badges, Badge{
		Type:        t,
		Name:        meta.Name,
		Description: meta.Description,
		Icon:        meta.Icon,
		EarnedAt:    time.Now(),
	})
	if err := s.repo.SetBadges(ctx, userID, rw.Badges); err != nil {
		return nil, err
	}
	return rw, nil
}

// unlockedBadges returns the threshold badges the reward's balance has
// reached but does not hold yet, lowest threshold first.
func unlockedBadges(rw *Reward) []Badge {
	var earned []Badge
	now := time.Now()
	for t, threshold := range pointBadges {
		if rw.GreenPoints < threshold || rw.HasBadge(t) {
			continue
		}
		meta := badgeCatalog[t]
		earned = append(earned, Badge{
			Type:        t,
			Name:        meta.Name,
			Description: meta.Description,
			Icon:        meta.Icon,
			EarnedAt:    now,
		})
	}
	sort.Slice(earned, func(i, j int) bool {
		return pointBadges[earned[i].Type] < pointBadges[earned[j].Type]
	})
	return earned
}
