package reward

import (
	"time"

	"github.com/google/uuid"
)

// BadgeType identifies an achievement a user can earn.
type BadgeType string

const (
	BadgeEcoWarrior      BadgeType = "eco_warrior"
	BadgeReliableSender  BadgeType = "reliable_sender"
	BadgeTrustedTraveler BadgeType = "trusted_traveler"
	BadgeQuickDeliverer  BadgeType = "quick_deliverer"
	BadgeCommunityHelper BadgeType = "community_helper"
	BadgeCarbonSaver     BadgeType = "carbon_saver"
	BadgeFrequentUser    BadgeType = "frequent_user"
)

// BadgeTypes lists every badge a user can earn.
var BadgeTypes = []BadgeType{
	BadgeEcoWarrior,
	BadgeReliableSender,
	BadgeTrustedTraveler,
	BadgeQuickDeliverer,
	BadgeCommunityHelper,
	BadgeCarbonSaver,
	BadgeFrequentUser,
}

// Badge is one earned achievement, stored as part of the user's reward row.
type Badge struct {
	Type        BadgeType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// badgeCatalog holds the display metadata stamped onto a badge when it
// is awarded.
var badgeCatalog = map[BadgeType]struct {
	Name        string
	Description string
	Icon        string
}{
	BadgeEcoWarrior:      {"Eco Warrior", "Earned 100 green points through eco-friendly deliveries", "🌱"},
	BadgeReliableSender:  {"Reliable Sender", "Recognized for consistently well-prepared parcels", "📦"},
	BadgeTrustedTraveler: {"Trusted Traveler", "Earned 500 green points as a traveler", "🧭"},
	BadgeQuickDeliverer:  {"Quick Deliverer", "Completed a first delivery", "⚡"},
	BadgeCommunityHelper: {"Community Helper", "Recognized for helping the community", "🤝"},
	BadgeCarbonSaver:     {"Carbon Saver", "Earned 250 green points by sharing journeys", "🌍"},
	BadgeFrequentUser:    {"Frequent User", "Earned 1000 green points on the platform", "🏆"},
}

// Reward is a user's green point balance and earned badges.
type Reward struct {
	UserID      uuid.UUID `json:"userId"`
	GreenPoints int       `json:"greenPoints"`
	Badges      []Badge   `json:"badges"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasBadge reports whether the reward already carries a badge of the
// given type.
func (r *Reward) HasBadge(t BadgeType) bool {
	for _, b := range r.Badges {
		if b.Type == t {
			return true
		}
	}
	return false
}

// LeaderboardEntry is one row of the green point leaderboard.
type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	GreenPoints int       `json:"greenPoints"`
	Badges      []Badge   `json:"badges"`
}
