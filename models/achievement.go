package models

import (
	"fmt"
	"time"
)

// AchievementCategory scopes count criteria to the matching stats counter.
type AchievementCategory string

const (
	CategoryVerification AchievementCategory = "verification"
	CategoryRegistration AchievementCategory = "registration"
	CategoryCounterfeit  AchievementCategory = "counterfeit"
	CategoryStreak       AchievementCategory = "streak"
)

// CriteriaType tags the criteria variant. Unknown tags are never satisfied.
type CriteriaType string

const (
	CriteriaCount       CriteriaType = "count"
	CriteriaStreak      CriteriaType = "streak"
	CriteriaCounterfeit CriteriaType = "counterfeit"
)

// AchievementCriteria is the unlock condition. Target applies to count and
// counterfeit criteria, Days to streak criteria.
type AchievementCriteria struct {
	Type   CriteriaType `json:"type"`
	Target int64        `json:"target,omitempty"`
	Days   int          `json:"days,omitempty"`
}

type AchievementTier string

const (
	TierBronze   AchievementTier = "bronze"
	TierSilver   AchievementTier = "silver"
	TierGold     AchievementTier = "gold"
	TierPlatinum AchievementTier = "platinum"
	TierDiamond  AchievementTier = "diamond"
)

// Achievement: static config entry (catalog defined at process start)
type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	PointValue  int64               `json:"point_value"`
	Category    AchievementCategory `json:"category"`
	Criteria    AchievementCriteria `json:"criteria"`
	Tier        AchievementTier     `json:"tier"` // presentation only
}

// UserAchievement: awarded instance, at most one per (user, achievement).
// The composite unique index is the source of truth against double awards;
// the in-memory earned-set check in the service is an optimization only.
type UserAchievement struct {
	ID             string    `gorm:"primaryKey;type:uuid" json:"id"` // minted by the service, never by the DB
	ExternalUserID string    `gorm:"index;not null;uniqueIndex:idx_user_achievement" json:"external_user_id"`
	AchievementID  string    `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	EarnedAt       time.Time `gorm:"autoCreateTime" json:"earned_at"`
}

// AchievementCatalog holds the built-in achievements, ordered by point value.
var AchievementCatalog = []Achievement{
	{
		ID:          "first_verification",
		Name:        "First Scan",
		Description: "Verified your first product",
		Icon:        "🔍",
		PointValue:  25,
		Category:    CategoryVerification,
		Criteria:    AchievementCriteria{Type: CriteriaCount, Target: 1},
		Tier:        TierBronze,
	},
	{
		ID:          "first_registration",
		Name:        "Registrar",
		Description: "Registered your first product on the blockchain",
		Icon:        "📝",
		PointValue:  50,
		Category:    CategoryRegistration,
		Criteria:    AchievementCriteria{Type: CriteriaCount, Target: 1},
		Tier:        TierBronze,
	},
	{
		ID:          "streak_3",
		Name:        "Warming Up",
		Description: "Active 3 days in a row",
		Icon:        "🔥",
		PointValue:  50,
		Category:    CategoryStreak,
		Criteria:    AchievementCriteria{Type: CriteriaStreak, Days: 3},
		Tier:        TierBronze,
	},
	{
		ID:          "verifier_10",
		Name:        "Skilled Verifier",
		Description: "Verified 10 products",
		Icon:        "🛡️",
		PointValue:  100,
		Category:    CategoryVerification,
		Criteria:    AchievementCriteria{Type: CriteriaCount, Target: 10},
		Tier:        TierSilver,
	},
	{
		ID:          "registrar_5",
		Name:        "Brand Guardian",
		Description: "Registered 5 products",
		Icon:        "🏷️",
		PointValue:  150,
		Category:    CategoryRegistration,
		Criteria:    AchievementCriteria{Type: CriteriaCount, Target: 5},
		Tier:        TierSilver,
	},
	{
		ID:          "streak_7",
		Name:        "On Fire",
		Description: "Active 7 days in a row",
		Icon:        "🔥",
		PointValue:  150,
		Category:    CategoryStreak,
		Criteria:    AchievementCriteria{Type: CriteriaStreak, Days: 7},
		Tier:        TierSilver,
	},
	{
		ID:          "counterfeit_hunter",
		Name:        "Counterfeit Hunter",
		Description: "Exposed your first counterfeit",
		Icon:        "🕵️",
		PointValue:  200,
		Category:    CategoryCounterfeit,
		Criteria:    AchievementCriteria{Type: CriteriaCounterfeit, Target: 1},
		Tier:        TierGold,
	},
	{
		ID:          "verifier_50",
		Name:        "Expert Authenticator",
		Description: "Verified 50 products",
		Icon:        "⚔️",
		PointValue:  300,
		Category:    CategoryVerification,
		Criteria:    AchievementCriteria{Type: CriteriaCount, Target: 50},
		Tier:        TierGold,
	},
	{
		ID:          "counterfeit_5",
		Name:        "Fraud Buster",
		Description: "Exposed 5 counterfeits",
		Icon:        "🚨",
		PointValue:  500,
		Category:    CategoryCounterfeit,
		Criteria:    AchievementCriteria{Type: CriteriaCounterfeit, Target: 5},
		Tier:        TierPlatinum,
	},
	{
		ID:          "streak_30",
		Name:        "Unstoppable",
		Description: "Active 30 days in a row",
		Icon:        "💎",
		PointValue:  500,
		Category:    CategoryStreak,
		Criteria:    AchievementCriteria{Type: CriteriaStreak, Days: 30},
		Tier:        TierPlatinum,
	},
	{
		ID:          "verifier_100",
		Name:        "Legendary Verifier",
		Description: "Verified 100 products",
		Icon:        "👑",
		PointValue:  1000,
		Category:    CategoryVerification,
		Criteria:    AchievementCriteria{Type: CriteriaCount, Target: 100},
		Tier:        TierDiamond,
	},
}

// ValidateAchievements catches malformed catalog entries at startup instead
// of silently never awarding them.
func ValidateAchievements(catalog []Achievement) error {
	seen := make(map[string]bool, len(catalog))
	for _, a := range catalog {
		if a.ID == "" {
			return fmt.Errorf("achievement with empty id (name=%q)", a.Name)
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.PointValue < 0 {
			return fmt.Errorf("achievement %q has negative point value", a.ID)
		}
		switch a.Criteria.Type {
		case CriteriaCount:
			if a.Category != CategoryVerification && a.Category != CategoryRegistration {
				return fmt.Errorf("achievement %q: count criteria require verification or registration category", a.ID)
			}
			if a.Criteria.Target < 1 {
				return fmt.Errorf("achievement %q: count target must be >= 1", a.ID)
			}
		case CriteriaStreak:
			if a.Criteria.Days < 1 {
				return fmt.Errorf("achievement %q: streak days must be >= 1", a.ID)
			}
		case CriteriaCounterfeit:
			if a.Criteria.Target < 1 {
				return fmt.Errorf("achievement %q: counterfeit target must be >= 1", a.ID)
			}
		default:
			return fmt.Errorf("achievement %q has unknown criteria type %q", a.ID, a.Criteria.Type)
		}
	}
	return nil
}
