// services/gamification.go
package services

import (
	"fmt"
	"log"
	"math"
	"time"

	"product-auth-system/models"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Point values per activity (tunable via config/env later)
const (
	PointsVerification      int64 = 25
	PointsFirstVerification int64 = 50 // first-ever verification pays double-ish
	PointsRegistration      int64 = 100
	PointsCounterfeitFound  int64 = 200

	// Reserved bonus values — no call site triggers these yet
	PointsDailyBonus    int64 = 10
	PointsStreakBonus3  int64 = 50
	PointsStreakBonus7  int64 = 150
	PointsStreakBonus30 int64 = 500
)

// Activity types recognized by AwardPoints. Unknown types still award points
// but bump no counter.
const (
	ActivityVerification = "verification"
	ActivityRegistration = "registration"
	ActivityCounterfeit  = "counterfeit"
)

// LevelConfig: 100 points per level², i.e. level N starts at (N-1)²*100
const BasePointsPerLevel = 100

// CalculateLevel maps cumulative points to a display level.
// Must agree with PointsForNextLevel at every boundary: feeding
// PointsForNextLevel(L) back in yields exactly L+1.
func CalculateLevel(points int64) int {
	if points < 0 {
		points = 0
	}
	level := int(math.Sqrt(float64(points)/BasePointsPerLevel)) + 1
	if level < 1 {
		level = 1
	}
	return level
}

// PointsForNextLevel returns the total points at which currentLevel ends.
func PointsForNextLevel(currentLevel int) int64 {
	return int64(currentLevel) * int64(currentLevel) * BasePointsPerLevel
}

// LevelProgress returns 0–100 progress through the current level.
func LevelProgress(currentPoints int64, currentLevel int) float64 {
	currentLevelPoints := PointsForNextLevel(currentLevel - 1)
	nextLevelPoints := PointsForNextLevel(currentLevel)
	progress := float64(currentPoints-currentLevelPoints) / float64(nextLevelPoints-currentLevelPoints) * 100
	return math.Min(100, math.Max(0, progress))
}

// AdvanceStreak applies the streak continuation rule: same calendar day keeps
// the streak, exactly one day later extends it, anything else (including
// first-ever activity) restarts at 1.
func AdvanceStreak(current int, lastActivity *time.Time, now time.Time) int {
	if lastActivity == nil {
		return 1
	}
	today := truncateToDay(now)
	last := truncateToDay(*lastActivity)
	switch {
	case today.Equal(last):
		if current < 1 {
			return 1
		}
		return current
	case today.Equal(last.AddDate(0, 0, 1)):
		return current + 1
	default:
		return 1
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// PointsForActivity picks the award amount, doubling first-ever verification
// and registration. Callers must pass stats read *before* the counter bump.
func PointsForActivity(stats *models.UserStats, activityType string) int64 {
	switch activityType {
	case ActivityVerification:
		if stats == nil || stats.TotalVerifications == 0 {
			return PointsFirstVerification
		}
		return PointsVerification
	case ActivityRegistration:
		if stats == nil || stats.TotalRegistrations == 0 {
			return PointsRegistration * 2
		}
		return PointsRegistration
	case ActivityCounterfeit:
		return PointsCounterfeitFound
	default:
		return 0
	}
}

// AwardResult is returned to the caller for UI display. Not persisted.
type AwardResult struct {
	PointsAwarded   int64                `json:"points_awarded"`
	NewTotal        int64                `json:"new_total"`
	Level           int                  `json:"level"`
	LevelUp         bool                 `json:"level_up"`
	Streak          int                  `json:"streak"`
	NewAchievements []models.Achievement `json:"new_achievements"`
}

// ApplyActivity mutates stats for one award and returns the result bundle.
// Pure state transition — no I/O — so the award math is testable without a
// database.
func ApplyActivity(stats *models.UserStats, points int64, activityType string, now time.Time) AwardResult {
	oldLevel := stats.Level

	stats.CurrentStreak = AdvanceStreak(stats.CurrentStreak, stats.LastActivityDate, now)
	if stats.CurrentStreak > stats.BestStreak {
		stats.BestStreak = stats.CurrentStreak
	}
	stats.LastActivityDate = &now

	stats.TotalPoints += points
	stats.Level = CalculateLevel(stats.TotalPoints)

	switch activityType {
	case ActivityVerification:
		stats.TotalVerifications++
	case ActivityRegistration:
		stats.TotalRegistrations++
	case ActivityCounterfeit:
		stats.CounterfeitFound++
	}

	return AwardResult{
		PointsAwarded: points,
		NewTotal:      stats.TotalPoints,
		Level:         stats.Level,
		LevelUp:       stats.Level > oldLevel,
		Streak:        stats.CurrentStreak,
	}
}

// EvaluateCriteria decides whether stats satisfy an achievement's unlock
// condition. Unknown criteria types are never satisfied (fail safe).
func EvaluateCriteria(a models.Achievement, stats *models.UserStats) bool {
	switch a.Criteria.Type {
	case models.CriteriaCount:
		switch a.Category {
		case models.CategoryVerification:
			return stats.TotalVerifications >= a.Criteria.Target
		case models.CategoryRegistration:
			return stats.TotalRegistrations >= a.Criteria.Target
		}
		return false
	case models.CriteriaStreak:
		return stats.CurrentStreak >= a.Criteria.Days
	case models.CriteriaCounterfeit:
		return stats.CounterfeitFound >= a.Criteria.Target
	default:
		return false
	}
}

type GamificationService struct {
	DB      *gorm.DB
	catalog []models.Achievement
}

func NewGamificationService(db *gorm.DB) *GamificationService {
	return &GamificationService{DB: db, catalog: models.AchievementCatalog}
}

// EnsureStats ensures a UserStats row exists (idempotent)
func (s *GamificationService) EnsureStats(externalUserID string) (*models.UserStats, error) {
	var stats models.UserStats
	err := s.DB.Where("external_user_id = ?", externalUserID).First(&stats).Error
	if err == gorm.ErrRecordNotFound {
		stats = models.UserStats{
			ID:             uuid.NewString(),
			ExternalUserID: externalUserID,
			TotalPoints:    0,
			Level:          1,
		}
		if err := s.DB.Create(&stats).Error; err != nil {
			return nil, err
		}
		return &stats, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetStats returns current stats, or a zero row (level 1) when the user has
// no activity yet. Read-only — never creates.
func (s *GamificationService) GetStats(externalUserID string) (*models.UserStats, error) {
	var stats models.UserStats
	err := s.DB.Where("external_user_id = ?", externalUserID).First(&stats).Error
	if err == gorm.ErrRecordNotFound {
		return &models.UserStats{ExternalUserID: externalUserID, Level: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// AwardPoints atomically updates points, level, and streak — returns the
// award result. The whole read-modify-write runs inside one transaction so
// concurrent activity from the same user cannot lose an update.
// NewAchievements is left empty; callers compose CheckAndAwardAchievements.
func (s *GamificationService) AwardPoints(externalUserID string, points int64, activityType string) (*AwardResult, error) {
	if points < 0 {
		return nil, fmt.Errorf("refusing negative point award (%d) for %s", points, externalUserID)
	}

	var result AwardResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var stats models.UserStats
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("external_user_id = ?", externalUserID).
			First(&stats).Error
		if err == gorm.ErrRecordNotFound {
			stats = models.UserStats{
				ID:             uuid.NewString(),
				ExternalUserID: externalUserID,
				Level:          1,
			}
			if err := tx.Create(&stats).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		result = ApplyActivity(&stats, points, activityType, time.Now())

		if err := tx.Save(&stats).Error; err != nil {
			return err
		}

		log.Printf("🎮 Points awarded: %s → +%d (total=%d, lvl=%d, streak=%d, activity=%s)",
			externalUserID, points, stats.TotalPoints, stats.Level, stats.CurrentStreak, activityType)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckAndAwardAchievements evaluates the catalog against stats and records
// unlocks. The earned-set pre-check is an optimization; the unique index on
// (external_user_id, achievement_id) plus ON CONFLICT DO NOTHING is what
// actually guarantees at-most-one award under concurrent requests.
func (s *GamificationService) CheckAndAwardAchievements(externalUserID string, stats *models.UserStats) ([]models.Achievement, error) {
	var earned []models.UserAchievement
	if err := s.DB.Where("external_user_id = ?", externalUserID).Find(&earned).Error; err != nil {
		return nil, err
	}
	earnedIDs := make(map[string]bool, len(earned))
	for _, ua := range earned {
		earnedIDs[ua.AchievementID] = true
	}

	var newAchievements []models.Achievement
	for _, achievement := range s.catalog {
		if earnedIDs[achievement.ID] {
			continue
		}
		if !EvaluateCriteria(achievement, stats) {
			continue
		}

		ua := models.UserAchievement{
			ID:             uuid.NewString(),
			ExternalUserID: externalUserID,
			AchievementID:  achievement.ID,
		}
		res := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&ua)
		if res.Error != nil {
			return newAchievements, res.Error
		}
		if res.RowsAffected == 0 {
			continue // lost the race to a concurrent request
		}

		newAchievements = append(newAchievements, achievement)
		log.Printf("🎖️ Achievement unlocked: %s → %s", achievement.Name, externalUserID)
	}

	return newAchievements, nil
}

// EarnedAchievements returns the full catalog entries the user has unlocked,
// in catalog order.
func (s *GamificationService) EarnedAchievements(externalUserID string) ([]models.Achievement, error) {
	var earned []models.UserAchievement
	if err := s.DB.Where("external_user_id = ?", externalUserID).Find(&earned).Error; err != nil {
		return nil, err
	}
	earnedIDs := make(map[string]bool, len(earned))
	for _, ua := range earned {
		earnedIDs[ua.AchievementID] = true
	}
	var achievements []models.Achievement
	for _, a := range s.catalog {
		if earnedIDs[a.ID] {
			achievements = append(achievements, a)
		}
	}
	return achievements, nil
}

// Catalog returns the full achievement catalog for listing endpoints.
func (s *GamificationService) Catalog() []models.Achievement {
	return s.catalog
}

// AwardActivity runs the full per-activity sequence: pick the point value
// (doubled for first-ever verification/registration), award inside a
// transaction, re-read stats, then evaluate achievements. Returns nil on any
// persistence failure — gamification is fail-open and must never block the
// verify/register action itself.
func (s *GamificationService) AwardActivity(externalUserID, activityType string) *AwardResult {
	stats, err := s.EnsureStats(externalUserID)
	if err != nil {
		log.Printf("⚠️ Gamification skipped for %s: %v", externalUserID, err)
		return nil
	}

	points := PointsForActivity(stats, activityType)

	result, err := s.AwardPoints(externalUserID, points, activityType)
	if err != nil {
		log.Printf("⚠️ Point award failed for %s: %v", externalUserID, err)
		return nil
	}

	updated, err := s.GetStats(externalUserID)
	if err != nil {
		log.Printf("⚠️ Stats re-read failed for %s: %v", externalUserID, err)
		return result
	}

	achievements, err := s.CheckAndAwardAchievements(externalUserID, updated)
	if err != nil {
		log.Printf("⚠️ Achievement check failed for %s: %v", externalUserID, err)
		return result
	}
	result.NewAchievements = achievements

	return result
}

// --- Display helpers (carried from the web UI layer) ---

var pointsPrinter = message.NewPrinter(language.English)

// FormatPoints renders a point total with digit grouping ("12,500").
func FormatPoints(points int64) string {
	return pointsPrinter.Sprintf("%d", points)
}

// TierColors maps achievement tiers to UI gradient classes.
var TierColors = map[models.AchievementTier]string{
	models.TierBronze:   "from-amber-700 to-amber-500",
	models.TierSilver:   "from-gray-400 to-gray-300",
	models.TierGold:     "from-yellow-500 to-yellow-300",
	models.TierPlatinum: "from-purple-500 to-purple-300",
	models.TierDiamond:  "from-cyan-400 to-blue-500",
}

func TierColor(tier models.AchievementTier) string {
	if color, ok := TierColors[tier]; ok {
		return color
	}
	return TierColors[models.TierBronze]
}

func StreakEmoji(streak int) string {
	switch {
	case streak >= 30:
		return "🔥🔥🔥"
	case streak >= 7:
		return "🔥🔥"
	case streak >= 3:
		return "🔥"
	default:
		return "⚡"
	}
}

func LevelTitle(level int) string {
	switch {
	case level >= 50:
		return "Legendary Verifier"
	case level >= 40:
		return "Master Guardian"
	case level >= 30:
		return "Elite Inspector"
	case level >= 20:
		return "Expert Authenticator"
	case level >= 10:
		return "Skilled Verifier"
	case level >= 5:
		return "Apprentice Guardian"
	default:
		return "Novice Verifier"
	}
}
