package services

import (
	"testing"
	"time"

	"product-auth-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLevel(t *testing.T) {
	assert.Equal(t, 1, CalculateLevel(0))
	assert.Equal(t, 1, CalculateLevel(99))
	assert.Equal(t, 2, CalculateLevel(100))
	assert.Equal(t, 2, CalculateLevel(399))
	assert.Equal(t, 3, CalculateLevel(400))
	assert.Equal(t, 1, CalculateLevel(-50)) // negative clamps to level 1
}

func TestLevelBoundaryAgreement(t *testing.T) {
	// Landing exactly on a level's end total must put you in the next level,
	// one point fewer must not.
	for level := 1; level <= 50; level++ {
		boundary := PointsForNextLevel(level)
		assert.Equal(t, level+1, CalculateLevel(boundary), "at boundary of level %d", level)
		assert.Equal(t, level, CalculateLevel(boundary-1), "just below boundary of level %d", level)
	}
}

func TestLevelProgress(t *testing.T) {
	// Level 2 spans 100..400 points.
	assert.Equal(t, 0.0, LevelProgress(100, 2))
	assert.Equal(t, 50.0, LevelProgress(250, 2))
	assert.Equal(t, 100.0, LevelProgress(400, 2))

	// Out-of-range inputs clamp instead of going negative or past 100.
	assert.Equal(t, 0.0, LevelProgress(50, 2))
	assert.Equal(t, 100.0, LevelProgress(9999, 2))
}

func TestAdvanceStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("first activity starts at 1", func(t *testing.T) {
		assert.Equal(t, 1, AdvanceStreak(0, nil, now))
	})

	t.Run("same day keeps streak", func(t *testing.T) {
		earlier := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, 5, AdvanceStreak(5, &earlier, now))
	})

	t.Run("next day extends streak", func(t *testing.T) {
		yesterday := time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, 6, AdvanceStreak(5, &yesterday, now))
	})

	t.Run("gap resets to 1", func(t *testing.T) {
		lastWeek := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, AdvanceStreak(5, &lastWeek, now))
	})

	t.Run("future last activity resets to 1", func(t *testing.T) {
		tomorrow := time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, AdvanceStreak(5, &tomorrow, now))
	})

	t.Run("same day with zero streak normalizes to 1", func(t *testing.T) {
		earlier := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, AdvanceStreak(0, &earlier, now))
	})
}

func TestPointsForActivity(t *testing.T) {
	fresh := &models.UserStats{}

	assert.Equal(t, PointsFirstVerification, PointsForActivity(fresh, ActivityVerification))
	assert.Equal(t, PointsRegistration*2, PointsForActivity(fresh, ActivityRegistration))
	assert.Equal(t, PointsCounterfeitFound, PointsForActivity(fresh, ActivityCounterfeit))
	assert.Equal(t, int64(0), PointsForActivity(fresh, "unknown"))

	veteran := &models.UserStats{TotalVerifications: 12, TotalRegistrations: 3}
	assert.Equal(t, PointsVerification, PointsForActivity(veteran, ActivityVerification))
	assert.Equal(t, PointsRegistration, PointsForActivity(veteran, ActivityRegistration))
	assert.Equal(t, PointsCounterfeitFound, PointsForActivity(veteran, ActivityCounterfeit))
}

func TestApplyActivity(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("first verification", func(t *testing.T) {
		stats := &models.UserStats{Level: 1}
		result := ApplyActivity(stats, PointsFirstVerification, ActivityVerification, now)

		assert.Equal(t, PointsFirstVerification, result.PointsAwarded)
		assert.Equal(t, int64(50), result.NewTotal)
		assert.Equal(t, 1, result.Level)
		assert.False(t, result.LevelUp)
		assert.Equal(t, 1, result.Streak)

		assert.Equal(t, int64(1), stats.TotalVerifications)
		assert.Equal(t, int64(50), stats.TotalPoints)
		assert.Equal(t, 1, stats.BestStreak)
		require.NotNil(t, stats.LastActivityDate)
		assert.Equal(t, now, *stats.LastActivityDate)
	})

	t.Run("level up crossing a boundary", func(t *testing.T) {
		stats := &models.UserStats{TotalPoints: 90, Level: 1}
		result := ApplyActivity(stats, 25, ActivityVerification, now)

		assert.Equal(t, int64(115), result.NewTotal)
		assert.Equal(t, 2, result.Level)
		assert.True(t, result.LevelUp)
	})

	t.Run("counters bump per activity type", func(t *testing.T) {
		stats := &models.UserStats{Level: 1}
		ApplyActivity(stats, 100, ActivityRegistration, now)
		ApplyActivity(stats, 200, ActivityCounterfeit, now)
		ApplyActivity(stats, 0, "unknown", now)

		assert.Equal(t, int64(0), stats.TotalVerifications)
		assert.Equal(t, int64(1), stats.TotalRegistrations)
		assert.Equal(t, int64(1), stats.CounterfeitFound)
		assert.Equal(t, int64(300), stats.TotalPoints)
	})

	t.Run("streak carries across consecutive days", func(t *testing.T) {
		stats := &models.UserStats{Level: 1}
		day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		day2 := day1.AddDate(0, 0, 1)
		day5 := day1.AddDate(0, 0, 4)

		ApplyActivity(stats, 25, ActivityVerification, day1)
		result := ApplyActivity(stats, 25, ActivityVerification, day2)
		assert.Equal(t, 2, result.Streak)
		assert.Equal(t, 2, stats.BestStreak)

		// A gap resets the current streak but keeps the best.
		result = ApplyActivity(stats, 25, ActivityVerification, day5)
		assert.Equal(t, 1, result.Streak)
		assert.Equal(t, 2, stats.BestStreak)
	})
}

func TestEvaluateCriteria(t *testing.T) {
	countAchievement := models.Achievement{
		Category: models.CategoryVerification,
		Criteria: models.AchievementCriteria{Type: models.CriteriaCount, Target: 10},
	}
	registrationAchievement := models.Achievement{
		Category: models.CategoryRegistration,
		Criteria: models.AchievementCriteria{Type: models.CriteriaCount, Target: 5},
	}
	streakAchievement := models.Achievement{
		Category: models.CategoryStreak,
		Criteria: models.AchievementCriteria{Type: models.CriteriaStreak, Days: 7},
	}
	counterfeitAchievement := models.Achievement{
		Category: models.CategoryCounterfeit,
		Criteria: models.AchievementCriteria{Type: models.CriteriaCounterfeit, Target: 1},
	}

	stats := &models.UserStats{
		TotalVerifications: 10,
		TotalRegistrations: 4,
		CurrentStreak:      7,
		CounterfeitFound:   0,
	}

	assert.True(t, EvaluateCriteria(countAchievement, stats))
	assert.False(t, EvaluateCriteria(registrationAchievement, stats))
	assert.True(t, EvaluateCriteria(streakAchievement, stats))
	assert.False(t, EvaluateCriteria(counterfeitAchievement, stats))

	stats.CounterfeitFound = 1
	assert.True(t, EvaluateCriteria(counterfeitAchievement, stats))
}

func TestEvaluateCriteriaUnknownTypeNeverSatisfied(t *testing.T) {
	bogus := models.Achievement{
		Category: models.CategoryVerification,
		Criteria: models.AchievementCriteria{Type: "percentile", Target: 1},
	}
	maxed := &models.UserStats{
		TotalVerifications: 1 << 40,
		TotalRegistrations: 1 << 40,
		CurrentStreak:      9999,
		CounterfeitFound:   1 << 40,
	}
	assert.False(t, EvaluateCriteria(bogus, maxed))
}

func TestEvaluateCriteriaCountNeedsMatchingCategory(t *testing.T) {
	// A count criteria on a streak category has no counter to compare against.
	mismatched := models.Achievement{
		Category: models.CategoryStreak,
		Criteria: models.AchievementCriteria{Type: models.CriteriaCount, Target: 1},
	}
	assert.False(t, EvaluateCriteria(mismatched, &models.UserStats{TotalVerifications: 100}))
}

func TestFormatPoints(t *testing.T) {
	assert.Equal(t, "0", FormatPoints(0))
	assert.Equal(t, "999", FormatPoints(999))
	assert.Equal(t, "12,500", FormatPoints(12500))
	assert.Equal(t, "1,234,567", FormatPoints(1234567))
}

func TestTierColor(t *testing.T) {
	assert.Equal(t, TierColors[models.TierDiamond], TierColor(models.TierDiamond))
	// unknown tiers fall back to bronze
	assert.Equal(t, TierColors[models.TierBronze], TierColor("obsidian"))
}

func TestStreakEmoji(t *testing.T) {
	assert.Equal(t, "⚡", StreakEmoji(0))
	assert.Equal(t, "⚡", StreakEmoji(2))
	assert.Equal(t, "🔥", StreakEmoji(3))
	assert.Equal(t, "🔥", StreakEmoji(6))
	assert.Equal(t, "🔥🔥", StreakEmoji(7))
	assert.Equal(t, "🔥🔥🔥", StreakEmoji(30))
}

func TestLevelTitle(t *testing.T) {
	assert.Equal(t, "Novice Verifier", LevelTitle(1))
	assert.Equal(t, "Apprentice Guardian", LevelTitle(5))
	assert.Equal(t, "Skilled Verifier", LevelTitle(10))
	assert.Equal(t, "Expert Authenticator", LevelTitle(20))
	assert.Equal(t, "Elite Inspector", LevelTitle(30))
	assert.Equal(t, "Master Guardian", LevelTitle(40))
	assert.Equal(t, "Legendary Verifier", LevelTitle(50))
	assert.Equal(t, "Legendary Verifier", LevelTitle(75))
}
