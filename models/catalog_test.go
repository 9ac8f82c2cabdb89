package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIndustriesValid(t *testing.T) {
	assert.NoError(t, ValidateIndustries(DefaultIndustries()))
}

func TestValidateIndustriesRejectsDuplicateID(t *testing.T) {
	catalog := DefaultIndustries()
	catalog = append(catalog, catalog[0])

	err := ValidateIndustries(catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate industry id")
}

func TestValidateIndustriesRejectsEmptyKeywords(t *testing.T) {
	catalog := DefaultIndustries()
	catalog[3].Keywords = nil

	err := ValidateIndustries(catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no keywords")
}

func TestValidateIndustriesRejectsDuplicateStep(t *testing.T) {
	catalog := DefaultIndustries()
	catalog[0].WorkflowSteps = append(catalog[0].WorkflowSteps, catalog[0].WorkflowSteps[0])

	err := ValidateIndustries(catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate workflow step")
}

func TestValidateIndustriesRequiresDefaultProfile(t *testing.T) {
	var withoutDefault []IndustryProfile
	for _, p := range DefaultIndustries() {
		if p.ID != DefaultIndustryID {
			withoutDefault = append(withoutDefault, p)
		}
	}

	err := ValidateIndustries(withoutDefault)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default industry")
}

func TestAchievementCatalogValid(t *testing.T) {
	assert.NoError(t, ValidateAchievements(AchievementCatalog))
}

func TestValidateAchievementsRejectsUnknownCriteriaType(t *testing.T) {
	catalog := []Achievement{{
		ID:         "percentile_99",
		Name:       "Top Percentile",
		PointValue: 100,
		Category:   CategoryVerification,
		Criteria:   AchievementCriteria{Type: "percentile", Target: 99},
	}}

	err := ValidateAchievements(catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown criteria type")
}

func TestValidateAchievementsRejectsCountWithoutCounterCategory(t *testing.T) {
	catalog := []Achievement{{
		ID:         "streak_count",
		Name:       "Streak Count",
		PointValue: 100,
		Category:   CategoryStreak,
		Criteria:   AchievementCriteria{Type: CriteriaCount, Target: 3},
	}}

	err := ValidateAchievements(catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count criteria require")
}

func TestValidateAchievementsRejectsDuplicateID(t *testing.T) {
	catalog := append([]Achievement{}, AchievementCatalog...)
	catalog = append(catalog, AchievementCatalog[0])

	err := ValidateAchievements(catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate achievement id")
}

func TestValidateAchievementsRejectsZeroTarget(t *testing.T) {
	catalog := []Achievement{{
		ID:       "zero_target",
		Name:     "Zero",
		Category: CategoryVerification,
		Criteria: AchievementCriteria{Type: CriteriaCount, Target: 0},
	}}

	err := ValidateAchievements(catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target must be >= 1")
}
