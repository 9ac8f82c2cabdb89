// services/industry.go
package services

import (
	"strings"

	"product-auth-system/models"
)

// IndustryService owns the immutable industry catalog and everything derived
// from it: classification, workflow, story, and authenticity features.
// Catalog order is significant — the classifier breaks ties toward the
// earlier profile.
type IndustryService struct {
	catalog []models.IndustryProfile
	byID    map[string]int // id → index into catalog
}

func NewIndustryService(catalog []models.IndustryProfile) *IndustryService {
	byID := make(map[string]int, len(catalog))
	for i, p := range catalog {
		byID[p.ID] = i
	}
	return &IndustryService{catalog: catalog, byID: byID}
}

// ClassifyIndustry maps classification signals to exactly one profile id.
// Scoring is presence/absence per keyword (substring match on the lowercase
// corpus, each keyword counts at most once). A profile replaces the current
// best only with a strictly higher score, so the first profile reaching the
// top score wins. No match at all falls back to DefaultIndustryID.
func (s *IndustryService) ClassifyIndustry(keywords []string, productName, description string) string {
	searchText := strings.ToLower(productName + " " + description + " " + strings.Join(keywords, " "))

	bestMatch := models.DefaultIndustryID
	bestScore := 0

	for _, profile := range s.catalog {
		score := 0
		for _, keyword := range profile.Keywords {
			if strings.Contains(searchText, strings.ToLower(keyword)) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestMatch = profile.ID
		}
	}

	return bestMatch
}

// GenerateWorkflow returns the profile's workflow steps in declared order.
// Unknown ids get the default profile's workflow, same fallback as the
// classifier.
func (s *IndustryService) GenerateWorkflow(industryID string) []models.WorkflowStep {
	if profile, ok := s.GetIndustry(industryID); ok {
		return profile.WorkflowSteps
	}
	fallback, _ := s.GetIndustry(models.DefaultIndustryID)
	return fallback.WorkflowSteps
}

// GenerateStory expands the profile's story template. {productName} and
// {brand} are always substituted (empty brand becomes "our brand"); every
// metadata key substitutes its {key} placeholder. Placeholders with no
// matching key are left verbatim — that is intentional passthrough, not an
// error.
func (s *IndustryService) GenerateStory(industryID, productName, brand string, metadata map[string]string) string {
	profile, ok := s.GetIndustry(industryID)
	if !ok {
		return ""
	}

	if brand == "" {
		brand = "our brand"
	}

	story := profile.StoryTemplate
	story = strings.ReplaceAll(story, "{productName}", productName)
	story = strings.ReplaceAll(story, "{brand}", brand)
	for key, value := range metadata {
		story = strings.ReplaceAll(story, "{"+key+"}", value)
	}

	return story
}

// AuthenticityFeatures returns the profile's feature labels, falling back to
// the default profile for unknown ids.
func (s *IndustryService) AuthenticityFeatures(industryID string) []string {
	if profile, ok := s.GetIndustry(industryID); ok {
		return profile.AuthenticityFeatures
	}
	fallback, _ := s.GetIndustry(models.DefaultIndustryID)
	return fallback.AuthenticityFeatures
}

// GetIndustry looks up a profile by id. The second return is false on miss —
// callers decide whether to fall back or 404.
func (s *IndustryService) GetIndustry(industryID string) (models.IndustryProfile, bool) {
	i, ok := s.byID[industryID]
	if !ok {
		return models.IndustryProfile{}, false
	}
	return s.catalog[i], true
}

// AllIndustries returns the catalog in declaration order.
func (s *IndustryService) AllIndustries() []models.IndustryProfile {
	return s.catalog
}

// TotalMarketSize is a display figure for the landing page.
func (s *IndustryService) TotalMarketSize() string {
	return "$14T+"
}
