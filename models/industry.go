package models

import "fmt"

// WorkflowStep is one stage of an industry's authentication pipeline.
// Duration is a display string ("3-5 days"), not machine-parsed.
type WorkflowStep struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Duration    string `json:"duration"`
}

// IndustryProfile is a static catalog entry: keywords drive classification,
// the rest drives workflow/story/feature generation. Profiles are never
// mutated after DefaultIndustries() builds them.
type IndustryProfile struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	Keywords             []string       `json:"keywords"`
	Icon                 string         `json:"icon"`
	MarketSize           string         `json:"market_size"`
	WorkflowSteps        []WorkflowStep `json:"workflow_steps"`
	StoryTemplate        string         `json:"story_template"`
	AuthenticityFeatures []string       `json:"authenticity_features"`
}

// DefaultIndustryID is the fallback profile used when classification finds no
// keyword match or a lookup gets an unknown id. Classifier and generators
// must share this one constant so they can never drift apart.
const DefaultIndustryID = "electronics"

// ValidateIndustries checks catalog integrity at startup: unique ids, ordered
// workflow steps with unique ids per profile, non-empty keyword lists, and a
// present default profile.
func ValidateIndustries(profiles []IndustryProfile) error {
	seen := make(map[string]bool, len(profiles))
	hasDefault := false
	for _, p := range profiles {
		if p.ID == "" {
			return fmt.Errorf("industry with empty id (name=%q)", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate industry id %q", p.ID)
		}
		seen[p.ID] = true
		if p.ID == DefaultIndustryID {
			hasDefault = true
		}
		if len(p.Keywords) == 0 {
			return fmt.Errorf("industry %q has no keywords", p.ID)
		}
		if len(p.WorkflowSteps) == 0 {
			return fmt.Errorf("industry %q has no workflow steps", p.ID)
		}
		stepSeen := make(map[string]bool, len(p.WorkflowSteps))
		for _, step := range p.WorkflowSteps {
			if step.ID == "" {
				return fmt.Errorf("industry %q has a workflow step with empty id", p.ID)
			}
			if stepSeen[step.ID] {
				return fmt.Errorf("industry %q has duplicate workflow step %q", p.ID, step.ID)
			}
			stepSeen[step.ID] = true
		}
		if p.StoryTemplate == "" {
			return fmt.Errorf("industry %q has no story template", p.ID)
		}
	}
	if !hasDefault {
		return fmt.Errorf("default industry %q missing from catalog", DefaultIndustryID)
	}
	return nil
}
