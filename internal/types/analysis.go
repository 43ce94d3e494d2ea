// Package types provides type definitions for structured data used throughout the job-skills-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DetectedSkill represents a single skill mention found in one document
type DetectedSkill struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"` // 0.0 to 1.0, strategy certainty
}

// DocumentAnalysis represents the full extraction result for one document
type DocumentAnalysis struct {
	Skills           []DetectedSkill `json:"skills"`
	TotalSkillsFound int             `json:"total_skills_found"`
	Categories       map[string]int  `json:"categories"` // category -> distinct skill count
	Error            string          `json:"error,omitempty"`
}

// AggregatedSkill represents a skill rolled up across a batch of documents
type AggregatedSkill struct {
	Name           string  `json:"name"`
	TotalCount     int     `json:"total_count"`
	AppearedInJobs int     `json:"appeared_in_jobs"`
	Percentage     float64 `json:"percentage"` // share of documents mentioning the skill, 0-100
	Category       string  `json:"category"`
}

// BatchAnalysis represents aggregated results across multiple documents
type BatchAnalysis struct {
	TotalJobs          int                `json:"total_jobs"`
	AggregatedSkills   []AggregatedSkill  `json:"aggregated_skills"`
	TopSkills          []AggregatedSkill  `json:"top_skills"`
	CategoryBreakdown  map[string]int     `json:"category_breakdown"`
	IndividualAnalyses []DocumentAnalysis `json:"individual_analyses"`
}

// HasSkill reports whether the analysis contains a skill with the given canonical name.
func (a *DocumentAnalysis) HasSkill(name string) bool {
	for _, s := range a.Skills {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Skill returns the detected skill with the given canonical name, or nil.
func (a *DocumentAnalysis) Skill(name string) *DetectedSkill {
	for i := range a.Skills {
		if a.Skills[i].Name == name {
			return &a.Skills[i]
		}
	}
	return nil
}
