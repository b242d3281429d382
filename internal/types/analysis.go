// Package types provides type definitions for structured data used throughout the prep engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillCategory identifies one bucket of the fixed skill catalog.
// The set of categories is closed and known at build time.
type SkillCategory string

// Skill categories in catalog order.
const (
	CategoryCoreCS    SkillCategory = "coreCS"
	CategoryLanguages SkillCategory = "languages"
	CategoryWeb       SkillCategory = "web"
	CategoryData      SkillCategory = "data"
	CategoryCloud     SkillCategory = "cloud"
	CategoryTesting   SkillCategory = "testing"
	CategoryOther     SkillCategory = "other"
)

// Categories returns all skill categories in catalog order.
func Categories() []SkillCategory {
	return []SkillCategory{
		CategoryCoreCS,
		CategoryLanguages,
		CategoryWeb,
		CategoryData,
		CategoryCloud,
		CategoryTesting,
		CategoryOther,
	}
}

// TechnicalCategories returns every category except "other".
func TechnicalCategories() []SkillCategory {
	return []SkillCategory{
		CategoryCoreCS,
		CategoryLanguages,
		CategoryWeb,
		CategoryData,
		CategoryCloud,
		CategoryTesting,
	}
}

// DefaultOtherSkills returns the placeholder skill set used when a job
// description yields no technical detections at all.
func DefaultOtherSkills() []string {
	return []string{"Communication", "Problem solving", "Basic coding", "Projects"}
}

// ExtractedSkills maps every skill category to the ordered, distinct skill
// labels detected for it. Every category key is present after normalization,
// possibly with an empty list.
type ExtractedSkills map[SkillCategory][]string

// Flatten returns all skill labels across categories in catalog order.
func (e ExtractedSkills) Flatten() []string {
	var flat []string
	for _, category := range Categories() {
		flat = append(flat, e[category]...)
	}
	return flat
}

// Has reports whether the given skill label was detected in any category.
func (e ExtractedSkills) Has(skill string) bool {
	for _, labels := range e {
		for _, label := range labels {
			if label == skill {
				return true
			}
		}
	}
	return false
}

// HasAny reports whether at least one of the given skill labels was detected.
func (e ExtractedSkills) HasAny(skills ...string) bool {
	for _, skill := range skills {
		if e.Has(skill) {
			return true
		}
	}
	return false
}

// RoundFocus describes one interview round in the round mapping narrative.
type RoundFocus struct {
	RoundTitle   string   `json:"roundTitle"`
	FocusAreas   []string `json:"focusAreas"`
	WhyItMatters string   `json:"whyItMatters"`
}

// RoundChecklist holds the revision items for one interview round.
type RoundChecklist struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// DayPlan is one day of the 7-day study plan.
type DayPlan struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// CompanyIntel is the heuristic company profile inferred from the company
// name and the job description context. Absent when no company name is given.
type CompanyIntel struct {
	CompanyName  string `json:"companyName"`
	Industry     string `json:"industry"`
	SizeCategory string `json:"sizeCategory"`
	HiringFocus  string `json:"hiringFocus"`
	Note         string `json:"note"`
}

// Company size category labels.
const (
	SizeEnterprise = "Enterprise (2000+)"
	SizeMidSize    = "Mid-size (200–2000)"
	SizeStartup    = "Startup (<200)"
)

// AnalysisResult is the immutable output of analyzing one
// (company, role, job description) triple. It is transient; persistence goes
// through AnalysisEntry.
type AnalysisResult struct {
	ExtractedSkills            ExtractedSkills  `json:"extractedSkills"`
	HasDetectedTechnicalSkills bool             `json:"hasDetectedTechnicalSkills"`
	BaseScore                  int              `json:"baseScore"`
	RoundMapping               []RoundFocus     `json:"roundMapping"`
	Checklist                  []RoundChecklist `json:"checklist"`
	Plan7Days                  []DayPlan        `json:"plan7Days"`
	Questions                  []string         `json:"questions"`
	CompanyIntel               *CompanyIntel    `json:"companyIntel"`
}
