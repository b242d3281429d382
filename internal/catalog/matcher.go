package catalog

import (
	"regexp"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

// Extraction is the result of scanning job description text against the
// catalog. Skills always contains every category key; FlatSkills lists all
// detected labels in catalog order.
type Extraction struct {
	Skills                     types.ExtractedSkills
	FlatSkills                 []string
	DetectedCategoryCount      int
	HasDetectedTechnicalSkills bool
}

// ExtractSkills scans text against the catalog and returns the detected
// skills per category. Matching is case-insensitive and unanchored, and
// categories are independent: one textual cue may satisfy patterns in
// several categories. When no technical category detects anything, the
// "other" category is populated with the default placeholder set and
// HasDetectedTechnicalSkills is false.
func ExtractSkills(text string) Extraction {
	skills := types.ExtractedSkills{}
	for _, category := range types.Categories() {
		skills[category] = []string{}
	}

	detectedCategories := 0
	var flat []string
	for _, ce := range categorySkills {
		for _, e := range ce.Entries {
			if matchesAny(e.Patterns, text) {
				skills[ce.Category] = append(skills[ce.Category], e.Label)
				flat = append(flat, e.Label)
			}
		}
		if len(skills[ce.Category]) > 0 {
			detectedCategories++
		}
	}

	if detectedCategories == 0 {
		skills[types.CategoryOther] = types.DefaultOtherSkills()
		return Extraction{
			Skills:                     skills,
			FlatSkills:                 []string{},
			DetectedCategoryCount:      0,
			HasDetectedTechnicalSkills: false,
		}
	}

	return Extraction{
		Skills:                     skills,
		FlatSkills:                 flat,
		DetectedCategoryCount:      detectedCategories,
		HasDetectedTechnicalSkills: true,
	}
}

func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
