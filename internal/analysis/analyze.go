// Package analysis composes the catalog matcher and the heuristic generators
// into one immutable analysis result, and materializes results as persistable
// entries.
package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/catalog"
	"github.com/iamkaran-ai/kodnest-premium-app/internal/heuristics"
	"github.com/iamkaran-ai/kodnest-premium-app/internal/schema"
	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

// Analyze runs the full analysis for one (company, role, jdText) triple.
// Empty company and role are valid optional context. The function is pure
// and total: the same inputs always produce the same result.
func Analyze(company, role, jdText string) *types.AnalysisResult {
	extraction := catalog.ExtractSkills(jdText)
	intel := heuristics.CompanyIntel(company, role, jdText)

	return &types.AnalysisResult{
		ExtractedSkills:            extraction.Skills,
		HasDetectedTechnicalSkills: extraction.HasDetectedTechnicalSkills,
		BaseScore:                  heuristics.ReadinessScore(company, role, jdText, extraction.DetectedCategoryCount),
		RoundMapping:               heuristics.RoundMapping(intel, extraction.Skills),
		Checklist:                  heuristics.Checklist(extraction.Skills),
		Plan7Days:                  heuristics.SevenDayPlan(extraction.Skills, extraction.HasDetectedTechnicalSkills),
		Questions:                  heuristics.Questions(extraction.FlatSkills, extraction.HasDetectedTechnicalSkills),
		CompanyIntel:               intel,
	}
}

// NewEntry materializes an analysis result as a persistable entry with a
// fresh id, default confidence map, and derived final score.
func NewEntry(result *types.AnalysisResult, company, role, jdText string, now time.Time) *types.AnalysisEntry {
	confidence := schema.DefaultSkillConfidenceMap(result.ExtractedSkills)
	createdAt := now.UTC().Format(time.RFC3339)

	return &types.AnalysisEntry{
		ID:                 uuid.NewString(),
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
		Company:            company,
		Role:               role,
		JDText:             jdText,
		ExtractedSkills:    result.ExtractedSkills,
		RoundMapping:       result.RoundMapping,
		Checklist:          result.Checklist,
		Plan7Days:          result.Plan7Days,
		Questions:          result.Questions,
		BaseScore:          result.BaseScore,
		SkillConfidenceMap: confidence,
		FinalScore:         schema.ComputeFinalScore(result.BaseScore, confidence),
		CompanyIntel:       result.CompanyIntel,
	}
}
