// Package heuristics provides the pure generator functions that turn
// extracted skills and optional company/role context into a readiness score,
// round checklists, a 7-day plan, interview questions, company intel, and a
// round-by-round interview mapping. All functions are total: missing inputs
// are treated as empty.
package heuristics

import "strings"

const (
	baseReadinessScore   = 35
	categoryScoreStep    = 5
	categoryScoreCap     = 30
	contextScoreBonus    = 10
	longJDThresholdChars = 800
	maxReadinessScore    = 100
)

// ReadinessScore derives the deterministic base readiness score from the
// number of detected skill categories and the completeness of the context.
// Monotonic non-decreasing in detectedCategoryCount, clamped to [0,100].
func ReadinessScore(company, role, jdText string, detectedCategoryCount int) int {
	score := baseReadinessScore

	categoryBonus := detectedCategoryCount * categoryScoreStep
	if categoryBonus > categoryScoreCap {
		categoryBonus = categoryScoreCap
	}
	score += categoryBonus

	if strings.TrimSpace(company) != "" {
		score += contextScoreBonus
	}
	if strings.TrimSpace(role) != "" {
		score += contextScoreBonus
	}
	if len(strings.TrimSpace(jdText)) > longJDThresholdChars {
		score += contextScoreBonus
	}

	if score > maxReadinessScore {
		score = maxReadinessScore
	}
	if score < 0 {
		score = 0
	}
	return score
}
