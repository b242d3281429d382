// Package schema defines the canonical shape of a persisted analysis entry
// and the normalization layer that coerces or rejects arbitrary stored data.
// Normalization is total: every field except the entry identity (id,
// createdAt, jdText) is repaired rather than rejected.
package schema

import (
	"sort"
	"strings"
	"time"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

// clampScore coerces a raw numeric value into the [0,100] score range.
// Non-numeric input becomes 0.
func clampScore(value any) int {
	n, ok := toNumber(value)
	if !ok {
		n = 0
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return int(n)
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// normalizeString coerces a raw value to a string; anything that is not a
// string becomes empty.
func normalizeString(value any) string {
	s, _ := value.(string)
	return s
}

// normalizeStringArray coerces a raw value to a list of non-blank trimmed
// strings. Non-array input and non-string elements are dropped.
func normalizeStringArray(value any) []string {
	raw, ok := value.([]any)
	if !ok {
		return []string{}
	}
	result := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		result = append(result, s)
	}
	return result
}

// NormalizeExtractedSkills repairs a raw skills mapping into the canonical
// shape: every category key present, and the default placeholder set in
// "other" when no technical category has any skill and "other" is empty.
func NormalizeExtractedSkills(value any) types.ExtractedSkills {
	raw, _ := value.(map[string]any)

	normalized := types.ExtractedSkills{}
	for _, category := range types.Categories() {
		normalized[category] = normalizeStringArray(raw[string(category)])
	}

	technicalCount := 0
	for _, category := range types.TechnicalCategories() {
		technicalCount += len(normalized[category])
	}
	if technicalCount == 0 && len(normalized[types.CategoryOther]) == 0 {
		normalized[types.CategoryOther] = types.DefaultOtherSkills()
	}

	return normalized
}

// DefaultSkillConfidenceMap builds the confidence map for a fresh entry:
// every extracted skill starts at "practice".
func DefaultSkillConfidenceMap(skills types.ExtractedSkills) map[string]types.Confidence {
	m := make(map[string]types.Confidence)
	for _, skill := range skills.Flatten() {
		m[skill] = types.ConfidencePractice
	}
	return m
}

// NormalizeSkillConfidenceMap rebuilds the confidence map against the
// current extracted skills: every present skill gets exactly one entry,
// unknown or invalid values default to "practice", and stale entries for
// skills no longer extracted are discarded.
func NormalizeSkillConfidenceMap(value any, skills types.ExtractedSkills) map[string]types.Confidence {
	raw, _ := value.(map[string]any)

	normalized := DefaultSkillConfidenceMap(skills)
	for skill, conf := range raw {
		if _, present := normalized[skill]; !present {
			continue
		}
		if normalizeString(conf) == string(types.ConfidenceKnow) {
			normalized[skill] = types.ConfidenceKnow
		} else {
			normalized[skill] = types.ConfidencePractice
		}
	}
	return normalized
}

// ComputeFinalScore applies the confidence delta to the base score: +2 for
// every "know", -2 for every "practice", clamped to [0,100]. Idempotent and
// order-independent over the map.
func ComputeFinalScore(baseScore int, confidence map[string]types.Confidence) int {
	delta := 0
	for _, value := range confidence {
		if value == types.ConfidenceKnow {
			delta += 2
		} else {
			delta -= 2
		}
	}
	return clampScore(baseScore + delta)
}

func normalizeChecklist(value any) []types.RoundChecklist {
	if raw, ok := value.([]any); ok {
		result := []types.RoundChecklist{}
		for _, item := range raw {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			title := normalizeString(m["roundTitle"])
			if title == "" {
				title = normalizeString(m["title"])
			}
			if title == "" {
				continue
			}
			result = append(result, types.RoundChecklist{
				RoundTitle: title,
				Items:      normalizeStringArray(m["items"]),
			})
		}
		return result
	}

	// Legacy shape: a map of round title to item list.
	if raw, ok := value.(map[string]any); ok {
		result := []types.RoundChecklist{}
		for _, title := range sortedKeys(raw) {
			result = append(result, types.RoundChecklist{
				RoundTitle: title,
				Items:      normalizeStringArray(raw[title]),
			})
		}
		return result
	}

	return []types.RoundChecklist{}
}

func normalizeRoundMapping(value any) []types.RoundFocus {
	raw, ok := value.([]any)
	if !ok {
		return []types.RoundFocus{}
	}

	result := []types.RoundFocus{}
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title := normalizeString(m["roundTitle"])
		if title == "" {
			title = normalizeString(m["title"])
		}
		if title == "" {
			continue
		}

		focusAreas := normalizeStringArray(m["focusAreas"])
		if len(focusAreas) == 0 {
			// Legacy shape: a single focus string.
			if focus := strings.TrimSpace(normalizeString(m["focus"])); focus != "" {
				focusAreas = []string{focus}
			}
		}

		why := normalizeString(m["whyItMatters"])
		if why == "" {
			why = normalizeString(m["why"])
		}

		result = append(result, types.RoundFocus{
			RoundTitle:   title,
			FocusAreas:   focusAreas,
			WhyItMatters: why,
		})
	}
	return result
}

func normalizePlan7Days(value any) []types.DayPlan {
	raw, ok := value.([]any)
	if !ok {
		return []types.DayPlan{}
	}

	result := []types.DayPlan{}
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		day := normalizeString(m["day"])
		if day == "" {
			continue
		}
		result = append(result, types.DayPlan{
			Day:   day,
			Focus: normalizeString(m["focus"]),
			Tasks: normalizeStringArray(m["tasks"]),
		})
	}
	return result
}

func normalizeQuestions(value any) []string {
	questions := normalizeStringArray(value)
	if len(questions) > 10 {
		questions = questions[:10]
	}
	return questions
}

func normalizeCompanyIntel(value any) *types.CompanyIntel {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	return &types.CompanyIntel{
		CompanyName:  normalizeString(m["companyName"]),
		Industry:     normalizeString(m["industry"]),
		SizeCategory: normalizeString(m["sizeCategory"]),
		HiringFocus:  normalizeString(m["hiringFocus"]),
		Note:         normalizeString(m["note"]),
	}
}

// timestampLayouts are the accepted input formats; output is always RFC3339 UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// normalizeTimestamp parses a raw timestamp value, falling back to the given
// string when missing or invalid. Returns "" when nothing parses.
func normalizeTimestamp(value any, fallback string) string {
	source := normalizeString(value)
	if source == "" {
		source = fallback
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, source); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return ""
}

// NormalizeEntry coerces an arbitrary stored record into a canonical
// AnalysisEntry, or returns nil when the record's identity is unrecoverable:
// empty id, unparseable createdAt, or blank jdText. Every other field is
// repaired individually.
func NormalizeEntry(raw map[string]any) *types.AnalysisEntry {
	if raw == nil {
		return nil
	}

	id := normalizeString(raw["id"])
	createdAt := normalizeTimestamp(raw["createdAt"], "")
	jdText := normalizeString(raw["jdText"])

	if id == "" || createdAt == "" || strings.TrimSpace(jdText) == "" {
		return nil
	}

	extractedSkills := NormalizeExtractedSkills(raw["extractedSkills"])

	baseScoreRaw := firstPresent(raw, "baseScore", "baseReadinessScore", "readinessScore")
	baseScore := clampScore(baseScoreRaw)

	confidence := NormalizeSkillConfidenceMap(raw["skillConfidenceMap"], extractedSkills)

	finalScore := ComputeFinalScore(baseScore, confidence)
	if supplied := firstPresent(raw, "finalScore", "readinessScore"); supplied != nil {
		if _, ok := toNumber(supplied); ok {
			finalScore = clampScore(supplied)
		}
	}

	updatedAt := normalizeTimestamp(raw["updatedAt"], createdAt)
	if updatedAt == "" {
		updatedAt = createdAt
	}

	plan := raw["plan7Days"]
	if plan == nil {
		plan = raw["plan"]
	}

	return &types.AnalysisEntry{
		ID:                 id,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
		Company:            normalizeString(raw["company"]),
		Role:               normalizeString(raw["role"]),
		JDText:             jdText,
		ExtractedSkills:    extractedSkills,
		RoundMapping:       normalizeRoundMapping(raw["roundMapping"]),
		Checklist:          normalizeChecklist(raw["checklist"]),
		Plan7Days:          normalizePlan7Days(plan),
		Questions:          normalizeQuestions(raw["questions"]),
		BaseScore:          baseScore,
		SkillConfidenceMap: confidence,
		FinalScore:         finalScore,
		CompanyIntel:       normalizeCompanyIntel(raw["companyIntel"]),
	}
}

// firstPresent returns the first non-nil value among the given keys.
func firstPresent(raw map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, ok := raw[key]; ok && value != nil {
			return value
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
