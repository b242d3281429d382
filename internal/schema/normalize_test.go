package schema

import (
	"encoding/json"
	"testing"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalRaw() map[string]any {
	return map[string]any{
		"id":        "entry-1",
		"createdAt": "2026-01-02T03:04:05Z",
		"jdText":    "hello world",
	}
}

func TestNormalizeEntry_RejectsUnrecoverableIdentity(t *testing.T) {
	assert.Nil(t, NormalizeEntry(nil))

	raw := minimalRaw()
	raw["id"] = ""
	assert.Nil(t, NormalizeEntry(raw))

	raw = minimalRaw()
	raw["createdAt"] = "not a timestamp"
	assert.Nil(t, NormalizeEntry(raw))

	raw = minimalRaw()
	delete(raw, "createdAt")
	assert.Nil(t, NormalizeEntry(raw))

	raw = minimalRaw()
	raw["jdText"] = "   "
	assert.Nil(t, NormalizeEntry(raw))
}

func TestNormalizeEntry_RepairsMissingFields(t *testing.T) {
	entry := NormalizeEntry(minimalRaw())
	require.NotNil(t, entry)

	assert.Equal(t, "entry-1", entry.ID)
	assert.Equal(t, "2026-01-02T03:04:05Z", entry.CreatedAt)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
	assert.Equal(t, types.DefaultOtherSkills(), entry.ExtractedSkills[types.CategoryOther])
	assert.Empty(t, entry.RoundMapping)
	assert.Empty(t, entry.Checklist)
	assert.Empty(t, entry.Plan7Days)
	assert.Empty(t, entry.Questions)
	assert.Equal(t, 0, entry.BaseScore)
	assert.Equal(t, 0, entry.FinalScore)
	assert.Nil(t, entry.CompanyIntel)

	// Placeholder skills still get confidence entries.
	require.Len(t, entry.SkillConfidenceMap, len(types.DefaultOtherSkills()))
	for _, conf := range entry.SkillConfidenceMap {
		assert.Equal(t, types.ConfidencePractice, conf)
	}
}

func TestNormalizeEntry_TimestampFormats(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-01-02T03:04:05Z", "2026-01-02T03:04:05Z"},
		{"2026-01-02T03:04:05.123Z", "2026-01-02T03:04:05Z"},
		{"2026-01-02T10:00:00+05:30", "2026-01-02T04:30:00Z"},
		{"2026-01-02", "2026-01-02T00:00:00Z"},
	}
	for _, tt := range tests {
		raw := minimalRaw()
		raw["createdAt"] = tt.in
		entry := NormalizeEntry(raw)
		require.NotNil(t, entry, "createdAt %q", tt.in)
		assert.Equal(t, tt.want, entry.CreatedAt, "createdAt %q", tt.in)
	}
}

func TestNormalizeEntry_InvalidUpdatedAtFallsBackToCreatedAt(t *testing.T) {
	raw := minimalRaw()
	raw["updatedAt"] = "garbage"
	entry := NormalizeEntry(raw)
	require.NotNil(t, entry)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
}

func TestNormalizeEntry_LegacyScoreKeys(t *testing.T) {
	raw := minimalRaw()
	raw["baseReadinessScore"] = float64(60)
	entry := NormalizeEntry(raw)
	require.NotNil(t, entry)
	assert.Equal(t, 60, entry.BaseScore)

	raw = minimalRaw()
	raw["readinessScore"] = float64(55)
	entry = NormalizeEntry(raw)
	require.NotNil(t, entry)
	assert.Equal(t, 55, entry.BaseScore)
	assert.Equal(t, 55, entry.FinalScore)
}

func TestNormalizeEntry_SuppliedFinalScoreClampedAndKept(t *testing.T) {
	raw := minimalRaw()
	raw["baseScore"] = float64(50)
	raw["finalScore"] = float64(150)
	entry := NormalizeEntry(raw)
	require.NotNil(t, entry)
	assert.Equal(t, 100, entry.FinalScore)

	// A non-numeric final score is recomputed from the base and confidence.
	raw = minimalRaw()
	raw["baseScore"] = float64(50)
	raw["finalScore"] = "high"
	entry = NormalizeEntry(raw)
	require.NotNil(t, entry)
	assert.Equal(t, ComputeFinalScore(50, entry.SkillConfidenceMap), entry.FinalScore)
}

func TestNormalizeEntry_LegacyPlanKey(t *testing.T) {
	raw := minimalRaw()
	raw["plan"] = []any{
		map[string]any{"day": "Day 1", "focus": "Basics", "tasks": []any{"revise"}},
	}
	entry := NormalizeEntry(raw)
	require.NotNil(t, entry)
	require.Len(t, entry.Plan7Days, 1)
	assert.Equal(t, "Day 1", entry.Plan7Days[0].Day)
}

func TestNormalizeEntry_LegacyChecklistMapShape(t *testing.T) {
	raw := minimalRaw()
	raw["checklist"] = map[string]any{
		"Round 2: DSA": []any{"solve problems"},
		"Round 1: Apt": []any{"practice aptitude"},
	}
	entry := NormalizeEntry(raw)
	require.NotNil(t, entry)
	require.Len(t, entry.Checklist, 2)

	// Map keys come out in sorted order.
	assert.Equal(t, "Round 1: Apt", entry.Checklist[0].RoundTitle)
	assert.Equal(t, "Round 2: DSA", entry.Checklist[1].RoundTitle)
}

func TestNormalizeEntry_LegacyRoundMappingKeys(t *testing.T) {
	raw := minimalRaw()
	raw["roundMapping"] = []any{
		map[string]any{"title": "Round 1", "focus": "DSA", "why": "filtering"},
	}
	entry := NormalizeEntry(raw)
	require.NotNil(t, entry)
	require.Len(t, entry.RoundMapping, 1)
	assert.Equal(t, "Round 1", entry.RoundMapping[0].RoundTitle)
	assert.Equal(t, []string{"DSA"}, entry.RoundMapping[0].FocusAreas)
	assert.Equal(t, "filtering", entry.RoundMapping[0].WhyItMatters)
}

func TestNormalizeEntry_ConfidenceMapRebuilt(t *testing.T) {
	raw := minimalRaw()
	raw["extractedSkills"] = map[string]any{
		"coreCS": []any{"DSA", "OOP"},
	}
	raw["skillConfidenceMap"] = map[string]any{
		"DSA":    "know",
		"OOP":    "invalid value",
		"Kotlin": "know", // stale, not extracted anymore
	}
	entry := NormalizeEntry(raw)
	require.NotNil(t, entry)

	assert.Equal(t, map[string]types.Confidence{
		"DSA": types.ConfidenceKnow,
		"OOP": types.ConfidencePractice,
	}, entry.SkillConfidenceMap)
}

func TestNormalizeEntry_QuestionsCappedAtTen(t *testing.T) {
	questions := make([]any, 12)
	for i := range questions {
		questions[i] = "question"
	}
	questions[3] = "unique question"

	raw := minimalRaw()
	raw["questions"] = questions
	entry := NormalizeEntry(raw)
	require.NotNil(t, entry)
	assert.Len(t, entry.Questions, 10)
}

func TestNormalizeEntry_Idempotent(t *testing.T) {
	raw := minimalRaw()
	raw["company"] = "Infosys"
	raw["role"] = "SDE"
	raw["extractedSkills"] = map[string]any{"coreCS": []any{"DSA"}, "data": []any{"SQL"}}
	raw["baseScore"] = float64(70)
	raw["skillConfidenceMap"] = map[string]any{"DSA": "know"}

	first := NormalizeEntry(raw)
	require.NotNil(t, first)

	// Round-trip the canonical entry through JSON and normalize again.
	data, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTripped map[string]any
	require.NoError(t, json.Unmarshal(data, &roundTripped))

	second := NormalizeEntry(roundTripped)
	require.NotNil(t, second)
	assert.Equal(t, first, second)
}

func TestNormalizeExtractedSkills_DropsUnknownAndBlank(t *testing.T) {
	skills := NormalizeExtractedSkills(map[string]any{
		"coreCS":  []any{" DSA ", "", 42, "OOP"},
		"unknown": []any{"dropped"},
	})

	assert.Equal(t, []string{"DSA", "OOP"}, skills[types.CategoryCoreCS])
	require.Len(t, skills, len(types.Categories()))
	_, hasUnknown := skills["unknown"]
	assert.False(t, hasUnknown)
}

func TestNormalizeExtractedSkills_KeepsSuppliedOther(t *testing.T) {
	skills := NormalizeExtractedSkills(map[string]any{
		"other": []any{"Communication"},
	})
	assert.Equal(t, []string{"Communication"}, skills[types.CategoryOther])
}

func TestComputeFinalScore(t *testing.T) {
	know := types.ConfidenceKnow
	practice := types.ConfidencePractice

	assert.Equal(t, 50, ComputeFinalScore(50, nil))
	assert.Equal(t, 52, ComputeFinalScore(50, map[string]types.Confidence{"a": know}))
	assert.Equal(t, 48, ComputeFinalScore(50, map[string]types.Confidence{"a": practice}))
	assert.Equal(t, 50, ComputeFinalScore(50, map[string]types.Confidence{"a": know, "b": practice}))

	// Clamped at both ends.
	assert.Equal(t, 100, ComputeFinalScore(99, map[string]types.Confidence{"a": know}))
	assert.Equal(t, 0, ComputeFinalScore(1, map[string]types.Confidence{"a": practice}))
}

func TestComputeFinalScore_KnowMinusPracticeSpread(t *testing.T) {
	skills := []string{"a", "b", "c", "d", "e"}
	allKnow := make(map[string]types.Confidence, len(skills))
	allPractice := make(map[string]types.Confidence, len(skills))
	for _, s := range skills {
		allKnow[s] = types.ConfidenceKnow
		allPractice[s] = types.ConfidencePractice
	}

	// Far from the clamp bounds the spread is 4 points per skill.
	spread := ComputeFinalScore(50, allKnow) - ComputeFinalScore(50, allPractice)
	assert.Equal(t, 4*len(skills), spread)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(float64(-5)))
	assert.Equal(t, 100, clampScore(float64(150)))
	assert.Equal(t, 64, clampScore(float64(64)))
	assert.Equal(t, 0, clampScore("not a number"))
	assert.Equal(t, 0, clampScore(nil))
}
