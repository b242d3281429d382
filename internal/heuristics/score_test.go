package heuristics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadinessScore_BaseOnly(t *testing.T) {
	assert.Equal(t, 35, ReadinessScore("", "", "", 0))
}

func TestReadinessScore_CategoryBonus(t *testing.T) {
	assert.Equal(t, 40, ReadinessScore("", "", "", 1))
	assert.Equal(t, 50, ReadinessScore("", "", "", 3))
	assert.Equal(t, 65, ReadinessScore("", "", "", 6))
}

func TestReadinessScore_CategoryBonusCaps(t *testing.T) {
	// The category bonus saturates at 30.
	assert.Equal(t, ReadinessScore("", "", "", 6), ReadinessScore("", "", "", 7))
	assert.Equal(t, ReadinessScore("", "", "", 6), ReadinessScore("", "", "", 100))
}

func TestReadinessScore_ContextBonuses(t *testing.T) {
	assert.Equal(t, 45, ReadinessScore("Acme", "", "", 0))
	assert.Equal(t, 45, ReadinessScore("", "SDE", "", 0))
	assert.Equal(t, 55, ReadinessScore("Acme", "SDE", "", 0))

	// Whitespace-only context does not count.
	assert.Equal(t, 35, ReadinessScore("   ", "\t", "", 0))
}

func TestReadinessScore_LongJDBonus(t *testing.T) {
	short := strings.Repeat("a", 800)
	long := strings.Repeat("a", 801)
	assert.Equal(t, 35, ReadinessScore("", "", short, 0))
	assert.Equal(t, 45, ReadinessScore("", "", long, 0))
}

func TestReadinessScore_MonotonicInCategoryCount(t *testing.T) {
	prev := -1
	for count := 0; count <= 20; count++ {
		score := ReadinessScore("Acme", "SDE", strings.Repeat("x", 900), count)
		assert.GreaterOrEqual(t, score, prev)
		assert.LessOrEqual(t, score, 100)
		prev = score
	}
}

func TestReadinessScore_Deterministic(t *testing.T) {
	first := ReadinessScore("Acme", "SDE", "jd text", 4)
	second := ReadinessScore("Acme", "SDE", "jd text", 4)
	assert.Equal(t, first, second)
}
