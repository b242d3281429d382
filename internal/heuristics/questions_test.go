package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_BankLookupBySkill(t *testing.T) {
	questions := Questions([]string{"React", "SQL"}, true)

	assert.Equal(t, questionBank["React"], questions[0])
	assert.Equal(t, questionBank["SQL"], questions[1])
}

func TestQuestions_TechnicalFallbackToppedUp(t *testing.T) {
	questions := Questions([]string{"Go"}, true)

	require.Len(t, questions, 7)
	assert.Equal(t, questionBank["Go"], questions[0])
	assert.Equal(t, technicalFallbackQuestions, questions[1:])
}

func TestQuestions_GeneralFallbackForNoSignal(t *testing.T) {
	questions := Questions(nil, false)
	assert.Equal(t, generalFallbackQuestions, questions)
}

func TestQuestions_SkipsSkillsWithoutBankEntry(t *testing.T) {
	// Catalog "other" labels have no bank questions.
	questions := Questions([]string{"Communication", "Problem solving"}, false)
	assert.Equal(t, generalFallbackQuestions, questions)
}

func TestQuestions_CappedAtTen(t *testing.T) {
	flat := []string{
		"DSA", "OOP", "DBMS", "OS", "Networks",
		"Java", "Python", "JavaScript", "TypeScript", "Go",
		"React", "SQL",
	}
	questions := Questions(flat, true)
	assert.Len(t, questions, 10)
}

func TestQuestions_Deduplicated(t *testing.T) {
	questions := Questions([]string{"React", "React", "SQL"}, true)

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		assert.False(t, seen[q], "duplicate question %q", q)
		seen[q] = true
	}
}
