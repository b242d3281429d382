package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	valid := AnalyzeRequest{JDText: "some job description"}
	assert.NoError(t, valid.Validate())

	urlOnly := AnalyzeRequest{JobURL: "https://example.com/job/123"}
	assert.NoError(t, urlOnly.Validate())

	neither := AnalyzeRequest{Company: "Acme"}
	assert.Error(t, neither.Validate())

	badURL := AnalyzeRequest{JobURL: "not a url"}
	assert.Error(t, badURL.Validate())
}

func TestConfidenceUpdateRequest_Validate(t *testing.T) {
	know := ConfidenceUpdateRequest{Skill: "DSA", Confidence: "know"}
	assert.NoError(t, know.Validate())

	practice := ConfidenceUpdateRequest{Skill: "SQL", Confidence: "practice"}
	assert.NoError(t, practice.Validate())

	missingSkill := ConfidenceUpdateRequest{Confidence: "know"}
	assert.Error(t, missingSkill.Validate())

	badValue := ConfidenceUpdateRequest{Skill: "DSA", Confidence: "maybe"}
	assert.Error(t, badValue.Validate())
}
