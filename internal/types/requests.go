package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the API request to analyze a job description.
// Company and role are optional context; the JD text is required unless a
// job URL is supplied for ingestion.
type AnalyzeRequest struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jdText" validate:"required_without=JobURL"`
	JobURL  string `json:"jobUrl,omitempty" validate:"omitempty,url"`
}

// ConfidenceUpdateRequest is the API request to toggle one skill's confidence.
type ConfidenceUpdateRequest struct {
	Skill      string `json:"skill" validate:"required,min=1"`
	Confidence string `json:"confidence" validate:"required,oneof=know practice"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ConfidenceUpdateRequest using the validator.
func (r *ConfidenceUpdateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
