package types

// Confidence is a user-asserted self-rating for one detected skill.
type Confidence string

// Confidence values. Anything else normalizes to ConfidencePractice.
const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// AnalysisEntry is the canonical persisted form of one analysis. Timestamps
// are RFC3339 UTC strings; the normalizer guarantees createdAt parses and
// updatedAt defaults to createdAt.
type AnalysisEntry struct {
	ID                 string                `json:"id"`
	CreatedAt          string                `json:"createdAt"`
	UpdatedAt          string                `json:"updatedAt"`
	Company            string                `json:"company"`
	Role               string                `json:"role"`
	JDText             string                `json:"jdText"`
	ExtractedSkills    ExtractedSkills       `json:"extractedSkills"`
	RoundMapping       []RoundFocus          `json:"roundMapping"`
	Checklist          []RoundChecklist      `json:"checklist"`
	Plan7Days          []DayPlan             `json:"plan7Days"`
	Questions          []string              `json:"questions"`
	BaseScore          int                   `json:"baseScore"`
	SkillConfidenceMap map[string]Confidence `json:"skillConfidenceMap"`
	FinalScore         int                   `json:"finalScore"`
	CompanyIntel       *CompanyIntel         `json:"companyIntel"`
}
