package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// entrySchema is the canonical JSON Schema for a persisted analysis entry.
// The history store validates every serialized entry against it before
// writing; the read path relies on NormalizeEntry instead.
const entrySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "createdAt", "updatedAt", "jdText", "extractedSkills",
               "roundMapping", "checklist", "plan7Days", "questions",
               "baseScore", "skillConfidenceMap", "finalScore"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "createdAt": {"type": "string", "format": "date-time"},
    "updatedAt": {"type": "string", "format": "date-time"},
    "company": {"type": "string"},
    "role": {"type": "string"},
    "jdText": {"type": "string", "minLength": 1},
    "extractedSkills": {
      "type": "object",
      "required": ["coreCS", "languages", "web", "data", "cloud", "testing", "other"],
      "additionalProperties": false,
      "properties": {
        "coreCS": {"$ref": "#/definitions/stringList"},
        "languages": {"$ref": "#/definitions/stringList"},
        "web": {"$ref": "#/definitions/stringList"},
        "data": {"$ref": "#/definitions/stringList"},
        "cloud": {"$ref": "#/definitions/stringList"},
        "testing": {"$ref": "#/definitions/stringList"},
        "other": {"$ref": "#/definitions/stringList"}
      }
    },
    "roundMapping": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["roundTitle", "focusAreas", "whyItMatters"],
        "properties": {
          "roundTitle": {"type": "string", "minLength": 1},
          "focusAreas": {"$ref": "#/definitions/stringList"},
          "whyItMatters": {"type": "string"}
        }
      }
    },
    "checklist": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["roundTitle", "items"],
        "properties": {
          "roundTitle": {"type": "string", "minLength": 1},
          "items": {"$ref": "#/definitions/stringList", "maxItems": 8}
        }
      }
    },
    "plan7Days": {
      "type": "array",
      "maxItems": 7,
      "items": {
        "type": "object",
        "required": ["day", "focus", "tasks"],
        "properties": {
          "day": {"type": "string", "minLength": 1},
          "focus": {"type": "string"},
          "tasks": {"$ref": "#/definitions/stringList"}
        }
      }
    },
    "questions": {"$ref": "#/definitions/stringList", "maxItems": 10},
    "baseScore": {"type": "integer", "minimum": 0, "maximum": 100},
    "skillConfidenceMap": {
      "type": "object",
      "additionalProperties": {"type": "string", "enum": ["know", "practice"]}
    },
    "finalScore": {"type": "integer", "minimum": 0, "maximum": 100},
    "companyIntel": {
      "type": ["object", "null"],
      "properties": {
        "companyName": {"type": "string"},
        "industry": {"type": "string"},
        "sizeCategory": {"type": "string"},
        "hiringFocus": {"type": "string"},
        "note": {"type": "string"}
      }
    }
  },
  "definitions": {
    "stringList": {"type": "array", "items": {"type": "string"}}
  }
}`

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("entry validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

var entrySchemaLoader = gojsonschema.NewStringLoader(entrySchema)

// ValidateEntryJSON validates a serialized analysis entry against the
// canonical entry schema.
func ValidateEntryJSON(data []byte) error {
	result, err := gojsonschema.Validate(entrySchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to run entry schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
