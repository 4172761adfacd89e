package catalog

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// dataSchema is the shape contract for the bundled data file. It pins the
// fields the adapter relies on while leaving the alias spellings optional.
const dataSchema = `{
  "type": "object",
  "required": ["schemes"],
  "properties": {
    "schemes": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "bank_name"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "bank_name": {"type": "string", "minLength": 1},
          "scheme_name": {"type": "string"},
          "name": {"type": "string"},
          "scheme_title": {"type": "string"},
          "scheme_category": {"type": "string"},
          "category": {"type": "string"},
          "gender": {"type": "string", "enum": ["Male", "Female", "Any", ""]},
          "eligibility_criteria": {"type": "array", "items": {"type": "string"}},
          "eligible_occupations": {"type": "array", "items": {"type": "string"}},
          "suitable_for": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

// validateData checks the raw file bytes against the schema before any
// decoding into Go structs happens.
func validateData(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(dataSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("scheme data failed validation: %v", errs)
	}

	return nil
}
