package extraction

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var compiledSchema = jsonschema.MustCompileString("analysis.json", analysisSchemaJSON)

// ValidateAnalysisJSON checks raw JSON content against the analysis schema.
// The provider enforces the schema at generation time; this is the local
// re-check for callers that do not want to trust that enforcement alone.
func ValidateAnalysisJSON(raw []byte) error {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := compiledSchema.Validate(value); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return nil
}
