package extraction

import "encoding/json"

// Analysis is the structured business data extracted from one call transcript.
type Analysis struct {
	Sentiment        string         `json:"sentiment"`        // positive, neutral, negative, frustrated
	EscalationRisk   string         `json:"escalationRisk"`   // low, medium, high
	PrimaryIntent    string         `json:"primaryIntent"`    // Why the customer called
	KeyInformation   KeyInformation `json:"keyInformation"`   // Key facts mentioned in the call
	SuggestedActions []string       `json:"suggestedActions"` // Concrete next steps for the agent
	Commitments      []string       `json:"commitments"`      // What the agent promised
	ConfidenceScore  float64        `json:"confidenceScore"`  // 0-1
	Summary          string         `json:"summary"`
}

// KeyInformation holds the five key facts pulled from the transcript. Fields
// not mentioned in the call come back as empty strings.
type KeyInformation struct {
	OrderNumber   string `json:"orderNumber"`
	CustomerEmail string `json:"customerEmail"`
	ProductSKU    string `json:"productSKU"`
	IssueDate     string `json:"issueDate"`
	CustomerPhone string `json:"customerPhone"`
}

// SchemaName identifies the schema in the response_format directive.
const SchemaName = "call_analysis"

// analysisSchemaJSON is the single source of truth for the output contract.
// The same document is sent to the provider as the strict response format and
// compiled locally for re-validation. The schema is closed: every field is
// required and no extra properties are allowed, at the top level or inside
// keyInformation.
const analysisSchemaJSON = `{
  "type": "object",
  "properties": {
    "sentiment": {
      "type": "string",
      "enum": ["positive", "neutral", "negative", "frustrated"]
    },
    "escalationRisk": {
      "type": "string",
      "enum": ["low", "medium", "high"]
    },
    "primaryIntent": {
      "type": "string",
      "description": "Why the customer called"
    },
    "keyInformation": {
      "type": "object",
      "properties": {
        "orderNumber": {"type": "string"},
        "customerEmail": {"type": "string"},
        "productSKU": {"type": "string"},
        "issueDate": {"type": "string"},
        "customerPhone": {"type": "string"}
      },
      "required": ["orderNumber", "customerEmail", "productSKU", "issueDate", "customerPhone"],
      "additionalProperties": false
    },
    "suggestedActions": {
      "type": "array",
      "items": {"type": "string"}
    },
    "commitments": {
      "type": "array",
      "items": {"type": "string"}
    },
    "confidenceScore": {
      "type": "number",
      "minimum": 0,
      "maximum": 1
    },
    "summary": {
      "type": "string"
    }
  },
  "required": ["sentiment", "escalationRisk", "primaryIntent", "keyInformation", "suggestedActions", "commitments", "confidenceScore", "summary"],
  "additionalProperties": false
}`

// AnalysisSchema returns a fresh copy of the schema document so callers can
// display it or validate against it without being able to mutate the shared
// contract.
func AnalysisSchema() map[string]any {
	var schema map[string]any
	if err := json.Unmarshal([]byte(analysisSchemaJSON), &schema); err != nil {
		panic(err)
	}
	return schema
}

// responseFormat builds the strict json_schema directive attached to every
// completion request.
func responseFormat() map[string]any {
	return map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   SchemaName,
			"strict": true,
			"schema": AnalysisSchema(),
		},
	}
}
