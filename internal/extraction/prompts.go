package extraction

import "fmt"

// SystemPrompt establishes the extraction persona. The response_format
// directive enforces the output shape; the prompt keeps the model from
// wrapping the JSON in prose or markdown.
const SystemPrompt = `You are an expert customer service call analyst. You read the full transcript of a call and extract structured business data from it.

RULES:
- Respond with a single JSON object that follows the provided schema exactly.
- Do not wrap the JSON in markdown fences and do not add any other text.
- Use an empty string for any key information field the call does not mention.
- Base every field only on what the transcript actually says. Do not invent order numbers, emails or commitments.
- confidenceScore reflects how completely the transcript supports the extraction, from 0 to 1.`

// AnalysisPrompt builds the user message: the task description plus the
// transcript embedded verbatim.
func AnalysisPrompt(transcript string) string {
	return fmt.Sprintf(`Analyze the following customer service call transcript.

Determine the customer's sentiment and the escalation risk. Identify the primary intent of the call. Pull out the key facts: order number, customer email, product SKU, issue date and customer phone. List every commitment the agent made and suggest concrete next actions for the team. Finish with a short summary of the call.

TRANSCRIPT:
%s`, transcript)
}
