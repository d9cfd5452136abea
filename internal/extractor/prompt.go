package extractor

import (
	"encoding/json"
	"fmt"
)

// SystemPrompt is the extraction contract communicated to the model. The
// rules bias the model toward accuracy over completeness so that sparse or
// unreadable input produces empty fields and low confidence rather than
// plausible-looking inventions.
const SystemPrompt = `You are a document data extraction assistant. You convert OCR text from scanned financial documents into structured JSON.

EXTRACTION RULES:
- Extract ONLY information that is clearly present in the text.
- Use empty strings, zero, or null for any field you are not certain about. Never guess or invent values.
- If the text looks sparse, garbled, or does not resemble the expected document type, set "isValidInput" to false and scale "confidence" down accordingly.
- Prefer accuracy over completeness: a missing field is always better than a fabricated one.
- Return ONLY valid JSON with no markdown formatting, no code fences, no explanation.`

// BuildUserPrompt embeds the target schema and the OCR text into the user
// turn of the extraction request.
func BuildUserPrompt(schemaName string, schema map[string]any, text string) string {
	prompt := fmt.Sprintf("Extract the data of this %s into a JSON object.", schemaName)
	if schema != nil {
		if b, err := json.MarshalIndent(schema, "", "  "); err == nil {
			prompt += "\n\nThe object must conform to this JSON Schema:\n" + string(b)
		}
	}
	prompt += "\n\nOCR text of the document:\n\"\"\"\n" + text + "\n\"\"\""
	return prompt
}
