package schema

// CheckSchemaName identifies the check schema in extraction requests.
const CheckSchemaName = "check"

// Check returns the JSON Schema for check extraction. Only confidence is
// required; every business field tolerates absence so sparse OCR output
// still validates.
func Check() map[string]any {
	return map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"checkNumber": map[string]any{"type": "string"},
			"date":        map[string]any{"type": "string"},
			"payee":       map[string]any{"type": "string"},
			"payer":       map[string]any{"type": "string"},
			"amount":      map[string]any{"type": "number", "minimum": 0},
			"amountText":  map[string]any{"type": "string"},
			"memo":        map[string]any{"type": "string"},
			"bankName":    map[string]any{"type": "string"},
			"routingNumber": map[string]any{
				"type":    "string",
				"pattern": `^\d{9}$`,
			},
			"accountNumber": map[string]any{"type": "string"},
			"checkType": map[string]any{
				"type": "string",
				"enum": []any{
					"personal", "business", "cashier", "certified",
					"traveler", "government", "payroll", "money_order", "other",
				},
			},
			"accountType": map[string]any{
				"type": "string",
				"enum": []any{"checking", "savings", "money_market", "other"},
			},
			"signature":      map[string]any{"type": "boolean"},
			"signatureText":  map[string]any{"type": "string"},
			"fractionalCode": map[string]any{"type": "string"},
			"micrLine":       map[string]any{"type": "string"},
			"isValidInput":   map[string]any{"type": "boolean"},
			"confidence":     map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		},
		"required": []any{"confidence"},
	}
}
