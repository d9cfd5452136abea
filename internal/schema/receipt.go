package schema

// ReceiptSchemaName identifies the receipt schema in extraction requests.
const ReceiptSchemaName = "receipt"

// Receipt returns the JSON Schema for receipt extraction.
func Receipt() map[string]any {
	money := func() map[string]any {
		return map[string]any{"type": "number", "minimum": 0}
	}

	return map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"merchant": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":      map[string]any{"type": "string"},
					"address":   map[string]any{"type": "string"},
					"phone":     map[string]any{"type": "string"},
					"website":   map[string]any{"type": "string"},
					"taxId":     map[string]any{"type": "string"},
					"storeId":   map[string]any{"type": "string"},
					"chainName": map[string]any{"type": "string"},
				},
			},
			"receiptNumber": map[string]any{"type": "string"},
			"receiptType": map[string]any{
				"type": "string",
				"enum": []any{"sale", "return", "refund", "estimate", "proforma", "other"},
			},
			"timestamp": map[string]any{"type": "string"},
			"paymentMethod": map[string]any{
				"type": "string",
				"enum": []any{
					"cash", "credit", "debit", "check", "gift_card",
					"store_credit", "mobile_payment", "other",
				},
			},
			"totals": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"subtotal": money(),
					"tax":      money(),
					"tip":      money(),
					"discount": money(),
					"total":    money(),
				},
			},
			"currency": map[string]any{
				"type":    "string",
				"pattern": "^[A-Z]{3}$",
			},
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": map[string]any{"type": "string"},
						"sku":         map[string]any{"type": "string"},
						"quantity":    map[string]any{"type": "number", "minimum": 0},
						"unit": map[string]any{
							"type": "string",
							"enum": []any{"ea", "kg", "g", "lb", "oz", "l", "gal", "pc", "pk", "box", "other"},
						},
						"unitPrice":      money(),
						"totalPrice":     money(),
						"discounted":     map[string]any{"type": "boolean"},
						"discountAmount": money(),
						"category":       map[string]any{"type": "string"},
					},
				},
			},
			"taxes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"taxName": map[string]any{"type": "string"},
						"taxType": map[string]any{
							"type": "string",
							"enum": []any{"sales", "vat", "gst", "pst", "hst", "excise", "service", "other"},
						},
						"taxRate":   map[string]any{"type": "number", "minimum": 0, "maximum": 1},
						"taxAmount": money(),
					},
				},
			},
			"payments": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"method": map[string]any{
							"type": "string",
							"enum": []any{
								"cash", "credit", "debit", "check", "gift_card",
								"store_credit", "mobile_payment", "other",
							},
						},
						"cardType": map[string]any{
							"type": "string",
							"enum": []any{
								"visa", "mastercard", "amex", "discover",
								"diners_club", "jcb", "union_pay", "other",
							},
						},
						"lastDigits": map[string]any{
							"type":    "string",
							"pattern": `^\d{4}$`,
						},
						"amount":        money(),
						"transactionId": map[string]any{"type": "string"},
					},
				},
			},
			"notes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"metadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"confidenceScore": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					"currency":        map[string]any{"type": "string"},
					"languageCode":    map[string]any{"type": "string"},
					"timeZone":        map[string]any{"type": "string"},
					"receiptFormat": map[string]any{
						"type": "string",
						"enum": []any{
							"retail", "restaurant", "service", "utility",
							"transportation", "accommodation", "other",
						},
					},
					"sourceImageId": map[string]any{"type": "string"},
					"warnings": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
			"isValidInput": map[string]any{"type": "boolean"},
			"confidence":   map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		},
		"required": []any{"confidence"},
	}
}
