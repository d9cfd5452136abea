package port

import (
	"context"
	"encoding/json"
)

// ExtractionRequest carries the OCR text and the JSON Schema the model
// output must conform to. Created per call and consumed once.
type ExtractionRequest struct {
	Text       string
	SchemaName string
	Schema     map[string]any
}

// ExtractionResult is the scored output of a JSON extraction. JSON always
// contains an isValidInput flag and a confidence field mirroring Confidence.
type ExtractionResult struct {
	JSON       json.RawMessage
	Confidence float64
}

// JSONExtractor abstracts an LLM-backed structured extraction call.
type JSONExtractor interface {
	Extract(ctx context.Context, req ExtractionRequest) (*ExtractionResult, error)
}

// DocumentExtractor turns raw OCR text into a typed, normalized document
// entity (a *domain.Check or *domain.Receipt) plus an extraction confidence.
type DocumentExtractor interface {
	ExtractFromText(ctx context.Context, ocrText string) (any, float64, error)
}
