package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/normalizer"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/port"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/schema"
)

// CheckExtractor wraps a JSON extractor with the check schema and applies
// check field normalization to the result.
type CheckExtractor struct {
	ex port.JSONExtractor
}

// NewCheckExtractor creates a check document extractor.
func NewCheckExtractor(ex port.JSONExtractor) *CheckExtractor {
	return &CheckExtractor{ex: ex}
}

// ExtractFromText turns OCR text into a normalized *domain.Check.
func (e *CheckExtractor) ExtractFromText(ctx context.Context, ocrText string) (any, float64, error) {
	res, err := e.ex.Extract(ctx, port.ExtractionRequest{
		Text:       ocrText,
		SchemaName: schema.CheckSchemaName,
		Schema:     schema.Check(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("extracting check data: %w", err)
	}

	var c domain.Check
	if err := json.Unmarshal(res.JSON, &c); err != nil {
		return nil, 0, fmt.Errorf("decoding check fields: %w", err)
	}

	c = normalizer.NormalizeCheck(c)
	c.Confidence = res.Confidence
	return &c, res.Confidence, nil
}
