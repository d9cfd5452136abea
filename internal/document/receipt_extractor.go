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

// ReceiptExtractor wraps a JSON extractor with the receipt schema and
// applies receipt field normalization to the result.
type ReceiptExtractor struct {
	ex port.JSONExtractor
}

// NewReceiptExtractor creates a receipt document extractor.
func NewReceiptExtractor(ex port.JSONExtractor) *ReceiptExtractor {
	return &ReceiptExtractor{ex: ex}
}

// ExtractFromText turns OCR text into a normalized *domain.Receipt.
func (e *ReceiptExtractor) ExtractFromText(ctx context.Context, ocrText string) (any, float64, error) {
	res, err := e.ex.Extract(ctx, port.ExtractionRequest{
		Text:       ocrText,
		SchemaName: schema.ReceiptSchemaName,
		Schema:     schema.Receipt(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("extracting receipt data: %w", err)
	}

	var r domain.Receipt
	if err := json.Unmarshal(res.JSON, &r); err != nil {
		return nil, 0, fmt.Errorf("decoding receipt fields: %w", err)
	}

	r = normalizer.NormalizeReceipt(r)
	r.Confidence = res.Confidence
	return &r, res.Confidence, nil
}
