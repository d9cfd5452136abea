package port

import (
	"context"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
)

// BoundingBox locates text on the source page, when the provider reports it.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// OCRPage is one page of recognized text with a confidence in [0,1].
type OCRPage struct {
	Text        string
	Confidence  float64
	BoundingBox *BoundingBox
}

// OCRProvider abstracts the external OCR service. Implementations return
// one page slice per input document, in input order.
type OCRProvider interface {
	ProcessDocuments(ctx context.Context, docs []domain.Document) ([][]OCRPage, error)
}
