package scanner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/port"
)

// OCR confidence below this threshold is worth a warning on the result.
const lowOCRConfidence = 0.4

// Weights controls how OCR and extraction confidence combine. The
// combination is a weighted mean, so improving either input can never
// lower the overall score.
type Weights struct {
	OCR        float64
	Extraction float64
}

// DefaultWeights favors extraction slightly: the LLM sees the whole text
// while the OCR estimate is per-page and heuristic.
var DefaultWeights = Weights{OCR: 0.4, Extraction: 0.6}

// Scanner composes the external OCR call with a document extractor to go
// from image bytes to a structured, scored entity. One Scanner handles one
// document type; build one per type and share the OCR provider.
type Scanner struct {
	ocr     port.OCRProvider
	extract port.DocumentExtractor
	weights Weights
}

// New creates a Scanner. Zero-value weights fall back to DefaultWeights.
func New(ocr port.OCRProvider, extract port.DocumentExtractor, weights Weights) *Scanner {
	if weights.OCR <= 0 && weights.Extraction <= 0 {
		weights = DefaultWeights
	}
	return &Scanner{ocr: ocr, extract: extract, weights: weights}
}

// ProcessDocument runs OCR, then extraction, then combines the two
// confidences. Either stage failing short-circuits the other.
func (s *Scanner) ProcessDocument(ctx context.Context, doc domain.Document) (*domain.ScanResult, error) {
	pages, err := s.ocr.ProcessDocuments(ctx, []domain.Document{doc})
	if err != nil {
		return nil, fmt.Errorf("OCR processing failed: %w", err)
	}
	if len(pages) == 0 || len(pages[0]) == 0 {
		return nil, fmt.Errorf("OCR returned no pages for %q", doc.Name)
	}

	// Single-page documents are the norm for checks and receipts; a
	// multi-page PDF concatenates into one extraction input.
	text := ""
	ocrConfidence := 0.0
	for _, p := range pages[0] {
		if text != "" {
			text += "\n\n"
		}
		text += p.Text
		ocrConfidence += p.Confidence
	}
	ocrConfidence /= float64(len(pages[0]))

	entity, extractionConfidence, err := s.extract.ExtractFromText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	s.stampMetadata(entity, doc, ocrConfidence)

	return &domain.ScanResult{
		Data:                 entity,
		OCRConfidence:        ocrConfidence,
		ExtractionConfidence: extractionConfidence,
		OverallConfidence:    s.combine(ocrConfidence, extractionConfidence),
	}, nil
}

// combine is a normalized weighted mean of the two stage confidences.
func (s *Scanner) combine(ocr, extraction float64) float64 {
	total := s.weights.OCR + s.weights.Extraction
	if total <= 0 {
		return 0
	}
	overall := (s.weights.OCR*ocr + s.weights.Extraction*extraction) / total
	if overall > 1 {
		return 1
	}
	if overall < 0 {
		return 0
	}
	return overall
}

// stampMetadata backfills scan-level metadata on entities that carry it.
func (s *Scanner) stampMetadata(entity any, doc domain.Document, ocrConfidence float64) {
	r, ok := entity.(*domain.Receipt)
	if !ok {
		return
	}
	if r.Metadata == nil {
		r.Metadata = &domain.ReceiptMetadata{}
	}
	if r.Metadata.SourceImageID == "" {
		r.Metadata.SourceImageID = uuid.New().String()
	}
	r.Metadata.ConfidenceScore = r.Confidence
	if ocrConfidence < lowOCRConfidence {
		r.Metadata.Warnings = append(r.Metadata.Warnings, "low OCR confidence")
	}
	if !r.IsValidInput {
		r.Metadata.Warnings = append(r.Metadata.Warnings, "input flagged as suspected invalid")
	}
}
