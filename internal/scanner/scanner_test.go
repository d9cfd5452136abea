package scanner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/port"
)

type fakeOCR struct {
	pages [][]port.OCRPage
	err   error
	calls int
}

func (f *fakeOCR) ProcessDocuments(_ context.Context, docs []domain.Document) ([][]port.OCRPage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

type fakeDocExtractor struct {
	entity     any
	confidence float64
	err        error

	lastText string
	calls    int
}

func (f *fakeDocExtractor) ExtractFromText(_ context.Context, text string) (any, float64, error) {
	f.calls++
	f.lastText = text
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.entity, f.confidence, nil
}

func imageDoc() domain.Document {
	return domain.Document{
		Content:     []byte{0xFF, 0xD8, 0xFF},
		Format:      domain.DocumentFormatImage,
		ContentType: "image/jpeg",
		Name:        "check.jpg",
	}
}

func TestProcessDocument_CombinesConfidences(t *testing.T) {
	ocr := &fakeOCR{pages: [][]port.OCRPage{{{Text: "PAY TO THE ORDER OF", Confidence: 0.8}}}}
	ext := &fakeDocExtractor{entity: &domain.Check{Payee: "Evergreen Landscaping LLC"}, confidence: 0.9}

	s := New(ocr, ext, DefaultWeights)
	res, err := s.ProcessDocument(context.Background(), imageDoc())
	require.NoError(t, err)

	assert.InDelta(t, 0.8, res.OCRConfidence, 1e-9)
	assert.InDelta(t, 0.9, res.ExtractionConfidence, 1e-9)
	assert.InDelta(t, 0.4*0.8+0.6*0.9, res.OverallConfidence, 1e-9)
	assert.Equal(t, "PAY TO THE ORDER OF", ext.lastText)
}

func TestProcessDocument_ConcatenatesPages(t *testing.T) {
	ocr := &fakeOCR{pages: [][]port.OCRPage{{
		{Text: "page one", Confidence: 0.6},
		{Text: "page two", Confidence: 1.0},
	}}}
	ext := &fakeDocExtractor{entity: &domain.Check{}, confidence: 0.5}

	s := New(ocr, ext, DefaultWeights)
	res, err := s.ProcessDocument(context.Background(), imageDoc())
	require.NoError(t, err)

	assert.Equal(t, "page one\n\npage two", ext.lastText)
	assert.InDelta(t, 0.8, res.OCRConfidence, 1e-9)
}

func TestProcessDocument_OCRFailureSkipsExtraction(t *testing.T) {
	ocr := &fakeOCR{err: errors.New("upstream timeout")}
	ext := &fakeDocExtractor{entity: &domain.Check{}, confidence: 0.5}

	s := New(ocr, ext, DefaultWeights)
	_, err := s.ProcessDocument(context.Background(), imageDoc())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OCR processing failed")
	assert.Contains(t, err.Error(), "upstream timeout")
	assert.Zero(t, ext.calls)
}

func TestProcessDocument_ExtractionFailure(t *testing.T) {
	ocr := &fakeOCR{pages: [][]port.OCRPage{{{Text: "text", Confidence: 0.9}}}}
	ext := &fakeDocExtractor{err: errors.New("invalid JSON in model response")}

	s := New(ocr, ext, DefaultWeights)
	_, err := s.ProcessDocument(context.Background(), imageDoc())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction failed")
}

func TestProcessDocument_NoPages(t *testing.T) {
	ocr := &fakeOCR{pages: [][]port.OCRPage{}}
	ext := &fakeDocExtractor{entity: &domain.Check{}, confidence: 0.5}

	s := New(ocr, ext, DefaultWeights)
	_, err := s.ProcessDocument(context.Background(), imageDoc())
	require.Error(t, err)
	assert.Zero(t, ext.calls)
}

func TestProcessDocument_StampsReceiptMetadata(t *testing.T) {
	receipt := &domain.Receipt{
		Merchant:     domain.MerchantInfo{Name: "Trader Joe's #552"},
		Confidence:   0.85,
		IsValidInput: true,
	}
	ocr := &fakeOCR{pages: [][]port.OCRPage{{{Text: "receipt text", Confidence: 0.9}}}}
	ext := &fakeDocExtractor{entity: receipt, confidence: 0.85}

	s := New(ocr, ext, DefaultWeights)
	res, err := s.ProcessDocument(context.Background(), imageDoc())
	require.NoError(t, err)

	got, ok := res.Data.(*domain.Receipt)
	require.True(t, ok)
	require.NotNil(t, got.Metadata)
	assert.NotEmpty(t, got.Metadata.SourceImageID)
	assert.InDelta(t, 0.85, got.Metadata.ConfidenceScore, 1e-9)
	assert.Empty(t, got.Metadata.Warnings)
}

func TestProcessDocument_WarnsOnWeakSignals(t *testing.T) {
	receipt := &domain.Receipt{Confidence: 0.2, IsValidInput: false}
	ocr := &fakeOCR{pages: [][]port.OCRPage{{{Text: "???", Confidence: 0.25}}}}
	ext := &fakeDocExtractor{entity: receipt, confidence: 0.2}

	s := New(ocr, ext, DefaultWeights)
	res, err := s.ProcessDocument(context.Background(), imageDoc())
	require.NoError(t, err)

	got := res.Data.(*domain.Receipt)
	require.NotNil(t, got.Metadata)
	assert.Contains(t, got.Metadata.Warnings, "low OCR confidence")
	assert.Contains(t, got.Metadata.Warnings, "input flagged as suspected invalid")
}

func TestCombine_Monotonic(t *testing.T) {
	s := New(&fakeOCR{}, &fakeDocExtractor{}, DefaultWeights)

	prev := -1.0
	for _, extraction := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
		got := s.combine(0.5, extraction)
		assert.Greater(t, got, prev)
		prev = got
	}
	assert.LessOrEqual(t, prev, 1.0)
}

func TestNew_ZeroWeightsFallBack(t *testing.T) {
	s := New(&fakeOCR{}, &fakeDocExtractor{}, Weights{})
	assert.Equal(t, DefaultWeights, s.weights)
}
