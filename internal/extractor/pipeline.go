package extractor

import (
	"encoding/json"
	"strings"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/detector"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/port"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/schema"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/scoring"
)

// Pipeline is the scoring stage shared by every extraction provider:
// parse the model content, validate it against the request schema, run the
// document-type hallucination detector, then blend the confidence score.
// Detection runs before calculation on purpose: a detector verdict caps a
// confidence the blend would otherwise have produced higher.
type Pipeline struct {
	calc          *scoring.Calculator
	detectors     map[string]detector.Detector
	reserveWeight float64
	confidenceCap float64
}

// NewPipeline creates a scoring pipeline. reserveWeight is the blend
// headroom granted back when the detector finds nothing suspicious;
// confidenceCap bounds the confidence of documents flagged invalid.
func NewPipeline(calc *scoring.Calculator, reserveWeight, confidenceCap float64) *Pipeline {
	if confidenceCap <= 0 {
		confidenceCap = 0.3
	}
	return &Pipeline{
		calc:          calc,
		detectors:     map[string]detector.Detector{},
		reserveWeight: reserveWeight,
		confidenceCap: confidenceCap,
	}
}

// RegisterDetector attaches a hallucination detector for a schema name.
// Requests for schemas without a detector skip detection.
func (p *Pipeline) RegisterDetector(schemaName string, d detector.Detector) {
	p.detectors[schemaName] = d
}

// Finalize turns raw model content plus response metadata into a scored
// ExtractionResult. The returned JSON always carries isValidInput and a
// confidence field mirroring the top-level confidence.
func (p *Pipeline) Finalize(req port.ExtractionRequest, content string, meta scoring.ResponseMeta) (*port.ExtractionResult, error) {
	raw := stripCodeFences(content)

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, NewInvalidJSONError(raw, err)
	}

	schemaValid := true
	if req.Schema != nil {
		schemaValid = schema.Validate(req.Schema, []byte(raw)) == nil
	}

	finding := detector.Finding{IsValidInput: true}
	if d, ok := p.detectors[req.SchemaName]; ok {
		finding = d.Detect(json.RawMessage(raw))
	}

	confidence := p.calc.Calculate(meta, schemaValid)
	if finding.SuspicionScore == 0 {
		confidence = scoring.Clamp(confidence + p.reserveWeight)
	}

	// The model may have declared the input invalid itself; that verdict
	// is never upgraded back to valid here.
	isValid := finding.IsValidInput
	if declared, ok := fields["isValidInput"].(bool); ok && !declared {
		isValid = false
	}
	if !isValid && confidence > p.confidenceCap {
		confidence = p.confidenceCap
	}

	fields["isValidInput"] = isValid
	fields["confidence"] = confidence

	out, err := json.Marshal(fields)
	if err != nil {
		return nil, NewInvalidJSONError(raw, err)
	}
	return &port.ExtractionResult{JSON: out, Confidence: confidence}, nil
}

// stripCodeFences removes a surrounding markdown code fence from model
// output. Models occasionally fence JSON despite instructions not to.
func stripCodeFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}
