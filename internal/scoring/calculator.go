package scoring

// ResponseMeta carries the model-response metadata the calculator scores.
// FinishReason is the provider's completion-stop reason; providers that do
// not report one leave it empty.
type ResponseMeta struct {
	FinishReason string
}

// Clean-completion term values. An unknown or missing finish reason scores
// neutral rather than failing the request.
const (
	cleanStopTerm = 1.0
	neutralTerm   = 0.5
	truncatedTerm = 0.0
)

// Weights is the blend calibration. CleanStop and SchemaValid should sum
// to less than 1.0; the remainder is headroom for document-specific
// adjustments applied later by the hallucination detector.
type Weights struct {
	CleanStop   float64
	SchemaValid float64
}

// DefaultWeights is the starting calibration.
var DefaultWeights = Weights{CleanStop: 0.6, SchemaValid: 0.2}

// Calculator turns raw model-response metadata into a scalar confidence.
// It is deterministic and never errors; malformed input degrades the
// score instead.
type Calculator struct {
	weights Weights
}

// NewCalculator creates a Calculator. Zero-value weights fall back to
// DefaultWeights.
func NewCalculator(w Weights) *Calculator {
	if w.CleanStop <= 0 && w.SchemaValid <= 0 {
		w = DefaultWeights
	}
	return &Calculator{weights: w}
}

// Calculate blends the clean-completion term with the schema-conformance
// term. The result is always in [0,1].
func (c *Calculator) Calculate(meta ResponseMeta, schemaValid bool) float64 {
	clean := neutralTerm
	switch meta.FinishReason {
	case "stop", "end_turn", "complete":
		clean = cleanStopTerm
	case "length", "max_tokens", "truncated":
		clean = truncatedTerm
	}

	valid := 0.0
	if schemaValid {
		valid = 1.0
	}

	score := c.weights.CleanStop*clean + c.weights.SchemaValid*valid
	return Clamp(score)
}

// Clamp bounds a confidence to [0,1].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
