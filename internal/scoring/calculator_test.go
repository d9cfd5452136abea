package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/scoring"
)

func TestCalculate_CleanStopWithValidSchema(t *testing.T) {
	calc := scoring.NewCalculator(scoring.DefaultWeights)

	got := calc.Calculate(scoring.ResponseMeta{FinishReason: "stop"}, true)

	// 0.6 * 1.0 + 0.2 * 1.0; the remaining 0.2 is detector headroom.
	assert.InDelta(t, 0.8, got, 1e-9)
}

func TestCalculate_TruncatedCompletion(t *testing.T) {
	calc := scoring.NewCalculator(scoring.DefaultWeights)

	got := calc.Calculate(scoring.ResponseMeta{FinishReason: "length"}, true)

	assert.InDelta(t, 0.2, got, 1e-9)
}

func TestCalculate_MissingMetadataScoresNeutral(t *testing.T) {
	calc := scoring.NewCalculator(scoring.DefaultWeights)

	got := calc.Calculate(scoring.ResponseMeta{}, true)

	// neutral clean term 0.5 * 0.6 + 0.2
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestCalculate_UnknownFinishReasonScoresNeutral(t *testing.T) {
	calc := scoring.NewCalculator(scoring.DefaultWeights)

	got := calc.Calculate(scoring.ResponseMeta{FinishReason: "tool_calls"}, false)

	assert.InDelta(t, 0.3, got, 1e-9)
}

func TestCalculate_InvalidSchemaDropsSecondaryTerm(t *testing.T) {
	calc := scoring.NewCalculator(scoring.DefaultWeights)

	valid := calc.Calculate(scoring.ResponseMeta{FinishReason: "stop"}, true)
	invalid := calc.Calculate(scoring.ResponseMeta{FinishReason: "stop"}, false)

	assert.Greater(t, valid, invalid)
	assert.InDelta(t, 0.6, invalid, 1e-9)
}

func TestCalculate_AlwaysInUnitInterval(t *testing.T) {
	calc := scoring.NewCalculator(scoring.Weights{CleanStop: 0.9, SchemaValid: 0.5})

	for _, reason := range []string{"stop", "length", "", "weird", "end_turn", "max_tokens"} {
		for _, valid := range []bool{true, false} {
			got := calc.Calculate(scoring.ResponseMeta{FinishReason: reason}, valid)
			assert.GreaterOrEqual(t, got, 0.0, "reason=%q valid=%v", reason, valid)
			assert.LessOrEqual(t, got, 1.0, "reason=%q valid=%v", reason, valid)
		}
	}
}

func TestNewCalculator_ZeroWeightsFallBackToDefaults(t *testing.T) {
	calc := scoring.NewCalculator(scoring.Weights{})

	got := calc.Calculate(scoring.ResponseMeta{FinishReason: "stop"}, true)

	assert.InDelta(t, 0.8, got, 1e-9)
}

func TestCalculate_Deterministic(t *testing.T) {
	calc := scoring.NewCalculator(scoring.DefaultWeights)
	meta := scoring.ResponseMeta{FinishReason: "stop"}

	first := calc.Calculate(meta, true)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, calc.Calculate(meta, true))
	}
}
