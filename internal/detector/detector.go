package detector

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Finding is the outcome of a hallucination scan over extracted fields.
// IsValidInput is false when the suspicion score reached the detector's
// threshold; callers are expected to cap confidence in that case.
type Finding struct {
	SuspicionScore int
	IsValidInput   bool
}

// Detector inspects raw extracted JSON for fabricated-looking values.
// Implementations are pure: malformed input yields a neutral finding,
// never an error.
type Detector interface {
	Detect(raw json.RawMessage) Finding
}

// DefaultSuspicionThreshold flags a document once two independent
// suspicion signals accumulate. A heuristic calibration, not a law.
const DefaultSuspicionThreshold = 2

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func matchesAny(value string, placeholders []string) bool {
	v := normalize(value)
	if v == "" {
		return false
	}
	for _, p := range placeholders {
		if v == p {
			return true
		}
	}
	return false
}

func amountMatchesAny(amount float64, placeholders []decimal.Decimal) bool {
	if amount == 0 {
		return false
	}
	d := decimal.NewFromFloat(amount)
	for _, p := range placeholders {
		if d.Equal(p) {
			return true
		}
	}
	return false
}

func decimals(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}
