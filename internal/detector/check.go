package detector

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
)

// Known-generic placeholder values that extraction models gravitate
// toward when fabricating a check from sparse or unreadable input.
var (
	placeholderNames = []string{
		"john doe", "jane doe", "john smith", "jane smith",
		"john q. public", "test payee",
	}
	placeholderCheckAmounts = decimals(
		"100", "123.45", "150.75", "200", "250", "500", "1000",
	)
	placeholderCheckNumbers = []string{"1234", "5678", "0000", "0001", "1001"}
	placeholderCheckDates   = []string{
		"2023-01-01", "2024-01-01", "01/01/2023", "01/01/2024", "01/01/2000",
	}
	placeholderRoutingNumbers = []string{"123456789", "987654321", "000000000"}
)

// checkRule is one additive suspicion heuristic over an extracted check.
type checkRule struct {
	key   string
	score func(*domain.Check) int
}

// CheckDetector scores checks for fabricated-looking field values.
type CheckDetector struct {
	rules     []checkRule
	threshold int
}

// NewCheckDetector creates a check hallucination detector. A threshold
// of zero or less falls back to DefaultSuspicionThreshold.
func NewCheckDetector(threshold int) *CheckDetector {
	if threshold <= 0 {
		threshold = DefaultSuspicionThreshold
	}
	return &CheckDetector{threshold: threshold, rules: checkRules()}
}

// Detect unmarshals raw extracted JSON and scores it. Input that does not
// even have a check shape contributes no suspicion.
func (d *CheckDetector) Detect(raw json.RawMessage) Finding {
	var c domain.Check
	if err := json.Unmarshal(raw, &c); err != nil {
		return Finding{SuspicionScore: 0, IsValidInput: true}
	}
	return d.DetectCheck(&c)
}

// DetectCheck evaluates every rule once and sums the contributions; the
// rules are independent and there is no short-circuiting.
func (d *CheckDetector) DetectCheck(c *domain.Check) Finding {
	total := 0
	for _, r := range d.rules {
		total += r.score(c)
	}
	return Finding{
		SuspicionScore: total,
		IsValidInput:   total < d.threshold,
	}
}

func checkRules() []checkRule {
	return []checkRule{
		{
			key: "placeholder.payee",
			score: func(c *domain.Check) int {
				if matchesAny(c.Payee, placeholderNames) {
					return 1
				}
				return 0
			},
		},
		{
			key: "placeholder.payer",
			score: func(c *domain.Check) int {
				if matchesAny(c.Payer, placeholderNames) {
					return 1
				}
				return 0
			},
		},
		{
			key: "placeholder.amount",
			score: func(c *domain.Check) int {
				if amountMatchesAny(c.Amount, placeholderCheckAmounts) {
					return 1
				}
				return 0
			},
		},
		{
			key: "placeholder.check_number",
			score: func(c *domain.Check) int {
				if matchesAny(c.CheckNumber, placeholderCheckNumbers) {
					return 1
				}
				return 0
			},
		},
		{
			key: "placeholder.date",
			score: func(c *domain.Check) int {
				if matchesAny(c.Date, placeholderCheckDates) {
					return 1
				}
				return 0
			},
		},
		{
			key: "placeholder.routing_number",
			score: func(c *domain.Check) int {
				if matchesAny(c.RoutingNumber, placeholderRoutingNumbers) {
					return 1
				}
				return 0
			},
		},
		{
			// A monetary amount with neither party named is a classic
			// fabrication shape: models invent a total before anything else.
			key: "structure.amount_without_parties",
			score: func(c *domain.Check) int {
				if c.Amount > 0 && normalize(c.Payee) == "" && normalize(c.Payer) == "" {
					return 1
				}
				return 0
			},
		},
		{
			key: "structure.round_amount_no_text",
			score: func(c *domain.Check) int {
				if c.Amount <= 0 || c.AmountText != "" {
					return 0
				}
				d := decimal.NewFromFloat(c.Amount)
				if d.Mod(decimal.NewFromInt(100)).IsZero() {
					return 1
				}
				return 0
			},
		},
	}
}
