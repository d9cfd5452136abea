package detector

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
)

var (
	placeholderMerchants = []string{
		"store", "test store", "sample store", "abc store",
		"grocery store", "supermarket", "my store", "merchant",
	}
	placeholderReceiptTotals = decimals(
		"100", "150.75", "200", "50", "25", "500",
	)
	placeholderTimestamps = []string{
		"2023-01-01t12:00:00z", "2023-01-01", "2024-01-01t12:00:00z", "2024-01-01",
	}
)

// Fabricated totals rarely reconcile; tolerate rounding to the cent.
var totalsTolerance = decimal.NewFromFloat(0.02)

// receiptRule is one additive suspicion heuristic over an extracted receipt.
type receiptRule struct {
	key   string
	score func(*domain.Receipt) int
}

// ReceiptDetector scores receipts for fabricated-looking field values.
type ReceiptDetector struct {
	rules     []receiptRule
	threshold int
}

// NewReceiptDetector creates a receipt hallucination detector. A threshold
// of zero or less falls back to DefaultSuspicionThreshold.
func NewReceiptDetector(threshold int) *ReceiptDetector {
	if threshold <= 0 {
		threshold = DefaultSuspicionThreshold
	}
	return &ReceiptDetector{threshold: threshold, rules: receiptRules()}
}

// Detect unmarshals raw extracted JSON and scores it. Input that does not
// have a receipt shape contributes no suspicion.
func (d *ReceiptDetector) Detect(raw json.RawMessage) Finding {
	var r domain.Receipt
	if err := json.Unmarshal(raw, &r); err != nil {
		return Finding{SuspicionScore: 0, IsValidInput: true}
	}
	return d.DetectReceipt(&r)
}

// DetectReceipt evaluates every rule once and sums the contributions.
func (d *ReceiptDetector) DetectReceipt(r *domain.Receipt) Finding {
	total := 0
	for _, rule := range d.rules {
		total += rule.score(r)
	}
	return Finding{
		SuspicionScore: total,
		IsValidInput:   total < d.threshold,
	}
}

func receiptRules() []receiptRule {
	return []receiptRule{
		{
			key: "placeholder.merchant",
			score: func(r *domain.Receipt) int {
				if matchesAny(r.Merchant.Name, placeholderMerchants) {
					return 1
				}
				return 0
			},
		},
		{
			key: "placeholder.total",
			score: func(r *domain.Receipt) int {
				if amountMatchesAny(r.Totals.Total, placeholderReceiptTotals) {
					return 1
				}
				return 0
			},
		},
		{
			key: "placeholder.timestamp",
			score: func(r *domain.Receipt) int {
				if matchesAny(r.Timestamp, placeholderTimestamps) {
					return 1
				}
				return 0
			},
		},
		{
			key: "structure.total_without_merchant",
			score: func(r *domain.Receipt) int {
				if r.Totals.Total > 0 && normalize(r.Merchant.Name) == "" {
					return 1
				}
				return 0
			},
		},
		{
			// Real receipts itemize; a lone total with zero or one line
			// items is how models pad out unreadable input.
			key: "structure.sparse_items",
			score: func(r *domain.Receipt) int {
				if r.Totals.Total > 0 && len(r.Items) <= 1 {
					return 1
				}
				return 0
			},
		},
		{
			key: "structure.totals_mismatch",
			score: func(r *domain.Receipt) int {
				if r.Totals.Subtotal <= 0 || r.Totals.Total <= 0 {
					return 0
				}
				expected := decimal.NewFromFloat(r.Totals.Subtotal).
					Add(decimal.NewFromFloat(r.Totals.Tax)).
					Add(decimal.NewFromFloat(r.Totals.Tip)).
					Sub(decimal.NewFromFloat(r.Totals.Discount))
				diff := expected.Sub(decimal.NewFromFloat(r.Totals.Total)).Abs()
				if diff.GreaterThan(totalsTolerance) {
					return 1
				}
				return 0
			},
		},
	}
}
