package normalizer

import (
	"strings"
	"time"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
)

var receiptTimestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

// NormalizeReceipt canonicalizes an extracted receipt. It returns a new
// copy, never errors, and is idempotent.
func NormalizeReceipt(r domain.Receipt) domain.Receipt {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	r.Timestamp = normalizeTimestamp(r.Timestamp)
	if r.Metadata != nil {
		r.Metadata.Currency = strings.ToUpper(strings.TrimSpace(r.Metadata.Currency))
	}
	return r
}

// normalizeTimestamp reformats a date-only or space-separated timestamp to
// RFC 3339. Anything already carrying a "T" separator passes through, as
// does anything that fails to parse.
func normalizeTimestamp(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.Contains(s, "T") {
		return raw
	}
	for _, layout := range receiptTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return raw
}
