package normalizer

import (
	"regexp"
	"strings"
	"time"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
)

const canonicalDateLayout = "2006-01-02"

var checkDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// MICR delimiters: transit symbols bracket the routing number, on-us
// symbols the account number, dash symbols the check number. The ASCII
// letters are the usual OCR transliterations of the E-13B symbols.
var (
	micrRoutingRe = regexp.MustCompile(`[⑆t](\d{9})[⑆t]`)
	micrAccountRe = regexp.MustCompile(`[⑈o] ?(\d{3,17}) ?[⑈o]`)
	micrCheckRe   = regexp.MustCompile(`[⑉d] ?(\d{1,10}) ?[⑉d]`)
)

var checkTypeAliases = map[string]domain.CheckType{
	"personal":    domain.CheckTypePersonal,
	"business":    domain.CheckTypeBusiness,
	"commercial":  domain.CheckTypeBusiness,
	"cashier":     domain.CheckTypeCashier,
	"cashiers":    domain.CheckTypeCashier,
	"cashier's":   domain.CheckTypeCashier,
	"certified":   domain.CheckTypeCertified,
	"traveler":    domain.CheckTypeTraveler,
	"traveller":   domain.CheckTypeTraveler,
	"travelers":   domain.CheckTypeTraveler,
	"government":  domain.CheckTypeGovernment,
	"govt":        domain.CheckTypeGovernment,
	"treasury":    domain.CheckTypeGovernment,
	"payroll":     domain.CheckTypePayroll,
	"salary":      domain.CheckTypePayroll,
	"money order": domain.CheckTypeMoneyOrder,
	"money_order": domain.CheckTypeMoneyOrder,
	"moneyorder":  domain.CheckTypeMoneyOrder,
	"other":       domain.CheckTypeOther,
}

var accountTypeAliases = map[string]domain.BankAccountType{
	"checking":     domain.AccountTypeChecking,
	"chequing":     domain.AccountTypeChecking,
	"current":      domain.AccountTypeChecking,
	"savings":      domain.AccountTypeSavings,
	"saving":       domain.AccountTypeSavings,
	"money market": domain.AccountTypeMoneyMarket,
	"money_market": domain.AccountTypeMoneyMarket,
	"mma":          domain.AccountTypeMoneyMarket,
	"other":        domain.AccountTypeOther,
}

// NormalizeCheck canonicalizes an extracted check. It returns a new copy,
// never errors, and is idempotent: any coercion that fails preserves the
// raw value untouched.
func NormalizeCheck(c domain.Check) domain.Check {
	c.Date = normalizeDate(c.Date)
	c.RoutingNumber = normalizeRoutingNumber(c.RoutingNumber)
	c.CheckType = coerceCheckType(c.CheckType)
	c.AccountType = coerceAccountType(c.AccountType)
	backfillFromMICR(&c)
	return c
}

func normalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}
	for _, layout := range checkDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(canonicalDateLayout)
		}
	}
	return raw
}

// normalizeRoutingNumber reduces an over-long routing number to exactly
// nine digits: strip leading zeros first, then truncate.
func normalizeRoutingNumber(rn string) string {
	if len(rn) <= 9 {
		return rn
	}
	stripped := strings.TrimLeft(rn, "0")
	if len(stripped) > 9 {
		stripped = stripped[:9]
	}
	return stripped
}

func coerceCheckType(ct domain.CheckType) domain.CheckType {
	raw := strings.ToLower(strings.TrimSpace(string(ct)))
	if raw == "" {
		return ct
	}
	if mapped, ok := checkTypeAliases[raw]; ok {
		return mapped
	}
	return domain.CheckTypeOther
}

func coerceAccountType(at domain.BankAccountType) domain.BankAccountType {
	raw := strings.ToLower(strings.TrimSpace(string(at)))
	if raw == "" {
		return at
	}
	if mapped, ok := accountTypeAliases[raw]; ok {
		return mapped
	}
	return domain.AccountTypeOther
}

// backfillFromMICR decomposes the MICR line into routing, account, and
// check numbers, filling only fields that are still empty. Values already
// extracted are never overwritten.
func backfillFromMICR(c *domain.Check) {
	if c.MICRLine == "" {
		return
	}
	if c.RoutingNumber == "" {
		if m := micrRoutingRe.FindStringSubmatch(c.MICRLine); m != nil {
			c.RoutingNumber = m[1]
		}
	}
	if c.AccountNumber == "" {
		if m := micrAccountRe.FindStringSubmatch(c.MICRLine); m != nil {
			c.AccountNumber = m[1]
		}
	}
	if c.CheckNumber == "" {
		if m := micrCheckRe.FindStringSubmatch(c.MICRLine); m != nil {
			c.CheckNumber = m[1]
		}
	}
}
