package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/normalizer"
)

func TestNormalizeCheck_DateCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-18", "2024-03-18"},
		{"03/18/2024", "2024-03-18"},
		{"3/8/2024", "2024-03-08"},
		{"March 18, 2024", "2024-03-18"},
		{"Jan 2, 2023", "2023-01-02"},
		{"next tuesday", "next tuesday"}, // unparseable stays untouched
		{"", ""},
	}
	for _, tc := range cases {
		got := normalizer.NormalizeCheck(domain.Check{Date: tc.in})
		assert.Equal(t, tc.want, got.Date, "input %q", tc.in)
	}
}

func TestNormalizeCheck_RoutingNumberStripAndTruncate(t *testing.T) {
	got := normalizer.NormalizeCheck(domain.Check{RoutingNumber: "0001234567890"})

	// leading zeros stripped first, then truncated to nine digits
	assert.Equal(t, "123456789", got.RoutingNumber)
}

func TestNormalizeCheck_RoutingNumberNineDigitsUntouched(t *testing.T) {
	got := normalizer.NormalizeCheck(domain.Check{RoutingNumber: "021000021"})

	assert.Equal(t, "021000021", got.RoutingNumber)
}

func TestNormalizeCheck_RoutingNumberShortValueUntouched(t *testing.T) {
	got := normalizer.NormalizeCheck(domain.Check{RoutingNumber: "12345"})

	assert.Equal(t, "12345", got.RoutingNumber)
}

func TestNormalizeCheck_EnumCoercion(t *testing.T) {
	got := normalizer.NormalizeCheck(domain.Check{
		CheckType:   "Cashier's",
		AccountType: "Money Market",
	})

	assert.Equal(t, domain.CheckTypeCashier, got.CheckType)
	assert.Equal(t, domain.AccountTypeMoneyMarket, got.AccountType)
}

func TestNormalizeCheck_UnrecognizedEnumMapsToOther(t *testing.T) {
	got := normalizer.NormalizeCheck(domain.Check{
		CheckType:   "platinum rewards",
		AccountType: "offshore",
	})

	assert.Equal(t, domain.CheckTypeOther, got.CheckType)
	assert.Equal(t, domain.AccountTypeOther, got.AccountType)
}

func TestNormalizeCheck_EmptyEnumsStayEmpty(t *testing.T) {
	got := normalizer.NormalizeCheck(domain.Check{})

	assert.Empty(t, got.CheckType)
	assert.Empty(t, got.AccountType)
}

func TestNormalizeCheck_MICRBackfill(t *testing.T) {
	got := normalizer.NormalizeCheck(domain.Check{
		MICRLine: "⑉0101⑉ ⑆211370545⑆ ⑈44667788⑈",
	})

	assert.Equal(t, "211370545", got.RoutingNumber)
	assert.Equal(t, "44667788", got.AccountNumber)
	assert.Equal(t, "0101", got.CheckNumber)
}

func TestNormalizeCheck_MICRWithASCIITransliteration(t *testing.T) {
	got := normalizer.NormalizeCheck(domain.Check{
		MICRLine: "d0101d t211370545t o44667788o",
	})

	assert.Equal(t, "211370545", got.RoutingNumber)
	assert.Equal(t, "44667788", got.AccountNumber)
	assert.Equal(t, "0101", got.CheckNumber)
}

func TestNormalizeCheck_MICRNeverOverwritesExistingFields(t *testing.T) {
	got := normalizer.NormalizeCheck(domain.Check{
		RoutingNumber: "121000358",
		CheckNumber:   "4021",
		MICRLine:      "⑉0101⑉ ⑆211370545⑆ ⑈44667788⑈",
	})

	assert.Equal(t, "121000358", got.RoutingNumber)
	assert.Equal(t, "4021", got.CheckNumber)
	assert.Equal(t, "44667788", got.AccountNumber, "only the missing field is backfilled")
}

func TestNormalizeCheck_Idempotent(t *testing.T) {
	in := domain.Check{
		Date:          "03/18/2024",
		RoutingNumber: "0001234567890",
		CheckType:     "money order",
		AccountType:   "chequing",
		MICRLine:      "⑉0101⑉ ⑆211370545⑆ ⑈44667788⑈",
	}

	once := normalizer.NormalizeCheck(in)
	twice := normalizer.NormalizeCheck(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeCheck_ReturnsCopy(t *testing.T) {
	in := domain.Check{Date: "03/18/2024"}

	_ = normalizer.NormalizeCheck(in)

	assert.Equal(t, "03/18/2024", in.Date, "input is not mutated")
}
