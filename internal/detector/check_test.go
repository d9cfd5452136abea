package detector_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/detector"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
)

func TestCheckDetector_GenericPlaceholderCheckIsFlagged(t *testing.T) {
	d := detector.NewCheckDetector(0)

	finding := d.DetectCheck(&domain.Check{
		Payee:       "John Doe",
		Amount:      100,
		CheckNumber: "1234",
	})

	assert.GreaterOrEqual(t, finding.SuspicionScore, 2)
	assert.False(t, finding.IsValidInput)
}

func TestCheckDetector_RealisticCheckIsNotFlagged(t *testing.T) {
	d := detector.NewCheckDetector(0)

	finding := d.DetectCheck(&domain.Check{
		Payee:       "Evergreen Landscaping LLC",
		Payer:       "Miriam Okafor",
		Amount:      1523.45,
		AmountText:  "One thousand five hundred twenty-three and 45/100",
		CheckNumber: "4021",
		Date:        "2024-03-18",
		BankName:    "First Federal Savings",
	})

	assert.Equal(t, 0, finding.SuspicionScore)
	assert.True(t, finding.IsValidInput)
}

func TestCheckDetector_SingleSignalStaysValid(t *testing.T) {
	d := detector.NewCheckDetector(0)

	// One placeholder alone is below the threshold.
	finding := d.DetectCheck(&domain.Check{
		Payee:      "John Doe",
		Payer:      "Miriam Okafor",
		Amount:     733.12,
		AmountText: "Seven hundred thirty-three and 12/100",
	})

	assert.Equal(t, 1, finding.SuspicionScore)
	assert.True(t, finding.IsValidInput)
}

func TestCheckDetector_AmountWithoutPartiesIsSuspicious(t *testing.T) {
	d := detector.NewCheckDetector(0)

	finding := d.DetectCheck(&domain.Check{
		Amount: 100,
	})

	// placeholder amount + missing parties + round amount with no text
	assert.GreaterOrEqual(t, finding.SuspicionScore, 2)
	assert.False(t, finding.IsValidInput)
}

func TestCheckDetector_PlaceholderMatchIsCaseInsensitive(t *testing.T) {
	d := detector.NewCheckDetector(0)

	flagged := d.DetectCheck(&domain.Check{Payee: "JOHN DOE", CheckNumber: "1234"})

	assert.Equal(t, 2, flagged.SuspicionScore)
	assert.False(t, flagged.IsValidInput)
}

func TestCheckDetector_CustomThreshold(t *testing.T) {
	d := detector.NewCheckDetector(5)

	finding := d.DetectCheck(&domain.Check{
		Payee:       "John Doe",
		Amount:      100,
		CheckNumber: "1234",
	})

	assert.True(t, finding.IsValidInput, "score below the raised threshold stays valid")
}

func TestCheckDetector_EmptyCheckContributesNothing(t *testing.T) {
	d := detector.NewCheckDetector(0)

	finding := d.DetectCheck(&domain.Check{})

	assert.Equal(t, 0, finding.SuspicionScore)
	assert.True(t, finding.IsValidInput)
}

func TestCheckDetector_Detect_MalformedJSONIsNeutral(t *testing.T) {
	d := detector.NewCheckDetector(0)

	finding := d.Detect(json.RawMessage(`{"amount": "not a number"}`))

	assert.Equal(t, 0, finding.SuspicionScore)
	assert.True(t, finding.IsValidInput)
}

func TestCheckDetector_Detect_ParsesRawJSON(t *testing.T) {
	d := detector.NewCheckDetector(0)

	finding := d.Detect(json.RawMessage(`{"payee":"Jane Doe","amount":200,"checkNumber":"5678"}`))

	assert.GreaterOrEqual(t, finding.SuspicionScore, 2)
	assert.False(t, finding.IsValidInput)
}
