package domain

// CheckType classifies the kind of check being scanned.
type CheckType string

const (
	CheckTypePersonal   CheckType = "personal"
	CheckTypeBusiness   CheckType = "business"
	CheckTypeCashier    CheckType = "cashier"
	CheckTypeCertified  CheckType = "certified"
	CheckTypeTraveler   CheckType = "traveler"
	CheckTypeGovernment CheckType = "government"
	CheckTypePayroll    CheckType = "payroll"
	CheckTypeMoneyOrder CheckType = "money_order"
	CheckTypeOther      CheckType = "other"
)

// BankAccountType classifies the account a check draws on.
type BankAccountType string

const (
	AccountTypeChecking    BankAccountType = "checking"
	AccountTypeSavings     BankAccountType = "savings"
	AccountTypeMoneyMarket BankAccountType = "money_market"
	AccountTypeOther       BankAccountType = "other"
)

// Check is the structured representation of a scanned paper check.
// Every business field is optional so that partial OCR output still
// produces a usable entity; only Confidence is always populated.
type Check struct {
	CheckNumber    string          `json:"checkNumber,omitempty"`
	Date           string          `json:"date,omitempty"`
	Payee          string          `json:"payee,omitempty"`
	Payer          string          `json:"payer,omitempty"`
	Amount         float64         `json:"amount,omitempty"`
	AmountText     string          `json:"amountText,omitempty"`
	Memo           string          `json:"memo,omitempty"`
	BankName       string          `json:"bankName,omitempty"`
	RoutingNumber  string          `json:"routingNumber,omitempty"`
	AccountNumber  string          `json:"accountNumber,omitempty"`
	CheckType      CheckType       `json:"checkType,omitempty"`
	AccountType    BankAccountType `json:"accountType,omitempty"`
	Signature      bool            `json:"signature,omitempty"`
	SignatureText  string          `json:"signatureText,omitempty"`
	FractionalCode string          `json:"fractionalCode,omitempty"`
	MICRLine       string          `json:"micrLine,omitempty"`
	IsValidInput   bool            `json:"isValidInput"`
	Confidence     float64         `json:"confidence"`
}
