package domain

// ReceiptType classifies the kind of receipt.
type ReceiptType string

const (
	ReceiptTypeSale     ReceiptType = "sale"
	ReceiptTypeReturn   ReceiptType = "return"
	ReceiptTypeRefund   ReceiptType = "refund"
	ReceiptTypeEstimate ReceiptType = "estimate"
	ReceiptTypeProforma ReceiptType = "proforma"
	ReceiptTypeOther    ReceiptType = "other"
)

// PaymentMethod is how a receipt (or one of its payments) was settled.
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCredit        PaymentMethod = "credit"
	PaymentMethodDebit         PaymentMethod = "debit"
	PaymentMethodCheck         PaymentMethod = "check"
	PaymentMethodGiftCard      PaymentMethod = "gift_card"
	PaymentMethodStoreCredit   PaymentMethod = "store_credit"
	PaymentMethodMobilePayment PaymentMethod = "mobile_payment"
	PaymentMethodOther         PaymentMethod = "other"
)

// CardType identifies the card network on a card payment.
type CardType string

const (
	CardTypeVisa       CardType = "visa"
	CardTypeMastercard CardType = "mastercard"
	CardTypeAmex       CardType = "amex"
	CardTypeDiscover   CardType = "discover"
	CardTypeDinersClub CardType = "diners_club"
	CardTypeJCB        CardType = "jcb"
	CardTypeUnionPay   CardType = "union_pay"
	CardTypeOther      CardType = "other"
)

// TaxType classifies a tax line on a receipt.
type TaxType string

const (
	TaxTypeSales   TaxType = "sales"
	TaxTypeVAT     TaxType = "vat"
	TaxTypeGST     TaxType = "gst"
	TaxTypePST     TaxType = "pst"
	TaxTypeHST     TaxType = "hst"
	TaxTypeExcise  TaxType = "excise"
	TaxTypeService TaxType = "service"
	TaxTypeOther   TaxType = "other"
)

// UnitOfMeasure is the unit for a line item quantity.
type UnitOfMeasure string

const (
	UnitEach     UnitOfMeasure = "ea"
	UnitKilogram UnitOfMeasure = "kg"
	UnitGram     UnitOfMeasure = "g"
	UnitPound    UnitOfMeasure = "lb"
	UnitOunce    UnitOfMeasure = "oz"
	UnitLiter    UnitOfMeasure = "l"
	UnitGallon   UnitOfMeasure = "gal"
	UnitPiece    UnitOfMeasure = "pc"
	UnitPack     UnitOfMeasure = "pk"
	UnitBox      UnitOfMeasure = "box"
	UnitOther    UnitOfMeasure = "other"
)

// ReceiptFormat describes the physical layout family of the receipt.
type ReceiptFormat string

const (
	ReceiptFormatRetail         ReceiptFormat = "retail"
	ReceiptFormatRestaurant     ReceiptFormat = "restaurant"
	ReceiptFormatService        ReceiptFormat = "service"
	ReceiptFormatUtility        ReceiptFormat = "utility"
	ReceiptFormatTransportation ReceiptFormat = "transportation"
	ReceiptFormatAccommodation  ReceiptFormat = "accommodation"
	ReceiptFormatOther          ReceiptFormat = "other"
)

// MerchantInfo identifies the business that issued the receipt.
type MerchantInfo struct {
	Name      string `json:"name,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Website   string `json:"website,omitempty"`
	TaxID     string `json:"taxId,omitempty"`
	StoreID   string `json:"storeId,omitempty"`
	ChainName string `json:"chainName,omitempty"`
}

// ReceiptTotals holds the monetary roll-up of a receipt. All amounts
// are non-negative.
type ReceiptTotals struct {
	Subtotal float64 `json:"subtotal,omitempty"`
	Tax      float64 `json:"tax,omitempty"`
	Tip      float64 `json:"tip,omitempty"`
	Discount float64 `json:"discount,omitempty"`
	Total    float64 `json:"total,omitempty"`
}

// ReceiptLineItem is a single purchased item.
type ReceiptLineItem struct {
	Description    string        `json:"description,omitempty"`
	SKU            string        `json:"sku,omitempty"`
	Quantity       float64       `json:"quantity,omitempty"`
	Unit           UnitOfMeasure `json:"unit,omitempty"`
	UnitPrice      float64       `json:"unitPrice,omitempty"`
	TotalPrice     float64       `json:"totalPrice,omitempty"`
	Discounted     bool          `json:"discounted,omitempty"`
	DiscountAmount float64       `json:"discountAmount,omitempty"`
	Category       string        `json:"category,omitempty"`
}

// ReceiptTaxItem is a single tax line.
type ReceiptTaxItem struct {
	TaxName   string  `json:"taxName,omitempty"`
	TaxType   TaxType `json:"taxType,omitempty"`
	TaxRate   float64 `json:"taxRate,omitempty"`
	TaxAmount float64 `json:"taxAmount,omitempty"`
}

// ReceiptPayment is a single tender applied to the receipt.
type ReceiptPayment struct {
	Method        PaymentMethod `json:"method,omitempty"`
	CardType      CardType      `json:"cardType,omitempty"`
	LastDigits    string        `json:"lastDigits,omitempty"`
	Amount        float64       `json:"amount,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
}

// ReceiptMetadata carries processing metadata attached during a scan.
type ReceiptMetadata struct {
	ConfidenceScore float64       `json:"confidenceScore,omitempty"`
	Currency        string        `json:"currency,omitempty"`
	LanguageCode    string        `json:"languageCode,omitempty"`
	TimeZone        string        `json:"timeZone,omitempty"`
	ReceiptFormat   ReceiptFormat `json:"receiptFormat,omitempty"`
	SourceImageID   string        `json:"sourceImageId,omitempty"`
	Warnings        []string      `json:"warnings,omitempty"`
}

// Receipt is the structured representation of a scanned receipt.
// Only Confidence is guaranteed; everything else tolerates sparse OCR.
type Receipt struct {
	Merchant      MerchantInfo      `json:"merchant,omitempty"`
	ReceiptNumber string            `json:"receiptNumber,omitempty"`
	ReceiptType   ReceiptType       `json:"receiptType,omitempty"`
	Timestamp     string            `json:"timestamp,omitempty"`
	PaymentMethod PaymentMethod     `json:"paymentMethod,omitempty"`
	Totals        ReceiptTotals     `json:"totals,omitempty"`
	Currency      string            `json:"currency,omitempty"`
	Items         []ReceiptLineItem `json:"items,omitempty"`
	Taxes         []ReceiptTaxItem  `json:"taxes,omitempty"`
	Payments      []ReceiptPayment  `json:"payments,omitempty"`
	Notes         []string          `json:"notes,omitempty"`
	Metadata      *ReceiptMetadata  `json:"metadata,omitempty"`
	IsValidInput  bool              `json:"isValidInput"`
	Confidence    float64           `json:"confidence"`
}
