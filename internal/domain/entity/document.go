package entity

import (
	"errors"
	"time"

	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"github.com/smartinvoice/smartinvoice-api/pkg/money"
)

// DefaultCurrency is the currency that carries a non-zero default tax rate.
const DefaultCurrency = "AED"

// DefaultTaxRate is the tax rate applied for the default currency when the
// user has not customized tax.
const DefaultTaxRate = 5.0

// ErrLastLineItem is returned when removing the only remaining line item.
var ErrLastLineItem = errors.New("a document must keep at least one line item")

// ErrItemIndexOutOfRange is returned for line-item operations on a bad index.
var ErrItemIndexOutOfRange = errors.New("line item index out of range")

// LineItem is one row of a document draft.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// IsBlank reports whether the item is an untouched placeholder: no
// description, no quantity and no price. Blank items are excluded from the
// rendered document but still contribute (zero) to the computed subtotal.
func (it LineItem) IsBlank() bool {
	return it.Description == "" && it.Quantity == 0 && it.UnitPrice == 0
}

// Amount returns the rounded line amount.
func (it LineItem) Amount() float64 {
	return money.Round2(it.Quantity * it.UnitPrice)
}

// TaxConfig controls tax application on a draft.
type TaxConfig struct {
	Enabled     bool    `json:"enabled"`
	RatePercent float64 `json:"rate_percent"`
}

// DiscountConfig controls the absolute discount on a draft. Amount is the raw
// user input; the effective discount is clamped during totals computation.
type DiscountConfig struct {
	Enabled bool    `json:"enabled"`
	Amount  float64 `json:"amount"`
}

// BusinessDetails is the "from" block of a document.
type BusinessDetails struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// ClientDetails is the "to" block of a document.
type ClientDetails struct {
	ClientName string `json:"client_name"`
}

// DocumentTotals is the derived money summary of a draft. It is recomputed on
// every change and never stored.
type DocumentTotals struct {
	Subtotal         float64 `json:"subtotal"`
	EffectiveTaxRate float64 `json:"effective_tax_rate"`
	TaxAmount        float64 `json:"tax_amount"`
	DiscountAmount   float64 `json:"discount_amount"`
	Total            float64 `json:"total"`
}

// DocumentDraft is the transient, in-progress invoice or quotation. It is
// owned by the client session and never persisted.
type DocumentDraft struct {
	DocumentType enum.DocumentType `json:"document_type"`
	Currency     string            `json:"currency"`
	Number       string            `json:"number"`
	IssueDate    string            `json:"issue_date"`
	From         BusinessDetails   `json:"from"`
	To           ClientDetails     `json:"to"`
	Items        []LineItem        `json:"items"`
	Tax          TaxConfig         `json:"tax"`
	Discount     DiscountConfig    `json:"discount"`
}

// NewDocumentDraft returns a fresh invoice draft with one empty line item.
func NewDocumentDraft() *DocumentDraft {
	return &DocumentDraft{
		DocumentType: enum.DocumentTypeInvoice,
		Currency:     DefaultCurrency,
		Number:       enum.DocumentTypeInvoice.DefaultNumber(),
		IssueDate:    time.Now().Format("2006-01-02"),
		Items:        []LineItem{newLineItem()},
		Tax:          TaxConfig{Enabled: false, RatePercent: DefaultTaxRate},
		Discount:     DiscountConfig{},
	}
}

func newLineItem() LineItem {
	return LineItem{Quantity: 1, UnitPrice: 0}
}

// AddItem appends a new empty line item (quantity 1, price 0).
func (d *DocumentDraft) AddItem() {
	d.Items = append(d.Items, newLineItem())
}

// UpdateItem replaces the line item at index i. Negative quantity and price
// values are coerced to 0.
func (d *DocumentDraft) UpdateItem(i int, item LineItem) error {
	if i < 0 || i >= len(d.Items) {
		return ErrItemIndexOutOfRange
	}
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	if item.UnitPrice < 0 {
		item.UnitPrice = 0
	}
	d.Items[i] = item
	return nil
}

// RemoveItem removes the line item at index i. The last remaining item cannot
// be removed.
func (d *DocumentDraft) RemoveItem(i int) error {
	if i < 0 || i >= len(d.Items) {
		return ErrItemIndexOutOfRange
	}
	if len(d.Items) == 1 {
		return ErrLastLineItem
	}
	d.Items = append(d.Items[:i], d.Items[i+1:]...)
	return nil
}

// SetCurrency changes the draft currency and applies the currency-linked
// default tax rate. The default is only applied while tax is disabled, so a
// rate the user edited with tax enabled is never overwritten.
func (d *DocumentDraft) SetCurrency(currency string) {
	d.Currency = currency
	if d.Tax.Enabled {
		return
	}
	if currency == DefaultCurrency {
		d.Tax.RatePercent = DefaultTaxRate
	} else {
		d.Tax.RatePercent = 0
	}
}

// SetDocumentType switches between invoice and quotation, resetting the
// document number to the type default. A no-op when the type is unchanged.
func (d *DocumentDraft) SetDocumentType(t enum.DocumentType) {
	if t == d.DocumentType || !t.IsValid() {
		return
	}
	d.DocumentType = t
	d.Number = t.DefaultNumber()
}

// Reset clears the draft back to its initial state, keeping the current
// document type and currency.
func (d *DocumentDraft) Reset() {
	d.From = BusinessDetails{}
	d.To = ClientDetails{}
	d.Items = []LineItem{newLineItem()}
	d.Tax = TaxConfig{Enabled: false}
	if d.Currency == DefaultCurrency {
		d.Tax.RatePercent = DefaultTaxRate
	}
	d.Discount = DiscountConfig{}
	d.IssueDate = time.Now().Format("2006-01-02")
	d.Number = d.DocumentType.DefaultNumber()
}
