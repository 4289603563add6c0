package entity

import (
	"testing"

	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentDraftDefaults(t *testing.T) {
	d := NewDocumentDraft()

	assert.Equal(t, enum.DocumentTypeInvoice, d.DocumentType)
	assert.Equal(t, "AED", d.Currency)
	assert.Equal(t, "INV-001", d.Number)
	require.Len(t, d.Items, 1)
	assert.Equal(t, 1.0, d.Items[0].Quantity)
	assert.Equal(t, 0.0, d.Items[0].UnitPrice)
	assert.False(t, d.Tax.Enabled)
	assert.Equal(t, 5.0, d.Tax.RatePercent)
	assert.False(t, d.Discount.Enabled)
}

func TestRemoveItemKeepsAtLeastOne(t *testing.T) {
	d := NewDocumentDraft()

	err := d.RemoveItem(0)
	assert.ErrorIs(t, err, ErrLastLineItem)
	assert.Len(t, d.Items, 1)

	d.AddItem()
	require.Len(t, d.Items, 2)
	assert.NoError(t, d.RemoveItem(1))
	assert.Len(t, d.Items, 1)
}

func TestRemoveItemOutOfRange(t *testing.T) {
	d := NewDocumentDraft()
	assert.ErrorIs(t, d.RemoveItem(5), ErrItemIndexOutOfRange)
	assert.ErrorIs(t, d.RemoveItem(-1), ErrItemIndexOutOfRange)
}

func TestUpdateItemCoercesNegatives(t *testing.T) {
	d := NewDocumentDraft()

	err := d.UpdateItem(0, LineItem{Description: "Design work", Quantity: -3, UnitPrice: -10})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.Items[0].Quantity)
	assert.Equal(t, 0.0, d.Items[0].UnitPrice)
	assert.Equal(t, "Design work", d.Items[0].Description)
}

func TestSetCurrencyDefaultTaxRule(t *testing.T) {
	tests := []struct {
		name       string
		taxEnabled bool
		startRate  float64
		currency   string
		wantRate   float64
	}{
		{"switch to AED with tax disabled", false, 0, "AED", 5},
		{"switch away from AED with tax disabled", false, 5, "USD", 0},
		{"user-enabled tax rate preserved", true, 12, "USD", 12},
		{"user-enabled tax rate preserved on AED", true, 12, "AED", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocumentDraft()
			d.Tax.Enabled = tt.taxEnabled
			d.Tax.RatePercent = tt.startRate

			d.SetCurrency(tt.currency)

			assert.Equal(t, tt.currency, d.Currency)
			assert.Equal(t, tt.wantRate, d.Tax.RatePercent)
		})
	}
}

func TestSetDocumentTypeResetsNumber(t *testing.T) {
	d := NewDocumentDraft()
	d.Number = "INV-042"

	d.SetDocumentType(enum.DocumentTypeQuotation)
	assert.Equal(t, "QUOTE-001", d.Number)

	// switching to the same type keeps the current number
	d.Number = "QUOTE-099"
	d.SetDocumentType(enum.DocumentTypeQuotation)
	assert.Equal(t, "QUOTE-099", d.Number)
}

func TestLineItemIsBlank(t *testing.T) {
	assert.True(t, LineItem{}.IsBlank())
	assert.False(t, LineItem{Description: "x"}.IsBlank())
	assert.False(t, LineItem{Quantity: 1}.IsBlank())
	assert.False(t, LineItem{UnitPrice: 2}.IsBlank())
}

func TestProfileUsageStatus(t *testing.T) {
	p := DefaultProfile([16]byte{})

	p.FreeDocsUsed = 0
	assert.Equal(t, "ok", p.UsageStatus(5))
	p.FreeDocsUsed = 3
	assert.Equal(t, "warning", p.UsageStatus(5))
	p.FreeDocsUsed = 5
	assert.Equal(t, "limit", p.UsageStatus(5))
	p.FreeDocsUsed = 9
	assert.Equal(t, "limit", p.UsageStatus(5))
	assert.Equal(t, 0, p.RemainingDocs(5))
}
