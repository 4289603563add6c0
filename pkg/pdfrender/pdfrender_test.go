package pdfrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleView() DocumentView {
	return DocumentView{
		Title:     "INVOICE",
		Number:    "INV-001",
		IssueDate: "2026-08-28",
		Currency:  "AED",
		FromName:  "Acme Design Studio",
		FromEmail: "billing@acme.example",
		ToName:    "Globex LLC",
		Rows: []LineRow{
			{Description: "Logo design", Quantity: 1, UnitPrice: 500, Amount: 500},
			{Description: "Business cards", Quantity: 2, UnitPrice: 75.5, Amount: 151},
		},
		Totals: TotalsBlock{
			Subtotal:       651,
			TaxRatePercent: 5,
			TaxAmount:      32.55,
			ShowTax:        true,
			Total:          683.55,
		},
		FooterNote: "Generated with SmartInvoice",
	}
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewFPDFRenderer()

	out, err := r.Render(sampleView())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderEmptyRows(t *testing.T) {
	r := NewFPDFRenderer()
	view := sampleView()
	view.Rows = nil
	view.Totals = TotalsBlock{}

	out, err := r.Render(view)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestTrimZeros(t *testing.T) {
	assert.Equal(t, "2", trimZeros(2))
	assert.Equal(t, "2.5", trimZeros(2.5))
	assert.Equal(t, "0.25", trimZeros(0.25))
}
