package service

import (
	"testing"

	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func draftWithItems(items ...entity.LineItem) *entity.DocumentDraft {
	d := entity.NewDocumentDraft()
	d.Items = items
	return d
}

func TestComputeTotalsSubtotalOnly(t *testing.T) {
	svc := NewDocumentService()
	d := draftWithItems(
		entity.LineItem{Description: "Consulting", Quantity: 2, UnitPrice: 10},
		entity.LineItem{Description: "Hosting", Quantity: 1, UnitPrice: 5},
	)

	totals := svc.ComputeTotals(d)

	assert.Equal(t, 25.00, totals.Subtotal)
	assert.Equal(t, 0.0, totals.TaxAmount)
	assert.Equal(t, 0.0, totals.DiscountAmount)
	assert.Equal(t, 25.00, totals.Total)
}

func TestComputeTotalsWithTax(t *testing.T) {
	svc := NewDocumentService()
	d := draftWithItems(
		entity.LineItem{Description: "Consulting", Quantity: 2, UnitPrice: 10},
		entity.LineItem{Description: "Hosting", Quantity: 1, UnitPrice: 5},
	)
	d.Tax = entity.TaxConfig{Enabled: true, RatePercent: 5}

	totals := svc.ComputeTotals(d)

	assert.Equal(t, 25.00, totals.Subtotal)
	assert.Equal(t, 5.0, totals.EffectiveTaxRate)
	assert.Equal(t, 1.25, totals.TaxAmount)
	assert.Equal(t, 26.25, totals.Total)
}

func TestComputeTotalsDisabledTaxRateIgnored(t *testing.T) {
	svc := NewDocumentService()
	d := draftWithItems(entity.LineItem{Description: "Work", Quantity: 1, UnitPrice: 100})
	d.Tax = entity.TaxConfig{Enabled: false, RatePercent: 5}

	totals := svc.ComputeTotals(d)

	assert.Equal(t, 0.0, totals.EffectiveTaxRate)
	assert.Equal(t, 0.0, totals.TaxAmount)
	assert.Equal(t, 100.0, totals.Total)
}

func TestComputeTotalsDiscountClamped(t *testing.T) {
	svc := NewDocumentService()
	d := draftWithItems(
		entity.LineItem{Description: "Consulting", Quantity: 2, UnitPrice: 10},
		entity.LineItem{Description: "Hosting", Quantity: 1, UnitPrice: 5},
	)
	d.Tax = entity.TaxConfig{Enabled: true, RatePercent: 5}
	d.Discount = entity.DiscountConfig{Enabled: true, Amount: 100}

	totals := svc.ComputeTotals(d)

	// discount cannot exceed subtotal plus tax
	assert.Equal(t, 26.25, totals.DiscountAmount)
	assert.Equal(t, 0.0, totals.Total)
}

func TestComputeTotalsNegativeDiscountIgnored(t *testing.T) {
	svc := NewDocumentService()
	d := draftWithItems(entity.LineItem{Description: "Work", Quantity: 1, UnitPrice: 50})
	d.Discount = entity.DiscountConfig{Enabled: true, Amount: -10}

	totals := svc.ComputeTotals(d)

	assert.Equal(t, 0.0, totals.DiscountAmount)
	assert.Equal(t, 50.0, totals.Total)
}

func TestComputeTotalsDisabledDiscountIgnored(t *testing.T) {
	svc := NewDocumentService()
	d := draftWithItems(entity.LineItem{Description: "Work", Quantity: 1, UnitPrice: 50})
	d.Discount = entity.DiscountConfig{Enabled: false, Amount: 10}

	totals := svc.ComputeTotals(d)

	assert.Equal(t, 0.0, totals.DiscountAmount)
	assert.Equal(t, 50.0, totals.Total)
}

func TestComputeTotalsSkipsBlankItems(t *testing.T) {
	svc := NewDocumentService()
	d := draftWithItems(
		entity.LineItem{Description: "Work", Quantity: 1, UnitPrice: 50},
		entity.LineItem{}, // untouched placeholder row
	)

	totals := svc.ComputeTotals(d)
	assert.Equal(t, 50.0, totals.Subtotal)
}

func TestComputeTotalsRoundsPerLine(t *testing.T) {
	svc := NewDocumentService()
	d := draftWithItems(
		entity.LineItem{Description: "A", Quantity: 3, UnitPrice: 1.115},
		entity.LineItem{Description: "B", Quantity: 3, UnitPrice: 1.115},
	)

	totals := svc.ComputeTotals(d)

	// each line rounds to 3.35 before summing
	assert.Equal(t, 6.70, totals.Subtotal)
}

func TestComputeTotalsEmptyDraft(t *testing.T) {
	svc := NewDocumentService()
	d := entity.NewDocumentDraft()

	totals := svc.ComputeTotals(d)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Total)
}
