package service

import (
	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/smartinvoice/smartinvoice-api/pkg/money"
)

// DocumentService computes derived document state. Drafts live on the client;
// the server only ever sees them in full and answers with totals.
type DocumentService struct{}

// NewDocumentService creates a new document service
func NewDocumentService() *DocumentService {
	return &DocumentService{}
}

// ComputeTotals derives the money summary of a draft.
//
// Each line amount is rounded before summing, so the subtotal always matches
// the printed line amounts. Items where description, quantity and price are
// all empty are skipped. The discount is clamped to the pre-discount amount
// and the final total never goes below zero.
func (s *DocumentService) ComputeTotals(draft *entity.DocumentDraft) entity.DocumentTotals {
	var sum float64
	for _, item := range draft.Items {
		if item.IsBlank() {
			continue
		}
		sum += item.Amount()
	}
	subtotal := money.Round2(sum)

	var effectiveRate, taxAmount float64
	if draft.Tax.Enabled {
		effectiveRate = draft.Tax.RatePercent
		taxAmount = money.Round2(subtotal * effectiveRate / 100)
	}

	preDiscount := subtotal + taxAmount

	var discountAmount float64
	if draft.Discount.Enabled {
		discountAmount = money.Round2(money.Clamp(draft.Discount.Amount, 0, preDiscount))
	}

	total := money.Round2(preDiscount - discountAmount)
	if total < 0 {
		total = 0
	}

	return entity.DocumentTotals{
		Subtotal:         subtotal,
		EffectiveTaxRate: effectiveRate,
		TaxAmount:        taxAmount,
		DiscountAmount:   discountAmount,
		Total:            total,
	}
}
