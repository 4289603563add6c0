package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/repository"
	"github.com/smartinvoice/smartinvoice-api/pkg/apperror"
	"github.com/smartinvoice/smartinvoice-api/pkg/money"
	"github.com/smartinvoice/smartinvoice-api/pkg/pagination"
	"github.com/smartinvoice/smartinvoice-api/pkg/pdfrender"
)

// DocumentRenderer produces PDF bytes from an assembled document view.
type DocumentRenderer interface {
	Render(view pdfrender.DocumentView) ([]byte, error)
}

// ExportService is the gate in front of document export. Every attempt
// re-reads the account state, applies the plan policy, renders the PDF and
// then commits the usage increment.
type ExportService struct {
	profileService *ProfileService
	profileRepo    repository.ProfileRepository
	exportRepo     repository.ExportRecordRepository
	documents      *DocumentService
	renderer       DocumentRenderer
}

// NewExportService creates a new export service
func NewExportService(
	profileService *ProfileService,
	profileRepo repository.ProfileRepository,
	exportRepo repository.ExportRecordRepository,
	documents *DocumentService,
	renderer DocumentRenderer,
) *ExportService {
	return &ExportService{
		profileService: profileService,
		profileRepo:    profileRepo,
		exportRepo:     exportRepo,
		documents:      documents,
		renderer:       renderer,
	}
}

// ExportResult is the outcome of one export attempt. On denial, State carries
// the terminal denial state and PDF is empty. On success, State is back at
// Idle and UsedDocs reflects the committed counter.
type ExportResult struct {
	State    enum.ExportState
	Decision enum.AccessDecision
	FileName string
	PDF      []byte
	UsedDocs int
	Totals   entity.DocumentTotals
}

// Export runs the gate for one draft.
//
// The usage counter increments optimistically after a successful render. The
// increment always happens, even for paid accounts; only free accounts are
// judged by it. Persistence of the counter and the audit record is best
// effort and never fails the export.
func (s *ExportService) Export(ctx context.Context, userID uuid.UUID, draft *entity.DocumentDraft) (*ExportResult, error) {
	// Checking: read fresh account state, never trust the client's copy
	profile, err := s.profileService.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	limit := s.profileService.FreeDocLimit()
	decision := DecideProfileAccess(profile, limit, time.Now())

	switch decision {
	case enum.AccessBlockedExpired:
		return &ExportResult{
			State:    enum.ExportStateDeniedExpired,
			Decision: decision,
			UsedDocs: profile.FreeDocsUsed,
		}, nil
	case enum.AccessBlockedLimitReached:
		return &ExportResult{
			State:    enum.ExportStateDeniedLimitReached,
			Decision: decision,
			UsedDocs: profile.FreeDocsUsed,
		}, nil
	}

	// Exporting: render the document. A failure here is retryable and must
	// not consume the user's allowance.
	totals := s.documents.ComputeTotals(draft)
	view := s.buildView(draft, totals)

	pdf, err := s.renderer.Render(view)
	if err != nil {
		return nil, apperror.NewInternalError("Failed to generate PDF. Please try again.")
	}

	// Committing: count the document and write the audit row
	usedDocs := profile.FreeDocsUsed + 1
	if err := s.profileRepo.UpdateUsage(ctx, userID, usedDocs); err != nil {
		log.Printf("Warning: failed to persist usage counter for user %s: %v", userID, err)
	}

	record := &entity.ExportRecord{
		UserID:         userID,
		DocumentType:   draft.DocumentType,
		DocumentNumber: draft.Number,
		Currency:       draft.Currency,
		Total:          money.Cents(totals.Total),
	}
	if err := s.exportRepo.Create(ctx, record); err != nil {
		log.Printf("Warning: failed to record export for user %s: %v", userID, err)
	}

	return &ExportResult{
		State:    enum.ExportStateIdle,
		Decision: decision,
		FileName: draft.DocumentType.ExportFileName(),
		PDF:      pdf,
		UsedDocs: usedDocs,
		Totals:   totals,
	}, nil
}

// ListExports returns the user's export history, newest first
func (s *ExportService) ListExports(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.ExportRecord], error) {
	records, total, err := s.exportRepo.ListByUserID(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(records, meta), nil
}

func (s *ExportService) buildView(draft *entity.DocumentDraft, totals entity.DocumentTotals) pdfrender.DocumentView {
	rows := make([]pdfrender.LineRow, 0, len(draft.Items))
	for _, item := range draft.Items {
		if item.IsBlank() {
			continue
		}
		rows = append(rows, pdfrender.LineRow{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount(),
		})
	}

	return pdfrender.DocumentView{
		Title:     draft.DocumentType.Title(),
		Number:    draft.Number,
		IssueDate: draft.IssueDate,
		Currency:  draft.Currency,
		FromName:  draft.From.BusinessName,
		FromEmail: draft.From.Email,
		FromPhone: draft.From.Phone,
		ToName:    draft.To.ClientName,
		Rows:      rows,
		Totals: pdfrender.TotalsBlock{
			Subtotal:       totals.Subtotal,
			TaxRatePercent: totals.EffectiveTaxRate,
			TaxAmount:      totals.TaxAmount,
			ShowTax:        draft.Tax.Enabled,
			DiscountAmount: totals.DiscountAmount,
			ShowDiscount:   draft.Discount.Enabled,
			Total:          totals.Total,
		},
		FooterNote: "Generated with SmartInvoice",
	}
}
