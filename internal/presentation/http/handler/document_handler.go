package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smartinvoice/smartinvoice-api/internal/application/service"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"github.com/smartinvoice/smartinvoice-api/internal/presentation/http/dto/request"
	"github.com/smartinvoice/smartinvoice-api/internal/presentation/http/dto/response"
	"github.com/smartinvoice/smartinvoice-api/pkg/pagination"
)

// DocumentHandler handles document draft HTTP requests
type DocumentHandler struct {
	documentService *service.DocumentService
	exportService   *service.ExportService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, exportService *service.ExportService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		exportService:   exportService,
	}
}

// Totals computes the money summary for a submitted draft
// @Summary Compute Totals
// @Description Compute subtotal, tax, discount and total for a draft
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.DocumentDraftRequest true "Document draft"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /documents/totals [post]
func (h *DocumentHandler) Totals(c *gin.Context) {
	var req request.DocumentDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft := draftFromRequest(&req)
	totals := h.documentService.ComputeTotals(draft)

	response.OK(c, "Totals computed successfully", totals)
}

// Export runs the export gate for a submitted draft and streams the PDF
// @Summary Export Document
// @Description Export a draft as PDF, subject to the plan policy
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce application/pdf
// @Param request body request.DocumentDraftRequest true "Document draft"
// @Success 200 {file} binary
// @Failure 402 {object} response.APIResponse
// @Router /documents/export [post]
func (h *DocumentHandler) Export(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.DocumentDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft := draftFromRequest(&req)

	result, err := h.exportService.Export(c.Request.Context(), *userID, draft)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch result.State {
	case enum.ExportStateDeniedExpired:
		response.Blocked(c, http.StatusPaymentRequired, "Your plan has expired. Renew to keep exporting documents.", gin.H{
			"decision":  result.Decision,
			"state":     result.State,
			"next":      "purchase",
			"used_docs": result.UsedDocs,
		})
		return
	case enum.ExportStateDeniedLimitReached:
		response.Blocked(c, http.StatusPaymentRequired, "Free document limit reached. Upgrade to keep exporting documents.", gin.H{
			"decision":  result.Decision,
			"state":     result.State,
			"next":      "upgrade",
			"used_docs": result.UsedDocs,
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Header("X-Used-Docs", strconv.Itoa(result.UsedDocs))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// ListExports returns the export history for the current user
// @Summary List Exports
// @Description List past document exports, newest first
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /documents/exports [get]
func (h *DocumentHandler) ListExports(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	result, err := h.exportService.ListExports(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Exports retrieved successfully", result)
}

func draftFromRequest(req *request.DocumentDraftRequest) *entity.DocumentDraft {
	items := make([]entity.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity < 0 {
			quantity = 0
		}
		unitPrice := item.UnitPrice
		if unitPrice < 0 {
			unitPrice = 0
		}
		items = append(items, entity.LineItem{
			Description: item.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		})
	}

	draft := &entity.DocumentDraft{
		DocumentType: enum.DocumentType(req.DocumentType),
		Currency:     req.Currency,
		Number:       req.Number,
		IssueDate:    req.IssueDate,
		From: entity.BusinessDetails{
			BusinessName: req.From.BusinessName,
			Email:        req.From.Email,
			Phone:        req.From.Phone,
		},
		To: entity.ClientDetails{
			ClientName: req.To.ClientName,
		},
		Items: items,
		Tax: entity.TaxConfig{
			Enabled:     req.Tax.Enabled,
			RatePercent: req.Tax.RatePercent,
		},
		Discount: entity.DiscountConfig{
			Enabled: req.Discount.Enabled,
			Amount:  req.Discount.Amount,
		},
	}

	if draft.Number == "" {
		draft.Number = draft.DocumentType.DefaultNumber()
	}

	return draft
}
