package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/smartinvoice/smartinvoice-api/internal/application/service"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"github.com/smartinvoice/smartinvoice-api/internal/presentation/http/dto/request"
	"github.com/smartinvoice/smartinvoice-api/internal/presentation/http/dto/response"
)

// BillingHandler handles plan and payment HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Plans lists the purchasable plans
// @Summary List Plans
// @Description List the purchasable plans with prices
// @Tags billing
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /billing/plans [get]
func (h *BillingHandler) Plans(c *gin.Context) {
	response.OK(c, "Plans retrieved successfully", gin.H{
		"plans": h.billingService.Plans(),
	})
}

// Checkout starts a plan purchase
// @Summary Start Checkout
// @Description Create a payment intent and return the hosted payment page
// @Tags billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CheckoutRequest true "Plan selection"
// @Success 200 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /billing/checkout [post]
func (h *BillingHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.billingService.StartCheckout(c.Request.Context(), *userID, enum.PlanType(req.PlanType))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout started successfully", output)
}

// Confirm verifies a completed payment and activates the plan
// @Summary Confirm Payment
// @Description Verify a payment intent with the gateway and activate the plan
// @Tags billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ConfirmPaymentRequest true "Payment reference"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 402 {object} response.APIResponse
// @Router /billing/confirm [post]
func (h *BillingHandler) Confirm(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.IntentID() == "" {
		response.BadRequest(c, "Missing payment reference. Please contact support.")
		return
	}

	output, err := h.billingService.ConfirmPayment(c.Request.Context(), &service.ConfirmInput{
		UserID:          *userID,
		PaymentIntentID: req.IntentID(),
		PlanType:        enum.PlanType(req.ResolvedPlan()),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment confirmed successfully", output)
}
