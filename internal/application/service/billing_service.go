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
	"github.com/smartinvoice/smartinvoice-api/pkg/payment"
)

// yearlyPlanDuration is the access window granted by a yearly purchase.
const yearlyPlanDuration = 365 * 24 * time.Hour

// PaymentGateway abstracts the hosted checkout provider.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, planType string) (*payment.PaymentIntent, error)
	ConfirmPayment(ctx context.Context, intentID string) (*payment.PaymentConfirmation, error)
}

// BillingService handles plan listing, checkout and payment confirmation
type BillingService struct {
	gateway     PaymentGateway
	paymentRepo repository.PaymentRepository
	profileRepo repository.ProfileRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	gateway PaymentGateway,
	paymentRepo repository.PaymentRepository,
	profileRepo repository.ProfileRepository,
) *BillingService {
	return &BillingService{
		gateway:     gateway,
		paymentRepo: paymentRepo,
		profileRepo: profileRepo,
	}
}

// Plan describes a purchasable plan for display
type Plan struct {
	Type       enum.PlanType `json:"type"`
	Label      string        `json:"label"`
	PriceAED   int           `json:"price_aed"`
	PriceLabel string        `json:"price_label"`
}

// Plans lists the purchasable plans
func (s *BillingService) Plans() []Plan {
	return []Plan{
		{
			Type:       enum.PlanTypeYearly,
			Label:      enum.PlanTypeYearly.Label(),
			PriceAED:   enum.YearlyPlanPriceAED,
			PriceLabel: enum.PlanTypeYearly.PriceLabel(),
		},
		{
			Type:       enum.PlanTypeLifetime,
			Label:      enum.PlanTypeLifetime.Label(),
			PriceAED:   enum.LifetimePlanPriceAED,
			PriceLabel: enum.PlanTypeLifetime.PriceLabel(),
		},
	}
}

// CheckoutOutput carries the hosted payment page for the client to open
type CheckoutOutput struct {
	PaymentURL      string        `json:"payment_url"`
	PaymentIntentID string        `json:"payment_intent_id"`
	PlanType        enum.PlanType `json:"plan_type"`
}

// StartCheckout creates a payment intent for the given plan. Gateway
// failures are recoverable: the user stays on their current plan and can
// retry.
func (s *BillingService) StartCheckout(ctx context.Context, userID uuid.UUID, plan enum.PlanType) (*CheckoutOutput, error) {
	if !plan.IsPurchasable() {
		return nil, apperror.NewBadRequestError("Unknown plan type")
	}

	intent, err := s.gateway.CreateIntent(ctx, plan.String())
	if err != nil {
		return nil, apperror.NewBadGatewayError("Could not start checkout. Please try again.")
	}

	// Track the intent for reconciliation; checkout continues regardless
	record := &entity.PaymentRecord{
		UserID:          userID,
		PlanType:        plan,
		PaymentIntentID: intent.ID,
		Status:          enum.PaymentStatusPending,
		Amount:          planPriceCents(plan),
	}
	if err := s.paymentRepo.Create(ctx, record); err != nil {
		log.Printf("Warning: failed to record payment intent %s: %v", intent.ID, err)
	}

	return &CheckoutOutput{
		PaymentURL:      intent.PaymentURL,
		PaymentIntentID: intent.ID,
		PlanType:        plan,
	}, nil
}

// ConfirmInput represents the payment confirmation input
type ConfirmInput struct {
	UserID          uuid.UUID
	PaymentIntentID string
	PlanType        enum.PlanType
}

// ConfirmOutput is the activated plan state after a verified payment
type ConfirmOutput struct {
	PlanType           enum.PlanType `json:"plan_type"`
	SubscriptionExpiry *time.Time    `json:"subscription_expiry,omitempty"`
}

// ConfirmPayment verifies a payment intent with the gateway and activates
// the plan. The plan switch is the one write that must not be lost; a
// failure there surfaces as an error.
func (s *BillingService) ConfirmPayment(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error) {
	if input.PaymentIntentID == "" {
		return nil, apperror.NewBadRequestError("Missing payment reference. Please contact support.")
	}

	plan := input.PlanType
	if !plan.IsPurchasable() {
		plan = enum.PlanTypeYearly
	}

	confirmation, err := s.gateway.ConfirmPayment(ctx, input.PaymentIntentID)
	if err != nil {
		return nil, apperror.NewBadGatewayError("Could not verify payment. Please contact support.")
	}

	if !confirmation.OK || !confirmation.Success {
		if err := s.paymentRepo.UpdateStatus(ctx, input.PaymentIntentID, enum.PaymentStatusFailed); err != nil {
			log.Printf("Warning: failed to mark payment %s as failed: %v", input.PaymentIntentID, err)
		}
		return nil, apperror.ErrPaymentFailed
	}

	var expiry *time.Time
	if plan == enum.PlanTypeYearly {
		t := time.Now().Add(yearlyPlanDuration)
		expiry = &t
	}

	if err := s.profileRepo.UpdatePlan(ctx, input.UserID, plan, expiry); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.UpdateStatus(ctx, input.PaymentIntentID, enum.PaymentStatusConfirmed); err != nil {
		log.Printf("Warning: failed to mark payment %s as confirmed: %v", input.PaymentIntentID, err)
	}

	return &ConfirmOutput{
		PlanType:           plan,
		SubscriptionExpiry: expiry,
	}, nil
}

func planPriceCents(plan enum.PlanType) int64 {
	switch plan {
	case enum.PlanTypeYearly:
		return enum.YearlyPlanPriceAED * 100
	case enum.PlanTypeLifetime:
		return enum.LifetimePlanPriceAED * 100
	}
	return 0
}
