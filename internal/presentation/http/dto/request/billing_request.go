package request

// CheckoutRequest represents a plan checkout request
type CheckoutRequest struct {
	PlanType string `json:"plan_type" binding:"required,oneof=yearly lifetime"`
}

// ConfirmPaymentRequest represents a payment confirmation request. The
// confirmation page forwards whichever query parameter names the gateway
// used, so both aliases are accepted for the intent and the plan.
type ConfirmPaymentRequest struct {
	ID              string `json:"id"`
	PaymentIntentID string `json:"payment_intent_id"`
	Plan            string `json:"plan"`
	PlanType        string `json:"plan_type"`
}

// IntentID resolves the payment intent identifier from its aliases
func (r *ConfirmPaymentRequest) IntentID() string {
	if r.ID != "" {
		return r.ID
	}
	return r.PaymentIntentID
}

// ResolvedPlan resolves the plan from its aliases, defaulting to yearly
func (r *ConfirmPaymentRequest) ResolvedPlan() string {
	if r.PlanType != "" {
		return r.PlanType
	}
	if r.Plan != "" {
		return r.Plan
	}
	return "yearly"
}
