package enum

import "database/sql/driver"

// PlanType represents the access tier of an account
type PlanType string

const (
	PlanTypeFree     PlanType = "free"
	PlanTypeYearly   PlanType = "yearly"
	PlanTypeLifetime PlanType = "lifetime"
)

// Fixed display constants for the purchasable plans (prices in AED)
const (
	YearlyPlanPriceAED   = 29
	LifetimePlanPriceAED = 99
)

func (p PlanType) String() string {
	return string(p)
}

// IsValid reports whether p is a known plan type
func (p PlanType) IsValid() bool {
	switch p {
	case PlanTypeFree, PlanTypeYearly, PlanTypeLifetime:
		return true
	}
	return false
}

// IsPaid reports whether p is a paid tier
func (p PlanType) IsPaid() bool {
	return p == PlanTypeYearly || p == PlanTypeLifetime
}

// IsPurchasable reports whether p can be bought through checkout
func (p PlanType) IsPurchasable() bool {
	return p == PlanTypeYearly || p == PlanTypeLifetime
}

// Label returns the display label for the plan
func (p PlanType) Label() string {
	switch p {
	case PlanTypeYearly:
		return "Yearly access"
	case PlanTypeLifetime:
		return "Lifetime access"
	default:
		return "Free plan"
	}
}

// PriceLabel returns the display price for the plan
func (p PlanType) PriceLabel() string {
	switch p {
	case PlanTypeYearly:
		return "29 AED / year"
	case PlanTypeLifetime:
		return "99 AED / once"
	default:
		return "Free"
	}
}

func (p PlanType) Value() (driver.Value, error) {
	return string(p), nil
}

func (p *PlanType) Scan(value interface{}) error {
	if value == nil {
		*p = PlanTypeFree
		return nil
	}
	switch v := value.(type) {
	case string:
		*p = PlanType(v)
	case []byte:
		*p = PlanType(v)
	}
	if !p.IsValid() {
		*p = PlanTypeFree
	}
	return nil
}
