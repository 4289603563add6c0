package service

import (
	"time"

	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
)

// DefaultFreeDocLimit is how many documents a free account may export.
const DefaultFreeDocLimit = 5

// DecideAccess applies the plan policy to an account snapshot and returns
// whether a document export may proceed.
//
// Paid plans win over usage: any paid plan with a recorded expiry in the past
// is lapsed, whatever its nominal type. A missing expiry means the plan never
// expires. Only free accounts are subject to the document limit.
func DecideAccess(plan enum.PlanType, expiry *time.Time, usedDocs, limit int, now time.Time) enum.AccessDecision {
	if plan.IsPaid() {
		if expiry != nil && expiry.Before(now) {
			return enum.AccessBlockedExpired
		}
		return enum.AccessAllowed
	}

	if usedDocs >= limit {
		return enum.AccessBlockedLimitReached
	}
	return enum.AccessAllowed
}

// DecideProfileAccess is DecideAccess over a profile row.
func DecideProfileAccess(profile *entity.Profile, limit int, now time.Time) enum.AccessDecision {
	return DecideAccess(profile.PlanType, profile.SubscriptionExpiry, profile.FreeDocsUsed, limit, now)
}
