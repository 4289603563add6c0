package service

import (
	"testing"
	"time"

	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestDecideAccess(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name     string
		plan     enum.PlanType
		expiry   *time.Time
		usedDocs int
		want     enum.AccessDecision
	}{
		{"free under limit", enum.PlanTypeFree, nil, 4, enum.AccessAllowed},
		{"free at limit", enum.PlanTypeFree, nil, 5, enum.AccessBlockedLimitReached},
		{"free over limit", enum.PlanTypeFree, nil, 9, enum.AccessBlockedLimitReached},
		{"yearly active", enum.PlanTypeYearly, &future, 99, enum.AccessAllowed},
		{"yearly expired", enum.PlanTypeYearly, &past, 0, enum.AccessBlockedExpired},
		{"yearly without expiry treated as active", enum.PlanTypeYearly, nil, 99, enum.AccessAllowed},
		{"lifetime without expiry never lapses", enum.PlanTypeLifetime, nil, 99, enum.AccessAllowed},
		{"lifetime with past expiry is lapsed", enum.PlanTypeLifetime, &past, 99, enum.AccessBlockedExpired},
		{"lifetime with future expiry active", enum.PlanTypeLifetime, &future, 99, enum.AccessAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideAccess(tt.plan, tt.expiry, tt.usedDocs, 5, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecideAccessExpiryBoundary(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// Only an expiry strictly in the past lapses the plan; expiry exactly
	// now is still active
	got := DecideAccess(enum.PlanTypeYearly, &now, 0, 5, now)
	assert.Equal(t, enum.AccessAllowed, got)

	justPast := now.Add(-time.Nanosecond)
	got = DecideAccess(enum.PlanTypeYearly, &justPast, 0, 5, now)
	assert.Equal(t, enum.AccessBlockedExpired, got)
}
