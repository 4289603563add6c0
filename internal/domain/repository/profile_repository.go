package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
)

// ProfileRepository defines the interface for billing profile operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
	// UpdateUsage sets the free document usage counter to the given value.
	UpdateUsage(ctx context.Context, userID uuid.UUID, usedDocs int) error
	// UpdatePlan switches the profile to a new plan. Expiry is nil for
	// lifetime plans.
	UpdatePlan(ctx context.Context, userID uuid.UUID, plan enum.PlanType, expiry *time.Time) error
}
