package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Profile holds the per-account usage and plan state. A missing row is not an
// error anywhere in the system; DefaultProfile supplies the implied values.
type Profile struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FullName           string         `gorm:"size:255" json:"full_name"`
	FreeDocsUsed       int            `gorm:"default:0" json:"free_docs_used"`
	PlanType           enum.PlanType  `gorm:"size:20;default:'free'" json:"plan_type"`
	SubscriptionExpiry *time.Time     `json:"subscription_expiry,omitempty"`
	TrialStartedAt     *time.Time     `json:"trial_started_at,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new profile
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// DefaultProfile returns the implied account state when no profile row exists
func DefaultProfile(userID uuid.UUID) *Profile {
	return &Profile{
		UserID:       userID,
		FreeDocsUsed: 0,
		PlanType:     enum.PlanTypeFree,
	}
}

// RemainingDocs returns how many free documents are left, never below zero
func (p *Profile) RemainingDocs(limit int) int {
	remaining := limit - p.FreeDocsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// UsageStatus classifies the free-plan usage level for display:
// "ok", "warning" when 2 or fewer documents remain, "limit" when none do.
func (p *Profile) UsageStatus(limit int) string {
	remaining := p.RemainingDocs(limit)
	switch {
	case remaining == 0:
		return "limit"
	case remaining <= 2:
		return "warning"
	default:
		return "ok"
	}
}
