package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// PaymentRecord tracks a payment intent issued by the gateway for a plan
// purchase, from creation through confirmation or failure.
type PaymentRecord struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanType        enum.PlanType      `gorm:"size:20;not null" json:"plan_type"`
	PaymentIntentID string             `gorm:"size:255;uniqueIndex" json:"payment_intent_id"`
	Status          enum.PaymentStatus `gorm:"default:0" json:"status"`
	Amount          int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p PaymentRecord) MarshalJSON() ([]byte, error) {
	type Alias PaymentRecord
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment record
func (p *PaymentRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentRecord model
func (PaymentRecord) TableName() string {
	return "payment_records"
}
