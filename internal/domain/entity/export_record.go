package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ExportRecord is an audit row written for every successful document export.
// The local usage counter stays authoritative for the session; these rows let
// drifted counters be reconciled against what was actually exported.
type ExportRecord struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	DocumentType   enum.DocumentType `gorm:"size:20;not null" json:"document_type"`
	DocumentNumber string            `gorm:"size:100" json:"document_number"`
	Currency       string            `gorm:"size:10" json:"currency"`
	Total          int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt      time.Time         `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (r ExportRecord) MarshalJSON() ([]byte, error) {
	type Alias ExportRecord
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(r),
		Total: float64(r.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new export record
func (r *ExportRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExportRecord model
func (ExportRecord) TableName() string {
	return "export_records"
}
