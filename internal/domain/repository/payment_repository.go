package repository

import (
	"context"

	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
)

// PaymentRepository defines the interface for payment record operations
type PaymentRepository interface {
	Create(ctx context.Context, record *entity.PaymentRecord) error
	GetByIntentID(ctx context.Context, intentID string) (*entity.PaymentRecord, error)
	UpdateStatus(ctx context.Context, intentID string, status enum.PaymentStatus) error
}
