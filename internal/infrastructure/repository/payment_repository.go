package repository

import (
	"context"
	"errors"

	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	domainRepo "github.com/smartinvoice/smartinvoice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, record *entity.PaymentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *paymentRepository) GetByIntentID(ctx context.Context, intentID string) (*entity.PaymentRecord, error) {
	var record entity.PaymentRecord
	err := r.db.WithContext(ctx).First(&record, "payment_intent_id = ?", intentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, intentID string, status enum.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.PaymentRecord{}).
		Where("payment_intent_id = ?", intentID).
		Update("status", status).Error
}
