package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	domainRepo "github.com/smartinvoice/smartinvoice-api/internal/domain/repository"
	"github.com/smartinvoice/smartinvoice-api/pkg/pagination"
	"gorm.io/gorm"
)

type exportRecordRepository struct {
	db *gorm.DB
}

// NewExportRecordRepository creates a new export record repository
func NewExportRecordRepository(db *gorm.DB) domainRepo.ExportRecordRepository {
	return &exportRecordRepository{db: db}
}

func (r *exportRecordRepository) Create(ctx context.Context, record *entity.ExportRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *exportRecordRepository) ListByUserID(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.ExportRecord, int64, error) {
	var records []entity.ExportRecord
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.ExportRecord{}).
		Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&records).Error

	return records, total, err
}

func (r *exportRecordRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.ExportRecord{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
