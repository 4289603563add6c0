package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/smartinvoice/smartinvoice-api/pkg/pagination"
)

// ExportRecordRepository defines the interface for export audit records
type ExportRecordRepository interface {
	Create(ctx context.Context, record *entity.ExportRecord) error
	ListByUserID(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.ExportRecord, int64, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
