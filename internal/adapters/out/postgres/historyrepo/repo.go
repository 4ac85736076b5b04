package historyrepo

import (
	"context"

	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append persists one audit entry. Failures are wrapped as audit write
// errors so callers can route the entry to the retry queue.
func (r *GormHistoryRepository) Append(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewAuditWriteError(entry.OrderID().String(), err)
	}

	return nil
}

// GetByOrder retrieves the full history of one order, newest first.
func (r *GormHistoryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("changed_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves every audit entry, oldest first.
func (r *GormHistoryRepository) GetAll(ctx context.Context) ([]*audit.Entry, error) {
	var dtos []HistoryDTO
	if err := r.db.WithContext(ctx).Order("changed_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []HistoryDTO) ([]*audit.Entry, error) {
	entries := make([]*audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
