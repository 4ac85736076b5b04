package orderrepo

import (
	"context"
	"errors"
	"time"

	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/order"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus commits a status change with a conditional update. The WHERE
// clause on the expected status is the sole serialization point for
// concurrent writers: whoever matches the row wins, everyone else gets a
// concurrency conflict error.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, next, expected workflow.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if err := expected.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), expected.String()).
		Updates(map[string]any{
			"status":     next.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	// Zero rows means the status no longer matches. Orders are never
	// deleted, so a missing row is not distinguished from a stale status.
	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError(id.String(), expected.String())
	}

	return nil
}

// UpdateReadiness persists the order's readiness flags. Flags are written as
// a column map because a struct update would skip cleared booleans.
func (r *GormOrderRepository) UpdateReadiness(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	readiness := aggregate.Readiness()
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"readiness_resources_verified":    readiness.ResourcesVerified,
			"readiness_templates_available":   readiness.TemplatesAvailable,
			"readiness_technicians_available": readiness.TechniciansAvailable,
			"readiness_equipment_ready":       readiness.EquipmentReady,
			"readiness_evidence_uploaded":     readiness.EvidenceUploaded,
			"readiness_delivery_note_signed":  readiness.DeliveryNoteSigned,
			"updated_at":                      time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// GetAllInStatus retrieves every order currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status workflow.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
