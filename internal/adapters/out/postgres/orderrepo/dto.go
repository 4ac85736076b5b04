// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/order"
	"medlogistics/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column carries the canonical snake_case identifier and is
// indexed for the auto-advance sweep.
type OrderDTO struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	PatientName string       `gorm:"type:varchar(255)"`
	Procedure   string       `gorm:"type:varchar(255)"`
	Status      string       `gorm:"type:varchar(64);index"`
	Readiness   ReadinessDTO `gorm:"embedded;embeddedPrefix:readiness_"`
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ReadinessDTO represents the embedded readiness flags within the order table.
type ReadinessDTO struct {
	ResourcesVerified    bool
	TemplatesAvailable   bool
	TechniciansAvailable bool
	EquipmentReady       bool
	EvidenceUploaded     bool
	DeliveryNoteSigned   bool
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	readiness := aggregate.Readiness()

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		PatientName: aggregate.PatientName(),
		Procedure:   aggregate.Procedure(),
		Status:      aggregate.Status().String(),
		Readiness: ReadinessDTO{
			ResourcesVerified:    readiness.ResourcesVerified,
			TemplatesAvailable:   readiness.TemplatesAvailable,
			TechniciansAvailable: readiness.TechniciansAvailable,
			EquipmentReady:       readiness.EquipmentReady,
			EvidenceUploaded:     readiness.EvidenceUploaded,
			DeliveryNoteSigned:   readiness.DeliveryNoteSigned,
		},
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which rejects rows with an undeclared status.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	readiness := workflow.Readiness{
		ResourcesVerified:    dto.Readiness.ResourcesVerified,
		TemplatesAvailable:   dto.Readiness.TemplatesAvailable,
		TechniciansAvailable: dto.Readiness.TechniciansAvailable,
		EquipmentReady:       dto.Readiness.EquipmentReady,
		EvidenceUploaded:     dto.Readiness.EvidenceUploaded,
		DeliveryNoteSigned:   dto.Readiness.DeliveryNoteSigned,
	}

	return order.RestoreOrder(id, dto.PatientName, dto.Procedure,
		workflow.Status(dto.Status), readiness, dto.UpdatedAt)
}
