// Package historyrepo persists the append-only audit trail of order status
// changes. Rows are only ever inserted; the trail is the system of record
// for who moved which order when.
package historyrepo

import (
	"time"

	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// HistoryDTO represents one audit entry row. order_id and changed_at are
// indexed for the per-order history read and the statistics scan.
type HistoryDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID   `gorm:"type:uuid;index"`
	FromStatus string      `gorm:"type:varchar(64)"`
	ToStatus   string      `gorm:"type:varchar(64)"`
	ChangedBy  string      `gorm:"type:varchar(255)"`
	Role       string      `gorm:"type:varchar(64)"`
	ChangedAt  time.Time   `gorm:"index"`
	Notes      string      `gorm:"type:text"`
	IsRollback bool
	Meta       MetadataDTO `gorm:"embedded;embeddedPrefix:meta_"`
}

// TableName overrides GORM's default naming convention to use "order_history".
func (HistoryDTO) TableName() string {
	return "order_history"
}

// MetadataDTO represents the embedded request context within the history table.
type MetadataDTO struct {
	IP       string `gorm:"type:varchar(64)"`
	Agent    string `gorm:"type:varchar(255)"`
	Location string `gorm:"type:varchar(255)"`
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry *audit.Entry) HistoryDTO {
	metadata := entry.Metadata()

	return HistoryDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		FromStatus: entry.FromStatus().String(),
		ToStatus:   entry.ToStatus().String(),
		ChangedBy:  entry.ChangedBy(),
		Role:       entry.Role().String(),
		ChangedAt:  entry.ChangedAt(),
		Notes:      entry.Notes(),
		IsRollback: entry.IsRollback(),
		Meta: MetadataDTO{
			IP:       metadata.IP,
			Agent:    metadata.Agent,
			Location: metadata.Location,
		},
	}
}

// toDomain converts a database row back to an audit entry.
func toDomain(dto HistoryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(id, orderID,
		workflow.Status(dto.FromStatus), workflow.Status(dto.ToStatus),
		dto.ChangedBy, workflow.Role(dto.Role), dto.ChangedAt,
		dto.Notes, dto.IsRollback,
		audit.Metadata{IP: dto.Meta.IP, Agent: dto.Meta.Agent, Location: dto.Meta.Location})
}
