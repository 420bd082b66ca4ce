package model

import (
	"time"

	"github.com/google/uuid"
)

// Movement is one entry in the append-only stock ledger. Rows are never
// updated or deleted after creation; deleting the referenced printer or
// supply item nulls the pointer and keeps the row as history.
//
// ItemKind is denormalized onto the row so that kind-filtered listings keep
// working after ItemID has been tombstoned.
type Movement struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid();index:idx_movements_created_id,priority:2"`
	PrinterID     *uuid.UUID `gorm:"type:uuid;index"`
	ItemID        *uuid.UUID `gorm:"type:uuid;index"`
	ItemKind      SupplyKind `gorm:"type:varchar(8);not null;index"`
	QuantityDelta int        `gorm:"not null;check:quantity_delta <> 0"`
	CreatedAt     time.Time  `gorm:"index:idx_movements_created_id,priority:1"`

	Printer *Printer    `gorm:"foreignKey:PrinterID;constraint:OnDelete:SET NULL"`
	Item    *SupplyItem `gorm:"foreignKey:ItemID;constraint:OnDelete:SET NULL"`
}

func (Movement) TableName() string { return "movements" }
