package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplyKind discriminates the two consumable types tracked by the ledger.
type SupplyKind string

const (
	KindToner SupplyKind = "toner"
	KindDrum  SupplyKind = "drum"
)

// Valid reports whether k is one of the known kinds.
func (k SupplyKind) Valid() bool { return k == KindToner || k == KindDrum }

// SupplyItem is a toner or drum unit type tracked for inventory purposes.
// Stock is the ledger's materialized aggregate: it changes only inside a
// movement transaction, never through catalog updates.
type SupplyItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind      SupplyKind `gorm:"type:varchar(8);not null;index"`
	Name      string     `gorm:"index;not null"`
	Color     *string
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock     int             `gorm:"not null;default:0;check:stock >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SupplyItem) TableName() string { return "supply_items" }
