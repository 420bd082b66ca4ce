package model

import (
	"time"

	"github.com/google/uuid"
)

// Printer represents a registered printer and which supplies it accepts.
// The toner/drum references null out when the supply item is deleted.
type Printer struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string     `gorm:"index;not null"`
	Model     string     `gorm:"not null"`
	BrandID   *uuid.UUID `gorm:"type:uuid;index"`
	TonerID   *uuid.UUID `gorm:"type:uuid"`
	DrumID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Brand *Brand      `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
	Toner *SupplyItem `gorm:"foreignKey:TonerID;constraint:OnDelete:SET NULL"`
	Drum  *SupplyItem `gorm:"foreignKey:DrumID;constraint:OnDelete:SET NULL"`
}

func (Printer) TableName() string { return "printers" }
