package model

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a printer manufacturer.
type Brand struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Printers []Printer `gorm:"foreignKey:BrandID"`
}

func (Brand) TableName() string { return "brands" }
