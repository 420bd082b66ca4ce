package repository

import (
	"context"

	"github.com/allansomensi/printer-supplies-api/internal/dto"
	"github.com/allansomensi/printer-supplies-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovementRepository is the store behind the append-only movement log.
// There is deliberately no Update or Delete: movements are immutable, and
// entity deletion only nulls references via the Retire*Tx methods.
type MovementRepository interface {
	CreateTx(tx *gorm.DB, m *model.Movement) error
	List(ctx context.Context, filter dto.MovementFilter) ([]model.Movement, int64, error)
	Count(ctx context.Context, kind model.SupplyKind) (int64, error)

	// Retire*Tx tombstone the foreign keys of every movement pointing at a
	// deleted entity, inside the caller's deletion transaction.
	RetireItemTx(tx *gorm.DB, itemID uuid.UUID) error
	RetirePrinterTx(tx *gorm.DB, printerID uuid.UUID) error
}

type movementRepo struct{ db *gorm.DB }

func NewMovementRepository(db *gorm.DB) MovementRepository { return &movementRepo{db: db} }

func (r *movementRepo) CreateTx(tx *gorm.DB, m *model.Movement) error {
	return tx.Create(m).Error
}

func (r *movementRepo) List(ctx context.Context, filter dto.MovementFilter) ([]model.Movement, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Movement{})

	if filter.ItemID != "" {
		q = q.Where("item_id = ?", filter.ItemID)
	}
	if filter.PrinterID != "" {
		q = q.Where("printer_id = ?", filter.PrinterID)
	}
	if filter.Kind != "" {
		q = q.Where("item_kind = ?", filter.Kind)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	// Creation order, ties broken by id so pagination is restartable.
	var movements []model.Movement
	err := q.Order("created_at ASC, id ASC").Offset(offset).Limit(filter.Limit).Find(&movements).Error
	return movements, total, err
}

func (r *movementRepo) Count(ctx context.Context, kind model.SupplyKind) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Movement{})
	if kind != "" {
		q = q.Where("item_kind = ?", kind)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

func (r *movementRepo) RetireItemTx(tx *gorm.DB, itemID uuid.UUID) error {
	return tx.Model(&model.Movement{}).Where("item_id = ?", itemID).
		Update("item_id", gorm.Expr("NULL")).Error
}

func (r *movementRepo) RetirePrinterTx(tx *gorm.DB, printerID uuid.UUID) error {
	return tx.Model(&model.Movement{}).Where("printer_id = ?", printerID).
		Update("printer_id", gorm.Expr("NULL")).Error
}
