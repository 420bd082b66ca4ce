package repository

import (
	"context"

	"github.com/allansomensi/printer-supplies-api/internal/dto"
	"github.com/allansomensi/printer-supplies-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SupplyItemRepository defines the data access contract for supply items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type SupplyItemRepository interface {
	Create(ctx context.Context, item *model.SupplyItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SupplyItem, error)
	List(ctx context.Context, filter dto.SupplyFilter) ([]model.SupplyItem, int64, error)
	Update(ctx context.Context, item *model.SupplyItem) error

	// Used inside ledger transactions; callers must pass the tx instance.
	// FindByIDForUpdateTx takes a row-level lock (SELECT … FOR UPDATE) so that
	// concurrent movements on the same item serialize at the store.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.SupplyItem, error)
	SetStockTx(tx *gorm.DB, id uuid.UUID, stock int) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type supplyItemRepo struct{ db *gorm.DB }

func NewSupplyItemRepository(db *gorm.DB) SupplyItemRepository { return &supplyItemRepo{db: db} }

func (r *supplyItemRepo) Create(ctx context.Context, item *model.SupplyItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *supplyItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SupplyItem, error) {
	var item model.SupplyItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *supplyItemRepo) List(ctx context.Context, filter dto.SupplyFilter) ([]model.SupplyItem, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.SupplyItem{})

	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var items []model.SupplyItem
	err := q.Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *supplyItemRepo) Update(ctx context.Context, item *model.SupplyItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *supplyItemRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.SupplyItem, error) {
	var item model.SupplyItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *supplyItemRepo) SetStockTx(tx *gorm.DB, id uuid.UUID, stock int) error {
	return tx.Model(&model.SupplyItem{}).Where("id = ?", id).Update("stock", stock).Error
}

func (r *supplyItemRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.SupplyItem{}, "id = ?", id).Error
}

func (r *supplyItemRepo) DB() *gorm.DB { return r.db }
