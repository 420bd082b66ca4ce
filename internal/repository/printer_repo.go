package repository

import (
	"context"

	"github.com/allansomensi/printer-supplies-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrinterRepository interface {
	Create(ctx context.Context, p *model.Printer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Printer, error)
	List(ctx context.Context) ([]model.Printer, error)
	Update(ctx context.Context, p *model.Printer) error

	// FindByIDTx resolves a printer inside an open transaction, so movement
	// application sees a consistent snapshot of the registry.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Printer, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type printerRepo struct{ db *gorm.DB }

func NewPrinterRepository(db *gorm.DB) PrinterRepository { return &printerRepo{db: db} }

func (r *printerRepo) Create(ctx context.Context, p *model.Printer) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *printerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Printer, error) {
	var p model.Printer
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *printerRepo) List(ctx context.Context) ([]model.Printer, error) {
	var printers []model.Printer
	err := r.db.WithContext(ctx).Order("name ASC").Find(&printers).Error
	return printers, err
}

func (r *printerRepo) Update(ctx context.Context, p *model.Printer) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *printerRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Printer, error) {
	var p model.Printer
	err := tx.First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *printerRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Printer{}, "id = ?", id).Error
}

func (r *printerRepo) DB() *gorm.DB { return r.db }
