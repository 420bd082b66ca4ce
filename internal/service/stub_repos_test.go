package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/allansomensi/printer-supplies-api/internal/dto"
	"github.com/allansomensi/printer-supplies-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory SupplyItemRepository stub ──────────────────────────────────────

type stubSupplyRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.SupplyItem
}

func newStubSupplyRepo() *stubSupplyRepo {
	return &stubSupplyRepo{items: make(map[uuid.UUID]*model.SupplyItem)}
}

func (r *stubSupplyRepo) Create(_ context.Context, item *model.SupplyItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now()
	r.items[item.ID] = item
	return nil
}

func (r *stubSupplyRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SupplyItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *stubSupplyRepo) List(_ context.Context, filter dto.SupplyFilter) ([]model.SupplyItem, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.SupplyItem
	for _, item := range r.items {
		if filter.Kind != "" && string(item.Kind) != filter.Kind {
			continue
		}
		result = append(result, *item)
	}
	return result, int64(len(result)), nil
}

func (r *stubSupplyRepo) Update(_ context.Context, item *model.SupplyItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *stubSupplyRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.SupplyItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *stubSupplyRepo) SetStockTx(_ *gorm.DB, id uuid.UUID, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Stock = stock
	return nil
}

func (r *stubSupplyRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubSupplyRepo) DB() *gorm.DB { return nil }

// ── In-memory PrinterRepository stub ─────────────────────────────────────────

type stubPrinterRepo struct {
	mu       sync.Mutex
	printers map[uuid.UUID]*model.Printer
}

func newStubPrinterRepo() *stubPrinterRepo {
	return &stubPrinterRepo{printers: make(map[uuid.UUID]*model.Printer)}
}

func (r *stubPrinterRepo) Create(_ context.Context, p *model.Printer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.printers[p.ID] = p
	return nil
}

func (r *stubPrinterRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Printer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.printers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubPrinterRepo) List(_ context.Context) ([]model.Printer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]model.Printer, 0, len(r.printers))
	for _, p := range r.printers {
		result = append(result, *p)
	}
	return result, nil
}

func (r *stubPrinterRepo) Update(_ context.Context, p *model.Printer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.printers[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.printers[p.ID] = &cp
	return nil
}

func (r *stubPrinterRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Printer, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubPrinterRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.printers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.printers, id)
	return nil
}

func (r *stubPrinterRepo) DB() *gorm.DB { return nil }

// ── In-memory MovementRepository stub ────────────────────────────────────────

type stubMovementRepo struct {
	mu        sync.Mutex
	movements []*model.Movement
	failNext  error // injected failure for the next CreateTx
}

func newStubMovementRepo() *stubMovementRepo { return &stubMovementRepo{} }

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, filter dto.MovementFilter) ([]model.Movement, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []model.Movement
	for _, m := range r.movements {
		if filter.ItemID != "" && (m.ItemID == nil || m.ItemID.String() != filter.ItemID) {
			continue
		}
		if filter.PrinterID != "" && (m.PrinterID == nil || m.PrinterID.String() != filter.PrinterID) {
			continue
		}
		if filter.Kind != "" && string(m.ItemKind) != filter.Kind {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		matched = append(matched, *m)
	}
	total := int64(len(matched))

	offset := (filter.Page - 1) * filter.Limit
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *stubMovementRepo) Count(_ context.Context, kind model.SupplyKind) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, m := range r.movements {
		if kind == "" || m.ItemKind == kind {
			total++
		}
	}
	return total, nil
}

func (r *stubMovementRepo) RetireItemTx(_ *gorm.DB, itemID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movements {
		if m.ItemID != nil && *m.ItemID == itemID {
			m.ItemID = nil
		}
	}
	return nil
}

func (r *stubMovementRepo) RetirePrinterTx(_ *gorm.DB, printerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movements {
		if m.PrinterID != nil && *m.PrinterID == printerID {
			m.PrinterID = nil
		}
	}
	return nil
}

// len reports how many movement rows exist, for no-partial-write assertions.
func (r *stubMovementRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.movements)
}

var errStubFailure = errors.New("stub failure")
