package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/allansomensi/printer-supplies-api/internal/dto"
	"github.com/allansomensi/printer-supplies-api/internal/model"
	"github.com/allansomensi/printer-supplies-api/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// LedgerService owns the authoritative stock quantity per supply item and the
// append-only movement log. Every stock mutation goes through ApplyMovement;
// the catalog never touches the stock column directly.
type LedgerService interface {
	ApplyMovement(ctx context.Context, req dto.CreateMovementRequest) (*dto.MovementReceipt, error)
	CurrentStock(ctx context.Context, itemID uuid.UUID) (int, error)
	ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error)
	CountMovements(ctx context.Context, kind model.SupplyKind) (int64, error)

	// RetireItemTx / RetirePrinterTx null the movement references of a
	// deleted entity. They must run inside the same transaction that deletes
	// the entity row; history survives, queries by the dead id stop matching.
	RetireItemTx(tx *gorm.DB, itemID uuid.UUID) error
	RetirePrinterTx(tx *gorm.DB, printerID uuid.UUID) error
}

type ledgerService struct {
	items      repository.SupplyItemRepository
	printers   repository.PrinterRepository
	movements  repository.MovementRepository
	rdb        *redis.Client
	maxRetries int
}

func NewLedgerService(
	items repository.SupplyItemRepository,
	printers repository.PrinterRepository,
	movements repository.MovementRepository,
	rdb *redis.Client,
	maxRetries int,
) LedgerService {
	if maxRetries < 1 {
		maxRetries = 3
	}
	return &ledgerService{
		items:      items,
		printers:   printers,
		movements:  movements,
		rdb:        rdb,
		maxRetries: maxRetries,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── ApplyMovement ─────────────────────────────────────────────────────────────
// One atomic unit: lock the item row, validate references, check the stock
// floor, append the movement, set the new stock. Either everything commits or
// nothing does; a reader can never observe the movement without the updated
// stock or vice versa.
//
// Serialization conflicts (SQLSTATE 40001/40P01) are retried with a fresh
// read up to maxRetries times; the caller only sees ErrConflict when the
// budget is exhausted.

func (s *ledgerService) ApplyMovement(ctx context.Context, req dto.CreateMovementRequest) (*dto.MovementReceipt, error) {
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("invalid item_id: %w", err)
	}
	kind := model.SupplyKind(req.ItemKind)
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid item_kind %q", req.ItemKind)
	}
	var printerID *uuid.UUID
	if req.PrinterID != nil {
		pid, err := uuid.Parse(*req.PrinterID)
		if err != nil {
			return nil, fmt.Errorf("invalid printer_id: %w", err)
		}
		printerID = &pid
	}

	// Rejected before any store access.
	if req.QuantityDelta == 0 {
		return nil, ErrZeroDelta
	}

	var movement model.Movement
	var newStock int

	for attempt := 1; ; attempt++ {
		txErr := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
			item, err := s.items.FindByIDForUpdateTx(tx, itemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrItemNotFound
				}
				return err
			}
			// An item of the wrong kind is as absent as no item at all.
			if item.Kind != kind {
				return ErrItemNotFound
			}

			if printerID != nil {
				if _, err := s.printers.FindByIDTx(tx, *printerID); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrPrinterNotFound
					}
					return err
				}
			}

			newStock = item.Stock + req.QuantityDelta
			if newStock < 0 {
				return &InsufficientStockError{
					ItemID:    itemID,
					Current:   item.Stock,
					Attempted: req.QuantityDelta,
				}
			}

			itemRef := itemID
			movement = model.Movement{
				PrinterID:     printerID,
				ItemID:        &itemRef,
				ItemKind:      kind,
				QuantityDelta: req.QuantityDelta,
				CreatedAt:     time.Now().UTC(),
			}
			if err := s.movements.CreateTx(tx, &movement); err != nil {
				return err
			}
			return s.items.SetStockTx(tx, itemID, newStock)
		})

		if txErr == nil {
			break
		}
		if isSerializationFailure(txErr) {
			if attempt >= s.maxRetries {
				log.Warn().
					Str("item_id", itemID.String()).
					Int("attempts", attempt).
					Msg("movement retries exhausted")
				return nil, fmt.Errorf("%w: %v", ErrConflict, txErr)
			}
			continue
		}
		if isConnectionFailure(txErr) {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, txErr)
		}
		return nil, txErr
	}

	s.invalidateStockCache(ctx, itemID)

	log.Debug().
		Str("movement_id", movement.ID.String()).
		Str("item_id", itemID.String()).
		Int("delta", req.QuantityDelta).
		Int("stock", newStock).
		Msg("movement applied")

	return &dto.MovementReceipt{
		MovementID: movement.ID.String(),
		ItemID:     itemID.String(),
		Stock:      newStock,
		CreatedAt:  movement.CreatedAt.Format(time.RFC3339Nano),
	}, nil
}

// CurrentStock reads the materialized aggregate, no movement replay.
func (s *ledgerService) CurrentStock(ctx context.Context, itemID uuid.UUID) (int, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrItemNotFound
		}
		if isConnectionFailure(err) {
			return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return 0, err
	}
	return item.Stock, nil
}

func (s *ledgerService) ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 500 {
		filter.Limit = 100
	}

	movements, total, err := s.movements.List(ctx, filter)
	if err != nil {
		if isConnectionFailure(err) {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return nil, err
	}

	resp := &dto.MovementListResponse{
		Data:       make([]dto.MovementResponse, 0, len(movements)),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	}
	for i := range movements {
		resp.Data = append(resp.Data, movementToResponse(&movements[i]))
	}
	return resp, nil
}

func (s *ledgerService) CountMovements(ctx context.Context, kind model.SupplyKind) (int64, error) {
	return s.movements.Count(ctx, kind)
}

func (s *ledgerService) RetireItemTx(tx *gorm.DB, itemID uuid.UUID) error {
	return s.movements.RetireItemTx(tx, itemID)
}

func (s *ledgerService) RetirePrinterTx(tx *gorm.DB, printerID uuid.UUID) error {
	return s.movements.RetirePrinterTx(tx, printerID)
}

// invalidateStockCache drops the quick-check cache entry after a commit.
// Best-effort: a cache miss is always safe, the DB remains authoritative.
func (s *ledgerService) invalidateStockCache(ctx context.Context, itemID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, stockCacheKey(itemID)).Err(); err != nil {
		log.Warn().Err(err).Str("item_id", itemID.String()).Msg("stock cache invalidation failed")
	}
}

func stockCacheKey(itemID uuid.UUID) string { return "stock:" + itemID.String() }

func movementToResponse(m *model.Movement) dto.MovementResponse {
	resp := dto.MovementResponse{
		ID:            m.ID.String(),
		ItemKind:      string(m.ItemKind),
		QuantityDelta: m.QuantityDelta,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339Nano),
	}
	if m.PrinterID != nil {
		id := m.PrinterID.String()
		resp.PrinterID = &id
	}
	if m.ItemID != nil {
		id := m.ItemID.String()
		resp.ItemID = &id
	}
	return resp
}
