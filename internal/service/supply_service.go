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
	"gorm.io/gorm"
)

// SupplyService is the catalog side of supply items. It owns identity and
// static attributes; the stock column belongs to the ledger and is only
// seeded here at creation time.
type SupplyService interface {
	Create(ctx context.Context, req dto.CreateSupplyRequest) (*dto.SupplyResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplyResponse, error)
	List(ctx context.Context, filter dto.SupplyFilter) (*dto.SupplyListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplyRequest) (*dto.SupplyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplyService struct {
	repo   repository.SupplyItemRepository
	ledger LedgerService
}

func NewSupplyService(repo repository.SupplyItemRepository, ledger LedgerService) SupplyService {
	return &supplyService{repo: repo, ledger: ledger}
}

func (s *supplyService) Create(ctx context.Context, req dto.CreateSupplyRequest) (*dto.SupplyResponse, error) {
	item := &model.SupplyItem{
		Kind:      model.SupplyKind(req.Kind),
		Name:      req.Name,
		Color:     req.Color,
		UnitPrice: req.UnitPrice,
		Stock:     req.InitialStock,
	}
	if !item.Kind.Valid() {
		return nil, fmt.Errorf("invalid kind %q", req.Kind)
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("creating supply item: %w", err)
	}
	return supplyToResponse(item), nil
}

func (s *supplyService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplyResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return supplyToResponse(item), nil
}

func (s *supplyService) List(ctx context.Context, filter dto.SupplyFilter) (*dto.SupplyListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.SupplyListResponse{
		Data:       make([]dto.SupplyResponse, 0, len(items)),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	}
	for i := range items {
		resp.Data = append(resp.Data, *supplyToResponse(&items[i]))
	}
	return resp, nil
}

// Update changes catalog attributes only. Stock is never writable here.
func (s *supplyService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplyRequest) (*dto.SupplyResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Color != nil {
		item.Color = req.Color
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("updating supply item: %w", err)
	}
	return supplyToResponse(item), nil
}

// Delete removes the item row and its stock value, tombstoning the item
// reference on every movement that pointed at it, inside one transaction,
// so history is never orphaned halfway.
func (s *supplyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.ledger.RetireItemTx(tx, id); err != nil {
			return fmt.Errorf("retiring movement references: %w", err)
		}
		return s.repo.DeleteTx(tx, id)
	})
}

func supplyToResponse(item *model.SupplyItem) *dto.SupplyResponse {
	return &dto.SupplyResponse{
		ID:        item.ID.String(),
		Kind:      string(item.Kind),
		Name:      item.Name,
		Color:     item.Color,
		UnitPrice: item.UnitPrice,
		Stock:     item.Stock,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}
