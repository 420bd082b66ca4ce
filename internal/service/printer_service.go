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

type PrinterService interface {
	Create(ctx context.Context, req dto.CreatePrinterRequest) (*dto.PrinterResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PrinterResponse, error)
	List(ctx context.Context) ([]dto.PrinterResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePrinterRequest) (*dto.PrinterResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type printerService struct {
	repo   repository.PrinterRepository
	ledger LedgerService
}

func NewPrinterService(repo repository.PrinterRepository, ledger LedgerService) PrinterService {
	return &printerService{repo: repo, ledger: ledger}
}

func (s *printerService) Create(ctx context.Context, req dto.CreatePrinterRequest) (*dto.PrinterResponse, error) {
	p := &model.Printer{
		Name:  req.Name,
		Model: req.Model,
	}
	var err error
	if p.BrandID, err = parseOptionalID(req.BrandID); err != nil {
		return nil, fmt.Errorf("invalid brand_id: %w", err)
	}
	if p.TonerID, err = parseOptionalID(req.TonerID); err != nil {
		return nil, fmt.Errorf("invalid toner_id: %w", err)
	}
	if p.DrumID, err = parseOptionalID(req.DrumID); err != nil {
		return nil, fmt.Errorf("invalid drum_id: %w", err)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating printer: %w", err)
	}
	return printerToResponse(p), nil
}

func (s *printerService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PrinterResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrinterNotFound
		}
		return nil, err
	}
	return printerToResponse(p), nil
}

func (s *printerService) List(ctx context.Context) ([]dto.PrinterResponse, error) {
	printers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PrinterResponse, 0, len(printers))
	for i := range printers {
		resp = append(resp, *printerToResponse(&printers[i]))
	}
	return resp, nil
}

func (s *printerService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePrinterRequest) (*dto.PrinterResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrinterNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Model != nil {
		p.Model = *req.Model
	}
	if req.BrandID != nil {
		if p.BrandID, err = parseOptionalID(req.BrandID); err != nil {
			return nil, fmt.Errorf("invalid brand_id: %w", err)
		}
	}
	if req.TonerID != nil {
		if p.TonerID, err = parseOptionalID(req.TonerID); err != nil {
			return nil, fmt.Errorf("invalid toner_id: %w", err)
		}
	}
	if req.DrumID != nil {
		if p.DrumID, err = parseOptionalID(req.DrumID); err != nil {
			return nil, fmt.Errorf("invalid drum_id: %w", err)
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("updating printer: %w", err)
	}
	return printerToResponse(p), nil
}

// Delete removes the printer and tombstones its reference on every movement,
// in one transaction. Movements stay as history with a null printer_ref.
func (s *printerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPrinterNotFound
		}
		return err
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.ledger.RetirePrinterTx(tx, id); err != nil {
			return fmt.Errorf("retiring movement references: %w", err)
		}
		return s.repo.DeleteTx(tx, id)
	})
}

func parseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func printerToResponse(p *model.Printer) *dto.PrinterResponse {
	resp := &dto.PrinterResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Model:     p.Model,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.BrandID != nil {
		id := p.BrandID.String()
		resp.BrandID = &id
	}
	if p.TonerID != nil {
		id := p.TonerID.String()
		resp.TonerID = &id
	}
	if p.DrumID != nil {
		id := p.DrumID.String()
		resp.DrumID = &id
	}
	return resp
}
