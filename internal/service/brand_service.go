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

type BrandService interface {
	Create(ctx context.Context, req dto.CreateBrandRequest) (*dto.BrandResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BrandResponse, error)
	List(ctx context.Context) ([]dto.BrandResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBrandRequest) (*dto.BrandResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type brandService struct {
	repo repository.BrandRepository
}

func NewBrandService(repo repository.BrandRepository) BrandService {
	return &brandService{repo: repo}
}

func (s *brandService) Create(ctx context.Context, req dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	b := &model.Brand{Name: req.Name}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("creating brand: %w", err)
	}
	return brandToResponse(b), nil
}

func (s *brandService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BrandResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return brandToResponse(b), nil
}

func (s *brandService) List(ctx context.Context) ([]dto.BrandResponse, error) {
	brands, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BrandResponse, 0, len(brands))
	for i := range brands {
		resp = append(resp, *brandToResponse(&brands[i]))
	}
	return resp, nil
}

func (s *brandService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	b.Name = req.Name
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("updating brand: %w", err)
	}
	return brandToResponse(b), nil
}

func (s *brandService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBrandNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func brandToResponse(b *model.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
