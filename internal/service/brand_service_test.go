package service

import (
	"context"
	"testing"

	"github.com/allansomensi/printer-supplies-api/internal/dto"
	"github.com/allansomensi/printer-supplies-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubBrandRepo struct {
	brands map[uuid.UUID]*model.Brand
}

func newStubBrandRepo() *stubBrandRepo {
	return &stubBrandRepo{brands: make(map[uuid.UUID]*model.Brand)}
}

func (r *stubBrandRepo) Create(_ context.Context, b *model.Brand) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.brands[b.ID] = b
	return nil
}

func (r *stubBrandRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Brand, error) {
	b, ok := r.brands[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *stubBrandRepo) List(_ context.Context) ([]model.Brand, error) {
	result := make([]model.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		result = append(result, *b)
	}
	return result, nil
}

func (r *stubBrandRepo) Update(_ context.Context, b *model.Brand) error {
	if _, ok := r.brands[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *b
	r.brands[b.ID] = &cp
	return nil
}

func (r *stubBrandRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.brands[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.brands, id)
	return nil
}

func TestBrandCRUD(t *testing.T) {
	svc := NewBrandService(newStubBrandRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateBrandRequest{Name: "Brother"})
	require.NoError(t, err)

	id := uuid.MustParse(created.ID)
	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Brother", got.Name)

	updated, err := svc.Update(ctx, id, dto.UpdateBrandRequest{Name: "Brother Industries"})
	require.NoError(t, err)
	assert.Equal(t, "Brother Industries", updated.Name)

	brands, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 1)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.GetByID(ctx, id)
	require.ErrorIs(t, err, ErrBrandNotFound)
}

func TestBrandUnknownID(t *testing.T) {
	svc := NewBrandService(newStubBrandRepo())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, ErrBrandNotFound)
	_, err = svc.Update(ctx, uuid.New(), dto.UpdateBrandRequest{Name: "Lexmark"})
	require.ErrorIs(t, err, ErrBrandNotFound)
	require.ErrorIs(t, svc.Delete(ctx, uuid.New()), ErrBrandNotFound)
}
