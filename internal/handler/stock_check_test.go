package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/allansomensi/printer-supplies-api/internal/dto"
	"github.com/allansomensi/printer-supplies-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubItemRepo serves a fixed item and counts DB hits, so cacheless behavior
// is observable.
type stubItemRepo struct {
	item *model.SupplyItem
	hits int
}

func (r *stubItemRepo) Create(_ context.Context, _ *model.SupplyItem) error { return nil }

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SupplyItem, error) {
	r.hits++
	if r.item == nil || r.item.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.item, nil
}

func (r *stubItemRepo) List(_ context.Context, _ dto.SupplyFilter) ([]model.SupplyItem, int64, error) {
	return nil, 0, nil
}
func (r *stubItemRepo) Update(_ context.Context, _ *model.SupplyItem) error { return nil }
func (r *stubItemRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.SupplyItem, error) {
	return r.FindByID(context.Background(), id)
}
func (r *stubItemRepo) SetStockTx(_ *gorm.DB, _ uuid.UUID, _ int) error { return nil }
func (r *stubItemRepo) DeleteTx(_ *gorm.DB, _ uuid.UUID) error          { return nil }
func (r *stubItemRepo) DB() *gorm.DB                                    { return nil }

func stockCheckRouter(repo *stubItemRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStockCheckHandler(repo, nil, 0)
	r.GET("/v1/stock/:id", h.GetStockByID)
	return r
}

func TestStockCheckFound(t *testing.T) {
	item := &model.SupplyItem{ID: uuid.New(), Kind: model.KindToner, Name: "HP 85A", Stock: 7}
	repo := &stubItemRepo{item: item}
	r := stockCheckRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stock/"+item.ID.String(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.StockCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "HP 85A", resp.Name)
	assert.Equal(t, "toner", resp.Kind)
	assert.Equal(t, 7, resp.Stock)
	assert.Equal(t, 1, repo.hits, "no redis configured, every request hits the DB")
}

func TestStockCheckNotFound(t *testing.T) {
	r := stockCheckRouter(&stubItemRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stock/"+uuid.New().String(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStockCheckBadID(t *testing.T) {
	r := stockCheckRouter(&stubItemRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stock/nope", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
