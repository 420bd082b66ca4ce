package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/allansomensi/printer-supplies-api/internal/apierror"
	"github.com/allansomensi/printer-supplies-api/internal/dto"
	"github.com/allansomensi/printer-supplies-api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// StockCheckHandler serves the public quick stock check endpoint.
// Read-only, redis-cached; the cache entry is dropped by the ledger on every
// committed movement, so staleness is bounded by the TTL only while idle.
// The authoritative read stays at GET /v1/supplies/:id/stock.
type StockCheckHandler struct {
	repo     repository.SupplyItemRepository
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewStockCheckHandler(repo repository.SupplyItemRepository, rdb *redis.Client, cacheTTL time.Duration) *StockCheckHandler {
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	return &StockCheckHandler{repo: repo, rdb: rdb, cacheTTL: cacheTTL}
}

// GetStockByID godoc
// @Summary Quick stock check (cached)
// @Tags stock
// @Produce json
// @Param id path string true "Supply item ID"
// @Success 200 {object} dto.StockCheckResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/stock/{id} [get]
func (h *StockCheckHandler) GetStockByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	ctx := c.Request.Context()
	cacheKey := "stock:" + id.String()

	// 1. Try Redis cache
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.StockCheckResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	// 2. Cache miss, query DB
	item, err := h.repo.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("supply item not found"))
		return
	}

	resp := dto.StockCheckResponse{
		Name:  item.Name,
		Kind:  string(item.Kind),
		Stock: item.Stock,
	}

	// 3. Populate cache, best effort
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, h.cacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
