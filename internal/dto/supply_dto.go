package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateSupplyRequest struct {
	Kind      string          `json:"kind"       validate:"required,oneof=toner drum"`
	Name      string          `json:"name"       validate:"required,min=3,max=120"`
	Color     *string         `json:"color"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"min=0"`
	// InitialStock seeds the stock baseline at creation; it is not a movement.
	InitialStock int `json:"initial_stock" validate:"min=0"`
}

type UpdateSupplyRequest struct {
	Name      *string          `json:"name"       validate:"omitempty,min=3,max=120"`
	Color     *string          `json:"color"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type SupplyFilter struct {
	Kind  string `form:"kind"  validate:"omitempty,oneof=toner drum"`
	Name  string `form:"name"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupplyResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Color     *string         `json:"color"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int             `json:"stock"`
	CreatedAt string          `json:"created_at"`
}

type SupplyListResponse struct {
	Data       []SupplyResponse `json:"data"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// StockResponse is returned by the authoritative stock read.
type StockResponse struct {
	ItemID string `json:"item_id"`
	Stock  int    `json:"stock"`
}

// StockCheckResponse is the public quick stock check payload (redis-cached).
type StockCheckResponse struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Stock int    `json:"stock"`
}
