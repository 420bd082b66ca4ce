package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateMovementRequest is a validated ledger command. QuantityDelta is
// signed: positive = refill, negative = consumption. Zero is rejected.
type CreateMovementRequest struct {
	ItemID        string  `json:"item_id"    validate:"required,uuid"`
	ItemKind      string  `json:"item_kind"  validate:"required,oneof=toner drum"`
	PrinterID     *string `json:"printer_id" validate:"omitempty,uuid"`
	// Zero is indistinguishable from absent in JSON; the ledger rejects it.
	QuantityDelta int `json:"quantity_delta"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// MovementFilter selects movements by item, printer, kind and/or time range.
// All criteria are optional and combined with AND.
type MovementFilter struct {
	ItemID    string     `form:"item_id"    validate:"omitempty,uuid"`
	PrinterID string     `form:"printer_id" validate:"omitempty,uuid"`
	Kind      string     `form:"kind"       validate:"omitempty,oneof=toner drum"`
	From      *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To        *time.Time `form:"to"   time_format:"2006-01-02T15:04:05Z07:00"`
	Page      int        `form:"page,default=1"    validate:"min=1"`
	Limit     int        `form:"limit,default=100" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovementResponse struct {
	ID            string  `json:"id"`
	PrinterID     *string `json:"printer_id"`
	ItemID        *string `json:"item_id"`
	ItemKind      string  `json:"item_kind"`
	QuantityDelta int     `json:"quantity_delta"`
	CreatedAt     string  `json:"created_at"`
}

type MovementListResponse struct {
	Data       []MovementResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// MovementReceipt is the success result of applying a movement: the new
// movement's identity plus the updated stock it committed together with.
type MovementReceipt struct {
	MovementID string `json:"movement_id"`
	ItemID     string `json:"item_id"`
	Stock      int    `json:"stock"`
	CreatedAt  string `json:"created_at"`
}

type MovementCountResponse struct {
	Total int64 `json:"total"`
}
