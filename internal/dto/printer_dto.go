package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreatePrinterRequest struct {
	Name    string  `json:"name"     validate:"required,min=3,max=120"`
	Model   string  `json:"model"    validate:"required,min=1,max=120"`
	BrandID *string `json:"brand_id" validate:"omitempty,uuid"`
	TonerID *string `json:"toner_id" validate:"omitempty,uuid"`
	DrumID  *string `json:"drum_id"  validate:"omitempty,uuid"`
}

type UpdatePrinterRequest struct {
	Name    *string `json:"name"     validate:"omitempty,min=3,max=120"`
	Model   *string `json:"model"    validate:"omitempty,min=1,max=120"`
	BrandID *string `json:"brand_id" validate:"omitempty,uuid"`
	TonerID *string `json:"toner_id" validate:"omitempty,uuid"`
	DrumID  *string `json:"drum_id"  validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PrinterResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Model     string  `json:"model"`
	BrandID   *string `json:"brand_id"`
	TonerID   *string `json:"toner_id"`
	DrumID    *string `json:"drum_id"`
	CreatedAt string  `json:"created_at"`
}
