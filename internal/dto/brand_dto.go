package dto

type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,min=3,max=120"`
}

type UpdateBrandRequest struct {
	Name string `json:"name" validate:"required,min=3,max=120"`
}

type BrandResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
