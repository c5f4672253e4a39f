package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	Name        string `json:"name"             validate:"required,min=1,max=120"`
	Description string `json:"description"      validate:"max=500"`
	Category    string `json:"category"         validate:"required"`
	Unit        string `json:"unit"             validate:"required,max=30"`
	Quantity    int    `json:"quantity"         validate:"min=0"`
	MinQuantity int    `json:"minimum_quantity" validate:"min=0"`
}

// UpdateItemRequest merges only the supplied fields into an existing item.
type UpdateItemRequest struct {
	Name        *string `json:"name"             validate:"omitempty,min=1,max=120"`
	Description *string `json:"description"      validate:"omitempty,max=500"`
	Category    *string `json:"category"`
	Unit        *string `json:"unit"             validate:"omitempty,max=30"`
	Quantity    *int    `json:"quantity"         validate:"omitempty,min=0"`
	MinQuantity *int    `json:"minimum_quantity" validate:"omitempty,min=0"`
}

type ReplenishRequest struct {
	Amount int `json:"amount" validate:"required"`
}

type ItemFilter struct {
	Category string `form:"category"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Unit        string `json:"unit"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"minimum_quantity"`
	LowStock    bool   `json:"low_stock"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
