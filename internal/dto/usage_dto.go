package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RecordUsageRequest struct {
	ItemID   string  `json:"item_id"  validate:"required,uuid"`
	CallID   string  `json:"call_id"  validate:"required,uuid"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Notes    *string `json:"notes"    validate:"omitempty,max=500"`
}

type UsageFilter struct {
	CallID string `form:"call_id" validate:"omitempty,uuid"`
	ItemID string `form:"item_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsageRecordResponse struct {
	ID       string  `json:"id"`
	ItemID   string  `json:"item_id"`
	ItemName string  `json:"item_name,omitempty"`
	CallID   string  `json:"call_id"`
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes,omitempty"`
	UsedAt   string  `json:"used_at"`
}
