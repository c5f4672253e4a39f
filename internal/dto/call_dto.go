package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCallRequest struct {
	FIO      string  `json:"fio"      validate:"required,min=2,max=200"`
	Age      int     `json:"age"      validate:"min=0,max=130"`
	Address  string  `json:"address"  validate:"required,max=300"`
	Type     string  `json:"type"     validate:"required,max=100"`
	Priority string  `json:"priority" validate:"required,oneof=green yellow red"`
	Date     string  `json:"date"     validate:"required"`
	Comment  *string `json:"comment"  validate:"omitempty,max=1000"`
}

type UpdateCallStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CallUsageRefResponse struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes,omitempty"`
}

type CallResponse struct {
	ID          string                 `json:"id"`
	FIO         string                 `json:"fio"`
	Age         int                    `json:"age"`
	Address     string                 `json:"address"`
	Type        string                 `json:"type"`
	Priority    string                 `json:"priority"`
	Date        string                 `json:"date"`
	Comment     *string                `json:"comment,omitempty"`
	Status      string                 `json:"status"`
	CompletedAt *string                `json:"completed_at,omitempty"`
	UsageRefs   []CallUsageRefResponse `json:"usage_refs,omitempty"`
}
