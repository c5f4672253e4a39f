package dto

// ─── Response DTOs ───────────────────────────────────────────────────────────

// KitItemResponse is a kit entry enriched at read time with the live item
// name, unit and available quantity from the catalog — never persisted.
type KitItemResponse struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Quantity  int    `json:"quantity"` // recommended amount
	Required  bool   `json:"required"`
	Available int    `json:"available"` // live stock at call time
}

type KitResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	CallType    string            `json:"call_type"`
	Description *string           `json:"description,omitempty"`
	Items       []KitItemResponse `json:"items"`
}

// KitLookupResponse wraps the by-call-type lookup. A missing kit is not an
// error: Found=false with a nil Kit is the "no recommended kit" sentinel.
type KitLookupResponse struct {
	Found bool         `json:"found"`
	Kit   *KitResponse `json:"kit,omitempty"`
}
