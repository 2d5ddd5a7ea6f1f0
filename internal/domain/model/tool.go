package model

// Package model mirrors the ToolRent backend's response and request
// shapes. All stock arithmetic and validation is backend-owned; these
// types exist so responses are decoded into explicit structs instead of
// being passed around as loose maps.

// ToolState is the lifecycle state of an individual tool unit.
type ToolState string

const (
	ToolStateAvailable   ToolState = "available"
	ToolStateLoaned      ToolState = "loaned"
	ToolStateUnderRepair ToolState = "under_repair"
	ToolStateDismissed   ToolState = "dismissed"
)

// Tool is a tool listing with per-state stock counts as computed by the
// backend.
type Tool struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	ReplacementValue int64  `json:"replacementValue"`
	StockAvailable   int    `json:"stockAvailable"`
	StockLoaned      int    `json:"stockLoaned"`
	StockUnderRepair int    `json:"stockUnderRepair"`
	StockDismissed   int    `json:"stockDismissed"`
}

// TotalStock is the sum of all per-state counts.
func (t Tool) TotalStock() int {
	return t.StockAvailable + t.StockLoaned + t.StockUnderRepair + t.StockDismissed
}

// CreateToolRequest is forwarded to the backend verbatim; bounds
// checking happens there.
type CreateToolRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ReplacementValue int64  `json:"replacementValue"`
	InitialStock     int    `json:"initialStock"`
}

// UpdateToolRequest carries optional fields; nil means "leave as is".
type UpdateToolRequest struct {
	Name             *string `json:"name,omitempty"`
	Category         *string `json:"category,omitempty"`
	ReplacementValue *int64  `json:"replacementValue,omitempty"`
}
