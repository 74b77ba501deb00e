package models

import "github.com/shopspring/decimal"

// ImportRowStatus is the validation state of one parsed row
type ImportRowStatus string

const (
	ImportRowStatusPending ImportRowStatus = "pending"
	ImportRowStatusValid   ImportRowStatus = "valid"
	ImportRowStatusInvalid ImportRowStatus = "invalid"
)

// ImportRow is one line of a reconciliation file after parsing,
// catalog resolution and validation.
//
// Status is "invalid" if and only if Error is set. Enrichment fields
// (ProductName, ResolvedVariantName, CurrentStock, SuggestedCostPrice)
// are populated whenever a catalog match was found, independent of the
// final status.
type ImportRow struct {
	SKU          string           `json:"sku"`
	VariantLabel string           `json:"variant_label,omitempty"` // free text from the file, not authoritative
	Quantity     int              `json:"quantity"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	RowIndex     int              `json:"row_index"` // 1-based line number in the raw file
	Status       ImportRowStatus  `json:"status"`
	Error        string           `json:"error,omitempty"`

	// Enrichment from the catalog match
	ProductName         string           `json:"product_name,omitempty"`
	ResolvedVariantName string           `json:"resolved_variant_name,omitempty"`
	CurrentStock        int              `json:"current_stock"`
	SuggestedCostPrice  *decimal.Decimal `json:"suggested_cost_price,omitempty"`
}

// PurchaseItem is one accepted row handed to the order-building caller
type PurchaseItem struct {
	SKU         string           `json:"sku"`
	Quantity    int              `json:"quantity"`
	CostPrice   *decimal.Decimal `json:"cost_price,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	VariantName string           `json:"variant_name,omitempty"`
}

// ReconcileImportRequest is the API request body for a bulk import
type ReconcileImportRequest struct {
	Content string `json:"content" validate:"required"`
}

// ReconcileImportResponse is the API response for a bulk import
type ReconcileImportResponse struct {
	Rows         []ImportRow    `json:"rows"`
	ValidCount   int            `json:"valid_count"`
	InvalidCount int            `json:"invalid_count"`
	DroppedLines int            `json:"dropped_lines"`
	Items        []PurchaseItem `json:"items"`
}
