package reconcile

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Mtaasisi/NEON-POS-sub021/pkg/models"
)

// Row-level error messages shown to the user next to the offending line
const (
	ErrProductNotFound = "Product/Variant not found"
	ErrInvalidQuantity = "Invalid quantity"
)

// ProcessRow resolves one tokenized row against the catalog, validates
// it and attaches enrichment fields. It never fails: malformed fields
// are absorbed (quantity defaults to 1, unparsable cost is left unset)
// and the outcome is always a row with a definitive status.
//
// Enrichment is applied whenever a catalog match exists, even when the
// row ends up invalid because of a bad quantity.
func ProcessRow(raw RawRow, ix *CatalogIndex) models.ImportRow {
	row := models.ImportRow{
		SKU:          fieldAt(raw, 0),
		VariantLabel: fieldAt(raw, 1),
		Quantity:     1,
		Notes:        fieldAt(raw, 4),
		RowIndex:     raw.LineNumber,
		Status:       models.ImportRowStatusPending,
	}

	if qty, err := strconv.Atoi(fieldAt(raw, 2)); err == nil {
		row.Quantity = qty
	}

	if costField := fieldAt(raw, 3); costField != "" {
		if cost, err := decimal.NewFromString(costField); err == nil {
			row.CostPrice = &cost
		}
	}

	match, ok := ix.Resolve(row.SKU)
	if !ok {
		row.Status = models.ImportRowStatusInvalid
		row.Error = ErrProductNotFound
		return row
	}

	row.ProductName = match.Product.Name
	row.ResolvedVariantName = match.Variant.Name
	row.CurrentStock = match.Variant.StockQuantity

	if match.Variant.CostPrice != nil {
		suggested := *match.Variant.CostPrice
		row.SuggestedCostPrice = &suggested
	} else if match.Product.CostPrice != nil {
		suggested := *match.Product.CostPrice
		row.SuggestedCostPrice = &suggested
	}

	// A blank cost column inherits the catalog suggestion
	if row.CostPrice == nil && row.SuggestedCostPrice != nil {
		cost := *row.SuggestedCostPrice
		row.CostPrice = &cost
	}

	if row.Quantity <= 0 {
		row.Status = models.ImportRowStatusInvalid
		row.Error = ErrInvalidQuantity
		return row
	}

	row.Status = models.ImportRowStatusValid
	return row
}

func fieldAt(raw RawRow, idx int) string {
	if idx < len(raw.Fields) {
		return raw.Fields[idx]
	}
	return ""
}
