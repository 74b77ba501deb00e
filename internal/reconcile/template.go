package reconcile

import "strings"

// TemplateCSV returns the downloadable reconciliation template with
// instructional comment lines. The example row is itself a comment so a
// re-uploaded template never produces a phantom data row.
func TemplateCSV() string {
	lines := []string{
		"# Bulk reconciliation import template",
		"# Columns (fixed order): sku, variant_label, quantity, cost_price, notes",
		"# Fields may be separated by comma, semicolon or tab.",
		"# quantity defaults to 1 when blank; cost_price falls back to the catalog cost.",
		"# Example: SKU001,500mg blister,10,12.50,urgent restock",
		"sku,variant_label,quantity,cost_price,notes",
	}
	return strings.Join(lines, "\n") + "\n"
}
