package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Mtaasisi/NEON-POS-sub021/pkg/models"
)

func dec(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func testCatalog() []models.Product {
	return []models.Product{
		{
			Name:      "Paracetamol",
			CostPrice: dec("8.40"),
			Variants: []models.ProductVariant{
				{Name: "500mg blister", SKU: "SKU001", Barcode: "7891000100103", StockQuantity: 10, CostPrice: dec("11.00")},
				{Name: "750mg blister", SKU: "SKU002", StockQuantity: 3},
			},
		},
		{
			Name: "Ibuprofen",
			Variants: []models.ProductVariant{
				{Name: "200mg box", SKU: "SKU100", Barcode: "7891000200206", StockQuantity: 0, CostPrice: dec("5.25")},
			},
		},
	}
}

func TestCatalogIndexResolvesBySKUAndBarcode(t *testing.T) {
	ix := BuildCatalogIndex(testCatalog())

	match, ok := ix.Resolve("SKU001")
	if !ok {
		t.Fatal("expected SKU001 to resolve")
	}
	if match.Product.Name != "Paracetamol" || match.Variant.Name != "500mg blister" {
		t.Errorf("wrong match for SKU001: %s / %s", match.Product.Name, match.Variant.Name)
	}

	match, ok = ix.Resolve("7891000200206")
	if !ok {
		t.Fatal("expected barcode to resolve")
	}
	if match.Variant.SKU != "SKU100" {
		t.Errorf("barcode resolved to wrong variant %s", match.Variant.SKU)
	}

	if _, ok := ix.Resolve("NOPE"); ok {
		t.Error("unknown identifier must not resolve")
	}
}

func TestCatalogIndexIsCaseSensitive(t *testing.T) {
	ix := BuildCatalogIndex(testCatalog())
	if _, ok := ix.Resolve("sku001"); ok {
		t.Error("lookup must be exact and case-sensitive")
	}
}

func TestCatalogIndexIgnoresEmptyKeys(t *testing.T) {
	products := []models.Product{
		{Name: "Ghost", Variants: []models.ProductVariant{{Name: "No SKU", SKU: ""}}},
	}
	ix := BuildCatalogIndex(products)
	if ix.Len() != 0 {
		t.Errorf("empty keys must not be registered, got %d entries", ix.Len())
	}
	if _, ok := ix.Resolve(""); ok {
		t.Error("empty identifier must not resolve")
	}
}

func TestCatalogIndexFirstRegistrationWins(t *testing.T) {
	products := []models.Product{
		{Name: "First", Variants: []models.ProductVariant{{Name: "A", SKU: "DUP-1"}}},
		{Name: "Second", Variants: []models.ProductVariant{{Name: "B", SKU: "DUP-1"}}},
	}
	ix := BuildCatalogIndex(products)

	match, ok := ix.Resolve("DUP-1")
	if !ok {
		t.Fatal("expected DUP-1 to resolve")
	}
	if match.Product.Name != "First" {
		t.Errorf("first registration must win, got %s", match.Product.Name)
	}

	dups := ix.DuplicateKeys()
	if len(dups) != 1 || dups[0] != "DUP-1" {
		t.Errorf("expected collision diagnostic for DUP-1, got %v", dups)
	}
}

func TestCatalogIndexSameSKUAndBarcodeIsNotACollision(t *testing.T) {
	products := []models.Product{
		{Name: "P", Variants: []models.ProductVariant{{Name: "V", SKU: "ABC1", Barcode: "ABC1"}}},
	}
	ix := BuildCatalogIndex(products)
	if len(ix.DuplicateKeys()) != 0 {
		t.Errorf("identical sku/barcode on one variant is not a collision: %v", ix.DuplicateKeys())
	}
	if ix.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", ix.Len())
	}
}
