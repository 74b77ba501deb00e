package reconcile

import (
	"github.com/rs/zerolog/log"

	"github.com/Mtaasisi/NEON-POS-sub021/pkg/models"
)

// CatalogMatch pairs a resolved variant with its parent product
type CatalogMatch struct {
	Product *models.Product
	Variant *models.ProductVariant
}

// CatalogIndex is an exact-match lookup over a product catalog, keyed by
// variant SKU and barcode. It is built once per import session and is
// read-only afterwards, so concurrent Resolve calls are safe.
type CatalogIndex struct {
	entries    map[string]CatalogMatch
	duplicates []string
}

// BuildCatalogIndex registers every variant of the supplied products
// under its SKU and, when present, its barcode. Matching is exact and
// case-sensitive. On key collisions the first registration wins; the
// colliding keys are recorded and logged so bad catalog data surfaces at
// build time instead of silently resolving to an arbitrary variant.
func BuildCatalogIndex(products []models.Product) *CatalogIndex {
	ix := &CatalogIndex{entries: make(map[string]CatalogMatch)}

	for pi := range products {
		product := &products[pi]
		for vi := range product.Variants {
			variant := &product.Variants[vi]
			ix.register(variant.SKU, product, variant)
			if variant.Barcode != "" && variant.Barcode != variant.SKU {
				ix.register(variant.Barcode, product, variant)
			}
		}
	}

	if len(ix.duplicates) > 0 {
		log.Warn().
			Strs("keys", ix.duplicates).
			Msg("Catalog index has duplicate lookup keys; first registration wins")
	}

	return ix
}

func (ix *CatalogIndex) register(key string, product *models.Product, variant *models.ProductVariant) {
	if key == "" {
		return
	}
	if _, exists := ix.entries[key]; exists {
		ix.duplicates = append(ix.duplicates, key)
		return
	}
	ix.entries[key] = CatalogMatch{Product: product, Variant: variant}
}

// Resolve looks up a variant by SKU or barcode
func (ix *CatalogIndex) Resolve(identifier string) (CatalogMatch, bool) {
	match, ok := ix.entries[identifier]
	return match, ok
}

// Len returns the number of registered lookup keys
func (ix *CatalogIndex) Len() int {
	return len(ix.entries)
}

// DuplicateKeys returns the lookup keys that collided during the build
func (ix *CatalogIndex) DuplicateKeys() []string {
	return ix.duplicates
}
