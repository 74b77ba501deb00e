package reconcile

import (
	"errors"

	"github.com/Mtaasisi/NEON-POS-sub021/pkg/models"
)

// ErrNoContent is returned by Run when the input yields no data rows at
// all (empty file, header-only file, comments-only file)
var ErrNoContent = errors.New("import file has no content")

// ImportSession is the complete result of one parse-and-validate pass
// over a submitted file. It is a plain value: Run never mutates it after
// returning, and independent Run calls share no state.
type ImportSession struct {
	Rows         []models.ImportRow `json:"rows"`
	ValidCount   int                `json:"valid_count"`
	InvalidCount int                `json:"invalid_count"`
	DroppedLines int                `json:"dropped_lines"`
}

// Run tokenizes the text and processes every row against the catalog
// index. Per-row problems are captured on the rows themselves; the only
// error is ErrNoContent for an input with zero data rows.
func Run(text string, ix *CatalogIndex) (*ImportSession, error) {
	raws, dropped := Tokenize(text)
	if len(raws) == 0 {
		return nil, ErrNoContent
	}

	session := &ImportSession{
		Rows:         make([]models.ImportRow, 0, len(raws)),
		DroppedLines: dropped,
	}

	for _, raw := range raws {
		row := ProcessRow(raw, ix)
		if row.Status == models.ImportRowStatusValid {
			session.ValidCount++
		} else {
			session.InvalidCount++
		}
		session.Rows = append(session.Rows, row)
	}

	return session, nil
}

// Failed reports whether the import produced nothing usable. Partial
// failures are fine; a session with zero valid rows is a failed import
// no matter how many invalid rows it carries.
func (s *ImportSession) Failed() bool {
	return s.ValidCount == 0
}

// ValidItems returns the accepted subset in file order, ready for order
// submission. Invalid rows are kept on the session for display only and
// are never auto-corrected into this list.
func (s *ImportSession) ValidItems() []models.PurchaseItem {
	items := make([]models.PurchaseItem, 0, s.ValidCount)
	for _, row := range s.Rows {
		if row.Status != models.ImportRowStatusValid {
			continue
		}
		items = append(items, models.PurchaseItem{
			SKU:         row.SKU,
			Quantity:    row.Quantity,
			CostPrice:   row.CostPrice,
			Notes:       row.Notes,
			VariantName: row.ResolvedVariantName,
		})
	}
	return items
}
