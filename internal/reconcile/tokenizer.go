// Package reconcile implements the bulk reconciliation import engine:
// it turns a delimited text file into a validated, catalog-enriched list
// of purchase line items. The engine performs no I/O; callers supply the
// raw text and a catalog index and consume the resulting session.
package reconcile

import "strings"

// RawRow is one data-bearing line of the input split into fields
type RawRow struct {
	LineNumber int // 1-based position in the raw file, counting discarded lines
	Fields     []string
}

// Tokenize splits raw text into rows and fields. It returns the ordered
// rows plus the number of lines silently dropped for having fewer than
// two fields.
//
// Lines are trimmed; empty lines and lines starting with '#' are
// discarded. The first surviving line is discarded as a header when one
// of its fields equals "sku" (case-insensitive). Fields may be delimited
// by any mix of comma, semicolon and tab within one file, and a single
// surrounding pair of double quotes is stripped per field.
func Tokenize(text string) ([]RawRow, int) {
	var rows []RawRow
	dropped := 0
	headerDone := false

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !headerDone && isHeaderLine(line) {
			headerDone = true
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}
		headerDone = true

		fields := splitFields(line)
		if len(fields) < 2 {
			// malformed noise, not a data row
			dropped++
			continue
		}

		rows = append(rows, RawRow{LineNumber: i + 1, Fields: fields})
	}

	return rows, dropped
}

// isHeaderLine reports whether a line is a column header. A bare
// substring check would swallow data rows whose SKU itself starts with
// "SKU", so only an exact field match counts.
func isHeaderLine(line string) bool {
	for _, field := range splitFields(line) {
		if strings.EqualFold(field, "sku") {
			return true
		}
	}
	return false
}

// splitFields splits a line on comma, semicolon or tab, keeping empty
// fields so column positions stay stable
func splitFields(line string) []string {
	var fields []string
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ',', ';', '\t':
			fields = append(fields, cleanField(line[start:i]))
			start = i + 1
		}
	}
	fields = append(fields, cleanField(line[start:]))
	return fields
}

// cleanField trims a field and strips one surrounding pair of double quotes
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}
