package reconcile

import (
	"reflect"
	"testing"
)

func TestTokenizeDiscardsHeaderAndComments(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		dropped int
	}{
		{"empty file", "", 0, 0},
		{"whitespace only", "  \n\t\n  \n", 0, 0},
		{"header only", "sku,variant,qty,cost,notes\n", 0, 0},
		{"comments only", "# a\n# b\n", 0, 0},
		{"header then data", "sku,variant,qty,cost,notes\nABC1,Red,2,9.90,\n", 1, 0},
		{"comments then header then data", "# template\n# fill in below\nsku,variant,qty,cost,notes\nABC1,Red,2,9.90,\n", 1, 0},
		{"comment between data rows", "ABC1,Red,2\n# middle\nABC2,Blue,3\n", 2, 0},
		{"short line dropped", "ABC1,Red,2\njustone\n", 1, 1},
		{"blank lines between rows", "\nABC1,Red,2\n\nABC2,Blue,3\n\n", 2, 0},
	}

	for _, test := range tests {
		rows, dropped := Tokenize(test.input)
		if len(rows) != test.want {
			t.Errorf("%s: got %d rows, expected %d", test.name, len(rows), test.want)
		}
		if dropped != test.dropped {
			t.Errorf("%s: got %d dropped lines, expected %d", test.name, dropped, test.dropped)
		}
	}
}

func TestTokenizeHeaderIsExactFieldMatch(t *testing.T) {
	// A first data row whose SKU starts with "SKU" must not be mistaken
	// for a header line
	rows, _ := Tokenize("SKU001,,5,12.50,urgent\n")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Fields[0] != "SKU001" {
		t.Errorf("expected first field SKU001, got %q", rows[0].Fields[0])
	}

	// Mixed-case header is still recognized
	rows, _ = Tokenize("SKU;Variant;Qty\nABC1;Red;2\n")
	if len(rows) != 1 {
		t.Fatalf("expected header to be discarded, got %d rows", len(rows))
	}
}

func TestTokenizeMixedDelimiters(t *testing.T) {
	rows, _ := Tokenize("A1,Red,2\nB2;Blue;3\nC3\tGreen\t4\nD4,Black;5\t6\n")
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	want := [][]string{
		{"A1", "Red", "2"},
		{"B2", "Blue", "3"},
		{"C3", "Green", "4"},
		{"D4", "Black", "5", "6"},
	}
	for i, fields := range want {
		if !reflect.DeepEqual(rows[i].Fields, fields) {
			t.Errorf("row %d: got %v, expected %v", i, rows[i].Fields, fields)
		}
	}
}

func TestTokenizeQuotedFields(t *testing.T) {
	rows, _ := Tokenize(`"ABC1","Red / Small",2,"9.90","keep ""quotes"" inside"` + "\n")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	fields := rows[0].Fields
	if fields[0] != "ABC1" || fields[1] != "Red / Small" {
		t.Errorf("quotes not stripped: %v", fields)
	}
	// Only one surrounding pair is stripped
	if fields[4] != `keep ""quotes"" inside` {
		t.Errorf("inner quotes must survive, got %q", fields[4])
	}

	// Unbalanced quotes are left alone
	rows, _ = Tokenize("\"ABC1,Red,2\n")
	if rows[0].Fields[0] != `"ABC1` {
		t.Errorf("unbalanced quote should not be stripped, got %q", rows[0].Fields[0])
	}
}

func TestTokenizePreservesRawLineNumbers(t *testing.T) {
	input := "sku,variant,qty\n\n# comment\nABC1,Red,2\nnoise\nABC2,Blue,3\n"
	rows, dropped := Tokenize(input)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].LineNumber != 4 || rows[1].LineNumber != 6 {
		t.Errorf("expected line numbers 4 and 6, got %d and %d", rows[0].LineNumber, rows[1].LineNumber)
	}
	if dropped != 1 {
		t.Errorf("expected 1 dropped line, got %d", dropped)
	}
}

func TestTokenizeKeepsEmptyFields(t *testing.T) {
	rows, _ := Tokenize("SKU999,,2,,\n")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if len(rows[0].Fields) != 5 {
		t.Fatalf("expected 5 fields, got %d: %v", len(rows[0].Fields), rows[0].Fields)
	}
	for _, idx := range []int{1, 3, 4} {
		if rows[0].Fields[idx] != "" {
			t.Errorf("field %d should be empty, got %q", idx, rows[0].Fields[idx])
		}
	}
}

func TestTokenizeWindowsLineEndings(t *testing.T) {
	rows, _ := Tokenize("ABC1,Red,2\r\nABC2,Blue,3\r\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Fields[2] != "3" {
		t.Errorf("trailing CR not trimmed, got %q", rows[1].Fields[2])
	}
}
