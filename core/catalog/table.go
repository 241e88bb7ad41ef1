package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a raw tabular input: a normalized header and string cells. Both the
// CSV and XLSX readers produce this shape so schema detection only has to be
// written once.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Col returns the index of a normalized column name, or -1 when absent.
func (t Table) Col(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasCols reports whether every named column is present.
func (t Table) HasCols(names ...string) bool {
	for _, n := range names {
		if t.Col(n) < 0 {
			return false
		}
	}
	return true
}

// Cell returns the value at the given column index, tolerating ragged rows.
func (t Table) Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func normalizeHeader(header []string) []string {
	cols := make([]string, len(header))
	for i, c := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return cols
}

// ReadCSV loads a comma-separated file into a Table. Column names are trimmed
// and lower-cased; ragged rows are kept as-is.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, errors.New("empty csv")
	}
	return Table{Columns: normalizeHeader(records[0]), Rows: records[1:]}, nil
}

// ReadXLSX loads the first sheet of a spreadsheet into a Table. The first row
// is treated as the header.
func ReadXLSX(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Table{}, errors.New("empty sheet")
	}
	return Table{Columns: normalizeHeader(rows[0]), Rows: rows[1:]}, nil
}
