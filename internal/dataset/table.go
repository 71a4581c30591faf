package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
)

var (
	// ErrColumnExists is returned when adding a column that is already present
	ErrColumnExists = errors.New("column already exists")

	// ErrLengthMismatch is returned when a column's length differs from the table's row count
	ErrLengthMismatch = errors.New("column length does not match row count")

	// ErrNoColumns is returned when reading a CSV with no header row
	ErrNoColumns = errors.New("dataset has no columns")
)

// Column is a single named column. A column is either numeric (Nums, with NaN
// marking missing cells) or textual (Strs, with "" marking missing cells).
type Column struct {
	Name string
	Text bool
	Nums []float64
	Strs []string
}

// Table is an ordered collection of equally sized columns, the in-memory form
// of a tabular dataset. Column order is insertion order and is preserved
// through CSV round trips.
type Table struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// NewTable creates an empty table with the given number of rows.
func NewTable(rows int) *Table {
	return &Table{index: make(map[string]int), rows: rows}
}

// Rows returns the number of rows in the table.
func (t *Table) Rows() int {
	return t.rows
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Num returns the values of a numeric column.
func (t *Table) Num(name string) ([]float64, bool) {
	i, ok := t.index[name]
	if !ok || t.cols[i].Text {
		return nil, false
	}
	return t.cols[i].Nums, true
}

// Text returns the values of a textual column.
func (t *Table) Text(name string) ([]string, bool) {
	i, ok := t.index[name]
	if !ok || !t.cols[i].Text {
		return nil, false
	}
	return t.cols[i].Strs, true
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// AddNum appends a numeric column. Adding over an existing name is an error;
// derived features are only ever added when absent.
func (t *Table) AddNum(name string, vals []float64) error {
	if t.Has(name) {
		return fmt.Errorf("%w: %s", ErrColumnExists, name)
	}
	if len(vals) != t.rows {
		return fmt.Errorf("%w: %s has %d values, want %d", ErrLengthMismatch, name, len(vals), t.rows)
	}
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, &Column{Name: name, Nums: vals})
	return nil
}

// AddText appends a textual column.
func (t *Table) AddText(name string, vals []string) error {
	if t.Has(name) {
		return fmt.Errorf("%w: %s", ErrColumnExists, name)
	}
	if len(vals) != t.rows {
		return fmt.Errorf("%w: %s has %d values, want %d", ErrLengthMismatch, name, len(vals), t.rows)
	}
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, &Column{Name: name, Text: true, Strs: vals})
	return nil
}

// Mean returns the arithmetic mean of a numeric column, skipping NaN cells.
// The second result is false when the column is missing, textual, or has no
// valid cells.
func (t *Table) Mean(name string) (float64, bool) {
	vals, ok := t.Num(name)
	if !ok {
		return 0, false
	}
	sum, n := 0.0, 0
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// SortByNum stably reorders all rows by ascending values of a numeric column.
// NaN cells sort first. Missing or textual sort columns leave the table
// untouched.
func (t *Table) SortByNum(name string) {
	key, ok := t.Num(name)
	if !ok {
		return
	}
	order := make([]int, t.rows)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := key[order[a]], key[order[b]]
		if math.IsNaN(va) {
			return !math.IsNaN(vb)
		}
		if math.IsNaN(vb) {
			return false
		}
		return va < vb
	})
	for _, c := range t.cols {
		if c.Text {
			reordered := make([]string, t.rows)
			for i, j := range order {
				reordered[i] = c.Strs[j]
			}
			c.Strs = reordered
		} else {
			reordered := make([]float64, t.rows)
			for i, j := range order {
				reordered[i] = c.Nums[j]
			}
			c.Nums = reordered
		}
	}
}

// ReadCSV parses a CSV stream with a header row into a table. A column is
// numeric when every non-empty cell parses as a float; empty cells become NaN.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, ErrNoColumns
	}

	header := records[0]
	rows := len(records) - 1
	t := NewTable(rows)

	for col, name := range header {
		raw := make([]string, rows)
		for i := 0; i < rows; i++ {
			if col < len(records[i+1]) {
				raw[i] = records[i+1][col]
			}
		}

		numeric := true
		nums := make([]float64, rows)
		for i, cell := range raw {
			if cell == "" {
				nums[i] = math.NaN()
				continue
			}
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				numeric = false
				break
			}
			nums[i] = v
		}

		if numeric {
			if err := t.AddNum(name, nums); err != nil {
				return nil, err
			}
		} else {
			if err := t.AddText(name, raw); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// WriteCSV writes the table with a header row. NaN cells are written empty.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	row := make([]string, len(t.cols))
	for i := 0; i < t.rows; i++ {
		for j, c := range t.cols {
			if c.Text {
				row[j] = c.Strs[i]
			} else if math.IsNaN(c.Nums[i]) {
				row[j] = ""
			} else {
				row[j] = strconv.FormatFloat(c.Nums[i], 'g', -1, 64)
			}
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
