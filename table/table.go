package table

import (
	"fmt"
	"sort"
)

// Table is a rectangular numeric table: a slice of rows, each with the same
// number of columns.
type Table [][]float64

// Validate checks that the table has at least one row and that every row has
// the same column count.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: table has no rows", ErrInvalidTable)
	}

	width := len(t[0])
	if width == 0 {
		return fmt.Errorf("%w: rows have no columns", ErrInvalidTable)
	}

	for i, row := range t {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidTable, i, len(row), width)
		}
	}

	return nil
}

// checkCol verifies that col is a valid column index for the table.
func (t Table) checkCol(col int) error {
	if col < 0 || col >= len(t[0]) {
		return fmt.Errorf("%w: column index %d out of range [0, %d)", ErrInvalidTable, col, len(t[0]))
	}

	return nil
}

// Sorted is a table ascending-sorted on a designated key column. It is
// obtained via SortByCol or AsSorted; the zero value is not usable.
//
// Rows with equal key values carry no defined relative order: SortByCol is
// not guaranteed to be stable.
type Sorted struct {
	rows Table
	col  int
}

// SortByCol returns the table sorted in ascending order by column col.
//
// The input table is not modified; the returned Sorted shares the row
// slices but not the outer slice. Ties may appear in either order.
func SortByCol(t Table, col int) (Sorted, error) {
	if err := t.Validate(); err != nil {
		return Sorted{}, err
	}

	if err := t.checkCol(col); err != nil {
		return Sorted{}, err
	}

	rows := make(Table, len(t))
	copy(rows, t)

	sort.Slice(rows, func(i, j int) bool {
		return rows[i][col] < rows[j][col]
	})

	return Sorted{rows: rows, col: col}, nil
}

// AsSorted wraps a table that is already ascending-sorted on column col,
// skipping the sort. It fails with ErrInvalidTable if the table is ragged,
// empty, or not actually sorted on col.
func AsSorted(t Table, col int) (Sorted, error) {
	if err := t.Validate(); err != nil {
		return Sorted{}, err
	}

	if err := t.checkCol(col); err != nil {
		return Sorted{}, err
	}

	for i := 1; i < len(t); i++ {
		if t[i][col] < t[i-1][col] {
			return Sorted{}, fmt.Errorf("%w: not sorted ascending on column %d at row %d", ErrInvalidTable, col, i)
		}
	}

	return Sorted{rows: t, col: col}, nil
}

// Len returns the number of rows.
func (s Sorted) Len() int {
	return len(s.rows)
}

// KeyCol returns the column index the table is sorted on.
func (s Sorted) KeyCol() int {
	return s.col
}

// Row returns the i-th row. The returned slice is shared with the table and
// must not be modified.
func (s Sorted) Row(i int) []float64 {
	return s.rows[i]
}

// InsertionIndex returns the smallest index i such that the key-column value
// of row i is >= val (lower-bound semantics). If val exceeds every key, the
// result is Len(), one past the last valid index.
func (s Sorted) InsertionIndex(val float64) int {
	return sort.Search(len(s.rows), func(i int) bool {
		return s.rows[i][s.col] >= val
	})
}
