// Package table provides search and linear interpolation over rectangular
// numeric tables sorted on a key column.
//
// A [Table] is a slice of equally sized float64 rows. Sorting it on a column
// with [SortByCol] yields a [Sorted] value, which is the only type the
// search and interpolation operations accept. This makes the "table must be
// sorted on the selection column" precondition a property of the type rather
// than a convention the caller can forget:
//
//	t := table.Table{{10, 100}, {0, 0}, {20, 400}}
//	s, err := table.SortByCol(t, 0)
//	if err != nil {
//	    // ragged or empty table
//	}
//	v, err := s.Interp(1, 5, false) // 50.0
//
// Data that is already ordered (a monotone sweep result, a time axis) can
// skip the sort with [AsSorted], which verifies the ordering instead.
//
// All operations are pure reads. A Sorted value may be shared between
// goroutines as long as nobody mutates the underlying rows.
package table
