package table

import (
	"fmt"
	"io"
	"math"
)

// extraSpace pads every column beyond the digits needed for its widest value.
const extraSpace = 3

// Fprint writes a left-aligned fixed-point rendering of column-major data to
// w. cols holds one slice per column, names the column headers, and prec the
// number of decimal places per column. Column widths are derived from the
// magnitude of each column's largest absolute value plus its precision, so
// the layout is a pure function of the arguments.
func Fprint(w io.Writer, cols [][]float64, names []string, prec []int) error {
	if len(cols) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidTable)
	}

	if len(names) != len(cols) || len(prec) != len(cols) {
		return fmt.Errorf("%w: got %d columns, %d names, %d precisions", ErrInvalidTable, len(cols), len(names), len(prec))
	}

	rows := len(cols[0])
	for i, col := range cols {
		if len(col) != rows {
			return fmt.Errorf("%w: column %d has %d rows, want %d", ErrInvalidTable, i, len(col), rows)
		}
	}

	widths := make([]int, len(cols))
	for i, col := range cols {
		if prec[i] < 0 {
			return fmt.Errorf("%w: negative precision for column %d", ErrInvalidTable, i)
		}

		widths[i] = valDigits(maxAbs(col)) + prec[i] + 2 + extraSpace
	}

	for i, name := range names {
		if _, err := fmt.Fprintf(w, "%-*s", widths[i], name); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	for r := 0; r < rows; r++ {
		for i, col := range cols {
			if _, err := fmt.Fprintf(w, "%-*.*f", widths[i], prec[i], col[r]); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// valDigits returns the digit count needed for the integral part of val,
// including room for a sign.
func valDigits(val float64) int {
	const extraDigits = 2

	if val < 10 {
		return extraDigits + 1
	}

	return int(math.Log10(val)) + extraDigits
}

func maxAbs(col []float64) float64 {
	m := 0.0
	for _, v := range col {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return m
}
