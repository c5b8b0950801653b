package table

import (
	"fmt"
	"sort"
)

// NearestIndex returns the index of the element of arr closest to val.
// The array must be sorted ascending and non-empty.
//
// Values at or beyond the array bounds resolve to the nearest end: index 0
// when val <= arr[0], the last index when val >= arr[len-1]. Both bounds are
// checked before either neighbor is read. An exact match returns that
// element's index, and an exact midpoint between two elements resolves to
// the lower index.
func NearestIndex(val float64, arr []float64) (int, error) {
	if len(arr) == 0 {
		return 0, fmt.Errorf("%w: empty array", ErrInvalidTable)
	}

	last := len(arr) - 1

	if val <= arr[0] {
		return 0, nil
	}

	if val >= arr[last] {
		return last, nil
	}

	// arr[0] < val < arr[last], so 1 <= i <= last and both candidates exist.
	i := sort.SearchFloat64s(arr, val)
	if val-arr[i-1] <= arr[i]-val {
		return i - 1, nil
	}

	return i, nil
}

// LinearInterp returns the linearly interpolated y-value at x on the segment
// from (xlo, ylo) to (xhi, yhi).
//
// It fails with ErrDegenerateInterval when xlo == xhi and with ErrOutOfRange
// when x lies outside [xlo, xhi]; it never produces Inf or NaN from a
// zero-width interval.
func LinearInterp(x, xlo, xhi, ylo, yhi float64) (float64, error) {
	if xlo == xhi {
		return 0, fmt.Errorf("%w: x-interval [%g, %g]", ErrDegenerateInterval, xlo, xhi)
	}

	if x < xlo || x > xhi {
		return 0, fmt.Errorf("%w: x=%g outside [%g, %g]", ErrOutOfRange, x, xlo, xhi)
	}

	return ylo + (x-xlo)*(yhi-ylo)/(xhi-xlo), nil
}

// Interp returns the value of targetCol linearly interpolated at the point
// where the key column equals selVal.
//
// When selVal falls outside the table's key range, the behavior depends on
// permitOutside: true clamps to the first or last row's target value, false
// fails with ErrOutOfRange. A selVal exactly equal to the first or last key
// returns that boundary row's target value without interpolating.
func (s Sorted) Interp(targetCol int, selVal float64, permitOutside bool) (float64, error) {
	if err := s.rows.checkCol(targetCol); err != nil {
		return 0, err
	}

	n := len(s.rows)
	first := s.rows[0][s.col]
	last := s.rows[n-1][s.col]

	if permitOutside {
		if selVal < first {
			return s.rows[0][targetCol], nil
		}

		if selVal > last {
			return s.rows[n-1][targetCol], nil
		}
	}

	if selVal == first {
		return s.rows[0][targetCol], nil
	}

	if selVal == last {
		return s.rows[n-1][targetCol], nil
	}

	if selVal < first || selVal > last {
		return 0, fmt.Errorf("%w: %g outside key range [%g, %g]", ErrOutOfRange, selVal, first, last)
	}

	// first < selVal < last, so 1 <= i < n.
	i := s.InsertionIndex(selVal)

	return LinearInterp(
		selVal,
		s.rows[i-1][s.col], s.rows[i][s.col],
		s.rows[i-1][targetCol], s.rows[i][targetCol],
	)
}
