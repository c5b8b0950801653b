package probe

import (
	"errors"
	"fmt"

	"github.com/emkit-org/emkit/table"
)

// Errors returned by trace operations.
var (
	ErrLengthMismatch = errors.New("probe: time and value slices must have equal length")
	ErrTooShort       = errors.New("probe: trace needs at least two samples")
	ErrTimeOrder      = errors.New("probe: time axis must be strictly ascending")
	ErrNonUniform     = errors.New("probe: sample spacing must be uniform")
)

// Trace is a sampled time-domain signal: a value for each point of a
// strictly ascending time axis.
type Trace struct {
	Time   []float64 // sample times in seconds, strictly ascending
	Values []float64 // sampled values, one per time point
}

// Validate checks the trace shape: equal slice lengths, at least two
// samples, and a strictly ascending time axis.
func (tr Trace) Validate() error {
	if len(tr.Time) != len(tr.Values) {
		return fmt.Errorf("%w: %d times, %d values", ErrLengthMismatch, len(tr.Time), len(tr.Values))
	}

	if len(tr.Time) < 2 {
		return ErrTooShort
	}

	for i := 1; i < len(tr.Time); i++ {
		if tr.Time[i] <= tr.Time[i-1] {
			return fmt.Errorf("%w: t[%d]=%g, t[%d]=%g", ErrTimeOrder, i-1, tr.Time[i-1], i, tr.Time[i])
		}
	}

	return nil
}

// NearestSample returns the index of the sample whose time is closest to t.
func (tr Trace) NearestSample(t float64) (int, error) {
	if err := tr.Validate(); err != nil {
		return 0, err
	}

	return table.NearestIndex(t, tr.Time)
}

// ValueAt returns the trace value at time t, linearly interpolated between
// the two neighboring samples. With clampOutside set, times outside the
// trace return the first or last sample value; otherwise they fail with
// table.ErrOutOfRange.
func (tr Trace) ValueAt(t float64, clampOutside bool) (float64, error) {
	s, err := tr.sorted()
	if err != nil {
		return 0, err
	}

	return s.Interp(1, t, clampOutside)
}

// sorted adapts the trace as a two-column (time, value) sorted table.
func (tr Trace) sorted() (table.Sorted, error) {
	if err := tr.Validate(); err != nil {
		return table.Sorted{}, err
	}

	rows := make(table.Table, len(tr.Time))
	for i := range rows {
		rows[i] = []float64{tr.Time[i], tr.Values[i]}
	}

	return table.AsSorted(rows, 0)
}
