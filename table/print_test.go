package table_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/emkit-org/emkit/table"
)

func TestFprint(t *testing.T) {
	var b strings.Builder

	cols := [][]float64{
		{1, 10},
		{2.5, 3.5},
	}

	err := table.Fprint(&b, cols, []string{"a", "b"}, []int{0, 1})
	if err != nil {
		t.Fatalf("Fprint error: %v", err)
	}

	want := "a       b        \n" +
		"1       2.5      \n" +
		"10      3.5      \n"

	if got := b.String(); got != want {
		t.Errorf("Fprint output:\n%q\nwant:\n%q", got, want)
	}
}

func TestFprint_WidthTracksMagnitude(t *testing.T) {
	var narrow, wide strings.Builder

	if err := table.Fprint(&narrow, [][]float64{{1, 2}}, []string{"x"}, []int{0}); err != nil {
		t.Fatalf("Fprint error: %v", err)
	}

	if err := table.Fprint(&wide, [][]float64{{1, 20000}}, []string{"x"}, []int{0}); err != nil {
		t.Fatalf("Fprint error: %v", err)
	}

	narrowHeader := strings.SplitN(narrow.String(), "\n", 2)[0]
	wideHeader := strings.SplitN(wide.String(), "\n", 2)[0]

	if len(wideHeader) <= len(narrowHeader) {
		t.Errorf("column width did not grow with magnitude: %d vs %d", len(wideHeader), len(narrowHeader))
	}
}

func TestFprint_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cols  [][]float64
		names []string
		prec  []int
	}{
		{"NoColumns", nil, nil, nil},
		{"NameCountMismatch", [][]float64{{1}}, []string{"a", "b"}, []int{0}},
		{"PrecCountMismatch", [][]float64{{1}}, []string{"a"}, []int{0, 1}},
		{"RaggedColumns", [][]float64{{1, 2}, {3}}, []string{"a", "b"}, []int{0, 0}},
		{"NegativePrecision", [][]float64{{1}}, []string{"a"}, []int{-1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b strings.Builder

			err := table.Fprint(&b, tc.cols, tc.names, tc.prec)
			if !errors.Is(err, table.ErrInvalidTable) {
				t.Errorf("Fprint error = %v; want ErrInvalidTable", err)
			}
		})
	}
}
