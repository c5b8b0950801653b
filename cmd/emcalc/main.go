// Command emcalc prints a vacuum wavelength/wavenumber table for a range of
// frequencies, expressed in a simulation length unit.
//
// Usage:
//
//	emcalc [flags]
//
// Examples:
//
//	emcalc -start 1e9 -stop 10e9 -points 10
//	emcalc -start 2.4e9 -stop 2.5e9 -points 5 -unit 1e-3
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/emkit-org/emkit/phys"
	"github.com/emkit-org/emkit/table"
)

func main() {
	var (
		start  = flag.Float64("start", 1e9, "start frequency in Hz")
		stop   = flag.Float64("stop", 10e9, "stop frequency in Hz")
		points = flag.Int("points", 10, "number of frequency points")
		unit   = flag.Float64("unit", 1e-3, "length unit in meters (1e-3 = mm)")
	)

	flag.Parse()

	if err := run(*start, *stop, *points, *unit); err != nil {
		fmt.Fprintln(os.Stderr, "emcalc:", err)
		os.Exit(1)
	}
}

func run(start, stop float64, points int, unit float64) error {
	switch {
	case start <= 0:
		return fmt.Errorf("start frequency must be positive, got %g", start)
	case stop < start:
		return fmt.Errorf("stop frequency %g is below start %g", stop, start)
	case points < 1:
		return fmt.Errorf("points must be at least 1, got %d", points)
	case unit <= 0:
		return fmt.Errorf("length unit must be positive, got %g", unit)
	}

	freq := make([]float64, points)
	if points == 1 {
		freq[0] = start
	} else {
		step := (stop - start) / float64(points-1)
		for i := range freq {
			freq[i] = start + float64(i)*step
		}
	}

	lambda := make([]float64, points)
	if err := phys.Wavelengths(lambda, freq, unit); err != nil {
		return err
	}

	k := make([]float64, points)
	if err := phys.Wavenumbers(k, freq, unit); err != nil {
		return err
	}

	ghz := make([]float64, points)
	for i, f := range freq {
		ghz[i] = f / 1e9
	}

	return table.Fprint(
		os.Stdout,
		[][]float64{ghz, lambda, k},
		[]string{"freq_ghz", "wavelength", "wavenumber"},
		[]int{3, 4, 6},
	)
}
