// Package phys provides closed-form vacuum electromagnetics helpers:
// wavelength and wavenumber from frequency, the speed of light scaled to a
// simulation length unit, and tolerance-based float comparison.
//
// Simulation meshes express coordinates in a length unit (e.g. 1e-3 for
// millimeters). Passing that unit to these helpers yields results in the
// same unit, so they can be compared against mesh dimensions directly.
package phys

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// SpeedOfLightVacuum is the speed of light in vacuum, in m/s.
const SpeedOfLightVacuum = 299792458.0

// ErrLengthMismatch indicates dst and freq slices of differing lengths.
var ErrLengthMismatch = errors.New("phys: dst and freq must have equal length")

// SpeedOfLight returns the vacuum speed of light expressed in a mesh length
// unit per second. unit is the length unit in meters and must be positive.
func SpeedOfLight(unit float64) float64 {
	return SpeedOfLightVacuum / unit
}

// Wavelength returns the vacuum wavelength for a frequency in Hz, expressed
// in the given length unit.
func Wavelength(freq, unit float64) float64 {
	return SpeedOfLight(unit) / freq
}

// Wavenumber returns the vacuum angular wavenumber 2π/λ for a frequency in
// Hz, expressed per length unit.
func Wavenumber(freq, unit float64) float64 {
	return 2 * math.Pi / Wavelength(freq, unit)
}

// Wavelengths computes the vacuum wavelength for each frequency into dst.
// dst and freq must have equal length and may alias.
func Wavelengths(dst, freq []float64, unit float64) error {
	if len(dst) != len(freq) {
		return ErrLengthMismatch
	}

	for i, f := range freq {
		dst[i] = 1 / f
	}

	vecmath.ScaleBlockInPlace(dst, SpeedOfLight(unit))

	return nil
}

// Wavenumbers computes the vacuum angular wavenumber for each frequency into
// dst. dst and freq must have equal length and may alias.
func Wavenumbers(dst, freq []float64, unit float64) error {
	if len(dst) != len(freq) {
		return ErrLengthMismatch
	}

	vecmath.ScaleBlock(dst, freq, 2*math.Pi/SpeedOfLight(unit))

	return nil
}

// FloatEqual reports whether a and b differ by at most tol. It avoids
// spurious mismatches from finite float precision in exact comparisons.
func FloatEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
