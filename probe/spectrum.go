package probe

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/emkit-org/emkit/phys"
)

// spacingTol is the relative tolerance when checking for uniform sample
// spacing, loose enough to absorb accumulated float error in a generated
// time axis.
const spacingTol = 1e-9

// Spectrum returns the single-sided magnitude spectrum of a uniformly
// sampled trace.
//
// The trace is zero-padded to the next power of two before the FFT, so the
// frequency bins are freqs[i] = i / (dt * fftSize) for the padded size.
// Magnitudes are raw FFT magnitudes, not normalized by the sample count.
// Traces with non-uniform spacing fail with ErrNonUniform.
func (tr Trace) Spectrum() (freqs, mags []float64, err error) {
	if err := tr.Validate(); err != nil {
		return nil, nil, err
	}

	dt := tr.Time[1] - tr.Time[0]
	for i := 2; i < len(tr.Time); i++ {
		if !phys.FloatEqual(tr.Time[i]-tr.Time[i-1], dt, spacingTol*dt) {
			return nil, nil, fmt.Errorf("%w: step %d is %g, want %g", ErrNonUniform, i, tr.Time[i]-tr.Time[i-1], dt)
		}
	}

	n := len(tr.Values)
	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("probe: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range tr.Values {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("probe: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1

	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags = make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	freqs = make([]float64, bins)
	df := 1 / (dt * float64(fftSize))

	for i := range freqs {
		freqs[i] = float64(i) * df
	}

	return freqs, mags, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
