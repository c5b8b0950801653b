package probe

import (
	"errors"
	"math"
	"testing"
)

// sineTrace samples amplitude*sin(2π*freq*t) at n points with spacing dt.
func sineTrace(amplitude, freq, dt float64, n int) Trace {
	tr := Trace{
		Time:   make([]float64, n),
		Values: make([]float64, n),
	}

	for i := 0; i < n; i++ {
		t := float64(i) * dt
		tr.Time[i] = t
		tr.Values[i] = amplitude * math.Sin(2*math.Pi*freq*t)
	}

	return tr
}

func TestSpectrum_SinePeak(t *testing.T) {
	// 8 Hz sine over exactly one second at 64 samples: the peak must land
	// in bin 8 with no leakage.
	tr := sineTrace(1.0, 8, 1.0/64, 64)

	freqs, mags, err := tr.Spectrum()
	if err != nil {
		t.Fatalf("Spectrum error: %v", err)
	}

	if len(freqs) != 33 || len(mags) != 33 {
		t.Fatalf("got %d freqs, %d mags; want 33 each", len(freqs), len(mags))
	}

	peak := 0
	for i := 1; i < len(mags); i++ {
		if mags[i] > mags[peak] {
			peak = i
		}
	}

	if peak != 8 {
		t.Errorf("peak bin = %d, want 8", peak)
	}

	if !almostEqual(freqs[8], 8, 1e-9) {
		t.Errorf("freqs[8] = %g, want 8", freqs[8])
	}

	// Raw FFT magnitude of a full-scale sine is n/2.
	if math.Abs(mags[8]-32) > 1e-6 {
		t.Errorf("mags[8] = %g, want 32", mags[8])
	}
}

func TestSpectrum_DC(t *testing.T) {
	tr := Trace{
		Time:   make([]float64, 16),
		Values: make([]float64, 16),
	}

	for i := range tr.Time {
		tr.Time[i] = float64(i)
		tr.Values[i] = 2.5
	}

	_, mags, err := tr.Spectrum()
	if err != nil {
		t.Fatalf("Spectrum error: %v", err)
	}

	if math.Abs(mags[0]-2.5*16) > 1e-9 {
		t.Errorf("DC bin = %g, want %g", mags[0], 2.5*16)
	}

	for i := 1; i < len(mags); i++ {
		if mags[i] > 1e-9 {
			t.Errorf("bin %d = %g, want ~0", i, mags[i])
		}
	}
}

func TestSpectrum_FrequencyAxis(t *testing.T) {
	dt := 1e-9 // 1 GS/s
	tr := sineTrace(1.0, 1e8, dt, 128)

	freqs, _, err := tr.Spectrum()
	if err != nil {
		t.Fatalf("Spectrum error: %v", err)
	}

	df := 1 / (dt * 128)
	for i, f := range freqs {
		if math.Abs(f-float64(i)*df) > 1e-3 {
			t.Fatalf("freqs[%d] = %g, want %g", i, f, float64(i)*df)
		}
	}
}

func TestSpectrum_NonUniform(t *testing.T) {
	tr := Trace{
		Time:   []float64{0, 1, 2, 4},
		Values: []float64{0, 1, 0, -1},
	}

	if _, _, err := tr.Spectrum(); !errors.Is(err, ErrNonUniform) {
		t.Errorf("Spectrum error = %v; want ErrNonUniform", err)
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{64, 64},
		{65, 128},
	}

	for _, tc := range cases {
		if got := nextPowerOf2(tc.in); got != tc.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
