// Package probe post-processes sampled time-domain traces recorded by
// simulation probes and field dumps.
//
// A [Trace] pairs a strictly ascending time axis with sampled values.
// Point queries interpolate linearly on the time axis:
//
//	tr := probe.Trace{Time: times, Values: volts}
//	v, err := tr.ValueAt(2.5e-9, false)
//
// For uniformly sampled traces, [Trace.Spectrum] returns the single-sided
// magnitude spectrum via an FFT, which is the usual first step when turning
// a transient simulation result into a frequency response.
package probe
