package sparam

import "math"

// SweepSeries is one channel of a swept-frequency measurement: sample
// values plus the timing metadata that places each sample on the
// frequency axis. It mirrors the generic sampled-signal container used by
// acquisition front ends, so a pair of dB/degree waveforms can be
// consumed directly.
type SweepSeries struct {
	Samples      []float64 // per-sample values (dB or degrees)
	Offsets      []int64   // per-sample positions, in Timescale units
	Timescale    float64   // Hz per offset unit
	TriggerPhase float64   // position of offset 0, in Hz
}

// Position returns the frequency of sample i in Hz.
func (s *SweepSeries) Position(i int) float64 {
	return float64(s.Offsets[i])*s.Timescale + s.TriggerPhase
}

// FromSweep builds a trace from paired magnitude (dB) and phase (degrees)
// sweep series sampled at the same positions, one point per index over
// the shorter of the two. Conversion per point:
//
//	amplitude = 10^(dB/20)
//	phase     = degrees · π/180
//	frequency = offset·timescale + triggerPhase (from the magnitude series)
//
// The output is in sample order; the caller must supply monotonically
// increasing frequency positions, as the engine does not sort.
func FromSweep(mag, ang *SweepSeries) *Trace {
	n := len(mag.Samples)
	if len(ang.Samples) < n {
		n = len(ang.Samples)
	}

	const degToRad = math.Pi / 180

	t := &Trace{points: make([]Point, n)}
	for i := 0; i < n; i++ {
		t.points[i] = Point{
			Frequency: mag.Position(i),
			Amplitude: math.Pow(10, mag.Samples[i]/20),
			Phase:     ang.Samples[i] * degToRad,
		}
	}

	return t
}
