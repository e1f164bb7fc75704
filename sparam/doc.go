// Package sparam models the frequency-domain scattering parameters of a
// multi-port electrical network, such as a cable, fixture, or PCB trace
// characterized by a swept-frequency measurement.
//
// The core types are [Trace], the frequency response of a single
// (destination, source) port pair stored as mag-angle points, and
// [Network], which owns one Trace per ordered port pair. A Trace can be
// queried at arbitrary frequencies, cascaded with a second network stage,
// and converted to a time-domain impulse response.
//
// # Usage
//
// Build a trace from a swept dB/degree measurement and query it:
//
//	mag := &sparam.SweepSeries{Samples: magDB, Offsets: bins, Timescale: 1e6}
//	ang := &sparam.SweepSeries{Samples: angDeg, Offsets: bins, Timescale: 1e6}
//	trace := sparam.FromSweep(mag, ang)
//	p := trace.InterpolatePoint(2.4e9)
//
// Cascade a fixture after a channel and inspect the result:
//
//	channel.Cascade(fixture)
//	delay := channel.Param(2, 1).GroupDelay(0)
//
// Interpolation policy: below the measured band the amplitude is held flat
// and the phase is interpolated toward zero at DC; above the band both are
// zero; inside the band amplitude interpolates linearly and phase
// interpolates with local 2π unwrapping so values straddling the ±π
// boundary do not produce spurious jumps.
//
// All operations are synchronous, deterministic, and allocation-light; a
// Network and its traces must be externally serialized if shared across
// goroutines while being mutated.
package sparam
