package sparam

import (
	"errors"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by trace construction and conversion functions.
var (
	ErrLengthMismatch = errors.New("sparam: input slices must have the same length")
	ErrEmptyTrace     = errors.New("sparam: trace has no points")
)

// floatEps is the smallest meaningful frequency spacing between two
// adjacent points. Brackets closer than this interpolate with frac = 0.
const floatEps = 2.220446049250313e-16

// Point is one sample of a single scattering parameter: the response of
// the network at one stimulus frequency.
type Point struct {
	Frequency float64 // stimulus frequency in Hz
	Amplitude float64 // linear magnitude ratio (unitless)
	Phase     float64 // radians
}

// Trace is the frequency response of one (destination, source) port pair,
// stored as an ordered sequence of points.
//
// Invariant: points are strictly non-decreasing by frequency. All search
// and interpolation logic assumes this ordering; the trace does not sort.
type Trace struct {
	points []Point
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{}
}

// FromPoints creates a trace from points already ordered by frequency.
func FromPoints(points []Point) *Trace {
	t := &Trace{points: make([]Point, len(points))}
	copy(t.points, points)
	return t
}

// FromComplex creates a trace from per-frequency real/imaginary arrays,
// as produced by VNA real-imag exports and FFT outputs. The frequency
// axis must be ordered; re and im must match its length.
func FromComplex(freqs, re, im []float64) (*Trace, error) {
	if len(re) != len(freqs) || len(im) != len(freqs) {
		return nil, ErrLengthMismatch
	}

	t := &Trace{points: make([]Point, len(freqs))}

	amps := make([]float64, len(freqs))
	vecmath.Magnitude(amps, re, im)

	for i := range t.points {
		t.points[i] = Point{
			Frequency: freqs[i],
			Amplitude: amps[i],
			Phase:     math.Atan2(im[i], re[i]),
		}
	}

	return t, nil
}

// Len returns the number of sampled points.
func (t *Trace) Len() int {
	return len(t.points)
}

// At returns the point at index i.
func (t *Trace) At(i int) Point {
	return t.points[i]
}

// Points returns the underlying point slice. The slice is owned by the
// trace; callers must not reorder it.
func (t *Trace) Points() []Point {
	return t.points
}

// Append adds a point at the high end of the trace. The caller is
// responsible for keeping the frequency axis non-decreasing.
func (t *Trace) Append(p Point) {
	t.points = append(t.points, p)
}

// CopyFrom replaces this trace's points with a deep copy of rhs.
func (t *Trace) CopyFrom(rhs *Trace) {
	t.points = append(t.points[:0], rhs.points...)
}

// InterpolatePoint returns the response at an arbitrary frequency.
//
// Below the lowest sampled frequency the amplitude is held at the lowest
// point's value (insertion loss is modeled as constant below the measured
// band) and the phase is interpolated toward zero at DC. Above the
// highest sampled frequency both amplitude and phase are zero. Inside the
// band, amplitude interpolates linearly between the bracketing samples
// and phase interpolates with local 2π unwrapping.
//
// The returned point's Frequency is always exactly the query value.
func (t *Trace) InterpolatePoint(frequency float64) Point {
	n := len(t.points)
	if n == 0 {
		return Point{Frequency: frequency}
	}

	first := t.points[0]
	if frequency < first.Frequency {
		phase := interpolatePhase(0, first.Phase, frequency/first.Frequency)
		return Point{Frequency: frequency, Amplitude: first.Amplitude, Phase: phase}
	}

	last := t.points[n-1]
	if frequency > last.Frequency {
		return Point{Frequency: frequency}
	}

	if n == 1 {
		return Point{Frequency: frequency, Amplitude: first.Amplitude, Phase: first.Phase}
	}

	lo, hi := t.bracket(frequency)

	freqLo := t.points[lo].Frequency
	freqHi := t.points[hi].Frequency

	frac := 0.0
	if dfreq := freqHi - freqLo; dfreq > floatEps {
		frac = (frequency - freqLo) / dfreq
	}

	ampLo := t.points[lo].Amplitude
	ampHi := t.points[hi].Amplitude

	return Point{
		Frequency: frequency,
		Amplitude: ampLo + (ampHi-ampLo)*frac,
		Phase:     interpolatePhase(t.points[lo].Phase, t.points[hi].Phase, frac),
	}
}

// InterpolateMagnitude returns the linear magnitude at a frequency.
func (t *Trace) InterpolateMagnitude(frequency float64) float64 {
	return t.InterpolatePoint(frequency).Amplitude
}

// InterpolateAngle returns the phase in radians at a frequency.
func (t *Trace) InterpolateAngle(frequency float64) float64 {
	return t.InterpolatePoint(frequency).Phase
}

// bracket locates the adjacent index pair (lo, lo+1) whose frequencies
// straddle the query. The caller guarantees the query is within the
// sampled range and the trace has at least two points.
func (t *Trace) bracket(frequency float64) (lo, hi int) {
	idx := sort.Search(len(t.points), func(i int) bool {
		return t.points[i].Frequency > frequency
	})

	if idx == 0 {
		return 0, 1
	}
	if idx == len(t.points) {
		return len(t.points) - 2, len(t.points) - 1
	}

	return idx - 1, idx
}

// interpolatePhase interpolates linearly between two phase angles,
// unwrapping locally so that values straddling the ±π boundary produce a
// branch-free window. Endpoint phases are returned exactly (frac 0 or 1);
// for endpoints within [−π, π] the result lies in (−π, 2π). No canonical
// reduction into a fixed range is performed.
func interpolatePhase(phaseLo, phaseHi, frac float64) float64 {
	if math.Abs(phaseLo-phaseHi) > math.Pi {
		if phaseLo < phaseHi {
			phaseLo += 2 * math.Pi
		} else {
			phaseHi += 2 * math.Pi
		}
	}

	ret := phaseLo + (phaseHi-phaseLo)*frac

	if ret > 2*math.Pi {
		ret -= 2 * math.Pi
	}

	return ret
}

// GroupDelay estimates the group delay in seconds at a sampled bin from
// the phase slope across the immediately adjacent sample pair
// (bin, bin+1). It returns 0 when no adjacent pair exists at the high end
// of the trace.
func (t *Trace) GroupDelay(bin int) float64 {
	if bin < 0 || bin+1 >= len(t.points) {
		return 0
	}

	a := t.points[bin]
	b := t.points[bin+1]

	// Frequency is in Hz, not rad/s.
	dfreq := (b.Frequency - a.Frequency) * 2 * math.Pi
	if dfreq <= 0 {
		return 0
	}

	return (a.Phase - b.Phase) / dfreq
}

// Cascade appends a second network stage after this one, in place.
//
// The result stays sampled on this trace's own frequency grid: for each
// point, the right-hand trace is interpolated at the same frequency, then
// amplitudes multiply and phases add, wrapped into [−π, π]. This is an
// elementwise transmission-style composition, only physically correct for
// parameters that behave like simple series insertion (e.g. the through
// path); it is not a full scattering-matrix cascade.
func (t *Trace) Cascade(rhs *Trace) {
	for i := range t.points {
		us := &t.points[i]
		point := rhs.InterpolatePoint(us.Frequency)

		us.Phase += point.Phase
		if us.Phase < -math.Pi {
			us.Phase += 2 * math.Pi
		}
		if us.Phase > math.Pi {
			us.Phase -= 2 * math.Pi
		}

		us.Amplitude *= point.Amplitude
	}
}
