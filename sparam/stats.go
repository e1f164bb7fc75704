package sparam

import "math"

// Stats holds summary statistics of one parameter trace.
//
//nolint:revive
type Stats struct {
	Points     int
	MinFreq    float64 // lowest sampled frequency (Hz)
	MaxFreq    float64 // highest sampled frequency (Hz)
	Min        float64 // minimum linear amplitude
	MinBin     int
	Max        float64 // maximum linear amplitude
	MaxBin     int
	Average    float64
	Min_dB     float64
	Max_dB     float64
	Average_dB float64
}

// toDB converts a linear magnitude to decibels.
// Returns -Inf for zero values.
func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}

// Analyze computes summary statistics over the sampled points.
// It returns ErrEmptyTrace for a trace with no points.
func (t *Trace) Analyze() (Stats, error) {
	if len(t.points) == 0 {
		return Stats{}, ErrEmptyTrace
	}

	st := Stats{
		Points:  len(t.points),
		MinFreq: t.points[0].Frequency,
		MaxFreq: t.points[len(t.points)-1].Frequency,
		Min:     t.points[0].Amplitude,
		Max:     t.points[0].Amplitude,
	}

	sum := 0.0
	for i, p := range t.points {
		if p.Amplitude < st.Min {
			st.Min = p.Amplitude
			st.MinBin = i
		}
		if p.Amplitude > st.Max {
			st.Max = p.Amplitude
			st.MaxBin = i
		}
		sum += p.Amplitude
	}

	st.Average = sum / float64(len(t.points))
	st.Min_dB = toDB(st.Min)
	st.Max_dB = toDB(st.Max)
	st.Average_dB = toDB(st.Average)

	return st, nil
}
