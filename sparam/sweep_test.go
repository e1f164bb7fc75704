package sparam

import (
	"math"
	"testing"
)

func TestFromSweepConversion(t *testing.T) {
	mag := &SweepSeries{
		Samples:   []float64{-6.0206},
		Offsets:   []int64{1},
		Timescale: 1e9,
	}
	ang := &SweepSeries{
		Samples:   []float64{90},
		Offsets:   []int64{1},
		Timescale: 1e9,
	}

	tr := FromSweep(mag, ang)

	if tr.Len() != 1 {
		t.Fatalf("len = %d, want 1", tr.Len())
	}

	p := tr.At(0)
	if p.Frequency != 1e9 {
		t.Errorf("frequency = %g, want 1e9", p.Frequency)
	}
	if !approxEqual(p.Amplitude, 0.5, 1e-4) {
		t.Errorf("amplitude = %g, want ~0.5", p.Amplitude)
	}
	if !approxEqual(p.Phase, math.Pi/2, 1e-12) {
		t.Errorf("phase = %g, want %g", p.Phase, math.Pi/2)
	}
}

func TestFromSweepShorterSeriesWins(t *testing.T) {
	mag := &SweepSeries{
		Samples:   []float64{0, -3, -6},
		Offsets:   []int64{1, 2, 3},
		Timescale: 1e9,
	}
	ang := &SweepSeries{
		Samples:   []float64{0, -10},
		Offsets:   []int64{1, 2},
		Timescale: 1e9,
	}

	tr := FromSweep(mag, ang)

	if tr.Len() != 2 {
		t.Errorf("len = %d, want 2 (shorter series)", tr.Len())
	}
}

func TestSweepSeriesPosition(t *testing.T) {
	s := &SweepSeries{
		Samples:      []float64{0, 0, 0},
		Offsets:      []int64{0, 1, 2},
		Timescale:    50e6,
		TriggerPhase: 1e9,
	}

	tests := []struct {
		i    int
		want float64
	}{
		{0, 1e9},
		{1, 1.05e9},
		{2, 1.1e9},
	}

	for _, tt := range tests {
		if got := s.Position(tt.i); got != tt.want {
			t.Errorf("Position(%d) = %g, want %g", tt.i, got, tt.want)
		}
	}
}

func TestStatsAnalyze(t *testing.T) {
	tr := FromPoints([]Point{
		{Frequency: 1e9, Amplitude: 1.0},
		{Frequency: 2e9, Amplitude: 0.5},
		{Frequency: 3e9, Amplitude: 0.25},
	})

	st, err := tr.Analyze()
	if err != nil {
		t.Fatal(err)
	}

	if st.Points != 3 {
		t.Errorf("Points = %d, want 3", st.Points)
	}
	if st.MinFreq != 1e9 || st.MaxFreq != 3e9 {
		t.Errorf("span = (%g, %g), want (1e9, 3e9)", st.MinFreq, st.MaxFreq)
	}
	if st.Min != 0.25 || st.MinBin != 2 {
		t.Errorf("Min = %g at bin %d, want 0.25 at 2", st.Min, st.MinBin)
	}
	if st.Max != 1.0 || st.MaxBin != 0 {
		t.Errorf("Max = %g at bin %d, want 1.0 at 0", st.Max, st.MaxBin)
	}
	if !approxEqual(st.Average, 7.0/12, 1e-12) {
		t.Errorf("Average = %g, want %g", st.Average, 7.0/12)
	}
	if !approxEqual(st.Max_dB, 0, 1e-12) {
		t.Errorf("Max_dB = %g, want 0", st.Max_dB)
	}
	if !approxEqual(st.Min_dB, -12.0412, 1e-3) {
		t.Errorf("Min_dB = %g, want ~-12.04", st.Min_dB)
	}
}

func TestStatsEmptyTrace(t *testing.T) {
	_, err := NewTrace().Analyze()
	if err != ErrEmptyTrace {
		t.Errorf("err = %v, want ErrEmptyTrace", err)
	}
}
