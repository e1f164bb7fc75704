package sparam

import (
	"math"
	"testing"
)

func TestImpulseResponseFlatChannel(t *testing.T) {
	// A frequency-flat unity channel concentrates its impulse response
	// at t = 0.
	tr := FromPoints([]Point{
		{Frequency: 1e6, Amplitude: 1, Phase: 0},
		{Frequency: 20e9, Amplitude: 1, Phase: 0},
	})

	ir, dt, err := tr.ImpulseResponse(64)
	if err != nil {
		t.Fatal(err)
	}

	if len(ir) != 128 {
		t.Fatalf("len = %d, want 128", len(ir))
	}

	if dt <= 0 {
		t.Fatalf("dt = %g, want > 0", dt)
	}

	if ir[0] <= 0 {
		t.Fatalf("ir[0] = %g, want > 0", ir[0])
	}

	for i := 1; i < len(ir); i++ {
		if math.Abs(ir[i]) > math.Abs(ir[0]) {
			t.Fatalf("peak at sample %d, want sample 0", i)
		}
	}
}

func TestImpulseResponseErrors(t *testing.T) {
	if _, _, err := NewTrace().ImpulseResponse(64); err != ErrEmptyTrace {
		t.Errorf("empty trace: err = %v, want ErrEmptyTrace", err)
	}

	tr := FromPoints([]Point{{Frequency: 1e9, Amplitude: 1}})
	if _, _, err := tr.ImpulseResponse(1); err != ErrInvalidBins {
		t.Errorf("bins=1: err = %v, want ErrInvalidBins", err)
	}
}

func TestStepResponseIsRunningSum(t *testing.T) {
	tr := FromPoints([]Point{
		{Frequency: 1e6, Amplitude: 1, Phase: 0},
		{Frequency: 20e9, Amplitude: 1, Phase: 0},
	})

	ir, _, err := tr.ImpulseResponse(64)
	if err != nil {
		t.Fatal(err)
	}

	step, _, err := tr.StepResponse(64)
	if err != nil {
		t.Fatal(err)
	}

	if len(step) != len(ir) {
		t.Fatalf("len = %d, want %d", len(step), len(ir))
	}

	acc := 0.0
	for i, v := range ir {
		acc += v
		if !approxEqual(step[i], acc, 1e-9) {
			t.Fatalf("step[%d] = %g, want %g", i, step[i], acc)
		}
	}
}
