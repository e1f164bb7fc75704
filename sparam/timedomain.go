package sparam

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by time-domain conversion.
var ErrInvalidBins = errors.New("sparam: bins must be >= 2")

// ImpulseResponse converts the trace to a real time-domain impulse
// response, predicting the channel response of the parameter (typically
// S21) it models.
//
// The trace is resampled onto a uniform grid of bins points from DC to
// its highest sampled frequency using InterpolatePoint, expanded to a
// hermitian-symmetric spectrum, and inverse-FFT'd. It returns the
// impulse response and the time step between samples in seconds.
func (t *Trace) ImpulseResponse(bins int) ([]float64, float64, error) {
	if len(t.points) == 0 {
		return nil, 0, ErrEmptyTrace
	}

	if bins < 2 {
		return nil, 0, ErrInvalidBins
	}

	fmax := t.points[len(t.points)-1].Frequency
	df := fmax / float64(bins-1)

	fftSize := nextPowerOf2(2 * bins)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("sparam: failed to create FFT plan: %w", err)
	}

	// Uniformly resampled one-sided spectrum, mirrored so the inverse
	// transform is real. Bins above fmax stay zero (the above-band
	// response is zero by the interpolation policy anyway).
	spectrum := make([]complex128, fftSize)
	for k := 0; k < bins; k++ {
		p := t.InterpolatePoint(float64(k) * df)
		c := cmplx.Rect(p.Amplitude, p.Phase)

		spectrum[k] = c
		if k > 0 {
			spectrum[fftSize-k] = cmplx.Conj(c)
		}
	}

	// DC has no imaginary part in a real system.
	spectrum[0] = complex(real(spectrum[0]), 0)

	out := make([]complex128, fftSize)
	if err := plan.Inverse(out, spectrum); err != nil {
		return nil, 0, fmt.Errorf("sparam: inverse FFT failed: %w", err)
	}

	ir := make([]float64, fftSize)
	for i := range ir {
		ir[i] = real(out[i])
	}

	dt := 1 / (float64(fftSize) * df)

	return ir, dt, nil
}

// StepResponse returns the running integral of the impulse response, the
// response of the network to a unit step. Same sampling as
// [Trace.ImpulseResponse].
func (t *Trace) StepResponse(bins int) ([]float64, float64, error) {
	ir, dt, err := t.ImpulseResponse(bins)
	if err != nil {
		return nil, 0, err
	}

	step := make([]float64, len(ir))
	acc := 0.0
	for i, v := range ir {
		acc += v
		step[i] = acc
	}

	return step, dt, nil
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
