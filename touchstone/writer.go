package touchstone

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-sparam/sparam"
)

// Write serializes a 2-port network as a mag-angle network-parameter
// file. The four parameter traces must be sampled on the same frequency
// grid; rows are emitted by index, so misaligned grids are rejected with
// ErrGridMismatch rather than silently producing misaligned rows.
func Write(w io.Writer, n *sparam.Network, opts ...Option) error {
	cfg := ApplyOptions(opts...)

	if n.Ports() != 2 {
		return ErrPortCount
	}

	if cfg.Format != FormatMagAngle {
		cfg.logger().Warn("touchstone: format not implemented, exporting as mag-angle",
			"format", cfg.Format.String())
	}

	s11 := n.Param(1, 1)
	s12 := n.Param(1, 2)
	s21 := n.Param(2, 1)
	s22 := n.Param(2, 2)

	if err := checkGrid(s11, s21, s12, s22); err != nil {
		return err
	}

	token, scale := cfg.FreqUnit.token()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s S MA R 50.000\n", token)

	const rad2deg = 180 / math.Pi
	for i := 0; i < s11.Len(); i++ {
		p11 := s11.At(i)
		p21 := s21.At(i)
		p12 := s12.At(i)
		p22 := s22.At(i)

		fmt.Fprintf(bw, "%f %f %f %f %f %f %f %f %f\n",
			p11.Frequency*scale,
			p11.Amplitude, p11.Phase*rad2deg,
			p21.Amplitude, p21.Phase*rad2deg,
			p12.Amplitude, p12.Phase*rad2deg,
			p22.Amplitude, p22.Phase*rad2deg)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("touchstone: write failed: %w", err)
	}

	return nil
}

// WriteFile serializes a 2-port network to a file at path. No file is
// produced if the network cannot be exported.
func WriteFile(path string, n *sparam.Network, opts ...Option) error {
	cfg := ApplyOptions(opts...)

	// Validate before touching the filesystem so a rejected export
	// leaves no partial file behind.
	if n.Ports() != 2 {
		return ErrPortCount
	}
	if err := checkGrid(n.Param(1, 1), n.Param(2, 1), n.Param(1, 2), n.Param(2, 2)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("touchstone: couldn't open %s for writing: %w", path, err)
	}

	if err := Write(f, n, func(c *Config) { *c = cfg }); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("touchstone: write failed: %w", err)
	}

	return nil
}

// checkGrid verifies that all traces share the reference trace's sample
// count and frequency axis.
func checkGrid(ref *sparam.Trace, rest ...*sparam.Trace) error {
	for _, t := range rest {
		if t.Len() != ref.Len() {
			return ErrGridMismatch
		}
		for i := 0; i < ref.Len(); i++ {
			if t.At(i).Frequency != ref.At(i).Frequency {
				return ErrGridMismatch
			}
		}
	}
	return nil
}
