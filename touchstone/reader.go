package touchstone

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-sparam/sparam"
)

// Read parses a 2-port mag-angle network-parameter file, the inverse of
// [Write]. Only the subset Write produces is accepted: an option line
// declaring S-parameters in MA format, followed by 9-column data rows.
func Read(r io.Reader) (*sparam.Network, error) {
	n := sparam.NewNetwork()
	if err := n.Allocate(2); err != nil {
		return nil, err
	}

	s11 := n.Param(1, 1)
	s12 := n.Param(1, 2)
	s21 := n.Param(2, 1)
	s22 := n.Param(2, 2)

	scale := 0.0
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		if strings.HasPrefix(line, "#") {
			var err error
			scale, err = parseOptionLine(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadSyntax, lineNo, err)
			}
			continue
		}

		if scale == 0 {
			return nil, fmt.Errorf("%w: line %d: data before option line", ErrBadSyntax, lineNo)
		}

		fields := strings.Fields(line)
		if len(fields) != 9 {
			return nil, fmt.Errorf("%w: line %d: expected 9 columns, got %d", ErrBadSyntax, lineNo, len(fields))
		}

		vals := make([]float64, 9)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadSyntax, lineNo, err)
			}
			vals[i] = v
		}

		const deg2rad = math.Pi / 180
		freq := vals[0] / scale

		s11.Append(sparam.Point{Frequency: freq, Amplitude: vals[1], Phase: vals[2] * deg2rad})
		s21.Append(sparam.Point{Frequency: freq, Amplitude: vals[3], Phase: vals[4] * deg2rad})
		s12.Append(sparam.Point{Frequency: freq, Amplitude: vals[5], Phase: vals[6] * deg2rad})
		s22.Append(sparam.Point{Frequency: freq, Amplitude: vals[7], Phase: vals[8] * deg2rad})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("touchstone: read failed: %w", err)
	}

	if scale == 0 {
		return nil, fmt.Errorf("%w: missing option line", ErrBadSyntax)
	}

	return n, nil
}

// ReadFile parses a 2-port mag-angle network-parameter file at path.
func ReadFile(path string) (*sparam.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("touchstone: couldn't open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// parseOptionLine validates the "# <unit> S MA R <imp>" header and
// returns the Hz-to-file frequency scale.
func parseOptionLine(line string) (float64, error) {
	fields := strings.Fields(strings.TrimPrefix(line, "#"))
	if len(fields) < 3 {
		return 0, fmt.Errorf("incomplete option line %q", line)
	}

	var scale float64
	switch strings.ToLower(fields[0]) {
	case "hz":
		scale = 1
	case "khz":
		scale = 1e-3
	case "mhz":
		scale = 1e-6
	case "ghz":
		scale = 1e-9
	default:
		return 0, fmt.Errorf("unknown frequency unit %q", fields[0])
	}

	if fields[1] != "S" {
		return 0, fmt.Errorf("unsupported parameter kind %q", fields[1])
	}

	if fields[2] != "MA" {
		return 0, fmt.Errorf("unsupported data format %q", fields[2])
	}

	return scale, nil
}
