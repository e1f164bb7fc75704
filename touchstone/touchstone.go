// Package touchstone serializes 2-port scattering-parameter networks to
// and from mag-angle network-parameter text files.
//
// The format is one header line followed by one row per frequency sample:
//
//	# GHz S MA R 50.000
//	1.000000 0.100000 10.000000 0.900000 -5.000000 ...
//
// Columns are the scaled frequency followed by magnitude/angle(degrees)
// pairs for S11, S21, S12, S22 in that fixed order. Only the 2-port
// mag-angle subset is implemented; real/imaginary and dB/angle formats
// are recognized selectors that fall back to mag-angle with a warning.
package touchstone

import (
	"errors"
	"log/slog"
)

// Errors returned when reading or writing network-parameter files.
var (
	ErrPortCount    = errors.New("touchstone: only 2-port networks are supported")
	ErrGridMismatch = errors.New("touchstone: parameter traces are not sampled on the same frequency grid")
	ErrBadSyntax    = errors.New("touchstone: malformed file")
)

// Format selects the data representation of each complex value.
type Format int

const (
	// FormatMagAngle stores linear magnitude and angle in degrees.
	FormatMagAngle Format = iota

	// FormatRealImag is recognized but not implemented; export falls
	// back to mag-angle with a warning.
	FormatRealImag

	// FormatDBAngle is recognized but not implemented; export falls
	// back to mag-angle with a warning.
	FormatDBAngle
)

// String names the format selector.
func (f Format) String() string {
	switch f {
	case FormatMagAngle:
		return "mag-angle"
	case FormatRealImag:
		return "real-imag"
	case FormatDBAngle:
		return "db-angle"
	default:
		return "unknown"
	}
}

// FreqUnit selects the frequency unit token and scale of the file.
type FreqUnit int

const (
	UnitGHz FreqUnit = iota // default
	UnitHz
	UnitKHz
	UnitMHz
)

// token returns the header token and the Hz-to-file scale factor.
// Unrecognized units fall back to GHz.
func (u FreqUnit) token() (string, float64) {
	switch u {
	case UnitHz:
		return "Hz", 1
	case UnitKHz:
		return "kHz", 1e-3
	case UnitMHz:
		return "MHz", 1e-6
	default:
		return "GHz", 1e-9
	}
}

// String returns the header token for the unit.
func (u FreqUnit) String() string {
	s, _ := u.token()
	return s
}

// Config holds serialization settings.
type Config struct {
	Format   Format
	FreqUnit FreqUnit
	Logger   *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the mag-angle / GHz defaults.
func DefaultConfig() Config {
	return Config{
		Format:   FormatMagAngle,
		FreqUnit: UnitGHz,
	}
}

// WithFormat sets the data format selector.
func WithFormat(format Format) Option {
	return func(cfg *Config) {
		cfg.Format = format
	}
}

// WithFreqUnit sets the frequency unit of the file.
func WithFreqUnit(unit FreqUnit) Option {
	return func(cfg *Config) {
		cfg.FreqUnit = unit
	}
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (cfg *Config) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.Default()
}
