package agrep

import (
	"log/slog"

	"github.com/coregx/agrep/search"
)

// Config controls pattern compilation.
//
// Example:
//
//	config := agrep.DefaultConfig()
//	config.Flags = agrep.Pattern4NA | agrep.AlgMyersUnlimited
//	config.MaxMemory = 1 << 20
//	p, err := agrep.CompileWithConfig("GATTACA", config)
type Config struct {
	// Flags selects the alphabet, the merge policy and exactly one
	// algorithm.
	// Default: ModeASCII | AlgMyers
	Flags Flags

	// MaxPatternLen rejects longer patterns with PatternTooLong before any
	// table is built. Zero means no limit beyond the engine's own.
	// Default: 0
	MaxPatternLen int

	// MaxMemory bounds the estimated table footprint in bytes, including
	// the DP tables compiled alongside every engine. Zero means no limit.
	// Default: 0
	MaxMemory int

	// Logger receives one debug record per successful compile. nil is
	// silent.
	// Default: nil
	Logger *slog.Logger
}

// DefaultConfig returns a configuration for case-sensitive ASCII matching
// with the bounded Myers engine.
func DefaultConfig() Config {
	return Config{
		Flags: ModeASCII | AlgMyers,
	}
}

// Validate checks the configuration. It returns a *ConfigError naming the
// first invalid field.
func (c Config) Validate() error {
	switch c.Flags & search.AlgMask {
	case AlgDP, AlgWuManber, AlgMyers, AlgMyersUnlimited:
	default:
		return &ConfigError{
			Field:   "Flags",
			Message: "exactly one algorithm required, got " + c.Flags.String(),
		}
	}
	if c.Flags.Has(ModeASCII | Pattern4NA) {
		return &ConfigError{
			Field:   "Flags",
			Message: "ModeASCII and Pattern4NA are mutually exclusive",
		}
	}
	if c.MaxPatternLen < 0 {
		return &ConfigError{
			Field:   "MaxPatternLen",
			Message: "must not be negative",
		}
	}
	if c.MaxMemory < 0 {
		return &ConfigError{
			Field:   "MaxMemory",
			Message: "must not be negative",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "agrep: invalid config: " + e.Field + ": " + e.Message
}

// Is reports InvalidConfiguration, so errors.Is(err,
// ErrInvalidConfiguration) holds for config failures too.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*search.Error)
	return ok && t.Kind == search.InvalidConfiguration
}
