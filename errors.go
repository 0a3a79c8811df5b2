package agrep

import "github.com/coregx/agrep/search"

// Compile error sentinels. Match them with errors.Is; any error of the same
// kind compares equal.
var (
	ErrMemoryExhausted      = search.ErrMemoryExhausted
	ErrPatternTooLong       = search.ErrPatternTooLong
	ErrInvalidSymbol        = search.ErrInvalidSymbol
	ErrInvalidConfiguration = search.ErrInvalidConfiguration
)

// CompileError reports a pattern that failed to compile.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return "agrep: compile `" + e.Pattern + "`: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
