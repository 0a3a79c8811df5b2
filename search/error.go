package search

import "fmt"

// ErrMemoryExhausted indicates that compiling a pattern would exceed the
// configured memory budget.
var ErrMemoryExhausted = &Error{
	Kind:    MemoryExhausted,
	Message: "pattern tables exceed memory limit",
}

// ErrPatternTooLong indicates that the pattern exceeds the capacity of the
// selected engine (64 for Myers, 63 for Wu-Manber).
var ErrPatternTooLong = &Error{
	Kind:    PatternTooLong,
	Message: "pattern too long for engine",
}

// ErrInvalidSymbol indicates a pattern symbol outside the active alphabet.
var ErrInvalidSymbol = &Error{
	Kind:    InvalidSymbol,
	Message: "pattern symbol not in alphabet",
}

// ErrInvalidConfiguration indicates a missing or conflicting flag choice.
var ErrInvalidConfiguration = &Error{
	Kind:    InvalidConfiguration,
	Message: "invalid configuration",
}

// ErrorKind classifies compile errors.
type ErrorKind uint8

const (
	// MemoryExhausted means table construction hit the memory budget.
	MemoryExhausted ErrorKind = iota

	// PatternTooLong means the pattern exceeds the engine word width.
	PatternTooLong

	// InvalidSymbol means the pattern holds an unrecognized symbol.
	InvalidSymbol

	// InvalidConfiguration means no algorithm or mutually exclusive flags.
	InvalidConfiguration
)

// String returns a human-readable kind name.
func (k ErrorKind) String() string {
	switch k {
	case MemoryExhausted:
		return "MemoryExhausted"
	case PatternTooLong:
		return "PatternTooLong"
	case InvalidSymbol:
		return "InvalidSymbol"
	case InvalidConfiguration:
		return "InvalidConfiguration"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error is a compile failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error // optional
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so errors.Is(err,
// ErrPatternTooLong) holds for every length failure regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// CheckLength returns a PatternTooLong error when n exceeds limit.
func CheckLength(engine string, n, limit int) error {
	if n > limit {
		return Errorf(PatternTooLong, "%s: pattern length %d exceeds %d", engine, n, limit)
	}
	return nil
}
