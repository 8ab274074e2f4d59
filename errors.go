package enigma

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of
// them, so callers can tell a bad message from a bad machine with errors.Is.
var (
	// ErrConfig reports a structural violation of a machine, alphabet,
	// permutation or reflector invariant.
	ErrConfig = errors.New("configuration error")

	// ErrParse reports malformed cycle notation or setting syntax.
	ErrParse = errors.New("parse error")

	// ErrInvalidSymbol reports a rune used where an alphabet member was required.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrIndexOutOfRange reports an index outside [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotSupported reports an operation the rotor kind cannot perform.
	ErrNotSupported = errors.New("operation not supported")
)

// Error carries a human readable message and the kind it belongs to.
type Error struct {
	Kind error
	Msg  string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Msg
}

// Unwrap returns the error kind
func (e *Error) Unwrap() error {
	return e.Kind
}

func errorf(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
