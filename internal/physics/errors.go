package physics

import (
	"errors"
	"fmt"
)

// Error kinds returned by solvers. Check them with errors.Is; the message
// of the concrete *Error is what the user sees.
var (
	// ErrInvalidInput indicates a given value outside its physical domain,
	// such as a negative mass or a non-positive radius.
	ErrInvalidInput = errors.New("physics: invalid physical input")

	// ErrDivisionByZero indicates a rearrangement that would divide by zero.
	ErrDivisionByZero = errors.New("physics: division by zero")

	// ErrNonReal indicates a negative radicand or an inverse sine/cosine
	// argument outside [-1, 1].
	ErrNonReal = errors.New("physics: result is not a real number")

	// ErrNoSolution indicates a multi-root rearrangement with no admissible root.
	ErrNoSolution = errors.New("physics: no admissible solution")

	// ErrImplausible indicates a solved value whose sign is physically impossible.
	ErrImplausible = errors.New("physics: physically implausible result")

	// ErrUnknownCount indicates a call that does not leave exactly one value unset.
	ErrUnknownCount = errors.New("physics: exactly one value must be unknown")

	// ErrUnknownParam indicates an argument name the solver does not take.
	ErrUnknownParam = errors.New("physics: unknown parameter")
)

// Error is a solver failure carrying a user-readable message.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Invalid reports a domain violation in a given value.
func Invalid(format string, args ...any) error {
	return newError(ErrInvalidInput, format, args...)
}

// Undefined reports a division by zero.
func Undefined(format string, args ...any) error {
	return newError(ErrDivisionByZero, format, args...)
}

// NonReal reports a negative radicand or an out-of-range inverse trig argument.
func NonReal(format string, args ...any) error {
	return newError(ErrNonReal, format, args...)
}

// NoSolution reports that no root satisfies the physical constraints.
func NoSolution(format string, args ...any) error {
	return newError(ErrNoSolution, format, args...)
}

// Implausible reports a solved value with an impossible sign.
func Implausible(format string, args ...any) error {
	return newError(ErrImplausible, format, args...)
}

// Kind names the error category for display and transport, or "" if err
// is not a solver error.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrNonReal):
		return "non_real"
	case errors.Is(err, ErrNoSolution):
		return "no_solution"
	case errors.Is(err, ErrImplausible):
		return "implausible"
	case errors.Is(err, ErrUnknownCount):
		return "unknown_count"
	case errors.Is(err, ErrUnknownParam):
		return "unknown_param"
	}
	return ""
}

// NoUnknown is returned by a typed solver called with every value known.
func NoUnknown() error {
	return &Error{Kind: ErrUnknownCount, Msg: "leave one value blank to solve for it"}
}
