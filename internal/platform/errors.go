package platform

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInvalidPath is returned when a path buffer cannot be handed to the
// operating system (empty, interior NUL byte, or not valid for the platform's
// path encoding).
var ErrInvalidPath = errors.New("invalid path")

// Reason classifies why an operation could not be applied.
type Reason int

const (
	// ReasonNone means the operation succeeded.
	ReasonNone Reason = iota

	// ReasonNotFound means the entry does not exist or cannot be reached.
	ReasonNotFound

	// ReasonPermissionDenied means the platform rejected the change
	// (EPERM, EACCES, EROFS).
	ReasonPermissionDenied

	// ReasonPlatformError covers every other operating system failure.
	ReasonPlatformError

	// ReasonInvalidInput means the path buffer was rejected before any
	// system call was made.
	ReasonInvalidInput
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonNotFound:
		return "not found"
	case ReasonPermissionDenied:
		return "permission denied"
	case ReasonPlatformError:
		return "platform error"
	case ReasonInvalidInput:
		return "invalid input"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Step names the system call an operation was performing when it failed.
type Step string

const (
	StepDecode Step = "decode"
	StepStat   Step = "stat"
	StepChmod  Step = "chmod"
	StepTimes  Step = "chtimes"
)

// Error is returned by the mutating operations and by Query on a hard
// failure. It carries the classified reason alongside the underlying error.
type Error struct {
	Reason Reason
	Step   Step
	Path   string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Reason.String()
	}
	return e.Reason.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ReasonOf returns the reason carried by err. A nil error yields ReasonNone
// and an error that is not an *Error yields ReasonPlatformError.
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return classify(err)
}

func newError(step Step, path string, err error) *Error {
	return &Error{
		Reason: classify(err),
		Step:   step,
		Path:   path,
		Err:    err,
	}
}

// classify maps an operating system error onto a Reason.
func classify(err error) Reason {
	switch {
	case errors.Is(err, ErrInvalidPath):
		return ReasonInvalidInput
	case errors.Is(err, fs.ErrNotExist), unreachable(err):
		return ReasonNotFound
	case errors.Is(err, fs.ErrPermission), rejected(err):
		return ReasonPermissionDenied
	default:
		return ReasonPlatformError
	}
}
