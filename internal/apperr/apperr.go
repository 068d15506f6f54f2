// Package apperr defines the error kinds reported by automation operations.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	Unknown Kind = iota
	// InvalidArgument is a missing, empty or out-of-range input. It is raised
	// before any OS call is made.
	InvalidArgument
	// ScriptExecutionFailed is a non-zero exit from the scripting bridge.
	ScriptExecutionFailed
	// BackendUnavailable means the OS automation frameworks are not present.
	BackendUnavailable
	// Timeout means a bounded wait expired.
	Timeout
	// PartialFailure means one sub-query of an aggregate failed.
	PartialFailure
)

var kindNames = map[Kind]string{
	Unknown:               "Unknown",
	InvalidArgument:       "InvalidArgument",
	ScriptExecutionFailed: "ScriptExecutionFailed",
	BackendUnavailable:    "BackendUnavailable",
	Timeout:               "Timeout",
	PartialFailure:        "PartialFailure",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a classified failure. Op names the operation that failed, Msg is
// the human-readable summary and Err the underlying cause, if any.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match when target is an *Error of the same kind, so
// errors.Is(err, apperr.ErrInvalidArgument) works on wrapped chains.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidArgument    = &Error{Kind: InvalidArgument}
	ErrScriptFailed       = &Error{Kind: ScriptExecutionFailed}
	ErrBackendUnavailable = &Error{Kind: BackendUnavailable}
	ErrTimeout            = &Error{Kind: Timeout}
)

// Invalid returns an InvalidArgument error.
func Invalid(op, format string, args ...any) *Error {
	return &Error{Kind: InvalidArgument, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// ScriptFailed returns a ScriptExecutionFailed error carrying the
// interpreter's stderr verbatim in Msg.
func ScriptFailed(op, stderr string, cause error) *Error {
	return &Error{Kind: ScriptExecutionFailed, Op: op, Msg: stderr, Err: cause}
}

// Unavailable returns a BackendUnavailable error.
func Unavailable(op, format string, args ...any) *Error {
	return &Error{Kind: BackendUnavailable, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies err under kind unless it is already classified.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Unknown
}

// Detail returns the bare message of a classified error (for example the
// interpreter stderr of a script failure) without the Op prefix.
func Detail(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Msg != "" {
			return ae.Msg
		}
		if ae.Err != nil {
			return ae.Err.Error()
		}
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
