package p2pclient

import (
	"fmt"

	"github.com/pkg/errors"
)

// ControlFailure, InvalidArgument, and DispatchFailure are returned as
// concrete pointer types rather than wrapped in errors.WithStack: §7
// callers type-assert on them (ControlFailure vs InvalidArgument
// distinguishes a daemon-side failure from a caller-side precondition
// violation), and pkg/errors' stack-trace wrapper would hide the
// concrete type behind its own. wrapControlFailure, which wraps a
// foreign error rather than constructing one of ours, still uses
// errors.Wrapf for the stack trace and %w-style chain.

// ControlFailure reports a daemon-side ERROR response, an unexpected
// response envelope, or an operation on a closed client (§7). It
// carries the message and, where known, the operation that produced it.
// Dial, I/O, framing and protobuf decode failures are not returned as
// ControlFailure: wrapControlFailure returns them as pkg/errors
// wrappers whose Cause is the underlying error.
type ControlFailure struct {
	Op  string
	Msg string
}

func (e *ControlFailure) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func newControlFailure(op, msg string) error {
	return &ControlFailure{Op: op, Msg: msg}
}

func wrapControlFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "p2pclient: %s", op)
}

// InvalidArgument is a caller-side precondition violation that fails an
// operation before any daemon round trip (§7).
type InvalidArgument struct {
	Msg string
}

func (e *InvalidArgument) Error() string {
	return e.Msg
}

func newInvalidArgument(msg string, args ...interface{}) error {
	return &InvalidArgument{Msg: fmt.Sprintf(msg, args...)}
}

// DispatchFailure records that an inbound stream arrived for a protocol
// with no registered handler (§7). It is logged by the listener and
// never surfaced to a caller.
type DispatchFailure struct {
	Proto string
}

func (e *DispatchFailure) Error() string {
	return fmt.Sprintf("no handler registered for protocol %q", e.Proto)
}
