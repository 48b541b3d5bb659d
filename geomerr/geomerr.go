// Package geomerr defines the error kinds raised by the geos2d engine.
//
// The engine does not define error types in the conventional sense; it
// defines error kinds (variants) that are attached to a plain error value
// via fmt.Errorf's %w verb, so callers can test for a kind with errors.Is
// against the exported sentinel values in this package.
//
// Boolean predicates never return "unknown": they either return a bool or
// return one of these errors. Constructive operations never return a
// partially built geometry: on failure they return the zero value and an
// error.
package geomerr

import (
	"errors"
	"fmt"

	"github.com/geos2d/core/envelope"
)

// Sentinel kinds. Wrap one of these with fmt.Errorf("...: %w", KindX) so
// callers can recover the kind with errors.Is.
var (
	// ErrInvalidArgument: caller passed a null geometry, an unsupported
	// dimension combination, or a distance with the wrong sign.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation: the operation is defined but not implemented
	// for the given geometry type.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrTopology: a geometric operation detected a condition that cannot be
	// expressed at the current precision (non-noded intersections, ring
	// orientation ambiguity, degenerate label propagation).
	ErrTopology = errors.New("topology exception")

	// ErrParse: WKT/WKB malformed. Defined here for completeness; this core
	// does not parse WKT/WKB itself.
	ErrParse = errors.New("parse exception")

	// ErrInterrupted: cooperative cancellation fired before completion.
	ErrInterrupted = errors.New("interrupted")
)

// Topology wraps ErrTopology with a human-readable message and, where
// known, the coordinate or envelope locus of the failure.
type Topology struct {
	Msg      string
	Locus    fmt.Stringer
	HasLocus bool
}

// NewTopology builds a Topology error with no known locus.
func NewTopology(format string, args ...any) error {
	return &Topology{Msg: fmt.Sprintf(format, args...)}
}

// NewTopologyAt builds a Topology error anchored at an envelope.
func NewTopologyAt(env envelope.Envelope, format string, args ...any) error {
	return &Topology{Msg: fmt.Sprintf(format, args...), Locus: env, HasLocus: true}
}

func (e *Topology) Error() string {
	if e.HasLocus {
		return fmt.Sprintf("%s: %s (at %s)", ErrTopology, e.Msg, e.Locus)
	}
	return fmt.Sprintf("%s: %s", ErrTopology, e.Msg)
}

func (e *Topology) Unwrap() error { return ErrTopology }

// InvalidArgument wraps ErrInvalidArgument with a message.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Unsupported wraps ErrUnsupportedOperation with a message.
func Unsupported(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, fmt.Sprintf(format, args...))
}

// Interrupted wraps ErrInterrupted.
func Interrupted() error {
	return fmt.Errorf("%w", ErrInterrupted)
}

// IsTopology reports whether err is (or wraps) a topology exception.
func IsTopology(err error) bool {
	return errors.Is(err, ErrTopology)
}
