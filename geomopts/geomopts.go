// Package geomopts provides configurable settings for geometric operations
// across the geos2d engine.
//
// It follows a functional-options pattern carrying the tolerance a
// caller wants applied to floating-point comparisons, plus the
// PrecisionModel a noder or overlay operation should target.
package geomopts

import "github.com/geos2d/core/precision"

// Func is a functional option that mutates an Options value.
type Func func(*Options)

// Options bundles the per-call tunables honored by predicate, noder,
// overlay, and relate operations.
type Options struct {
	// Epsilon is a small positive value used to adjust for floating-point
	// precision errors. Values within [-Epsilon, Epsilon] are treated as
	// zero. Default: 0 (no adjustment).
	Epsilon float64

	// Precision is the PrecisionModel operations should round coordinates
	// to. Default: precision.NewFloating() (no rounding).
	Precision precision.Model

	// InterruptCheck, if non-nil, is consulted by the MC-index noder
	// before each candidate monotone-chain pair and once more after
	// splitting, and should return true to request cooperative
	// cancellation. Overlay and relate add no checkpoints of their own
	// beyond the noding they run.
	InterruptCheck func() bool
}

// Defaults returns the zero-tolerance, floating-precision option set.
func Defaults() Options {
	return Options{Precision: precision.NewFloating()}
}

// Apply folds a set of Funcs onto a base Options value, in order.
func Apply(base Options, opts ...Func) Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// WithEpsilon sets the tolerance used for near-zero floating-point
// comparisons. A negative epsilon is clamped to 0.
func WithEpsilon(epsilon float64) Func {
	return func(o *Options) {
		if epsilon < 0 {
			epsilon = 0
		}
		o.Epsilon = epsilon
	}
}

// WithPrecisionModel sets the PrecisionModel an operation should target.
func WithPrecisionModel(m precision.Model) Func {
	return func(o *Options) {
		o.Precision = m
	}
}

// WithInterruptCheck installs a cooperative cancellation callback.
func WithInterruptCheck(check func() bool) Func {
	return func(o *Options) {
		o.InterruptCheck = check
	}
}

// Interrupted reports whether the installed InterruptCheck (if any) has
// fired.
func (o Options) Interrupted() bool {
	return o.InterruptCheck != nil && o.InterruptCheck()
}
