// Package precision implements the three-way precision model
// that the noder and overlay packages consult when deciding whether, and
// how, to round coordinates.
package precision

import (
	"fmt"
	"math"
)

// Kind identifies which of the three precision models is in effect.
type Kind uint8

const (
	// Floating is full IEEE-754 double precision, no rounding.
	Floating Kind = iota
	// FloatingSingle rounds to the precision representable by a float32.
	FloatingSingle
	// Fixed rounds to a grid of spacing 1/Scale.
	Fixed
)

func (k Kind) String() string {
	switch k {
	case Floating:
		return "Floating"
	case FloatingSingle:
		return "FloatingSingle"
	case Fixed:
		return "Fixed"
	default:
		panic(fmt.Errorf("unsupported precision kind: %d", k))
	}
}

// Model describes the numerical precision at which coordinates are
// rounded. The zero value is Floating, matching the engine's default of
// "no rounding" until a caller opts into a coarser model.
type Model struct {
	kind  Kind
	scale float64
}

// NewFloating returns the floating (unrounded) precision model.
func NewFloating() Model {
	return Model{kind: Floating}
}

// NewFloatingSingle returns the single-precision-rounding model.
func NewFloatingSingle() Model {
	return Model{kind: FloatingSingle}
}

// NewFixed returns a fixed precision model with the given scale factor.
// MakePrecise(x) will compute round(x*scale)/scale. A non-positive scale
// is treated as 1 (unit grid).
func NewFixed(scale float64) Model {
	if scale <= 0 {
		scale = 1
	}
	return Model{kind: Fixed, scale: scale}
}

// Kind reports which precision model this is.
func (m Model) Kind() Kind { return m.kind }

// Scale returns the fixed-model scale factor, or 0 for non-fixed models.
func (m Model) Scale() float64 { return m.scale }

// GridSize returns the spacing between adjacent grid points for a Fixed
// model (1/Scale), or 0 for Floating/FloatingSingle.
func (m Model) GridSize() float64 {
	if m.kind != Fixed || m.scale == 0 {
		return 0
	}
	return 1 / m.scale
}

// IsFloating reports whether this model performs no rounding at all.
func (m Model) IsFloating() bool { return m.kind == Floating }

// MakePrecise rounds a single ordinate to this model's precision.
func (m Model) MakePrecise(x float64) float64 {
	switch m.kind {
	case Floating:
		return x
	case FloatingSingle:
		return float64(float32(x))
	case Fixed:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return x
		}
		return math.Round(x*m.scale) / m.scale
	default:
		return x
	}
}

// MakePreciseXY rounds both ordinates of a coordinate pair.
func (m Model) MakePreciseXY(x, y float64) (float64, float64) {
	return m.MakePrecise(x), m.MakePrecise(y)
}

// FixedFromEnvelopeDiagonal derives a sensible Fixed model scale from the
// diagonal length of the data's envelope, targeting roughly digitsOfPrecision
// significant decimal digits across the span. Used by the noder's
// robust-overlay escalation to pick progressively coarser grids: NodeRobust
// asks for 12 digits and then for 8.
func FixedFromEnvelopeDiagonal(diagonal float64, digitsOfPrecision int) Model {
	if diagonal <= 0 {
		diagonal = 1
	}
	if digitsOfPrecision < 1 {
		digitsOfPrecision = 1
	}
	scale := math.Pow(10, float64(digitsOfPrecision)) / diagonal
	return NewFixed(scale)
}

// String renders the model for diagnostics.
func (m Model) String() string {
	if m.kind == Fixed {
		return fmt.Sprintf("Fixed(scale=%g)", m.scale)
	}
	return m.kind.String()
}
