// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/imeth/arithmetic"
)

// QuadraticEpsilon is the tolerance for a vanishing leading coefficient
// and for a vanishing discriminant.
const QuadraticEpsilon = 1e-10

// RootKind classifies the outcome of SolveQuadratic.
type RootKind int

const (
	// NoRealRoot: negative discriminant, or a ≈ 0 and b ≈ 0.
	NoRealRoot RootKind = iota
	// Linear: a ≈ 0, the single root of b·x + c = 0.
	Linear
	// RepeatedRoot: discriminant ≈ 0, one double root.
	RepeatedRoot
	// TwoRoots: two distinct real roots, ascending.
	TwoRoots
)

// String returns a lower-case name for the kind.
func (k RootKind) String() string {
	switch k {
	case NoRealRoot:
		return "no real root"
	case Linear:
		return "linear"
	case RepeatedRoot:
		return "repeated root"
	case TwoRoots:
		return "two roots"
	default:
		return fmt.Sprintf("RootKind(%d)", int(k))
	}
}

// Quadratic is the solution of a·x² + b·x + c = 0.
// Roots holds 0, 1 or 2 values according to Kind, in ascending order.
type Quadratic struct {
	Kind  RootKind
	Roots []float64
}

// SolveQuadratic returns the real roots of a·x² + b·x + c = 0.
//
// Cases, checked in order:
//   - |a| < ε and |b| < ε: NoRealRoot.
//   - |a| < ε: Linear, root -c/b.
//   - disc < -ε: NoRealRoot.
//   - |disc| < ε: RepeatedRoot, root -b/2a.
//   - otherwise TwoRoots, (-b ∓ √disc)/2a in ascending order.
//
// where disc = b² - 4ac and ε = QuadraticEpsilon.
func SolveQuadratic(a, b, c float64) Quadratic {
	if arithmetic.NearZero(a, QuadraticEpsilon) {
		if arithmetic.NearZero(b, QuadraticEpsilon) {
			return Quadratic{Kind: NoRealRoot}
		}

		return Quadratic{Kind: Linear, Roots: []float64{-c / b}}
	}

	disc := b*b - 4*a*c
	if disc < -QuadraticEpsilon {
		return Quadratic{Kind: NoRealRoot}
	}
	if arithmetic.NearZero(disc, QuadraticEpsilon) {
		return Quadratic{Kind: RepeatedRoot, Roots: []float64{-b / (2 * a)}}
	}

	// disc > ε here, so the root exists.
	sq, _ := arithmetic.SquareRoot(disc)
	x1 := (-b - sq) / (2 * a)
	x2 := (-b + sq) / (2 * a)
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	return Quadratic{Kind: TwoRoots, Roots: []float64{x1, x2}}
}
