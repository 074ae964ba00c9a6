// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"
)

// Kind2D tags a plane shape.
type Kind2D int

// Plane shape kinds. The zero Kind2D is invalid.
const (
	KindCircle    Kind2D = iota + 1 // A = radius
	KindRectangle                   // A = width, B = height
	KindTriangle                    // isosceles: A = base, B = height
	KindSquare                      // A = side
	KindPentagon                    // regular: A = side
	KindHexagon                     // regular: A = side
	KindOctagon                     // regular: A = side
)

var kind2DNames = [...]string{
	KindCircle:    "circle",
	KindRectangle: "rectangle",
	KindTriangle:  "triangle",
	KindSquare:    "square",
	KindPentagon:  "pentagon",
	KindHexagon:   "hexagon",
	KindOctagon:   "octagon",
}

// String returns the shape name.
func (k Kind2D) String() string {
	if k >= KindCircle && k <= KindOctagon {
		return kind2DNames[k]
	}

	return fmt.Sprintf("Kind2D(%d)", int(k))
}

// Shape2D is a plane shape. The meaning of A and B depends on Kind.
type Shape2D struct {
	Kind Kind2D
	A, B float64
}

// Circle returns a circle of radius r.
func Circle(r float64) Shape2D { return Shape2D{Kind: KindCircle, A: r} }

// Rectangle returns a w×h rectangle.
func Rectangle(w, h float64) Shape2D { return Shape2D{Kind: KindRectangle, A: w, B: h} }

// Triangle returns an isosceles triangle with the given base and height.
func Triangle(base, height float64) Shape2D {
	return Shape2D{Kind: KindTriangle, A: base, B: height}
}

// Square returns a square with side s.
func Square(s float64) Shape2D { return Shape2D{Kind: KindSquare, A: s} }

// Pentagon returns a regular pentagon with side s.
func Pentagon(s float64) Shape2D { return Shape2D{Kind: KindPentagon, A: s} }

// Hexagon returns a regular hexagon with side s.
func Hexagon(s float64) Shape2D { return Shape2D{Kind: KindHexagon, A: s} }

// Octagon returns a regular octagon with side s.
func Octagon(s float64) Shape2D { return Shape2D{Kind: KindOctagon, A: s} }

// Area-to-side² factors of the regular polygons.
var (
	pentagonAreaFactor = 0.25 * math.Sqrt(5*(5+2*math.Sqrt(5)))
	hexagonAreaFactor  = 3 * math.Sqrt(3) / 2
	octagonAreaFactor  = 2 * (1 + math.Sqrt2)
)

// Compute2D returns the area and perimeter of s.
// A triangle's perimeter assumes it is isosceles: base + 2·√((base/2)² + height²).
//
// Errors: ErrUnknownShape, ErrInvalidDimension.
func Compute2D(s Shape2D) (area, perimeter float64, err error) {
	if err = checkDims(s.Kind.String(), s.A, s.B); err != nil {
		return 0, 0, err
	}

	a, b := s.A, s.B
	switch s.Kind {
	case KindCircle:
		return math.Pi * a * a, 2 * math.Pi * a, nil
	case KindRectangle:
		return a * b, 2 * (a + b), nil
	case KindTriangle:
		side := math.Hypot(a/2, b)
		return 0.5 * a * b, a + 2*side, nil
	case KindSquare:
		return a * a, 4 * a, nil
	case KindPentagon:
		return pentagonAreaFactor * a * a, 5 * a, nil
	case KindHexagon:
		return hexagonAreaFactor * a * a, 6 * a, nil
	case KindOctagon:
		return octagonAreaFactor * a * a, 8 * a, nil
	default:
		return 0, 0, fmt.Errorf("%v: %w", s.Kind, ErrUnknownShape)
	}
}

// checkDims rejects negative, NaN and infinite dimensions.
func checkDims(name string, dims ...float64) error {
	for _, d := range dims {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%s: dimension %g: %w", name, d, ErrInvalidDimension)
		}
	}

	return nil
}
