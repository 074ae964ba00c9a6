// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"
)

// Kind3D tags a solid shape.
type Kind3D int

// Solid shape kinds. The zero Kind3D is invalid.
const (
	KindSphere   Kind3D = iota + 1 // A = radius
	KindCube                       // A = edge
	KindCylinder                   // A = radius, B = height
	KindCone                       // right circular: A = radius, B = height
	KindTorus                      // A = major radius, B = minor radius
)

var kind3DNames = [...]string{
	KindSphere:   "sphere",
	KindCube:     "cube",
	KindCylinder: "cylinder",
	KindCone:     "cone",
	KindTorus:    "torus",
}

// String returns the shape name.
func (k Kind3D) String() string {
	if k >= KindSphere && k <= KindTorus {
		return kind3DNames[k]
	}

	return fmt.Sprintf("Kind3D(%d)", int(k))
}

// Shape3D is a solid shape. The meaning of A and B depends on Kind.
type Shape3D struct {
	Kind Kind3D
	A, B float64
}

// Sphere returns a sphere of radius r.
func Sphere(r float64) Shape3D { return Shape3D{Kind: KindSphere, A: r} }

// Cube returns a cube with edge s.
func Cube(s float64) Shape3D { return Shape3D{Kind: KindCube, A: s} }

// Cylinder returns a right circular cylinder.
func Cylinder(r, h float64) Shape3D { return Shape3D{Kind: KindCylinder, A: r, B: h} }

// Cone returns a right circular cone.
func Cone(r, h float64) Shape3D { return Shape3D{Kind: KindCone, A: r, B: h} }

// Torus returns a ring torus with major radius R (centre to tube centre)
// and minor radius r (tube radius).
func Torus(major, minor float64) Shape3D { return Shape3D{Kind: KindTorus, A: major, B: minor} }

// Compute3D returns the surface area and volume of s.
// Cylinder and cone areas include the base(s).
//
// Errors: ErrUnknownShape, ErrInvalidDimension.
func Compute3D(s Shape3D) (area, volume float64, err error) {
	if err = checkDims(s.Kind.String(), s.A, s.B); err != nil {
		return 0, 0, err
	}

	a, b := s.A, s.B
	switch s.Kind {
	case KindSphere:
		return 4 * math.Pi * a * a, 4.0 / 3.0 * math.Pi * a * a * a, nil
	case KindCube:
		return 6 * a * a, a * a * a, nil
	case KindCylinder:
		return 2 * math.Pi * a * (a + b), math.Pi * a * a * b, nil
	case KindCone:
		slant := math.Hypot(a, b)
		return math.Pi * a * (a + slant), math.Pi * a * a * b / 3, nil
	case KindTorus:
		return 4 * math.Pi * math.Pi * a * b, 2 * math.Pi * math.Pi * a * b * b, nil
	default:
		return 0, 0, fmt.Errorf("%v: %w", s.Kind, ErrUnknownShape)
	}
}
