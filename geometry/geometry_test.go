// SPDX-License-Identifier: MIT

package geometry_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/imeth/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestCompute2D(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shape           geometry.Shape2D
		area, perimeter float64
	}{
		{geometry.Circle(1), math.Pi, 2 * math.Pi},
		{geometry.Rectangle(3, 4), 12, 14},
		{geometry.Triangle(6, 4), 12, 16}, // sides √(9+16) = 5
		{geometry.Square(2.5), 6.25, 10},
		{geometry.Pentagon(1), 1.720477400588967, 5},
		{geometry.Hexagon(2), 6 * math.Sqrt(3), 12},
		{geometry.Octagon(1), 2 + 2*math.Sqrt2, 8},
		{geometry.Circle(0), 0, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.shape.Kind.String(), func(t *testing.T) {
			area, perim, err := geometry.Compute2D(tc.shape)
			require.NoError(t, err)
			assert.InDelta(t, tc.area, area, eps)
			assert.InDelta(t, tc.perimeter, perim, eps)
		})
	}
}

func TestCompute3D(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shape        geometry.Shape3D
		area, volume float64
	}{
		{geometry.Sphere(1), 4 * math.Pi, 4 * math.Pi / 3},
		{geometry.Cube(3), 54, 27},
		{geometry.Cylinder(1, 2), 6 * math.Pi, 2 * math.Pi},
		{geometry.Cone(3, 4), 24 * math.Pi, 12 * math.Pi}, // slant 5
		{geometry.Torus(3, 1), 12 * math.Pi * math.Pi, 6 * math.Pi * math.Pi},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.shape.Kind.String(), func(t *testing.T) {
			area, vol, err := geometry.Compute3D(tc.shape)
			require.NoError(t, err)
			assert.InDelta(t, tc.area, area, eps)
			assert.InDelta(t, tc.volume, vol, eps)
		})
	}
}

func TestComputeErrors(t *testing.T) {
	t.Parallel()

	_, _, err := geometry.Compute2D(geometry.Shape2D{Kind: 99, A: 1})
	require.ErrorIs(t, err, geometry.ErrUnknownShape)
	_, _, err = geometry.Compute2D(geometry.Shape2D{})
	require.ErrorIs(t, err, geometry.ErrUnknownShape)
	_, _, err = geometry.Compute2D(geometry.Rectangle(1, -1))
	require.ErrorIs(t, err, geometry.ErrInvalidDimension)
	_, _, err = geometry.Compute2D(geometry.Circle(math.NaN()))
	require.ErrorIs(t, err, geometry.ErrInvalidDimension)

	_, _, err = geometry.Compute3D(geometry.Shape3D{Kind: 0})
	require.ErrorIs(t, err, geometry.ErrUnknownShape)
	_, _, err = geometry.Compute3D(geometry.Cone(1, math.Inf(1)))
	require.ErrorIs(t, err, geometry.ErrInvalidDimension)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "octagon", geometry.KindOctagon.String())
	assert.Equal(t, "Kind2D(42)", geometry.Kind2D(42).String())
	assert.Equal(t, "torus", geometry.KindTorus.String())
	assert.Equal(t, "Kind3D(0)", geometry.Kind3D(0).String())
}
