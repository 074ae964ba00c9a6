// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxVecAt  = "At"
	ctxVecSet = "Set"
	ctxVecNew = "NewVector"
)

// vectorErrorf wraps err with a uniform Vector context and the offending index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a dense, fixed-length sequence of float64 values.
// The zero value is an empty vector. Each Vector owns its backing slice.
type Vector struct {
	data []float64
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector returns a zero-filled vector of length n.
// Errors: ErrInvalidDimensions when n < 0.
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxVecNew, n, ErrInvalidDimensions)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// NewVectorFrom returns a vector holding a copy of values.
func NewVectorFrom(values ...float64) *Vector {
	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{data: data}
}

// Len returns the element count.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(ctxVecAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at position i or returns ErrOutOfRange.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxVecSet, i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Values returns the elements in order, as a copy.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	return NewVectorFrom(v.data...)
}

// String renders the vector as "[a, b, c]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteString("]")

	return b.String()
}
