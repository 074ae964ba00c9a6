// SPDX-License-Identifier: MIT

package geometry

import "errors"

var (
	// ErrUnknownShape indicates a Kind outside the declared set.
	ErrUnknownShape = errors.New("geometry: unknown shape")

	// ErrInvalidDimension indicates a negative, NaN or infinite dimension.
	ErrInvalidDimension = errors.New("geometry: invalid dimension")
)
