// SPDX-License-Identifier: MIT

package logarithm

import (
	"fmt"

	"github.com/katalvlaran/imeth/arithmetic"
)

// ErrDomain is returned for a non-positive or NaN argument, and for a base
// that is non-positive or within BaseOneTolerance of 1.
// It wraps arithmetic.ErrDomain.
var ErrDomain = fmt.Errorf("logarithm: %w", arithmetic.ErrDomain)
