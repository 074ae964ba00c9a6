// SPDX-License-Identifier: MIT

package combinatorics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/imeth/arithmetic"
)

var (
	// ErrInvalidArgument indicates arguments outside a formula's domain,
	// e.g. choosing more items than are available. It wraps arithmetic.ErrDomain.
	ErrInvalidArgument = fmt.Errorf("combinatorics: %w", arithmetic.ErrDomain)

	// ErrOverflow indicates a result that does not fit in uint64.
	ErrOverflow = errors.New("combinatorics: result overflows uint64")
)

// combErrorf wraps err with an operation tag.
func combErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
