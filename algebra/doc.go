// SPDX-License-Identifier: MIT

// Package algebra is the small front-end for hand-sized equations: a linear
// equation in one unknown, a 2×2 linear system by elimination, and the real
// roots of a quadratic.
//
// Solve1V and Solve2V test degenerate coefficients with exact equality
// (== 0), while SolveQuadratic uses QuadraticEpsilon. The two policies are
// deliberate and classify near-degenerate inputs differently; larger systems
// belong in package solver.
package algebra
