// SPDX-License-Identifier: MIT

// Package solver: functional configuration for the direct solvers.
// This file defines Option / Options, the documented defaults and the
// WithX constructors (panic on nonsensical values, i.e. programmer error).

package solver

import "math"

// DefaultPivotTolerance is the smallest pivot magnitude accepted as non-zero.
const DefaultPivotTolerance = 1e-12

const panicPivotToleranceInvalid = "solver: WithPivotTolerance: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// PivotTolerance returns the effective pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// WithPivotTolerance sets the threshold below which |pivot| counts as zero.
// A zero tolerance only rejects exact zero pivots.
//
// Panics when eps is negative, NaN or ±Inf.
func WithPivotTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = eps }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters in order on top of defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance}
	for _, set := range user {
		set(&o)
	}

	return o
}
