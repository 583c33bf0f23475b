// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the 2D/3D vector math shared by the navigation
// and region subsystems: direction vectors, distance checks, and the
// float tolerances used throughout both.
//
// Package lin is provided as part of the vu (virtual universe) 3D engine.
package lin

// Design Notes:
//
// 1) Mutating methods take pointer receivers and write into the receiver
//    so that hot paths (integration sweeps, per-tick region updates) avoid
//    allocating new vectors.

import "math"

// Various linear math constants.
const (
	// Sqrt2 is the building block for the diagonal flow direction
	// unit vectors: 1/Sqrt2 on each axis.
	Sqrt2 float64 = math.Sqrt2

	// Large stands in for "no better candidate yet" when scanning for
	// a minimum over a handful of values.
	Large float64 = math.MaxFloat32

	// Epsilon is used to distinguish when a float is close enough to a number.
	Epsilon float64 = 0.000001
)

// AeqZ (~=) almost-equals returns true if the difference between x and zero
// is so small that it doesn't matter.
func AeqZ(x float64) bool { return math.Abs(x) < Epsilon }

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// Lerp returns the linear interpolation of a to b by the given ratio.
func Lerp(a, b, ratio float64) float64 { return (b-a)*ratio + a }

// Clamp returns a scalar value (one of: s, lb, ub) guaranteed to be within
// the range given by lower bound lb and upper bound ub.
func Clamp(s, lb, ub float64) float64 {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}

// Round returns the rounded version of x with prec digits of precision.
// Used to round a normalized direction to the fixed-precision step the
// wavefront-blocker line walks.
func Round(val float64, prec int) float64 {
	var rounder float64
	pow := math.Pow(10, float64(prec))
	intermed := val * pow
	if intermed < 0.0 {
		intermed -= 0.5
	} else {
		intermed += 0.5
	}
	rounder = float64(int64(intermed))
	return rounder / float64(pow)
}
