// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Vector performs 2 and 3 element vector math. V2 covers region positions
// and in-plane (XZ) directions; V3 covers world positions that carry a
// vertical component (entity map_pos).

import "math"

// V2 is a 2 element vector used for region centers and flat-plane
// directions. This can also be used as a point.
type V2 struct {
	X float64
	Y float64
}

// V3 is a 3 element vector. This can also be used as a point.
type V3 struct {
	X float64 // increments as X moves to the right.
	Y float64 // increments as Y moves up from bottom left.
	Z float64 // increments as Z moves out of the screen (right handed view space).
}

// NewV2 returns a new zero vector.
func NewV2() *V2 { return &V2{} }

// NewV2S returns a new vector with the given element values.
func NewV2S(x, y float64) *V2 { return &V2{x, y} }

// NewV3 returns a new zero vector.
func NewV3() *V3 { return &V3{} }

// NewV3S returns a new vector with the given element values.
func NewV3S(x, y, z float64) *V3 { return &V3{x, y, z} }

// Eq (==) returns true if each element in the vector v has the same value
// as the corresponding element in vector a.
func (v *V2) Eq(a *V2) bool { return v.X == a.X && v.Y == a.Y }

// Eq (==) returns true if each element in the vector v has the same value
// as the corresponding element in vector a.
func (v *V3) Eq(a *V3) bool { return v.Z == a.Z && v.Y == a.Y && v.X == a.X }

// Aeq (~=) almost-equals returns true if all the elements in vector v have
// essentially the same value as the corresponding elements in vector a.
// Used where a direct comparison is unlikely to return true due to floats.
func (v *V2) Aeq(a *V2) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }

// Aeq (~=) almost-equals. Same behaviour as V2.Aeq().
func (v *V3) Aeq(a *V3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// AeqZ (~=) almost equals zero returns true if the square length of the vector
// is close enough to zero that it makes no difference.
func (v *V2) AeqZ() bool { return v.Dot(v) < Epsilon }

// AeqZ (~=) almost equals zero. Same behaviour as V2.AeqZ().
func (v *V3) AeqZ() bool { return v.Dot(v) < Epsilon }

// GetS returns the float64 values of the vector.
func (v *V2) GetS() (x, y float64) { return v.X, v.Y }

// GetS returns the float64 values of the vector.
func (v *V3) GetS() (x, y, z float64) { return v.X, v.Y, v.Z }

// SetS (=) sets the vector elements to the given values.
// The updated vector v is returned.
func (v *V2) SetS(x, y float64) *V2 {
	v.X, v.Y = x, y
	return v
}

// SetS (=) sets the vector elements to the given values.
// The updated vector v is returned.
func (v *V3) SetS(x, y, z float64) *V3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Set (=, copy, clone) sets the elements of vector v to have the same values
// as the elements of vector a. The updated vector v is returned.
func (v *V2) Set(a *V2) *V2 {
	v.X, v.Y = a.X, a.Y
	return v
}

// Set (=, copy, clone) sets the elements of vector v to have the same values
// as the elements of vector a. The updated vector v is returned.
func (v *V3) Set(a *V3) *V3 {
	v.X, v.Y, v.Z = a.X, a.Y, a.Z
	return v
}

// Add (+) adds vectors a and b storing the results of the addition in v.
// Vector v may be used as one or both of the parameters.
// The updated vector v is returned.
func (v *V2) Add(a, b *V2) *V2 {
	v.X, v.Y = a.X+b.X, a.Y+b.Y
	return v
}

// Add (+) adds vectors a and b storing the results of the addition in v.
// Same behaviour as V2.Add().
func (v *V3) Add(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X+b.X, a.Y+b.Y, a.Z+b.Z
	return v
}

// Sub (-) subtracts vectors b from a storing the results of the subtraction in v.
// Vector v may be used as one or both of the parameters.
// The updated vector v is returned.
func (v *V2) Sub(a, b *V2) *V2 {
	v.X, v.Y = a.X-b.X, a.Y-b.Y
	return v
}

// Sub (-) subtracts vectors b from a. Same behaviour as V2.Sub().
func (v *V3) Sub(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return v
}

// Scale (*=) updates the elements in vector v by multiplying the
// corresponding elements in vector a by the given scalar value.
// Vector v may be used as one or both of the vector parameters.
// The updated vector v is returned.
func (v *V2) Scale(a *V2, s float64) *V2 {
	v.X, v.Y = a.X*s, a.Y*s
	return v
}

// Scale (*=). Same behaviour as V2.Scale().
func (v *V3) Scale(a *V3, s float64) *V3 {
	v.X, v.Y, v.Z = a.X*s, a.Y*s, a.Z*s
	return v
}

// Dot vector v with input vector a. Both vectors v and a are unchanged.
func (v *V2) Dot(a *V2) float64 { return v.X*a.X + v.Y*a.Y }

// Dot vector v with input vector a. Same behaviour as V2.Dot().
func (v *V3) Dot(a *V3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Len returns the length of vector v. Vector length is the square root of
// the dot product. The calling vector v is unchanged.
func (v *V2) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the length of vector v squared. The calling vector v is unchanged.
func (v *V2) LenSqr() float64 { return v.Dot(v) }

// Len returns the length of vector v. Same behaviour as V2.Len().
func (v *V3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the length of vector v squared. Same behaviour as V2.LenSqr().
func (v *V3) LenSqr() float64 { return v.Dot(v) }

// Dist returns the distance between vector v and vector a.
func (v *V2) Dist(a *V2) float64 { return math.Sqrt(v.DistSqr(a)) }

// DistSqr returns the square of the distance between vector v and vector a.
func (v *V2) DistSqr(a *V2) float64 {
	dx, dy := v.X-a.X, v.Y-a.Y
	return dx*dx + dy*dy
}

// Dist returns the distance between vector v and vector a.
func (v *V3) Dist(a *V3) float64 { return math.Sqrt(v.DistSqr(a)) }

// DistSqr returns the square of the distance between vector v and vector a.
func (v *V3) DistSqr(a *V3) float64 {
	dx, dy, dz := v.X-a.X, v.Y-a.Y, v.Z-a.Z
	return dx*dx + dy*dy + dz*dz
}

// Unit updates vector v to be a unit vector in the same direction as a.
// Leaves v as the zero vector if a has (almost) zero length.
func (v *V2) Unit(a *V2) *V2 {
	lsqr := a.Dot(a)
	if lsqr > Epsilon {
		return v.Scale(a, 1/math.Sqrt(lsqr))
	}
	v.X, v.Y = 0, 0
	return v
}

// Unit updates vector v to be a unit vector in the same direction as a.
// Same behaviour as V2.Unit().
func (v *V3) Unit(a *V3) *V3 {
	lsqr := a.Dot(a)
	if lsqr > Epsilon {
		return v.Scale(a, 1/math.Sqrt(lsqr))
	}
	v.X, v.Y, v.Z = 0, 0, 0
	return v
}

// Lerp sets v to the linear interpolation of vectors a and b by fraction.
func (v *V2) Lerp(a, b *V2, fraction float64) *V2 {
	v.X = Lerp(a.X, b.X, fraction)
	v.Y = Lerp(a.Y, b.Y, fraction)
	return v
}

// Lerp sets v to the linear interpolation of vectors a and b by fraction.
func (v *V3) Lerp(a, b *V3, fraction float64) *V3 {
	v.X = Lerp(a.X, b.X, fraction)
	v.Y = Lerp(a.Y, b.Y, fraction)
	v.Z = Lerp(a.Z, b.Z, fraction)
	return v
}
