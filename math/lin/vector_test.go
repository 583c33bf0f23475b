// SPDX-FileCopyrightText : © 2014-2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package lin

import (
	"testing"
)

// While the functions below are not complicated, they are foundational such that it is
// better to test each one of them then have the bugs discovered later from other code.
// Where applicable, check that the output vector can also be used as one or both
// of the input vectors.

func TestSetV2(t *testing.T) {
	v, a := &V2{}, &V2{1, 2}
	if !v.Set(a).Eq(a) {
		t.Errorf("%s is not the same as %s", v.Dump(), a.Dump())
	}
}
func TestSetV3(t *testing.T) {
	v, a := &V3{}, &V3{1, 2, 3}
	if !v.Set(a).Eq(a) {
		t.Errorf("%s is not the same as %s", v.Dump(), a.Dump())
	}
}

func TestAddV2(t *testing.T) {
	v, want := &V2{1, 2}, &V2{2, 4}
	if !v.Add(v, v).Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}
func TestAddV3(t *testing.T) {
	v, want := &V3{1, 2, 3}, &V3{2, 4, 6}
	if !v.Add(v, v).Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestSubtractV2(t *testing.T) {
	v, want := &V2{1, 2}, &V2{0, 0}
	if !v.Sub(v, v).Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}
func TestSubtractV3(t *testing.T) {
	v, want := &V3{1, 2, 3}, &V3{0, 0, 0}
	if !v.Sub(v, v).Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestScaleV2(t *testing.T) {
	v, a, want := &V2{}, &V2{1, 2}, &V2{2, 4}
	if !v.Scale(a, 2).Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestDotV2(t *testing.T) {
	v, a := &V2{1, 0}, &V2{0, 1}
	if !Aeq(v.Dot(a), 0) {
		t.Errorf("expected orthogonal vectors to have zero dot product")
	}
}

func TestLenV2(t *testing.T) {
	v := &V2{3, 4}
	if !Aeq(v.Len(), 5) {
		t.Errorf("expected length 5, got %f", v.Len())
	}
}

func TestDistV2(t *testing.T) {
	a, b := &V2{0, 0}, &V2{3, 4}
	if !Aeq(a.Dist(b), 5) {
		t.Errorf("expected distance 5, got %f", a.Dist(b))
	}
}

func TestUnitV2(t *testing.T) {
	v, a := &V2{}, &V2{5, 0}
	want := &V2{1, 0}
	if !v.Unit(a).Aeq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}

	// a zero length vector normalizes to the zero vector.
	zero := &V2{0, 0}
	if !v.Unit(zero).Eq(zero) {
		t.Errorf("expected zero vector, got %s", v.Dump())
	}
}

func TestUnitV3(t *testing.T) {
	v, a := &V3{}, &V3{0, 5, 0}
	want := &V3{0, 1, 0}
	if !v.Unit(a).Aeq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestLerpV2(t *testing.T) {
	v, a, b := &V2{}, &V2{0, 0}, &V2{10, 10}
	want := &V2{5, 5}
	if !v.Lerp(a, b, 0.5).Aeq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}
