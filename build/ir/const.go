// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ir

import (
	"math"

	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir/irkind"
	"github.com/x448/float16"
)

// Const returns a literal of data type dt from an integer value.
// The value is converted as a Go conversion would: integers wrap around
// their bit width and booleans are true for non-zero values.
// A vector data type broadcasts the scalar literal across its lanes.
func Const(dt irkind.DType, v int64) Expr {
	scalar := constScalar(dt.ElementOf(), v)
	if dt.IsScalar() {
		return scalar
	}
	return &Broadcast{X: scalar, Lanes: int(dt.Lanes)}
}

// ConstFloat returns a literal of data type dt from a floating point value.
// Integer data types truncate the value toward zero. A value that is not a number,
// an infinity or a value out of the range of the integer type is a fatal error.
// Booleans are true for non-zero values.
func ConstFloat(dt irkind.DType, v float64) Expr {
	elt := dt.ElementOf()
	var scalar Expr
	switch {
	case elt.IsFloat(), elt.IsCustom():
		scalar = &FloatImm{Typ: elt, Value: RoundFloat(elt, v)}
	case elt.IsBool():
		scalar = Bool(v != 0)
	case elt.IsIntOrUInt():
		scalar = &IntImm{Typ: elt, Value: truncInt(elt, v)}
	default:
		scalar = constScalar(elt, 0)
	}
	if dt.IsScalar() {
		return scalar
	}
	return &Broadcast{X: scalar, Lanes: int(dt.Lanes)}
}

func constScalar(dt irkind.DType, v int64) Expr {
	switch {
	case dt.IsInt(), dt.IsUInt(), dt.IsBool():
		return &IntImm{Typ: dt, Value: WrapInt(dt, v)}
	case dt.IsFloat(), dt.IsCustom():
		return &FloatImm{Typ: dt, Value: RoundFloat(dt, float64(v))}
	}
	panic(fmterr.Fatalf("cannot make a constant of type %s", dt))
}

// truncInt truncates a float toward zero into an integer data type.
// The result of an unsigned type is its bit pattern.
func truncInt(dt irkind.DType, v float64) int64 {
	t := math.Trunc(v)
	bits := min(int(dt.Bits), 64)
	lo, hi := -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	if dt.IsUInt() {
		lo, hi = 0, math.Ldexp(1, bits)
	}
	fmterr.Check(t >= lo && t < hi, "cannot convert %g to %s: value out of range", v, dt)
	if t >= math.Ldexp(1, 63) {
		return int64(uint64(t))
	}
	return int64(t)
}

// WrapInt converts an integer to the range of an integer data type.
func WrapInt(dt irkind.DType, v int64) int64 {
	if dt.IsBool() {
		if v != 0 {
			return 1
		}
		return 0
	}
	if dt.Bits >= 64 || dt.Bits == 0 {
		return v
	}
	shift := 64 - uint(dt.Bits)
	if dt.IsInt() {
		return (v << shift) >> shift
	}
	return int64(uint64(v) << shift >> shift)
}

// RoundFloat rounds a float to the precision of a float data type.
// 16-bit floats are IEEE half precision: values beyond their range become infinities.
// Custom data types keep full precision.
func RoundFloat(dt irkind.DType, v float64) float64 {
	if !dt.IsFloat() {
		return v
	}
	switch dt.Bits {
	case 16:
		return float64(float16.Fromfloat32(float32(v)).Float32())
	case 32:
		return float64(float32(v))
	}
	return v
}

// Zero returns the literal 0 of a data type.
func Zero(dt irkind.DType) Expr {
	return Const(dt, 0)
}

// One returns the literal 1 of a data type.
func One(dt irkind.DType) Expr {
	return Const(dt, 1)
}

// Bool returns a scalar boolean literal.
func Bool(v bool) *IntImm {
	imm := &IntImm{Typ: irkind.BoolType}
	if v {
		imm.Value = 1
	}
	return imm
}

// BoolLanes returns a boolean literal with a given number of lanes.
func BoolLanes(lanes int, v bool) Expr {
	if lanes == 1 {
		return Bool(v)
	}
	return &Broadcast{X: Bool(v), Lanes: lanes}
}

// True returns the scalar boolean literal true.
func True() *IntImm { return Bool(true) }

// False returns the scalar boolean literal false.
func False() *IntImm { return Bool(false) }

// AsIntImm returns the expression as an integer literal.
func AsIntImm(e Expr) (*IntImm, bool) {
	imm, ok := e.(*IntImm)
	return imm, ok
}

// AsFloatImm returns the expression as a floating point literal.
func AsFloatImm(e Expr) (*FloatImm, bool) {
	imm, ok := e.(*FloatImm)
	return imm, ok
}

// IsConstInt returns true if the expression is an integer literal.
func IsConstInt(e Expr) bool {
	_, ok := e.(*IntImm)
	return ok
}

// IsConstIntValue returns true if the expression is an integer literal equal to v.
func IsConstIntValue(e Expr, v int64) bool {
	imm, ok := e.(*IntImm)
	return ok && imm.Value == v
}

// IsConst returns true if the expression is an integer or a floating point literal.
func IsConst(e Expr) bool {
	switch e.(type) {
	case *IntImm, *FloatImm:
		return true
	}
	return false
}
