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

package builder

import (
	"math/bits"

	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

// castLiteral converts a scalar literal to a scalar data type.
// It returns nil if x is not a literal.
func castLiteral(dt irkind.DType, x ir.Expr) ir.Expr {
	switch xT := x.(type) {
	case *ir.IntImm:
		if xT.Typ.IsUInt() && (dt.IsFloat() || dt.IsCustom()) {
			return ir.ConstFloat(dt, float64(xT.Uint64()))
		}
		return ir.Const(dt, xT.Value)
	case *ir.FloatImm:
		return ir.ConstFloat(dt, xT.Value)
	}
	return nil
}

// Cast converts x to the data type dt.
//
// Literals are converted when the target is a scalar. A scalar cast to a vector
// is cast to the element type of the vector, then broadcast.
func (b *Builder) Cast(dt irkind.DType, x ir.Expr) ir.Expr {
	xt := x.DType()
	if xt == dt {
		return x
	}
	if dt.IsScalar() {
		if lit := castLiteral(dt, x); lit != nil {
			return lit
		}
		fmterr.Check(xt.IsScalar(), "cannot cast %s to %s: different number of lanes", b.typeName(xt), b.typeName(dt))
		return &ir.Cast{Typ: dt, X: x}
	}
	elt := dt.ElementOf()
	if xt.IsScalar() {
		return &ir.Broadcast{X: b.Cast(elt, x), Lanes: int(dt.Lanes)}
	}
	fmterr.Check(xt.Lanes == dt.Lanes, "cannot cast %s to %s: different number of lanes", b.typeName(xt), b.typeName(dt))
	if bc, ok := x.(*ir.Broadcast); ok {
		return &ir.Broadcast{X: b.Cast(elt, bc.X), Lanes: bc.Lanes}
	}
	return &ir.Cast{Typ: dt, X: x}
}

// Reinterpret returns the bits of x interpreted as the data type dt.
// Both types must have the same total number of bits.
// Reinterpreting a literal is never folded.
func (b *Builder) Reinterpret(dt irkind.DType, x ir.Expr) ir.Expr {
	xt := x.DType()
	if xt == dt {
		return x
	}
	fmterr.Check(int(xt.Bits)*int(xt.Lanes) == int(dt.Bits)*int(dt.Lanes),
		"reinterpret requires size match: %s vs %s", b.typeName(xt), b.typeName(dt))
	return b.call(dt, "reinterpret", x)
}

// IfThenElse returns t if cond is true, f otherwise.
// The condition must be a scalar boolean. A literal condition selects a branch
// without building any expression.
func (b *Builder) IfThenElse(cond, t, f ir.Expr) ir.Expr {
	fmterr.Check(cond.DType() == irkind.BoolType,
		"if_then_else requires a boolean condition but got %s of type %s", cond, b.typeName(cond.DType()))
	b.MatchTypes(&t, &f)
	if lit, ok := cond.(*ir.IntImm); ok {
		if lit.Value != 0 {
			return t
		}
		return f
	}
	return b.call(t.DType(), "if_then_else", cond, t, f)
}

// Likely marks a condition as likely to be true.
func (b *Builder) Likely(cond ir.Expr) ir.Expr {
	if ir.IsConstInt(cond) {
		return cond
	}
	return b.call(cond.DType(), "likely", cond)
}

// LargeUIntImm returns an unsigned integer literal of type dt from its low and high 32 bits.
func (b *Builder) LargeUIntImm(dt irkind.DType, low, high int64) ir.Expr {
	return b.call(dt, "large_uint_imm", ir.Const(irkind.UInt32, low), ir.Const(irkind.UInt32, high))
}

// QMultiplyShift multiplies two fixed point numbers x and y with q fractional bits,
// then shifts the result by s.
func (b *Builder) QMultiplyShift(x, y, q, s ir.Expr) ir.Expr {
	dt := irkind.Int32.WithLanes(int(x.DType().Lanes))
	return b.call(dt, "q_multiply_shift", x, y, q, s)
}

// IsConstPowerOfTwoInteger returns the base-2 logarithm of an integer literal
// if the literal is a positive power of two.
func IsConstPowerOfTwoInteger(x ir.Expr) (shift int, ok bool) {
	imm, isInt := x.(*ir.IntImm)
	if !isInt || !imm.Typ.IsIntOrUInt() {
		return 0, false
	}
	v := imm.Uint64()
	if imm.Typ.IsInt() && imm.Value <= 0 || v == 0 {
		return 0, false
	}
	if v&(v-1) != 0 {
		return 0, false
	}
	return bits.TrailingZeros64(v), true
}
