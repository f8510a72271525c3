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
	"math"

	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

// Pow returns x to the power y.
func (b *Builder) Pow(x, y ir.Expr) ir.Expr {
	b.MatchTypes(&x, &y)
	b.checkFloat("pow", x)
	return b.call(x.DType(), "pow", x, y)
}

// Fmod returns the floating point remainder of x / y.
func (b *Builder) Fmod(x, y ir.Expr) ir.Expr {
	b.MatchTypes(&x, &y)
	b.checkFloat("fmod", x)
	return b.call(x.DType(), "fmod", x, y)
}

// Intrinsic calls a math function given its name.
// All arguments must be floats. Arguments of binary functions are promoted
// to a common type. The result has the type of the first argument.
func (b *Builder) Intrinsic(name string, args ...ir.Expr) ir.Expr {
	op := b.ops.Get(name)
	fmterr.Check(op.Intrinsic, "%s is not an intrinsic", name)
	fmterr.Check(op.NumInputs < 0 || op.NumInputs == len(args), "%s expects %d arguments but got %d", name, op.NumInputs, len(args))
	fmterr.Check(len(args) > 0, "%s called without arguments", name)
	if len(args) == 2 {
		b.MatchTypes(&args[0], &args[1])
	}
	b.checkFloat(name, args...)
	return &ir.Call{Typ: args[0].DType(), Op: op, Args: args}
}

// Abs returns the absolute value of x.
// Unsigned integers are returned unchanged. A signed integer literal is computed:
// the absolute value of the minimum of its type does not fit and is a fatal error.
// A signed integer expression x is expanded to x >= 0 ? x : -x.
func (b *Builder) Abs(x ir.Expr) ir.Expr {
	dt := x.DType()
	switch {
	case dt.IsInt():
		if imm, ok := x.(*ir.IntImm); ok {
			if imm.Value >= 0 {
				return imm
			}
			neg, ok := b.Neg(imm).(*ir.IntImm)
			fmterr.Check(ok, "abs(%s) overflows %s", imm, b.typeName(dt))
			return neg
		}
		return &ir.Select{
			Cond:  b.GE(x, ir.Zero(dt)),
			True:  x,
			False: b.Neg(x),
		}
	case dt.IsFloat():
		if imm, ok := x.(*ir.FloatImm); ok {
			return &ir.FloatImm{Typ: dt, Value: math.Abs(imm.Value)}
		}
		return b.call(dt, "fabs", x)
	case dt.IsUInt():
		return x
	}
	panic(fmterr.Fatalf("data type %s not supported by abs", b.typeName(dt)))
}

// IsNaN returns true if x is not a number.
// Integers are never NaN. Half precision floats are converted to single
// precision floats before calling isnan.
func (b *Builder) IsNaN(x ir.Expr) ir.Expr {
	dt := x.DType()
	lanes := int(dt.Lanes)
	switch {
	case dt.IsIntOrUInt():
		return ir.BoolLanes(lanes, false)
	case dt.IsFloat():
		if imm, ok := x.(*ir.FloatImm); ok {
			return ir.Bool(math.IsNaN(imm.Value))
		}
		if dt.Bits == 16 {
			x = b.Cast(dt.WithBits(32), x)
		}
		return b.call(irkind.BoolOf(lanes), "isnan", x)
	}
	panic(fmterr.Fatalf("data type %s not supported by isnan", b.typeName(dt)))
}

// IsInf returns true if x is a positive or a negative infinity,
// that is abs(x) == infinity && !isnan(x).
func (b *Builder) IsInf(x ir.Expr) ir.Expr {
	dt := x.DType()
	switch {
	case dt.IsIntOrUInt():
		return ir.BoolLanes(int(dt.Lanes), false)
	case dt.IsFloat():
		inf := b.Infinity(dt.ElementOf())
		return b.And(b.EQ(b.Abs(x), inf), b.Not(b.IsNaN(x)))
	}
	panic(fmterr.Fatalf("data type %s not supported by isinf", b.typeName(dt)))
}

// IsFinite returns true if x is neither an infinity nor NaN,
// that is !isinf(x) && !isnan(x).
func (b *Builder) IsFinite(x ir.Expr) ir.Expr {
	dt := x.DType()
	switch {
	case dt.IsIntOrUInt():
		return ir.BoolLanes(int(dt.Lanes), true)
	case dt.IsFloat():
		return b.And(b.Not(b.IsInf(x)), b.Not(b.IsNaN(x)))
	}
	panic(fmterr.Fatalf("data type %s not supported by isfinite", b.typeName(dt)))
}

// rounding returns x for integers, folds float literals with fn
// and calls the intrinsic name otherwise.
func (b *Builder) rounding(name string, x ir.Expr, fn func(float64) float64) ir.Expr {
	dt := x.DType()
	if dt.IsIntOrUInt() {
		return x
	}
	b.checkFloat(name, x)
	if imm, ok := x.(*ir.FloatImm); ok {
		return ir.ConstFloat(dt, fn(imm.Value))
	}
	return b.call(dt, name, x)
}

// Floor rounds x toward negative infinity.
func (b *Builder) Floor(x ir.Expr) ir.Expr {
	return b.rounding("floor", x, math.Floor)
}

// Ceil rounds x toward positive infinity.
func (b *Builder) Ceil(x ir.Expr) ir.Expr {
	return b.rounding("ceil", x, math.Ceil)
}

// Round rounds x to the nearest integer, ties to even.
func (b *Builder) Round(x ir.Expr) ir.Expr {
	return b.rounding("round", x, math.RoundToEven)
}

// NearbyInt rounds x to the nearest integer using the default rounding mode, ties to even.
func (b *Builder) NearbyInt(x ir.Expr) ir.Expr {
	return b.rounding("nearbyint", x, math.RoundToEven)
}

// Trunc rounds x toward zero.
func (b *Builder) Trunc(x ir.Expr) ir.Expr {
	return b.rounding("trunc", x, math.Trunc)
}
