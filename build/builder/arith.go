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

	"github.com/gx-org/primexpr/build/arith"
	"github.com/gx-org/primexpr/build/ir"
)

// Add returns x + y.
func (b *Builder) Add(x, y ir.Expr) ir.Expr {
	return b.binary(ir.Add, x, y)
}

// Sub returns x - y.
func (b *Builder) Sub(x, y ir.Expr) ir.Expr {
	return b.binary(ir.Sub, x, y)
}

// Mul returns x * y.
func (b *Builder) Mul(x, y ir.Expr) ir.Expr {
	return b.binary(ir.Mul, x, y)
}

// Div returns x / y.
// Integer division rounds toward zero.
func (b *Builder) Div(x, y ir.Expr) ir.Expr {
	return b.binary(ir.Div, x, y)
}

// TruncDiv returns the integer division of x by y rounded toward zero.
func (b *Builder) TruncDiv(x, y ir.Expr) ir.Expr {
	b.checkIntOrUInt("truncdiv", x, y)
	return b.Div(x, y)
}

// TruncMod returns the remainder of TruncDiv(x, y).
// The result has the sign of x.
func (b *Builder) TruncMod(x, y ir.Expr) ir.Expr {
	b.checkIntOrUInt("truncmod", x, y)
	return b.binary(ir.Mod, x, y)
}

// Mod returns x % y, that is TruncMod(x, y).
func (b *Builder) Mod(x, y ir.Expr) ir.Expr {
	return b.TruncMod(x, y)
}

// FloorDiv returns the integer division of x by y rounded toward negative infinity.
func (b *Builder) FloorDiv(x, y ir.Expr) ir.Expr {
	b.checkIntOrUInt("floordiv", x, y)
	return b.binary(ir.FloorDiv, x, y)
}

// FloorMod returns the remainder of FloorDiv(x, y).
// The result has the sign of y.
func (b *Builder) FloorMod(x, y ir.Expr) ir.Expr {
	b.checkIntOrUInt("floormod", x, y)
	return b.binary(ir.FloorMod, x, y)
}

// IndexDiv divides two indices. Indices use FloorDiv.
func (b *Builder) IndexDiv(x, y ir.Expr) ir.Expr {
	return b.FloorDiv(x, y)
}

// IndexMod returns the remainder of IndexDiv(x, y).
func (b *Builder) IndexMod(x, y ir.Expr) ir.Expr {
	return b.FloorMod(x, y)
}

// Neg returns -x.
func (b *Builder) Neg(x ir.Expr) ir.Expr {
	switch xT := x.(type) {
	case *ir.IntImm:
		neg := -xT.Value
		if xT.Typ.IsInt() && xT.Value != math.MinInt64 && ir.WrapInt(xT.Typ, neg) == neg {
			return &ir.IntImm{Typ: xT.Typ, Value: neg}
		}
	case *ir.FloatImm:
		return &ir.FloatImm{Typ: xT.Typ, Value: -xT.Value}
	}
	return b.Sub(ir.Zero(x.DType()), x)
}

// Min returns the minimum of x and y.
// An infinity operand determines the result before any type promotion.
func (b *Builder) Min(x, y ir.Expr) ir.Expr {
	switch {
	case arith.IsPosInf(x):
		return y
	case arith.IsNegInf(x):
		return x
	case arith.IsPosInf(y):
		return x
	case arith.IsNegInf(y):
		return y
	}
	return b.binary(ir.Min, x, y)
}

// Max returns the maximum of x and y.
// An infinity operand determines the result before any type promotion.
func (b *Builder) Max(x, y ir.Expr) ir.Expr {
	switch {
	case arith.IsPosInf(x):
		return x
	case arith.IsNegInf(x):
		return y
	case arith.IsPosInf(y):
		return y
	case arith.IsNegInf(y):
		return x
	}
	return b.binary(ir.Max, x, y)
}
