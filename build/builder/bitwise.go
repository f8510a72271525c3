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
	"math/big"

	"github.com/gx-org/primexpr/build/arith"
	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
)

// bitwise builds a bitwise operator call. Two integer literals are folded with fold.
func (b *Builder) bitwise(name, builtin string, x, y ir.Expr, fold func(x, y int64) int64) ir.Expr {
	b.checkIntOrUInt(name, x, y)
	b.MatchTypes(&x, &y)
	ix, xOk := x.(*ir.IntImm)
	iy, yOk := y.(*ir.IntImm)
	if xOk && yOk {
		return &ir.IntImm{Typ: ix.Typ, Value: fold(ix.Value, iy.Value)}
	}
	return b.call(x.DType(), builtin, x, y)
}

// BitAnd returns x & y.
func (b *Builder) BitAnd(x, y ir.Expr) ir.Expr {
	return b.bitwise("& operator (bitwise and)", "bitwise_and", x, y, func(x, y int64) int64 { return x & y })
}

// BitOr returns x | y.
func (b *Builder) BitOr(x, y ir.Expr) ir.Expr {
	return b.bitwise("| operator (bitwise or)", "bitwise_or", x, y, func(x, y int64) int64 { return x | y })
}

// BitXor returns x ^ y.
func (b *Builder) BitXor(x, y ir.Expr) ir.Expr {
	return b.bitwise("^ operator (bitwise xor)", "bitwise_xor", x, y, func(x, y int64) int64 { return x ^ y })
}

// BitNot returns ^x.
func (b *Builder) BitNot(x ir.Expr) ir.Expr {
	b.checkIntOrUInt("~ operator (bitwise not)", x)
	return b.call(x.DType(), "bitwise_not", x)
}

// checkShift checks that a literal shift amount is in [0, bits).
func (b *Builder) checkShift(x, y ir.Expr) (*ir.IntImm, bool) {
	dt := x.DType()
	iy, ok := y.(*ir.IntImm)
	if !ok {
		return nil, false
	}
	fmterr.Check(iy.Value >= 0 && iy.Value < int64(dt.Bits),
		"shift amount %s must be non-negative and less than %d for type %s", iy, dt.Bits, b.typeName(dt))
	return iy, true
}

// ShiftLeft returns x << y.
// Shifting by a literal zero returns x.
func (b *Builder) ShiftLeft(x, y ir.Expr) ir.Expr {
	b.checkIntOrUInt("<< operator (shift left)", x, y)
	b.MatchTypes(&x, &y)
	iy, ok := b.checkShift(x, y)
	if !ok {
		return b.call(x.DType(), "shift_left", x, y)
	}
	if iy.Value == 0 {
		return x
	}
	if ix, ok := x.(*ir.IntImm); ok {
		if folded := foldShiftLeft(ix, uint(iy.Value)); folded != nil {
			return folded
		}
	}
	return b.call(x.DType(), "shift_left", x, y)
}

// foldShiftLeft returns the shifted literal or nil if the result overflows.
func foldShiftLeft(x *ir.IntImm, s uint) ir.Expr {
	v := big.NewInt(x.Value)
	if x.Typ.IsUInt() {
		v.SetUint64(x.Uint64())
	}
	v.Lsh(v, s)
	lo, hi := arith.IntRange(x.Typ)
	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		return nil
	}
	return &ir.IntImm{Typ: x.Typ, Value: x.Value << s}
}

// ShiftRight returns x >> y.
// Signed integers are shifted arithmetically.
// Shifting by a literal zero returns x.
func (b *Builder) ShiftRight(x, y ir.Expr) ir.Expr {
	b.checkIntOrUInt(">> operator (shift right)", x, y)
	b.MatchTypes(&x, &y)
	iy, ok := b.checkShift(x, y)
	if !ok {
		return b.call(x.DType(), "shift_right", x, y)
	}
	if iy.Value == 0 {
		return x
	}
	if ix, ok := x.(*ir.IntImm); ok {
		s := uint(iy.Value)
		if ix.Typ.IsUInt() {
			return &ir.IntImm{Typ: ix.Typ, Value: int64(ix.Uint64() >> s)}
		}
		return &ir.IntImm{Typ: ix.Typ, Value: ix.Value >> s}
	}
	return b.call(x.DType(), "shift_right", x, y)
}
