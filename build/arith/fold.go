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

package arith

import (
	"math"
	"math/big"

	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
	"golang.org/x/exp/constraints"
)

func checkDivisor(op ir.BinaryOp, b ir.Expr) {
	switch op {
	case ir.Div, ir.Mod, ir.FloorDiv, ir.FloorMod:
	default:
		return
	}
	if ir.IsConstIntValue(b, 0) {
		panic(fmterr.Fatalf("divide by zero in %s with divisor of type %s", op, b.DType()))
	}
}

// compare applies a comparison operator.
func compare[T constraints.Ordered](op ir.BinaryOp, x, y T) bool {
	switch op {
	case ir.EQ:
		return x == y
	case ir.NE:
		return x != y
	case ir.LT:
		return x < y
	case ir.LE:
		return x <= y
	case ir.GT:
		return x > y
	case ir.GE:
		return x >= y
	}
	panic(fmterr.Fatalf("%s is not a comparison", op))
}

// pick returns the operand selected by min or max.
func pick[T constraints.Ordered](op ir.BinaryOp, x, y T) bool {
	if op == ir.Min {
		return x <= y
	}
	return x >= y
}

// IntRange returns the smallest and the largest values of an integer data type.
func IntRange(dt irkind.DType) (lo, hi *big.Int) {
	bits := uint(dt.Bits)
	switch {
	case dt.IsBool():
		return big.NewInt(0), big.NewInt(1)
	case dt.IsUInt():
		hi = new(big.Int).Lsh(big.NewInt(1), bits)
		return big.NewInt(0), hi.Sub(hi, big.NewInt(1))
	default:
		lo = new(big.Int).Lsh(big.NewInt(1), bits-1)
		hi = new(big.Int).Sub(lo, big.NewInt(1))
		return lo.Neg(lo), hi
	}
}

func intValue(imm *ir.IntImm) *big.Int {
	if imm.Typ.IsUInt() {
		return new(big.Int).SetUint64(imm.Uint64())
	}
	return big.NewInt(imm.Value)
}

// makeInt returns an integer literal or nil if v is out of the range of dt.
func makeInt(dt irkind.DType, v *big.Int) ir.Expr {
	lo, hi := IntRange(dt)
	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		return nil
	}
	if dt.IsUInt() {
		return &ir.IntImm{Typ: dt, Value: int64(v.Uint64())}
	}
	return &ir.IntImm{Typ: dt, Value: v.Int64()}
}

// floorDivMod returns the quotient rounded toward negative infinity and the matching remainder.
func floorDivMod(x, y *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		q.Sub(q, big.NewInt(1))
		r.Add(r, y)
	}
	return q, r
}

func foldInt(op ir.BinaryOp, a, b *ir.IntImm) ir.Expr {
	dt := a.Typ
	x, y := intValue(a), intValue(b)
	switch op {
	case ir.Add:
		return makeInt(dt, new(big.Int).Add(x, y))
	case ir.Sub:
		return makeInt(dt, new(big.Int).Sub(x, y))
	case ir.Mul:
		return makeInt(dt, new(big.Int).Mul(x, y))
	case ir.Div:
		return makeInt(dt, new(big.Int).Quo(x, y))
	case ir.Mod:
		return makeInt(dt, new(big.Int).Rem(x, y))
	case ir.FloorDiv:
		q, _ := floorDivMod(x, y)
		return makeInt(dt, q)
	case ir.FloorMod:
		_, r := floorDivMod(x, y)
		return makeInt(dt, r)
	case ir.Min, ir.Max:
		if pick(op, x.Cmp(y), 0) {
			return a
		}
		return b
	case ir.EQ, ir.NE, ir.LT, ir.LE, ir.GT, ir.GE:
		return ir.Bool(compare(op, x.Cmp(y), 0))
	case ir.And:
		return ir.Bool(a.Value != 0 && b.Value != 0)
	case ir.Or:
		return ir.Bool(a.Value != 0 || b.Value != 0)
	}
	return nil
}

func foldFloat(op ir.BinaryOp, a, b *ir.FloatImm) ir.Expr {
	dt := a.Typ
	x, y := a.Value, b.Value
	switch op {
	case ir.Add:
		return ir.ConstFloat(dt, x+y)
	case ir.Sub:
		return ir.ConstFloat(dt, x-y)
	case ir.Mul:
		return ir.ConstFloat(dt, x*y)
	case ir.Div:
		if y == 0 {
			return nil
		}
		return ir.ConstFloat(dt, x/y)
	case ir.FloorDiv:
		if y == 0 {
			return nil
		}
		return ir.ConstFloat(dt, math.Floor(x/y))
	case ir.FloorMod:
		if y == 0 {
			return nil
		}
		return ir.ConstFloat(dt, x-math.Floor(x/y)*y)
	case ir.Min, ir.Max:
		if pick(op, x, y) {
			return a
		}
		return b
	case ir.EQ, ir.NE, ir.LT, ir.LE, ir.GT, ir.GE:
		return ir.Bool(compare(op, x, y))
	}
	return nil
}
