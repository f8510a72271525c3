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

package arith_test

import (
	"math"
	"testing"

	"github.com/gx-org/primexpr/build/arith"
	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

func i32(v int64) ir.Expr { return ir.Const(irkind.Int32, v) }

func f32(v float64) ir.Expr { return ir.ConstFloat(irkind.Float32, v) }

func TestFoldInt(t *testing.T) {
	tests := []struct {
		op   ir.BinaryOp
		a, b ir.Expr
		want string
	}{
		{op: ir.Add, a: i32(3), b: i32(4), want: "7"},
		{op: ir.Sub, a: i32(3), b: i32(4), want: "-1"},
		{op: ir.Mul, a: i32(-3), b: i32(4), want: "-12"},
		{op: ir.Div, a: i32(-7), b: i32(2), want: "-3"},
		{op: ir.Mod, a: i32(-7), b: i32(2), want: "-1"},
		{op: ir.FloorDiv, a: i32(-7), b: i32(2), want: "-4"},
		{op: ir.FloorMod, a: i32(-7), b: i32(2), want: "1"},
		{op: ir.FloorDiv, a: i32(7), b: i32(-2), want: "-4"},
		{op: ir.FloorMod, a: i32(7), b: i32(-2), want: "-1"},
		{op: ir.Min, a: i32(3), b: i32(-4), want: "-4"},
		{op: ir.Max, a: i32(3), b: i32(-4), want: "3"},
		{op: ir.LT, a: i32(3), b: i32(4), want: "true"},
		{op: ir.GE, a: i32(3), b: i32(4), want: "false"},
		{op: ir.EQ, a: i32(4), b: i32(4), want: "true"},
		{op: ir.And, a: ir.True(), b: ir.False(), want: "false"},
		{op: ir.Or, a: ir.True(), b: ir.False(), want: "true"},
		{op: ir.Add, a: ir.Const(irkind.UInt8, 200), b: ir.Const(irkind.UInt8, 55), want: "255u8"},
		{op: ir.GT, a: ir.Const(irkind.UInt64, -1), b: ir.Const(irkind.UInt64, 1), want: "true"},
	}
	for i, test := range tests {
		got := arith.TryConstFold(test.op, test.a, test.b)
		if got == nil {
			t.Errorf("test %d: %s %s %s not folded", i, test.a, test.op, test.b)
			continue
		}
		if got.String() != test.want {
			t.Errorf("test %d: got %s but want %s", i, got, test.want)
		}
	}
}

func TestFoldIntOverflow(t *testing.T) {
	tests := []struct {
		op   ir.BinaryOp
		a, b ir.Expr
	}{
		{op: ir.Add, a: ir.Const(irkind.Int8, 127), b: ir.Const(irkind.Int8, 1)},
		{op: ir.Sub, a: ir.Const(irkind.UInt8, 0), b: ir.Const(irkind.UInt8, 1)},
		{op: ir.Mul, a: ir.Const(irkind.Int64, math.MaxInt64), b: ir.Const(irkind.Int64, 2)},
		{op: ir.Div, a: ir.Const(irkind.Int32, math.MinInt32), b: ir.Const(irkind.Int32, -1)},
	}
	for i, test := range tests {
		if got := arith.TryConstFold(test.op, test.a, test.b); got != nil {
			t.Errorf("test %d: got %s but want no fold", i, got)
		}
	}
}

func TestFoldFloat(t *testing.T) {
	tests := []struct {
		op   ir.BinaryOp
		a, b ir.Expr
		want ir.Expr
	}{
		{op: ir.Add, a: f32(1.5), b: f32(2.25), want: f32(3.75)},
		{op: ir.Mul, a: f32(1.0 / 3), b: f32(3), want: f32(1)},
		{op: ir.Div, a: f32(1), b: f32(4), want: f32(0.25)},
		{op: ir.FloorDiv, a: f32(-7), b: f32(2), want: f32(-4)},
		{op: ir.FloorMod, a: f32(-7), b: f32(2), want: f32(1)},
		{op: ir.Max, a: f32(-1), b: f32(2), want: f32(2)},
		{op: ir.LE, a: f32(-1), b: f32(2), want: ir.True()},
	}
	for i, test := range tests {
		got := arith.TryConstFold(test.op, test.a, test.b)
		if got == nil {
			t.Errorf("test %d: %s %s %s not folded", i, test.a, test.op, test.b)
			continue
		}
		if !ir.StructEqual(got, test.want) {
			t.Errorf("test %d: got %s but want %s", i, got, test.want)
		}
	}
	if got := arith.TryConstFold(ir.Div, f32(1), f32(0)); got != nil {
		t.Errorf("float division by zero folded to %s", got)
	}
	if got := arith.TryConstFold(ir.Mod, f32(1), f32(2)); got != nil {
		t.Errorf("float modulo folded to %s", got)
	}
}

func TestFoldFloat16(t *testing.T) {
	f16 := func(v float64) ir.Expr { return ir.ConstFloat(irkind.Float16, v) }
	tests := []struct {
		op   ir.BinaryOp
		a, b ir.Expr
		want float64
	}{
		{op: ir.Add, a: f16(65504), b: f16(65504), want: math.Inf(1)},
		{op: ir.Sub, a: f16(-65504), b: f16(65504), want: math.Inf(-1)},
		{op: ir.Add, a: f16(65504), b: f16(8), want: 65504},
		{op: ir.Add, a: f16(2048), b: f16(1), want: 2048},
		{op: ir.Mul, a: f16(0.1), b: f16(1), want: 0.0999755859375},
		{op: ir.Div, a: f16(1), b: f16(3), want: 0.333251953125},
	}
	for i, test := range tests {
		got, ok := arith.TryConstFold(test.op, test.a, test.b).(*ir.FloatImm)
		if !ok {
			t.Errorf("test %d: %s %s %s not folded into a float literal", i, test.a, test.op, test.b)
			continue
		}
		if got.Typ != irkind.Float16 || got.Value != test.want {
			t.Errorf("test %d: got %s (%v) but want %v", i, got, got.Value, test.want)
		}
	}
	eq := arith.TryConstFold(ir.EQ, f16(0.1), &ir.FloatImm{Typ: irkind.Float16, Value: 0.0999755859375})
	if !ir.StructEqual(eq, ir.True()) {
		t.Errorf("0.1f16 is not stored as the nearest half precision value: got %s", eq)
	}
}

func TestFoldIdentity(t *testing.T) {
	x := ir.NewVar("x", irkind.Int32)
	c := ir.NewVar("c", irkind.BoolType)
	tests := []struct {
		op   ir.BinaryOp
		a, b ir.Expr
		want ir.Expr
	}{
		{op: ir.Add, a: x, b: i32(0), want: x},
		{op: ir.Add, a: i32(0), b: x, want: x},
		{op: ir.Sub, a: x, b: i32(0), want: x},
		{op: ir.Sub, a: i32(0), b: x, want: nil},
		{op: ir.Mul, a: x, b: i32(1), want: nil},
		{op: ir.And, a: ir.True(), b: c, want: c},
		{op: ir.And, a: c, b: ir.True(), want: c},
		{op: ir.Or, a: c, b: ir.False(), want: c},
	}
	for i, test := range tests {
		got := arith.TryConstFold(test.op, test.a, test.b)
		if got != test.want {
			t.Errorf("test %d: got %v but want %v", i, got, test.want)
		}
	}
	zero := arith.TryConstFold(ir.Mul, x, i32(0))
	if !ir.IsConstIntValue(zero, 0) {
		t.Errorf("got %v but want 0", zero)
	}
	falseVal := arith.TryConstFold(ir.And, c, ir.False())
	if !ir.IsConstIntValue(falseVal, 0) {
		t.Errorf("got %v but want false", falseVal)
	}
}

func TestFoldMismatchedTypes(t *testing.T) {
	if got := arith.TryConstFold(ir.Add, i32(1), ir.Const(irkind.Int64, 1)); got != nil {
		t.Errorf("got %s but want no fold", got)
	}
}

func TestDivideByZero(t *testing.T) {
	for _, op := range []ir.BinaryOp{ir.Div, ir.Mod, ir.FloorDiv, ir.FloorMod} {
		x := ir.NewVar("x", irkind.Int32)
		err := fmterr.Catch(func() { arith.TryConstFold(op, x, i32(0)) })
		if err == nil {
			t.Errorf("%s: expected a divide by zero error", op)
		}
	}
}

func TestFoldNot(t *testing.T) {
	if got := arith.TryConstFoldNot(ir.True()); !ir.IsConstIntValue(got, 0) {
		t.Errorf("got %v but want false", got)
	}
	if got := arith.TryConstFoldNot(ir.NewVar("c", irkind.BoolType)); got != nil {
		t.Errorf("got %s but want no fold", got)
	}
}

func TestInfinity(t *testing.T) {
	tests := []struct {
		e        ir.Expr
		pos, neg bool
	}{
		{e: arith.PosInf(), pos: true},
		{e: arith.NegInf(), neg: true},
		{e: f32(math.Inf(1)), pos: true},
		{e: ir.ConstFloat(irkind.Float64, math.Inf(-1)), neg: true},
		{e: f32(math.MaxFloat32)},
		{e: ir.NewVar("pos_inf", irkind.HandleType)},
	}
	for i, test := range tests {
		if got := arith.IsPosInf(test.e); got != test.pos {
			t.Errorf("test %d: IsPosInf(%s) = %v but want %v", i, test.e, got, test.pos)
		}
		if got := arith.IsNegInf(test.e); got != test.neg {
			t.Errorf("test %d: IsNegInf(%s) = %v but want %v", i, test.e, got, test.neg)
		}
	}
}
