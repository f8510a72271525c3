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

package interp

import (
	"math"

	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
	"github.com/x448/float16"
)

var (
	unaryMath = map[string]func(float64) float64{
		"fabs":      math.Abs,
		"floor":     math.Floor,
		"ceil":      math.Ceil,
		"round":     math.RoundToEven,
		"nearbyint": math.RoundToEven,
		"trunc":     math.Trunc,
		"exp":       math.Exp,
		"exp2":      math.Exp2,
		"exp10":     func(x float64) float64 { return math.Pow(10, x) },
		"erf":       math.Erf,
		"tanh":      math.Tanh,
		"sigmoid":   func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
		"sqrt":      math.Sqrt,
		"rsqrt":     func(x float64) float64 { return 1 / math.Sqrt(x) },
		"log":       math.Log,
		"log2":      math.Log2,
		"log1p":     math.Log1p,
		"log10":     math.Log10,
		"tan":       math.Tan,
		"cos":       math.Cos,
		"cosh":      math.Cosh,
		"sin":       math.Sin,
		"sinh":      math.Sinh,
		"asin":      math.Asin,
		"acos":      math.Acos,
		"atan":      math.Atan,
		"acosh":     math.Acosh,
		"asinh":     math.Asinh,
		"atanh":     math.Atanh,
	}

	binaryMath = map[string]func(float64, float64) float64{
		"pow":       math.Pow,
		"fmod":      math.Mod,
		"atan2":     math.Atan2,
		"nextafter": math.Nextafter,
		"hypot":     math.Hypot,
		"copysign":  math.Copysign,
		"ldexp":     func(x, y float64) float64 { return math.Ldexp(x, int(y)) },
	}
)

// floatDivMod evaluates IEEE divisions and remainders that are not folded.
func floatDivMod(op ir.BinaryOp, x, y ir.Expr) ir.Expr {
	fx, xOk := x.(*ir.FloatImm)
	fy, yOk := y.(*ir.FloatImm)
	if !xOk || !yOk {
		return nil
	}
	switch op {
	case ir.Div:
		return ir.ConstFloat(fx.Typ, fx.Value/fy.Value)
	case ir.Mod:
		return ir.ConstFloat(fx.Typ, math.Mod(fx.Value, fy.Value))
	}
	return nil
}

func (it *Interpreter) args(e *ir.Call, env Env) []ir.Expr {
	args := make([]ir.Expr, len(e.Args))
	for i, arg := range e.Args {
		args[i] = it.eval(arg, env)
	}
	return args
}

func floatArg(e *ir.Call, x ir.Expr) float64 {
	imm, ok := x.(*ir.FloatImm)
	fmterr.Check(ok, "%s: argument %s is not a float", e.Op, x)
	return imm.Value
}

func intArg(e *ir.Call, x ir.Expr) *ir.IntImm {
	imm, ok := x.(*ir.IntImm)
	fmterr.Check(ok, "%s: argument %s is not an integer", e.Op, x)
	return imm
}

func (it *Interpreter) call(e *ir.Call, env Env) ir.Expr {
	name := e.Op.Name
	switch name {
	case "if_then_else":
		if it.cond(e.Args[0], env) {
			return it.eval(e.Args[1], env)
		}
		return it.eval(e.Args[2], env)
	case "likely":
		return it.eval(e.Args[0], env)
	}
	args := it.args(e, env)
	if fn, ok := unaryMath[name]; ok {
		return ir.ConstFloat(e.Typ, fn(floatArg(e, args[0])))
	}
	if fn, ok := binaryMath[name]; ok {
		x, y := floatArg(e, args[0]), floatArg(e, args[1])
		if name == "nextafter" && e.Typ.Bits == 32 {
			return ir.ConstFloat(e.Typ, float64(math.Nextafter32(float32(x), float32(y))))
		}
		return ir.ConstFloat(e.Typ, fn(x, y))
	}
	switch name {
	case "isnan":
		return ir.Bool(math.IsNaN(floatArg(e, args[0])))
	case "bitwise_and":
		return literal(it.bld.BitAnd(args[0], args[1]), name)
	case "bitwise_or":
		return literal(it.bld.BitOr(args[0], args[1]), name)
	case "bitwise_xor":
		return literal(it.bld.BitXor(args[0], args[1]), name)
	case "bitwise_not":
		return ir.Const(e.Typ, ^intArg(e, args[0]).Value)
	case "shift_left":
		return literal(it.bld.ShiftLeft(args[0], args[1]), name)
	case "shift_right":
		return literal(it.bld.ShiftRight(args[0], args[1]), name)
	case "reinterpret":
		return reinterpret(e.Typ, args[0])
	case "large_uint_imm":
		low, high := intArg(e, args[0]).Uint64(), intArg(e, args[1]).Uint64()
		return &ir.IntImm{Typ: e.Typ, Value: ir.WrapInt(e.Typ, int64(high<<32|low))}
	case "q_multiply_shift":
		return qMultiplyShift(e, args)
	}
	panic(fmterr.Fatalf("cannot evaluate a call to %s", name))
}

// bitsOf returns the bit pattern of a scalar literal.
func bitsOf(x ir.Expr) uint64 {
	switch xT := x.(type) {
	case *ir.IntImm:
		if xT.Typ.Bits >= 64 {
			return xT.Uint64()
		}
		return xT.Uint64() & (uint64(1)<<xT.Typ.Bits - 1)
	case *ir.FloatImm:
		switch xT.Typ.Bits {
		case 16:
			return uint64(float16.Fromfloat32(float32(xT.Value)).Bits())
		case 32:
			return uint64(math.Float32bits(float32(xT.Value)))
		case 64:
			return math.Float64bits(xT.Value)
		}
	}
	panic(fmterr.Fatalf("cannot reinterpret %s of type %s", x, x.DType()))
}

func reinterpret(dt irkind.DType, x ir.Expr) ir.Expr {
	bits := bitsOf(x)
	switch {
	case dt.IsIntOrUInt():
		return &ir.IntImm{Typ: dt, Value: ir.WrapInt(dt, int64(bits))}
	case dt.IsFloat() && dt.Bits == 16:
		return ir.ConstFloat(dt, float64(float16.Frombits(uint16(bits)).Float32()))
	case dt.IsFloat() && dt.Bits == 32:
		return ir.ConstFloat(dt, float64(math.Float32frombits(uint32(bits))))
	case dt.IsFloat() && dt.Bits == 64:
		return ir.ConstFloat(dt, math.Float64frombits(bits))
	}
	panic(fmterr.Fatalf("cannot reinterpret %s as %s", x, dt))
}

// qMultiplyShift computes round(x * y * 2^(s-q)) with 64-bit intermediate precision.
func qMultiplyShift(e *ir.Call, args []ir.Expr) ir.Expr {
	x, y := intArg(e, args[0]).Value, intArg(e, args[1]).Value
	q, s := intArg(e, args[2]).Value, intArg(e, args[3]).Value
	leftShift, rightShift := max(s, 0), max(-s, 0)
	total := rightShift + q
	fmterr.Check(total > 0 && total < 64, "q_multiply_shift: invalid total right shift %d", total)
	v := (x << leftShift) * y
	v += int64(1) << (total - 1)
	return ir.Const(e.Typ, v>>total)
}
