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

// Package interp evaluates expressions to literals.
//
// Variables are bound to literals by an environment. Operators are evaluated
// with the folding rules of the builder, reductions iterate over their domain
// and math intrinsics call the Go math package. Only scalar expressions
// can be evaluated.
package interp

import (
	"github.com/gx-org/primexpr/build/arith"
	"github.com/gx-org/primexpr/build/builder"
	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/pkg/errors"
)

type (
	// Env binds variables to literals.
	Env map[*ir.Var]ir.Expr

	// Interpreter evaluates expressions.
	Interpreter struct {
		bld *builder.Builder
	}
)

// New returns an interpreter using a builder to evaluate operators.
func New(bld *builder.Builder) *Interpreter {
	return &Interpreter{bld: bld}
}

// Eval evaluates an expression given the values of its free variables.
// The result is an integer or a floating point literal.
func (it *Interpreter) Eval(e ir.Expr, env Env) (ir.Expr, error) {
	val, err := fmterr.Try(func() ir.Expr {
		return it.eval(e, env)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot evaluate %s", e)
	}
	return val, nil
}

// EvalInt evaluates an integer or a boolean expression.
func (it *Interpreter) EvalInt(e ir.Expr, env Env) (int64, error) {
	val, err := it.Eval(e, env)
	if err != nil {
		return 0, err
	}
	imm, ok := ir.AsIntImm(val)
	if !ok {
		return 0, errors.Errorf("%s evaluates to %s which is not an integer", e, val)
	}
	return imm.Value, nil
}

// EvalFloat evaluates a floating point expression.
func (it *Interpreter) EvalFloat(e ir.Expr, env Env) (float64, error) {
	val, err := it.Eval(e, env)
	if err != nil {
		return 0, err
	}
	imm, ok := ir.AsFloatImm(val)
	if !ok {
		return 0, errors.Errorf("%s evaluates to %s which is not a float", e, val)
	}
	return imm.Value, nil
}

func literal(e ir.Expr, what string) ir.Expr {
	if !ir.IsConst(e) {
		panic(fmterr.Fatalf("cannot evaluate %s: got %s", what, e))
	}
	return e
}

func (it *Interpreter) eval(e ir.Expr, env Env) ir.Expr {
	switch eT := e.(type) {
	case *ir.IntImm, *ir.FloatImm:
		return eT
	case *ir.Var:
		val, ok := env[eT]
		if !ok {
			panic(fmterr.Fatalf("variable %s is not bound", eT))
		}
		fmterr.Check(val.DType() == eT.Typ, "variable %s of type %s bound to %s of type %s", eT, eT.Typ, val, val.DType())
		return literal(val, eT.Name)
	case *ir.Cast:
		return literal(it.bld.Cast(eT.Typ, it.eval(eT.X, env)), eT.String())
	case *ir.Broadcast:
		panic(fmterr.Fatalf("cannot evaluate vector expression %s", eT))
	case *ir.Not:
		return literal(it.bld.Not(it.eval(eT.X, env)), eT.String())
	case *ir.Binary:
		return it.binary(eT, env)
	case *ir.Select:
		if it.cond(eT.Cond, env) {
			return it.eval(eT.True, env)
		}
		return it.eval(eT.False, env)
	case *ir.Call:
		return it.call(eT, env)
	case *ir.Reduce:
		return it.reduce(eT, env)
	}
	panic(fmterr.Fatalf("cannot evaluate %T", e))
}

func (it *Interpreter) cond(e ir.Expr, env Env) bool {
	imm, ok := it.eval(e, env).(*ir.IntImm)
	fmterr.Check(ok, "condition %s is not an integer", e)
	return imm.Value != 0
}

func (it *Interpreter) binary(e *ir.Binary, env Env) ir.Expr {
	switch e.Op {
	case ir.And:
		if !it.cond(e.X, env) {
			return ir.False()
		}
		return ir.Bool(it.cond(e.Y, env))
	case ir.Or:
		if it.cond(e.X, env) {
			return ir.True()
		}
		return ir.Bool(it.cond(e.Y, env))
	}
	x, y := it.eval(e.X, env), it.eval(e.Y, env)
	if val := arith.TryConstFold(e.Op, x, y); val != nil && ir.IsConst(val) {
		return val
	}
	if val := floatDivMod(e.Op, x, y); val != nil {
		return val
	}
	panic(fmterr.Fatalf("cannot evaluate %s: %s %s %s overflows or is undefined", e, x, e.Op, y))
}
