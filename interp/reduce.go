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
	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
	"golang.org/x/exp/maps"
)

// scope returns a copy of env to bind iteration variables without modifying env.
func scope(env Env, n int) Env {
	sc := maps.Clone(env)
	if sc == nil {
		sc = make(Env, n)
	}
	return sc
}

func (it *Interpreter) extent(iv *ir.IterVar, env Env) (lo, n int64) {
	minImm, minOk := it.eval(iv.Dom.Min, env).(*ir.IntImm)
	extImm, extOk := it.eval(iv.Dom.Extent, env).(*ir.IntImm)
	fmterr.Check(minOk && extOk, "domain of %s is not an integer range", iv.Var)
	return minImm.Value, extImm.Value
}

// reduce combines the source values of all the points of the domain
// for which the condition is true. An empty domain evaluates to the
// initial values, or to the identity of the combiner without initial values.
func (it *Interpreter) reduce(e *ir.Reduce, env Env) ir.Expr {
	acc := e.Init
	if len(acc) == 0 {
		acc = e.Combiner.Identity
	}
	acc = it.evalAll(acc, env)
	sc := scope(env, len(e.Axis))
	var walk func(axis int)
	walk = func(axis int) {
		if axis == len(e.Axis) {
			if !it.cond(e.Condition, sc) {
				return
			}
			acc = it.combine(e.Combiner, acc, it.evalAll(e.Source, sc))
			return
		}
		iv := e.Axis[axis]
		lo, n := it.extent(iv, sc)
		for i := range n {
			sc[iv.Var] = ir.Const(iv.Var.Typ, lo+i)
			walk(axis + 1)
		}
		delete(sc, iv.Var)
	}
	walk(0)
	return acc[e.ValueIndex]
}

func (it *Interpreter) evalAll(xs []ir.Expr, env Env) []ir.Expr {
	vals := make([]ir.Expr, len(xs))
	for i, x := range xs {
		vals[i] = it.eval(x, env)
	}
	return vals
}

func (it *Interpreter) combine(c *ir.CommReducer, acc, vals []ir.Expr) []ir.Expr {
	env := make(Env, 2*c.Len())
	for i := range c.LHS {
		env[c.LHS[i]] = acc[i]
		env[c.RHS[i]] = vals[i]
	}
	return it.evalAll(c.Result, env)
}
