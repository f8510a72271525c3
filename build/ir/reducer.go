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
	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

type (
	// Range is the half-open interval [Min, Min+Extent).
	Range struct {
		Min, Extent Expr
	}

	// IterVar is a variable iterating over a range.
	IterVar struct {
		Var *Var
		Dom Range
	}

	// CommReducer is a commutative reducer.
	// Result[i] combines LHS[i] and RHS[i]; Identity[i] is the identity element of that combination.
	// All the slices have the same length: one element per value reduced simultaneously.
	CommReducer struct {
		LHS, RHS []*Var
		Result   []Expr
		Identity []Expr
	}

	// Reduce reduces Source over the iteration domain Axis.
	// Only the elements for which Condition is true are reduced.
	// The expression evaluates to the ValueIndex-th value of the combiner.
	Reduce struct {
		Combiner   *CommReducer
		Source     []Expr
		Axis       []*IterVar
		Condition  Expr
		ValueIndex int
		Init       []Expr
	}
)

// NewIterVar returns a new iteration variable over [0, extent).
func NewIterVar(name string, extent Expr) *IterVar {
	dt := extent.DType()
	return &IterVar{
		Var: NewVar(name, dt),
		Dom: Range{Min: Zero(dt), Extent: extent},
	}
}

// NewCommReducer returns a new commutative reducer.
func NewCommReducer(lhs, rhs []*Var, result, identity []Expr) *CommReducer {
	fmterr.Check(len(lhs) == len(rhs) && len(lhs) == len(result) && len(lhs) == len(identity),
		"mismatched commutative reducer lengths: %d lhs, %d rhs, %d results, %d identities",
		len(lhs), len(rhs), len(result), len(identity))
	return &CommReducer{LHS: lhs, RHS: rhs, Result: result, Identity: identity}
}

// Len returns the number of values reduced simultaneously.
func (c *CommReducer) Len() int {
	return len(c.Result)
}

// Combine returns the result of the reducer given the values of its left and right operands.
func (c *CommReducer) Combine(a, b []Expr) []Expr {
	fmterr.Check(len(a) == c.Len() && len(b) == c.Len(), "reducer combines %d values but got %d and %d", c.Len(), len(a), len(b))
	vals := make(map[*Var]Expr, 2*c.Len())
	for i := range c.LHS {
		vals[c.LHS[i]] = a[i]
		vals[c.RHS[i]] = b[i]
	}
	res := make([]Expr, len(c.Result))
	for i, r := range c.Result {
		res[i] = Substitute(r, vals)
	}
	return res
}

// String representation of the reducer.
func (c *CommReducer) String() string {
	return newPrinter().commReducer(c)
}

func (*Reduce) node() {}

// DType returns the data type of the reduced value.
func (e *Reduce) DType() irkind.DType {
	return e.Source[e.ValueIndex].DType()
}

// String representation of the expression.
func (e *Reduce) String() string { return Format(e) }

// Substitute returns a copy of an expression where variables have been replaced.
// Nodes without substituted variables are shared with the input.
func Substitute(e Expr, vals map[*Var]Expr) Expr {
	switch eT := e.(type) {
	case *Var:
		if v, ok := vals[eT]; ok {
			return v
		}
		return eT
	case *Cast:
		x := Substitute(eT.X, vals)
		if x == eT.X {
			return eT
		}
		return &Cast{Typ: eT.Typ, X: x}
	case *Broadcast:
		x := Substitute(eT.X, vals)
		if x == eT.X {
			return eT
		}
		return &Broadcast{X: x, Lanes: eT.Lanes}
	case *Not:
		x := Substitute(eT.X, vals)
		if x == eT.X {
			return eT
		}
		return &Not{X: x}
	case *Binary:
		x, y := Substitute(eT.X, vals), Substitute(eT.Y, vals)
		if x == eT.X && y == eT.Y {
			return eT
		}
		return &Binary{Op: eT.Op, X: x, Y: y}
	case *Select:
		cond := Substitute(eT.Cond, vals)
		t, f := Substitute(eT.True, vals), Substitute(eT.False, vals)
		if cond == eT.Cond && t == eT.True && f == eT.False {
			return eT
		}
		return &Select{Cond: cond, True: t, False: f}
	case *Call:
		args, changed := substituteAll(eT.Args, vals)
		if !changed {
			return eT
		}
		return &Call{Typ: eT.Typ, Op: eT.Op, Args: args}
	case *Reduce:
		src, srcChanged := substituteAll(eT.Source, vals)
		init, initChanged := substituteAll(eT.Init, vals)
		cond := Substitute(eT.Condition, vals)
		if !srcChanged && !initChanged && cond == eT.Condition {
			return eT
		}
		return &Reduce{
			Combiner:   eT.Combiner,
			Source:     src,
			Axis:       eT.Axis,
			Condition:  cond,
			ValueIndex: eT.ValueIndex,
			Init:       init,
		}
	}
	return e
}

func substituteAll(xs []Expr, vals map[*Var]Expr) ([]Expr, bool) {
	changed := false
	res := make([]Expr, len(xs))
	for i, x := range xs {
		res[i] = Substitute(x, vals)
		changed = changed || res[i] != x
	}
	return res, changed
}
