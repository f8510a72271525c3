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
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type verifier struct {
	errs error
}

// Verify checks the invariants of an expression tree and returns all the violations found.
// Expressions built by the builder always verify.
func Verify(e Expr) error {
	v := &verifier{}
	v.expr(e)
	return v.errs
}

func (v *verifier) errorf(e Expr, format string, a ...any) {
	err := errors.Errorf(format, a...)
	v.errs = multierr.Append(v.errs, errors.Wrapf(err, "in %s", Format(e)))
}

func (v *verifier) expr(e Expr) {
	switch eT := e.(type) {
	case nil:
		v.errs = multierr.Append(v.errs, errors.New("nil expression"))
	case *IntImm:
		if !eT.Typ.IsIntOrUInt() && !eT.Typ.IsBool() {
			v.errorf(e, "integer literal of type %s", eT.Typ)
		} else if WrapInt(eT.Typ, eT.Value) != eT.Value {
			v.errorf(e, "value %d out of range for %s", eT.Value, eT.Typ)
		}
		v.scalar(e)
	case *FloatImm:
		if !eT.Typ.IsFloat() && !eT.Typ.IsCustom() {
			v.errorf(e, "floating point literal of type %s", eT.Typ)
		}
		v.scalar(e)
	case *Var:
	case *Cast:
		v.expr(eT.X)
		if eT.X != nil && eT.X.DType().Lanes != eT.Typ.Lanes {
			v.errorf(e, "cannot cast %s to %s: lanes mismatch", eT.X.DType(), eT.Typ)
		}
	case *Broadcast:
		v.expr(eT.X)
		if eT.X != nil && !eT.X.DType().IsScalar() {
			v.errorf(e, "cannot broadcast a vector of type %s", eT.X.DType())
		}
		if eT.Lanes < 2 {
			v.errorf(e, "broadcast to %d lanes", eT.Lanes)
		}
	case *Not:
		v.expr(eT.X)
		v.boolean(e, eT.X)
	case *Binary:
		v.expr(eT.X)
		v.expr(eT.Y)
		v.sameType(e, eT.X, eT.Y)
		if eT.Op.IsLogical() {
			v.boolean(e, eT.X)
			v.boolean(e, eT.Y)
		}
	case *Select:
		v.expr(eT.Cond)
		v.expr(eT.True)
		v.expr(eT.False)
		v.boolean(e, eT.Cond)
		v.sameType(e, eT.True, eT.False)
	case *Call:
		for _, arg := range eT.Args {
			v.expr(arg)
		}
		if eT.Op == nil {
			v.errorf(e, "call without operator")
		} else if eT.Op.NumInputs >= 0 && eT.Op.NumInputs != len(eT.Args) {
			v.errorf(e, "%s expects %d arguments but got %d", eT.Op.Name, eT.Op.NumInputs, len(eT.Args))
		}
	case *Reduce:
		v.reduce(eT)
	}
}

func (v *verifier) reduce(e *Reduce) {
	c := e.Combiner
	if c == nil {
		v.errorf(e, "reduction without combiner")
		return
	}
	if len(c.LHS) != c.Len() || len(c.RHS) != c.Len() || len(c.Identity) != c.Len() {
		v.errorf(e, "mismatched commutative reducer lengths")
	}
	for _, x := range c.Result {
		v.expr(x)
	}
	for _, x := range c.Identity {
		v.expr(x)
	}
	if len(e.Source) != c.Len() {
		v.errorf(e, "%d sources for a combiner of %d values", len(e.Source), c.Len())
	}
	if e.ValueIndex < 0 || e.ValueIndex >= len(e.Source) {
		v.errorf(e, "value index %d out of range", e.ValueIndex)
	}
	if len(e.Init) > 0 && len(e.Init) != len(e.Source) {
		v.errorf(e, "%d initial values for %d sources", len(e.Init), len(e.Source))
	}
	for _, x := range e.Source {
		v.expr(x)
	}
	for _, x := range e.Init {
		v.expr(x)
	}
	v.expr(e.Condition)
	v.boolean(e, e.Condition)
}

func (v *verifier) scalar(e Expr) {
	if !e.DType().IsScalar() {
		v.errorf(e, "literal of vector type %s", e.DType())
	}
}

func (v *verifier) boolean(parent, x Expr) {
	if x == nil {
		return
	}
	if !x.DType().IsBool() {
		v.errorf(parent, "%s has type %s but a boolean is required", Format(x), x.DType())
	}
}

func (v *verifier) sameType(parent, x, y Expr) {
	if x == nil || y == nil {
		return
	}
	if x.DType() != y.DType() {
		v.errorf(parent, "mismatched types %s and %s", x.DType(), y.DType())
	}
}
