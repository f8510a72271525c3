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
	"fmt"
	"strconv"

	"github.com/gx-org/primexpr/base/stringseq"
	"github.com/gx-org/primexpr/base/uname"
)

// printer builds string representations of expressions.
// Distinct variables sharing the same name are printed with a unique suffix.
type printer struct {
	vars *uname.Unique[*Var]
}

func newPrinter() *printer {
	return &printer{vars: uname.New[*Var]()}
}

// Format returns a string representation of an expression.
func Format(e Expr) string {
	return newPrinter().expr(e)
}

func (p *printer) varName(v *Var) string {
	return p.vars.Name(v, v.Name)
}

func (p *printer) list(xs []Expr) string {
	return stringseq.Join(stringseq.Map(xs, p.expr), ", ")
}

func (p *printer) expr(e Expr) string {
	switch eT := e.(type) {
	case *IntImm:
		return intString(eT)
	case *FloatImm:
		return floatString(eT)
	case *Var:
		return p.varName(eT)
	case *Cast:
		return fmt.Sprintf("%s(%s)", eT.Typ, p.expr(eT.X))
	case *Broadcast:
		return fmt.Sprintf("broadcast(%s, %d)", p.expr(eT.X), eT.Lanes)
	case *Not:
		return "!" + p.expr(eT.X)
	case *Binary:
		if eT.Op.IsInfix() {
			return fmt.Sprintf("(%s %s %s)", p.expr(eT.X), eT.Op, p.expr(eT.Y))
		}
		return fmt.Sprintf("%s(%s, %s)", eT.Op, p.expr(eT.X), p.expr(eT.Y))
	case *Select:
		return fmt.Sprintf("select(%s, %s, %s)", p.expr(eT.Cond), p.expr(eT.True), p.expr(eT.False))
	case *Call:
		return fmt.Sprintf("%s(%s)", eT.Op.Name, p.list(eT.Args))
	case *Reduce:
		return p.reduce(eT)
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%T", e)
}

func (p *printer) commReducer(c *CommReducer) string {
	lhs := stringseq.Join(stringseq.Map(c.LHS, p.varName), ", ")
	rhs := stringseq.Join(stringseq.Map(c.RHS, p.varName), ", ")
	return fmt.Sprintf("comm_reducer(result=[%s], lhs=[%s], rhs=[%s], identity=[%s])",
		p.list(c.Result), lhs, rhs, p.list(c.Identity))
}

func (p *printer) iterVar(iv *IterVar) string {
	return fmt.Sprintf("%s in range(min=%s, ext=%s)", p.varName(iv.Var), p.expr(iv.Dom.Min), p.expr(iv.Dom.Extent))
}

func (p *printer) reduce(e *Reduce) string {
	s := fmt.Sprintf("reduce(%s, source=[%s], axis=[%s], where=%s, value_index=%d",
		p.commReducer(e.Combiner),
		p.list(e.Source),
		stringseq.Join(stringseq.Map(e.Axis, p.iterVar), ", "),
		p.expr(e.Condition),
		e.ValueIndex)
	if len(e.Init) > 0 {
		s += fmt.Sprintf(", init=[%s]", p.list(e.Init))
	}
	return s + ")"
}

func intString(e *IntImm) string {
	dt := e.Typ
	switch {
	case dt.IsBool():
		return strconv.FormatBool(e.Value != 0)
	case dt.IsInt() && dt.Bits == 32:
		return strconv.FormatInt(e.Value, 10)
	case dt.IsInt():
		return fmt.Sprintf("%di%d", e.Value, dt.Bits)
	case dt.IsUInt():
		return fmt.Sprintf("%du%d", e.Uint64(), dt.Bits)
	}
	return fmt.Sprintf("%s(%d)", dt, e.Value)
}

func floatString(e *FloatImm) string {
	dt := e.Typ
	switch {
	case dt.IsFloat() && dt.Bits == 64:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case dt.IsFloat() && dt.Bits == 32:
		return strconv.FormatFloat(e.Value, 'g', -1, 32) + "f"
	case dt.IsFloat():
		return fmt.Sprintf("%sf%d", strconv.FormatFloat(e.Value, 'g', -1, 64), dt.Bits)
	}
	return fmt.Sprintf("%s(%s)", dt, strconv.FormatFloat(e.Value, 'g', -1, 64))
}
