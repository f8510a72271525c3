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

// Package ir is the expression tree of the primitive expression IR.
//
// Expressions are immutable: a node exclusively owns its children and operators
// always build new nodes. Expressions are built by the builder package
// [github.com/gx-org/primexpr/build/builder] which enforces type promotion
// and folds literals at construction time.
package ir

import (
	"github.com/google/uuid"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

type (
	// Node is a node in the tree.
	Node interface {
		node()
	}

	// Expr is an expression with a data type.
	Expr interface {
		Node
		DType() irkind.DType
		String() string
	}

	// IntImm is an integer literal.
	// Unsigned integers store their bit pattern in Value.
	IntImm struct {
		Typ   irkind.DType
		Value int64
	}

	// FloatImm is a floating point literal.
	FloatImm struct {
		Typ   irkind.DType
		Value float64
	}

	// Var is a variable.
	// Two variables are the same variable if they have the same identifier.
	Var struct {
		Name string
		ID   uuid.UUID
		Typ  irkind.DType
	}

	// Cast converts a value to another data type.
	Cast struct {
		Typ irkind.DType
		X   Expr
	}

	// Broadcast replicates a scalar across all the lanes of a vector.
	Broadcast struct {
		X     Expr
		Lanes int
	}

	// Not is the logical negation of a boolean.
	Not struct {
		X Expr
	}

	// Binary is an operator with two operands of the same data type.
	Binary struct {
		Op   BinaryOp
		X, Y Expr
	}

	// Select evaluates to True if Cond is true, False otherwise.
	Select struct {
		Cond, True, False Expr
	}

	// Call calls a builtin or an intrinsic.
	Call struct {
		Typ  irkind.DType
		Op   *Op
		Args []Expr
	}
)

var (
	_ Expr = (*IntImm)(nil)
	_ Expr = (*FloatImm)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Cast)(nil)
	_ Expr = (*Broadcast)(nil)
	_ Expr = (*Not)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Select)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Reduce)(nil)
)

// NewVar returns a new variable with a unique identifier.
func NewVar(name string, dt irkind.DType) *Var {
	return &Var{Name: name, ID: uuid.New(), Typ: dt}
}

func (*IntImm) node() {}

// DType returns the data type of the literal.
func (e *IntImm) DType() irkind.DType { return e.Typ }

// Uint64 returns the value as an unsigned integer.
func (e *IntImm) Uint64() uint64 { return uint64(e.Value) }

// String representation of the expression.
func (e *IntImm) String() string { return Format(e) }

func (*FloatImm) node() {}

// DType returns the data type of the literal.
func (e *FloatImm) DType() irkind.DType { return e.Typ }

// String representation of the expression.
func (e *FloatImm) String() string { return Format(e) }

func (*Var) node() {}

// DType returns the data type of the variable.
func (e *Var) DType() irkind.DType { return e.Typ }

// String representation of the expression.
func (e *Var) String() string { return Format(e) }

func (*Cast) node() {}

// DType returns the target data type.
func (e *Cast) DType() irkind.DType { return e.Typ }

// String representation of the expression.
func (e *Cast) String() string { return Format(e) }

func (*Broadcast) node() {}

// DType returns the data type of the operand with Lanes lanes.
func (e *Broadcast) DType() irkind.DType { return e.X.DType().WithLanes(e.Lanes) }

// String representation of the expression.
func (e *Broadcast) String() string { return Format(e) }

func (*Not) node() {}

// DType returns the data type of the operand.
func (e *Not) DType() irkind.DType { return e.X.DType() }

// String representation of the expression.
func (e *Not) String() string { return Format(e) }

func (*Binary) node() {}

// DType returns the data type of the result.
// Comparison and logical operators return booleans with the lanes of their operands.
func (e *Binary) DType() irkind.DType {
	dt := e.X.DType()
	if e.Op.IsComparison() || e.Op.IsLogical() {
		return irkind.BoolOf(int(dt.Lanes))
	}
	return dt
}

// String representation of the expression.
func (e *Binary) String() string { return Format(e) }

func (*Select) node() {}

// DType returns the data type of the branches.
func (e *Select) DType() irkind.DType { return e.True.DType() }

// String representation of the expression.
func (e *Select) String() string { return Format(e) }

func (*Call) node() {}

// DType returns the data type of the result of the call.
func (e *Call) DType() irkind.DType { return e.Typ }

// String representation of the expression.
func (e *Call) String() string { return Format(e) }
