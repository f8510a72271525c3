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

// Package builder builds typed primitive expressions.
//
// Every operator promotes the types of its operands to a common type,
// folds operators applied to literals and builds a new expression node
// otherwise. Operands are never modified.
//
// Preconditions (operand kinds, lanes, shift amounts, bit widths) are
// checked when an expression is built. A violation is a bug in the code
// building the expression: the builder panics with a *fmterr.Fatal.
// Use fmterr.Catch to convert such a panic into an error.
//
// A Builder does not hold any mutable state and can be used concurrently
// once all custom data types have been registered.
package builder

import (
	"github.com/gx-org/primexpr/build/arith"
	"github.com/gx-org/primexpr/build/builtins"
	"github.com/gx-org/primexpr/build/datatype"
	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

type (
	// Option configures a builder.
	Option func(*Builder)

	// Builder builds expressions.
	Builder struct {
		types  *datatype.Registry
		folder arith.Folder
		ops    *builtins.Registry
	}
)

// WithRegistry sets the registry of custom data types.
// Without a registry, no custom data type is registered.
func WithRegistry(reg *datatype.Registry) Option {
	return func(b *Builder) {
		b.types = reg
	}
}

// WithFolder replaces the constant folder.
func WithFolder(f arith.Folder) Option {
	return func(b *Builder) {
		b.folder = f
	}
}

// WithBuiltins replaces the registry of operators called by Call expressions.
func WithBuiltins(ops *builtins.Registry) Option {
	return func(b *Builder) {
		b.ops = ops
	}
}

// New returns a new expression builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		folder: arith.Std,
		ops:    builtins.Std(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) typeName(dt irkind.DType) string {
	return b.types.Format(dt)
}

// isFloatFamily returns true for floats and registered custom data types.
func (b *Builder) isFloatFamily(dt irkind.DType) bool {
	return dt.IsFloat() || b.types.IsRegistered(dt.Code)
}

func (b *Builder) checkIntOrUInt(op string, xs ...ir.Expr) {
	for _, x := range xs {
		dt := x.DType()
		fmterr.Check(dt.IsIntOrUInt(), "%s only applies to integers but got %s of type %s", op, x, b.typeName(dt))
	}
}

func (b *Builder) checkFloat(op string, xs ...ir.Expr) {
	for _, x := range xs {
		dt := x.DType()
		fmterr.Check(dt.IsFloat(), "%s only applies to floats but got %s of type %s", op, x, b.typeName(dt))
	}
}

func (b *Builder) checkBool(op string, xs ...ir.Expr) {
	for _, x := range xs {
		dt := x.DType()
		fmterr.Check(dt.IsBool(), "%s only applies to booleans but got %s of type %s", op, x, b.typeName(dt))
	}
}

// binary promotes the operands to a common type, then folds the operator or builds a new node.
func (b *Builder) binary(op ir.BinaryOp, x, y ir.Expr) ir.Expr {
	b.MatchTypes(&x, &y)
	if folded := b.folder.Fold(op, x, y); folded != nil {
		return folded
	}
	return &ir.Binary{Op: op, X: x, Y: y}
}

func (b *Builder) call(dt irkind.DType, name string, args ...ir.Expr) *ir.Call {
	return &ir.Call{Typ: dt, Op: b.ops.Get(name), Args: args}
}
