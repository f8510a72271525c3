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

package builder

import (
	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

// reduce returns a reduction of source over axis combining two values with op.
// identity is the identity element of op for the data type of source.
func (b *Builder) reduce(op ir.BinaryOp, identity func(irkind.DType) ir.Expr, source ir.Expr, axis []*ir.IterVar, init []ir.Expr) *ir.Reduce {
	dt := source.DType()
	x, y := ir.NewVar("x", dt), ir.NewVar("y", dt)
	combiner := ir.NewCommReducer(
		[]*ir.Var{x},
		[]*ir.Var{y},
		[]ir.Expr{&ir.Binary{Op: op, X: x, Y: y}},
		[]ir.Expr{identity(dt)},
	)
	return &ir.Reduce{
		Combiner:   combiner,
		Source:     []ir.Expr{source},
		Axis:       axis,
		Condition:  ir.True(),
		ValueIndex: 0,
		Init:       init,
	}
}

// Sum returns the sum of source over the reduction domain axis.
func (b *Builder) Sum(source ir.Expr, axis []*ir.IterVar, init []ir.Expr) *ir.Reduce {
	return b.reduce(ir.Add, ir.Zero, source, axis, init)
}

// All returns true if source is true over the entire reduction domain axis.
func (b *Builder) All(source ir.Expr, axis []*ir.IterVar, init []ir.Expr) *ir.Reduce {
	b.checkBool("all", source)
	return b.reduce(ir.And, func(dt irkind.DType) ir.Expr {
		return ir.Const(dt, 1)
	}, source, axis, init)
}

// Any returns true if source is true somewhere in the reduction domain axis.
func (b *Builder) Any(source ir.Expr, axis []*ir.IterVar, init []ir.Expr) *ir.Reduce {
	b.checkBool("any", source)
	return b.reduce(ir.Or, func(dt irkind.DType) ir.Expr {
		return ir.Const(dt, 0)
	}, source, axis, init)
}

// ReduceMax returns the maximum of source over the reduction domain axis.
// The identity is the minimum value of the data type of source.
func (b *Builder) ReduceMax(source ir.Expr, axis []*ir.IterVar, init []ir.Expr) *ir.Reduce {
	return b.reduce(ir.Max, b.MinValue, source, axis, init)
}

// ReduceMin returns the minimum of source over the reduction domain axis.
// The identity is the maximum value of the data type of source.
func (b *Builder) ReduceMin(source ir.Expr, axis []*ir.IterVar, init []ir.Expr) *ir.Reduce {
	return b.reduce(ir.Min, b.MaxValue, source, axis, init)
}

// Prod returns the product of source over the reduction domain axis.
func (b *Builder) Prod(source ir.Expr, axis []*ir.IterVar, init []ir.Expr) *ir.Reduce {
	return b.reduce(ir.Mul, ir.One, source, axis, init)
}
