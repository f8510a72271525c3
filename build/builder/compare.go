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
)

// EQ returns x == y.
func (b *Builder) EQ(x, y ir.Expr) ir.Expr {
	return b.binary(ir.EQ, x, y)
}

// NE returns x != y.
func (b *Builder) NE(x, y ir.Expr) ir.Expr {
	return b.binary(ir.NE, x, y)
}

// LT returns x < y.
func (b *Builder) LT(x, y ir.Expr) ir.Expr {
	return b.binary(ir.LT, x, y)
}

// LE returns x <= y.
func (b *Builder) LE(x, y ir.Expr) ir.Expr {
	return b.binary(ir.LE, x, y)
}

// GT returns x > y.
func (b *Builder) GT(x, y ir.Expr) ir.Expr {
	return b.binary(ir.GT, x, y)
}

// GE returns x >= y.
func (b *Builder) GE(x, y ir.Expr) ir.Expr {
	return b.binary(ir.GE, x, y)
}

// And returns x && y. Both operands must be booleans.
func (b *Builder) And(x, y ir.Expr) ir.Expr {
	b.checkBool("&&", x, y)
	return b.binary(ir.And, x, y)
}

// Or returns x || y. Both operands must be booleans.
func (b *Builder) Or(x, y ir.Expr) ir.Expr {
	b.checkBool("||", x, y)
	return b.binary(ir.Or, x, y)
}

// Not returns !x. The operand must be a boolean.
func (b *Builder) Not(x ir.Expr) ir.Expr {
	b.checkBool("!", x)
	if folded := b.folder.FoldNot(x); folded != nil {
		return folded
	}
	return &ir.Not{X: x}
}
