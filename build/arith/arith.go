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

// Package arith folds operators applied to literals.
//
// TryConstFold returns the literal result of an operator applied to literals,
// or nil if the operator cannot be folded. Folding never changes the data type
// of an expression: operands are expected to have the same data type.
package arith

import (
	"math"

	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

// Folder folds operators applied to literals.
type Folder interface {
	// Fold returns the folded result of a binary operator or nil.
	Fold(op ir.BinaryOp, a, b ir.Expr) ir.Expr
	// FoldNot returns the folded logical negation of a or nil.
	FoldNot(a ir.Expr) ir.Expr
}

type folder struct{}

// Std is the standard constant folder.
var Std Folder = folder{}

func (folder) Fold(op ir.BinaryOp, a, b ir.Expr) ir.Expr {
	return TryConstFold(op, a, b)
}

func (folder) FoldNot(a ir.Expr) ir.Expr {
	return TryConstFoldNot(a)
}

var (
	posInf = ir.NewVar("pos_inf", irkind.HandleType)
	negInf = ir.NewVar("neg_inf", irkind.HandleType)
)

// PosInf returns the symbolic positive infinity.
func PosInf() ir.Expr { return posInf }

// NegInf returns the symbolic negative infinity.
func NegInf() ir.Expr { return negInf }

// IsPosInf returns true if e is the symbolic positive infinity or a +Inf float literal.
func IsPosInf(e ir.Expr) bool {
	if v, ok := e.(*ir.Var); ok {
		return v == posInf
	}
	f, ok := e.(*ir.FloatImm)
	return ok && math.IsInf(f.Value, 1)
}

// IsNegInf returns true if e is the symbolic negative infinity or a -Inf float literal.
func IsNegInf(e ir.Expr) bool {
	if v, ok := e.(*ir.Var); ok {
		return v == negInf
	}
	f, ok := e.(*ir.FloatImm)
	return ok && math.IsInf(f.Value, -1)
}

// TryConstFold returns a literal equal to the binary operator op applied to a and b,
// an operand if an identity or an absorption rule applies, nil otherwise.
// Dividing an integer by a literal zero is a fatal error.
func TryConstFold(op ir.BinaryOp, a, b ir.Expr) ir.Expr {
	if a.DType() != b.DType() {
		return nil
	}
	checkDivisor(op, b)
	ia, aInt := a.(*ir.IntImm)
	ib, bInt := b.(*ir.IntImm)
	if aInt && bInt {
		return foldInt(op, ia, ib)
	}
	fa, aFloat := a.(*ir.FloatImm)
	fb, bFloat := b.(*ir.FloatImm)
	if aFloat && bFloat {
		return foldFloat(op, fa, fb)
	}
	return foldIdentity(op, a, b)
}

// TryConstFoldNot returns the negation of a boolean literal or nil.
func TryConstFoldNot(a ir.Expr) ir.Expr {
	imm, ok := a.(*ir.IntImm)
	if !ok || !imm.Typ.IsBool() {
		return nil
	}
	return ir.Bool(imm.Value == 0)
}

func isZero(e ir.Expr) bool {
	switch eT := e.(type) {
	case *ir.IntImm:
		return eT.Value == 0
	case *ir.FloatImm:
		return eT.Value == 0
	}
	return false
}

func boolValue(e ir.Expr) (val, ok bool) {
	imm, ok := e.(*ir.IntImm)
	if !ok || !imm.Typ.IsBool() {
		return false, false
	}
	return imm.Value != 0, true
}

func foldIdentity(op ir.BinaryOp, a, b ir.Expr) ir.Expr {
	switch op {
	case ir.Add:
		if isZero(a) {
			return b
		}
		if isZero(b) {
			return a
		}
	case ir.Sub:
		if isZero(b) {
			return a
		}
	case ir.Mul:
		if ir.IsConstIntValue(a, 0) {
			return a
		}
		if ir.IsConstIntValue(b, 0) {
			return b
		}
	case ir.And:
		if v, ok := boolValue(a); ok {
			if v {
				return b
			}
			return a
		}
		if v, ok := boolValue(b); ok {
			if v {
				return a
			}
			return b
		}
	case ir.Or:
		if v, ok := boolValue(a); ok {
			if v {
				return a
			}
			return b
		}
		if v, ok := boolValue(b); ok {
			if v {
				return b
			}
			return a
		}
	}
	return nil
}
