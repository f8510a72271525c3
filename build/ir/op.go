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

// BinaryOp is the operator of a binary expression.
type BinaryOp int

// Binary operators.
// Div and Mod round toward zero on integers.
// FloorDiv and FloorMod round toward negative infinity.
const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	FloorDiv
	FloorMod
	Min
	Max
	EQ
	NE
	LT
	LE
	GT
	GE
	And
	Or
)

var binaryOpNames = [...]string{
	Add:      "+",
	Sub:      "-",
	Mul:      "*",
	Div:      "/",
	Mod:      "%",
	FloorDiv: "floordiv",
	FloorMod: "floormod",
	Min:      "min",
	Max:      "max",
	EQ:       "==",
	NE:       "!=",
	LT:       "<",
	LE:       "<=",
	GT:       ">",
	GE:       ">=",
	And:      "&&",
	Or:       "||",
}

// String returns the symbol or the name of the operator.
func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOpNames) {
		return "invalid"
	}
	return binaryOpNames[op]
}

// IsComparison returns true if the operator compares its operands.
func (op BinaryOp) IsComparison() bool {
	return op >= EQ && op <= GE
}

// IsLogical returns true if the operator is a logical and or a logical or.
func (op BinaryOp) IsLogical() bool {
	return op == And || op == Or
}

// IsInfix returns true if the operator is written between its operands.
func (op BinaryOp) IsInfix() bool {
	switch op {
	case FloorDiv, FloorMod, Min, Max:
		return false
	}
	return true
}

// CallEffect is the side effect of calling an operator.
type CallEffect int

// Side effects, from the weakest to the strongest.
const (
	// EffectPure has no side effect: calls can be reordered or eliminated.
	EffectPure CallEffect = iota
	// EffectReadState reads, but does not modify, a state.
	EffectReadState
	// EffectOpaque may have any side effect.
	EffectOpaque
)

var effectNames = map[CallEffect]string{
	EffectPure:      "pure",
	EffectReadState: "read_state",
	EffectOpaque:    "opaque",
}

// String returns the name of the effect.
func (e CallEffect) String() string {
	if s, ok := effectNames[e]; ok {
		return s
	}
	return "invalid"
}

// EffectFromString returns an effect given its name.
func EffectFromString(s string) (CallEffect, bool) {
	for effect, name := range effectNames {
		if name == s {
			return effect, true
		}
	}
	return EffectOpaque, false
}

// Op is an operator called by a Call expression.
// Op values are registered once and compared by pointer.
type Op struct {
	// Name of the operator.
	Name string
	// NumInputs is the number of arguments, -1 if the operator is variadic.
	NumInputs int
	// Effect of calling the operator.
	Effect CallEffect
	// Vectorizable is true if the operator applies lane by lane.
	Vectorizable bool
	// Intrinsic is true for math functions operating on floats.
	Intrinsic bool
}

// String returns the name of the operator.
func (op *Op) String() string {
	return op.Name
}
