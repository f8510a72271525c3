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
	"encoding/binary"
	"math"

	"github.com/dchest/siphash"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

const (
	hashK0 = 0x736f6d6570736575
	hashK1 = 0x646f72616e646f6d
)

// Node tags in the hash encoding.
const (
	tagNil byte = iota
	tagIntImm
	tagFloatImm
	tagVar
	tagCast
	tagBroadcast
	tagNot
	tagBinary
	tagSelect
	tagCall
	tagReduce
)

// Hash returns a structural hash of an expression.
// Structurally equal expressions have the same hash. Variables are hashed by identifier,
// so two distinct variables with the same name have different hashes.
func Hash(e Expr) uint64 {
	var enc hashEncoder
	enc.expr(e)
	return siphash.Hash(hashK0, hashK1, enc.buf)
}

// StructEqual returns true if two expressions are structurally equal.
func StructEqual(a, b Expr) bool {
	var encA, encB hashEncoder
	encA.expr(a)
	encB.expr(b)
	return string(encA.buf) == string(encB.buf)
}

type hashEncoder struct {
	buf []byte
}

func (h *hashEncoder) dtype(dt irkind.DType) {
	h.buf = append(h.buf, byte(dt.Code), dt.Bits)
	h.buf = binary.LittleEndian.AppendUint16(h.buf, dt.Lanes)
}

func (h *hashEncoder) int(v int64) {
	h.buf = binary.AppendVarint(h.buf, v)
}

func (h *hashEncoder) string(s string) {
	h.buf = binary.AppendUvarint(h.buf, uint64(len(s)))
	h.buf = append(h.buf, s...)
}

func (h *hashEncoder) variable(v *Var) {
	h.buf = append(h.buf, tagVar)
	h.dtype(v.Typ)
	h.buf = append(h.buf, v.ID[:]...)
}

func (h *hashEncoder) list(xs []Expr) {
	h.int(int64(len(xs)))
	for _, x := range xs {
		h.expr(x)
	}
}

func (h *hashEncoder) expr(e Expr) {
	switch eT := e.(type) {
	case nil:
		h.buf = append(h.buf, tagNil)
	case *IntImm:
		h.buf = append(h.buf, tagIntImm)
		h.dtype(eT.Typ)
		h.int(eT.Value)
	case *FloatImm:
		h.buf = append(h.buf, tagFloatImm)
		h.dtype(eT.Typ)
		h.buf = binary.LittleEndian.AppendUint64(h.buf, math.Float64bits(eT.Value))
	case *Var:
		h.variable(eT)
	case *Cast:
		h.buf = append(h.buf, tagCast)
		h.dtype(eT.Typ)
		h.expr(eT.X)
	case *Broadcast:
		h.buf = append(h.buf, tagBroadcast)
		h.int(int64(eT.Lanes))
		h.expr(eT.X)
	case *Not:
		h.buf = append(h.buf, tagNot)
		h.expr(eT.X)
	case *Binary:
		h.buf = append(h.buf, tagBinary)
		h.int(int64(eT.Op))
		h.expr(eT.X)
		h.expr(eT.Y)
	case *Select:
		h.buf = append(h.buf, tagSelect)
		h.expr(eT.Cond)
		h.expr(eT.True)
		h.expr(eT.False)
	case *Call:
		h.buf = append(h.buf, tagCall)
		h.dtype(eT.Typ)
		h.string(eT.Op.Name)
		h.list(eT.Args)
	case *Reduce:
		h.buf = append(h.buf, tagReduce)
		c := eT.Combiner
		h.int(int64(c.Len()))
		for i := range c.Result {
			h.variable(c.LHS[i])
			h.variable(c.RHS[i])
		}
		h.list(c.Result)
		h.list(c.Identity)
		h.list(eT.Source)
		h.int(int64(len(eT.Axis)))
		for _, iv := range eT.Axis {
			h.variable(iv.Var)
			h.expr(iv.Dom.Min)
			h.expr(iv.Dom.Extent)
		}
		h.expr(eT.Condition)
		h.int(int64(eT.ValueIndex))
		h.list(eT.Init)
	}
}
