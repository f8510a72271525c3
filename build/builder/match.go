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
	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

// MatchTypes promotes two operands to a common data type.
//
// A scalar is broadcast to the lanes of a vector. Then:
//   - an integer (or custom) operand is cast to the type of a float (or registered custom) operand,
//   - the narrower of two signed (or two unsigned) integers is cast to the wider type,
//   - a signed and an unsigned integer are both cast to a signed integer of the largest width.
//
// Any other combination is a fatal error.
func (b *Builder) MatchTypes(x, y *ir.Expr) {
	xt, yt := (*x).DType(), (*y).DType()
	if xt == yt {
		return
	}
	switch {
	case xt.IsScalar() && yt.IsVector():
		*x = &ir.Broadcast{X: *x, Lanes: int(yt.Lanes)}
	case xt.IsVector() && yt.IsScalar():
		*y = &ir.Broadcast{X: *y, Lanes: int(xt.Lanes)}
	default:
		fmterr.Check(xt.Lanes == yt.Lanes, "cannot match type %s vs %s: different number of lanes", b.typeName(xt), b.typeName(yt))
	}
	xt, yt = (*x).DType(), (*y).DType()
	if xt == yt {
		return
	}
	switch {
	case !xt.IsFloat() && b.isFloatFamily(yt):
		b.checkPromotable(xt, yt)
		*x = b.Cast(yt, *x)
	case b.isFloatFamily(xt) && !yt.IsFloat():
		b.checkPromotable(yt, xt)
		*y = b.Cast(xt, *y)
	case xt.IsInt() && yt.IsInt(), xt.IsUInt() && yt.IsUInt():
		if xt.Bits < yt.Bits {
			*x = b.Cast(yt, *x)
		} else {
			*y = b.Cast(xt, *y)
		}
	case xt.IsIntOrUInt() && yt.IsIntOrUInt():
		dt := irkind.Make(irkind.Int, int(max(xt.Bits, yt.Bits)), int(xt.Lanes))
		*x = b.Cast(dt, *x)
		*y = b.Cast(dt, *y)
	default:
		panic(fmterr.Fatalf("cannot match type %s vs %s", b.typeName(xt), b.typeName(yt)))
	}
}

// checkPromotable checks that a value of type from can be promoted to a float or custom type to.
func (b *Builder) checkPromotable(from, to irkind.DType) {
	fmterr.Check(from.IsIntOrUInt() || from.IsCustom(), "cannot match type %s vs %s", b.typeName(from), b.typeName(to))
}
