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
	"math"

	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

// float16Max is the largest finite half precision float.
const float16Max = 65504.0

func (b *Builder) checkLimitType(fn string, dt irkind.DType) {
	fmterr.Check(dt.IsScalar(), "%s requires a scalar type but got %s", fn, b.typeName(dt))
	if dt.IsIntOrUInt() {
		fmterr.Check(dt.Bits >= 1 && dt.Bits <= 64, "%s: unsupported number of bits for %s", fn, b.typeName(dt))
	}
}

// MaxValue returns the largest value of a scalar data type.
// Custom data types are not supported.
func (b *Builder) MaxValue(dt irkind.DType) ir.Expr {
	b.checkLimitType("max_value", dt)
	switch {
	case dt.IsInt():
		return &ir.IntImm{Typ: dt, Value: int64(uint64(1)<<(dt.Bits-1) - 1)}
	case dt.IsUInt():
		return &ir.IntImm{Typ: dt, Value: int64(uint64(math.MaxUint64) >> (64 - dt.Bits))}
	case dt.IsFloat():
		switch dt.Bits {
		case 64:
			return ir.ConstFloat(dt, math.MaxFloat64)
		case 32:
			return ir.ConstFloat(dt, math.MaxFloat32)
		case 16:
			return ir.ConstFloat(dt, float16Max)
		}
	}
	panic(fmterr.Fatalf("cannot decide max_value for type %s", b.typeName(dt)))
}

// MinValue returns the smallest value of a scalar data type.
// The minimum of a custom data type is computed by the function registered with the data type.
func (b *Builder) MinValue(dt irkind.DType) ir.Expr {
	b.checkLimitType("min_value", dt)
	if b.types.IsRegistered(dt.Code) {
		minFn, ok := b.types.MinFunc(dt.Code)
		fmterr.Check(ok, "no minimum function registered for custom data type %s", b.typeName(dt))
		return minFn(int(dt.Bits))
	}
	switch {
	case dt.IsInt():
		return &ir.IntImm{Typ: dt, Value: int64(-1) << (dt.Bits - 1)}
	case dt.IsUInt():
		return &ir.IntImm{Typ: dt, Value: 0}
	case dt.IsFloat():
		switch dt.Bits {
		case 64:
			return ir.ConstFloat(dt, -math.MaxFloat64)
		case 32:
			return ir.ConstFloat(dt, -math.MaxFloat32)
		case 16:
			return ir.ConstFloat(dt, -float16Max)
		}
	}
	panic(fmterr.Fatalf("cannot decide min_value for type %s", b.typeName(dt)))
}

// Infinity returns the positive infinity of a scalar floating point data type.
// Half precision floats use the single precision infinity.
func (b *Builder) Infinity(dt irkind.DType) ir.Expr {
	b.checkLimitType("infinity", dt)
	if dt.IsFloat() {
		switch dt.Bits {
		case 64, 32, 16:
			return &ir.FloatImm{Typ: dt, Value: math.Inf(1)}
		}
	}
	panic(fmterr.Fatalf("cannot decide infinity for type %s", b.typeName(dt)))
}
