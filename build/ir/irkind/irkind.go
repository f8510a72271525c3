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

// Package irkind defines the numeric data types of the expression IR.
//
// A data type is a kind (integer, unsigned integer, float, boolean, handle or a
// custom code registered by an extension), a bit width and a number of lanes.
// A data type with a single lane is a scalar.
package irkind

import (
	"fmt"
	"math"

	"github.com/gx-org/primexpr/build/fmterr"
)

// Kind of a data type.
type Kind uint8

// Kinds of data types.
const (
	Int Kind = iota
	UInt
	Float
	Handle
	Bool

	// CustomBegin is the first code available for custom data types.
	CustomBegin Kind = 128
)

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Float:
		return "float"
	case Handle:
		return "handle"
	case Bool:
		return "bool"
	}
	if k >= CustomBegin {
		return fmt.Sprintf("custom[%d]", uint8(k))
	}
	return "invalid"
}

// DType is the data type of an expression.
// DType is a value type: two data types are equal if all their fields are equal.
type DType struct {
	Code  Kind
	Bits  uint8
	Lanes uint16
}

// Predefined scalar data types.
var (
	Int8   = Make(Int, 8, 1)
	Int16  = Make(Int, 16, 1)
	Int32  = Make(Int, 32, 1)
	Int64  = Make(Int, 64, 1)
	UInt8  = Make(UInt, 8, 1)
	UInt16 = Make(UInt, 16, 1)
	UInt32 = Make(UInt, 32, 1)
	UInt64 = Make(UInt, 64, 1)

	Float16 = Make(Float, 16, 1)
	Float32 = Make(Float, 32, 1)
	Float64 = Make(Float, 64, 1)

	BoolType   = Make(Bool, 1, 1)
	HandleType = Make(Handle, 64, 1)
)

// Make returns a data type given its kind, its number of bits and its number of lanes.
func Make(code Kind, bits, lanes int) DType {
	fmterr.Check(lanes >= 1 && lanes <= math.MaxUint16, "invalid number of lanes %d for %s%d", lanes, code, bits)
	fmterr.Check(bits >= 0 && bits <= math.MaxUint8, "invalid number of bits %d for %s", bits, code)
	fmterr.Check(bits > 0 || code == Handle, "%s requires at least one bit", code)
	return DType{Code: code, Bits: uint8(bits), Lanes: uint16(lanes)}
}

// IntOf returns a signed integer type.
func IntOf(bits int) DType { return Make(Int, bits, 1) }

// UIntOf returns an unsigned integer type.
func UIntOf(bits int) DType { return Make(UInt, bits, 1) }

// FloatOf returns a floating point type.
func FloatOf(bits int) DType { return Make(Float, bits, 1) }

// BoolOf returns a boolean type with a given number of lanes.
func BoolOf(lanes int) DType { return Make(Bool, 1, lanes) }

// Custom returns a scalar data type for a custom code.
func Custom(code Kind, bits int) DType {
	fmterr.Check(code >= CustomBegin, "custom data type code %d is lower than %d", uint8(code), uint8(CustomBegin))
	return Make(code, bits, 1)
}

// IsInt returns true if the data type is a signed integer.
func (dt DType) IsInt() bool { return dt.Code == Int }

// IsUInt returns true if the data type is an unsigned integer.
func (dt DType) IsUInt() bool { return dt.Code == UInt }

// IsIntOrUInt returns true if the data type is a signed or an unsigned integer.
func (dt DType) IsIntOrUInt() bool { return dt.IsInt() || dt.IsUInt() }

// IsFloat returns true if the data type is a floating point number.
func (dt DType) IsFloat() bool { return dt.Code == Float }

// IsBool returns true if the data type is a boolean.
func (dt DType) IsBool() bool { return dt.Code == Bool }

// IsHandle returns true if the data type is an opaque handle.
func (dt DType) IsHandle() bool { return dt.Code == Handle }

// IsCustom returns true if the data type uses a custom code.
func (dt DType) IsCustom() bool { return dt.Code >= CustomBegin }

// IsScalar returns true if the data type has a single lane.
func (dt DType) IsScalar() bool { return dt.Lanes == 1 }

// IsVector returns true if the data type has more than one lane.
func (dt DType) IsVector() bool { return dt.Lanes > 1 }

// ElementOf returns the scalar data type of a lane.
func (dt DType) ElementOf() DType {
	dt.Lanes = 1
	return dt
}

// WithLanes returns the same data type with a different number of lanes.
func (dt DType) WithLanes(lanes int) DType {
	return Make(dt.Code, int(dt.Bits), lanes)
}

// WithBits returns the same data type with a different number of bits.
func (dt DType) WithBits(bits int) DType {
	return Make(dt.Code, bits, int(dt.Lanes))
}

// String returns a string representation of the data type.
func (dt DType) String() string {
	var s string
	switch {
	case dt.Code == Bool:
		s = "bool"
	case dt.Code == Handle:
		s = "handle"
	default:
		s = fmt.Sprintf("%s%d", dt.Code, dt.Bits)
	}
	if dt.Lanes > 1 {
		s += fmt.Sprintf("x%d", dt.Lanes)
	}
	return s
}
