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

package irkind_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

func TestString(t *testing.T) {
	tests := []struct {
		dt   irkind.DType
		want string
	}{
		{dt: irkind.Int8, want: "int8"},
		{dt: irkind.UInt64, want: "uint64"},
		{dt: irkind.Float16, want: "float16"},
		{dt: irkind.Float32.WithLanes(4), want: "float32x4"},
		{dt: irkind.BoolType, want: "bool"},
		{dt: irkind.BoolOf(8), want: "boolx8"},
		{dt: irkind.HandleType, want: "handle"},
		{dt: irkind.Custom(130, 16), want: "custom[130]16"},
	}
	for i, test := range tests {
		if got := test.dt.String(); got != test.want {
			t.Errorf("test %d: got %q but want %q", i, got, test.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	vec := irkind.IntOf(32).WithLanes(4)
	if !vec.IsInt() || !vec.IsIntOrUInt() || !vec.IsVector() || vec.IsScalar() {
		t.Errorf("incorrect predicates for %s", vec)
	}
	if got := vec.ElementOf(); got != irkind.Int32 {
		t.Errorf("got element %s but want %s", got, irkind.Int32)
	}
	if got := vec.WithBits(64); got != irkind.Int64.WithLanes(4) {
		t.Errorf("got %s but want int64x4", got)
	}
	custom := irkind.Custom(irkind.CustomBegin, 8)
	if !custom.IsCustom() || custom.IsInt() || custom.IsFloat() {
		t.Errorf("incorrect predicates for %s", custom)
	}
}

func TestInvalidLanes(t *testing.T) {
	if err := fmterr.Catch(func() { irkind.Int32.WithLanes(0) }); err == nil {
		t.Error("expected an error for 0 lanes")
	}
	if err := fmterr.Catch(func() { irkind.Custom(irkind.Bool, 8) }); err == nil {
		t.Error("expected an error for a builtin code used as a custom code")
	}
}

func TestZeroBits(t *testing.T) {
	for _, code := range []irkind.Kind{irkind.Int, irkind.UInt, irkind.Float, irkind.Bool, irkind.CustomBegin} {
		err := fmterr.Catch(func() { irkind.Make(code, 0, 1) })
		if err == nil {
			t.Errorf("%s: expected an error for 0 bits", code)
			continue
		}
		if diff := cmp.Diff(err.Error(), code.String()+" requires at least one bit"); diff != "" {
			t.Errorf("%s: unexpected error:\n%s", code, diff)
		}
	}
	if got := irkind.Make(irkind.Handle, 0, 1); got.Bits != 0 {
		t.Errorf("got %d bits for a void handle but want 0", got.Bits)
	}
}

func TestBackend(t *testing.T) {
	for _, bdt := range []dtype.DataType{dtype.Bool, dtype.Int32, dtype.Int64, dtype.Uint32, dtype.Uint64, dtype.Float32, dtype.Float64} {
		dt, err := irkind.FromBackend(bdt)
		if err != nil {
			t.Fatal(err)
		}
		got, err := dt.Backend()
		if err != nil {
			t.Fatal(err)
		}
		if got != bdt {
			t.Errorf("%s: got backend type %s but want %s", dt, got, bdt)
		}
	}
	if _, err := irkind.FromBackend(dtype.Bfloat16); err == nil {
		t.Error("expected an error for bfloat16")
	}
	if _, err := irkind.Float16.Backend(); err == nil {
		t.Error("expected an error for float16")
	}
}

func TestShape(t *testing.T) {
	sh, err := irkind.Float32.WithLanes(8).Shape()
	if err != nil {
		t.Fatal(err)
	}
	if sh.DType != dtype.Float32 || !cmp.Equal(sh.AxisLengths, []int{8}) {
		t.Errorf("got shape %s%v but want float32[8]", sh.DType, sh.AxisLengths)
	}
	back, err := irkind.FromShape(sh)
	if err != nil {
		t.Fatal(err)
	}
	if back != irkind.Float32.WithLanes(8) {
		t.Errorf("got %s but want float32x8", back)
	}
	atom, err := irkind.Int64.Shape()
	if err != nil {
		t.Fatal(err)
	}
	if len(atom.AxisLengths) != 0 {
		t.Errorf("got axes %v for a scalar", atom.AxisLengths)
	}
	if _, err := irkind.FromShape(&shape.Shape{DType: dtype.Int32, AxisLengths: []int{2, 3}}); err == nil {
		t.Error("expected an error for a rank 2 shape")
	}
}
