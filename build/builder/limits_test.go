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

package builder_test

import (
	"math"
	"testing"

	"github.com/gx-org/primexpr/build/arith"
	"github.com/gx-org/primexpr/build/builder"
	"github.com/gx-org/primexpr/build/datatype"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
)

func TestIntLimits(t *testing.T) {
	bld := newBuilder(t)
	tests := []struct {
		dt       irkind.DType
		min, max int64
	}{
		{dt: irkind.Int8, min: -128, max: 127},
		{dt: irkind.Int16, min: math.MinInt16, max: math.MaxInt16},
		{dt: irkind.Int32, min: math.MinInt32, max: math.MaxInt32},
		{dt: irkind.Int64, min: math.MinInt64, max: math.MaxInt64},
		{dt: irkind.UInt8, min: 0, max: 255},
		{dt: irkind.UInt32, min: 0, max: math.MaxUint32},
	}
	for i, test := range tests {
		lo, loOk := ir.AsIntImm(bld.MinValue(test.dt))
		hi, hiOk := ir.AsIntImm(bld.MaxValue(test.dt))
		if !loOk || !hiOk {
			t.Errorf("test %d: limits of %s are not integer literals", i, test.dt)
			continue
		}
		if lo.Value != test.min || hi.Value != test.max {
			t.Errorf("test %d: got [%d, %d] but want [%d, %d]", i, lo.Value, hi.Value, test.min, test.max)
		}
		if lo.Typ != test.dt || hi.Typ != test.dt {
			t.Errorf("test %d: got types %s and %s but want %s", i, lo.Typ, hi.Typ, test.dt)
		}
	}
}

func TestUInt64Max(t *testing.T) {
	bld := newBuilder(t)
	hi, ok := ir.AsIntImm(bld.MaxValue(irkind.UInt64))
	if !ok {
		t.Fatalf("max value of uint64 is not an integer literal")
	}
	if hi.Uint64() != math.MaxUint64 {
		t.Errorf("got %d but want %d", hi.Uint64(), uint64(math.MaxUint64))
	}
	if got, want := hi.String(), "18446744073709551615u64"; got != want {
		t.Errorf("got %s but want %s", got, want)
	}
}

func TestFloatLimits(t *testing.T) {
	bld := newBuilder(t)
	tests := []struct {
		dt       irkind.DType
		min, max float64
	}{
		{dt: irkind.Float16, min: -65504, max: 65504},
		{dt: irkind.Float32, min: -math.MaxFloat32, max: math.MaxFloat32},
		{dt: irkind.Float64, min: -math.MaxFloat64, max: math.MaxFloat64},
	}
	for i, test := range tests {
		lo, loOk := ir.AsFloatImm(bld.MinValue(test.dt))
		hi, hiOk := ir.AsFloatImm(bld.MaxValue(test.dt))
		if !loOk || !hiOk {
			t.Errorf("test %d: limits of %s are not float literals", i, test.dt)
			continue
		}
		if lo.Value != test.min || hi.Value != test.max {
			t.Errorf("test %d: got [%g, %g] but want [%g, %g]", i, lo.Value, hi.Value, test.min, test.max)
		}
	}
}

func TestInfinity(t *testing.T) {
	bld := newBuilder(t)
	for _, dt := range []irkind.DType{irkind.Float16, irkind.Float32, irkind.Float64} {
		inf := bld.Infinity(dt)
		if inf.DType() != dt {
			t.Errorf("got type %s but want %s", inf.DType(), dt)
		}
		if !arith.IsPosInf(inf) {
			t.Errorf("%s is not recognized as an infinity", inf)
		}
	}
	inf := bld.Infinity(irkind.Float32)
	finite := bld.MaxValue(irkind.Float32)
	if got := bld.EQ(inf, finite); !ir.IsConstIntValue(got, 0) {
		t.Errorf("infinity == max float32: got %s but want false", got)
	}
	if got := bld.LT(finite, inf); !ir.IsConstIntValue(got, 1) {
		t.Errorf("max float32 < infinity: got %s but want true", got)
	}
}

func TestCustomLimits(t *testing.T) {
	bld := newBuilder(t)
	lo := bld.MinValue(positType)
	if !ir.StructEqual(lo, positMin(16)) {
		t.Errorf("got %s but want %s", lo, positMin(16))
	}
	// Only min_value defers to the registry.
	checkFatal(t, "max_value(posit)", func() { bld.MaxValue(positType) }, "max_value")
	checkFatal(t, "infinity(posit)", func() { bld.Infinity(positType) }, "infinity")
}

func TestCustomMinWithoutFunction(t *testing.T) {
	reg := datatype.NewRegistry()
	if err := reg.Register("nomin", irkind.CustomBegin, nil); err != nil {
		t.Fatal(err)
	}
	bld := builder.New(builder.WithRegistry(reg))
	checkFatal(t, "registered without min", func() {
		bld.MinValue(irkind.Custom(irkind.CustomBegin, 8))
	}, "no minimum function", "custom[nomin]8")
	checkFatal(t, "unregistered", func() {
		bld.MinValue(irkind.Custom(irkind.CustomBegin+1, 8))
	}, "min_value")
	checkFatal(t, "no registry", func() {
		builder.New().MinValue(positType)
	}, "min_value")
}

func TestLimitErrors(t *testing.T) {
	bld := newBuilder(t)
	tests := []struct {
		name string
		f    func(irkind.DType) ir.Expr
		dt   irkind.DType
	}{
		{name: "max_value", f: bld.MaxValue, dt: irkind.Int32.WithLanes(4)},
		{name: "min_value", f: bld.MinValue, dt: irkind.Float32.WithLanes(2)},
		{name: "infinity", f: bld.Infinity, dt: irkind.Float32.WithLanes(2)},
		{name: "max_value", f: bld.MaxValue, dt: irkind.BoolType},
		{name: "min_value", f: bld.MinValue, dt: irkind.HandleType},
		{name: "max_value", f: bld.MaxValue, dt: irkind.IntOf(128)},
		{name: "min_value", f: bld.MinValue, dt: irkind.UIntOf(0)},
		{name: "max_value", f: bld.MaxValue, dt: irkind.FloatOf(8)},
		{name: "infinity", f: bld.Infinity, dt: irkind.Int32},
	}
	for _, test := range tests {
		checkFatal(t, test.name+"("+test.dt.String()+")", func() { test.f(test.dt) }, test.name)
	}
}
