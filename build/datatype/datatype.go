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

// Package datatype is a registry of custom data types.
//
// Extensions register custom numeric encodings under a code greater than or equal
// to irkind.CustomBegin. A registry is explicitly constructed and given to the
// expression builder. Registration is expected to complete before expressions using
// custom codes are built concurrently; lookups are safe for concurrent use.
package datatype

import (
	"fmt"
	"regexp"
	"strconv"

	gxsync "github.com/gx-org/primexpr/base/sync"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/gx-org/primexpr/build/ir/irkind"
	"github.com/pkg/errors"
)

type (
	// MinFunc returns the minimum value of a custom data type given its number of bits.
	MinFunc func(bits int) ir.Expr

	entry struct {
		name string
		code irkind.Kind
		min  MinFunc
	}

	// Registry of custom data types.
	// A nil registry is empty.
	Registry struct {
		byCode gxsync.Map[irkind.Kind, *entry]
		byName gxsync.Map[string, *entry]
	}
)

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register a custom data type given its name and its code.
// min computes the minimum value of the data type and can be nil.
func (r *Registry) Register(name string, code irkind.Kind, min MinFunc) error {
	if name == "" {
		return errors.Errorf("cannot register custom data type code %d without a name", uint8(code))
	}
	if code < irkind.CustomBegin {
		return errors.Errorf("cannot register custom data type %s: code %d is lower than %d", name, uint8(code), uint8(irkind.CustomBegin))
	}
	e := &entry{name: name, code: code, min: min}
	if prev, loaded := r.byCode.LoadOrStore(code, e); loaded {
		return errors.Errorf("cannot register custom data type %s: code %d already used by %s", name, uint8(code), prev.name)
	}
	if prev, loaded := r.byName.LoadOrStore(name, e); loaded {
		r.byCode.Delete(code)
		return errors.Errorf("cannot register custom data type %s with code %d: name already registered with code %d", name, uint8(code), uint8(prev.code))
	}
	return nil
}

func (r *Registry) lookup(code irkind.Kind) (*entry, bool) {
	if r == nil {
		return nil, false
	}
	return r.byCode.Load(code)
}

// IsRegistered returns true if a custom data type has been registered for a code.
func (r *Registry) IsRegistered(code irkind.Kind) bool {
	_, ok := r.lookup(code)
	return ok
}

// MinFunc returns the function computing the minimum value of a custom data type.
func (r *Registry) MinFunc(code irkind.Kind) (MinFunc, bool) {
	e, ok := r.lookup(code)
	if !ok || e.min == nil {
		return nil, false
	}
	return e.min, true
}

// TypeName returns the name of a custom data type given its code.
func (r *Registry) TypeName(code irkind.Kind) (string, bool) {
	e, ok := r.lookup(code)
	if !ok {
		return "", false
	}
	return e.name, true
}

// TypeCode returns the code of a custom data type given its name.
func (r *Registry) TypeCode(name string) (irkind.Kind, bool) {
	if r == nil {
		return 0, false
	}
	e, ok := r.byName.Load(name)
	if !ok {
		return 0, false
	}
	return e.code, true
}

// Format returns a string representation of a data type
// using the registered name of custom codes.
func (r *Registry) Format(dt irkind.DType) string {
	name, ok := r.TypeName(dt.Code)
	if !dt.IsCustom() || !ok {
		return dt.String()
	}
	s := fmt.Sprintf("custom[%s]%d", name, dt.Bits)
	if dt.IsVector() {
		s += fmt.Sprintf("x%d", dt.Lanes)
	}
	return s
}

var customRE = regexp.MustCompile(`^custom\[([^\]]+)\]([0-9]+)(?:x([0-9]+))?$`)

// Parse a custom data type written as custom[name]bits or custom[name]bitsxlanes.
func (r *Registry) Parse(s string) (irkind.DType, error) {
	m := customRE.FindStringSubmatch(s)
	if m == nil {
		return irkind.DType{}, errors.Errorf("%q is not a custom data type", s)
	}
	code, ok := r.TypeCode(m[1])
	if !ok {
		return irkind.DType{}, errors.Errorf("custom data type %s has not been registered", m[1])
	}
	bits, err := strconv.Atoi(m[2])
	if err != nil || bits < 1 || bits > 255 {
		return irkind.DType{}, errors.Errorf("invalid number of bits in %q", s)
	}
	lanes := 1
	if m[3] != "" {
		if lanes, err = strconv.Atoi(m[3]); err != nil || lanes < 1 || lanes > 1<<16-1 {
			return irkind.DType{}, errors.Errorf("invalid number of lanes in %q", s)
		}
	}
	return irkind.Make(code, bits, lanes), nil
}
