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

// Package builtins registers the operators called by Call expressions.
//
// Operators are declared in a table (intrinsics.yaml) loaded once.
// Each operator is registered with a single *ir.Op handle: looking up
// the same name always returns the same pointer.
package builtins

import (
	_ "embed"
	"iter"
	"sync"

	"github.com/gx-org/primexpr/base/ordered"
	"github.com/gx-org/primexpr/build/fmterr"
	"github.com/gx-org/primexpr/build/ir"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed intrinsics.yaml
var intrinsicsYAML []byte

type (
	opDef struct {
		Name         string `yaml:"name"`
		Inputs       int    `yaml:"inputs"`
		Effect       string `yaml:"effect"`
		Vectorizable bool   `yaml:"vectorizable"`
	}

	table struct {
		Builtins   []opDef `yaml:"builtins"`
		Intrinsics []opDef `yaml:"intrinsics"`
	}

	// Registry maps operator names to operator handles.
	Registry struct {
		ops *ordered.Map[string, *ir.Op]
	}
)

// Load returns a registry of the operators declared in a YAML table.
func Load(data []byte) (*Registry, error) {
	var tbl table
	if err := yaml.Unmarshal(data, &tbl); err != nil {
		return nil, errors.Wrap(err, "cannot parse operator table")
	}
	reg := &Registry{ops: ordered.NewMap[string, *ir.Op]()}
	var errs error
	for _, def := range tbl.Builtins {
		errs = multierr.Append(errs, reg.register(def, false))
	}
	for _, def := range tbl.Intrinsics {
		errs = multierr.Append(errs, reg.register(def, true))
	}
	if errs != nil {
		return nil, errs
	}
	return reg, nil
}

func (reg *Registry) register(def opDef, intrinsic bool) error {
	if def.Name == "" {
		return errors.Errorf("operator without a name")
	}
	if def.Inputs < -1 {
		return errors.Errorf("operator %s: invalid number of inputs %d", def.Name, def.Inputs)
	}
	effect := ir.EffectPure
	if def.Effect != "" {
		var ok bool
		if effect, ok = ir.EffectFromString(def.Effect); !ok {
			return errors.Errorf("operator %s: unknown effect %q", def.Name, def.Effect)
		}
	}
	op := &ir.Op{
		Name:         def.Name,
		NumInputs:    def.Inputs,
		Effect:       effect,
		Vectorizable: def.Vectorizable,
		Intrinsic:    intrinsic,
	}
	if !reg.ops.StoreNew(op.Name, op) {
		return errors.Errorf("operator %s registered twice", def.Name)
	}
	return nil
}

// Lookup returns an operator given its name.
func (reg *Registry) Lookup(name string) (*ir.Op, bool) {
	return reg.ops.Load(name)
}

// Get returns an operator given its name.
// Getting an operator that has not been registered is a fatal error.
func (reg *Registry) Get(name string) *ir.Op {
	op, ok := reg.ops.Load(name)
	if !ok {
		panic(fmterr.Fatalf("operator %s has not been registered", name))
	}
	return op
}

// All returns an iterator over all the operators in declaration order.
func (reg *Registry) All() iter.Seq[*ir.Op] {
	return reg.ops.Values()
}

var std = sync.OnceValue(func() *Registry {
	reg, err := Load(intrinsicsYAML)
	if err != nil {
		panic(fmterr.Internal(err))
	}
	return reg
})

// Std returns the registry of the standard operators.
func Std() *Registry {
	return std()
}

// Get returns a standard operator given its name.
func Get(name string) *ir.Op {
	return Std().Get(name)
}
