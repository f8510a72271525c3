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

package irkind

import (
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/pkg/errors"
)

var (
	toBackend = map[DType]dtype.DataType{
		BoolType: dtype.Bool,
		Int32:    dtype.Int32,
		Int64:    dtype.Int64,
		UInt32:   dtype.Uint32,
		UInt64:   dtype.Uint64,
		Float32:  dtype.Float32,
		Float64:  dtype.Float64,
	}

	fromBackend = func() map[dtype.DataType]DType {
		m := make(map[dtype.DataType]DType, len(toBackend))
		for dt, bdt := range toBackend {
			m[bdt] = dt
		}
		return m
	}()
)

// FromBackend returns the scalar data type matching a backend data type.
func FromBackend(bdt dtype.DataType) (DType, error) {
	dt, ok := fromBackend[bdt]
	if !ok {
		return DType{}, errors.Errorf("backend data type %s has no scalar equivalent", bdt.String())
	}
	return dt, nil
}

// Backend returns the backend data type of a lane.
func (dt DType) Backend() (dtype.DataType, error) {
	bdt, ok := toBackend[dt.ElementOf()]
	if !ok {
		return dtype.Invalid, errors.Errorf("data type %s not supported by the backend", dt.String())
	}
	return bdt, nil
}

// Shape returns the backend shape of a value of the data type:
// an atom for a scalar, an array with a single axis of length Lanes for a vector.
func (dt DType) Shape() (*shape.Shape, error) {
	bdt, err := dt.Backend()
	if err != nil {
		return nil, err
	}
	sh := &shape.Shape{DType: bdt}
	if dt.IsVector() {
		sh.AxisLengths = []int{int(dt.Lanes)}
	}
	return sh, nil
}

// FromShape returns the data type of a backend shape.
// Only atoms and arrays with a single axis have an equivalent data type.
func FromShape(sh *shape.Shape) (DType, error) {
	dt, err := FromBackend(sh.DType)
	if err != nil {
		return DType{}, err
	}
	switch len(sh.AxisLengths) {
	case 0:
		return dt, nil
	case 1:
		lanes := sh.AxisLengths[0]
		if lanes < 1 || lanes > 1<<16-1 {
			return DType{}, errors.Errorf("cannot use an axis of length %d as lanes", lanes)
		}
		return dt.WithLanes(lanes), nil
	default:
		return DType{}, errors.Errorf("shape with %d axes has no data type equivalent", len(sh.AxisLengths))
	}
}
