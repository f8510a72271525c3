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

package fmterr

// Catch calls f and returns the fatal error f panicked with, if any.
// Panics with any other value are propagated.
func Catch(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		fatal, ok := r.(*Fatal)
		if !ok {
			panic(r)
		}
		err = fatal
	}()
	f()
	return nil
}

// Try calls f and returns its result, or the fatal error f panicked with.
func Try[T any](f func() T) (val T, err error) {
	err = Catch(func() {
		val = f()
	})
	return
}
