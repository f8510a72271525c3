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

// Package fmterr formats and raises the errors reported while building expressions.
//
// Two kinds of failures exist. Functions that can fail on user data return regular
// Go errors. A malformed expression (wrong operand kind, lane mismatch, out of range
// shift, ...) is a bug in the code constructing the IR: the construction is aborted
// by panicking with a *Fatal value. Catch converts such a panic back into an error.
package fmterr

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Fatal is the panic value raised when an expression cannot be constructed.
type Fatal struct {
	err error
}

var _ error = (*Fatal)(nil)

// Fatalf returns a fatal error. The caller is expected to panic with it:
//
//	panic(fmterr.Fatalf("cannot match type %s vs %s", a, b))
func Fatalf(format string, a ...any) *Fatal {
	return &Fatal{err: errors.Errorf(format, a...)}
}

// Check panics with a fatal error if cond is false.
func Check(cond bool, format string, a ...any) {
	if cond {
		return
	}
	panic(Fatalf(format, a...))
}

// Error returns the error message.
func (f *Fatal) Error() string {
	return f.err.Error()
}

// Unwrap returns the underlying error.
func (f *Fatal) Unwrap() error {
	return f.err
}

// Format writes the error into the state of the formatter.
// %+v includes the stack trace of where the error was raised.
func (f *Fatal) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", f.err)
		return
	}
	io.WriteString(s, f.Error())
}

// Internal marks an error as internal, potentially adding additional information.
func Internal(err error) error {
	return fmt.Errorf("primexpr internal error. This is a bug in primexpr. Please report it. Error:\n%+v", err)
}
