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


package uname_test

import (
	"testing"

	"github.com/gx-org/primexpr/base/uname"
)

func TestName(t *testing.T) {
	tests := []struct {
		key        int
		root, want string
	}{
		{key: 0, root: "x", want: "x"},
		{key: 1, root: "x", want: "x1"},
		{key: 2, root: "x", want: "x2"},
		{key: 3, root: "y", want: "y"},
		{key: 4, root: "x1", want: "x11"},
		{key: 5, root: "y", want: "y1"},
		{key: 0, root: "x", want: "x"},
		{key: 1, root: "z", want: "x1"},
	}
	unames := uname.New[int]()
	for i, test := range tests {
		got := unames.Name(test.key, test.root)
		if got != test.want {
			t.Errorf("test %d: for key %d and root %s, got %s but want %s", i, test.key, test.root, got, test.want)
		}
	}
}

func TestNameSkipsTaken(t *testing.T) {
	unames := uname.New[string]()
	for i, test := range []struct{ key, root, want string }{
		{key: "p", root: "a1", want: "a1"},
		{key: "q", root: "a", want: "a"},
		{key: "r", root: "a", want: "a2"},
	} {
		if got := unames.Name(test.key, test.root); got != test.want {
			t.Errorf("test %d: for root %s, got %s but want %s", i, test.root, got, test.want)
		}
	}
}
