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

package stringseq_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/gx-org/primexpr/base/stringseq"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{items: nil, want: ""},
		{items: []string{"x"}, want: "x"},
		{items: []string{"x", "y", "z"}, want: "x, y, z"},
	}
	for i, test := range tests {
		if got := stringseq.Join(slices.Values(test.items), ", "); got != test.want {
			t.Errorf("test %d: got %q but want %q", i, got, test.want)
		}
	}
}

func TestMap(t *testing.T) {
	got := stringseq.Join(stringseq.Map([]int{1, 2, 3}, strconv.Itoa), "+")
	if want := "1+2+3"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
}
