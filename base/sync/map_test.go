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

package sync_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	gxsync "github.com/gx-org/primexpr/base/sync"
)

func TestLoadOrStore(t *testing.T) {
	var m gxsync.Map[string, int]
	if _, ok := m.Load("a"); ok {
		t.Error("empty map returns a value")
	}
	if v, loaded := m.LoadOrStore("a", 1); loaded || v != 1 {
		t.Errorf("got %d, %v but want 1, false", v, loaded)
	}
	if v, loaded := m.LoadOrStore("a", 2); !loaded || v != 1 {
		t.Errorf("got %d, %v but want 1, true", v, loaded)
	}
	m.Delete("a")
	if _, ok := m.Load("a"); ok {
		t.Error("deleted key still in the map")
	}
}

func TestConcurrentLoadOrStore(t *testing.T) {
	var m gxsync.Map[string, int]
	var wg sync.WaitGroup
	got := make([]int, 16)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i], _ = m.LoadOrStore(fmt.Sprintf("k%d", i%4), i)
		}()
	}
	wg.Wait()
	seen := make(map[string]int)
	stored := make(map[string]int)
	for i, v := range got {
		key := fmt.Sprintf("k%d", i%4)
		seen[key] = v
		stored[key], _ = m.Load(key)
	}
	if diff := cmp.Diff(stored, seen); diff != "" {
		t.Errorf("values returned by LoadOrStore differ from the map:\n%s", diff)
	}
}
