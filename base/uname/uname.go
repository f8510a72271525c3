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


// Package uname assigns unique names to keys.
package uname

import "fmt"

// Unique assigns a name to each distinct key.
// Keys requesting a name already given to another key get a numeric suffix.
type Unique[K comparable] struct {
	taken map[string]int
	names map[K]string
}

// New returns a name generator for keys of type K.
func New[K comparable]() *Unique[K] {
	return &Unique[K]{
		taken: make(map[string]int),
		names: make(map[K]string),
	}
}

// Name returns the name of a key.
// The first call for a key decides its name from root. Later calls return the same name.
func (n *Unique[K]) Name(key K, root string) string {
	if name, ok := n.names[key]; ok {
		return name
	}
	name := n.fresh(root)
	n.names[key] = name
	return name
}

func (n *Unique[K]) fresh(root string) string {
	next, ok := n.taken[root]
	if !ok {
		n.taken[root] = 1
		return root
	}
	n.taken[root] = next + 1
	name := fmt.Sprintf("%s%d", root, next)
	if _, ok := n.taken[name]; ok {
		return n.fresh(root)
	}
	n.taken[name] = 1
	return name
}
