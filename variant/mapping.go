// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package variant

import (
	"fmt"

	"github.com/proteanic/protean-sub000/internal/cstr"
)

// entry is a keyed element of a Dictionary or Bag.
type entry struct {
	key   cstr.String
	value Variant
}

func compareEntries(a, b []entry) int {
	if c := compareSize(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := cstr.Compare(&a[i].key, &b[i].key); c != 0 {
			return c
		}
		if c := a[i].value.Compare(b[i].value); c != 0 {
			return c
		}
	}
	return 0
}

func hashEntries(entries []entry, seed uint64) uint64 {
	for i := range entries {
		seed = entries[i].key.Hash(seed)
		seed = entries[i].value.Hash(seed)
	}
	return seed
}

func cloneEntries(entries []entry) []entry {
	out := make([]entry, len(entries))
	for i := range entries {
		out[i] = entry{key: entries[i].key, value: entries[i].value.Clone()}
	}
	return out
}

func releaseEntries(entries []entry) {
	for i := range entries {
		entries[i].value.Release()
	}
}

func keyNotFound(key string) error {
	return fmt.Errorf("%w: key %q", ErrNotFound, key)
}

// mapping is the shared surface of Dictionary and Bag payloads.
type mapping interface {
	collection
	entrySlice() []entry
	insert(key string, v Variant) (*Variant, error)
	get(key string) (*Variant, error)
	has(key string) bool
	remove(key string) error
	rangeOf(key string) []*Variant
}
