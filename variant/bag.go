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
	"slices"

	"github.com/proteanic/protean-sub000/internal/cstr"
)

// bag is a multimap that keeps entries in insertion order and permits
// duplicate keys.
type bag struct {
	entries []entry
}

func (b *bag) kind() Kind          { return KindBag }
func (b *bag) size() int           { return len(b.entries) }
func (b *bag) entrySlice() []entry { return b.entries }

func (b *bag) clear() {
	releaseEntries(b.entries)
	b.entries = b.entries[:0]
}

func (b *bag) compare(o collection) (int, error) {
	r, ok := o.(*bag)
	if !ok {
		return 0, incompatible(b, o)
	}
	return compareEntries(b.entries, r.entries), nil
}

func (b *bag) hash(seed uint64) uint64 { return hashEntries(b.entries, seed) }
func (b *bag) clone() collection       { return &bag{entries: cloneEntries(b.entries)} }
func (b *bag) release()                { releaseEntries(b.entries) }

func (b *bag) insert(key string, v Variant) (*Variant, error) {
	b.entries = append(b.entries, entry{key: cstr.New(key), value: v})
	return &b.entries[len(b.entries)-1].value, nil
}

// get returns the first value stored under key.
func (b *bag) get(key string) (*Variant, error) {
	for i := range b.entries {
		if b.entries[i].key.CompareString(key) == 0 {
			return &b.entries[i].value, nil
		}
	}
	return nil, keyNotFound(key)
}

func (b *bag) has(key string) bool {
	_, err := b.get(key)
	return err == nil
}

// remove drops every entry stored under key. A missing key is not an error.
func (b *bag) remove(key string) error {
	b.entries = slices.DeleteFunc(b.entries, func(e entry) bool {
		if e.key.CompareString(key) == 0 {
			e.value.Release()
			return true
		}
		return false
	})
	return nil
}

func (b *bag) rangeOf(key string) []*Variant {
	var out []*Variant
	for i := range b.entries {
		if b.entries[i].key.CompareString(key) == 0 {
			out = append(out, &b.entries[i].value)
		}
	}
	return out
}

func (b *bag) begin() iteratorImpl { return &mapIter{m: b} }
func (b *bag) end() iteratorImpl   { return &mapIter{m: b, pos: len(b.entries)} }
