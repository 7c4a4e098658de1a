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
	"slices"

	"github.com/proteanic/protean-sub000/internal/cstr"
)

// dictionary is a unique-key map kept sorted by key, so iteration and
// hashing do not depend on insertion order.
type dictionary struct {
	entries []entry
}

func (d *dictionary) kind() Kind          { return KindDictionary }
func (d *dictionary) size() int           { return len(d.entries) }
func (d *dictionary) entrySlice() []entry { return d.entries }

func (d *dictionary) clear() {
	releaseEntries(d.entries)
	d.entries = d.entries[:0]
}

func (d *dictionary) compare(o collection) (int, error) {
	r, ok := o.(*dictionary)
	if !ok {
		return 0, incompatible(d, o)
	}
	return compareEntries(d.entries, r.entries), nil
}

func (d *dictionary) hash(seed uint64) uint64 { return hashEntries(d.entries, seed) }
func (d *dictionary) clone() collection       { return &dictionary{entries: cloneEntries(d.entries)} }
func (d *dictionary) release()                { releaseEntries(d.entries) }

func (d *dictionary) sort() {
	slices.SortStableFunc(d.entries, func(a, b entry) int { return cstr.Compare(&a.key, &b.key) })
}

func (d *dictionary) search(key string) (int, bool) {
	return slices.BinarySearchFunc(d.entries, key, func(e entry, k string) int {
		return e.key.CompareString(k)
	})
}

func (d *dictionary) insert(key string, v Variant) (*Variant, error) {
	i, found := d.search(key)
	if found {
		return nil, fmt.Errorf("%w: %q already present in dictionary", ErrDuplicateKey, key)
	}
	d.entries = slices.Insert(d.entries, i, entry{key: cstr.New(key), value: v})
	return &d.entries[i].value, nil
}

// set replaces the value stored under key, inserting it when absent.
func (d *dictionary) set(key string, v Variant) *Variant {
	i, found := d.search(key)
	if found {
		d.entries[i].value.Release()
		d.entries[i].value = v
		return &d.entries[i].value
	}
	d.entries = slices.Insert(d.entries, i, entry{key: cstr.New(key), value: v})
	return &d.entries[i].value
}

func (d *dictionary) get(key string) (*Variant, error) {
	i, found := d.search(key)
	if !found {
		return nil, keyNotFound(key)
	}
	return &d.entries[i].value, nil
}

func (d *dictionary) has(key string) bool {
	_, found := d.search(key)
	return found
}

func (d *dictionary) remove(key string) error {
	i, found := d.search(key)
	if !found {
		return keyNotFound(key)
	}
	d.entries[i].value.Release()
	d.entries = slices.Delete(d.entries, i, i+1)
	return nil
}

func (d *dictionary) rangeOf(key string) []*Variant {
	if v, err := d.get(key); err == nil {
		return []*Variant{v}
	}
	return nil
}

func (d *dictionary) begin() iteratorImpl { return &mapIter{m: d} }
func (d *dictionary) end() iteratorImpl   { return &mapIter{m: d, pos: len(d.entries)} }
