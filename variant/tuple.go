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

// tuple has a fixed arity chosen at construction. Elements are mutable in
// place but cannot be added or removed.
type tuple struct {
	items []Variant
}

func newTuple(n int) *tuple { return &tuple{items: make([]Variant, n)} }

func (t *tuple) kind() Kind { return KindTuple }
func (t *tuple) size() int  { return len(t.items) }

// clear resets every element to None; the arity is unchanged.
func (t *tuple) clear() {
	releaseItems(t.items)
	clear(t.items)
}

func (t *tuple) compare(o collection) (int, error) {
	r, ok := o.(*tuple)
	if !ok {
		return 0, incompatible(t, o)
	}
	return compareItems(t.items, r.items), nil
}

func (t *tuple) hash(seed uint64) uint64 { return hashItems(t.items, seed) }
func (t *tuple) clone() collection       { return &tuple{items: cloneItems(t.items)} }
func (t *tuple) release()                { releaseItems(t.items) }

func (t *tuple) at(i int) (*Variant, error) {
	if err := checkIndex(i, len(t.items)); err != nil {
		return nil, err
	}
	return &t.items[i], nil
}

func (t *tuple) elems() []Variant { return t.items }

func (t *tuple) begin() iteratorImpl { return &seqIter{seq: t} }
func (t *tuple) end() iteratorImpl   { return &seqIter{seq: t, pos: len(t.items)} }
