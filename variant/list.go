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

type list struct {
	items []Variant
}

func newList(n int) *list { return &list{items: make([]Variant, n)} }

func (l *list) kind() Kind { return KindList }
func (l *list) size() int  { return len(l.items) }

func (l *list) clear() {
	releaseItems(l.items)
	l.items = l.items[:0]
}

func (l *list) compare(o collection) (int, error) {
	r, ok := o.(*list)
	if !ok {
		return 0, incompatible(l, o)
	}
	return compareItems(l.items, r.items), nil
}

func (l *list) hash(seed uint64) uint64 { return hashItems(l.items, seed) }
func (l *list) clone() collection       { return &list{items: cloneItems(l.items)} }
func (l *list) release()                { releaseItems(l.items) }

func (l *list) at(i int) (*Variant, error) {
	if err := checkIndex(i, len(l.items)); err != nil {
		return nil, err
	}
	return &l.items[i], nil
}

func (l *list) pushBack(v Variant) *Variant {
	l.items = append(l.items, v)
	return &l.items[len(l.items)-1]
}

func (l *list) popBack() error {
	n := len(l.items)
	if n == 0 {
		return checkIndex(0, 0)
	}
	l.items[n-1].Release()
	l.items[n-1] = Variant{}
	l.items = l.items[:n-1]
	return nil
}

func (l *list) elems() []Variant { return l.items }

func (l *list) begin() iteratorImpl { return &seqIter{seq: l} }
func (l *list) end() iteratorImpl   { return &seqIter{seq: l, pos: len(l.items)} }
