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
	"time"
)

// iteratorImpl is supplied by each collection. Positions are indices, so
// an iterator survives appends to its collection but not removals before
// its position.
type iteratorImpl interface {
	key() (string, error)
	time() (time.Time, error)
	// value returns nil when the position is outside the collection.
	value() *Variant
	increment()
	decrement()
	position() int
	owner() collection
	clone() iteratorImpl
}

type seqElems interface {
	collection
	elems() []Variant
}

type seqIter struct {
	seq seqElems
	pos int
}

func (it *seqIter) key() (string, error)     { return "", typeMismatch("Key()", it.seq.kind()) }
func (it *seqIter) time() (time.Time, error) { return time.Time{}, typeMismatch("Time()", it.seq.kind()) }
func (it *seqIter) increment()               { it.pos++ }
func (it *seqIter) decrement()               { it.pos-- }
func (it *seqIter) position() int            { return it.pos }
func (it *seqIter) owner() collection        { return it.seq }
func (it *seqIter) clone() iteratorImpl      { c := *it; return &c }

func (it *seqIter) value() *Variant {
	items := it.seq.elems()
	if it.pos < 0 || it.pos >= len(items) {
		return nil
	}
	return &items[it.pos]
}

type mapIter struct {
	m   mapping
	pos int
}

func (it *mapIter) current() *entry {
	entries := it.m.entrySlice()
	if it.pos < 0 || it.pos >= len(entries) {
		return nil
	}
	return &entries[it.pos]
}

func (it *mapIter) key() (string, error) {
	e := it.current()
	if e == nil {
		return "", fmt.Errorf("%w: iterator position %d", ErrIndex, it.pos)
	}
	return e.key.String(), nil
}

func (it *mapIter) value() *Variant {
	if e := it.current(); e != nil {
		return &e.value
	}
	return nil
}

func (it *mapIter) time() (time.Time, error) { return time.Time{}, typeMismatch("Time()", it.m.kind()) }
func (it *mapIter) increment()               { it.pos++ }
func (it *mapIter) decrement()               { it.pos-- }
func (it *mapIter) position() int            { return it.pos }
func (it *mapIter) owner() collection        { return it.m }
func (it *mapIter) clone() iteratorImpl      { c := *it; return &c }

type tsIter struct {
	ts  *timeSeries
	pos int
}

func (it *tsIter) current() *sample {
	if it.pos < 0 || it.pos >= len(it.ts.samples) {
		return nil
	}
	return &it.ts.samples[it.pos]
}

func (it *tsIter) time() (time.Time, error) {
	s := it.current()
	if s == nil {
		return time.Time{}, fmt.Errorf("%w: iterator position %d", ErrIndex, it.pos)
	}
	return time.UnixMilli(s.at).UTC(), nil
}

func (it *tsIter) value() *Variant {
	if s := it.current(); s != nil {
		return &s.value
	}
	return nil
}

func (it *tsIter) key() (string, error) { return "", typeMismatch("Key()", KindTimeSeries) }
func (it *tsIter) increment()           { it.pos++ }
func (it *tsIter) decrement()           { it.pos-- }
func (it *tsIter) position() int        { return it.pos }
func (it *tsIter) owner() collection    { return it.ts }
func (it *tsIter) clone() iteratorImpl  { c := *it; return &c }

// emptyIter iterates an empty Any: begin equals end and there is nothing
// to visit.
type emptyIter struct{}

func (emptyIter) key() (string, error)     { return "", typeMismatch("Key()", KindAny) }
func (emptyIter) time() (time.Time, error) { return time.Time{}, typeMismatch("Time()", KindAny) }
func (emptyIter) value() *Variant          { return nil }
func (emptyIter) increment()               {}
func (emptyIter) decrement()               {}
func (emptyIter) position() int            { return 0 }
func (emptyIter) owner() collection        { return nil }
func (emptyIter) clone() iteratorImpl      { return emptyIter{} }

func equalIters(a, b iteratorImpl) (bool, error) {
	if a.owner() != b.owner() {
		return false, fmt.Errorf("%w: iterators belong to different collections", ErrIncompatible)
	}
	return a.position() == b.position(), nil
}

// Iterator is a bidirectional cursor over the elements of a collection
// that permits modifying elements in place through Value.
type Iterator struct {
	impl iteratorImpl
}

// Key returns the key at the current position of a Dictionary or Bag
// iterator.
func (it Iterator) Key() (string, error) { return it.impl.key() }

// Time returns the timestamp at the current position of a TimeSeries
// iterator.
func (it Iterator) Time() (time.Time, error) { return it.impl.time() }

// Value returns the element at the current position, or nil when the
// iterator is not positioned on an element.
func (it Iterator) Value() *Variant { return it.impl.value() }

// Next advances the iterator by one position.
func (it *Iterator) Next() { it.impl.increment() }

// Prev moves the iterator back by one position.
func (it *Iterator) Prev() { it.impl.decrement() }

// Equal reports whether two iterators over the same collection are at the
// same position. Iterators over different collections are incomparable.
func (it Iterator) Equal(o Iterator) (bool, error) { return equalIters(it.impl, o.impl) }

// Clone returns an independent iterator at the same position.
func (it Iterator) Clone() Iterator { return Iterator{impl: it.impl.clone()} }

// Const returns a read-only iterator at the same position.
func (it Iterator) Const() ConstIterator { return ConstIterator{impl: it.impl.clone()} }

// ConstIterator is a bidirectional read-only cursor.
type ConstIterator struct {
	impl iteratorImpl
}

// Key returns the key at the current position of a Dictionary or Bag.
func (it ConstIterator) Key() (string, error) { return it.impl.key() }

// Time returns the timestamp at the current position of a TimeSeries.
func (it ConstIterator) Time() (time.Time, error) { return it.impl.time() }

// Value returns a deep copy of the element at the current position, or
// None when the iterator is not positioned on an element.
func (it ConstIterator) Value() Variant {
	if v := it.impl.value(); v != nil {
		return v.Clone()
	}
	return Variant{}
}

// Next advances the iterator by one position.
func (it *ConstIterator) Next() { it.impl.increment() }

// Prev moves the iterator back by one position.
func (it *ConstIterator) Prev() { it.impl.decrement() }

// Equal reports whether two iterators over the same collection are at the
// same position.
func (it ConstIterator) Equal(o ConstIterator) (bool, error) { return equalIters(it.impl, o.impl) }

// Clone returns an independent iterator at the same position.
func (it ConstIterator) Clone() ConstIterator { return ConstIterator{impl: it.impl.clone()} }

func (v Variant) iterator(op string, atEnd bool) (iteratorImpl, error) {
	switch k := v.Kind(); {
	case k&KindCollection != 0:
		if atEnd {
			return v.coll().end(), nil
		}
		return v.coll().begin(), nil
	case k == KindAny && v.slot.str.Empty():
		return emptyIter{}, nil
	default:
		return nil, typeMismatch(op, k)
	}
}

// Begin returns an iterator at the first element of a collection. An empty
// Any yields an iterator equal to End.
func (v Variant) Begin() (Iterator, error) {
	impl, err := v.iterator("Begin()", false)
	return Iterator{impl: impl}, err
}

// End returns an iterator positioned past the last element.
func (v Variant) End() (Iterator, error) {
	impl, err := v.iterator("End()", true)
	return Iterator{impl: impl}, err
}
