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
	"iter"
	"time"
)

// Len returns the number of elements of a collection or the number of
// bytes of a Buffer.
func (v Variant) Len() (int, error) {
	switch k := v.Kind(); {
	case k&KindCollection != 0:
		return v.coll().size(), nil
	case k == KindBuffer:
		return len(v.slot.ref.([]byte)), nil
	default:
		return 0, typeMismatch("Len()", k)
	}
}

// Empty reports whether a collection has no elements or an Any holds no
// text.
func (v Variant) Empty() (bool, error) {
	switch k := v.Kind(); {
	case k&KindCollection != 0:
		return v.coll().size() == 0, nil
	case k == KindAny:
		return v.slot.str.Empty(), nil
	default:
		return false, typeMismatch("Empty()", k)
	}
}

// Clear removes every element of a collection. A Tuple keeps its arity and
// has its elements reset to None.
func (v *Variant) Clear() error {
	if err := v.check(KindCollection, "Clear()"); err != nil {
		return err
	}
	v.coll().clear()
	return nil
}

// PushBack appends value to a List and returns the stored element.
func (v *Variant) PushBack(value Variant) (*Variant, error) {
	if err := v.check(KindList, "PushBack()"); err != nil {
		return nil, err
	}
	return v.slot.ref.(*list).pushBack(value), nil
}

// PopBack removes the last element of a List.
func (v *Variant) PopBack() error {
	if err := v.check(KindList, "PopBack()"); err != nil {
		return err
	}
	if err := v.slot.ref.(*list).popBack(); err != nil {
		return fmt.Errorf("PopBack() on empty list: %w", err)
	}
	return nil
}

// PushBackAt appends a sample to a TimeSeries and returns the stored value.
// t is truncated to whole milliseconds.
func (v *Variant) PushBackAt(t time.Time, value Variant) (*Variant, error) {
	if err := v.check(KindTimeSeries, "PushBackAt()"); err != nil {
		return nil, err
	}
	return v.slot.ref.(*timeSeries).pushBack(t, value), nil
}

// At returns the element at index i of a List or Tuple.
func (v Variant) At(i int) (*Variant, error) {
	switch v.Kind() {
	case KindList:
		return v.slot.ref.(*list).at(i)
	case KindTuple:
		return v.slot.ref.(*tuple).at(i)
	}
	return nil, typeMismatch("At()", v.Kind())
}

func (v Variant) mapping(op, key string) (mapping, error) {
	if !v.Is(KindMapping) {
		return nil, typeMismatch(fmt.Sprintf("%s(%q)", op, key), v.Kind())
	}
	return v.slot.ref.(mapping), nil
}

// AtKey returns the value stored under key in a Dictionary, or the first
// such value in a Bag.
func (v Variant) AtKey(key string) (*Variant, error) {
	m, err := v.mapping("AtKey", key)
	if err != nil {
		return nil, err
	}
	return m.get(key)
}

// Insert adds value under key and returns the stored element. A Dictionary
// rejects an existing key with ErrDuplicateKey; a Bag always appends.
func (v *Variant) Insert(key string, value Variant) (*Variant, error) {
	m, err := v.mapping("Insert", key)
	if err != nil {
		return nil, err
	}
	return m.insert(key, value)
}

// Set stores value under key in a Dictionary, replacing any existing
// value.
func (v *Variant) Set(key string, value Variant) (*Variant, error) {
	if v.Kind() != KindDictionary {
		return nil, typeMismatch(fmt.Sprintf("Set(%q)", key), v.Kind())
	}
	return v.slot.ref.(*dictionary).set(key, value), nil
}

// Remove deletes key from a Dictionary, failing with ErrNotFound when it
// is absent, or deletes every entry under key from a Bag.
func (v *Variant) Remove(key string) error {
	m, err := v.mapping("Remove", key)
	if err != nil {
		return err
	}
	return m.remove(key)
}

// HasKey reports whether a mapping holds key.
func (v Variant) HasKey(key string) (bool, error) {
	m, err := v.mapping("HasKey", key)
	if err != nil {
		return false, err
	}
	return m.has(key), nil
}

// Range returns a List of copies of every value stored under key, in
// storage order. For a Dictionary the List holds at most one element.
func (v Variant) Range(key string) (Variant, error) {
	m, err := v.mapping("Range", key)
	if err != nil {
		return Variant{}, err
	}
	matches := m.rangeOf(key)
	out := make([]Variant, len(matches))
	for i, match := range matches {
		out[i] = match.Clone()
	}
	return ListOf(out...), nil
}

// All yields the position and element of every member of a collection.
// Nothing is yielded for other kinds.
func (v Variant) All() iter.Seq2[int, *Variant] {
	return func(yield func(int, *Variant) bool) {
		if !v.Is(KindCollection) {
			return
		}
		c := v.coll()
		for it, i := c.begin(), 0; it.value() != nil; it.increment() {
			if !yield(i, it.value()) {
				return
			}
			i++
		}
	}
}

// Entries yields the key and value of every entry of a Dictionary or Bag.
func (v Variant) Entries() iter.Seq2[string, *Variant] {
	return func(yield func(string, *Variant) bool) {
		if !v.Is(KindMapping) {
			return
		}
		entries := v.slot.ref.(mapping).entrySlice()
		for i := range entries {
			if !yield(entries[i].key.String(), &entries[i].value) {
				return
			}
		}
	}
}

// Times yields the timestamp and value of every sample of a TimeSeries.
func (v Variant) Times() iter.Seq2[time.Time, *Variant] {
	return func(yield func(time.Time, *Variant) bool) {
		if v.Kind() != KindTimeSeries {
			return
		}
		ts := v.slot.ref.(*timeSeries)
		for i := range ts.samples {
			if !yield(time.UnixMilli(ts.samples[i].at).UTC(), &ts.samples[i].value) {
				return
			}
		}
	}
}
