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
	"math"
	"time"

	"github.com/proteanic/protean-sub000/internal/cstr"
	"github.com/proteanic/protean-sub000/internal/hashing"
)

// Variant is a dynamically typed value. It holds exactly one payload whose
// representation is selected by its Kind. The zero Variant is None.
//
// Assigning a Variant copies its header only: collections, buffers and
// exception records are shared between the two copies. Use Clone for an
// independent deep copy. Object payloads are always shared through a
// reference counted Handle and are copied on write by MutateObject.
type Variant struct {
	kind Kind
	slot slot
}

// Kind returns the concrete kind of v.
func (v Variant) Kind() Kind {
	if v.kind == 0 {
		return KindNone
	}
	return v.kind
}

// Is reports whether the kind of v is a member of mask.
func (v Variant) Is(mask Kind) bool { return v.Kind()&mask != 0 }

// IsNone reports whether v holds no value.
func (v Variant) IsNone() bool { return v.Kind() == KindNone }

// NewBool returns a Boolean variant.
func NewBool(b bool) Variant {
	var w uint64
	if b {
		w = 1
	}
	return Variant{kind: KindBoolean, slot: slot{word: w}}
}

// NewInt32 returns an Int32 variant.
func NewInt32(i int32) Variant { return Variant{kind: KindInt32, slot: slot{word: uint64(int64(i))}} }

// NewUInt32 returns a UInt32 variant.
func NewUInt32(u uint32) Variant { return Variant{kind: KindUInt32, slot: slot{word: uint64(u)}} }

// NewInt64 returns an Int64 variant.
func NewInt64(i int64) Variant { return Variant{kind: KindInt64, slot: slot{word: uint64(i)}} }

// NewUInt64 returns a UInt64 variant.
func NewUInt64(u uint64) Variant { return Variant{kind: KindUInt64, slot: slot{word: u}} }

// NewFloat returns a single precision Float variant.
func NewFloat(f float32) Variant {
	return Variant{kind: KindFloat, slot: slot{word: uint64(math.Float32bits(f))}}
}

// NewDouble returns a double precision Double variant.
func NewDouble(f float64) Variant {
	return Variant{kind: KindDouble, slot: slot{word: math.Float64bits(f)}}
}

// NewString returns a String variant holding a copy of s.
func NewString(s string) Variant { return Variant{kind: KindString, slot: slot{str: cstr.New(s)}} }

// NewAny returns an Any variant: untyped text that is converted lexically
// when cast to another kind.
func NewAny(s string) Variant { return Variant{kind: KindAny, slot: slot{str: cstr.New(s)}} }

// NewDate returns a Date variant.
func NewDate(d Date) Variant { return Variant{kind: KindDate, slot: slot{word: uint64(d.days)}} }

// NewTime returns a Time variant. d is truncated to whole milliseconds.
func NewTime(d time.Duration) Variant {
	return Variant{kind: KindTime, slot: slot{word: uint64(durationMillis(d))}}
}

// NewDateTime returns a DateTime variant. t is converted to UTC and
// truncated to whole milliseconds.
func NewDateTime(t time.Time) Variant {
	return Variant{kind: KindDateTime, slot: slot{word: uint64(t.UnixMilli())}}
}

// NewBuffer returns a Buffer variant holding a copy of b.
func NewBuffer(b []byte) Variant {
	buf := make([]byte, len(b))
	copy(buf, b)
	return Variant{kind: KindBuffer, slot: slot{ref: buf}}
}

// NewException returns an Exception variant holding e.
func NewException(e Exception) Variant {
	return Variant{kind: KindException, slot: slot{ref: &e}}
}

// NewObject returns an Object variant holding a clone of obj in a fresh
// handle.
func NewObject(obj Object) Variant {
	return Variant{kind: KindObject, slot: slot{ref: NewHandle(obj.Clone())}}
}

// AdoptObject returns an Object variant that takes ownership of obj
// without cloning it. The caller must not retain obj.
func AdoptObject(obj Object) Variant {
	return Variant{kind: KindObject, slot: slot{ref: NewHandle(obj)}}
}

// FromHandle returns an Object variant sharing h. The handle is retained.
func FromHandle(h *Handle) Variant {
	h.Retain()
	return Variant{kind: KindObject, slot: slot{ref: h}}
}

// ListOf returns a List holding items. The items are stored as given.
func ListOf(items ...Variant) Variant {
	return Variant{kind: KindList, slot: slot{ref: &list{items: items}}}
}

// TupleOf returns a Tuple whose arity is len(items).
func TupleOf(items ...Variant) Variant {
	return Variant{kind: KindTuple, slot: slot{ref: &tuple{items: items}}}
}

// DictionaryOf returns a Dictionary holding the entries of m.
func DictionaryOf(m map[string]Variant) Variant {
	d := &dictionary{entries: make([]entry, 0, len(m))}
	for k, v := range m {
		d.entries = append(d.entries, entry{key: cstr.New(k), value: v})
	}
	d.sort()
	return Variant{kind: KindDictionary, slot: slot{ref: d}}
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() Variant { return Variant{kind: KindDictionary, slot: slot{ref: &dictionary{}}} }

// NewBag returns an empty Bag.
func NewBag() Variant { return Variant{kind: KindBag, slot: slot{ref: &bag{}}} }

// NewTimeSeries returns an empty TimeSeries.
func NewTimeSeries() Variant { return Variant{kind: KindTimeSeries, slot: slot{ref: &timeSeries{}}} }

// New returns a default initialised Variant of the given concrete kind:
// the zero value for scalar kinds, an empty or size-filled buffer, a List
// of size None elements, a Tuple of arity size, or an empty mapping or time
// series. Exception and Object have no default and fail with
// ErrTypeMismatch, as does any kind group.
func New(k Kind, size int) (Variant, error) {
	if !k.Concrete() {
		return Variant{}, fmt.Errorf("%w: cannot construct variant of non-concrete kind %s", ErrTypeMismatch, k)
	}
	if size < 0 {
		return Variant{}, fmt.Errorf("%w: negative size %d", ErrIndex, size)
	}
	out := Variant{kind: k}
	if err := info(k).init(&out.slot, size); err != nil {
		return Variant{}, err
	}
	return out, nil
}

// Clone returns a deep copy of v. Collections, strings, buffers and
// exceptions are copied; Object payloads are shared and their handle is
// retained.
func (v Variant) Clone() Variant {
	out := Variant{kind: v.kind}
	if v.kind != 0 {
		info(v.kind).clone(&out.slot, &v.slot)
	}
	return out
}

// Release drops every object handle reference held by v and its children,
// then resets v to None.
func (v *Variant) Release() {
	switch k := v.Kind(); {
	case k == KindObject:
		v.slot.ref.(*Handle).Release()
	case k&KindCollection != 0:
		v.coll().release()
	}
	*v = Variant{}
}

func (v Variant) coll() collection {
	c, _ := v.slot.ref.(collection)
	return c
}

// Equal reports whether v and rhs compare equal.
func (v Variant) Equal(rhs Variant) bool { return v.Compare(rhs) == 0 }

// Less reports whether v orders before rhs.
func (v Variant) Less(rhs Variant) bool { return v.Compare(rhs) < 0 }

// Compare returns -1, 0 or +1 ordering v against rhs. Variants of different
// kinds order by kind tag. Variants of the same kind order by the kind's
// own rule: numeric order with NaN first, false before true, byte order for
// text and buffers, chronological for temporal kinds, and size then
// element-wise for collections.
func (v Variant) Compare(rhs Variant) int {
	lk, rk := v.Kind(), rhs.Kind()
	switch {
	case lk < rk:
		return -1
	case lk > rk:
		return 1
	}
	return info(lk).compare(&v.slot, &rhs.slot)
}

// Hash folds the kind tag and then the payload of v into seed. Variants
// that compare equal hash equal.
func (v Variant) Hash(seed uint64) uint64 {
	k := v.Kind()
	return info(k).hash(&v.slot, hashing.Uint32(uint32(k), seed))
}

// text returns the payload of a String or Any variant.
func (v Variant) text() string { return v.slot.str.String() }
